package controllers

import (
	"net/http"
	"sort"

	"github.com/MAyankprine20001/Penta-Cabs/models"
	"github.com/MAyankprine20001/Penta-Cabs/repository"
	"github.com/MAyankprine20001/Penta-Cabs/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type LocalController struct {
	Repo   repository.LocalRepo
	Mailer *services.Mailer
	Cache  *services.AvailabilityCache
}

func NewLocalController(repo repository.LocalRepo, mailer *services.Mailer, cache *services.AvailabilityCache) *LocalController {
	return &LocalController{Repo: repo, Mailer: mailer, Cache: cache}
}

// ListServices handles GET /api/local-services.
func (lc *LocalController) ListServices(c *gin.Context) {
	page, limit, skip := parsePageLimit(c)
	search := c.Query("search")

	entries, err := lc.Repo.List(c.Request.Context(), search, limit, skip)
	if err != nil {
		respondRepoError(c, err, "Service not found")
		return
	}
	total, err := lc.Repo.Count(c.Request.Context(), search)
	if err != nil {
		respondRepoError(c, err, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"services":   entries,
		"pagination": buildPagination(total, page, limit, "totalServices"),
	})
}

// GetService handles GET /api/local-services/:id.
func (lc *LocalController) GetService(c *gin.Context) {
	entry, err := lc.Repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRepoError(c, err, "Service not found")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// UpdateService handles PUT /api/local-services/:id.
func (lc *LocalController) UpdateService(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	delete(updates, "_id")

	entry, err := lc.Repo.Update(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		respondRepoError(c, err, "Service not found")
		return
	}
	lc.Cache.Invalidate(c.Request.Context(), services.CacheKeyCities)
	c.JSON(http.StatusOK, gin.H{"message": "Service updated successfully", "service": entry})
}

// DeleteService handles DELETE /api/local-services/:id.
func (lc *LocalController) DeleteService(c *gin.Context) {
	deleted, err := lc.Repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRepoError(c, err, "Service not found")
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	lc.Cache.Invalidate(c.Request.Context(), services.CacheKeyCities)
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

type localBulkRequest struct {
	Entries []models.LocalRideEntry `json:"entries"`
}

// AddBulk handles POST /add-local-bulk: one entry per hourly package, all
// four at once.
func (lc *LocalController) AddBulk(c *gin.Context) {
	var req localBulkRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Entries) != 4 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Expected 4 entries for 4 packages"})
		return
	}
	if err := lc.Repo.InsertMany(c.Request.Context(), req.Entries); err != nil {
		zap.L().Error("Local bulk insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	lc.Cache.Invalidate(c.Request.Context(), services.CacheKeyCities)
	c.JSON(http.StatusCreated, gin.H{"message": "All packages saved"})
}

type localSearchRequest struct {
	City    string `json:"city"`
	Package string `json:"package"`
}

// SearchRides handles POST /api/local-ride/search.
func (lc *LocalController) SearchRides(c *gin.Context) {
	var req localSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	entry, err := lc.Repo.FindRide(c.Request.Context(), req.City, req.Package)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"message": "No rides found for the selected city and package."})
		return
	}
	if err != nil {
		zap.L().Error("Local ride search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cars": models.AvailableCars(entry.Cars)})
}

// AvailableCities handles GET /api/available-cities: unique cities with at
// least one bookable car.
func (lc *LocalController) AvailableCities(c *gin.Context) {
	var cached []string
	if lc.Cache.Get(c.Request.Context(), services.CacheKeyCities, &cached) {
		c.JSON(http.StatusOK, gin.H{"cities": cached})
		return
	}

	entries, err := lc.Repo.FindWithAvailableCars(c.Request.Context())
	if err != nil {
		zap.L().Error("Available cities lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	seen := make(map[string]bool)
	cities := make([]string, 0, len(entries))
	for _, e := range entries {
		if !seen[e.City] {
			seen[e.City] = true
			cities = append(cities, e.City)
		}
	}
	sort.Strings(cities)

	lc.Cache.Set(c.Request.Context(), services.CacheKeyCities, cities)
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

type localEmailRequest struct {
	Email     string            `json:"email"`
	Route     string            `json:"route"`
	Car       *models.Car       `json:"car"`
	Traveller *models.Traveller `json:"traveller"`
}

// SendBookingEmail handles POST /send-local-email.
func (lc *LocalController) SendBookingEmail(c *gin.Context) {
	var req localEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Route == "" || req.Car == nil || req.Traveller == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing data for email"})
		return
	}
	if err := lc.Mailer.SendLocalBooking(c.Request.Context(), req.Email, req.Route, *req.Car, *req.Traveller); err != nil {
		zap.L().Error("Local booking email failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Local ride email sent"})
}
