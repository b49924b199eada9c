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

type AirportController struct {
	Repo   repository.AirportRepo
	Mailer *services.Mailer
	Cache  *services.AvailabilityCache
}

func NewAirportController(repo repository.AirportRepo, mailer *services.Mailer, cache *services.AvailabilityCache) *AirportController {
	return &AirportController{Repo: repo, Mailer: mailer, Cache: cache}
}

// ListServices handles GET /api/airport-services with pagination and search.
func (ac *AirportController) ListServices(c *gin.Context) {
	page, limit, skip := parsePageLimit(c)
	search := c.Query("search")

	entries, err := ac.Repo.List(c.Request.Context(), search, limit, skip)
	if err != nil {
		respondRepoError(c, err, "Service not found")
		return
	}
	total, err := ac.Repo.Count(c.Request.Context(), search)
	if err != nil {
		respondRepoError(c, err, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"services":   entries,
		"pagination": buildPagination(total, page, limit, "totalServices"),
	})
}

// GetService handles GET /api/airport-services/:id.
func (ac *AirportController) GetService(c *gin.Context) {
	entry, err := ac.Repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRepoError(c, err, "Service not found")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// UpdateService handles PUT /api/airport-services/:id.
func (ac *AirportController) UpdateService(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	delete(updates, "_id")

	entry, err := ac.Repo.Update(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		respondRepoError(c, err, "Service not found")
		return
	}
	ac.Cache.Invalidate(c.Request.Context(), services.CacheKeyAirports)
	c.JSON(http.StatusOK, gin.H{"message": "Service updated successfully", "service": entry})
}

// DeleteService handles DELETE /api/airport-services/:id.
func (ac *AirportController) DeleteService(c *gin.Context) {
	deleted, err := ac.Repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRepoError(c, err, "Service not found")
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	ac.Cache.Invalidate(c.Request.Context(), services.CacheKeyAirports)
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

// AddService handles POST /add-service (admin).
func (ac *AirportController) AddService(c *gin.Context) {
	var entry models.AirportEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := ac.Repo.Insert(c.Request.Context(), &entry); err != nil {
		respondRepoError(c, err, "Service not found")
		return
	}
	ac.Cache.Invalidate(c.Request.Context(), services.CacheKeyAirports)
	c.JSON(http.StatusCreated, gin.H{"message": "Service entry saved"})
}

type airportSearchRequest struct {
	ServiceType   string `json:"serviceType"`
	AirportCity   string `json:"airportCity"`
	OtherLocation string `json:"otherLocation"`
}

// SearchCabs handles POST /api/search-cabs-forairport.
func (ac *AirportController) SearchCabs(c *gin.Context) {
	var req airportSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	entry, err := ac.Repo.FindRoute(c.Request.Context(), req.ServiceType, req.AirportCity, req.OtherLocation)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"message": "No matching cabs found."})
		return
	}
	if err != nil {
		zap.L().Error("Airport cab search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cabs": models.AvailableCars(entry.Cars)})
}

type airportAvailability struct {
	AirportCity   string   `json:"airportCity"`
	DropLocations []string `json:"dropLocations"`
	PickLocations []string `json:"pickLocations"`
}

// AvailableAirports handles GET /api/available-airports: every city with at
// least one bookable car, with its drop and pick locations grouped.
func (ac *AirportController) AvailableAirports(c *gin.Context) {
	var cached []airportAvailability
	if ac.Cache.Get(c.Request.Context(), services.CacheKeyAirports, &cached) {
		c.JSON(http.StatusOK, gin.H{"airports": cached})
		return
	}

	entries, err := ac.Repo.FindWithAvailableCars(c.Request.Context())
	if err != nil {
		zap.L().Error("Available airports lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	type locations struct {
		drop map[string]bool
		pick map[string]bool
	}
	grouped := make(map[string]*locations)
	for _, e := range entries {
		g, ok := grouped[e.AirportCity]
		if !ok {
			g = &locations{drop: make(map[string]bool), pick: make(map[string]bool)}
			grouped[e.AirportCity] = g
		}
		switch e.ServiceType {
		case "drop":
			g.drop[e.OtherLocation] = true
		case "pick":
			g.pick[e.OtherLocation] = true
		}
	}

	airports := make([]airportAvailability, 0, len(grouped))
	for city, g := range grouped {
		airports = append(airports, airportAvailability{
			AirportCity:   city,
			DropLocations: sortedKeys(g.drop),
			PickLocations: sortedKeys(g.pick),
		})
	}
	sort.Slice(airports, func(i, j int) bool { return airports[i].AirportCity < airports[j].AirportCity })

	ac.Cache.Set(c.Request.Context(), services.CacheKeyAirports, airports)
	c.JSON(http.StatusOK, gin.H{"airports": airports})
}

type launchEmailRequest struct {
	Email string       `json:"email"`
	Route string       `json:"route"`
	Cars  []models.Car `json:"cars"`
}

// SendLaunchEmail handles POST /send-airport-email (admin announcement).
func (ac *AirportController) SendLaunchEmail(c *gin.Context) {
	var req launchEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Route == "" || req.Cars == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email, route, or car data"})
		return
	}
	if err := ac.Mailer.SendRouteLaunch(c.Request.Context(), req.Email, "Airport", req.Route, req.Cars); err != nil {
		zap.L().Error("Airport launch email failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email sent successfully"})
}

type airportBookingEmailRequest struct {
	Email         string           `json:"email"`
	Route         string           `json:"route"`
	Cab           *models.Car      `json:"cab"`
	Traveller     models.Traveller `json:"traveller"`
	Date          string           `json:"date"`
	Time          string           `json:"time"`
	ServiceType   string           `json:"serviceType"`
	OtherLocation string           `json:"otherLocation"`
}

// SendBookingEmail handles POST /api/send-airport-email (booking confirmation).
func (ac *AirportController) SendBookingEmail(c *gin.Context) {
	var req airportBookingEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Cab == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}
	err := ac.Mailer.SendAirportBooking(c.Request.Context(), req.Email, req.Route, req.OtherLocation,
		req.Date, req.Time, req.ServiceType, *req.Cab, req.Traveller)
	if err != nil {
		zap.L().Error("Airport booking email failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Email failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email sent"})
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
