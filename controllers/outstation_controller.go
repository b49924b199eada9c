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

type OutstationController struct {
	Repo   repository.OutstationRepo
	Mailer *services.Mailer
	Cache  *services.AvailabilityCache
}

func NewOutstationController(repo repository.OutstationRepo, mailer *services.Mailer, cache *services.AvailabilityCache) *OutstationController {
	return &OutstationController{Repo: repo, Mailer: mailer, Cache: cache}
}

// ListRoutes handles GET /api/outstation-routes.
func (oc *OutstationController) ListRoutes(c *gin.Context) {
	page, limit, skip := parsePageLimit(c)

	routes, err := oc.Repo.List(c.Request.Context(), limit, skip)
	if err != nil {
		respondRepoError(c, err, "Route not found")
		return
	}
	total, err := oc.Repo.Count(c.Request.Context())
	if err != nil {
		respondRepoError(c, err, "Route not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"routes":     routes,
		"pagination": buildPagination(total, page, limit, "totalRoutes"),
	})
}

// GetRoute handles GET /api/outstation-routes/:id.
func (oc *OutstationController) GetRoute(c *gin.Context) {
	route, err := oc.Repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRepoError(c, err, "Route not found")
		return
	}
	c.JSON(http.StatusOK, route)
}

// UpdateRoute handles PUT /api/outstation-routes/:id.
func (oc *OutstationController) UpdateRoute(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	delete(updates, "_id")

	route, err := oc.Repo.Update(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		respondRepoError(c, err, "Route not found")
		return
	}
	oc.Cache.Invalidate(c.Request.Context(), services.CacheKeyOutstationCities)
	c.JSON(http.StatusOK, gin.H{"message": "Route updated successfully", "route": route})
}

// DeleteRoute handles DELETE /api/outstation-routes/:id.
func (oc *OutstationController) DeleteRoute(c *gin.Context) {
	deleted, err := oc.Repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRepoError(c, err, "Route not found")
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}
	oc.Cache.Invalidate(c.Request.Context(), services.CacheKeyOutstationCities)
	c.JSON(http.StatusOK, gin.H{"message": "Route deleted successfully"})
}

// AddRoute handles POST /add-outstation (admin).
func (oc *OutstationController) AddRoute(c *gin.Context) {
	var entry models.OutstationEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if entry.TripType == "" {
		entry.TripType = "one-way"
	}
	if err := oc.Repo.Insert(c.Request.Context(), &entry); err != nil {
		zap.L().Error("Outstation insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	oc.Cache.Invalidate(c.Request.Context(), services.CacheKeyOutstationCities)
	c.JSON(http.StatusCreated, gin.H{"message": "Outstation booking saved"})
}

type intercitySearchRequest struct {
	City1    string `json:"city1"`
	City2    string `json:"city2"`
	TripType string `json:"tripType"`
}

// SearchIntercity handles POST /api/intercity/search.
func (oc *OutstationController) SearchIntercity(c *gin.Context) {
	var req intercitySearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	entry, err := oc.Repo.FindRoute(c.Request.Context(), req.City1, req.City2, req.TripType)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"message": "No intercity rides found for your selection."})
		return
	}
	if err != nil {
		zap.L().Error("Intercity search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cars":     models.AvailableCars(entry.Cars),
		"distance": entry.Distance,
	})
}

type outstationRoute struct {
	From     string `json:"from"`
	To       string `json:"to"`
	TripType string `json:"tripType"`
}

type outstationCityInfo struct {
	Destinations []string `json:"destinations"`
	TripTypes    []string `json:"tripTypes"`
}

type outstationAvailability struct {
	CityMap      map[string]outstationCityInfo `json:"cityMap"`
	FromCities   []string                      `json:"fromCities"`
	RoutesByType map[string][]outstationRoute  `json:"routesByType"`
	TotalRoutes  int                           `json:"totalRoutes"`
}

// AvailableCities handles GET /api/available-outstation-cities.
func (oc *OutstationController) AvailableCities(c *gin.Context) {
	var cached outstationAvailability
	if oc.Cache.Get(c.Request.Context(), services.CacheKeyOutstationCities, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	entries, err := oc.Repo.FindWithAvailableCars(c.Request.Context())
	if err != nil {
		zap.L().Error("Available outstation cities lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch available cities"})
		return
	}

	type citySets struct {
		destinations map[string]bool
		tripTypes    map[string]bool
	}
	byCity := make(map[string]*citySets)
	fromSeen := make(map[string]bool)
	fromCities := []string{}
	allRoutes := []outstationRoute{}

	for _, e := range entries {
		if !fromSeen[e.City1] {
			fromSeen[e.City1] = true
			fromCities = append(fromCities, e.City1)
		}
		cs, ok := byCity[e.City1]
		if !ok {
			cs = &citySets{destinations: make(map[string]bool), tripTypes: make(map[string]bool)}
			byCity[e.City1] = cs
		}
		cs.destinations[e.City2] = true
		cs.tripTypes[e.TripType] = true
		allRoutes = append(allRoutes, outstationRoute{From: e.City1, To: e.City2, TripType: e.TripType})
	}

	cityMap := make(map[string]outstationCityInfo, len(byCity))
	for from, cs := range byCity {
		cityMap[from] = outstationCityInfo{
			Destinations: sortedKeys(cs.destinations),
			TripTypes:    sortedKeys(cs.tripTypes),
		}
	}
	sort.Strings(fromCities)

	routesByType := map[string][]outstationRoute{"one-way": {}, "two-way": {}}
	for _, r := range allRoutes {
		routesByType[r.TripType] = append(routesByType[r.TripType], r)
	}

	response := outstationAvailability{
		CityMap:      cityMap,
		FromCities:   fromCities,
		RoutesByType: routesByType,
		TotalRoutes:  len(allRoutes),
	}

	oc.Cache.Set(c.Request.Context(), services.CacheKeyOutstationCities, response)
	c.JSON(http.StatusOK, response)
}

// SendLaunchEmail handles POST /send-route-email (admin announcement).
func (oc *OutstationController) SendLaunchEmail(c *gin.Context) {
	var req launchEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Route == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email or route"})
		return
	}
	if err := oc.Mailer.SendRouteLaunch(c.Request.Context(), req.Email, "Outstation", req.Route, req.Cars); err != nil {
		zap.L().Error("Outstation launch email failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Email sending failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email sent successfully"})
}

type intercityEmailRequest struct {
	Email     string            `json:"email"`
	Route     string            `json:"route"`
	Cab       *models.Car       `json:"cab"`
	Traveller *models.Traveller `json:"traveller"`
}

// SendBookingEmail handles POST /send-intercity-email.
func (oc *OutstationController) SendBookingEmail(c *gin.Context) {
	var req intercityEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Route == "" || req.Cab == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required data"})
		return
	}
	var traveller models.Traveller
	if req.Traveller != nil {
		traveller = *req.Traveller
	}
	if err := oc.Mailer.SendIntercityBooking(c.Request.Context(), req.Email, req.Route, *req.Cab, traveller); err != nil {
		zap.L().Error("Intercity booking email failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Email failed to send"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email sent"})
}
