package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MAyankprine20001/Penta-Cabs/controllers"
	"github.com/MAyankprine20001/Penta-Cabs/models"
	"github.com/MAyankprine20001/Penta-Cabs/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

// ---- fake repo ----

type fakeLocalRepo struct {
	entries  []models.LocalRideEntry
	entry    *models.LocalRideEntry
	total    int64
	err      error
	inserted []models.LocalRideEntry
	deleted  int64
}

func (r *fakeLocalRepo) List(ctx context.Context, search string, limit, skip int) ([]models.LocalRideEntry, error) {
	return r.entries, r.err
}
func (r *fakeLocalRepo) Count(ctx context.Context, search string) (int64, error) {
	return r.total, r.err
}
func (r *fakeLocalRepo) FindByID(ctx context.Context, id string) (*models.LocalRideEntry, error) {
	return r.entry, r.err
}
func (r *fakeLocalRepo) InsertMany(ctx context.Context, entries []models.LocalRideEntry) error {
	r.inserted = entries
	return r.err
}
func (r *fakeLocalRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.LocalRideEntry, error) {
	return r.entry, r.err
}
func (r *fakeLocalRepo) Delete(ctx context.Context, id string) (int64, error) {
	return r.deleted, r.err
}
func (r *fakeLocalRepo) FindRide(ctx context.Context, city, ridePackage string) (*models.LocalRideEntry, error) {
	if r.entry == nil {
		return nil, mongo.ErrNoDocuments
	}
	return r.entry, r.err
}
func (r *fakeLocalRepo) FindWithAvailableCars(ctx context.Context) ([]models.LocalRideEntry, error) {
	return r.entries, r.err
}

// ---- helpers ----

func setupLocalRouter(repo *fakeLocalRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	c := controllers.NewLocalController(repo, services.NewMailer(&fakeSender{}), services.NewAvailabilityCache(nil))

	r.GET("/api/local-services", c.ListServices)
	r.POST("/add-local-bulk", c.AddBulk)
	r.POST("/api/local-ride/search", c.SearchRides)
	r.GET("/api/available-cities", c.AvailableCities)
	return r
}

func fourLocalEntries() []gin.H {
	packages := []string{"4hr/40km", "8hr/80km", "12hr/120km", "full-day"}
	entries := make([]gin.H, 0, len(packages))
	for _, p := range packages {
		entries = append(entries, gin.H{
			"city":    "Indore",
			"package": p,
			"cars":    []gin.H{{"type": "sedan", "available": true, "price": 1200}},
		})
	}
	return entries
}

// ---- tests ----

func TestAddLocalBulk_SavesAllPackages(t *testing.T) {
	repo := &fakeLocalRepo{}
	r := setupLocalRouter(repo)

	w := doJSON(r, http.MethodPost, "/add-local-bulk", gin.H{"entries": fourLocalEntries()})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "All packages saved", resp["message"])
	assert.Len(t, repo.inserted, 4)
}

func TestAddLocalBulk_RejectsWrongCount(t *testing.T) {
	repo := &fakeLocalRepo{}
	r := setupLocalRouter(repo)

	w := doJSON(r, http.MethodPost, "/add-local-bulk", gin.H{"entries": fourLocalEntries()[:3]})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Expected 4 entries for 4 packages", resp["error"])
	assert.Nil(t, repo.inserted)
}

func TestSearchLocalRides_FiltersUnavailable(t *testing.T) {
	repo := &fakeLocalRepo{entry: &models.LocalRideEntry{
		City: "Indore", Package: "8hr/80km",
		Cars: []models.Car{
			{Type: "sedan", Available: true, Price: 2200},
			{Type: "crysta", Available: false, Price: 3800},
		},
	}}
	r := setupLocalRouter(repo)

	w := doJSON(r, http.MethodPost, "/api/local-ride/search", gin.H{
		"city": "Indore", "package": "8hr/80km",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Cars []models.Car `json:"cars"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Len(t, resp.Cars, 1)
	assert.Equal(t, "sedan", resp.Cars[0].Type)
}

func TestSearchLocalRides_NoMatch(t *testing.T) {
	r := setupLocalRouter(&fakeLocalRepo{})

	w := doJSON(r, http.MethodPost, "/api/local-ride/search", gin.H{
		"city": "Nowhere", "package": "8hr/80km",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "No rides found for the selected city and package.", resp["message"])
}

func TestAvailableCities_UniqueAndSorted(t *testing.T) {
	repo := &fakeLocalRepo{entries: []models.LocalRideEntry{
		{City: "Indore"},
		{City: "Bhopal"},
		{City: "Indore"},
		{City: "Agra"},
	}}
	r := setupLocalRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/available-cities", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Cities []string `json:"cities"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, []string{"Agra", "Bhopal", "Indore"}, resp.Cities)
}
