package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MAyankprine20001/Penta-Cabs/controllers"
	"github.com/MAyankprine20001/Penta-Cabs/models"
	"github.com/MAyankprine20001/Penta-Cabs/sender"
	"github.com/MAyankprine20001/Penta-Cabs/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ---- fakes ----

type fakeBookingRepo struct {
	inserted *models.BookingRequest
	bookings []models.BookingRequest
	booking  *models.BookingRequest
	err      error
}

func (r *fakeBookingRepo) Insert(ctx context.Context, booking *models.BookingRequest) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.inserted = booking
	return primitive.NewObjectID().Hex(), nil
}

func (r *fakeBookingRepo) List(ctx context.Context, limit, skip int) ([]models.BookingRequest, error) {
	return r.bookings, r.err
}

func (r *fakeBookingRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.bookings)), r.err
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id, status, adminNotes string) (*models.BookingRequest, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.booking.Status = status
	r.booking.AdminNotes = adminNotes
	return r.booking, nil
}

func (r *fakeBookingRepo) SetDriverDetails(ctx context.Context, id string, details models.DriverDetails) (*models.BookingRequest, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.booking.DriverDetails = &details
	r.booking.Status = models.BookingDriverSent
	return r.booking, nil
}

type fakeSender struct {
	to       []string
	subjects []string
	bodies   []string
	err      error
}

func (s *fakeSender) SendEmail(ctx context.Context, to, subject, body string) (sender.SendResult, error) {
	if s.err != nil {
		return sender.SendResult{}, s.err
	}
	s.to = append(s.to, to)
	s.subjects = append(s.subjects, subject)
	s.bodies = append(s.bodies, body)
	return sender.SendResult{MessageID: "msg-1", SentAt: time.Now()}, nil
}

// ---- helpers ----

func setupBookingRouter(repo *fakeBookingRepo, snd *fakeSender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	c := controllers.NewBookingController(repo, services.NewMailer(snd))

	r.POST("/api/create-booking-request", c.CreateBooking)
	r.GET("/api/booking-requests", c.ListBookings)
	r.PUT("/api/booking-requests/:id/status", c.UpdateStatus)
	r.PUT("/api/booking-requests/:id/driver-details", c.SetDriverDetails)
	r.POST("/api/send-decline-email", c.SendDeclineEmail)
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ---- tests ----

func TestCreateBooking_StartsPending(t *testing.T) {
	repo := &fakeBookingRepo{}
	r := setupBookingRouter(repo, &fakeSender{})

	w := doJSON(r, http.MethodPost, "/api/create-booking-request", gin.H{
		"serviceType": "outstation",
		"route":       "Delhi → Jaipur",
		"status":      "accepted", // must be ignored
		"traveller":   gin.H{"name": "Asha", "mobile": "9999999999", "email": "asha@example.com"},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Booking request created successfully", resp["message"])
	assert.NotEmpty(t, resp["bookingId"])

	assert.Equal(t, models.BookingPending, repo.inserted.Status)
	assert.Nil(t, repo.inserted.DriverDetails)
}

func TestListBookings_Pagination(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []models.BookingRequest{
		{Route: "Delhi → Agra", Status: models.BookingPending},
		{Route: "Pune → Mumbai", Status: models.BookingAccepted},
	}}
	r := setupBookingRouter(repo, &fakeSender{})

	req := httptest.NewRequest(http.MethodGet, "/api/booking-requests?page=1&limit=10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, float64(2), resp["total"])
	assert.Equal(t, float64(1), resp["page"])
	assert.Equal(t, float64(1), resp["totalPages"])
	assert.Len(t, resp["bookingRequests"], 2)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo := &fakeBookingRepo{booking: &models.BookingRequest{Status: models.BookingPending}}
	r := setupBookingRouter(repo, &fakeSender{})

	w := doJSON(r, http.MethodPut, "/api/booking-requests/abc/status", gin.H{"status": "cancelled"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatus_Accepted(t *testing.T) {
	repo := &fakeBookingRepo{booking: &models.BookingRequest{Status: models.BookingPending}}
	r := setupBookingRouter(repo, &fakeSender{})

	w := doJSON(r, http.MethodPut, "/api/booking-requests/abc/status", gin.H{
		"status":     models.BookingAccepted,
		"adminNotes": "Confirmed on phone",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.BookingAccepted, repo.booking.Status)
	assert.Equal(t, "Confirmed on phone", repo.booking.AdminNotes)
}

func TestSetDriverDetails_SendsEmail(t *testing.T) {
	repo := &fakeBookingRepo{booking: &models.BookingRequest{
		Route:     "Delhi → Jaipur",
		Date:      "2025-09-01",
		Time:      "10:00",
		Status:    models.BookingAccepted,
		Traveller: models.Traveller{Name: "Asha", Email: "asha@example.com"},
	}}
	snd := &fakeSender{}
	r := setupBookingRouter(repo, snd)

	w := doJSON(r, http.MethodPut, "/api/booking-requests/abc/driver-details", gin.H{
		"driverDetails": gin.H{
			"name":           "Ravi",
			"whatsappNumber": "8888888888",
			"vehicleNumber":  "DL 01 AB 1234",
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Driver details added and email sent successfully", resp["message"])

	assert.Equal(t, models.BookingDriverSent, repo.booking.Status)
	assert.Equal(t, []string{"asha@example.com"}, snd.to)
	assert.Contains(t, snd.bodies[0], "Ravi")
	assert.Contains(t, snd.bodies[0], "DL 01 AB 1234")
}

func TestSetDriverDetails_MissingBody(t *testing.T) {
	repo := &fakeBookingRepo{booking: &models.BookingRequest{}}
	r := setupBookingRouter(repo, &fakeSender{})

	w := doJSON(r, http.MethodPut, "/api/booking-requests/abc/driver-details", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{err: mongo.ErrNoDocuments}
	r := setupBookingRouter(repo, &fakeSender{})

	w := doJSON(r, http.MethodPut, "/api/booking-requests/abc/status", gin.H{"status": models.BookingDeclined})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSendDeclineEmail_DefaultReason(t *testing.T) {
	snd := &fakeSender{}
	r := setupBookingRouter(&fakeBookingRepo{}, snd)

	w := doJSON(r, http.MethodPost, "/api/send-decline-email", gin.H{
		"email": "asha@example.com",
		"route": "Delhi → Jaipur",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, snd.bodies[0], "Service temporarily unavailable")
}
