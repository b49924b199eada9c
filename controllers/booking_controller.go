package controllers

import (
	"net/http"

	"github.com/MAyankprine20001/Penta-Cabs/models"
	"github.com/MAyankprine20001/Penta-Cabs/repository"
	"github.com/MAyankprine20001/Penta-Cabs/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingController struct {
	Repo   repository.BookingRepo
	Mailer *services.Mailer
}

func NewBookingController(repo repository.BookingRepo, mailer *services.Mailer) *BookingController {
	return &BookingController{Repo: repo, Mailer: mailer}
}

// CreateBooking handles POST /api/create-booking-request. New bookings
// always start in the pending state.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var booking models.BookingRequest
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	booking.Status = models.BookingPending
	booking.DriverDetails = nil

	id, err := bc.Repo.Insert(c.Request.Context(), &booking)
	if err != nil {
		zap.L().Error("Booking insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":   "Booking request created successfully",
		"bookingId": id,
	})
}

// ListBookings handles GET /api/booking-requests.
func (bc *BookingController) ListBookings(c *gin.Context) {
	page, limit, skip := parsePageLimit(c)

	bookings, err := bc.Repo.List(c.Request.Context(), limit, skip)
	if err != nil {
		zap.L().Error("Booking list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	total, err := bc.Repo.Count(c.Request.Context())
	if err != nil {
		zap.L().Error("Booking count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	c.JSON(http.StatusOK, gin.H{
		"bookingRequests": bookings,
		"total":           total,
		"page":            page,
		"totalPages":      totalPages,
	})
}

type bookingStatusRequest struct {
	Status     string `json:"status"`
	AdminNotes string `json:"adminNotes"`
}

// UpdateStatus handles PUT /api/booking-requests/:id/status.
func (bc *BookingController) UpdateStatus(c *gin.Context) {
	var req bookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !models.ValidBookingStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	booking, err := bc.Repo.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, req.AdminNotes)
	if err != nil {
		respondRepoError(c, err, "Booking request not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "Booking request status updated successfully",
		"bookingRequest": booking,
	})
}

type driverDetailsRequest struct {
	DriverDetails *models.DriverDetails `json:"driverDetails"`
}

// SetDriverDetails handles PUT /api/booking-requests/:id/driver-details:
// stores the driver, moves the booking to driver_sent and emails the
// traveller.
func (bc *BookingController) SetDriverDetails(c *gin.Context) {
	var req driverDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.DriverDetails == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing driver details"})
		return
	}

	booking, err := bc.Repo.SetDriverDetails(c.Request.Context(), c.Param("id"), *req.DriverDetails)
	if err != nil {
		respondRepoError(c, err, "Booking request not found")
		return
	}

	if err := bc.Mailer.SendDriverDetails(c.Request.Context(), booking.Traveller.Email, booking, *req.DriverDetails); err != nil {
		zap.L().Error("Driver details email failed",
			zap.String("bookingId", booking.ID.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send driver details email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Driver details added and email sent successfully",
		"bookingRequest": booking,
	})
}

type declineEmailRequest struct {
	Email  string `json:"email"`
	Route  string `json:"route"`
	Reason string `json:"reason"`
}

// SendDeclineEmail handles POST /api/send-decline-email.
func (bc *BookingController) SendDeclineEmail(c *gin.Context) {
	var req declineEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email"})
		return
	}
	if err := bc.Mailer.SendDecline(c.Request.Context(), req.Email, req.Route, req.Reason); err != nil {
		zap.L().Error("Decline email failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send decline email"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Decline email sent successfully"})
}
