package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking status lifecycle: pending -> accepted/declined -> driver_sent.
const (
	BookingPending    = "pending"
	BookingAccepted   = "accepted"
	BookingDeclined   = "declined"
	BookingDriverSent = "driver_sent"
)

// ValidBookingStatus reports whether s is one of the lifecycle values.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingAccepted, BookingDeclined, BookingDriverSent:
		return true
	}
	return false
}

// Traveller holds the customer details captured with a booking request.
type Traveller struct {
	Name   string `json:"name" bson:"name"`
	Mobile string `json:"mobile" bson:"mobile"`
	Email  string `json:"email" bson:"email"`
	Pickup string `json:"pickup,omitempty" bson:"pickup,omitempty"`
	Drop   string `json:"drop,omitempty" bson:"drop,omitempty"`
	Remark string `json:"remark,omitempty" bson:"remark,omitempty"`
	GST    string `json:"gst,omitempty" bson:"gst,omitempty"`
}

// DriverDetails is filled in by the admin once a driver is assigned.
type DriverDetails struct {
	Name           string `json:"name" bson:"name"`
	WhatsappNumber string `json:"whatsappNumber" bson:"whatsappNumber"`
	VehicleNumber  string `json:"vehicleNumber" bson:"vehicleNumber"`
}

// BookingRequest is a customer's ride request awaiting admin action.
type BookingRequest struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ServiceType   string             `json:"serviceType,omitempty" bson:"serviceType,omitempty"` // airport / local / outstation
	Route         string             `json:"route" bson:"route"`
	Date          string             `json:"date,omitempty" bson:"date,omitempty"`
	Time          string             `json:"time,omitempty" bson:"time,omitempty"`
	CarType       string             `json:"carType,omitempty" bson:"carType,omitempty"`
	Amount        float64            `json:"amount,omitempty" bson:"amount,omitempty"`
	Traveller     Traveller          `json:"traveller" bson:"traveller"`
	Status        string             `json:"status" bson:"status"`
	AdminNotes    string             `json:"adminNotes,omitempty" bson:"adminNotes,omitempty"`
	DriverDetails *DriverDetails     `json:"driverDetails,omitempty" bson:"driverDetails,omitempty"`
	CreatedAt     time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt     time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
