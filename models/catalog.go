package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Car types offered on every route.
const (
	CarSedan  = "sedan"
	CarSUV    = "suv"
	CarInnova = "innova"
	CarCrysta = "crysta"
)

// Car is the per-vehicle availability and fare entry embedded in every
// catalog document.
type Car struct {
	Type      string  `json:"type" bson:"type"`
	Available bool    `json:"available" bson:"available"`
	Price     float64 `json:"price" bson:"price"`
}

// AirportEntry is one airport transfer offering (a city/location pair in one
// direction, with its car options).
type AirportEntry struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	AirportCity   string             `json:"airportCity" bson:"airportCity"`
	AirportName   string             `json:"airportName,omitempty" bson:"airportName,omitempty"`
	AirportCode   string             `json:"airportCode,omitempty" bson:"airportCode,omitempty"`
	ServiceType   string             `json:"serviceType" bson:"serviceType"` // "drop" or "pick"
	OtherLocation string             `json:"otherLocation" bson:"otherLocation"`
	DateTime      time.Time          `json:"dateTime,omitempty" bson:"dateTime,omitempty"`
	Distance      float64            `json:"distance,omitempty" bson:"distance,omitempty"`
	Cars          []Car              `json:"cars" bson:"cars"`
	CreatedAt     time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt     time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// OutstationEntry is one intercity route with its car options.
type OutstationEntry struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	City1     string             `json:"city1" bson:"city1"`
	City2     string             `json:"city2" bson:"city2"`
	DateTime  time.Time          `json:"dateTime,omitempty" bson:"dateTime,omitempty"`
	Distance  float64            `json:"distance,omitempty" bson:"distance,omitempty"`
	TripType  string             `json:"tripType" bson:"tripType"` // "one-way" or "two-way"
	Cars      []Car              `json:"cars" bson:"cars"`
	CreatedAt time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// LocalRideEntry is one city/package combination for local hourly rides.
type LocalRideEntry struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	City      string             `json:"city" bson:"city"`
	Package   string             `json:"package" bson:"package"`
	DateTime  time.Time          `json:"dateTime,omitempty" bson:"dateTime,omitempty"`
	Cars      []Car              `json:"cars" bson:"cars"`
	CreatedAt time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// AvailableCars filters a car list down to the bookable ones.
func AvailableCars(cars []Car) []Car {
	available := make([]Car, 0, len(cars))
	for _, car := range cars {
		if car.Available {
			available = append(available, car)
		}
	}
	return available
}
