package repository

import (
	"context"

	"github.com/MAyankprine20001/Penta-Cabs/models"
)

// AirportRepo defines the airport-transfer catalog operations used by the
// controllers. Interfaces use plain Go types so handlers can be tested with
// fakes.
type AirportRepo interface {
	List(ctx context.Context, search string, limit, skip int) ([]models.AirportEntry, error)
	Count(ctx context.Context, search string) (int64, error)
	FindByID(ctx context.Context, id string) (*models.AirportEntry, error)
	Insert(ctx context.Context, entry *models.AirportEntry) error
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.AirportEntry, error)
	Delete(ctx context.Context, id string) (int64, error)
	FindRoute(ctx context.Context, serviceType, airportCity, otherLocation string) (*models.AirportEntry, error)
	FindWithAvailableCars(ctx context.Context) ([]models.AirportEntry, error)
}

// LocalRepo defines the local-ride catalog operations.
type LocalRepo interface {
	List(ctx context.Context, search string, limit, skip int) ([]models.LocalRideEntry, error)
	Count(ctx context.Context, search string) (int64, error)
	FindByID(ctx context.Context, id string) (*models.LocalRideEntry, error)
	InsertMany(ctx context.Context, entries []models.LocalRideEntry) error
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.LocalRideEntry, error)
	Delete(ctx context.Context, id string) (int64, error)
	FindRide(ctx context.Context, city, ridePackage string) (*models.LocalRideEntry, error)
	FindWithAvailableCars(ctx context.Context) ([]models.LocalRideEntry, error)
}

// OutstationRepo defines the intercity catalog operations.
type OutstationRepo interface {
	List(ctx context.Context, limit, skip int) ([]models.OutstationEntry, error)
	Count(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id string) (*models.OutstationEntry, error)
	Insert(ctx context.Context, entry *models.OutstationEntry) error
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.OutstationEntry, error)
	Delete(ctx context.Context, id string) (int64, error)
	FindRoute(ctx context.Context, city1, city2, tripType string) (*models.OutstationEntry, error)
	FindWithAvailableCars(ctx context.Context) ([]models.OutstationEntry, error)
}

// BookingRepo defines booking-request persistence.
type BookingRepo interface {
	Insert(ctx context.Context, booking *models.BookingRequest) (string, error)
	List(ctx context.Context, limit, skip int) ([]models.BookingRequest, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id, status, adminNotes string) (*models.BookingRequest, error)
	SetDriverDetails(ctx context.Context, id string, details models.DriverDetails) (*models.BookingRequest, error)
}

// BlogRepo defines blog persistence.
type BlogRepo interface {
	List(ctx context.Context, status, search string, limit, skip int) ([]models.Blog, int64, error)
	FindByID(ctx context.Context, id string) (*models.Blog, error)
	Insert(ctx context.Context, blog *models.Blog) error
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Blog, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// SEORepo defines SEO metadata persistence.
type SEORepo interface {
	List(ctx context.Context) ([]models.SEOEntry, error)
	Get(ctx context.Context, page string) (*models.SEOEntry, error)
	Upsert(ctx context.Context, entry *models.SEOEntry) error
	Delete(ctx context.Context, page string) (int64, error)
}
