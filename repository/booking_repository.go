package repository

import (
	"context"
	"time"

	"github.com/MAyankprine20001/Penta-Cabs/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoBookingRepo struct {
	collection *mongo.Collection
}

func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return &MongoBookingRepo{collection: db.Collection("bookingrequests")}
}

func (r *MongoBookingRepo) Insert(ctx context.Context, booking *models.BookingRequest) (string, error) {
	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	if booking.Status == "" {
		booking.Status = models.BookingPending
	}
	result, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return "", err
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", mongo.ErrNilDocument
	}
	booking.ID = oid
	return oid.Hex(), nil
}

func (r *MongoBookingRepo) List(ctx context.Context, limit, skip int) ([]models.BookingRequest, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.BookingRequest
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *MongoBookingRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, id, status, adminNotes string) (*models.BookingRequest, error) {
	return r.findOneAndSet(ctx, id, bson.M{
		"status":     status,
		"adminNotes": adminNotes,
	})
}

func (r *MongoBookingRepo) SetDriverDetails(ctx context.Context, id string, details models.DriverDetails) (*models.BookingRequest, error) {
	return r.findOneAndSet(ctx, id, bson.M{
		"driverDetails": details,
		"status":        models.BookingDriverSent,
	})
}

func (r *MongoBookingRepo) findOneAndSet(ctx context.Context, id string, updates bson.M) (*models.BookingRequest, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	updates["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var booking models.BookingRequest
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": updates}, opts).Decode(&booking)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
