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

type MongoAirportRepo struct {
	collection *mongo.Collection
}

func NewMongoAirportRepo(db *mongo.Database) *MongoAirportRepo {
	return &MongoAirportRepo{collection: db.Collection("airportentries")}
}

func airportSearchFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	re := containsRegex(search)
	return bson.M{"$or": bson.A{
		bson.M{"airportCity": re},
		bson.M{"otherLocation": re},
		bson.M{"serviceType": re},
	}}
}

func (r *MongoAirportRepo) List(ctx context.Context, search string, limit, skip int) ([]models.AirportEntry, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, airportSearchFilter(search), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.AirportEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *MongoAirportRepo) Count(ctx context.Context, search string) (int64, error) {
	return r.collection.CountDocuments(ctx, airportSearchFilter(search))
}

func (r *MongoAirportRepo) FindByID(ctx context.Context, id string) (*models.AirportEntry, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var entry models.AirportEntry
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *MongoAirportRepo) Insert(ctx context.Context, entry *models.AirportEntry) error {
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		entry.ID = oid
	}
	return nil
}

func (r *MongoAirportRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.AirportEntry, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	updates["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var entry models.AirportEntry
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": updates}, opts).Decode(&entry)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *MongoAirportRepo) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *MongoAirportRepo) FindRoute(ctx context.Context, serviceType, airportCity, otherLocation string) (*models.AirportEntry, error) {
	filter := bson.M{
		"airportCity":   exactRegex(airportCity),
		"otherLocation": exactRegex(otherLocation),
		"serviceType":   serviceType,
	}
	var entry models.AirportEntry
	if err := r.collection.FindOne(ctx, filter).Decode(&entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *MongoAirportRepo) FindWithAvailableCars(ctx context.Context) ([]models.AirportEntry, error) {
	projection := options.Find().SetProjection(bson.M{
		"airportCity":   1,
		"otherLocation": 1,
		"serviceType":   1,
		"_id":           0,
	})
	cursor, err := r.collection.Find(ctx, bson.M{"cars.available": true}, projection)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.AirportEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
