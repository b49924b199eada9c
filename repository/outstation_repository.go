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

type MongoOutstationRepo struct {
	collection *mongo.Collection
}

func NewMongoOutstationRepo(db *mongo.Database) *MongoOutstationRepo {
	return &MongoOutstationRepo{collection: db.Collection("outstationentries")}
}

func (r *MongoOutstationRepo) List(ctx context.Context, limit, skip int) ([]models.OutstationEntry, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var routes []models.OutstationEntry
	if err := cursor.All(ctx, &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

func (r *MongoOutstationRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *MongoOutstationRepo) FindByID(ctx context.Context, id string) (*models.OutstationEntry, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var route models.OutstationEntry
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&route); err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *MongoOutstationRepo) Insert(ctx context.Context, entry *models.OutstationEntry) error {
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

func (r *MongoOutstationRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.OutstationEntry, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	updates["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var route models.OutstationEntry
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": updates}, opts).Decode(&route)
	if err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *MongoOutstationRepo) Delete(ctx context.Context, id string) (int64, error) {
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

func (r *MongoOutstationRepo) FindRoute(ctx context.Context, city1, city2, tripType string) (*models.OutstationEntry, error) {
	filter := bson.M{
		"city1":    exactRegex(city1),
		"city2":    exactRegex(city2),
		"tripType": tripType,
	}
	var route models.OutstationEntry
	if err := r.collection.FindOne(ctx, filter).Decode(&route); err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *MongoOutstationRepo) FindWithAvailableCars(ctx context.Context) ([]models.OutstationEntry, error) {
	projection := options.Find().SetProjection(bson.M{
		"city1":    1,
		"city2":    1,
		"tripType": 1,
		"_id":      0,
	})
	cursor, err := r.collection.Find(ctx, bson.M{"cars.available": true}, projection)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var routes []models.OutstationEntry
	if err := cursor.All(ctx, &routes); err != nil {
		return nil, err
	}
	return routes, nil
}
