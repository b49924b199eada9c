package repository

import (
	"context"
	"time"

	"github.com/MAyankprine20001/Penta-Cabs/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoLocalRepo struct {
	collection *mongo.Collection
}

func NewMongoLocalRepo(db *mongo.Database) *MongoLocalRepo {
	return &MongoLocalRepo{collection: db.Collection("localrideentries")}
}

func localSearchFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	re := containsRegex(search)
	return bson.M{"$or": bson.A{
		bson.M{"city": re},
		bson.M{"package": re},
	}}
}

func (r *MongoLocalRepo) List(ctx context.Context, search string, limit, skip int) ([]models.LocalRideEntry, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, localSearchFilter(search), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.LocalRideEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *MongoLocalRepo) Count(ctx context.Context, search string) (int64, error) {
	return r.collection.CountDocuments(ctx, localSearchFilter(search))
}

func (r *MongoLocalRepo) FindByID(ctx context.Context, id string) (*models.LocalRideEntry, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var entry models.LocalRideEntry
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *MongoLocalRepo) InsertMany(ctx context.Context, entries []models.LocalRideEntry) error {
	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(entries))
	for i := range entries {
		entries[i].CreatedAt = now
		entries[i].UpdatedAt = now
		docs = append(docs, entries[i])
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *MongoLocalRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.LocalRideEntry, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	updates["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var entry models.LocalRideEntry
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": updates}, opts).Decode(&entry)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *MongoLocalRepo) Delete(ctx context.Context, id string) (int64, error) {
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

func (r *MongoLocalRepo) FindRide(ctx context.Context, city, ridePackage string) (*models.LocalRideEntry, error) {
	filter := bson.M{
		"city":    exactRegex(city),
		"package": ridePackage,
	}
	var entry models.LocalRideEntry
	if err := r.collection.FindOne(ctx, filter).Decode(&entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *MongoLocalRepo) FindWithAvailableCars(ctx context.Context) ([]models.LocalRideEntry, error) {
	projection := options.Find().SetProjection(bson.M{"city": 1, "_id": 0})
	cursor, err := r.collection.Find(ctx, bson.M{"cars.available": true}, projection)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.LocalRideEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
