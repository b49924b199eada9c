package repository

import (
	"context"
	"time"

	"github.com/MAyankprine20001/Penta-Cabs/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoSEORepo struct {
	collection *mongo.Collection
}

func NewMongoSEORepo(db *mongo.Database) *MongoSEORepo {
	return &MongoSEORepo{collection: db.Collection("seoentries")}
}

func (r *MongoSEORepo) List(ctx context.Context) ([]models.SEOEntry, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.SEOEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *MongoSEORepo) Get(ctx context.Context, page string) (*models.SEOEntry, error) {
	var entry models.SEOEntry
	if err := r.collection.FindOne(ctx, bson.M{"_id": page}).Decode(&entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *MongoSEORepo) Upsert(ctx context.Context, entry *models.SEOEntry) error {
	entry.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"title":       entry.Title,
		"description": entry.Description,
		"keywords":    entry.Keywords,
		"updatedAt":   entry.UpdatedAt,
	}}
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": entry.Page}, update, opts)
	return err
}

func (r *MongoSEORepo) Delete(ctx context.Context, page string) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": page})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
