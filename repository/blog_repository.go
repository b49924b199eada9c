package repository

import (
	"context"
	"time"

	"github.com/MAyankprine20001/Penta-Cabs/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoBlogRepo struct {
	collection *mongo.Collection
}

func NewMongoBlogRepo(db *mongo.Database) *MongoBlogRepo {
	return &MongoBlogRepo{collection: db.Collection("blogs")}
}

func blogListFilter(status, search string) bson.M {
	filter := bson.M{}
	if status != "" && status != "all" {
		filter["status"] = status
	}
	if search != "" {
		re := containsRegex(search)
		filter["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"excerpt": re},
			bson.M{"tags": re},
		}
	}
	return filter
}

func (r *MongoBlogRepo) List(ctx context.Context, status, search string, limit, skip int) ([]models.Blog, int64, error) {
	filter := blogListFilter(status, search)

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var blogs []models.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return blogs, total, nil
}

func (r *MongoBlogRepo) FindByID(ctx context.Context, id string) (*models.Blog, error) {
	var blog models.Blog
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *MongoBlogRepo) Insert(ctx context.Context, blog *models.Blog) error {
	_, err := r.collection.InsertOne(ctx, blog)
	return err
}

func (r *MongoBlogRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Blog, error) {
	updates["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var blog models.Blog
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": updates}, opts).Decode(&blog)
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *MongoBlogRepo) Delete(ctx context.Context, id string) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
