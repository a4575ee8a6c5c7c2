package repository

import (
	"context"
	"fmt"

	"github.com/anandbhardwaj456/E-commerce-webapp/internal/domain"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBReviewRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewReviewRepository(db *mongo.Database) ReviewRepository {
	return &MongoDBReviewRepositoryImpl{db: db}
}

func (r *MongoDBReviewRepositoryImpl) AddReview(ctx context.Context, data domain.Review) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("reviews").InsertOne(ctx, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddReview").Msg("")
		return
	}

	id = result.InsertedID.(primitive.ObjectID)
	return
}

func (r *MongoDBReviewRepositoryImpl) GetReviewByID(ctx context.Context, id string) (review domain.Review, err error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return review, fmt.Errorf("invalid ID format: %v", err)
	}

	err = r.db.Collection("reviews").FindOne(ctx, bson.M{"_id": objectID}).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return review, errs.ErrReviewNotFound
		}
		return review, fmt.Errorf("failed to retrieve review: %v", err)
	}

	return review, nil
}

func (r *MongoDBReviewRepositoryImpl) GetReviewsByProduct(ctx context.Context, productID string) (reviews []domain.Review, err error) {
	objectID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, fmt.Errorf("invalid ID format: %v", err)
	}

	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection("reviews").Find(ctx, bson.M{"product_id": objectID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve documents: %v", err)
	}

	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %v", err)
	}

	return reviews, nil
}

func (r *MongoDBReviewRepositoryImpl) GetReviewByUserAndProduct(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID) (review domain.Review, err error) {
	filter := bson.M{"user_id": userID, "product_id": productID}

	err = r.db.Collection("reviews").FindOne(ctx, filter).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return review, nil
		}
		return review, fmt.Errorf("failed to retrieve review: %v", err)
	}

	return review, nil
}

func (r *MongoDBReviewRepositoryImpl) UpdateReview(ctx context.Context, data domain.Review) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "rating", Value: data.Rating},
		{Key: "comment", Value: data.Comment},
		{Key: "updated_at", Value: data.UpdatedAt},
	}}}

	result, err := r.db.Collection("reviews").UpdateOne(ctx, filter, update)
	if err != nil {
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrReviewNotFound
	}

	return
}

func (r *MongoDBReviewRepositoryImpl) DeleteReview(ctx context.Context, id string) (err error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid review ID: %v", err)
	}

	result, err := r.db.Collection("reviews").DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete review: %v", err)
	}

	if result.DeletedCount == 0 {
		return errs.ErrReviewNotFound
	}

	return
}

// GetProductRatingSummary computes the mean rating and review count in a
// single aggregation so the recompute never reads stale in-process state.
func (r *MongoDBReviewRepositoryImpl) GetProductRatingSummary(ctx context.Context, productID primitive.ObjectID) (rating float64, count int64, err error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "product_id", Value: productID}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "rating", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.db.Collection("reviews").Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate reviews: %v", err)
	}

	defer cursor.Close(ctx)

	var results []struct {
		Rating float64 `bson:"rating"`
		Count  int64   `bson:"count"`
	}

	if err = cursor.All(ctx, &results); err != nil {
		return 0, 0, fmt.Errorf("failed to decode aggregation result: %v", err)
	}

	if len(results) == 0 {
		return 0, 0, nil
	}

	return results[0].Rating, results[0].Count, nil
}
