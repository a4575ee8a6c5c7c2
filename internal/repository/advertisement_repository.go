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

type MongoDBAdvertisementRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewAdvertisementRepository(db *mongo.Database) AdvertisementRepository {
	return &MongoDBAdvertisementRepositoryImpl{db: db}
}

func (r *MongoDBAdvertisementRepositoryImpl) AddAdvertisement(ctx context.Context, data domain.Advertisement) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("advertisements").InsertOne(ctx, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddAdvertisement").Msg("")
		return
	}

	id = result.InsertedID.(primitive.ObjectID)
	return
}

func (r *MongoDBAdvertisementRepositoryImpl) GetAdvertisements(ctx context.Context, activeOnly bool, adType string) (ads []domain.Advertisement, err error) {
	query := bson.M{}

	if activeOnly {
		query["is_active"] = true
	}

	if adType != "" {
		query["type"] = adType
	}

	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection("advertisements").Find(ctx, query, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve documents: %v", err)
	}

	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &ads); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %v", err)
	}

	return ads, nil
}

func (r *MongoDBAdvertisementRepositoryImpl) GetAdvertisementByID(ctx context.Context, id string) (ad domain.Advertisement, err error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ad, fmt.Errorf("invalid ID format: %v", err)
	}

	err = r.db.Collection("advertisements").FindOne(ctx, bson.M{"_id": objectID}).Decode(&ad)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return ad, errs.ErrAdNotFound
		}
		return ad, fmt.Errorf("failed to retrieve advertisement: %v", err)
	}

	return ad, nil
}

func (r *MongoDBAdvertisementRepositoryImpl) UpdateAdvertisement(ctx context.Context, data domain.Advertisement) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: data.Title},
		{Key: "description", Value: data.Description},
		{Key: "image", Value: data.Image},
		{Key: "link", Value: data.Link},
		{Key: "type", Value: data.Type},
		{Key: "is_active", Value: data.IsActive},
		{Key: "order", Value: data.Order},
		{Key: "updated_at", Value: data.UpdatedAt},
	}}}

	result, err := r.db.Collection("advertisements").UpdateOne(ctx, filter, update)
	if err != nil {
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrAdNotFound
	}

	return
}

func (r *MongoDBAdvertisementRepositoryImpl) DeleteAdvertisement(ctx context.Context, id string) (err error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid advertisement ID: %v", err)
	}

	result, err := r.db.Collection("advertisements").DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete advertisement: %v", err)
	}

	if result.DeletedCount == 0 {
		return errs.ErrAdNotFound
	}

	return
}
