package repository

import (
	"context"
	"fmt"

	"github.com/anandbhardwaj456/E-commerce-webapp/internal/domain"
	pkgdto "github.com/anandbhardwaj456/E-commerce-webapp/pkg/dto"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewProductRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("products").InsertOne(ctx, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	id = result.InsertedID.(primitive.ObjectID)
	return
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context, filter pkgdto.Filter, activeOnly bool) (data []domain.Product, total int64, err error) {
	query := bson.M{}

	if activeOnly {
		query["is_active"] = true
	}

	if filter.Keyword != "" {
		regex := bson.M{"$regex": filter.Keyword, "$options": "i"}
		query["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"description": regex},
			bson.M{"category": regex},
			bson.M{"brand": regex},
		}
	}

	if filter.Category != "" {
		query["category"] = filter.Category
	}

	if filter.MinPrice > 0 || filter.MaxPrice > 0 {
		price := bson.M{}
		if filter.MinPrice > 0 {
			price["$gte"] = filter.MinPrice
		}
		if filter.MaxPrice > 0 {
			price["$lte"] = filter.MaxPrice
		}
		query["price"] = price
	}

	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		findOptions.SetLimit(int64(filter.Limit))
		findOptions.SetSkip(int64((filter.Page - 1) * filter.Limit))
	}

	cursor, err := r.db.Collection("products").Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve documents: %v", err)
	}

	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		return nil, 0, fmt.Errorf("failed to decode documents: %v", err)
	}

	total, err = r.db.Collection("products").CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count documents: %v", err)
	}

	return data, total, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product, fmt.Errorf("invalid ID format: %v", err)
	}

	err = r.db.Collection("products").FindOne(ctx, bson.M{"_id": objectID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrProductNotFound
		}
		return product, fmt.Errorf("failed to retrieve product: %v", err)
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: data.Name},
		{Key: "description", Value: data.Description},
		{Key: "price", Value: data.Price},
		{Key: "stock", Value: data.Stock},
		{Key: "category", Value: data.Category},
		{Key: "brand", Value: data.Brand},
		{Key: "images", Value: data.Images},
		{Key: "is_active", Value: data.IsActive},
		{Key: "updated_at", Value: data.UpdatedAt},
	}}}

	result, err := r.db.Collection("products").UpdateOne(ctx, filter, update)
	if err != nil {
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrProductNotFound
	}

	return
}

func (r *MongoDBProductRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid product ID: %v", err)
	}

	result, err := r.db.Collection("products").DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete product: %v", err)
	}

	if result.DeletedCount == 0 {
		return errs.ErrProductNotFound
	}

	return
}

func (r *MongoDBProductRepositoryImpl) GetCategories(ctx context.Context) (categories []string, err error) {
	values, err := r.db.Collection("products").Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %v", err)
	}

	for _, v := range values {
		if category, ok := v.(string); ok {
			categories = append(categories, category)
		}
	}

	return categories, nil
}

// UpdateProductRating writes a freshly computed aggregate onto the
// product. A missing product is a no-op: reviews may outlive the
// product they reference.
func (r *MongoDBProductRepositoryImpl) UpdateProductRating(ctx context.Context, productID primitive.ObjectID, rating float64, numReviews int64) (err error) {
	filter := bson.M{"_id": productID}
	update := bson.M{
		"$set": bson.M{"rating": rating, "num_reviews": numReviews},
	}

	_, err = r.db.Collection("products").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProductRating").Msg("")
		return
	}

	return
}

func (r *MongoDBProductRepositoryImpl) ReduceProductStock(ctx context.Context, productID string, quantity int64) error {
	objectID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return fmt.Errorf("invalid product ID: %v", err)
	}

	filter := bson.M{"_id": objectID, "stock": bson.M{"$gte": quantity}}
	update := bson.M{
		"$inc": bson.M{"stock": -quantity},
	}

	result, err := r.db.Collection("products").UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update product stock: %v", err)
	}

	if result.ModifiedCount == 0 {
		return errs.ErrInsufficientStock
	}

	return nil
}

func (r *MongoDBProductRepositoryImpl) RestoreProductStock(ctx context.Context, productID string, quantity int64) error {
	objectID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return fmt.Errorf("invalid product ID: %v", err)
	}

	update := bson.M{
		"$inc": bson.M{"stock": quantity},
	}

	_, err = r.db.Collection("products").UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to restore product stock: %v", err)
	}

	return nil
}

func (r *MongoDBProductRepositoryImpl) CountProducts(ctx context.Context) (total int64, err error) {
	total, err = r.db.Collection("products").CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %v", err)
	}

	return total, nil
}

func (r *MongoDBProductRepositoryImpl) HandleTrx(ctx context.Context, fn func(sessCtx mongo.SessionContext) error) error {
	session, err := r.db.Client().StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %v", err)
	}
	defer session.EndSession(ctx)

	// Writes issued inside fn must use sessCtx so they abort together.
	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		err := fn(sessCtx)
		if err != nil {
			log.Error().Err(err).Str("component", "HandleTrx").Msg("")
			return nil, err
		}

		return nil, nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}
