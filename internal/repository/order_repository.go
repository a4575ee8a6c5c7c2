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

type MongoDBOrderRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewOrderRepository(db *mongo.Database) OrderRepository {
	return &MongoDBOrderRepositoryImpl{db: db}
}

func (r *MongoDBOrderRepositoryImpl) AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("orders").InsertOne(ctx, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Msg("")
		return
	}

	id = result.InsertedID.(primitive.ObjectID)
	return
}

func (r *MongoDBOrderRepositoryImpl) GetOrderByID(ctx context.Context, id string) (order domain.Order, err error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return order, fmt.Errorf("invalid ID format: %v", err)
	}

	err = r.db.Collection("orders").FindOne(ctx, bson.M{"_id": objectID}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return order, errs.ErrOrderNotFound
		}
		return order, fmt.Errorf("failed to retrieve order: %v", err)
	}

	return order, nil
}

func (r *MongoDBOrderRepositoryImpl) GetOrdersByUser(ctx context.Context, userID primitive.ObjectID) (orders []domain.Order, err error) {
	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection("orders").Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve documents: %v", err)
	}

	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %v", err)
	}

	return orders, nil
}

func (r *MongoDBOrderRepositoryImpl) GetOrders(ctx context.Context) (orders []domain.Order, err error) {
	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection("orders").Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve documents: %v", err)
	}

	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %v", err)
	}

	return orders, nil
}

func (r *MongoDBOrderRepositoryImpl) GetRecentOrders(ctx context.Context, limit int64) (orders []domain.Order, err error) {
	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "created_at", Value: -1}})
	findOptions.SetLimit(limit)

	cursor, err := r.db.Collection("orders").Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve documents: %v", err)
	}

	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %v", err)
	}

	return orders, nil
}

func (r *MongoDBOrderRepositoryImpl) UpdateOrderStatus(ctx context.Context, data domain.Order) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: data.Status},
		{Key: "is_delivered", Value: data.IsDelivered},
		{Key: "delivered_at", Value: data.DeliveredAt},
		{Key: "updated_at", Value: data.UpdatedAt},
	}}}

	result, err := r.db.Collection("orders").UpdateOne(ctx, filter, update)
	if err != nil {
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrOrderNotFound
	}

	return
}

func (r *MongoDBOrderRepositoryImpl) UpdateOrderPayment(ctx context.Context, data domain.Order) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "is_paid", Value: data.IsPaid},
		{Key: "paid_at", Value: data.PaidAt},
		{Key: "payment_result", Value: data.PaymentResult},
		{Key: "updated_at", Value: data.UpdatedAt},
	}}}

	result, err := r.db.Collection("orders").UpdateOne(ctx, filter, update)
	if err != nil {
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrOrderNotFound
	}

	return
}

func (r *MongoDBOrderRepositoryImpl) GetStaleUnpaidOrders(ctx context.Context, createdBefore int64) (orders []domain.Order, err error) {
	filter := bson.M{
		"status":     domain.OrderStatusPending,
		"is_paid":    false,
		"created_at": bson.M{"$lt": createdBefore},
	}

	cursor, err := r.db.Collection("orders").Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve documents: %v", err)
	}

	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %v", err)
	}

	return orders, nil
}

func (r *MongoDBOrderRepositoryImpl) CountOrders(ctx context.Context) (total int64, err error) {
	total, err = r.db.Collection("orders").CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %v", err)
	}

	return total, nil
}

func (r *MongoDBOrderRepositoryImpl) GetPaidRevenue(ctx context.Context) (revenue float64, err error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "is_paid", Value: true}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total_price"}}},
		}}},
	}

	cursor, err := r.db.Collection("orders").Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate revenue: %v", err)
	}

	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}

	if err = cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode aggregation result: %v", err)
	}

	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Total, nil
}
