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

type MongoDBUserRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewUserRepository(db *mongo.Database) UserRepository {
	return &MongoDBUserRepositoryImpl{db: db}
}

func (r *MongoDBUserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("users").InsertOne(ctx, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
		return
	}

	id = result.InsertedID.(primitive.ObjectID)
	return
}

func (r *MongoDBUserRepositoryImpl) GetUserByID(ctx context.Context, id string) (user domain.User, err error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return user, fmt.Errorf("invalid ID format: %v", err)
	}

	err = r.db.Collection("users").FindOne(ctx, bson.M{"_id": objectID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, errs.ErrUserNotFound
		}
		return user, fmt.Errorf("failed to retrieve user: %v", err)
	}

	return user, nil
}

func (r *MongoDBUserRepositoryImpl) getUserByField(ctx context.Context, field string, value string) (user domain.User, err error) {
	err = r.db.Collection("users").FindOne(ctx, bson.M{field: value}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, nil
		}
		return user, fmt.Errorf("failed to retrieve user: %v", err)
	}

	return user, nil
}

func (r *MongoDBUserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (user domain.User, err error) {
	return r.getUserByField(ctx, "email", email)
}

func (r *MongoDBUserRepositoryImpl) GetUserByPhone(ctx context.Context, phone string) (user domain.User, err error) {
	return r.getUserByField(ctx, "phone", phone)
}

func (r *MongoDBUserRepositoryImpl) GetUserByGoogleID(ctx context.Context, googleID string) (user domain.User, err error) {
	return r.getUserByField(ctx, "google_id", googleID)
}

func (r *MongoDBUserRepositoryImpl) GetUsers(ctx context.Context) (users []domain.User, err error) {
	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection("users").Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve documents: %v", err)
	}

	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %v", err)
	}

	return users, nil
}

func (r *MongoDBUserRepositoryImpl) UpdateUser(ctx context.Context, data domain.User) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: data.Name},
		{Key: "email", Value: data.Email},
		{Key: "hashed_password", Value: data.HashedPassword},
		{Key: "updated_at", Value: data.UpdatedAt},
	}}}

	result, err := r.db.Collection("users").UpdateOne(ctx, filter, update)
	if err != nil {
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrUserNotFound
	}

	return
}

func (r *MongoDBUserRepositoryImpl) SetUserOTP(ctx context.Context, userID primitive.ObjectID, otp domain.OTP) (err error) {
	filter := bson.M{"_id": userID}
	update := bson.M{
		"$set": bson.M{"otp": otp},
	}

	result, err := r.db.Collection("users").UpdateOne(ctx, filter, update)
	if err != nil {
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrUserNotFound
	}

	return
}

func (r *MongoDBUserRepositoryImpl) ClearUserOTP(ctx context.Context, userID primitive.ObjectID, phoneVerified bool) (err error) {
	filter := bson.M{"_id": userID}
	update := bson.M{
		"$unset": bson.M{"otp": ""},
		"$set":   bson.M{"phone_verified": phoneVerified},
	}

	result, err := r.db.Collection("users").UpdateOne(ctx, filter, update)
	if err != nil {
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrUserNotFound
	}

	return
}

func (r *MongoDBUserRepositoryImpl) SetUserBlocked(ctx context.Context, id string, blocked bool) (err error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid user ID: %v", err)
	}

	result, err := r.db.Collection("users").UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{
		"$set": bson.M{"is_blocked": blocked},
	})
	if err != nil {
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrUserNotFound
	}

	return
}

func (r *MongoDBUserRepositoryImpl) SetGoogleID(ctx context.Context, userID primitive.ObjectID, googleID string) (err error) {
	result, err := r.db.Collection("users").UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$set": bson.M{"google_id": googleID},
	})
	if err != nil {
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrUserNotFound
	}

	return
}

func (r *MongoDBUserRepositoryImpl) UpdateAddresses(ctx context.Context, userID primitive.ObjectID, addresses []domain.Address) (err error) {
	result, err := r.db.Collection("users").UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$set": bson.M{"addresses": addresses},
	})
	if err != nil {
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrUserNotFound
	}

	return
}

func (r *MongoDBUserRepositoryImpl) CountUsersByRole(ctx context.Context, role string) (total int64, err error) {
	total, err = r.db.Collection("users").CountDocuments(ctx, bson.M{"role": role})
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %v", err)
	}

	return total, nil
}
