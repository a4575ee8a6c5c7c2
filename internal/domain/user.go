package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ExternalID     string             `bson:"external_id" json:"external_id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone          string             `bson:"phone,omitempty" json:"phone,omitempty"`
	HashedPassword string             `bson:"hashed_password,omitempty" json:"-"`
	Role           string             `bson:"role" json:"role"`
	IsBlocked      bool               `bson:"is_blocked" json:"is_blocked"`
	PhoneVerified  bool               `bson:"phone_verified" json:"phone_verified"`
	GoogleID       string             `bson:"google_id,omitempty" json:"-"`
	Addresses      []Address          `bson:"addresses" json:"addresses"`
	OTP            *OTP               `bson:"otp,omitempty" json:"-"`
	CreatedAt      int64              `bson:"created_at" json:"created_at"`
	UpdatedAt      int64              `bson:"updated_at" json:"updated_at"`
}

type Address struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Phone     string             `bson:"phone" json:"phone"`
	Street    string             `bson:"street" json:"street"`
	City      string             `bson:"city" json:"city"`
	State     string             `bson:"state" json:"state"`
	ZipCode   string             `bson:"zip_code" json:"zip_code"`
	Country   string             `bson:"country" json:"country"`
	IsDefault bool               `bson:"is_default" json:"is_default"`
}

type OTP struct {
	Code      string `bson:"code" json:"-"`
	ExpiresAt int64  `bson:"expires_at" json:"-"`
}
