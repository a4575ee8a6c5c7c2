package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	AdTypeBanner = "banner"
	AdTypeSlider = "slider"
)

type Advertisement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`
	Link        string             `bson:"link" json:"link"`
	Type        string             `bson:"type" json:"type"`
	IsActive    bool               `bson:"is_active" json:"is_active"`
	Order       int64              `bson:"order" json:"order"`
	CreatedAt   int64              `bson:"created_at" json:"created_at"`
	UpdatedAt   int64              `bson:"updated_at" json:"updated_at"`
}
