package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderNumber     string             `bson:"order_number" json:"order_number"`
	UserID          primitive.ObjectID `bson:"user_id" json:"user_id"`
	OrderItems      []OrderItem        `bson:"order_items" json:"order_items"`
	ShippingAddress Address            `bson:"shipping_address" json:"shipping_address"`
	PaymentMethod   string             `bson:"payment_method" json:"payment_method"`
	ItemsPrice      float64            `bson:"items_price" json:"items_price"`
	TaxPrice        float64            `bson:"tax_price" json:"tax_price"`
	ShippingPrice   float64            `bson:"shipping_price" json:"shipping_price"`
	TotalPrice      float64            `bson:"total_price" json:"total_price"`
	IsPaid          bool               `bson:"is_paid" json:"is_paid"`
	PaidAt          *int64             `bson:"paid_at,omitempty" json:"paid_at,omitempty"`
	PaymentResult   *PaymentResult     `bson:"payment_result,omitempty" json:"payment_result,omitempty"`
	Status          string             `bson:"status" json:"status"`
	IsDelivered     bool               `bson:"is_delivered" json:"is_delivered"`
	DeliveredAt     *int64             `bson:"delivered_at,omitempty" json:"delivered_at,omitempty"`
	CreatedAt       int64              `bson:"created_at" json:"created_at"`
	UpdatedAt       int64              `bson:"updated_at" json:"updated_at"`
}

// OrderItem is a snapshot of the product at order time. Later product
// edits never change persisted orders.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"product_id"`
	Name      string             `bson:"name" json:"name"`
	Image     string             `bson:"image" json:"image"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int64              `bson:"quantity" json:"quantity"`
}

type PaymentResult struct {
	TransactionID string `bson:"transaction_id" json:"transaction_id"`
	Status        string `bson:"status" json:"status"`
	Receipt       string `bson:"receipt" json:"receipt"`
}
