package dto

import "github.com/anandbhardwaj456/E-commerce-webapp/internal/domain"

type OrderResponse struct {
	ID              string             `json:"id"`
	OrderNumber     string             `json:"order_number"`
	UserID          string             `json:"user_id"`
	UserName        string             `json:"user_name,omitempty"`
	OrderItems      []domain.OrderItem `json:"order_items"`
	ShippingAddress domain.Address     `json:"shipping_address"`
	PaymentMethod   string             `json:"payment_method"`
	ItemsPrice      float64            `json:"items_price"`
	TaxPrice        float64            `json:"tax_price"`
	ShippingPrice   float64            `json:"shipping_price"`
	TotalPrice      float64            `json:"total_price"`
	IsPaid          bool               `json:"is_paid"`
	PaidAt          *int64             `json:"paid_at,omitempty"`
	Status          string             `json:"status"`
	IsDelivered     bool               `json:"is_delivered"`
	DeliveredAt     *int64             `json:"delivered_at,omitempty"`
	CreatedAt       int64              `json:"created_at"`
}
