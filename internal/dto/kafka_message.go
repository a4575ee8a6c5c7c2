package dto

const (
	EventOrderCreated       = "order_created"
	EventOrderPaid          = "order_paid"
	EventOrderStatusUpdated = "order_status_updated"
	EventUserRegistered     = "user_registered"
)

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

type OrderEvent struct {
	OrderID     string  `json:"order_id"`
	OrderNumber string  `json:"order_number"`
	UserID      string  `json:"user_id"`
	UserEmail   string  `json:"user_email,omitempty"`
	TotalPrice  float64 `json:"total_price"`
	Status      string  `json:"status"`
}

type UserEvent struct {
	UserID     string `json:"user_id"`
	ExternalID string `json:"external_id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
}
