package dto

type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type AddressRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
	IsDefault bool   `json:"is_default"`
}

type OrderRequest struct {
	UserID          string             `json:"-"`
	OrderItems      []OrderItemRequest `json:"order_items"`
	ShippingAddress AddressRequest     `json:"shipping_address"`
	PaymentMethod   string             `json:"payment_method"`
}

type OrderStatusRequest struct {
	OrderID string `json:"-"`
	Status  string `json:"status"`
}
