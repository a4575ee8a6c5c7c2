package dto

type CreatePaymentRequest struct {
	UserID  string `json:"-"`
	OrderID string `json:"order_id"`
}

type CreatePaymentResponse struct {
	OrderNumber   string  `json:"order_number"`
	TransactionID string  `json:"transaction_id"`
	GrossAmount   float64 `json:"gross_amount"`
	PaymentStatus string  `json:"payment_status"`
	QRCode        string  `json:"qr_code,omitempty"`
}

type VerifyPaymentRequest struct {
	UserID  string `json:"-"`
	OrderID string `json:"order_id"`
}
