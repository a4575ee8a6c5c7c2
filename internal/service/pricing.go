package service

import "github.com/anandbhardwaj456/E-commerce-webapp/internal/domain"

const (
	taxRate               = 0.10
	freeShippingThreshold = 1000.0
	flatShippingFee       = 50.0
)

type OrderPricing struct {
	ItemsPrice    float64
	TaxPrice      float64
	ShippingPrice float64
	TotalPrice    float64
}

// PriceOrder computes the checkout totals from the snapshot line items.
// Tax is a flat 10% on the subtotal; shipping is waived only when the
// subtotal is strictly above the free-shipping threshold, so a subtotal
// of exactly 1000 still pays the flat fee.
func PriceOrder(items []domain.OrderItem) OrderPricing {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	shipping := flatShippingFee
	if subtotal > freeShippingThreshold {
		shipping = 0
	}

	tax := subtotal * taxRate

	return OrderPricing{
		ItemsPrice:    subtotal,
		TaxPrice:      tax,
		ShippingPrice: shipping,
		TotalPrice:    subtotal + tax + shipping,
	}
}
