package paymentgateway

import (
	"fmt"

	"github.com/anandbhardwaj456/E-commerce-webapp/internal/domain"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
)

type MidtransGateway struct {
	client *coreapi.Client
}

func CreateMidtransGateway(client *coreapi.Client) *MidtransGateway {
	return &MidtransGateway{client: client}
}

func (g *MidtransGateway) ChargeOrder(order domain.Order) (result domain.PaymentResult, err error) {
	chargeItems := make([]midtrans.ItemDetails, 0, len(order.OrderItems)+2)
	for _, item := range order.OrderItems {
		chargeItems = append(chargeItems, midtrans.ItemDetails{
			ID:    item.ProductID.Hex(),
			Price: int64(item.Price),
			Qty:   int32(item.Quantity),
			Name:  item.Name,
		})
	}

	if order.TaxPrice > 0 {
		chargeItems = append(chargeItems, midtrans.ItemDetails{
			ID:    "tax",
			Price: int64(order.TaxPrice),
			Qty:   1,
			Name:  "Tax",
		})
	}

	if order.ShippingPrice > 0 {
		chargeItems = append(chargeItems, midtrans.ItemDetails{
			ID:    "shipping",
			Price: int64(order.ShippingPrice),
			Qty:   1,
			Name:  "Shipping",
		})
	}

	chargeReq := &coreapi.ChargeReq{
		PaymentType: coreapi.PaymentTypeQris,
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  order.OrderNumber,
			GrossAmt: int64(order.TotalPrice),
		},
		Items: &chargeItems,
	}

	response, chargeErr := g.client.ChargeTransaction(chargeReq)
	if chargeErr != nil {
		return result, chargeErr
	}

	if response.StatusCode != "201" {
		return result, fmt.Errorf("payment gateway returned non-201 status: %s", response.StatusCode)
	}

	result.TransactionID = response.TransactionID
	result.Status = response.TransactionStatus
	result.Receipt = order.OrderNumber

	return result, nil
}

func (g *MidtransGateway) CheckTransaction(orderNumber string) (result domain.PaymentResult, err error) {
	response, checkErr := g.client.CheckTransaction(orderNumber)
	if checkErr != nil {
		return result, checkErr
	}

	result.TransactionID = response.TransactionID
	result.Status = response.TransactionStatus
	result.Receipt = orderNumber

	return result, nil
}
