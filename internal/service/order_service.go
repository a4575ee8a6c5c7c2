package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/anandbhardwaj456/E-commerce-webapp/config"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/domain"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/dto"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/repository"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/errs"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"gopkg.in/gomail.v2"
)

type OrderServiceImpl struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	gateway     PaymentGateway
	publisher   EventPublisher
	kafkaReader *kafka.Reader
	config      *config.Config
}

func CreateOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository, gateway PaymentGateway, publisher EventPublisher, kafkaReader *kafka.Reader, config *config.Config) OrderService {
	return &OrderServiceImpl{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		gateway:     gateway,
		publisher:   publisher,
		kafkaReader: kafkaReader,
		config:      config,
	}
}

func convertOrderToResponse(data domain.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:              data.ID.Hex(),
		OrderNumber:     data.OrderNumber,
		UserID:          data.UserID.Hex(),
		OrderItems:      data.OrderItems,
		ShippingAddress: data.ShippingAddress,
		PaymentMethod:   data.PaymentMethod,
		ItemsPrice:      data.ItemsPrice,
		TaxPrice:        data.TaxPrice,
		ShippingPrice:   data.ShippingPrice,
		TotalPrice:      data.TotalPrice,
		IsPaid:          data.IsPaid,
		PaidAt:          data.PaidAt,
		Status:          data.Status,
		IsDelivered:     data.IsDelivered,
		DeliveredAt:     data.DeliveredAt,
		CreatedAt:       data.CreatedAt,
	}
}

func (s *OrderServiceImpl) publishEvent(eventType string, data interface{}, key string) {
	if s.publisher == nil {
		return
	}

	kafkaMsg := dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		err = s.publisher.Publish(jsonMsg, key)
		if err == nil {
			return
		}
		log.Error().Err(err).Str("component", "publishEvent").Str("event_type", eventType).Msg("")
		time.Sleep(time.Second * time.Duration(i+1)) // Exponential backoff
	}
}

func (s *OrderServiceImpl) AddOrder(ctx context.Context, req dto.OrderRequest) (order dto.OrderResponse, err error) {
	if len(req.OrderItems) == 0 || req.PaymentMethod == "" {
		return order, errs.ErrMissingRequiredField
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return
	}

	orderNumber, err := uuid.NewV7()
	if err != nil {
		return order, fmt.Errorf("error generating order number: %v", err)
	}

	var orderItems []domain.OrderItem

	err = s.productRepo.HandleTrx(ctx, func(sessCtx mongo.SessionContext) error {
		for _, item := range req.OrderItems {
			if item.Quantity <= 0 {
				return errs.ErrClient
			}

			product, err := s.productRepo.GetProductByID(sessCtx, item.ProductID)
			if err != nil {
				return err
			}

			if product.Stock < item.Quantity {
				return errs.ErrInsufficientStock
			}

			err = s.productRepo.ReduceProductStock(sessCtx, item.ProductID, item.Quantity)
			if err != nil {
				return err
			}

			image := ""
			if len(product.Images) > 0 {
				image = product.Images[0]
			}

			orderItems = append(orderItems, domain.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				Image:     image,
				Price:     product.Price,
				Quantity:  item.Quantity,
			})
		}

		return nil
	})

	if err != nil {
		for _, sentinel := range []error{errs.ErrProductNotFound, errs.ErrInsufficientStock, errs.ErrClient} {
			if errors.Is(err, sentinel) {
				return order, sentinel
			}
		}
		return
	}

	pricing := PriceOrder(orderItems)
	now := time.Now().Unix()

	orderEnt := domain.Order{
		OrderNumber: orderNumber.String(),
		UserID:      userID,
		OrderItems:  orderItems,
		ShippingAddress: domain.Address{
			Name:    req.ShippingAddress.Name,
			Phone:   req.ShippingAddress.Phone,
			Street:  req.ShippingAddress.Street,
			City:    req.ShippingAddress.City,
			State:   req.ShippingAddress.State,
			ZipCode: req.ShippingAddress.ZipCode,
			Country: req.ShippingAddress.Country,
		},
		PaymentMethod: req.PaymentMethod,
		ItemsPrice:    pricing.ItemsPrice,
		TaxPrice:      pricing.TaxPrice,
		ShippingPrice: pricing.ShippingPrice,
		TotalPrice:    pricing.TotalPrice,
		Status:        domain.OrderStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	orderID, err := s.orderRepo.AddOrder(ctx, orderEnt)
	if err != nil {
		// The stock was already taken inside the transaction above;
		// hand it back so the products stay sellable.
		s.restoreOrderStock(ctx, orderItems)
		return
	}

	orderEnt.ID = orderID

	s.publishEvent(dto.EventOrderCreated, dto.OrderEvent{
		OrderID:     orderID.Hex(),
		OrderNumber: orderEnt.OrderNumber,
		UserID:      req.UserID,
		TotalPrice:  orderEnt.TotalPrice,
		Status:      orderEnt.Status,
	}, orderEnt.OrderNumber)

	return convertOrderToResponse(orderEnt), nil
}

func (s *OrderServiceImpl) restoreOrderStock(ctx context.Context, items []domain.OrderItem) {
	for _, item := range items {
		if err := s.productRepo.RestoreProductStock(ctx, item.ProductID.Hex(), item.Quantity); err != nil {
			log.Error().Err(err).Str("component", "restoreOrderStock").Str("product_id", item.ProductID.Hex()).Msg("")
		}
	}
}

func (s *OrderServiceImpl) GetOrderByID(ctx context.Context, orderID string, userID string, role string) (order dto.OrderResponse, err error) {
	data, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return
	}

	if role != domain.RoleAdmin && data.UserID.Hex() != userID {
		return order, errs.ErrForbidden
	}

	return convertOrderToResponse(data), nil
}

func (s *OrderServiceImpl) GetUserOrders(ctx context.Context, userID string) (orders []dto.OrderResponse, err error) {
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return
	}

	data, err := s.orderRepo.GetOrdersByUser(ctx, userObjectID)
	if err != nil {
		return
	}

	orders = make([]dto.OrderResponse, 0, len(data))
	for _, o := range data {
		orders = append(orders, convertOrderToResponse(o))
	}

	return orders, nil
}

func (s *OrderServiceImpl) GetOrders(ctx context.Context) (orders []dto.OrderResponse, err error) {
	data, err := s.orderRepo.GetOrders(ctx)
	if err != nil {
		return
	}

	orders = make([]dto.OrderResponse, 0, len(data))
	for _, o := range data {
		orders = append(orders, convertOrderToResponse(o))
	}

	return orders, nil
}

// UpdateOrderStatus accepts any status value the admin sets; the status
// field is deliberately an open string rather than a guarded state
// machine. Setting "delivered" additionally stamps the delivery flags.
func (s *OrderServiceImpl) UpdateOrderStatus(ctx context.Context, req dto.OrderStatusRequest) (order dto.OrderResponse, err error) {
	if req.Status == "" {
		return order, errs.ErrMissingRequiredField
	}

	data, err := s.orderRepo.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		return
	}

	data.Status = req.Status
	data.UpdatedAt = time.Now().Unix()

	if req.Status == domain.OrderStatusDelivered {
		deliveredAt := time.Now().Unix()
		data.IsDelivered = true
		data.DeliveredAt = &deliveredAt
	}

	err = s.orderRepo.UpdateOrderStatus(ctx, data)
	if err != nil {
		return
	}

	s.publishEvent(dto.EventOrderStatusUpdated, dto.OrderEvent{
		OrderID:     data.ID.Hex(),
		OrderNumber: data.OrderNumber,
		UserID:      data.UserID.Hex(),
		TotalPrice:  data.TotalPrice,
		Status:      data.Status,
	}, data.OrderNumber)

	return convertOrderToResponse(data), nil
}

func (s *OrderServiceImpl) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (payment dto.CreatePaymentResponse, err error) {
	if !s.config.PaymentEnabled {
		return payment, errs.ErrPaymentDisabled
	}

	data, err := s.orderRepo.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		return
	}

	if data.UserID.Hex() != req.UserID {
		return payment, errs.ErrForbidden
	}

	if data.IsPaid {
		return payment, errs.ErrOrderAlreadyPaid
	}

	result, err := s.gateway.ChargeOrder(data)
	if err != nil {
		log.Error().Err(err).Str("component", "CreatePayment").Msg("")
		return
	}

	payment.OrderNumber = data.OrderNumber
	payment.TransactionID = result.TransactionID
	payment.GrossAmount = data.TotalPrice
	payment.PaymentStatus = result.Status

	return payment, nil
}

func (s *OrderServiceImpl) VerifyPayment(ctx context.Context, req dto.VerifyPaymentRequest) (order dto.OrderResponse, err error) {
	if !s.config.PaymentEnabled {
		return order, errs.ErrPaymentDisabled
	}

	data, err := s.orderRepo.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		return
	}

	if data.UserID.Hex() != req.UserID {
		return order, errs.ErrForbidden
	}

	if data.IsPaid {
		return convertOrderToResponse(data), nil
	}

	result, err := s.gateway.CheckTransaction(data.OrderNumber)
	if err != nil {
		log.Error().Err(err).Str("component", "VerifyPayment").Msg("")
		return
	}

	if result.Status != "settlement" && result.Status != "capture" {
		return order, errs.ErrPaymentFailed
	}

	paidAt := time.Now().Unix()
	data.IsPaid = true
	data.PaidAt = &paidAt
	data.PaymentResult = &result
	data.UpdatedAt = paidAt

	err = s.orderRepo.UpdateOrderPayment(ctx, data)
	if err != nil {
		return
	}

	userEmail := ""
	user, userErr := s.userRepo.GetUserByID(ctx, data.UserID.Hex())
	if userErr != nil {
		log.Error().Err(userErr).Str("component", "VerifyPayment").Msg("")
	} else {
		userEmail = user.Email
	}

	s.publishEvent(dto.EventOrderPaid, dto.OrderEvent{
		OrderID:     data.ID.Hex(),
		OrderNumber: data.OrderNumber,
		UserID:      data.UserID.Hex(),
		UserEmail:   userEmail,
		TotalPrice:  data.TotalPrice,
		Status:      data.Status,
	}, data.OrderNumber)

	return convertOrderToResponse(data), nil
}

// CancelStaleUnpaidOrders is the cron entrypoint: pending orders that
// stayed unpaid past the configured TTL are cancelled and their stock
// handed back.
func (s *OrderServiceImpl) CancelStaleUnpaidOrders() {
	log.Info().Str("component", "CancelStaleUnpaidOrders").Msg("cron starts")

	ctx := context.Background()
	cutoff := time.Now().Add(-time.Duration(s.config.UnpaidOrderTTLHours) * time.Hour).Unix()

	orders, err := s.orderRepo.GetStaleUnpaidOrders(ctx, cutoff)
	if err != nil {
		log.Error().Err(err).Str("component", "CancelStaleUnpaidOrders").Msg("")
		return
	}

	for _, order := range orders {
		order.Status = domain.OrderStatusCancelled
		order.UpdatedAt = time.Now().Unix()

		if err := s.orderRepo.UpdateOrderStatus(ctx, order); err != nil {
			log.Error().Err(err).Str("component", "CancelStaleUnpaidOrders").Str("order_number", order.OrderNumber).Msg("")
			continue
		}

		s.restoreOrderStock(ctx, order.OrderItems)
	}

	log.Info().Str("component", "CancelStaleUnpaidOrders").Msg("cron ends")
}

// ConsumeEvents is the broker loop: a paid order triggers the
// confirmation email. Delivery failures are logged, never retried into
// the request path.
func (s *OrderServiceImpl) ConsumeEvents() {
	for {
		msg, err := s.kafkaReader.ReadMessage(context.Background())
		if err != nil {
			log.Error().Err(err).Str("component", "ConsumeEvents").Msg("")
			continue
		}

		var receivedMsg dto.KafkaMessage
		if err := json.Unmarshal(msg.Value, &receivedMsg); err != nil {
			log.Error().Err(err).Str("component", "ConsumeEvents").Msg("")
			continue
		}

		switch receivedMsg.EventType {
		case dto.EventOrderPaid:
			var event dto.OrderEvent
			dataBytes, err := json.Marshal(receivedMsg.Data)
			if err != nil {
				log.Error().Err(err).Str("component", "ConsumeEvents").Msg("")
				continue
			}
			if err := json.Unmarshal(dataBytes, &event); err != nil {
				log.Error().Err(err).Str("component", "ConsumeEvents").Msg("")
				continue
			}

			s.sendOrderConfirmationEmail(event)
		}
	}
}

func (s *OrderServiceImpl) sendOrderConfirmationEmail(event dto.OrderEvent) {
	if event.UserEmail == "" || s.config.SMTPConfig.Host == "" {
		return
	}

	message := gomail.NewMessage()
	message.SetHeader("From", s.config.SMTPConfig.Sender)
	message.SetHeader("To", event.UserEmail)
	message.SetHeader("Subject", fmt.Sprintf("Payment received for order %s", event.OrderNumber))
	message.SetBody("text/plain", fmt.Sprintf("We have received your payment of %.2f for order %s. Your order is now being processed.", event.TotalPrice, event.OrderNumber))

	err := utils.SendEmail(message, s.config.SMTPConfig.Sender, s.config.SMTPConfig.Password, s.config.SMTPConfig.Host, s.config.SMTPConfig.Port)
	if err != nil {
		log.Error().Err(err).Str("component", "sendOrderConfirmationEmail").Msg("")
	}
}
