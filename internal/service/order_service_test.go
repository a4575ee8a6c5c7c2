package service

import (
	"context"
	"testing"
	"time"

	"github.com/anandbhardwaj456/E-commerce-webapp/config"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/domain"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/dto"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type orderServiceFixture struct {
	svc         OrderService
	orderRepo   *fakeOrderRepository
	productRepo *fakeProductRepository
	userRepo    *fakeUserRepository
	gateway     *fakePaymentGateway
	publisher   *fakePublisher
	config      *config.Config
}

func newOrderServiceFixture(products ...domain.Product) *orderServiceFixture {
	f := &orderServiceFixture{
		orderRepo:   newFakeOrderRepository(),
		productRepo: newFakeProductRepository(products...),
		userRepo:    newFakeUserRepository(),
		gateway:     &fakePaymentGateway{},
		publisher:   &fakePublisher{},
		config: &config.Config{
			PaymentEnabled:      true,
			UnpaidOrderTTLHours: 24,
		},
	}
	f.svc = CreateOrderService(f.orderRepo, f.productRepo, f.userRepo, f.gateway, f.publisher, nil, f.config)
	return f
}

func TestAddOrderFreezesPriceSnapshot(t *testing.T) {
	product := domain.Product{
		ID:       primitive.NewObjectID(),
		Name:     "Headphones",
		Price:    500,
		Stock:    10,
		IsActive: true,
	}
	f := newOrderServiceFixture(product)

	resp, err := f.svc.AddOrder(context.Background(), dto.OrderRequest{
		UserID: primitive.NewObjectID().Hex(),
		OrderItems: []dto.OrderItemRequest{
			{ProductID: product.ID.Hex(), Quantity: 3},
		},
		PaymentMethod: "cod",
	})
	require.NoError(t, err)

	assert.Equal(t, 1500.0, resp.ItemsPrice)
	assert.Equal(t, 150.0, resp.TaxPrice)
	assert.Equal(t, 0.0, resp.ShippingPrice)
	assert.Equal(t, 1650.0, resp.TotalPrice)
	assert.Equal(t, domain.OrderStatusPending, resp.Status)
	assert.NotEmpty(t, resp.OrderNumber)

	// Later catalog edits must not affect the stored order.
	product.Price = 900
	require.NoError(t, f.productRepo.UpdateProduct(context.Background(), product))

	stored, err := f.orderRepo.GetOrderByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, 500.0, stored.OrderItems[0].Price)
	assert.Equal(t, 1650.0, stored.TotalPrice)
}

func TestAddOrderReducesStock(t *testing.T) {
	product := domain.Product{ID: primitive.NewObjectID(), Price: 200, Stock: 5, IsActive: true}
	f := newOrderServiceFixture(product)

	_, err := f.svc.AddOrder(context.Background(), dto.OrderRequest{
		UserID: primitive.NewObjectID().Hex(),
		OrderItems: []dto.OrderItemRequest{
			{ProductID: product.ID.Hex(), Quantity: 2},
		},
		PaymentMethod: "cod",
	})
	require.NoError(t, err)

	remaining, err := f.productRepo.GetProductByID(context.Background(), product.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(3), remaining.Stock)
	assert.Len(t, f.publisher.published, 1)
}

func TestAddOrderInsufficientStock(t *testing.T) {
	product := domain.Product{ID: primitive.NewObjectID(), Price: 200, Stock: 1, IsActive: true}
	f := newOrderServiceFixture(product)

	_, err := f.svc.AddOrder(context.Background(), dto.OrderRequest{
		UserID: primitive.NewObjectID().Hex(),
		OrderItems: []dto.OrderItemRequest{
			{ProductID: product.ID.Hex(), Quantity: 2},
		},
		PaymentMethod: "cod",
	})
	assert.ErrorIs(t, err, errs.ErrInsufficientStock)
}

func TestAddOrderPartialFailureKeepsStockIntact(t *testing.T) {
	inStock := domain.Product{ID: primitive.NewObjectID(), Name: "Keyboard", Price: 300, Stock: 10, IsActive: true}
	soldOut := domain.Product{ID: primitive.NewObjectID(), Name: "Mouse", Price: 100, Stock: 1, IsActive: true}
	f := newOrderServiceFixture(inStock, soldOut)

	_, err := f.svc.AddOrder(context.Background(), dto.OrderRequest{
		UserID: primitive.NewObjectID().Hex(),
		OrderItems: []dto.OrderItemRequest{
			{ProductID: inStock.ID.Hex(), Quantity: 2},
			{ProductID: soldOut.ID.Hex(), Quantity: 5},
		},
		PaymentMethod: "cod",
	})
	require.ErrorIs(t, err, errs.ErrInsufficientStock)

	// The first item's decrement must not survive the failed order.
	product, err := f.productRepo.GetProductByID(context.Background(), inStock.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(10), product.Stock)
}

func TestAddOrderUnknownProduct(t *testing.T) {
	f := newOrderServiceFixture()

	_, err := f.svc.AddOrder(context.Background(), dto.OrderRequest{
		UserID: primitive.NewObjectID().Hex(),
		OrderItems: []dto.OrderItemRequest{
			{ProductID: primitive.NewObjectID().Hex(), Quantity: 1},
		},
		PaymentMethod: "cod",
	})
	assert.ErrorIs(t, err, errs.ErrProductNotFound)
}

func TestAddOrderMissingFields(t *testing.T) {
	f := newOrderServiceFixture()

	_, err := f.svc.AddOrder(context.Background(), dto.OrderRequest{
		UserID:        primitive.NewObjectID().Hex(),
		PaymentMethod: "cod",
	})
	assert.ErrorIs(t, err, errs.ErrMissingRequiredField)
}

func TestGetOrderByIDAccessControl(t *testing.T) {
	owner := primitive.NewObjectID()
	f := newOrderServiceFixture()
	orderID, err := f.orderRepo.AddOrder(context.Background(), domain.Order{
		OrderNumber: "ord-1",
		UserID:      owner,
		Status:      domain.OrderStatusPending,
	})
	require.NoError(t, err)

	_, err = f.svc.GetOrderByID(context.Background(), orderID.Hex(), owner.Hex(), domain.RoleUser)
	assert.NoError(t, err)

	_, err = f.svc.GetOrderByID(context.Background(), orderID.Hex(), primitive.NewObjectID().Hex(), domain.RoleUser)
	assert.ErrorIs(t, err, errs.ErrForbidden)

	_, err = f.svc.GetOrderByID(context.Background(), orderID.Hex(), primitive.NewObjectID().Hex(), domain.RoleAdmin)
	assert.NoError(t, err)
}

func TestUpdateOrderStatusDeliveredStampsDelivery(t *testing.T) {
	f := newOrderServiceFixture()
	orderID, err := f.orderRepo.AddOrder(context.Background(), domain.Order{
		OrderNumber: "ord-1",
		UserID:      primitive.NewObjectID(),
		Status:      domain.OrderStatusProcessing,
	})
	require.NoError(t, err)

	resp, err := f.svc.UpdateOrderStatus(context.Background(), dto.OrderStatusRequest{
		OrderID: orderID.Hex(),
		Status:  domain.OrderStatusDelivered,
	})
	require.NoError(t, err)
	assert.True(t, resp.IsDelivered)
	require.NotNil(t, resp.DeliveredAt)
	assert.InDelta(t, time.Now().Unix(), *resp.DeliveredAt, 5)
}

func TestUpdateOrderStatusPlainTransition(t *testing.T) {
	f := newOrderServiceFixture()
	orderID, err := f.orderRepo.AddOrder(context.Background(), domain.Order{
		OrderNumber: "ord-1",
		UserID:      primitive.NewObjectID(),
		Status:      domain.OrderStatusPending,
	})
	require.NoError(t, err)

	resp, err := f.svc.UpdateOrderStatus(context.Background(), dto.OrderStatusRequest{
		OrderID: orderID.Hex(),
		Status:  domain.OrderStatusShipped,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, resp.Status)
	assert.False(t, resp.IsDelivered)
	assert.Nil(t, resp.DeliveredAt)
}

func TestCreatePaymentDisabled(t *testing.T) {
	f := newOrderServiceFixture()
	f.config.PaymentEnabled = false

	_, err := f.svc.CreatePayment(context.Background(), dto.CreatePaymentRequest{
		UserID:  primitive.NewObjectID().Hex(),
		OrderID: primitive.NewObjectID().Hex(),
	})
	assert.ErrorIs(t, err, errs.ErrPaymentDisabled)
}

func TestCreatePaymentAlreadyPaid(t *testing.T) {
	owner := primitive.NewObjectID()
	f := newOrderServiceFixture()
	orderID, err := f.orderRepo.AddOrder(context.Background(), domain.Order{
		OrderNumber: "ord-1",
		UserID:      owner,
		IsPaid:      true,
		Status:      domain.OrderStatusProcessing,
	})
	require.NoError(t, err)

	_, err = f.svc.CreatePayment(context.Background(), dto.CreatePaymentRequest{
		UserID:  owner.Hex(),
		OrderID: orderID.Hex(),
	})
	assert.ErrorIs(t, err, errs.ErrOrderAlreadyPaid)
}

func TestCreatePaymentChargesGateway(t *testing.T) {
	owner := primitive.NewObjectID()
	f := newOrderServiceFixture()
	f.gateway.chargeResult = domain.PaymentResult{TransactionID: "trx-1", Status: "pending"}

	orderID, err := f.orderRepo.AddOrder(context.Background(), domain.Order{
		OrderNumber: "ord-1",
		UserID:      owner,
		TotalPrice:  1650,
		Status:      domain.OrderStatusPending,
	})
	require.NoError(t, err)

	resp, err := f.svc.CreatePayment(context.Background(), dto.CreatePaymentRequest{
		UserID:  owner.Hex(),
		OrderID: orderID.Hex(),
	})
	require.NoError(t, err)
	assert.Equal(t, "trx-1", resp.TransactionID)
	assert.Equal(t, 1650.0, resp.GrossAmount)
}

func TestVerifyPaymentSettlementMarksPaid(t *testing.T) {
	owner := primitive.NewObjectID()
	f := newOrderServiceFixture()
	f.gateway.checkResult = domain.PaymentResult{TransactionID: "trx-1", Status: "settlement"}

	orderID, err := f.orderRepo.AddOrder(context.Background(), domain.Order{
		OrderNumber: "ord-1",
		UserID:      owner,
		TotalPrice:  490,
		Status:      domain.OrderStatusPending,
	})
	require.NoError(t, err)

	resp, err := f.svc.VerifyPayment(context.Background(), dto.VerifyPaymentRequest{
		UserID:  owner.Hex(),
		OrderID: orderID.Hex(),
	})
	require.NoError(t, err)
	assert.True(t, resp.IsPaid)
	require.NotNil(t, resp.PaidAt)

	stored, err := f.orderRepo.GetOrderByID(context.Background(), orderID.Hex())
	require.NoError(t, err)
	assert.True(t, stored.IsPaid)
	require.NotNil(t, stored.PaymentResult)
	assert.Equal(t, "trx-1", stored.PaymentResult.TransactionID)
}

func TestVerifyPaymentPendingTransaction(t *testing.T) {
	owner := primitive.NewObjectID()
	f := newOrderServiceFixture()
	f.gateway.checkResult = domain.PaymentResult{TransactionID: "trx-1", Status: "pending"}

	orderID, err := f.orderRepo.AddOrder(context.Background(), domain.Order{
		OrderNumber: "ord-1",
		UserID:      owner,
		Status:      domain.OrderStatusPending,
	})
	require.NoError(t, err)

	_, err = f.svc.VerifyPayment(context.Background(), dto.VerifyPaymentRequest{
		UserID:  owner.Hex(),
		OrderID: orderID.Hex(),
	})
	assert.ErrorIs(t, err, errs.ErrPaymentFailed)
}

func TestCancelStaleUnpaidOrdersRestoresStock(t *testing.T) {
	product := domain.Product{ID: primitive.NewObjectID(), Price: 200, Stock: 3, IsActive: true}
	f := newOrderServiceFixture(product)

	staleID, err := f.orderRepo.AddOrder(context.Background(), domain.Order{
		OrderNumber: "ord-stale",
		UserID:      primitive.NewObjectID(),
		OrderItems: []domain.OrderItem{
			{ProductID: product.ID, Quantity: 2, Price: 200},
		},
		Status:    domain.OrderStatusPending,
		CreatedAt: time.Now().Add(-48 * time.Hour).Unix(),
	})
	require.NoError(t, err)

	freshID, err := f.orderRepo.AddOrder(context.Background(), domain.Order{
		OrderNumber: "ord-fresh",
		UserID:      primitive.NewObjectID(),
		Status:      domain.OrderStatusPending,
		CreatedAt:   time.Now().Unix(),
	})
	require.NoError(t, err)

	f.svc.CancelStaleUnpaidOrders()

	stale, err := f.orderRepo.GetOrderByID(context.Background(), staleID.Hex())
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, stale.Status)

	fresh, err := f.orderRepo.GetOrderByID(context.Background(), freshID.Hex())
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, fresh.Status)

	restocked, err := f.productRepo.GetProductByID(context.Background(), product.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(5), restocked.Stock)
}
