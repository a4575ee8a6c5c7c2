package service

import (
	"context"

	"github.com/anandbhardwaj456/E-commerce-webapp/internal/domain"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/dto"
	pkgdto "github.com/anandbhardwaj456/E-commerce-webapp/pkg/dto"
)

type ProductService interface {
	GetProducts(ctx context.Context, filter pkgdto.Filter, includeInactive bool) (responsePayload pkgdto.PaginationResponse, err error)
	GetProductByID(ctx context.Context, id string) (product dto.ProductResponse, err error)
	GetCategories(ctx context.Context) (categories []string, err error)
	AddProduct(ctx context.Context, data dto.ProductRequest) (product dto.ProductResponse, err error)
	UpdateProduct(ctx context.Context, data dto.ProductRequest) (product dto.ProductResponse, err error)
	DeleteProduct(ctx context.Context, id string) (err error)
}

type ReviewService interface {
	AddReview(ctx context.Context, data dto.ReviewRequest) (review dto.ReviewResponse, err error)
	UpdateReview(ctx context.Context, data dto.ReviewRequest) (review dto.ReviewResponse, err error)
	DeleteReview(ctx context.Context, reviewID string, userID string) (err error)
	GetProductReviews(ctx context.Context, productID string) (reviews []dto.ReviewResponse, err error)
}

type OrderService interface {
	AddOrder(ctx context.Context, req dto.OrderRequest) (order dto.OrderResponse, err error)
	GetOrderByID(ctx context.Context, orderID string, userID string, role string) (order dto.OrderResponse, err error)
	GetUserOrders(ctx context.Context, userID string) (orders []dto.OrderResponse, err error)
	GetOrders(ctx context.Context) (orders []dto.OrderResponse, err error)
	UpdateOrderStatus(ctx context.Context, req dto.OrderStatusRequest) (order dto.OrderResponse, err error)
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (payment dto.CreatePaymentResponse, err error)
	VerifyPayment(ctx context.Context, req dto.VerifyPaymentRequest) (order dto.OrderResponse, err error)
	CancelStaleUnpaidOrders()
	ConsumeEvents()
}

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (resp dto.AuthResponse, err error)
	Login(ctx context.Context, req dto.LoginRequest) (resp dto.AuthResponse, err error)
	SendOTP(ctx context.Context, req dto.SendOTPRequest) (resp dto.SendOTPResponse, err error)
	VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (resp dto.AuthResponse, err error)
	GoogleLoginURL() string
	GoogleCallback(ctx context.Context, code string) (redirectURL string, err error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID string) (profile dto.ProfileResponse, err error)
	UpdateProfile(ctx context.Context, req dto.ProfileRequest) (profile dto.ProfileResponse, err error)
	GetAddresses(ctx context.Context, userID string) (addresses []domain.Address, err error)
	AddAddress(ctx context.Context, userID string, req dto.AddressRequest) (address domain.Address, err error)
	UpdateAddress(ctx context.Context, userID string, addressID string, req dto.AddressRequest) (address domain.Address, err error)
	DeleteAddress(ctx context.Context, userID string, addressID string) (err error)
}

type AdminService interface {
	GetStats(ctx context.Context) (stats dto.StatsResponse, err error)
	GetUsers(ctx context.Context) (users []dto.UserAdminResponse, err error)
	SetUserBlocked(ctx context.Context, req dto.BlockUserRequest) (err error)
}

type AdvertisementService interface {
	GetAdvertisements(ctx context.Context, adType string) (ads []domain.Advertisement, err error)
	GetAllAdvertisements(ctx context.Context) (ads []domain.Advertisement, err error)
	AddAdvertisement(ctx context.Context, data dto.AdvertisementRequest) (ad domain.Advertisement, err error)
	UpdateAdvertisement(ctx context.Context, data dto.AdvertisementRequest) (ad domain.Advertisement, err error)
	DeleteAdvertisement(ctx context.Context, id string) (err error)
}

// PaymentGateway abstracts the external payment collaborator so the
// checkout flow can run against the sandbox client or a stub.
type PaymentGateway interface {
	ChargeOrder(order domain.Order) (result domain.PaymentResult, err error)
	CheckTransaction(orderNumber string) (result domain.PaymentResult, err error)
}

// EventPublisher writes storefront events to the message broker.
type EventPublisher interface {
	Publish(msg []byte, key string) error
}
