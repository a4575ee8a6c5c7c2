package repository

import (
	"context"

	"github.com/anandbhardwaj456/E-commerce-webapp/internal/domain"
	pkgdto "github.com/anandbhardwaj456/E-commerce-webapp/pkg/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProducts(ctx context.Context, filter pkgdto.Filter, activeOnly bool) (data []domain.Product, total int64, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	GetCategories(ctx context.Context) (categories []string, err error)
	UpdateProductRating(ctx context.Context, productID primitive.ObjectID, rating float64, numReviews int64) (err error)
	ReduceProductStock(ctx context.Context, productID string, quantity int64) (err error)
	RestoreProductStock(ctx context.Context, productID string, quantity int64) (err error)
	CountProducts(ctx context.Context) (total int64, err error)
	HandleTrx(ctx context.Context, fn func(sessCtx mongo.SessionContext) error) error
}

type ReviewRepository interface {
	AddReview(ctx context.Context, data domain.Review) (id primitive.ObjectID, err error)
	GetReviewByID(ctx context.Context, id string) (review domain.Review, err error)
	GetReviewsByProduct(ctx context.Context, productID string) (reviews []domain.Review, err error)
	GetReviewByUserAndProduct(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID) (review domain.Review, err error)
	UpdateReview(ctx context.Context, data domain.Review) (err error)
	DeleteReview(ctx context.Context, id string) (err error)
	GetProductRatingSummary(ctx context.Context, productID primitive.ObjectID) (rating float64, count int64, err error)
}

type OrderRepository interface {
	AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error)
	GetOrderByID(ctx context.Context, id string) (order domain.Order, err error)
	GetOrdersByUser(ctx context.Context, userID primitive.ObjectID) (orders []domain.Order, err error)
	GetOrders(ctx context.Context) (orders []domain.Order, err error)
	GetRecentOrders(ctx context.Context, limit int64) (orders []domain.Order, err error)
	UpdateOrderStatus(ctx context.Context, data domain.Order) (err error)
	UpdateOrderPayment(ctx context.Context, data domain.Order) (err error)
	GetStaleUnpaidOrders(ctx context.Context, createdBefore int64) (orders []domain.Order, err error)
	CountOrders(ctx context.Context) (total int64, err error)
	GetPaidRevenue(ctx context.Context) (revenue float64, err error)
}

type UserRepository interface {
	AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error)
	GetUserByID(ctx context.Context, id string) (user domain.User, err error)
	GetUserByEmail(ctx context.Context, email string) (user domain.User, err error)
	GetUserByPhone(ctx context.Context, phone string) (user domain.User, err error)
	GetUserByGoogleID(ctx context.Context, googleID string) (user domain.User, err error)
	GetUsers(ctx context.Context) (users []domain.User, err error)
	UpdateUser(ctx context.Context, data domain.User) (err error)
	SetUserOTP(ctx context.Context, userID primitive.ObjectID, otp domain.OTP) (err error)
	ClearUserOTP(ctx context.Context, userID primitive.ObjectID, phoneVerified bool) (err error)
	SetUserBlocked(ctx context.Context, id string, blocked bool) (err error)
	SetGoogleID(ctx context.Context, userID primitive.ObjectID, googleID string) (err error)
	UpdateAddresses(ctx context.Context, userID primitive.ObjectID, addresses []domain.Address) (err error)
	CountUsersByRole(ctx context.Context, role string) (total int64, err error)
}

type AdvertisementRepository interface {
	AddAdvertisement(ctx context.Context, data domain.Advertisement) (id primitive.ObjectID, err error)
	GetAdvertisements(ctx context.Context, activeOnly bool, adType string) (ads []domain.Advertisement, err error)
	GetAdvertisementByID(ctx context.Context, id string) (ad domain.Advertisement, err error)
	UpdateAdvertisement(ctx context.Context, data domain.Advertisement) (err error)
	DeleteAdvertisement(ctx context.Context, id string) (err error)
}
