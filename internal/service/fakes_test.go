package service

import (
	"context"

	"github.com/anandbhardwaj456/E-commerce-webapp/internal/domain"
	pkgdto "github.com/anandbhardwaj456/E-commerce-webapp/pkg/dto"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeProductRepository struct {
	products map[string]domain.Product
}

func newFakeProductRepository(products ...domain.Product) *fakeProductRepository {
	repo := &fakeProductRepository{products: make(map[string]domain.Product)}
	for _, p := range products {
		repo.products[p.ID.Hex()] = p
	}
	return repo
}

func (r *fakeProductRepository) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	id = primitive.NewObjectID()
	data.ID = id
	r.products[id.Hex()] = data
	return id, nil
}

func (r *fakeProductRepository) GetProducts(ctx context.Context, filter pkgdto.Filter, activeOnly bool) (data []domain.Product, total int64, err error) {
	for _, p := range r.products {
		if activeOnly && !p.IsActive {
			continue
		}
		data = append(data, p)
	}
	return data, int64(len(data)), nil
}

func (r *fakeProductRepository) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	product, ok := r.products[id]
	if !ok {
		return product, errs.ErrProductNotFound
	}
	return product, nil
}

func (r *fakeProductRepository) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	if _, ok := r.products[data.ID.Hex()]; !ok {
		return errs.ErrProductNotFound
	}
	r.products[data.ID.Hex()] = data
	return nil
}

func (r *fakeProductRepository) DeleteProduct(ctx context.Context, id string) (err error) {
	if _, ok := r.products[id]; !ok {
		return errs.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepository) GetCategories(ctx context.Context) (categories []string, err error) {
	seen := make(map[string]bool)
	for _, p := range r.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories, nil
}

func (r *fakeProductRepository) UpdateProductRating(ctx context.Context, productID primitive.ObjectID, rating float64, numReviews int64) (err error) {
	p, ok := r.products[productID.Hex()]
	if !ok {
		return nil
	}
	p.Rating = rating
	p.NumReviews = numReviews
	r.products[productID.Hex()] = p
	return nil
}

func (r *fakeProductRepository) ReduceProductStock(ctx context.Context, productID string, quantity int64) (err error) {
	p, ok := r.products[productID]
	if !ok {
		return errs.ErrProductNotFound
	}
	if p.Stock < quantity {
		return errs.ErrInsufficientStock
	}
	p.Stock -= quantity
	r.products[productID] = p
	return nil
}

func (r *fakeProductRepository) RestoreProductStock(ctx context.Context, productID string, quantity int64) (err error) {
	p, ok := r.products[productID]
	if !ok {
		return errs.ErrProductNotFound
	}
	p.Stock += quantity
	r.products[productID] = p
	return nil
}

func (r *fakeProductRepository) CountProducts(ctx context.Context) (total int64, err error) {
	return int64(len(r.products)), nil
}

// HandleTrx mimics the all-or-nothing behavior of the real transaction:
// any write fn makes is thrown away when fn returns an error.
func (r *fakeProductRepository) HandleTrx(ctx context.Context, fn func(sessCtx mongo.SessionContext) error) error {
	snapshot := make(map[string]domain.Product, len(r.products))
	for id, p := range r.products {
		snapshot[id] = p
	}

	err := fn(mongo.NewSessionContext(ctx, nil))
	if err != nil {
		r.products = snapshot
		return err
	}

	return nil
}

type fakeReviewRepository struct {
	reviews map[string]domain.Review
}

func newFakeReviewRepository(reviews ...domain.Review) *fakeReviewRepository {
	repo := &fakeReviewRepository{reviews: make(map[string]domain.Review)}
	for _, rv := range reviews {
		repo.reviews[rv.ID.Hex()] = rv
	}
	return repo
}

func (r *fakeReviewRepository) AddReview(ctx context.Context, data domain.Review) (id primitive.ObjectID, err error) {
	id = primitive.NewObjectID()
	data.ID = id
	r.reviews[id.Hex()] = data
	return id, nil
}

func (r *fakeReviewRepository) GetReviewByID(ctx context.Context, id string) (review domain.Review, err error) {
	review, ok := r.reviews[id]
	if !ok {
		return review, errs.ErrReviewNotFound
	}
	return review, nil
}

func (r *fakeReviewRepository) GetReviewsByProduct(ctx context.Context, productID string) (reviews []domain.Review, err error) {
	for _, rv := range r.reviews {
		if rv.ProductID.Hex() == productID {
			reviews = append(reviews, rv)
		}
	}
	return reviews, nil
}

func (r *fakeReviewRepository) GetReviewByUserAndProduct(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID) (review domain.Review, err error) {
	for _, rv := range r.reviews {
		if rv.UserID == userID && rv.ProductID == productID {
			return rv, nil
		}
	}
	return review, nil
}

func (r *fakeReviewRepository) UpdateReview(ctx context.Context, data domain.Review) (err error) {
	if _, ok := r.reviews[data.ID.Hex()]; !ok {
		return errs.ErrReviewNotFound
	}
	r.reviews[data.ID.Hex()] = data
	return nil
}

func (r *fakeReviewRepository) DeleteReview(ctx context.Context, id string) (err error) {
	if _, ok := r.reviews[id]; !ok {
		return errs.ErrReviewNotFound
	}
	delete(r.reviews, id)
	return nil
}

func (r *fakeReviewRepository) GetProductRatingSummary(ctx context.Context, productID primitive.ObjectID) (rating float64, count int64, err error) {
	var sum int64
	for _, rv := range r.reviews {
		if rv.ProductID == productID {
			sum += rv.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

type fakeOrderRepository struct {
	orders map[string]domain.Order
}

func newFakeOrderRepository(orders ...domain.Order) *fakeOrderRepository {
	repo := &fakeOrderRepository{orders: make(map[string]domain.Order)}
	for _, o := range orders {
		repo.orders[o.ID.Hex()] = o
	}
	return repo
}

func (r *fakeOrderRepository) AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error) {
	id = primitive.NewObjectID()
	data.ID = id
	r.orders[id.Hex()] = data
	return id, nil
}

func (r *fakeOrderRepository) GetOrderByID(ctx context.Context, id string) (order domain.Order, err error) {
	order, ok := r.orders[id]
	if !ok {
		return order, errs.ErrOrderNotFound
	}
	return order, nil
}

func (r *fakeOrderRepository) GetOrdersByUser(ctx context.Context, userID primitive.ObjectID) (orders []domain.Order, err error) {
	for _, o := range r.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepository) GetOrders(ctx context.Context) (orders []domain.Order, err error) {
	for _, o := range r.orders {
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *fakeOrderRepository) GetRecentOrders(ctx context.Context, limit int64) (orders []domain.Order, err error) {
	for _, o := range r.orders {
		if int64(len(orders)) >= limit {
			break
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *fakeOrderRepository) UpdateOrderStatus(ctx context.Context, data domain.Order) (err error) {
	if _, ok := r.orders[data.ID.Hex()]; !ok {
		return errs.ErrOrderNotFound
	}
	r.orders[data.ID.Hex()] = data
	return nil
}

func (r *fakeOrderRepository) UpdateOrderPayment(ctx context.Context, data domain.Order) (err error) {
	if _, ok := r.orders[data.ID.Hex()]; !ok {
		return errs.ErrOrderNotFound
	}
	r.orders[data.ID.Hex()] = data
	return nil
}

func (r *fakeOrderRepository) GetStaleUnpaidOrders(ctx context.Context, createdBefore int64) (orders []domain.Order, err error) {
	for _, o := range r.orders {
		if o.Status == domain.OrderStatusPending && !o.IsPaid && o.CreatedAt < createdBefore {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepository) CountOrders(ctx context.Context) (total int64, err error) {
	return int64(len(r.orders)), nil
}

func (r *fakeOrderRepository) GetPaidRevenue(ctx context.Context) (revenue float64, err error) {
	for _, o := range r.orders {
		if o.IsPaid {
			revenue += o.TotalPrice
		}
	}
	return revenue, nil
}

type fakeUserRepository struct {
	users map[string]domain.User
}

func newFakeUserRepository(users ...domain.User) *fakeUserRepository {
	repo := &fakeUserRepository{users: make(map[string]domain.User)}
	for _, u := range users {
		repo.users[u.ID.Hex()] = u
	}
	return repo
}

func (r *fakeUserRepository) AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error) {
	id = primitive.NewObjectID()
	data.ID = id
	r.users[id.Hex()] = data
	return id, nil
}

func (r *fakeUserRepository) GetUserByID(ctx context.Context, id string) (user domain.User, err error) {
	user, ok := r.users[id]
	if !ok {
		return user, errs.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (user domain.User, err error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user, nil
}

func (r *fakeUserRepository) GetUserByPhone(ctx context.Context, phone string) (user domain.User, err error) {
	for _, u := range r.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return user, nil
}

func (r *fakeUserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (user domain.User, err error) {
	for _, u := range r.users {
		if u.GoogleID == googleID {
			return u, nil
		}
	}
	return user, nil
}

func (r *fakeUserRepository) GetUsers(ctx context.Context) (users []domain.User, err error) {
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *fakeUserRepository) UpdateUser(ctx context.Context, data domain.User) (err error) {
	if _, ok := r.users[data.ID.Hex()]; !ok {
		return errs.ErrUserNotFound
	}
	r.users[data.ID.Hex()] = data
	return nil
}

func (r *fakeUserRepository) SetUserOTP(ctx context.Context, userID primitive.ObjectID, otp domain.OTP) (err error) {
	u, ok := r.users[userID.Hex()]
	if !ok {
		return errs.ErrUserNotFound
	}
	u.OTP = &otp
	r.users[userID.Hex()] = u
	return nil
}

func (r *fakeUserRepository) ClearUserOTP(ctx context.Context, userID primitive.ObjectID, phoneVerified bool) (err error) {
	u, ok := r.users[userID.Hex()]
	if !ok {
		return errs.ErrUserNotFound
	}
	u.OTP = nil
	u.PhoneVerified = phoneVerified
	r.users[userID.Hex()] = u
	return nil
}

func (r *fakeUserRepository) SetUserBlocked(ctx context.Context, id string, blocked bool) (err error) {
	u, ok := r.users[id]
	if !ok {
		return errs.ErrUserNotFound
	}
	u.IsBlocked = blocked
	r.users[id] = u
	return nil
}

func (r *fakeUserRepository) SetGoogleID(ctx context.Context, userID primitive.ObjectID, googleID string) (err error) {
	u, ok := r.users[userID.Hex()]
	if !ok {
		return errs.ErrUserNotFound
	}
	u.GoogleID = googleID
	r.users[userID.Hex()] = u
	return nil
}

func (r *fakeUserRepository) UpdateAddresses(ctx context.Context, userID primitive.ObjectID, addresses []domain.Address) (err error) {
	u, ok := r.users[userID.Hex()]
	if !ok {
		return errs.ErrUserNotFound
	}
	u.Addresses = addresses
	r.users[userID.Hex()] = u
	return nil
}

func (r *fakeUserRepository) CountUsersByRole(ctx context.Context, role string) (total int64, err error) {
	for _, u := range r.users {
		if u.Role == role {
			total++
		}
	}
	return total, nil
}

type fakePaymentGateway struct {
	chargeResult domain.PaymentResult
	chargeErr    error
	checkResult  domain.PaymentResult
	checkErr     error
}

func (g *fakePaymentGateway) ChargeOrder(order domain.Order) (result domain.PaymentResult, err error) {
	return g.chargeResult, g.chargeErr
}

func (g *fakePaymentGateway) CheckTransaction(orderNumber string) (result domain.PaymentResult, err error) {
	return g.checkResult, g.checkErr
}

type fakePublisher struct {
	published [][]byte
	err       error
}

func (p *fakePublisher) Publish(msg []byte, key string) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, msg)
	return nil
}

type fakeSMSSender struct {
	sent []string
	err  error
}

func (s *fakeSMSSender) Send(ctx context.Context, phone string, message string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, message)
	return nil
}
