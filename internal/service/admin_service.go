package service

import (
	"context"

	"github.com/anandbhardwaj456/E-commerce-webapp/internal/domain"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/dto"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/repository"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/errs"
)

const recentOrdersLimit = 5

type AdminServiceImpl struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

func CreateAdminService(userRepo repository.UserRepository, productRepo repository.ProductRepository, orderRepo repository.OrderRepository) AdminService {
	return &AdminServiceImpl{
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

func (s *AdminServiceImpl) GetStats(ctx context.Context) (stats dto.StatsResponse, err error) {
	totalUsers, err := s.userRepo.CountUsersByRole(ctx, domain.RoleUser)
	if err != nil {
		return
	}

	totalProducts, err := s.productRepo.CountProducts(ctx)
	if err != nil {
		return
	}

	totalOrders, err := s.orderRepo.CountOrders(ctx)
	if err != nil {
		return
	}

	revenue, err := s.orderRepo.GetPaidRevenue(ctx)
	if err != nil {
		return
	}

	recent, err := s.orderRepo.GetRecentOrders(ctx, recentOrdersLimit)
	if err != nil {
		return
	}

	recentOrders := make([]dto.OrderResponse, 0, len(recent))
	for _, o := range recent {
		recentOrders = append(recentOrders, convertOrderToResponse(o))
	}

	return dto.StatsResponse{
		TotalUsers:    totalUsers,
		TotalProducts: totalProducts,
		TotalOrders:   totalOrders,
		TotalRevenue:  revenue,
		RecentOrders:  recentOrders,
	}, nil
}

func (s *AdminServiceImpl) GetUsers(ctx context.Context) (users []dto.UserAdminResponse, err error) {
	data, err := s.userRepo.GetUsers(ctx)
	if err != nil {
		return
	}

	users = make([]dto.UserAdminResponse, 0, len(data))
	for _, u := range data {
		users = append(users, dto.UserAdminResponse{
			ID:            u.ID.Hex(),
			Name:          u.Name,
			Email:         u.Email,
			Phone:         u.Phone,
			Role:          u.Role,
			IsBlocked:     u.IsBlocked,
			PhoneVerified: u.PhoneVerified,
			CreatedAt:     u.CreatedAt,
		})
	}

	return users, nil
}

func (s *AdminServiceImpl) SetUserBlocked(ctx context.Context, req dto.BlockUserRequest) (err error) {
	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return
	}

	if user.Role == domain.RoleAdmin {
		return errs.ErrCannotBlockAdmin
	}

	return s.userRepo.SetUserBlocked(ctx, req.UserID, req.IsBlocked)
}
