package service

import (
	"context"
	"strings"
	"time"

	"github.com/anandbhardwaj456/E-commerce-webapp/internal/domain"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/dto"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/repository"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	userRepo repository.UserRepository
}

func CreateUserService(userRepo repository.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func convertUserToProfile(user domain.User) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:            user.ID.Hex(),
		Name:          user.Name,
		Email:         user.Email,
		Phone:         user.Phone,
		Role:          user.Role,
		PhoneVerified: user.PhoneVerified,
	}
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID string) (profile dto.ProfileResponse, err error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return
	}

	return convertUserToProfile(user), nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, req dto.ProfileRequest) (profile dto.ProfileResponse, err error) {
	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}

	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email != user.Email {
			existing, getErr := s.userRepo.GetUserByEmail(ctx, email)
			if getErr != nil {
				return profile, getErr
			}
			if !existing.ID.IsZero() && existing.ID != user.ID {
				return profile, errs.ErrUserAlreadyExists
			}
			user.Email = email
		}
	}

	if req.Password != "" {
		if len(req.Password) < 6 {
			return profile, errs.ErrPasswordTooShort
		}

		hashedPassword, hashErr := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			log.Error().Err(hashErr).Str("component", "UpdateProfile").Msg("")
			return profile, hashErr
		}
		user.HashedPassword = string(hashedPassword)
	}

	user.UpdatedAt = time.Now().Unix()

	if err = s.userRepo.UpdateUser(ctx, user); err != nil {
		return
	}

	return convertUserToProfile(user), nil
}

func (s *UserServiceImpl) GetAddresses(ctx context.Context, userID string) (addresses []domain.Address, err error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return
	}

	if user.Addresses == nil {
		return []domain.Address{}, nil
	}

	return user.Addresses, nil
}

func convertAddressRequest(req dto.AddressRequest) domain.Address {
	return domain.Address{
		Name:      req.Name,
		Phone:     req.Phone,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Country:   req.Country,
		IsDefault: req.IsDefault,
	}
}

// clearDefaultFlags keeps the at-most-one default invariant before a
// new default address is written.
func clearDefaultFlags(addresses []domain.Address) {
	for i := range addresses {
		addresses[i].IsDefault = false
	}
}

func (s *UserServiceImpl) AddAddress(ctx context.Context, userID string, req dto.AddressRequest) (address domain.Address, err error) {
	if req.Name == "" || req.Street == "" || req.City == "" {
		return address, errs.ErrMissingRequiredField
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return
	}

	address = convertAddressRequest(req)
	address.ID = primitive.NewObjectID()

	if len(user.Addresses) == 0 {
		address.IsDefault = true
	}

	if address.IsDefault {
		clearDefaultFlags(user.Addresses)
	}

	user.Addresses = append(user.Addresses, address)

	if err = s.userRepo.UpdateAddresses(ctx, user.ID, user.Addresses); err != nil {
		return
	}

	return address, nil
}

func (s *UserServiceImpl) UpdateAddress(ctx context.Context, userID string, addressID string, req dto.AddressRequest) (address domain.Address, err error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return
	}

	idx := -1
	for i, addr := range user.Addresses {
		if addr.ID.Hex() == addressID {
			idx = i
			break
		}
	}

	if idx == -1 {
		return address, errs.ErrAddressNotFound
	}

	address = convertAddressRequest(req)
	address.ID = user.Addresses[idx].ID

	if address.IsDefault {
		clearDefaultFlags(user.Addresses)
	}

	user.Addresses[idx] = address

	if err = s.userRepo.UpdateAddresses(ctx, user.ID, user.Addresses); err != nil {
		return
	}

	return address, nil
}

func (s *UserServiceImpl) DeleteAddress(ctx context.Context, userID string, addressID string) (err error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return
	}

	idx := -1
	for i, addr := range user.Addresses {
		if addr.ID.Hex() == addressID {
			idx = i
			break
		}
	}

	if idx == -1 {
		return errs.ErrAddressNotFound
	}

	wasDefault := user.Addresses[idx].IsDefault
	user.Addresses = append(user.Addresses[:idx], user.Addresses[idx+1:]...)

	if wasDefault && len(user.Addresses) > 0 {
		user.Addresses[0].IsDefault = true
	}

	return s.userRepo.UpdateAddresses(ctx, user.ID, user.Addresses)
}
