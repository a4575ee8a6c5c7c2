package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anandbhardwaj456/E-commerce-webapp/config"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/domain"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/dto"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/infrastructure/sms"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/repository"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/errs"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/utils"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const otpValidity = 10 * time.Minute

type AuthServiceImpl struct {
	userRepo  repository.UserRepository
	smsSender sms.Sender
	publisher EventPublisher
	config    *config.Config
}

func CreateAuthService(userRepo repository.UserRepository, smsSender sms.Sender, publisher EventPublisher, config *config.Config) AuthService {
	return &AuthServiceImpl{
		userRepo:  userRepo,
		smsSender: smsSender,
		publisher: publisher,
		config:    config,
	}
}

func (s *AuthServiceImpl) buildAuthResponse(user domain.User) (resp dto.AuthResponse, err error) {
	token, err := utils.CreateJWTToken(user.ID.Hex(), user.Name, user.Role, s.config.JWTSecret)
	if err != nil {
		log.Error().Err(err).Str("component", "buildAuthResponse").Msg("")
		return
	}

	return dto.AuthResponse{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
		Role:  user.Role,
		Token: token,
	}, nil
}

func (s *AuthServiceImpl) publishUserRegistered(user domain.User) {
	if s.publisher == nil {
		return
	}

	kafkaMsg := dto.KafkaMessage{
		EventType: dto.EventUserRegistered,
		Data: dto.UserEvent{
			UserID:     user.ID.Hex(),
			ExternalID: user.ExternalID,
			Name:       user.Name,
			Email:      user.Email,
		},
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Error().Err(err).Str("component", "publishUserRegistered").Msg("")
		return
	}

	if err := s.publisher.Publish(jsonMsg, user.ExternalID); err != nil {
		log.Error().Err(err).Str("component", "publishUserRegistered").Msg("")
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req dto.RegisterRequest) (resp dto.AuthResponse, err error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return resp, errs.ErrMissingRequiredField
	}

	if len(req.Password) < 6 {
		return resp, errs.ErrPasswordTooShort
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return
	}

	if !existing.ID.IsZero() {
		return resp, errs.ErrUserAlreadyExists
	}

	if req.Phone != "" {
		existing, err = s.userRepo.GetUserByPhone(ctx, req.Phone)
		if err != nil {
			return
		}

		if !existing.ID.IsZero() {
			return resp, errs.ErrUserAlreadyExists
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
		return
	}

	now := time.Now()
	user := domain.User{
		ExternalID:     ulid.Make().String(),
		Name:           req.Name,
		Email:          email,
		Phone:          req.Phone,
		HashedPassword: string(hashedPassword),
		Role:           domain.RoleUser,
		Addresses:      []domain.Address{},
		CreatedAt:      now.Unix(),
		UpdatedAt:      now.Unix(),
	}

	userID, err := s.userRepo.AddUser(ctx, user)
	if err != nil {
		return
	}

	user.ID = userID

	s.publishUserRegistered(user)

	return s.buildAuthResponse(user)
}

func (s *AuthServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (resp dto.AuthResponse, err error) {
	if req.Email == "" || req.Password == "" {
		return resp, errs.ErrMissingRequiredField
	}

	user, err := s.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return
	}

	if user.ID.IsZero() {
		return resp, errs.ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return resp, errs.ErrInvalidCredentials
	}

	if user.IsBlocked {
		return resp, errs.ErrAccountBlocked
	}

	return s.buildAuthResponse(user)
}

func (s *AuthServiceImpl) SendOTP(ctx context.Context, req dto.SendOTPRequest) (resp dto.SendOTPResponse, err error) {
	if !utils.IsValidPhoneNumber(req.Phone) {
		return resp, errs.ErrInvalidPhoneNumber
	}

	user, err := s.userRepo.GetUserByPhone(ctx, req.Phone)
	if err != nil {
		return
	}

	if user.ID.IsZero() {
		// First contact from this phone: a placeholder account is
		// created now and completed on profile update later.
		placeholderName := "User"
		if len(req.Phone) >= 4 {
			placeholderName = fmt.Sprintf("User_%s", req.Phone[len(req.Phone)-4:])
		}

		now := time.Now().Unix()
		userID, addErr := s.userRepo.AddUser(ctx, domain.User{
			ExternalID: ulid.Make().String(),
			Name:       placeholderName,
			Phone:      req.Phone,
			Role:       domain.RoleUser,
			Addresses:  []domain.Address{},
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if addErr != nil {
			return resp, addErr
		}
		user.ID = userID
	} else if user.IsBlocked {
		return resp, errs.ErrAccountBlocked
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		log.Error().Err(err).Str("component", "SendOTP").Msg("")
		return
	}

	err = s.userRepo.SetUserOTP(ctx, user.ID, domain.OTP{
		Code:      code,
		ExpiresAt: time.Now().Add(otpValidity).Unix(),
	})
	if err != nil {
		return
	}

	if sendErr := s.smsSender.Send(ctx, req.Phone, fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code)); sendErr != nil {
		log.Error().Err(sendErr).Str("component", "SendOTP").Msg("")
	}

	resp.Message = "OTP sent successfully"
	if s.config.Environment == "development" {
		resp.OTP = code
	}

	return resp, nil
}

func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (resp dto.AuthResponse, err error) {
	if req.Phone == "" || req.OTP == "" {
		return resp, errs.ErrMissingRequiredField
	}

	user, err := s.userRepo.GetUserByPhone(ctx, req.Phone)
	if err != nil {
		return
	}

	if user.ID.IsZero() {
		return resp, errs.ErrUserNotFound
	}

	if user.OTP == nil {
		return resp, errs.ErrOTPNotFound
	}

	if time.Now().Unix() > user.OTP.ExpiresAt {
		return resp, errs.ErrOTPExpired
	}

	if user.OTP.Code != req.OTP {
		return resp, errs.ErrOTPMismatch
	}

	if user.IsBlocked {
		return resp, errs.ErrAccountBlocked
	}

	if err = s.userRepo.ClearUserOTP(ctx, user.ID, true); err != nil {
		return
	}

	return s.buildAuthResponse(user)
}

// GoogleCallback completes the OAuth exchange. The identity payload is
// resolved upstream and arrives as an opaque code; the user is matched
// by google_id first, then by email so an existing password account
// gets linked rather than duplicated.
func (s *AuthServiceImpl) GoogleCallback(ctx context.Context, code string) (redirectURL string, err error) {
	if code == "" {
		return "", errs.ErrClient
	}

	profile, err := s.exchangeGoogleCode(ctx, code)
	if err != nil {
		log.Error().Err(err).Str("component", "GoogleCallback").Msg("")
		return "", errs.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetUserByGoogleID(ctx, profile.Sub)
	if err != nil {
		return
	}

	if user.ID.IsZero() && profile.Email != "" {
		user, err = s.userRepo.GetUserByEmail(ctx, strings.ToLower(profile.Email))
		if err != nil {
			return
		}

		if !user.ID.IsZero() {
			if err = s.userRepo.SetGoogleID(ctx, user.ID, profile.Sub); err != nil {
				return
			}
		}
	}

	if user.ID.IsZero() {
		now := time.Now().Unix()
		newUser := domain.User{
			ExternalID: ulid.Make().String(),
			Name:       profile.Name,
			Email:      strings.ToLower(profile.Email),
			GoogleID:   profile.Sub,
			Role:       domain.RoleUser,
			Addresses:  []domain.Address{},
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		userID, addErr := s.userRepo.AddUser(ctx, newUser)
		if addErr != nil {
			return "", addErr
		}

		newUser.ID = userID
		user = newUser
		s.publishUserRegistered(user)
	}

	if user.IsBlocked {
		return "", errs.ErrAccountBlocked
	}

	token, err := utils.CreateJWTToken(user.ID.Hex(), user.Name, user.Role, s.config.JWTSecret)
	if err != nil {
		return
	}

	return fmt.Sprintf("%s/auth/callback?token=%s", s.config.FrontendURL, token), nil
}
