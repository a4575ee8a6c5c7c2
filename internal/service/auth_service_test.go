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
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:   "test-secret",
		Environment: "development",
		FrontendURL: "http://localhost:3000",
	}
}

func newAuthService(userRepo *fakeUserRepository) (AuthService, *fakeSMSSender) {
	sender := &fakeSMSSender{}
	return CreateAuthService(userRepo, sender, &fakePublisher{}, testAuthConfig()), sender
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestRegisterIssuesToken(t *testing.T) {
	svc, _ := newAuthService(newFakeUserRepository())

	resp, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Asha",
		Email:    "Asha@Example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, domain.RoleUser, resp.Role)
	assert.Equal(t, "asha@example.com", resp.Email)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepository(domain.User{
		ID:    primitive.NewObjectID(),
		Email: "asha@example.com",
	})
	svc, _ := newAuthService(userRepo)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret1",
	})
	assert.ErrorIs(t, err, errs.ErrUserAlreadyExists)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc, _ := newAuthService(newFakeUserRepository())

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "12345",
	})
	assert.ErrorIs(t, err, errs.ErrPasswordTooShort)
}

func TestLogin(t *testing.T) {
	user := domain.User{
		ID:             primitive.NewObjectID(),
		Name:           "Asha",
		Email:          "asha@example.com",
		HashedPassword: hashPassword(t, "secret1"),
		Role:           domain.RoleUser,
	}

	testCases := []struct {
		name        string
		email       string
		password    string
		blocked     bool
		expectedErr error
	}{
		{name: "valid credentials", email: "asha@example.com", password: "secret1"},
		{name: "wrong password", email: "asha@example.com", password: "nope", expectedErr: errs.ErrInvalidCredentials},
		{name: "unknown email", email: "other@example.com", password: "secret1", expectedErr: errs.ErrInvalidCredentials},
		{name: "blocked account", email: "asha@example.com", password: "secret1", blocked: true, expectedErr: errs.ErrAccountBlocked},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u := user
			u.IsBlocked = tc.blocked
			svc, _ := newAuthService(newFakeUserRepository(u))

			resp, err := svc.Login(context.Background(), dto.LoginRequest{
				Email:    tc.email,
				Password: tc.password,
			})

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, resp.Token)
		})
	}
}

func TestSendOTPCreatesPlaceholderUser(t *testing.T) {
	userRepo := newFakeUserRepository()
	svc, sender := newAuthService(userRepo)

	resp, err := svc.SendOTP(context.Background(), dto.SendOTPRequest{Phone: "+919876543210"})
	require.NoError(t, err)
	assert.Len(t, resp.OTP, 6)
	assert.Len(t, sender.sent, 1)

	user, err := userRepo.GetUserByPhone(context.Background(), "+919876543210")
	require.NoError(t, err)
	assert.Equal(t, "User_3210", user.Name)
	require.NotNil(t, user.OTP)
	assert.Equal(t, resp.OTP, user.OTP.Code)
}

func TestSendOTPRejectsInvalidPhone(t *testing.T) {
	svc, _ := newAuthService(newFakeUserRepository())

	_, err := svc.SendOTP(context.Background(), dto.SendOTPRequest{Phone: "not-a-phone"})
	assert.ErrorIs(t, err, errs.ErrInvalidPhoneNumber)
}

func TestVerifyOTP(t *testing.T) {
	phone := "+919876543210"

	makeUser := func(otp *domain.OTP, blocked bool) domain.User {
		return domain.User{
			ID:        primitive.NewObjectID(),
			Name:      "User_3210",
			Phone:     phone,
			Role:      domain.RoleUser,
			IsBlocked: blocked,
			OTP:       otp,
		}
	}

	validOTP := &domain.OTP{Code: "123456", ExpiresAt: time.Now().Add(5 * time.Minute).Unix()}
	expiredOTP := &domain.OTP{Code: "123456", ExpiresAt: time.Now().Add(-time.Minute).Unix()}

	testCases := []struct {
		name        string
		user        domain.User
		code        string
		expectedErr error
	}{
		{name: "valid code", user: makeUser(validOTP, false), code: "123456"},
		{name: "expired code", user: makeUser(expiredOTP, false), code: "123456", expectedErr: errs.ErrOTPExpired},
		{name: "wrong code", user: makeUser(validOTP, false), code: "654321", expectedErr: errs.ErrOTPMismatch},
		{name: "no pending code", user: makeUser(nil, false), code: "123456", expectedErr: errs.ErrOTPNotFound},
		{name: "blocked account", user: makeUser(validOTP, true), code: "123456", expectedErr: errs.ErrAccountBlocked},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			userRepo := newFakeUserRepository(tc.user)
			svc, _ := newAuthService(userRepo)

			resp, err := svc.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Phone: phone, OTP: tc.code})

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, resp.Token)

			user, err := userRepo.GetUserByPhone(context.Background(), phone)
			require.NoError(t, err)
			assert.Nil(t, user.OTP)
			assert.True(t, user.PhoneVerified)
		})
	}
}

func TestVerifyOTPUnknownPhone(t *testing.T) {
	svc, _ := newAuthService(newFakeUserRepository())

	_, err := svc.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Phone: "+919876543210", OTP: "123456"})
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}
