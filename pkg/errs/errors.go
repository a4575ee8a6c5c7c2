package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer     = http.StatusInternalServerError
	ErrStatusClient             = http.StatusBadRequest
	ErrStatusNotLoggedIn        = http.StatusUnauthorized
	ErrStatusNoPermission       = http.StatusForbidden
	ErrStatusUnauthorized       = http.StatusUnauthorized
	ErrStatusNotFound           = http.StatusNotFound
	ErrStatusConflict           = http.StatusConflict
	ErrStatusServiceUnavailable = http.StatusServiceUnavailable
)

var (
	ErrInternalServer       = errors.New("Internal server error")
	ErrClient               = errors.New("Bad request")
	ErrNotLoggedIn          = errors.New("Unauthorized access")
	ErrInvalidCredentials   = errors.New("Invalid email or password")
	ErrForbidden            = errors.New("Not authorized")
	ErrNotFound             = errors.New("Resource not found")
	ErrProductNotFound      = errors.New("Product not found")
	ErrOrderNotFound        = errors.New("Order not found")
	ErrReviewNotFound       = errors.New("Review not found")
	ErrUserNotFound         = errors.New("User not found")
	ErrAddressNotFound      = errors.New("Address not found")
	ErrAdNotFound           = errors.New("Advertisement not found")
	ErrUserAlreadyExists    = errors.New("User already exists")
	ErrAlreadyReviewed      = errors.New("You have already reviewed this product")
	ErrAccountBlocked       = errors.New("Your account has been blocked")
	ErrCannotBlockAdmin     = errors.New("Cannot block admin user")
	ErrInsufficientStock    = errors.New("Insufficient stock for requested quantity")
	ErrOTPNotFound          = errors.New("OTP not found. Please request a new OTP")
	ErrOTPExpired           = errors.New("OTP has expired. Please request a new one")
	ErrOTPMismatch          = errors.New("Invalid OTP")
	ErrInvalidPhoneNumber   = errors.New("Invalid phone number format")
	ErrOrderAlreadyPaid     = errors.New("Order has already been paid")
	ErrPaymentFailed        = errors.New("Payment has not been settled")
	ErrPaymentDisabled      = errors.New("Online payment is currently disabled. Please use Cash on Delivery")
	ErrMissingRequiredField = errors.New("Please provide all required fields")
	ErrPasswordTooShort     = errors.New("Password must be at least 6 characters")
)

var errorMap = map[error]int{
	ErrInternalServer:       ErrStatusInternalServer,
	ErrClient:               ErrStatusClient,
	ErrNotLoggedIn:          ErrStatusNotLoggedIn,
	ErrInvalidCredentials:   ErrStatusUnauthorized,
	ErrForbidden:            ErrStatusNoPermission,
	ErrNotFound:             ErrStatusNotFound,
	ErrProductNotFound:      ErrStatusNotFound,
	ErrOrderNotFound:        ErrStatusNotFound,
	ErrReviewNotFound:       ErrStatusNotFound,
	ErrUserNotFound:         ErrStatusNotFound,
	ErrAddressNotFound:      ErrStatusNotFound,
	ErrAdNotFound:           ErrStatusNotFound,
	ErrUserAlreadyExists:    ErrStatusClient,
	ErrAlreadyReviewed:      ErrStatusClient,
	ErrAccountBlocked:       ErrStatusNoPermission,
	ErrCannotBlockAdmin:     ErrStatusClient,
	ErrInsufficientStock:    ErrStatusConflict,
	ErrOTPNotFound:          ErrStatusClient,
	ErrOTPExpired:           ErrStatusClient,
	ErrOTPMismatch:          ErrStatusClient,
	ErrInvalidPhoneNumber:   ErrStatusClient,
	ErrOrderAlreadyPaid:     ErrStatusConflict,
	ErrPaymentFailed:        ErrStatusClient,
	ErrPaymentDisabled:      ErrStatusServiceUnavailable,
	ErrMissingRequiredField: ErrStatusClient,
	ErrPasswordTooShort:     ErrStatusClient,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
