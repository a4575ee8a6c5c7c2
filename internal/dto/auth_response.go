package dto

type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

type SendOTPResponse struct {
	Message string `json:"message"`
	// Echoed back only when the service runs in the development
	// environment, matching the phone-login testing flow.
	OTP string `json:"otp,omitempty"`
}
