package dto

type UserAdminResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Role          string `json:"role"`
	IsBlocked     bool   `json:"is_blocked"`
	PhoneVerified bool   `json:"phone_verified"`
	CreatedAt     int64  `json:"created_at"`
}
