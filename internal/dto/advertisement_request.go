package dto

type AdvertisementRequest struct {
	ID          string `json:"-" form:"-"`
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Image       string `json:"image" form:"image"`
	Link        string `json:"link" form:"link"`
	Type        string `json:"type" form:"type"`
	IsActive    *bool  `json:"is_active" form:"is_active"`
	Order       int64  `json:"order" form:"order"`
}
