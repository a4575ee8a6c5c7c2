package dto

type ProductRequest struct {
	ID          string   `json:"-" form:"-"`
	Name        string   `json:"name" form:"name"`
	Description string   `json:"description" form:"description"`
	Price       float64  `json:"price" form:"price"`
	Stock       *int64   `json:"stock" form:"stock"`
	Category    string   `json:"category" form:"category"`
	Brand       string   `json:"brand" form:"brand"`
	Images      []string `json:"images" form:"images"`
	IsActive    *bool    `json:"is_active" form:"is_active"`
}
