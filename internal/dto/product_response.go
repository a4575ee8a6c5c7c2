package dto

type ProductResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Stock       int64    `json:"stock"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Images      []string `json:"images"`
	Rating      float64  `json:"rating"`
	NumReviews  int64    `json:"num_reviews"`
	IsActive    bool     `json:"is_active"`
	CreatedAt   int64    `json:"created_at"`
}
