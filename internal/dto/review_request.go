package dto

type ReviewRequest struct {
	ID        string `json:"-"`
	UserID    string `json:"-"`
	UserName  string `json:"-"`
	ProductID string `json:"product"`
	Rating    int64  `json:"rating"`
	Comment   string `json:"comment"`
}

type ReviewResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	ProductID string `json:"product_id"`
	Rating    int64  `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}
