package dto

type StatsResponse struct {
	TotalUsers    int64           `json:"total_users"`
	TotalProducts int64           `json:"total_products"`
	TotalOrders   int64           `json:"total_orders"`
	TotalRevenue  float64         `json:"total_revenue"`
	RecentOrders  []OrderResponse `json:"recent_orders"`
}

type BlockUserRequest struct {
	UserID    string `json:"-"`
	IsBlocked bool   `json:"is_blocked"`
}
