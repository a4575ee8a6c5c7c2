package dto

type Filter struct {
	Limit    int     `query:"limit"`
	Page     int     `query:"page"`
	Keyword  string  `query:"keyword"`
	Category string  `query:"category"`
	MinPrice float64 `query:"minPrice"`
	MaxPrice float64 `query:"maxPrice"`
	Type     string  `query:"type"`
}

type PaginationMetadata struct {
	TotalCount uint64 `json:"total_count"`
	Page       uint64 `json:"page"`
	Limit      int    `json:"limit"`
}

type PaginationResponse struct {
	Metadata PaginationMetadata `json:"_metadata"`
	Records  interface{}        `json:"records"`
}
