// Package salesdto chứa các cấu trúc đầu vào của domain sales.
package salesdto

// SalesListInput dữ liệu đầu vào của truy vấn danh sách giao dịch (đã parse từ query string)
type SalesListInput struct {
	Search   string   `json:"search" validate:"omitempty,no_xss,max=200"`
	Region   []string `json:"region" validate:"omitempty,dive,max=100"`
	Gender   []string `json:"gender" validate:"omitempty,dive,max=50"`
	Category []string `json:"category" validate:"omitempty,dive,max=100"`
	Tags     []string `json:"tags" validate:"omitempty,dive,max=100"`
	Payment  []string `json:"payment" validate:"omitempty,dive,max=100"`
	AgeMin   *int     `json:"ageMin" validate:"omitempty,min=0"`
	AgeMax   *int     `json:"ageMax" validate:"omitempty,min=0"`
	DateFrom string   `json:"dateFrom" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string   `json:"dateTo" validate:"omitempty,datetime=2006-01-02"`
	SortBy   string   `json:"sortBy" validate:"omitempty,sort_token,max=50"`
	Page     int64    `json:"page" validate:"min=1"`
	Limit    int64    `json:"limit" validate:"min=1,max=100"`
}
