// Package models chứa các kiểu dùng chung cho layer repository/base (kết quả phân trang).
package models

// Pagination mô tả khối phân trang trả về cho client
type Pagination struct {
	// Trang hiện tại
	Page int64 `json:"page" bson:"page"`
	// Số lượng mục trên mỗi trang
	Limit int64 `json:"limit" bson:"limit"`
	// Tổng số mục khớp với bộ lọc
	Total int64 `json:"total" bson:"total"`
	// Tổng số trang
	TotalPages int64 `json:"totalPages" bson:"totalPages"`
	// Còn trang sau hay không
	HasNext bool `json:"hasNext" bson:"hasNext"`
	// Còn trang trước hay không
	HasPrev bool `json:"hasPrev" bson:"hasPrev"`
}

// NewPagination tính khối phân trang từ page, limit và tổng số bản ghi.
// totalPages làm tròn lên; total = 0 cho totalPages = 0 nên hasNext luôn false.
func NewPagination(page, limit, total int64) Pagination {
	var totalPages int64
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// PaginateResult đại diện cho kết quả phân trang
type PaginateResult[T any] struct {
	// Danh sách các mục của trang hiện tại
	Items []T `json:"items" bson:"items"`
	// Thông tin phân trang
	Pagination Pagination `json:"pagination" bson:"pagination"`
}
