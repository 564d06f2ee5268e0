package models

import "time"

// FilterCriteria mô tả các điều kiện lọc của một truy vấn giao dịch.
// Trường vắng mặt (slice rỗng, con trỏ nil, chuỗi rỗng) không sinh điều kiện.
type FilterCriteria struct {
	Search   string     // Tìm kiếm substring (không phân biệt hoa thường) trên cname, phone
	Region   []string   // Lọc theo khu vực ($in)
	Gender   []string   // Lọc theo giới tính ($in)
	Category []string   // Lọc theo danh mục ($in)
	Tags     []string   // Lọc theo nhãn ($in trên mảng tags)
	Payment  []string   // Lọc theo phương thức thanh toán ($in)
	AgeMin   *int       // Tuổi tối thiểu (>=, inclusive)
	AgeMax   *int       // Tuổi tối đa (<=, inclusive)
	DateFrom *time.Time // Từ ngày (00:00:00.000)
	DateTo   *time.Time // Đến ngày (23:59:59.999)
}

// Statistics chứa kết quả thống kê trên tập giao dịch khớp bộ lọc
type Statistics struct {
	TotalUnits    int64   `json:"totalUnits" bson:"totalUnits"`       // Tổng số lượng bán ra (Σ qty)
	TotalAmount   float64 `json:"totalAmount" bson:"totalAmount"`     // Tổng doanh thu (Σ total)
	TotalDiscount float64 `json:"totalDiscount" bson:"totalDiscount"` // Tổng tiền giảm giá (Σ total*discount/100)
	TotalRecords  int64   `json:"totalRecords" bson:"totalRecords"`   // Tổng số giao dịch
}

// AgeRange chứa khoảng tuổi của khách hàng trong toàn bộ dữ liệu.
// Key JSON là min/max theo contract của client.
type AgeRange struct {
	MinAge int `json:"min" bson:"minAge"` // Tuổi nhỏ nhất
	MaxAge int `json:"max" bson:"maxAge"` // Tuổi lớn nhất
}

// FilterOptions chứa danh sách giá trị có thể lọc, phục vụ UI dựng dropdown.
// Key JSON dùng dạng số ít (region, gender...) theo contract của client.
type FilterOptions struct {
	Regions    []string `json:"region"`   // Danh sách khu vực
	Genders    []string `json:"gender"`   // Danh sách giới tính
	Categories []string `json:"category"` // Danh sách danh mục
	Tags       []string `json:"tags"`     // Danh sách nhãn
	Payments   []string `json:"payment"`  // Danh sách phương thức thanh toán
}
