// Package models chứa các model của domain sales.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SalesTransaction lưu một giao dịch bán hàng trong collection sales.
// Tên trường bson giữ dạng rút gọn theo dữ liệu nguồn (tid, cname, qty...).
type SalesTransaction struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của giao dịch trong MongoDB
	Tid      int64              `json:"tid" bson:"tid"`                    // Mã giao dịch (unique)
	Cid      string             `json:"cid" bson:"cid"`                    // Mã khách hàng
	Cname    string             `json:"cname" bson:"cname"`                // Tên khách hàng
	Phone    string             `json:"phone" bson:"phone"`                // Số điện thoại khách hàng
	Gender   string             `json:"gender" bson:"gender"`              // Giới tính (Male, Female, Other)
	Age      int                `json:"age" bson:"age"`                    // Tuổi khách hàng
	Region   string             `json:"region" bson:"region"`              // Khu vực
	Ctype    string             `json:"ctype" bson:"ctype"`                // Loại khách hàng
	Pid      string             `json:"pid" bson:"pid"`                    // Mã sản phẩm
	Pname    string             `json:"pname" bson:"pname"`                // Tên sản phẩm
	Brand    string             `json:"brand" bson:"brand"`                // Thương hiệu
	Category string             `json:"category" bson:"category"`          // Danh mục sản phẩm
	Tags     []string           `json:"tags" bson:"tags"`                  // Nhãn sản phẩm
	Qty      int                `json:"qty" bson:"qty"`                    // Số lượng (>= 1)
	Price    float64            `json:"price" bson:"price"`                // Đơn giá
	Discount float64            `json:"discount" bson:"discount"`          // Phần trăm giảm giá
	Total    float64            `json:"total" bson:"total"`                // Thành tiền trước giảm giá
	Final    float64            `json:"final" bson:"final"`                // Thành tiền sau giảm giá
	Date     time.Time          `json:"date" bson:"date"`                  // Ngày giao dịch
	Payment  string             `json:"payment" bson:"payment"`            // Phương thức thanh toán
	Status   string             `json:"status" bson:"status"`              // Trạng thái đơn hàng
	Delivery string             `json:"delivery" bson:"delivery"`          // Phương thức giao hàng
	Sid      string             `json:"sid" bson:"sid"`                    // Mã cửa hàng
	Sloc     string             `json:"sloc" bson:"sloc"`                  // Địa điểm cửa hàng
	Spid     string             `json:"spid" bson:"spid"`                  // Mã nhân viên bán hàng
	Ename    string             `json:"ename" bson:"ename"`                // Tên nhân viên bán hàng

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
