// Package salessvc chứa business logic của domain sales: dựng bộ lọc,
// phân giải sắp xếp và các truy vấn đọc trên collection sales.
package salessvc

import (
	"regexp"
	"strings"
	"time"

	"retail_sales/internal/api/sales/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BuildFilter dựng bộ lọc MongoDB từ FilterCriteria.
// Mỗi điều kiện có mặt sinh đúng một mệnh đề, tất cả AND với nhau qua $and.
// Criteria rỗng trả về bson.M{} (khớp toàn bộ collection, không sinh mệnh đề thừa).
func BuildFilter(criteria models.FilterCriteria) bson.M {
	var conditions []bson.M

	// Tìm kiếm substring không phân biệt hoa thường trên tên và số điện thoại.
	// Input được QuoteMeta để ký tự đặc biệt regex ("a+b") match theo nghĩa đen.
	if search := strings.TrimSpace(criteria.Search); search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		conditions = append(conditions, bson.M{
			"$or": []bson.M{
				{"cname": pattern},
				{"phone": pattern},
			},
		})
	}

	// Các bộ lọc tập hợp: giá trị nằm trong danh sách đã chọn
	if len(criteria.Region) > 0 {
		conditions = append(conditions, bson.M{"region": bson.M{"$in": criteria.Region}})
	}
	if len(criteria.Gender) > 0 {
		conditions = append(conditions, bson.M{"gender": bson.M{"$in": criteria.Gender}})
	}
	if len(criteria.Category) > 0 {
		conditions = append(conditions, bson.M{"category": bson.M{"$in": criteria.Category}})
	}
	if len(criteria.Tags) > 0 {
		// tags là mảng: $in khớp khi giao dịch có ít nhất một nhãn được chọn
		conditions = append(conditions, bson.M{"tags": bson.M{"$in": criteria.Tags}})
	}
	if len(criteria.Payment) > 0 {
		conditions = append(conditions, bson.M{"payment": bson.M{"$in": criteria.Payment}})
	}

	// Khoảng tuổi: hai biên độc lập, đều inclusive
	if criteria.AgeMin != nil || criteria.AgeMax != nil {
		ageCond := bson.M{}
		if criteria.AgeMin != nil {
			ageCond["$gte"] = *criteria.AgeMin
		}
		if criteria.AgeMax != nil {
			ageCond["$lte"] = *criteria.AgeMax
		}
		conditions = append(conditions, bson.M{"age": ageCond})
	}

	// Khoảng ngày: dateFrom từ 00:00:00.000, dateTo đến 23:59:59.999 cùng ngày.
	// dateFrom == dateTo phủ trọn một ngày.
	if criteria.DateFrom != nil || criteria.DateTo != nil {
		dateCond := bson.M{}
		if criteria.DateFrom != nil {
			dateCond["$gte"] = startOfDay(*criteria.DateFrom)
		}
		if criteria.DateTo != nil {
			dateCond["$lte"] = endOfDay(*criteria.DateTo)
		}
		conditions = append(conditions, bson.M{"date": dateCond})
	}

	if len(conditions) == 0 {
		return bson.M{}
	}
	return bson.M{"$and": conditions}
}

// startOfDay trả về 00:00:00.000 của ngày t (giữ nguyên location)
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay trả về 23:59:59.999 của ngày t (giữ nguyên location)
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// sortTokens ánh xạ token sắp xếp của client sang trường và chiều sắp xếp
var sortTokens = map[string]bson.E{
	"tid-asc":       {Key: "tid", Value: 1},
	"tid-desc":      {Key: "tid", Value: -1},
	"date-asc":      {Key: "date", Value: 1},
	"date-desc":     {Key: "date", Value: -1},
	"quantity-asc":  {Key: "qty", Value: 1},
	"quantity-desc": {Key: "qty", Value: -1},
	"name-asc":      {Key: "cname", Value: 1},
	"name-desc":     {Key: "cname", Value: -1},
}

// ResolveSort phân giải token sắp xếp sang bson.D.
// Token rỗng hoặc không hỗ trợ rơi về mặc định tid tăng dần.
// Khi trường chính không phải tid, tid tăng dần được thêm làm khóa phụ
// để thứ tự giữa các trang ổn định khi giá trị trường chính trùng nhau.
func ResolveSort(token string) bson.D {
	primary, ok := sortTokens[token]
	if !ok {
		return bson.D{{Key: "tid", Value: 1}}
	}

	sort := bson.D{primary}
	if primary.Key != "tid" {
		sort = append(sort, bson.E{Key: "tid", Value: 1})
	}
	return sort
}
