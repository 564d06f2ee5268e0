package salessvc

import "sort"

// toInt64 chuyển giá trị BSON số (int32/int64/double) về int64.
// Giá trị nil hoặc không phải số trả về 0.
func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int32:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}

// toFloat64 chuyển giá trị BSON số về float64. Giá trị nil hoặc không phải số trả về 0.
func toFloat64(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}

// toSortedStrings lọc các giá trị string từ kết quả distinct, bỏ chuỗi rỗng
// và sắp xếp tăng dần. Luôn trả về slice khác nil để JSON là [] thay vì null.
func toSortedStrings(values []interface{}) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			result = append(result, s)
		}
	}
	sort.Strings(result)
	return result
}
