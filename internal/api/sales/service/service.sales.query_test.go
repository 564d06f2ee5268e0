package salessvc

import (
	"testing"

	"retail_sales/internal/api/sales/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestStatisticsFromRows(t *testing.T) {
	rows := []bson.M{{
		"totalUnits":    int32(12),
		"totalAmount":   3400.5,
		"totalDiscount": 120.5,
		"totalRecords":  int32(4),
	}}

	stats := statisticsFromRows(rows)
	assert.Equal(t, int64(12), stats.TotalUnits)
	assert.Equal(t, 3400.5, stats.TotalAmount)
	assert.Equal(t, 120.5, stats.TotalDiscount)
	assert.Equal(t, int64(4), stats.TotalRecords)
}

func TestStatisticsFromRows_NoMatches(t *testing.T) {
	// Không có bản ghi nào khớp: toàn số 0, không phải lỗi
	assert.Equal(t, models.Statistics{}, statisticsFromRows(nil))
	assert.Equal(t, models.Statistics{}, statisticsFromRows([]bson.M{}))
}

func TestAgeRangeFromRows(t *testing.T) {
	rows := []bson.M{{"minAge": int32(18), "maxAge": int32(75)}}
	assert.Equal(t, models.AgeRange{MinAge: 18, MaxAge: 75}, ageRangeFromRows(rows))
}

func TestAgeRangeFromRows_EmptyStore(t *testing.T) {
	// Store rỗng trả về khoảng mặc định cho UI dựng slider
	assert.Equal(t, models.AgeRange{MinAge: 0, MaxAge: 100}, ageRangeFromRows(nil))
}
