package salessvc

import (
	"testing"
	"time"

	"retail_sales/internal/api/sales/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func intPtr(v int) *int { return &v }

func timePtr(v time.Time) *time.Time { return &v }

// conditionsOf trích danh sách mệnh đề dưới $and của bộ lọc
func conditionsOf(t *testing.T, filter bson.M) []bson.M {
	t.Helper()
	and, ok := filter["$and"]
	require.True(t, ok, "filter phải có $and")
	conditions, ok := and.([]bson.M)
	require.True(t, ok)
	return conditions
}

func TestBuildFilter_Empty(t *testing.T) {
	filter := BuildFilter(models.FilterCriteria{})
	assert.Empty(t, filter)
}

func TestBuildFilter_BlankSearchIgnored(t *testing.T) {
	filter := BuildFilter(models.FilterCriteria{Search: "   "})
	assert.Empty(t, filter)
}

func TestBuildFilter_SearchQuotesRegexMeta(t *testing.T) {
	filter := BuildFilter(models.FilterCriteria{Search: "a+b"})
	conditions := conditionsOf(t, filter)
	require.Len(t, conditions, 1)

	or, ok := conditions[0]["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 2)

	cnameRegex, ok := or[0]["cname"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, `a\+b`, cnameRegex.Pattern)
	assert.Equal(t, "i", cnameRegex.Options)

	phoneRegex, ok := or[1]["phone"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, `a\+b`, phoneRegex.Pattern)
}

func TestBuildFilter_SetFilters(t *testing.T) {
	filter := BuildFilter(models.FilterCriteria{
		Region:   []string{"North", "South"},
		Gender:   []string{"Female"},
		Category: []string{"Electronics"},
		Tags:     []string{"sale", "new"},
		Payment:  []string{"Cash"},
	})
	conditions := conditionsOf(t, filter)
	require.Len(t, conditions, 5)

	assert.Contains(t, conditions, bson.M{"region": bson.M{"$in": []string{"North", "South"}}})
	assert.Contains(t, conditions, bson.M{"gender": bson.M{"$in": []string{"Female"}}})
	assert.Contains(t, conditions, bson.M{"category": bson.M{"$in": []string{"Electronics"}}})
	assert.Contains(t, conditions, bson.M{"tags": bson.M{"$in": []string{"sale", "new"}}})
	assert.Contains(t, conditions, bson.M{"payment": bson.M{"$in": []string{"Cash"}}})
}

func TestBuildFilter_AgeBoundsIndependent(t *testing.T) {
	// Chỉ có biên dưới
	filter := BuildFilter(models.FilterCriteria{AgeMin: intPtr(18)})
	conditions := conditionsOf(t, filter)
	require.Len(t, conditions, 1)
	assert.Equal(t, bson.M{"age": bson.M{"$gte": 18}}, conditions[0])

	// Chỉ có biên trên
	filter = BuildFilter(models.FilterCriteria{AgeMax: intPtr(60)})
	conditions = conditionsOf(t, filter)
	require.Len(t, conditions, 1)
	assert.Equal(t, bson.M{"age": bson.M{"$lte": 60}}, conditions[0])

	// Cả hai biên nằm chung một mệnh đề
	filter = BuildFilter(models.FilterCriteria{AgeMin: intPtr(18), AgeMax: intPtr(60)})
	conditions = conditionsOf(t, filter)
	require.Len(t, conditions, 1)
	assert.Equal(t, bson.M{"age": bson.M{"$gte": 18, "$lte": 60}}, conditions[0])
}

func TestBuildFilter_DateRangeCoversWholeDay(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	filter := BuildFilter(models.FilterCriteria{DateFrom: timePtr(day), DateTo: timePtr(day)})
	conditions := conditionsOf(t, filter)
	require.Len(t, conditions, 1)

	dateCond, ok := conditions[0]["date"].(bson.M)
	require.True(t, ok)

	gte, ok := dateCond["$gte"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), gte)

	lte, ok := dateCond["$lte"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 15, 23, 59, 59, 999000000, time.UTC), lte)

	// dateFrom == dateTo phủ trọn ngày
	assert.True(t, lte.After(gte))
}

func TestBuildFilter_CombinedConditions(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	filter := BuildFilter(models.FilterCriteria{
		Search:   "Nguyen",
		Region:   []string{"North"},
		AgeMin:   intPtr(20),
		DateFrom: timePtr(day),
	})
	conditions := conditionsOf(t, filter)
	assert.Len(t, conditions, 4)
}

func TestResolveSort_KnownTokens(t *testing.T) {
	tests := []struct {
		token string
		want  bson.D
	}{
		{"tid-asc", bson.D{{Key: "tid", Value: 1}}},
		{"tid-desc", bson.D{{Key: "tid", Value: -1}}},
		{"date-asc", bson.D{{Key: "date", Value: 1}, {Key: "tid", Value: 1}}},
		{"date-desc", bson.D{{Key: "date", Value: -1}, {Key: "tid", Value: 1}}},
		{"quantity-asc", bson.D{{Key: "qty", Value: 1}, {Key: "tid", Value: 1}}},
		{"quantity-desc", bson.D{{Key: "qty", Value: -1}, {Key: "tid", Value: 1}}},
		{"name-asc", bson.D{{Key: "cname", Value: 1}, {Key: "tid", Value: 1}}},
		{"name-desc", bson.D{{Key: "cname", Value: -1}, {Key: "tid", Value: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveSort(tt.token))
		})
	}
}

func TestResolveSort_UnknownTokenFallsBack(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "tid", Value: 1}}, ResolveSort(""))
	assert.Equal(t, bson.D{{Key: "tid", Value: 1}}, ResolveSort("price-asc"))
	assert.Equal(t, bson.D{{Key: "tid", Value: 1}}, ResolveSort("DATE-ASC"))
}
