package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHeader(t *testing.T) {
	header := []string{"Transaction ID", "customer_name", "qty", "Unknown Column", " Tags "}
	fields := normalizeHeader(header)
	assert.Equal(t, []string{"tid", "cname", "qty", "", "tags"}, fields)
}

func TestTransformRow_TitleCaseHeader(t *testing.T) {
	header := []string{
		"Transaction ID", "Customer Name", "Phone Number", "Gender", "Age",
		"Customer Region", "Product Category", "Tags", "Quantity",
		"Price per Unit", "Discount Percentage", "Total Amount", "Final Amount",
		"Date", "Payment Method",
	}
	row := []string{
		"1001", "Nguyen Van A", "0901234567", "Male", "34",
		"North", "Electronics", "sale, new , ", "3",
		"150.5", "10", "451.5", "406.35",
		"2024-03-15", "Cash",
	}

	tx := TransformRow(normalizeHeader(header), row)

	assert.Equal(t, int64(1001), tx.Tid)
	assert.Equal(t, "Nguyen Van A", tx.Cname)
	assert.Equal(t, "0901234567", tx.Phone)
	assert.Equal(t, "Male", tx.Gender)
	assert.Equal(t, 34, tx.Age)
	assert.Equal(t, "North", tx.Region)
	assert.Equal(t, "Electronics", tx.Category)
	assert.Equal(t, []string{"sale", "new"}, tx.Tags)
	assert.Equal(t, 3, tx.Qty)
	assert.Equal(t, 150.5, tx.Price)
	assert.Equal(t, 10.0, tx.Discount)
	assert.Equal(t, 451.5, tx.Total)
	assert.Equal(t, 406.35, tx.Final)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), tx.Date)
	assert.Equal(t, "Cash", tx.Payment)
}

func TestTransformRow_SnakeCaseHeader(t *testing.T) {
	header := []string{"transaction_id", "customer_name", "product_category"}
	row := []string{"7", "Tran Thi B", "Clothing"}

	tx := TransformRow(normalizeHeader(header), row)
	assert.Equal(t, int64(7), tx.Tid)
	assert.Equal(t, "Tran Thi B", tx.Cname)
	assert.Equal(t, "Clothing", tx.Category)
}

func TestTransformRow_Defaults(t *testing.T) {
	header := []string{"tid", "qty", "age", "price", "tags"}
	row := []string{"5", "", "", "", ""}

	tx := TransformRow(normalizeHeader(header), row)

	// qty thiếu về 1, các số khác về 0, tags rỗng khác nil
	assert.Equal(t, 1, tx.Qty)
	assert.Equal(t, 0, tx.Age)
	assert.Equal(t, 0.0, tx.Price)
	require.NotNil(t, tx.Tags)
	assert.Empty(t, tx.Tags)
}

func TestTransformRow_ShortRowIgnoresMissingColumns(t *testing.T) {
	header := []string{"tid", "cname", "phone"}
	row := []string{"9", "Le Van C"}

	tx := TransformRow(normalizeHeader(header), row)
	assert.Equal(t, int64(9), tx.Tid)
	assert.Equal(t, "Le Van C", tx.Cname)
	assert.Empty(t, tx.Phone)
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitTags("a, b"))
	assert.Equal(t, []string{"a"}, splitTags("a,,  ,"))
	assert.Empty(t, splitTags(""))
}

func TestParseDate(t *testing.T) {
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), parseDate("2024-01-02"))
	assert.Equal(t, time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC), parseDate("2024-01-02 15:04:05"))

	// Ngày không hợp lệ rơi về thời điểm hiện tại
	parsed := parseDate("not-a-date")
	assert.WithinDuration(t, time.Now(), parsed, time.Minute)
}

func TestParseInt64(t *testing.T) {
	assert.Equal(t, int64(12), parseInt64("12", 0))
	assert.Equal(t, int64(12), parseInt64("12.0", 0))
	assert.Equal(t, int64(1), parseInt64("", 1))
	assert.Equal(t, int64(1), parseInt64("abc", 1))
}
