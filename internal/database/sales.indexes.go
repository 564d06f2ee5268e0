// Package database - Index cho collection sales: phục vụ tìm kiếm, lọc và sắp xếp
// của API truy vấn giao dịch.
package database

import (
	"context"
	"strings"

	"retail_sales/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateSalesIndexes tạo toàn bộ index cho collection sales.
// Index đã tồn tại không phải là lỗi (idempotent, gọi lại mỗi lần khởi động).
func CreateSalesIndexes(ctx context.Context, col *mongo.Collection) error {
	// tid: unique — mã giao dịch không được trùng
	if _, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "tid", Value: 1}},
		Options: options.Index().SetName("sales_tid_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// Single-field index cho các trường lọc và sắp xếp
	singleFields := []string{
		"cname", "phone", "region", "gender", "age",
		"category", "tags", "payment", "date", "qty",
	}
	for _, field := range singleFields {
		if _, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetName("sales_" + field),
		}); err != nil && !isIndexExistsError(err) {
			return err
		}
	}

	// Text index trên tên khách hàng + số điện thoại
	if _, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "cname", Value: "text"},
			{Key: "phone", Value: "text"},
		},
		Options: options.Index().SetName("sales_cname_phone_text"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// (date desc, qty desc) — sắp xếp mặc định của dashboard theo ngày và số lượng
	if _, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "date", Value: -1},
			{Key: "qty", Value: -1},
		},
		Options: options.Index().SetName("sales_date_qty"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// (region, gender, category) — tổ hợp lọc phổ biến nhất
	if _, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "region", Value: 1},
			{Key: "gender", Value: 1},
			{Key: "category", Value: 1},
		},
		Options: options.Index().SetName("sales_region_gender_category"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	logger.WithCollection(col.Name()).Info("Sales indexes created successfully")
	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
