// Package database quản lý vòng đời kết nối MongoDB: client được tạo tường minh
// lúc khởi động, lưu vào global và đóng khi server dừng.
package database

import (
	"context"
	"fmt"
	"time"

	"retail_sales/config"
	"retail_sales/internal/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// GetInstance tạo và kiểm tra kết nối tới MongoDB từ cấu hình server.
// Pool được cấu hình cho tải đọc là chủ yếu: API chỉ truy vấn,
// đường ghi duy nhất là importer chạy ngoài giờ.
func GetInstance(c *config.Configuration) (*mongo.Client, error) {
	if c.MongoDB_ConnectionURI == "" {
		return nil, fmt.Errorf("database connection URL is empty")
	}

	clientOptions := options.Client().ApplyURI(c.MongoDB_ConnectionURI).
		SetMaxPoolSize(100).                // Tải đọc đồng thời cao (list + count chạy song song)
		SetMinPoolSize(10).                 // Giữ sẵn connection để tránh chi phí mở lại
		SetMaxConnIdleTime(5 * time.Minute) // Thu hồi connection nhàn rỗi

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping với primary để chắc chắn kết nối dùng được trước khi đăng ký collection
	ctxPing, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelPing()

	if err := client.Ping(ctxPing, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.GetAppLogger().Info("Successfully connected to MongoDB")
	return client, nil
}

// CloseInstance ngắt kết nối client MongoDB khi server dừng
func CloseInstance(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		logger.GetAppLogger().WithError(err).Error("Failed to disconnect MongoDB client")
		return err
	}
	logger.GetAppLogger().Info("Successfully disconnected from MongoDB")
	return nil
}
