// Package global chứa các biến toàn cục dùng chung cho toàn bộ ứng dụng.
package global

import (
	"retail_sales/config"
	"retail_sales/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_Sales_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Sales_CollectionName struct {
	Sales string // Tên collection cho giao dịch bán hàng
}

// Các biến toàn cục
var Validate *validator.Validate                              // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                             // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                // Cấu hình của server
var MongoDB_ColNames = *new(MongoDB_Sales_CollectionName)     // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
