// Package router quản lý việc định tuyến cho toàn bộ API.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "retail_sales/internal/api/base/handler"
	salesrouter "retail_sales/internal/api/sales/router"
	"retail_sales/internal/common"
)

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// NewRouter tạo router mới gắn với fiber app
func NewRouter(app *fiber.App) *Router {
	return &Router{app: app}
}

// SetupRoutes đăng ký toàn bộ route của ứng dụng.
// Domain sales được mount ở cả /api (đường dẫn gốc của client cũ)
// và /api/v1 (chuẩn versioning cho client mới).
func (r *Router) SetupRoutes() error {
	systemHandler := basehdl.NewSystemHandler()

	// Health check ở root để load balancer không cần biết prefix API
	r.app.Get("/health", systemHandler.HandleHealth)

	api := r.app.Group("/api")
	api.Get("/health", systemHandler.HandleHealth)
	if err := salesrouter.Register(api); err != nil {
		return fmt.Errorf("register sales routes: %w", err)
	}

	v1 := api.Group("/v1")
	if err := salesrouter.Register(v1); err != nil {
		return fmt.Errorf("register sales v1 routes: %w", err)
	}

	// Fallback 404 trả về cùng format envelope với các lỗi khác
	r.app.Use(func(c fiber.Ctx) error {
		return basehdl.JSONResponse(c, common.StatusNotFound, fiber.Map{
			"success": false,
			"message": common.MsgNotFound,
		})
	})

	return nil
}
