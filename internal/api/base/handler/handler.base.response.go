// Package basehdl chứa các helper chuẩn hóa response và handler hệ thống.
package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"retail_sales/internal/common"
	"retail_sales/internal/logger"

	basemodels "retail_sales/internal/api/base/models"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// Helper function này đảm bảo tất cả JSON responses đều có charset=utf-8 để hỗ trợ UTF-8 encoding đúng cách
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	// Set Content-Type với charset=utf-8 trước khi gọi JSON
	c.Set("Content-Type", "application/json; charset=utf-8")
	// Trả về JSON response
	return c.Status(statusCode).JSON(data)
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client.
// Format thống nhất trong toàn bộ ứng dụng:
//   - Thành công:  {"success": true,  "data": ...}
//   - Thất bại:    {"success": false, "message": ...} với HTTP status từ lỗi
func HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) {
			return JSONResponse(c, customErr.StatusCode, fiber.Map{
				"success": false,
				"message": customErr.Message,
			})
		}
		// Nếu không phải custom error, trả về internal server error
		return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	// Trường hợp thành công
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"success": true,
		"data":    data,
	})
}

// HandleListResponse chuẩn hóa response cho danh sách có phân trang.
// Thành công: {"success": true, "data": [...], "pagination": {...}}
func HandleListResponse(c fiber.Ctx, items interface{}, pagination basemodels.Pagination, err error) error {
	if err != nil {
		return HandleResponse(c, nil, err)
	}

	return JSONResponse(c, common.StatusOK, fiber.Map{
		"success":    true,
		"data":       items,
		"pagination": pagination,
	})
}

// SafeHandler bọc handler với recover để bắt panic và luôn trả về response cho client
func SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			// Log stack trace để debug
			debug.PrintStack()
			logger.WithRequest(c).Errorf("Recovered from panic: %v", r)

			_ = HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}
