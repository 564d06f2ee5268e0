// Package router đăng ký các route thuộc domain sales.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	saleshdl "retail_sales/internal/api/sales/handler"
)

// Register đăng ký tất cả route sales lên group cha
func Register(parent fiber.Router) error {
	handler, err := saleshdl.NewSalesHandler()
	if err != nil {
		return fmt.Errorf("create sales handler: %w", err)
	}

	group := parent.Group("/sales")
	group.Get("/", handler.HandleList)
	group.Get("/filters", handler.HandleFilterOptions)
	group.Get("/statistics", handler.HandleStatistics)
	group.Get("/age-range", handler.HandleAgeRange)
	group.Get("/by-tid/:tid", handler.HandleFindByTid)

	return nil
}
