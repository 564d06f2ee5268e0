// Package saleshdl chứa HTTP handler của domain sales: parse query string,
// validate đầu vào và gọi query service.
package saleshdl

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	basehdl "retail_sales/internal/api/base/handler"
	basemodels "retail_sales/internal/api/base/models"
	salesdto "retail_sales/internal/api/sales/dto"
	"retail_sales/internal/api/sales/models"
	salessvc "retail_sales/internal/api/sales/service"
	"retail_sales/internal/common"
	"retail_sales/internal/global"
	"retail_sales/internal/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/valyala/fasthttp"
)

// dateLayout là định dạng ngày của query param dateFrom/dateTo
const dateLayout = "2006-01-02"

// SalesQuerier là các truy vấn mà handler cần từ service layer.
// Interface cho phép test handler với một stub thay vì MongoDB thật.
type SalesQuerier interface {
	List(ctx context.Context, criteria models.FilterCriteria, sortBy string, page, limit int64) (*basemodels.PaginateResult[models.SalesTransaction], error)
	Statistics(ctx context.Context, criteria models.FilterCriteria) (models.Statistics, error)
	FilterOptions(ctx context.Context) (models.FilterOptions, error)
	AgeRange(ctx context.Context) (models.AgeRange, error)
	FindByTid(ctx context.Context, tid int64) (models.SalesTransaction, error)
}

// SalesHandler xử lý các yêu cầu liên quan đến giao dịch bán hàng
type SalesHandler struct {
	service      SalesQuerier
	defaultLimit int64
	maxLimit     int64
}

// NewSalesHandler khởi tạo SalesHandler với service mặc định và giới hạn
// phân trang lấy từ cấu hình server
func NewSalesHandler() (*SalesHandler, error) {
	service, err := salessvc.NewSalesQueryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create sales query service: %v", err)
	}

	defaultLimit := int64(10)
	maxLimit := int64(100)
	if cfg := global.MongoDB_ServerConfig; cfg != nil {
		if cfg.DefaultPageLimit > 0 {
			defaultLimit = int64(cfg.DefaultPageLimit)
		}
		if cfg.MaxPageLimit > 0 {
			maxLimit = int64(cfg.MaxPageLimit)
		}
	}

	return NewSalesHandlerWithService(service, defaultLimit, maxLimit), nil
}

// NewSalesHandlerWithService khởi tạo SalesHandler với một querier tùy ý
func NewSalesHandlerWithService(service SalesQuerier, defaultLimit, maxLimit int64) *SalesHandler {
	return &SalesHandler{
		service:      service,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// HandleList xử lý GET /sales: danh sách giao dịch có lọc, sắp xếp, phân trang
func (h *SalesHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		input, err := h.parseListInput(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		criteria, err := toCriteria(input)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		result, err := h.service.List(c.Context(), criteria, input.SortBy, input.Page, input.Limit)
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Failed to list sales transactions")
			return basehdl.HandleResponse(c, nil, err)
		}

		return basehdl.HandleListResponse(c, result.Items, result.Pagination, nil)
	})
}

// HandleStatistics xử lý GET /sales/statistics: thống kê trên tập khớp bộ lọc
func (h *SalesHandler) HandleStatistics(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		input, err := h.parseListInput(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		criteria, err := toCriteria(input)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		stats, err := h.service.Statistics(c.Context(), criteria)
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Failed to compute sales statistics")
			return basehdl.HandleResponse(c, nil, err)
		}

		return basehdl.HandleResponse(c, stats, nil)
	})
}

// HandleFilterOptions xử lý GET /sales/filters: các giá trị distinct cho dropdown
func (h *SalesHandler) HandleFilterOptions(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		opts, err := h.service.FilterOptions(c.Context())
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Failed to load filter options")
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, opts, nil)
	})
}

// HandleAgeRange xử lý GET /sales/age-range: khoảng tuổi của toàn bộ dữ liệu
func (h *SalesHandler) HandleAgeRange(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		ageRange, err := h.service.AgeRange(c.Context())
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Failed to compute age range")
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, ageRange, nil)
	})
}

// HandleFindByTid xử lý GET /sales/by-tid/:tid: một giao dịch theo mã giao dịch
func (h *SalesHandler) HandleFindByTid(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		tid, err := strconv.ParseInt(c.Params("tid"), 10, 64)
		if err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Mã giao dịch phải là số nguyên",
				common.StatusBadRequest,
				nil,
			))
		}

		transaction, err := h.service.FindByTid(c.Context(), tid)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, transaction, nil)
	})
}

// parseListInput đọc và validate query string của list/statistics.
// Query param lặp lại (region=a&region=b) và giá trị đơn đều cho ra slice.
func (h *SalesHandler) parseListInput(c fiber.Ctx) (salesdto.SalesListInput, error) {
	input := salesdto.SalesListInput{
		Search:   strings.TrimSpace(c.Query("search")),
		Region:   queryMulti(c, "region"),
		Gender:   queryMulti(c, "gender"),
		Category: queryMulti(c, "category"),
		Tags:     queryMulti(c, "tags"),
		Payment:  queryMulti(c, "payment"),
		DateFrom: strings.TrimSpace(c.Query("dateFrom")),
		DateTo:   strings.TrimSpace(c.Query("dateTo")),
		SortBy:   strings.TrimSpace(c.Query("sortBy")),
	}

	// sortBy vắng mặt dùng sắp xếp mặc định của dashboard: ngày mới nhất trước
	if input.SortBy == "" {
		input.SortBy = "date-desc"
	}

	ageMin, err := queryIntPtr(c, "ageMin")
	if err != nil {
		return input, err
	}
	input.AgeMin = ageMin

	ageMax, err := queryIntPtr(c, "ageMax")
	if err != nil {
		return input, err
	}
	input.AgeMax = ageMax

	page, err := queryInt64(c, "page", 1)
	if err != nil {
		return input, err
	}
	input.Page = page

	limit, err := queryInt64(c, "limit", h.defaultLimit)
	if err != nil {
		return input, err
	}
	// Chặn trên limit để tránh truy vấn quá nặng
	if limit > h.maxLimit {
		limit = h.maxLimit
	}
	input.Limit = limit

	if global.Validate != nil {
		if err := global.Validate.Struct(&input); err != nil {
			return input, common.NewError(
				common.ErrCodeValidationInput,
				common.MsgValidationError,
				common.StatusBadRequest,
				err.Error(),
			)
		}
	}

	return input, nil
}

// toCriteria chuyển DTO đã validate sang FilterCriteria của service layer
func toCriteria(input salesdto.SalesListInput) (models.FilterCriteria, error) {
	criteria := models.FilterCriteria{
		Search:   input.Search,
		Region:   input.Region,
		Gender:   input.Gender,
		Category: input.Category,
		Tags:     input.Tags,
		Payment:  input.Payment,
		AgeMin:   input.AgeMin,
		AgeMax:   input.AgeMax,
	}

	if input.DateFrom != "" {
		from, err := time.Parse(dateLayout, input.DateFrom)
		if err != nil {
			return criteria, invalidDateError("dateFrom")
		}
		criteria.DateFrom = &from
	}
	if input.DateTo != "" {
		to, err := time.Parse(dateLayout, input.DateTo)
		if err != nil {
			return criteria, invalidDateError("dateTo")
		}
		criteria.DateTo = &to
	}

	return criteria, nil
}

func invalidDateError(param string) error {
	return common.NewError(
		common.ErrCodeValidationFormat,
		fmt.Sprintf("Tham số %s phải có định dạng YYYY-MM-DD", param),
		common.StatusBadRequest,
		nil,
	)
}

// queryMulti đọc toàn bộ giá trị của một query param lặp lại.
// Giá trị rỗng bị loại; không có giá trị nào trả về nil (không sinh điều kiện lọc).
func queryMulti(c fiber.Ctx, key string) []string {
	return peekMulti(c.RequestCtx().QueryArgs(), key)
}

// peekMulti đọc các giá trị lặp lại của một key từ query args của fasthttp
func peekMulti(args *fasthttp.Args, key string) []string {
	raw := args.PeekMulti(key)
	if len(raw) == 0 {
		return nil
	}

	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s := strings.TrimSpace(string(v)); s != "" {
			values = append(values, s)
		}
	}
	if len(values) == 0 {
		return nil
	}
	return values
}

// queryIntPtr đọc một query param số nguyên tùy chọn; vắng mặt trả về nil
func queryIntPtr(c fiber.Ctx, key string) (*int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Tham số %s phải là số nguyên", key),
			common.StatusBadRequest,
			nil,
		)
	}
	return &value, nil
}

// queryInt64 đọc một query param số nguyên với giá trị mặc định khi vắng mặt.
// Giá trị có mặt nhưng không parse được hoặc không dương là lỗi đầu vào.
func queryInt64(c fiber.Ctx, key string, defaultValue int64) (int64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 1 {
		return 0, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Tham số %s phải là số nguyên dương", key),
			common.StatusBadRequest,
			nil,
		)
	}
	return value, nil
}
