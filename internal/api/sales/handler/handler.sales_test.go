package saleshdl

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	basemodels "retail_sales/internal/api/base/models"
	"retail_sales/internal/api/sales/models"
	"retail_sales/internal/common"
	"retail_sales/internal/global"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubQuerier là SalesQuerier giả cho phép từng test cắm hành vi riêng
type stubQuerier struct {
	listFn          func(ctx context.Context, criteria models.FilterCriteria, sortBy string, page, limit int64) (*basemodels.PaginateResult[models.SalesTransaction], error)
	statisticsFn    func(ctx context.Context, criteria models.FilterCriteria) (models.Statistics, error)
	filterOptionsFn func(ctx context.Context) (models.FilterOptions, error)
	ageRangeFn      func(ctx context.Context) (models.AgeRange, error)
	findByTidFn     func(ctx context.Context, tid int64) (models.SalesTransaction, error)
}

func (s *stubQuerier) List(ctx context.Context, criteria models.FilterCriteria, sortBy string, page, limit int64) (*basemodels.PaginateResult[models.SalesTransaction], error) {
	return s.listFn(ctx, criteria, sortBy, page, limit)
}

func (s *stubQuerier) Statistics(ctx context.Context, criteria models.FilterCriteria) (models.Statistics, error) {
	return s.statisticsFn(ctx, criteria)
}

func (s *stubQuerier) FilterOptions(ctx context.Context) (models.FilterOptions, error) {
	return s.filterOptionsFn(ctx)
}

func (s *stubQuerier) AgeRange(ctx context.Context) (models.AgeRange, error) {
	return s.ageRangeFn(ctx)
}

func (s *stubQuerier) FindByTid(ctx context.Context, tid int64) (models.SalesTransaction, error) {
	return s.findByTidFn(ctx, tid)
}

// newTestApp dựng fiber app với các route sales gắn vào stub querier
func newTestApp(stub *stubQuerier) *fiber.App {
	global.InitValidator()

	app := fiber.New()
	handler := NewSalesHandlerWithService(stub, 10, 100)

	group := app.Group("/api/sales")
	group.Get("/", handler.HandleList)
	group.Get("/filters", handler.HandleFilterOptions)
	group.Get("/statistics", handler.HandleStatistics)
	group.Get("/age-range", handler.HandleAgeRange)
	group.Get("/by-tid/:tid", handler.HandleFindByTid)

	return app
}

func doRequest(t *testing.T, app *fiber.App, url string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestHandleList_Success(t *testing.T) {
	stub := &stubQuerier{
		listFn: func(ctx context.Context, criteria models.FilterCriteria, sortBy string, page, limit int64) (*basemodels.PaginateResult[models.SalesTransaction], error) {
			return &basemodels.PaginateResult[models.SalesTransaction]{
				Items:      []models.SalesTransaction{{Tid: 1, Cname: "Nguyen Van A"}},
				Pagination: basemodels.NewPagination(page, limit, 1),
			}, nil
		},
	}
	app := newTestApp(stub)

	status, body := doRequest(t, app, "/api/sales/")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	require.Contains(t, body, "data")
	require.Contains(t, body, "pagination")

	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(1), pagination["page"])
	assert.Equal(t, float64(10), pagination["limit"])
	assert.Equal(t, float64(1), pagination["total"])
}

func TestHandleList_PassesFiltersToService(t *testing.T) {
	var gotCriteria models.FilterCriteria
	var gotSortBy string
	var gotPage, gotLimit int64

	stub := &stubQuerier{
		listFn: func(ctx context.Context, criteria models.FilterCriteria, sortBy string, page, limit int64) (*basemodels.PaginateResult[models.SalesTransaction], error) {
			gotCriteria = criteria
			gotSortBy = sortBy
			gotPage = page
			gotLimit = limit
			return &basemodels.PaginateResult[models.SalesTransaction]{
				Items:      []models.SalesTransaction{},
				Pagination: basemodels.NewPagination(page, limit, 0),
			}, nil
		},
	}
	app := newTestApp(stub)

	url := "/api/sales/?search=nguyen&region=North&region=South&gender=Female" +
		"&ageMin=20&ageMax=40&dateFrom=2024-01-01&dateTo=2024-01-31" +
		"&sortBy=date-desc&page=2&limit=25"
	status, _ := doRequest(t, app, url)
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, "nguyen", gotCriteria.Search)
	assert.Equal(t, []string{"North", "South"}, gotCriteria.Region)
	assert.Equal(t, []string{"Female"}, gotCriteria.Gender)
	require.NotNil(t, gotCriteria.AgeMin)
	assert.Equal(t, 20, *gotCriteria.AgeMin)
	require.NotNil(t, gotCriteria.AgeMax)
	assert.Equal(t, 40, *gotCriteria.AgeMax)
	require.NotNil(t, gotCriteria.DateFrom)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *gotCriteria.DateFrom)
	require.NotNil(t, gotCriteria.DateTo)
	assert.Equal(t, "date-desc", gotSortBy)
	assert.Equal(t, int64(2), gotPage)
	assert.Equal(t, int64(25), gotLimit)
}

func TestHandleList_DefaultsAndLimitCap(t *testing.T) {
	var gotSortBy string
	var gotPage, gotLimit int64
	stub := &stubQuerier{
		listFn: func(ctx context.Context, criteria models.FilterCriteria, sortBy string, page, limit int64) (*basemodels.PaginateResult[models.SalesTransaction], error) {
			gotSortBy = sortBy
			gotPage = page
			gotLimit = limit
			return &basemodels.PaginateResult[models.SalesTransaction]{
				Items:      []models.SalesTransaction{},
				Pagination: basemodels.NewPagination(page, limit, 0),
			}, nil
		},
	}
	app := newTestApp(stub)

	// Không truyền sortBy/page/limit: dùng mặc định, ngày mới nhất trước
	status, _ := doRequest(t, app, "/api/sales/")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "date-desc", gotSortBy)
	assert.Equal(t, int64(1), gotPage)
	assert.Equal(t, int64(10), gotLimit)

	// limit vượt trần bị cắt về maxLimit
	status, _ = doRequest(t, app, "/api/sales/?limit=500")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(100), gotLimit)
}

func TestHandleList_InvalidPage(t *testing.T) {
	stub := &stubQuerier{
		listFn: func(ctx context.Context, criteria models.FilterCriteria, sortBy string, page, limit int64) (*basemodels.PaginateResult[models.SalesTransaction], error) {
			t.Fatal("service không được gọi khi đầu vào không hợp lệ")
			return nil, nil
		},
	}
	app := newTestApp(stub)

	for _, url := range []string{"/api/sales/?page=0", "/api/sales/?page=-1", "/api/sales/?page=abc", "/api/sales/?limit=0"} {
		status, body := doRequest(t, app, url)
		assert.Equal(t, http.StatusBadRequest, status, url)
		assert.Equal(t, false, body["success"], url)
		assert.NotEmpty(t, body["message"], url)
	}
}

func TestHandleList_InvalidDate(t *testing.T) {
	stub := &stubQuerier{
		listFn: func(ctx context.Context, criteria models.FilterCriteria, sortBy string, page, limit int64) (*basemodels.PaginateResult[models.SalesTransaction], error) {
			t.Fatal("service không được gọi khi đầu vào không hợp lệ")
			return nil, nil
		},
	}
	app := newTestApp(stub)

	status, body := doRequest(t, app, "/api/sales/?dateFrom=31-01-2024")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
}

func TestHandleList_ServiceError(t *testing.T) {
	stub := &stubQuerier{
		listFn: func(ctx context.Context, criteria models.FilterCriteria, sortBy string, page, limit int64) (*basemodels.PaginateResult[models.SalesTransaction], error) {
			return nil, common.ErrMongoQuery
		},
	}
	app := newTestApp(stub)

	status, body := doRequest(t, app, "/api/sales/")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["message"])
}

func TestHandleStatistics_Success(t *testing.T) {
	stub := &stubQuerier{
		statisticsFn: func(ctx context.Context, criteria models.FilterCriteria) (models.Statistics, error) {
			return models.Statistics{TotalUnits: 12, TotalAmount: 3400.5, TotalDiscount: 120.5, TotalRecords: 4}, nil
		},
	}
	app := newTestApp(stub)

	status, body := doRequest(t, app, "/api/sales/statistics?region=North")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(12), data["totalUnits"])
	assert.Equal(t, 3400.5, data["totalAmount"])
	assert.Equal(t, 120.5, data["totalDiscount"])
	assert.Equal(t, float64(4), data["totalRecords"])
}

func TestHandleFilterOptions_Success(t *testing.T) {
	stub := &stubQuerier{
		filterOptionsFn: func(ctx context.Context) (models.FilterOptions, error) {
			return models.FilterOptions{
				Regions:    []string{"North", "South"},
				Genders:    []string{"Female", "Male"},
				Categories: []string{},
				Tags:       []string{},
				Payments:   []string{"Cash"},
			}, nil
		},
	}
	app := newTestApp(stub)

	status, body := doRequest(t, app, "/api/sales/filters")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	// Key JSON dạng số ít theo contract của client
	data := body["data"].(map[string]interface{})
	assert.Equal(t, []interface{}{"North", "South"}, data["region"])
	assert.Equal(t, []interface{}{"Cash"}, data["payment"])
	// Danh sách rỗng serialize thành [], không phải null
	assert.Equal(t, []interface{}{}, data["category"])
}

func TestHandleAgeRange_Success(t *testing.T) {
	stub := &stubQuerier{
		ageRangeFn: func(ctx context.Context) (models.AgeRange, error) {
			return models.AgeRange{MinAge: 18, MaxAge: 75}, nil
		},
	}
	app := newTestApp(stub)

	status, body := doRequest(t, app, "/api/sales/age-range")
	assert.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(18), data["min"])
	assert.Equal(t, float64(75), data["max"])
}

func TestHandleFindByTid(t *testing.T) {
	stub := &stubQuerier{
		findByTidFn: func(ctx context.Context, tid int64) (models.SalesTransaction, error) {
			if tid == 42 {
				return models.SalesTransaction{Tid: 42, Cname: "Tran Thi B"}, nil
			}
			return models.SalesTransaction{}, common.ErrNotFound
		},
	}
	app := newTestApp(stub)

	// Tìm thấy
	status, body := doRequest(t, app, "/api/sales/by-tid/42")
	assert.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(42), data["tid"])

	// Không tìm thấy
	status, body = doRequest(t, app, "/api/sales/by-tid/99")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, false, body["success"])

	// Tid không phải số
	status, body = doRequest(t, app, "/api/sales/by-tid/abc")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
}
