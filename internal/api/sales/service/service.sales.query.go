package salessvc

import (
	"context"
	"fmt"

	basemodels "retail_sales/internal/api/base/models"
	basesvc "retail_sales/internal/api/base/service"
	"retail_sales/internal/api/sales/models"
	"retail_sales/internal/common"
	"retail_sales/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

// SalesQueryService là cấu trúc chứa các truy vấn đọc trên collection sales
type SalesQueryService struct {
	*basesvc.BaseServiceMongoImpl[models.SalesTransaction]
}

// NewSalesQueryService tạo mới SalesQueryService
func NewSalesQueryService() (*SalesQueryService, error) {
	salesCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Sales)
	if !exist {
		return nil, fmt.Errorf("failed to get sales collection: %v", common.ErrNotFound)
	}

	return &SalesQueryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.SalesTransaction](salesCollection),
	}, nil
}

// List trả về một trang giao dịch khớp bộ lọc cùng khối phân trang.
// Trang dữ liệu và tổng số bản ghi được truy vấn đồng thời; lỗi ở bất kỳ
// nhánh nào làm cả truy vấn thất bại, không trả kết quả một phần.
func (s *SalesQueryService) List(ctx context.Context, criteria models.FilterCriteria, sortBy string, page, limit int64) (*basemodels.PaginateResult[models.SalesTransaction], error) {
	if page < 1 {
		return nil, common.NewError(common.ErrCodeValidationInput, "Số trang phải lớn hơn hoặc bằng 1", common.StatusBadRequest, nil)
	}
	if limit < 1 {
		return nil, common.NewError(common.ErrCodeValidationInput, "Số bản ghi mỗi trang phải lớn hơn hoặc bằng 1", common.StatusBadRequest, nil)
	}

	filter := BuildFilter(criteria)
	opts := options.Find().SetSort(ResolveSort(sortBy))

	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// Statistics tính các số liệu tổng hợp trên tập giao dịch khớp bộ lọc.
// Không có bản ghi nào khớp trả về struct toàn số 0, không phải lỗi.
func (s *SalesQueryService) Statistics(ctx context.Context, criteria models.FilterCriteria) (models.Statistics, error) {
	filter := BuildFilter(criteria)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$group", Value: bson.M{
			"_id":         nil,
			"totalUnits":  bson.M{"$sum": "$qty"},
			"totalAmount": bson.M{"$sum": "$total"},
			"totalDiscount": bson.M{"$sum": bson.M{
				"$divide": []interface{}{
					bson.M{"$multiply": []interface{}{"$total", "$discount"}},
					100,
				},
			}},
			"totalRecords": bson.M{"$sum": 1},
		}}},
	}

	results, err := s.Aggregate(ctx, pipeline)
	if err != nil {
		return models.Statistics{}, err
	}
	return statisticsFromRows(results), nil
}

// statisticsFromRows dựng Statistics từ kết quả $group.
// Không có bản ghi nào khớp thì $group không trả dòng nào: struct toàn số 0.
func statisticsFromRows(rows []bson.M) models.Statistics {
	if len(rows) == 0 {
		return models.Statistics{}
	}

	return models.Statistics{
		TotalUnits:    toInt64(rows[0]["totalUnits"]),
		TotalAmount:   toFloat64(rows[0]["totalAmount"]),
		TotalDiscount: toFloat64(rows[0]["totalDiscount"]),
		TotalRecords:  toInt64(rows[0]["totalRecords"]),
	}
}

// FilterOptions trả về các giá trị distinct của 5 trường lọc trên toàn bộ
// collection, mỗi danh sách sắp xếp tăng dần. Năm truy vấn chạy đồng thời.
func (s *SalesQueryService) FilterOptions(ctx context.Context) (models.FilterOptions, error) {
	opts := models.FilterOptions{}

	g, gctx := errgroup.WithContext(ctx)
	fields := []struct {
		name   string
		target *[]string
	}{
		{"region", &opts.Regions},
		{"gender", &opts.Genders},
		{"category", &opts.Categories},
		{"tags", &opts.Tags},
		{"payment", &opts.Payments},
	}
	for _, f := range fields {
		g.Go(func() error {
			values, err := s.Distinct(gctx, f.name, nil)
			if err != nil {
				return err
			}
			*f.target = toSortedStrings(values)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.FilterOptions{}, err
	}

	return opts, nil
}

// AgeRange trả về tuổi nhỏ nhất và lớn nhất trong toàn bộ dữ liệu.
// Collection rỗng trả về khoảng mặc định (0, 100) cho UI dựng slider.
func (s *SalesQueryService) AgeRange(ctx context.Context) (models.AgeRange, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":    nil,
			"minAge": bson.M{"$min": "$age"},
			"maxAge": bson.M{"$max": "$age"},
		}}},
	}

	results, err := s.Aggregate(ctx, pipeline)
	if err != nil {
		return models.AgeRange{}, err
	}
	return ageRangeFromRows(results), nil
}

// ageRangeFromRows dựng AgeRange từ kết quả $group.
// Store rỗng trả về khoảng mặc định (0, 100) cho UI dựng slider.
func ageRangeFromRows(rows []bson.M) models.AgeRange {
	if len(rows) == 0 {
		return models.AgeRange{MinAge: 0, MaxAge: 100}
	}

	return models.AgeRange{
		MinAge: int(toInt64(rows[0]["minAge"])),
		MaxAge: int(toInt64(rows[0]["maxAge"])),
	}
}

// FindByTid tìm một giao dịch theo mã giao dịch
func (s *SalesQueryService) FindByTid(ctx context.Context, tid int64) (models.SalesTransaction, error) {
	return s.FindOne(ctx, bson.M{"tid": tid}, nil)
}
