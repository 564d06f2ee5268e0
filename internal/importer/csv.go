// Package importer đọc file CSV dữ liệu bán hàng và nạp vào collection sales
// theo từng batch. Đây là đường ghi duy nhất của hệ thống.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	basesvc "retail_sales/internal/api/base/service"
	"retail_sales/internal/api/sales/models"
	"retail_sales/internal/logger"
)

// BatchSize là số bản ghi mỗi lần InsertMany
const BatchSize = 10000

// headerAliases ánh xạ các tên cột có thể gặp trong file nguồn về tên trường chuẩn.
// File xuất từ các hệ thống khác nhau dùng header khác nhau (Title Case, snake_case
// hoặc tên rút gọn), importer chấp nhận cả ba.
var headerAliases = map[string]string{
	"Transaction ID": "tid", "transaction_id": "tid", "TransactionID": "tid", "tid": "tid",
	"Customer ID": "cid", "customer_id": "cid", "cid": "cid",
	"Customer Name": "cname", "customer_name": "cname", "cname": "cname",
	"Phone Number": "phone", "phone_number": "phone", "phone": "phone",
	"Gender": "gender", "gender": "gender",
	"Age": "age", "age": "age",
	"Customer Region": "region", "customer_region": "region", "region": "region",
	"Customer Type": "ctype", "customer_type": "ctype", "ctype": "ctype",
	"Product ID": "pid", "product_id": "pid", "pid": "pid",
	"Product Name": "pname", "product_name": "pname", "pname": "pname",
	"Brand": "brand", "brand": "brand",
	"Product Category": "category", "product_category": "category", "category": "category",
	"Tags": "tags", "tags": "tags",
	"Quantity": "qty", "quantity": "qty", "qty": "qty",
	"Price per Unit": "price", "price_per_unit": "price", "price": "price",
	"Discount Percentage": "discount", "discount_percentage": "discount", "discount": "discount",
	"Total Amount": "total", "total_amount": "total", "total": "total",
	"Final Amount": "final", "final_amount": "final", "final": "final",
	"Date": "date", "date": "date",
	"Payment Method": "payment", "payment_method": "payment", "payment": "payment",
	"Order Status": "status", "order_status": "status", "status": "status",
	"Delivery Type": "delivery", "delivery_type": "delivery", "delivery": "delivery",
	"Store ID": "sid", "store_id": "sid", "sid": "sid",
	"Store Location": "sloc", "store_location": "sloc", "sloc": "sloc",
	"Salesperson ID": "spid", "salesperson_id": "spid", "spid": "spid",
	"Employee Name": "ename", "employee_name": "ename", "ename": "ename",
}

// Result chứa kết quả của một lần import
type Result struct {
	TotalCount int64 // Số bản ghi đã chèn thành công
	ErrorCount int64 // Số bản ghi lỗi (trùng tid, thiếu dữ liệu...)
}

// Importer nạp dữ liệu CSV vào store sales
type Importer struct {
	service basesvc.BaseServiceMongo[models.SalesTransaction]
}

// NewImporter tạo importer ghi qua base service của collection sales
func NewImporter(service basesvc.BaseServiceMongo[models.SalesTransaction]) *Importer {
	return &Importer{service: service}
}

// normalizeHeader chuyển một dòng header về danh sách tên trường chuẩn.
// Cột không nhận diện được giữ chuỗi rỗng và bị bỏ qua khi transform.
func normalizeHeader(header []string) []string {
	fields := make([]string, len(header))
	for i, h := range header {
		fields[i] = headerAliases[strings.TrimSpace(h)]
	}
	return fields
}

// TransformRow chuyển một dòng CSV (theo header đã chuẩn hóa) thành SalesTransaction.
// Quy tắc giá trị thiếu theo dữ liệu nguồn: age/price/discount/total/final về 0,
// qty về 1, date không parse được lấy thời điểm hiện tại.
func TransformRow(fields []string, row []string) models.SalesTransaction {
	values := make(map[string]string, len(fields))
	for i, field := range fields {
		if field == "" || i >= len(row) {
			continue
		}
		values[field] = strings.TrimSpace(row[i])
	}

	return models.SalesTransaction{
		Tid:      parseInt64(values["tid"], 0),
		Cid:      values["cid"],
		Cname:    values["cname"],
		Phone:    values["phone"],
		Gender:   values["gender"],
		Age:      int(parseInt64(values["age"], 0)),
		Region:   values["region"],
		Ctype:    values["ctype"],
		Pid:      values["pid"],
		Pname:    values["pname"],
		Brand:    values["brand"],
		Category: values["category"],
		Tags:     splitTags(values["tags"]),
		Qty:      int(parseInt64(values["qty"], 1)),
		Price:    parseFloat(values["price"]),
		Discount: parseFloat(values["discount"]),
		Total:    parseFloat(values["total"]),
		Final:    parseFloat(values["final"]),
		Date:     parseDate(values["date"]),
		Payment:  values["payment"],
		Status:   values["status"],
		Delivery: values["delivery"],
		Sid:      values["sid"],
		Sloc:     values["sloc"],
		Spid:     values["spid"],
		Ename:    values["ename"],
	}
}

// splitTags tách chuỗi nhãn phân cách bởi dấu phẩy, bỏ khoảng trắng và phần tử rỗng
func splitTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func parseInt64(raw string, defaultValue int64) int64 {
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// Một số file xuất số nguyên dưới dạng "123.0"
		if f, ferr := strconv.ParseFloat(raw, 64); ferr == nil {
			return int64(f)
		}
		return defaultValue
	}
	return value
}

func parseFloat(raw string) float64 {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}

// dateLayouts là các định dạng ngày chấp nhận trong cột date
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
}

func parseDate(raw string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Now()
}

// ImportFile đọc file CSV và chèn toàn bộ bản ghi theo batch.
// Ghi unordered: bản ghi lỗi (trùng tid...) bị đếm vào ErrorCount,
// các bản ghi còn lại trong batch vẫn được chèn.
func (imp *Importer) ImportFile(ctx context.Context, filePath string) (*Result, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	fields := normalizeHeader(header)

	log := logger.GetLogger("importer")
	result := &Result{}
	batch := make([]models.SalesTransaction, 0, BatchSize)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.ErrorCount++
			continue
		}

		batch = append(batch, TransformRow(fields, row))
		if len(batch) >= BatchSize {
			imp.flushBatch(ctx, batch, result)
			log.WithFields(map[string]interface{}{
				"imported": result.TotalCount,
				"errors":   result.ErrorCount,
			}).Info("Import progress")
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		imp.flushBatch(ctx, batch, result)
	}

	log.WithFields(map[string]interface{}{
		"imported": result.TotalCount,
		"errors":   result.ErrorCount,
	}).Info("Import completed")

	return result, nil
}

// flushBatch chèn một batch và cộng dồn số liệu vào result
func (imp *Importer) flushBatch(ctx context.Context, batch []models.SalesTransaction, result *Result) {
	inserted, err := imp.service.InsertMany(ctx, batch)
	result.TotalCount += inserted
	if err != nil {
		result.ErrorCount += int64(len(batch)) - inserted
	}
}

// Clear xóa toàn bộ dữ liệu hiện có trong collection
func (imp *Importer) Clear(ctx context.Context) (int64, error) {
	return imp.service.DeleteMany(ctx, nil)
}
