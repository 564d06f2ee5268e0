// Importer CLI: nạp file CSV dữ liệu bán hàng vào MongoDB.
//
// Usage:
//
//	importer [-clear] <path-to-csv-file>
//
// -clear xóa toàn bộ dữ liệu hiện có trước khi import.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	basesvc "retail_sales/internal/api/base/service"
	"retail_sales/internal/api/sales/models"
	"retail_sales/config"
	"retail_sales/internal/database"
	"retail_sales/internal/global"
	"retail_sales/internal/importer"
	"retail_sales/internal/logger"
)

func main() {
	clearFlag := flag.Bool("clear", false, "Xóa toàn bộ dữ liệu hiện có trước khi import")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: importer [-clear] <path-to-csv-file>")
		os.Exit(1)
	}
	csvPath := flag.Arg(0)

	if _, err := os.Stat(csvPath); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "File not found: %s\n", csvPath)
		os.Exit(1)
	}

	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	log := logger.GetLogger("importer")

	// Khởi tạo cấu hình và kết nối database
	global.MongoDB_ColNames.Sales = "sales"
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		log.Fatal("Failed to load server configuration")
	}

	client, err := database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	global.MongoDB_Session = client
	defer func() {
		_ = database.CloseInstance(client)
	}()

	db := client.Database(global.MongoDB_ServerConfig.MongoDB_DBName)
	salesCol := db.Collection(global.MongoDB_ColNames.Sales)

	service := basesvc.NewBaseServiceMongo[models.SalesTransaction](salesCol)
	imp := importer.NewImporter(service)

	ctx := context.Background()

	if *clearFlag {
		deleted, err := imp.Clear(ctx)
		if err != nil {
			log.Fatalf("Failed to clear existing data: %v", err)
		}
		log.Infof("Cleared %d existing records", deleted)
	}

	log.Infof("Starting CSV import: %s", csvPath)
	start := time.Now()

	result, err := imp.ImportFile(ctx, csvPath)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	duration := time.Since(start)
	log.WithFields(map[string]interface{}{
		"imported": result.TotalCount,
		"errors":   result.ErrorCount,
		"duration": duration.Round(time.Millisecond).String(),
	}).Info("Import completed")

	// Tạo index sau khi import để truy vấn nhanh ngay từ đầu
	log.Info("Creating indexes...")
	indexCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()
	if err := database.CreateSalesIndexes(indexCtx, salesCol); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	log.Info("Indexes created")
}
