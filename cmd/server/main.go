package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"retail_sales/internal/database"
	"retail_sales/internal/global"
	"retail_sales/internal/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	// Khởi tạo app với cấu hình
	app := InitFiberApp()

	cfg := global.MongoDB_ServerConfig
	log := logger.GetAppLogger()

	// Lắng nghe SIGINT/SIGTERM để shutdown có kiểm soát:
	// dừng nhận request mới rồi mới đóng kết nối MongoDB
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-shutdown
		log.Infof("Received signal %s, shutting down...", sig)
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error during server shutdown")
		}
	}()

	log.WithFields(map[string]interface{}{
		"address": cfg.Address,
	}).Info("Starting Fiber server")

	if err := app.Listen(cfg.Address); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}

	// Server đã dừng nhận request, đóng kết nối database
	if global.MongoDB_Session != nil {
		_ = database.CloseInstance(global.MongoDB_Session)
	}
	log.Info("Server stopped")
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry và index
	InitRegistry()

	// Chạy Fiber server trên main thread
	main_thread()
}
