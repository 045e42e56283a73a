package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v3"

	notifsvc "github.com/ridhwankhan/RENTO-sub001/internal/api/notification/service"
	"github.com/ridhwankhan/RENTO-sub001/internal/dispatch"
	"github.com/ridhwankhan/RENTO-sub001/internal/global"
	"github.com/ridhwankhan/RENTO-sub001/internal/logger"
	"github.com/ridhwankhan/RENTO-sub001/internal/worker"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Khởi tạo logger với cấu hình mặc định
	// Logger sẽ tự động đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	// Log thông tin khởi tạo bằng logger mới
	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// initDispatcher khởi tạo và chạy notification dispatcher (background consumer)
func initDispatcher(ctx context.Context) {
	log := logger.GetAppLogger()

	notificationService, err := notifsvc.NewNotificationService()
	if err != nil {
		log.Fatalf("Failed to create notification service for dispatcher: %v", err)
	}

	cfg := global.MongoDB_ServerConfig
	global.Dispatcher = dispatch.NewDispatcher(notificationService, cfg.DispatchQueueSize, cfg.DispatchMaxRetries)
	global.Dispatcher.Start(ctx)

	log.WithFields(map[string]interface{}{
		"queueSize":  cfg.DispatchQueueSize,
		"maxRetries": cfg.DispatchMaxRetries,
	}).Info("Notification dispatcher started successfully")
}

// initRetentionWorker khởi tạo và chạy notification retention worker
func initRetentionWorker(ctx context.Context) {
	log := logger.GetAppLogger()
	cfg := global.MongoDB_ServerConfig

	retentionWorker, err := worker.NewNotificationRetentionWorker(
		time.Duration(cfg.RetentionIntervalMinutes)*time.Minute,
		time.Duration(cfg.NotificationRetentionDays)*24*time.Hour,
	)
	if err != nil {
		log.WithError(err).Error("Failed to create notification retention worker, continuing without retention")
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(map[string]interface{}{
					"panic": r,
				}).Error("[NOTIFICATION_RETENTION] Worker goroutine panic")
			}
		}()
		retentionWorker.Start(ctx)
	}()
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	// Khởi tạo app với cấu hình
	app := InitFiberApp()

	// Khởi động server với cấu hình listen
	cfg := global.MongoDB_ServerConfig
	address := cfg.Address

	log := logger.GetAppLogger()
	log.Info("Starting Fiber server...")

	// Helper function để resolve đường dẫn từ thư mục gốc repo
	resolvePath := func(path string) string {
		if filepath.IsAbs(path) {
			return path
		}
		currentDir, err := os.Getwd()
		if err != nil {
			return path
		}
		for {
			envDir := filepath.Join(currentDir, "config", "env")
			if _, err := os.Stat(envDir); err == nil {
				return filepath.Join(currentDir, path)
			}
			parentDir := filepath.Dir(currentDir)
			if parentDir == currentDir {
				return path
			}
			currentDir = parentDir
		}
	}

	// Kiểm tra xem có bật TLS không
	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		certPath := resolvePath(cfg.TLSCertFile)
		keyPath := resolvePath(cfg.TLSKeyFile)

		if _, err := os.Stat(certPath); os.IsNotExist(err) {
			log.Fatalf("TLS certificate file not found: %s (resolved from: %s)", certPath, cfg.TLSCertFile)
		}
		if _, err := os.Stat(keyPath); os.IsNotExist(err) {
			log.Fatalf("TLS key file not found: %s (resolved from: %s)", keyPath, cfg.TLSKeyFile)
		}

		cert, err := tls.LoadX509KeyPair(certPath, keyPath)
		if err != nil {
			log.Fatalf("Error loading TLS certificate: %v", err)
		}

		ln, err := net.Listen("tcp", address)
		if err != nil {
			log.Fatalf("Error creating listener: %v", err)
		}

		tlsConfig := &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}

		tlsListener := tls.NewListener(ln, tlsConfig)

		log.WithFields(map[string]interface{}{
			"address": address,
			"cert":    certPath,
			"key":     keyPath,
		}).Info("Starting server with HTTPS/TLS")

		if err := app.Listener(tlsListener); err != nil {
			log.Fatalf("Error in Fiber Listener with TLS: %v", err)
		}
	} else {
		log.WithFields(map[string]interface{}{
			"address":  address,
			"protocol": "HTTP",
		}).Info("Starting server with HTTP")

		listenConfig := fiber.ListenConfig{}
		if err := app.Listen(address, listenConfig); err != nil {
			log.Fatalf("Error in Fiber Listen: %v", err)
		}
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry
	InitRegistry()

	// Context cho các background worker, hủy khi server dừng
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Khởi tạo notification dispatcher (consumer ghi notification bất đồng bộ)
	initDispatcher(ctx)
	defer global.Dispatcher.Stop()

	// Khởi tạo retention worker (prune notification đã đọc quá hạn)
	initRetentionWorker(ctx)

	// Chạy Fiber server trên main thread
	main_thread()
}
