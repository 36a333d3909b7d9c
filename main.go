package main

import (
	"context"
	"log"
	"time"

	"orionhotel/config"
	"orionhotel/jobs"
	"orionhotel/repository"
	"orionhotel/repository/memory"
	"orionhotel/repository/postgres"
	"orionhotel/routes"
	"orionhotel/services"
	"orionhotel/services/logger"
	"orionhotel/services/notification"

	"github.com/redis/go-redis/v9"
)

// @title          Orion Hotel API
// @version        1.0
// @description    Hotel management backend: rooms, guests, reservations, billing, housekeeping, inventory and staff.
// @BasePath       /api/v1
// @securityDefinitions.apikey BearerAuth
// @in             header
// @name           Authorization
func main() {
	config.LoadEnv()
	cfg := config.Load()

	appLogger := logger.New(cfg.LogLevel, cfg.LogFormat, "orionhotel")
	if z, ok := appLogger.(*logger.ZapLogger); ok {
		defer z.Sync()
	}

	store, err := openStore(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := services.SeedDefaults(ctx, store, appLogger); err != nil {
		cancel()
		log.Fatalf("Failed to seed defaults: %v", err)
	}
	cancel()

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = config.ConnectRedis(context.Background(), cfg.Redis)
		if err != nil {
			appLogger.Error("Không kết nối được Redis, chạy không có cache: %v", err)
			rdb = nil
		}
	}

	var uploader services.BackupUploader
	if cfg.CloudinaryURL != "" {
		cld, err := config.ConnectCloudinary(cfg.CloudinaryURL)
		if err != nil {
			appLogger.Error("Không khởi tạo được Cloudinary, bản sao lưu chỉ lưu cục bộ: %v", err)
		} else {
			uploader = services.NewCloudinaryUploader(cld)
		}
	}

	router, m, c := config.InitApp(cfg)

	container := services.NewContainer(services.ContainerOptions{
		Store:          store,
		Redis:          rdb,
		Pusher:         notification.NewMelodyService(m),
		Uploader:       uploader,
		JWTSecret:      cfg.JWTSecret,
		GoogleClientID: cfg.GoogleClientID,
		BackupDir:      cfg.BackupDir,
		Logger:         appLogger,
	})

	if _, err := jobs.InitCronJobs(c, jobs.Dependencies{
		Backups:   container.Backups,
		Billing:   container.Billing,
		Inventory: container.Inventory,
		Logger:    appLogger,
	}); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	defer c.Stop()

	routes.SetupRoutes(router, routes.Dependencies{
		Tokens:        container.Tokens,
		Staff:         container.Staff,
		Rooms:         container.Rooms,
		Guests:        container.Guests,
		Booking:       container.Booking,
		Billing:       container.Billing,
		Housekeeping:  container.Housekeeping,
		Inventory:     container.Inventory,
		Notifications: container.Notifications,
		Settings:      container.Settings,
		Backups:       container.Backups,
		Analytics:     container.Analytics,
		Melody:        m,
	})

	appLogger.Info("Server starting on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// openStore chọn repository theo DB_DRIVER
func openStore(cfg *config.Config, appLogger logger.Logger) (*repository.Store, error) {
	if cfg.DBDriver == config.DriverMemory {
		appLogger.Info("DB_DRIVER=memory, dữ liệu sẽ mất khi tắt server")
		return memory.NewStore(), nil
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		return nil, err
	}
	if err := config.InitSchema(db); err != nil {
		return nil, err
	}
	return postgres.NewStore(db)
}
