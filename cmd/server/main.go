package main

import (
	"context"
	"go-parking-management/config"
	"go-parking-management/internal/cache"
	"go-parking-management/internal/database"
	"go-parking-management/internal/handler"
	"go-parking-management/internal/mail"
	"go-parking-management/internal/middleware"
	"go-parking-management/internal/queue"
	"go-parking-management/internal/repository"
	"go-parking-management/internal/service"
	"go-parking-management/internal/worker"
	"go-parking-management/pkg/logger"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	mailer, err := mail.NewMailer(&cfg.Mail)
	if err != nil {
		log.Fatalf("Failed to initialize mailer: %v", err)
	}

	consumerID := "mail-worker-" + uuid.NewString()
	mailQueue, err := queue.NewRedisStreamMailQueue(rdb, consumerID, nil)
	if err != nil {
		log.Fatalf("Failed to initialize mail queue: %v", err)
	}

	userRepo := repository.NewUserRepository(pool)
	slotRepo := repository.NewSlotRepository(pool)
	vehicleRepo := repository.NewVehicleRepository(pool)
	entryRepo := repository.NewEntryRepository(pool)

	otpStore := cache.NewRedisOTPStore(rdb)

	authService := service.NewAuthService(userRepo, otpStore, mailQueue, cfg.JWT)
	userService := service.NewUserService(userRepo)
	slotService := service.NewSlotService(slotRepo)
	vehicleService := service.NewVehicleService(vehicleRepo)
	entryService := service.NewEntryService(pool, entryRepo, slotRepo, vehicleRepo, userRepo, mailer)
	reportService := service.NewReportService(entryRepo)

	ctx := context.Background()
	if err := authService.EnsureAdmin(ctx, cfg.Admin); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	mailWorker := worker.NewMailWorker(mailer, mailQueue)
	if err := mailWorker.Start(ctx); err != nil {
		log.Fatalf("Failed to start mail worker: %v", err)
	}

	auth := middleware.NewAuthMiddleware(authService)

	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	handler.NewAuthHandler(authService).RegisterRoutes(router)
	handler.NewUserHandler(userService).RegisterRoutes(router, auth)
	handler.NewSlotHandler(slotService).RegisterRoutes(router, auth)
	handler.NewVehicleHandler(vehicleService).RegisterRoutes(router, auth)
	handler.NewEntryHandler(entryService).RegisterRoutes(router, auth)
	handler.NewReportHandler(reportService).RegisterRoutes(router, auth)

	logger.WithComponent("main").Info("Server starting", zap.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
