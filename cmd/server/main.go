package main

import (
	"context"
	"log"

	"go-tour-booking/config"
	"go-tour-booking/internal/cache"
	"go-tour-booking/internal/database"
	"go-tour-booking/internal/handler"
	"go-tour-booking/internal/queue"
	"go-tour-booking/internal/repository"
	"go-tour-booking/internal/service"
	"go-tour-booking/internal/worker"

	"github.com/gin-gonic/gin"
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

	// Repositories
	tourRepo := repository.NewTourRepository(pool)
	availabilityRepo := repository.NewAvailabilityRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)

	// Cache & queue
	slotCache := cache.NewAvailabilitySlotCache(rdb)
	notificationQueue, err := queue.NewRedisStreamNotificationQueue(rdb, "", nil)
	if err != nil {
		log.Fatalf("Failed to initialize notification queue: %v", err)
	}

	// Services
	availabilityService := service.NewAvailabilityService(availabilityRepo, slotCache)
	bookingService := service.NewBookingService(pool, bookingRepo, tourRepo, availabilityService)
	tourService := service.NewTourService(tourRepo, availabilityRepo, bookingRepo, slotCache)
	paymentService := service.NewPaymentService(paymentRepo, bookingRepo, bookingService)
	reviewService := service.NewReviewService(reviewRepo, tourRepo, bookingRepo)

	// Notification worker
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notificationWorker := worker.NewNotificationWorker(worker.NewLogNotifier(), notificationQueue)
	if err := notificationWorker.Start(ctx); err != nil {
		log.Fatalf("Failed to start notification worker: %v", err)
	}

	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	handler.NewTourHandler(tourService).RegisterRoutes(router)
	handler.NewAvailabilityHandler(availabilityService).RegisterRoutes(router)
	handler.NewBookingHandler(bookingService, notificationQueue).RegisterRoutes(router)
	handler.NewPaymentHandler(paymentService).RegisterRoutes(router)
	handler.NewReviewHandler(reviewService).RegisterRoutes(router)

	router.Run(cfg.Server.Addr())
}
