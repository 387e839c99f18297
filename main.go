package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vishalaksha/config"
	"vishalaksha/database"
	bookingRepoPkg "vishalaksha/database/repository/booking"
	yogdaanRepoPkg "vishalaksha/database/repository/yogdaan"
	"vishalaksha/handlers"
	"vishalaksha/middleware"
	"vishalaksha/routes"
	"vishalaksha/services/booking"
	"vishalaksha/services/payment"
	"vishalaksha/services/storage"
	"vishalaksha/services/yogdaan"
	"vishalaksha/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.GetLogger().Sugar().Fatalf("main: invalid configuration: %v", err)
	}
	utils.InitializeLogger(cfg.Env)
	logger := utils.GetLogger()

	// External service handles, constructed once and injected below.
	mongoClient, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to document store: %v", err)
	}
	defer func() {
		if err := database.Disconnect(mongoClient); err != nil {
			logger.Sugar().Errorf("main: failed to disconnect from document store: %v", err)
		}
	}()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisSessionDB,
	})

	ctx := context.Background()
	if _, _, err := utils.FirebaseInit(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentialsFile); err != nil {
		logger.Sugar().Fatalf("main: failed to initialize firebase: %v", err)
	}

	storageService, err := newStorageService(cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
	}

	// Repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(mongoClient, cfg.DatabaseName)
	yogdaanRepo := yogdaanRepoPkg.NewMongoYogdaanRepo(mongoClient, cfg.DatabaseName)

	// Services.
	gateway := payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		Sessions: booking.NewRedisSessionStore(redisClient, 30*time.Minute),
		Gateway:  gateway,
		Checkout: booking.CheckoutConfig{
			KeyID:       cfg.RazorpayKeyID,
			Rate:        cfg.ConsultationRate,
			Currency:    "INR",
			DisplayName: "Vishalaksha®",
			Description: "Vastu Consultation - 1 Hour",
			Image:       "/static/logo.png",
			ThemeColor:  "#6B46C1",
		},
		Logger: logger,
	}
	yogdaanService := &yogdaan.DefaultYogdaanService{
		Repo:    yogdaanRepo,
		Storage: storageService,
		Logger:  logger,
	}

	// Router and handlers.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	handlerBundle := &routes.HandlerBundle{
		Pages:   handlers.NewPagesHandler(cfg.ConsultationRate),
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Yogdaan: handlers.NewYogdaanHandler(yogdaanService, logger),
	}
	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// newStorageService picks the object-storage backend from configuration.
func newStorageService(cfg *config.Config) (storage.StorageService, error) {
	if cfg.StorageBackend == "cloudinary" {
		return storage.NewCloudinaryStorageService(
			cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	}
	return storage.NewFirebaseStorageService(cfg.FirebaseCredentialsFile, cfg.StorageBucket)
}
