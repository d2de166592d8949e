package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payment-api/controllers"
	"payment-api/database"
	"payment-api/middleware"
	"payment-api/models"
	"payment-api/repository"
	"payment-api/routes"
	servicepkg "payment-api/services"
	"payment-api/simulator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	cfg, err := LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	if err := database.Connect(logger, cfg.DBDriver, cfg.DSN(),
		&models.Customer{}, &models.Order{}, &models.Authorization{}, &models.Settlement{},
	); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close() //nolint:errcheck

	// DI chain
	customerRepo := repository.NewGormCustomerRepository(database.DB)
	orderRepo := repository.NewGormOrderRepository(database.DB)
	authRepo := repository.NewGormAuthorizationRepository(database.DB)
	settlementRepo := repository.NewGormSettlementRepository(database.DB)

	paymentService := servicepkg.NewPaymentService(
		orderRepo, authRepo, settlementRepo,
		simulator.NewCheckout(nil),
		cfg.MinOrderAmount,
		logger,
	)
	customerService := servicepkg.NewCustomerService(customerRepo, logger)
	statsService := servicepkg.NewStatsService(orderRepo, settlementRepo, logger)

	paymentController := controllers.NewPaymentController(paymentService, simulator.NewAuthorizer(nil))
	customerController := controllers.NewCustomerController(customerService)
	statsController := controllers.NewStatsController(statsService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	// 30-second request timeout
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "payment-api"})
	})

	routes.Register(r, paymentController, customerController, statsController, routes.Options{
		EnableCustomerAPI: cfg.EnableCustomerAPI,
		SimulateDelay:     cfg.SimulateDelay,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	logger.Info("Payment API started", zap.String("port", cfg.Port), zap.String("driver", cfg.DBDriver))
	<-quit
	logger.Info("Shutting down payment API...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited cleanly")
}
