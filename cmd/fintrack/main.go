package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fintrack/internal/advisor"
	"fintrack/internal/api"
	"fintrack/internal/api/handlers"
	"fintrack/internal/limits"
	"fintrack/internal/repository"
	"fintrack/internal/service"
	"fintrack/pkg/auth"
	"fintrack/pkg/config"
	"fintrack/pkg/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting fintrack service")

	// Initialize storage backend
	ctx := context.Background()
	backend, err := repository.NewBackend(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize storage backend", zap.Error(err))
	}
	defer backend.Cleanup()

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Spending limit policy for micro expenses
	dailyLimit, err := decimal.NewFromString(cfg.Limits.DailyMicroLimit)
	if err != nil {
		appLogger.Fatal("Invalid DAILY_MICRO_LIMIT", zap.Error(err))
	}
	limitPolicy := limits.NewFixedPolicy(dailyLimit)

	// Expense event observers
	publisher := service.NewExpensePublisher()
	publisher.Subscribe(service.NewAuditObserver(appLogger))
	publisher.Subscribe(service.NewLimitAlertObserver(appLogger))

	// Initialize services
	authService := service.NewAuthService(backend.Users, jwtManager, appLogger)
	financeService := service.NewFinanceService(backend.Expenses, limitPolicy, publisher, appLogger)
	reportService := service.NewReportService(backend.Expenses, appLogger)

	adv, err := advisor.New(ctx, &cfg.Advisor, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize advisor", zap.Error(err))
	}
	defer adv.Close()

	adviceService := service.NewAdviceService(adv, backend.Expenses, appLogger)

	// Seed default demo user unless an external auth provider is configured
	if err := authService.EnsureDefaultUser(ctx, cfg.Seed); err != nil {
		appLogger.Error("Failed to seed default user", zap.Error(err))
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	expenseHandler := handlers.NewExpenseHandler(financeService, appLogger)
	reportHandler := handlers.NewReportHandler(reportService, appLogger)
	adviceHandler := handlers.NewAdviceHandler(adviceService, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, expenseHandler, reportHandler, adviceHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
