package main

import (
	"fmt"
	"os"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/logger"
	"fintrack/internal/router"
	"fintrack/internal/services"
	"fintrack/internal/validator"
)

// @title           Fintrack API
// @version         1.0
// @description     Fintrack is a personal finance tracker: record income and expenses by category, then review spending, monthly summaries and budgets.

// @host      localhost:5000
// @BasePath  /

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name session

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	validator.Register()

	// Create database manager
	dbManager, err := database.NewManager(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	engine := router.New(router.Deps{
		Users:        services.NewUserService(db),
		Sessions:     services.NewSessionService(db, cfg.SecretKey, cfg.SessionTTL),
		Categories:   services.NewCategoryService(db),
		Transactions: services.NewTransactionService(db),
		Reports:      services.NewReportService(db, cfg.ReportWorkers),
		Budgets:      services.NewBudgetService(db),
		Audit:        services.NewAuditService(db),
		SessionTTL:   cfg.SessionTTL,
		CookieSecure: cfg.CookieSecure,
	})

	log.Infow("starting fintrack server", "port", cfg.Port, "env", cfg.Env, "db_driver", cfg.Database.Driver)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
	return engine.Run(":" + cfg.Port)
}
