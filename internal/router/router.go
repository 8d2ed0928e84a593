// Package router assembles the gin engine: middleware, routes and swagger UI.
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fintrack/internal/charts"
	_ "fintrack/internal/docs" // swagger docs
	apperrors "fintrack/internal/errors"
	"fintrack/internal/handlers"
	"fintrack/internal/middleware"
	"fintrack/internal/services"
)

// Deps are the services the HTTP layer depends on.
type Deps struct {
	Users        services.UserServicer
	Sessions     services.SessionServicer
	Categories   services.CategoryServicer
	Transactions services.TransactionServicer
	Reports      services.ReportServicer
	Budgets      services.BudgetServicer
	Audit        services.AuditServicer

	SessionTTL   time.Duration
	CookieSecure bool
}

// New builds the engine with every route registered.
func New(deps Deps) *gin.Engine {
	authHandler := handlers.NewAuthHandler(deps.Users, deps.Sessions, deps.Audit, deps.SessionTTL, deps.CookieSecure)
	categoryHandler := handlers.NewCategoryHandler(deps.Categories, deps.Audit)
	transactionHandler := handlers.NewTransactionHandler(deps.Transactions, deps.Audit)
	reportHandler := handlers.NewReportHandler(deps.Reports, charts.NewGenerator())
	budgetHandler := handlers.NewBudgetHandler(deps.Budgets, deps.Audit)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, middleware.ErrorBody(apperrors.ErrNotFound))
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", handlers.Health)

	// Public routes
	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)

	// Browser routes send unauthenticated users to the login page.
	browser := router.Group("/")
	browser.Use(middleware.RequireSessionOrRedirect(deps.Sessions))
	browser.GET("/logout", authHandler.Logout)
	browser.GET("/export_csv", transactionHandler.ExportCSV)

	requireSession := middleware.RequireSession(deps.Sessions)
	router.POST("/add_transaction", requireSession, transactionHandler.AddTransaction)

	api := router.Group("/api")
	api.Use(requireSession)

	api.GET("/profile", authHandler.GetProfile)

	api.GET("/transactions", transactionHandler.ListTransactions)
	api.GET("/transactions/recent", transactionHandler.RecentTransactions)

	api.GET("/categories", categoryHandler.GetCategories)
	api.POST("/categories", categoryHandler.CreateCategory)

	api.GET("/spending_by_category", reportHandler.SpendingByCategory)
	api.GET("/monthly_summary/:year/:month", reportHandler.MonthlySummary)
	api.GET("/monthly_trend", reportHandler.MonthlyTrend)
	api.GET("/charts/spending.png", reportHandler.SpendingChart)

	api.GET("/budgets/:year/:month", budgetHandler.GetMonthlyBudgets)
	api.POST("/budgets", budgetHandler.SetBudget)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
