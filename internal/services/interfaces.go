package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// UserServicer defines the contract for registration and credential checks.
type UserServicer interface {
	CreateUser(username, email, password string) (*models.User, error)
	VerifyUser(username, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
}

// SessionClaims are the claims carried by a signed session token. The
// registered ID claim is the server-side session id.
type SessionClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// SessionServicer issues, validates and revokes login sessions.
type SessionServicer interface {
	Issue(user *models.User, userAgent, ipAddress string) (string, *models.Session, error)
	Validate(token string) (*SessionClaims, error)
	Revoke(sessionID string) error
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID uint, name, color string) (*models.Category, error)
	GetUserCategories(userID uint) ([]models.Category, error)
	GetCategoryByID(userID, categoryID uint) (*models.Category, error)
}

// TransactionView is a ledger row joined with its category.
type TransactionView struct {
	ID            uint                   `json:"id"`
	CategoryID    uint                   `json:"category_id"`
	CategoryName  string                 `json:"category_name"`
	CategoryColor string                 `json:"category_color"`
	AmountCents   int64                  `json:"-"`
	Amount        decimal.Decimal        `json:"amount"`
	Description   string                 `json:"description"`
	Type          models.TransactionType `json:"transaction_type"`
	Date          string                 `json:"date"`
	CreatedAt     time.Time              `json:"created_at"`
}

// TransactionServicer defines the contract for the ledger.
type TransactionServicer interface {
	AddTransaction(userID, categoryID uint, amountCents int64, description string, transactionType models.TransactionType, date time.Time) (*models.Transaction, error)
	GetTransactions(userID uint, limit int) ([]TransactionView, error)
	ListTransactions(userID uint, page pagination.PageRequest) (*pagination.PageResponse[TransactionView], error)
}

// CategorySpending is the expense total for one category.
type CategorySpending struct {
	CategoryID  uint            `json:"category_id"`
	Name        string          `json:"name"`
	Color       string          `json:"color"`
	TotalCents  int64           `json:"-"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// MonthlySummary holds income and expense totals for one calendar month.
type MonthlySummary struct {
	IncomeCents  int64           `json:"-"`
	ExpenseCents int64           `json:"-"`
	Income       decimal.Decimal `json:"income"`
	Expenses     decimal.Decimal `json:"expenses"`
	Balance      decimal.Decimal `json:"balance"`
}

// MonthlyTrendPoint is one month of a trend report.
type MonthlyTrendPoint struct {
	Year    int            `json:"year"`
	Month   int            `json:"month"`
	Label   string         `json:"label"`
	Summary MonthlySummary `json:"summary"`
}

// ReportServicer defines the read-only aggregation queries over the ledger.
type ReportServicer interface {
	SpendingByCategory(userID uint, startDate, endDate *time.Time) ([]CategorySpending, error)
	MonthlySummary(userID uint, year, month int) (*MonthlySummary, error)
	MonthlyTrend(userID uint, endYear, endMonth, months int) ([]MonthlyTrendPoint, error)
}

// BudgetStatus compares a monthly budget with what was actually spent.
type BudgetStatus struct {
	BudgetID      uint            `json:"budget_id"`
	CategoryID    uint            `json:"category_id"`
	CategoryName  string          `json:"category_name"`
	CategoryColor string          `json:"category_color"`
	MonthYear     string          `json:"month_year"`
	Budgeted      decimal.Decimal `json:"budgeted"`
	Spent         decimal.Decimal `json:"spent"`
	Remaining     decimal.Decimal `json:"remaining"`
	Percentage    float64         `json:"percentage"`
}

// BudgetServicer defines the contract for monthly category budgets.
type BudgetServicer interface {
	SetBudget(userID, categoryID uint, amountCents int64, monthYear string) (*models.Budget, error)
	GetMonthlyBudgets(userID uint, monthYear string) ([]BudgetStatus, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
