package services

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/money"
)

const monthYearLayout = "2006-01"

// budgetService handles monthly category budgets.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// SetBudget creates or replaces the budget for a category in a month.
func (s *budgetService) SetBudget(userID, categoryID uint, amountCents int64, monthYear string) (*models.Budget, error) {
	if amountCents <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if _, err := time.Parse(monthYearLayout, monthYear); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month_year must be formatted as YYYY-MM")
	}

	// Verify category exists and belongs to user
	if _, err := findUserCategory(s.db, userID, categoryID); err != nil {
		return nil, err
	}

	budget := &models.Budget{
		UserID:      userID,
		CategoryID:  categoryID,
		AmountCents: amountCents,
		MonthYear:   monthYear,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "category_id"}, {Name: "month_year"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount_cents"}),
	}).Create(budget).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// The upsert may not report the existing row's id, so read it back.
	var saved models.Budget
	if err := s.db.Where("user_id = ? AND category_id = ? AND month_year = ?", userID, categoryID, monthYear).
		First(&saved).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &saved, nil
}

// GetMonthlyBudgets lists the month's budgets with what was spent in each
// budgeted category.
func (s *budgetService) GetMonthlyBudgets(userID uint, monthYear string) ([]BudgetStatus, error) {
	first, err := time.Parse(monthYearLayout, monthYear)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month_year must be formatted as YYYY-MM")
	}
	start, end, err := MonthRange(first.Year(), int(first.Month()))
	if err != nil {
		return nil, err
	}

	var budgets []models.Budget
	if err := s.db.Preload("Category").
		Where("user_id = ? AND month_year = ?", userID, monthYear).
		Order("id ASC").
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(budgets) == 0 {
		return []BudgetStatus{}, nil
	}

	// Sum expense transactions per category within the month
	var spentRows []struct {
		CategoryID uint
		Total      int64
	}
	err = s.db.Model(&models.Transaction{}).
		Select("category_id, SUM(amount_cents) AS total").
		Where("user_id = ? AND type = ? AND date >= ? AND date < ?",
			userID, models.TransactionTypeExpense, start, end).
		Group("category_id").
		Scan(&spentRows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	spent := make(map[uint]int64, len(spentRows))
	for _, r := range spentRows {
		spent[r.CategoryID] = r.Total
	}

	statuses := make([]BudgetStatus, len(budgets))
	for i, b := range budgets {
		used := spent[b.CategoryID]
		status := BudgetStatus{
			BudgetID:   b.ID,
			CategoryID: b.CategoryID,
			MonthYear:  b.MonthYear,
			Budgeted:   money.ToDecimal(b.AmountCents),
			Spent:      money.ToDecimal(used),
			Remaining:  money.ToDecimal(b.AmountCents - used),
			Percentage: float64(used) / float64(b.AmountCents) * 100,
		}
		if b.Category != nil {
			status.CategoryName = b.Category.Name
			status.CategoryColor = b.Category.Color
		}
		statuses[i] = status
	}
	return statuses, nil
}
