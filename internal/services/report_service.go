package services

import (
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/money"
)

const (
	// DefaultTrendMonths is the trend length used when none is requested.
	DefaultTrendMonths = 6
	// MaxTrendMonths caps how far back a trend report reaches.
	MaxTrendMonths = 24
)

// reportService runs read-only aggregations over the ledger.
type reportService struct {
	db      *gorm.DB
	workers int
}

// NewReportService creates a new ReportServicer. workers bounds how many
// monthly summaries a trend report computes at once.
func NewReportService(db *gorm.DB, workers int) ReportServicer {
	if workers < 1 {
		workers = 1
	}
	return &reportService{db: db, workers: workers}
}

// SpendingByCategory sums expenses per category, optionally bounded by an
// inclusive date range, largest total first.
func (s *reportService) SpendingByCategory(userID uint, startDate, endDate *time.Time) ([]CategorySpending, error) {
	q := s.db.Table("transactions AS t").
		Select("c.id AS category_id, c.name AS name, c.color AS color, SUM(t.amount_cents) AS total_cents").
		Joins("JOIN categories AS c ON c.id = t.category_id").
		Where("t.user_id = ? AND t.type = ?", userID, models.TransactionTypeExpense)
	if startDate != nil {
		q = q.Where("t.date >= ?", TruncateDay(*startDate))
	}
	if endDate != nil {
		q = q.Where("t.date <= ?", TruncateDay(*endDate))
	}

	var rows []struct {
		CategoryID uint
		Name       string
		Color      string
		TotalCents int64
	}
	err := q.Group("c.id, c.name, c.color").
		Order("total_cents DESC, c.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	spending := make([]CategorySpending, len(rows))
	for i, r := range rows {
		spending[i] = CategorySpending{
			CategoryID:  r.CategoryID,
			Name:        r.Name,
			Color:       r.Color,
			TotalCents:  r.TotalCents,
			TotalAmount: money.ToDecimal(r.TotalCents),
		}
	}
	return spending, nil
}

// MonthlySummary totals income and expenses for one calendar month. Months
// without activity report zeros.
func (s *reportService) MonthlySummary(userID uint, year, month int) (*MonthlySummary, error) {
	start, end, err := MonthRange(year, month)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Type  models.TransactionType
		Total int64
	}
	err = s.db.Model(&models.Transaction{}).
		Select("type, SUM(amount_cents) AS total").
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var income, expenses int64
	for _, r := range rows {
		switch r.Type {
		case models.TransactionTypeIncome:
			income = r.Total
		case models.TransactionTypeExpense:
			expenses = r.Total
		}
	}
	return newMonthlySummary(income, expenses), nil
}

// MonthlyTrend returns the summaries of the months ending at endYear/endMonth,
// oldest first.
func (s *reportService) MonthlyTrend(userID uint, endYear, endMonth, months int) ([]MonthlyTrendPoint, error) {
	if months <= 0 {
		months = DefaultTrendMonths
	}
	if months > MaxTrendMonths {
		months = MaxTrendMonths
	}
	if _, _, err := MonthRange(endYear, endMonth); err != nil {
		return nil, err
	}

	last := time.Date(endYear, time.Month(endMonth), 1, 0, 0, 0, 0, time.UTC)
	points := make([]MonthlyTrendPoint, months)

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i := 0; i < months; i++ {
		i := i
		first := last.AddDate(0, i-months+1, 0)
		points[i] = MonthlyTrendPoint{
			Year:  first.Year(),
			Month: int(first.Month()),
			Label: first.Month().String(),
		}
		g.Go(func() error {
			summary, err := s.MonthlySummary(userID, first.Year(), int(first.Month()))
			if err != nil {
				return err
			}
			points[i].Summary = *summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

// MonthRange returns the half-open [first day, first day of next month) range
// for a calendar month.
func MonthRange(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}
	if year < 1 || year > 9999 {
		return time.Time{}, time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "year must be between 1 and 9999")
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0), nil
}

func newMonthlySummary(incomeCents, expenseCents int64) *MonthlySummary {
	return &MonthlySummary{
		IncomeCents:  incomeCents,
		ExpenseCents: expenseCents,
		Income:       money.ToDecimal(incomeCents),
		Expenses:     money.ToDecimal(expenseCents),
		Balance:      money.ToDecimal(incomeCents - expenseCents),
	}
}
