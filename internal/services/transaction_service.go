package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/money"
	"fintrack/internal/pagination"
)

// dateLayout is how ledger days are rendered to clients.
const dateLayout = "2006-01-02"

// transactionService handles ledger writes and reads.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// AddTransaction records a ledger entry. The category must belong to the
// same user.
func (s *transactionService) AddTransaction(
	userID uint,
	categoryID uint,
	amountCents int64,
	description string,
	transactionType models.TransactionType,
	date time.Time,
) (*models.Transaction, error) {
	if amountCents <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if amountCents > money.MaxCents {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount is too large")
	}
	if !transactionType.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}

	var transaction *models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := findUserCategory(tx, userID, categoryID); err != nil {
			return err
		}

		transaction = &models.Transaction{
			UserID:      userID,
			CategoryID:  categoryID,
			AmountCents: amountCents,
			Description: description,
			Type:        transactionType,
			Date:        TruncateDay(date),
		}
		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrAddTransaction, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

// GetTransactions returns a user's transactions, newest day first and, within
// a day, newest insert first. limit <= 0 returns everything.
func (s *transactionService) GetTransactions(userID uint, limit int) ([]TransactionView, error) {
	q := s.viewQuery(userID)
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []transactionRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return toViews(rows), nil
}

// ListTransactions returns one page of a user's transactions.
func (s *transactionService) ListTransactions(userID uint, page pagination.PageRequest) (*pagination.PageResponse[TransactionView], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var rows []transactionRow
	if err := s.viewQuery(userID).Scopes(pagination.Paginate(page)).Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(toViews(rows), page.Page, page.PageSize, totalItems)
	return &result, nil
}

// transactionRow is the scan target for the ledger/category join.
type transactionRow struct {
	ID            uint
	CategoryID    uint
	CategoryName  string
	CategoryColor string
	AmountCents   int64
	Description   string
	Type          models.TransactionType
	Date          time.Time
	CreatedAt     time.Time
}

func (s *transactionService) viewQuery(userID uint) *gorm.DB {
	return s.db.Table("transactions AS t").
		Select("t.id, t.category_id, c.name AS category_name, c.color AS category_color, " +
			"t.amount_cents, t.description, t.type, t.date, t.created_at").
		Joins("JOIN categories AS c ON c.id = t.category_id").
		Where("t.user_id = ?", userID).
		Order("t.date DESC, t.id DESC")
}

func toViews(rows []transactionRow) []TransactionView {
	views := make([]TransactionView, len(rows))
	for i, r := range rows {
		views[i] = TransactionView{
			ID:            r.ID,
			CategoryID:    r.CategoryID,
			CategoryName:  r.CategoryName,
			CategoryColor: r.CategoryColor,
			AmountCents:   r.AmountCents,
			Amount:        money.ToDecimal(r.AmountCents),
			Description:   r.Description,
			Type:          r.Type,
			Date:          r.Date.UTC().Format(dateLayout),
			CreatedAt:     r.CreatedAt,
		}
	}
	return views
}

// TruncateDay returns the calendar day of t as UTC midnight.
func TruncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
