package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/money"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
	"fintrack/internal/validator"
)

// TransactionHandler handles ledger requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		auditService:       auditService,
	}
}

// AddTransactionRequest represents the request payload for adding a transaction.
// category_id and amount accept either a JSON number or a numeric string.
type AddTransactionRequest struct {
	CategoryID      json.Number `json:"category_id" binding:"required" swaggertype:"string" example:"1"`
	Amount          json.Number `json:"amount" binding:"required" swaggertype:"string" example:"42.50"`
	Description     string      `json:"description" binding:"required,max=500"`
	TransactionType string      `json:"transaction_type" binding:"required,transaction_type"`
	Date            string      `json:"date" binding:"required,iso_date" example:"2024-03-15"`
}

// RecentTransactionsQuery holds the limit for the recent listing.
type RecentTransactionsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

// AddTransaction handles recording a new transaction
// @Summary     Add a transaction
// @Description Record an income or expense in one of the user's categories
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Param       request body AddTransactionRequest true "Transaction details"
// @Success     200 {object} MessageResponse "Transaction added"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Error adding transaction"
// @Router      /add_transaction [post]
func (h *TransactionHandler) AddTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	categoryID, err := parseID("category_id", req.CategoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	amountCents, err := money.ParseCents(req.Amount.String())
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount is invalid"))
		return
	}
	date, err := time.Parse(validator.DateLayout, req.Date)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is invalid"))
		return
	}

	transaction, err := h.transactionService.AddTransaction(
		userID,
		categoryID,
		amountCents,
		req.Description,
		models.TransactionType(req.TransactionType),
		date,
	)
	if err != nil {
		respondWithError(c, addTransactionError(err))
		return
	}

	h.auditService.Log(userID, services.AuditActionAddTransaction, "transaction", transaction.ID, c.ClientIP(),
		map[string]interface{}{
			"category_id": categoryID,
			"amount":      money.ToDecimal(amountCents).StringFixed(2),
			"type":        req.TransactionType,
		})

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "Transaction added successfully!",
		"transaction_id": transaction.ID,
	})
}

// addTransactionError keeps client errors as they are and reports anything
// unexpected with the generic ledger message.
func addTransactionError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.StatusCode < http.StatusInternalServerError {
		return appErr
	}
	if errors.As(err, &appErr) && appErr.Internal != nil {
		return apperrors.Wrap(apperrors.ErrAddTransaction, appErr.Internal)
	}
	return apperrors.Wrap(apperrors.ErrAddTransaction, err)
}

// ListTransactions returns the user's ledger one page at a time
// @Summary     List transactions
// @Description Paginated ledger, newest first
// @Tags        transactions
// @Produce     json
// @Security    SessionCookie
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[services.TransactionView] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.transactionService.ListTransactions(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RecentTransactions returns the newest transactions
// @Summary     Recent transactions
// @Description The most recent transactions, newest first
// @Tags        transactions
// @Produce     json
// @Security    SessionCookie
// @Param       limit query int false "Number of rows (default 10, max 100)"
// @Success     200 {array}  services.TransactionView "Recent transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/transactions/recent [get]
func (h *TransactionHandler) RecentTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query RecentTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	limit := pagination.ClampLimit(query.Limit, pagination.DefaultRecentLimit)
	views, err := h.transactionService.GetTransactions(userID, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// ExportCSV streams every transaction as a CSV attachment
// @Summary     Export transactions
// @Description Download the full ledger as CSV
// @Tags        transactions
// @Produce     text/csv
// @Security    SessionCookie
// @Success     200 {file} file "CSV attachment"
// @Failure     302 "Redirect to /login without a session"
// @Router      /export_csv [get]
func (h *TransactionHandler) ExportCSV(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	views, err := h.transactionService.GetTransactions(userID, 0)
	if err != nil {
		respondWithError(c, err)
		return
	}

	username := c.GetString(middleware.UsernameKey)
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=transactions_%s.csv", username))
	c.Status(http.StatusOK)

	if err := writeTransactionsCSV(c.Writer, views); err != nil {
		logger.Get().Errorw("failed to write csv export", "error", err, "user_id", userID)
		return
	}

	h.auditService.Log(userID, services.AuditActionExport, "transaction", 0, c.ClientIP(),
		map[string]interface{}{"rows": len(views)})
}

func writeTransactionsCSV(w http.ResponseWriter, views []services.TransactionView) error {
	title := cases.Title(language.English)
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Date", "Category", "Description", "Type", "Amount"}); err != nil {
		return err
	}
	for _, v := range views {
		record := []string{
			v.Date,
			v.CategoryName,
			v.Description,
			title.String(string(v.Type)),
			money.Format(v.AmountCents),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
