package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/money"
	"fintrack/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// SetBudgetRequest represents the request payload for setting a monthly budget.
type SetBudgetRequest struct {
	CategoryID json.Number `json:"category_id" binding:"required" swaggertype:"string" example:"1"`
	Amount     json.Number `json:"amount" binding:"required" swaggertype:"string" example:"250.00"`
	MonthYear  string      `json:"month_year" binding:"required,month_year" example:"2024-03"`
}

// SetBudget creates or replaces a category budget for a month.
// @Summary     Set a budget
// @Description Create or replace the budget of a category for one month
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Param       request body SetBudgetRequest true "Budget details"
// @Success     200 {object} models.Budget "Budget saved"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/budgets [post]
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetBudgetRequest
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

	budget, err := h.budgetService.SetBudget(userID, categoryID, amountCents, req.MonthYear)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionSetBudget, "budget", budget.ID, c.ClientIP(),
		map[string]interface{}{"category_id": categoryID, "amount_cents": amountCents, "month_year": req.MonthYear})

	c.JSON(http.StatusOK, budget)
}

// GetMonthlyBudgets lists budgets for a month with actual spending.
// @Summary     Monthly budgets
// @Description Budgets of one month with spent, remaining and percentage used
// @Tags        budgets
// @Produce     json
// @Security    SessionCookie
// @Param       year  path int true "Year"
// @Param       month path int true "Month (1-12)"
// @Success     200 {array}  services.BudgetStatus "Budget statuses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/budgets/{year}/{month} [get]
func (h *BudgetHandler) GetMonthlyBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, err := parsePathInt(c, "year")
	if err != nil {
		respondWithError(c, err)
		return
	}
	month, err := parsePathInt(c, "month")
	if err != nil {
		respondWithError(c, err)
		return
	}
	if year < 1 || year > 9999 || month < 1 || month > 12 {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid year or month"))
		return
	}

	statuses, err := h.budgetService.GetMonthlyBudgets(userID, fmt.Sprintf("%04d-%02d", year, month))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, statuses)
}
