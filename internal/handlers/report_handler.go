package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fintrack/internal/charts"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
	"fintrack/internal/validator"
)

// ReportHandler serves aggregated views of the ledger.
type ReportHandler struct {
	reportService services.ReportServicer
	charts        *charts.Generator
	now           func() time.Time
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService services.ReportServicer, generator *charts.Generator) *ReportHandler {
	return &ReportHandler{reportService: reportService, charts: generator, now: time.Now}
}

// DateRangeQuery holds optional inclusive date bounds.
type DateRangeQuery struct {
	StartDate string `form:"start_date" binding:"omitempty,iso_date"`
	EndDate   string `form:"end_date" binding:"omitempty,iso_date"`
}

// TrendQuery selects the months of a trend report. year and month default
// to the current month; months above 24 are capped by the report service.
type TrendQuery struct {
	Months int `form:"months" binding:"omitempty,min=1"`
	Year   int `form:"year" binding:"omitempty,min=1,max=9999"`
	Month  int `form:"month" binding:"omitempty,min=1,max=12"`
}

// SpendingByCategory returns expense totals per category
// @Summary     Spending by category
// @Description Expense totals per category, largest first, optionally within an inclusive date range
// @Tags        reports
// @Produce     json
// @Security    SessionCookie
// @Param       start_date query string false "First day (YYYY-MM-DD)"
// @Param       end_date   query string false "Last day, inclusive (YYYY-MM-DD)"
// @Success     200 {array}  services.CategorySpending "Spending per category"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/spending_by_category [get]
func (h *ReportHandler) SpendingByCategory(c *gin.Context) {
	spending, ok := h.loadSpending(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, spending)
}

// MonthlySummary returns income, expenses and balance for a month
// @Summary     Monthly summary
// @Description Income and expense totals for one calendar month; empty months are all zero
// @Tags        reports
// @Produce     json
// @Security    SessionCookie
// @Param       year  path int true "Year"
// @Param       month path int true "Month (1-12)"
// @Success     200 {object} services.MonthlySummary "Summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/monthly_summary/{year}/{month} [get]
func (h *ReportHandler) MonthlySummary(c *gin.Context) {
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

	summary, err := h.reportService.MonthlySummary(userID, year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// MonthlyTrend returns consecutive monthly summaries
// @Summary     Monthly trend
// @Description Summaries for the months ending at year/month, oldest first
// @Tags        reports
// @Produce     json
// @Security    SessionCookie
// @Param       months query int false "Number of months (default 6, capped at 24)"
// @Param       year   query int false "Last year (default current)"
// @Param       month  query int false "Last month (default current)"
// @Success     200 {array}  services.MonthlyTrendPoint "Trend"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/monthly_trend [get]
func (h *ReportHandler) MonthlyTrend(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query TrendQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	now := h.now()
	if query.Year == 0 {
		query.Year = now.Year()
	}
	if query.Month == 0 {
		query.Month = int(now.Month())
	}

	points, err := h.reportService.MonthlyTrend(userID, query.Year, query.Month, query.Months)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, points)
}

// SpendingChart renders spending by category as a pie chart
// @Summary     Spending chart
// @Description PNG pie chart of spending by category; 204 when there is nothing to draw
// @Tags        reports
// @Produce     png
// @Security    SessionCookie
// @Param       start_date query string false "First day (YYYY-MM-DD)"
// @Param       end_date   query string false "Last day, inclusive (YYYY-MM-DD)"
// @Success     200 {file} file "PNG image"
// @Success     204 "No spending in range"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/charts/spending.png [get]
func (h *ReportHandler) SpendingChart(c *gin.Context) {
	spending, ok := h.loadSpending(c)
	if !ok {
		return
	}

	png, err := h.charts.SpendingPie(spending)
	if errors.Is(err, charts.ErrNoData) {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// loadSpending writes the error response itself and reports false on failure.
func (h *ReportHandler) loadSpending(c *gin.Context) ([]services.CategorySpending, bool) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return nil, false
	}

	var query DateRangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, bindError(err))
		return nil, false
	}

	start, err := parseOptionalDate(query.StartDate)
	if err != nil {
		respondWithError(c, err)
		return nil, false
	}
	end, err := parseOptionalDate(query.EndDate)
	if err != nil {
		respondWithError(c, err)
		return nil, false
	}

	spending, err := h.reportService.SpendingByCategory(userID, start, end)
	if err != nil {
		respondWithError(c, err)
		return nil, false
	}
	return spending, true
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(validator.DateLayout, value)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be formatted as YYYY-MM-DD")
	}
	return &t, nil
}
