package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// AnalyticsHandler handles aggregation endpoints.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetMonthlyTrends returns per-month income/expense totals
// @Summary     Monthly trends
// @Description Income and expense totals per calendar month, oldest first. Months with no activity are omitted.
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       months query int false "Number of trailing months (default 6)"
// @Success     200 {object} map[string]interface{} "Trend series"
// @Failure     400 {object} ErrorResponse "Invalid months"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analytics/trends [get]
func (h *AnalyticsHandler) GetMonthlyTrends(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	months := 6
	if v := c.Query("months"); v != "" {
		parsed, parseErr := strconv.Atoi(v)
		if parseErr != nil || parsed < 1 || parsed > 60 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "months must be between 1 and 60"))
			return
		}
		months = parsed
	}

	trends, err := h.analyticsService.MonthlyTrends(userID, months)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trends": trends})
}

// GetCategoryBreakdown returns per-category totals
// @Summary     Category breakdown
// @Description Per-category totals for one transaction type, largest first
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       type       query string false "Transaction type (default expense)"
// @Param       start_date query string false "Window start (RFC3339 or YYYY-MM-DD)"
// @Param       end_date   query string false "Window end (RFC3339 or YYYY-MM-DD)"
// @Success     200 {object} map[string]interface{} "Breakdown rows"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analytics/breakdown [get]
func (h *AnalyticsHandler) GetCategoryBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionType := models.TransactionTypeExpense
	if v := c.Query("type"); v != "" {
		switch models.TransactionType(v) {
		case models.TransactionTypeIncome, models.TransactionTypeExpense:
			transactionType = models.TransactionType(v)
		default:
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid type, must be income or expense"))
			return
		}
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	breakdown, err := h.analyticsService.CategoryBreakdown(userID, transactionType, filter.StartDate, filter.EndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"breakdown": breakdown})
}

// GetInsights returns derived spending metrics
// @Summary     Spending insights
// @Description Average daily spend, largest transaction, top categories, totals, and the month-over-month spending trend for a trailing window
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       period query int false "Window size in days (default 30)"
// @Success     200 {object} services.Insights "Insights"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analytics/insights [get]
func (h *AnalyticsHandler) GetInsights(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	period := 30
	if v := c.Query("period"); v != "" {
		parsed, parseErr := strconv.Atoi(v)
		if parseErr != nil || parsed < 1 || parsed > 365 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "period must be between 1 and 365 days"))
			return
		}
		period = parsed
	}

	insights, err := h.analyticsService.GetInsights(userID, period)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": insights})
}
