package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/export"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

// ExportHandler handles transaction downloads.
type ExportHandler struct {
	transactionService services.TransactionServicer
	preferenceService  services.PreferenceServicer
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(transactionService services.TransactionServicer, preferenceService services.PreferenceServicer) *ExportHandler {
	return &ExportHandler{transactionService: transactionService, preferenceService: preferenceService}
}

// ExportTransactions streams the user's transactions as CSV
// @Summary     Export transactions
// @Description Download the user's transactions as a CSV file, honoring the same filters as the list endpoint
// @Tags        export
// @Produce     text/csv
// @Security    BearerAuth
// @Param       type        query string false "Filter by type (income or expense)"
// @Param       category_id query int    false "Filter by category"
// @Param       start_date  query string false "Filter by start date (RFC3339 or YYYY-MM-DD)"
// @Param       end_date    query string false "Filter by end date (RFC3339 or YYYY-MM-DD)"
// @Success     200 {string} string "CSV data"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/export [get]
func (h *ExportHandler) ExportTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// Exports page through the full result set rather than capping at one
	// page, so the file always contains every matching transaction.
	var all []models.Transaction
	page := pagination.PageRequest{Limit: pagination.MaxLimit}
	for {
		result, err := h.transactionService.ListTransactions(userID, filter, services.SortDateDesc, page)
		if err != nil {
			respondWithError(c, err)
			return
		}
		all = append(all, result.Data...)
		if !result.HasMore {
			break
		}
		page.Offset += page.Limit
	}

	data, err := export.TransactionsCSV(all)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	if _, err := h.preferenceService.UpdateOnboarding(userID, services.OnboardingPatch{ExportUsed: boolPtr(true)}); err != nil {
		logger.Get().Warnw("failed to update onboarding milestone", "user_id", userID, "error", err)
	}

	filename := fmt.Sprintf("transactions_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
