package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
)

// PreferencesHandler handles user settings and onboarding progress.
type PreferencesHandler struct {
	preferenceService services.PreferenceServicer
}

// NewPreferencesHandler creates a new PreferencesHandler.
func NewPreferencesHandler(preferenceService services.PreferenceServicer) *PreferencesHandler {
	return &PreferencesHandler{preferenceService: preferenceService}
}

// UpdatePreferencesRequest represents a partial preferences update.
type UpdatePreferencesRequest struct {
	Currency             *string `json:"currency" binding:"omitempty,len=3"`
	CurrencySymbol       *string `json:"currency_symbol" binding:"omitempty,max=5"`
	DateFormat           *string `json:"date_format" binding:"omitempty,max=20"`
	Theme                *string `json:"theme" binding:"omitempty,oneof=light dark auto"`
	DefaultView          *string `json:"default_view" binding:"omitempty,max=10"`
	Timezone             *string `json:"timezone" binding:"omitempty,max=50"`
	Language             *string `json:"language" binding:"omitempty,max=10"`
	NotificationsEnabled *bool   `json:"notifications_enabled"`
	EmailNotifications   *bool   `json:"email_notifications"`
	BudgetAlerts         *bool   `json:"budget_alerts"`
	ExportFormat         *string `json:"export_format" binding:"omitempty,oneof=csv json"`
	DecimalPlaces        *int    `json:"decimal_places" binding:"omitempty,min=0,max=4"`
}

// UpdateOnboardingRequest represents milestone flag changes.
type UpdateOnboardingRequest struct {
	TourCompleted         *bool `json:"tour_completed"`
	SampleDataAdded       *bool `json:"sample_data_added"`
	FirstTransactionAdded *bool `json:"first_transaction_added"`
	FirstBudgetSet        *bool `json:"first_budget_set"`
	DashboardVisited      *bool `json:"dashboard_visited"`
	ReportsVisited        *bool `json:"reports_visited"`
	SettingsVisited       *bool `json:"settings_visited"`
	ExportUsed            *bool `json:"export_used"`
	SearchUsed            *bool `json:"search_used"`
	ChecklistCompleted    *bool `json:"checklist_completed"`
}

// GetPreferences returns the user's settings
// @Summary     Get preferences
// @Tags        preferences
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Preferences"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Preferences not found"
// @Router      /preferences [get]
func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	prefs, err := h.preferenceService.GetPreferences(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

// UpdatePreferences applies a partial settings update
// @Summary     Update preferences
// @Description Update any subset of the user's settings
// @Tags        preferences
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdatePreferencesRequest true "Fields to change"
// @Success     200 {object} map[string]interface{} "Updated preferences"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /preferences [put]
func (h *PreferencesHandler) UpdatePreferences(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	prefs, err := h.preferenceService.UpdatePreferences(userID, services.PreferencesPatch{
		Currency:             req.Currency,
		CurrencySymbol:       req.CurrencySymbol,
		DateFormat:           req.DateFormat,
		Theme:                req.Theme,
		DefaultView:          req.DefaultView,
		Timezone:             req.Timezone,
		Language:             req.Language,
		NotificationsEnabled: req.NotificationsEnabled,
		EmailNotifications:   req.EmailNotifications,
		BudgetAlerts:         req.BudgetAlerts,
		ExportFormat:         req.ExportFormat,
		DecimalPlaces:        req.DecimalPlaces,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

// GetOnboarding returns onboarding progress
// @Summary     Get onboarding progress
// @Tags        preferences
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Onboarding state"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Onboarding record not found"
// @Router      /onboarding [get]
func (h *PreferencesHandler) GetOnboarding(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	onboarding, err := h.preferenceService.GetOnboarding(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"onboarding": onboarding})
}

// UpdateOnboarding records milestone changes
// @Summary     Update onboarding progress
// @Description Set milestone flags; completing the checklist stamps the completion date
// @Tags        preferences
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateOnboardingRequest true "Milestones to set"
// @Success     200 {object} map[string]interface{} "Updated onboarding state"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /onboarding [put]
func (h *PreferencesHandler) UpdateOnboarding(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	onboarding, err := h.preferenceService.UpdateOnboarding(userID, services.OnboardingPatch{
		TourCompleted:         req.TourCompleted,
		SampleDataAdded:       req.SampleDataAdded,
		FirstTransactionAdded: req.FirstTransactionAdded,
		FirstBudgetSet:        req.FirstBudgetSet,
		DashboardVisited:      req.DashboardVisited,
		ReportsVisited:        req.ReportsVisited,
		SettingsVisited:       req.SettingsVisited,
		ExportUsed:            req.ExportUsed,
		SearchUsed:            req.SearchUsed,
		ChecklistCompleted:    req.ChecklistCompleted,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"onboarding": onboarding})
}
