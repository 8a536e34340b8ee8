package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

type preferenceService struct {
	db *gorm.DB
}

// NewPreferenceService creates a new preference service backed by the given database.
func NewPreferenceService(db *gorm.DB) PreferenceServicer {
	return &preferenceService{db: db}
}

// GetPreferences retrieves the user's settings.
func (s *preferenceService) GetPreferences(userID uint) (*models.UserPreferences, error) {
	var prefs models.UserPreferences
	if err := s.db.Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPreferencesNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &prefs, nil
}

// UpdatePreferences applies a partial update to the user's settings and
// returns the updated row.
func (s *preferenceService) UpdatePreferences(userID uint, patch PreferencesPatch) (*models.UserPreferences, error) {
	prefs, err := s.GetPreferences(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	setString := func(column string, v *string) {
		if v != nil {
			updates[column] = *v
		}
	}
	setBool := func(column string, v *bool) {
		if v != nil {
			updates[column] = *v
		}
	}
	setString("currency", patch.Currency)
	setString("currency_symbol", patch.CurrencySymbol)
	setString("date_format", patch.DateFormat)
	setString("theme", patch.Theme)
	setString("default_view", patch.DefaultView)
	setString("timezone", patch.Timezone)
	setString("language", patch.Language)
	setBool("notifications_enabled", patch.NotificationsEnabled)
	setBool("email_notifications", patch.EmailNotifications)
	setBool("budget_alerts", patch.BudgetAlerts)
	setString("export_format", patch.ExportFormat)
	if patch.DecimalPlaces != nil {
		updates["decimal_places"] = *patch.DecimalPlaces
	}

	if len(updates) == 0 {
		return prefs, nil
	}
	if err := s.db.Model(prefs).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetPreferences(userID)
}

// GetOnboarding retrieves the user's onboarding progress.
func (s *preferenceService) GetOnboarding(userID uint) (*models.UserOnboarding, error) {
	var onboarding models.UserOnboarding
	if err := s.db.Where("user_id = ?", userID).First(&onboarding).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOnboardingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &onboarding, nil
}

// UpdateOnboarding applies milestone flag changes. The completion date is
// stamped the first time the checklist flips to completed.
func (s *preferenceService) UpdateOnboarding(userID uint, patch OnboardingPatch) (*models.UserOnboarding, error) {
	onboarding, err := s.GetOnboarding(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	setBool := func(column string, v *bool) {
		if v != nil {
			updates[column] = *v
		}
	}
	setBool("tour_completed", patch.TourCompleted)
	setBool("sample_data_added", patch.SampleDataAdded)
	setBool("first_transaction_added", patch.FirstTransactionAdded)
	setBool("first_budget_set", patch.FirstBudgetSet)
	setBool("dashboard_visited", patch.DashboardVisited)
	setBool("reports_visited", patch.ReportsVisited)
	setBool("settings_visited", patch.SettingsVisited)
	setBool("export_used", patch.ExportUsed)
	setBool("search_used", patch.SearchUsed)
	setBool("checklist_completed", patch.ChecklistCompleted)

	if patch.ChecklistCompleted != nil && *patch.ChecklistCompleted &&
		!onboarding.ChecklistCompleted && onboarding.CompletionDate == nil {
		now := time.Now().UTC()
		updates["completion_date"] = &now
	}

	if len(updates) == 0 {
		return onboarding, nil
	}
	if err := s.db.Model(onboarding).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetOnboarding(userID)
}
