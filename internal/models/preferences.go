package models

import "time"

// UserPreferences holds per-user display and notification settings.
// Created together with the user row in the same database transaction.
type UserPreferences struct {
	Base
	UserID               uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Currency             string `gorm:"size:3;default:USD" json:"currency"`
	CurrencySymbol       string `gorm:"size:5;default:$" json:"currency_symbol"`
	DateFormat           string `gorm:"size:20;default:MM/DD/YYYY" json:"date_format"`
	Theme                string `gorm:"size:10;default:auto" json:"theme"`
	DefaultView          string `gorm:"size:10;default:all" json:"default_view"`
	Timezone             string `gorm:"size:50;default:UTC" json:"timezone"`
	Language             string `gorm:"size:10;default:en" json:"language"`
	NotificationsEnabled bool   `gorm:"default:true" json:"notifications_enabled"`
	EmailNotifications   bool   `gorm:"default:false" json:"email_notifications"`
	BudgetAlerts         bool   `gorm:"default:true" json:"budget_alerts"`
	ExportFormat         string `gorm:"size:10;default:csv" json:"export_format"`
	DecimalPlaces        int    `gorm:"default:2" json:"decimal_places"`
}

// UserOnboarding tracks which first-use milestones a user has completed.
type UserOnboarding struct {
	Base
	UserID                uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	TourCompleted         bool       `gorm:"default:false" json:"tour_completed"`
	SampleDataAdded       bool       `gorm:"default:false" json:"sample_data_added"`
	FirstTransactionAdded bool       `gorm:"default:false" json:"first_transaction_added"`
	FirstBudgetSet        bool       `gorm:"default:false" json:"first_budget_set"`
	DashboardVisited      bool       `gorm:"default:false" json:"dashboard_visited"`
	ReportsVisited        bool       `gorm:"default:false" json:"reports_visited"`
	SettingsVisited       bool       `gorm:"default:false" json:"settings_visited"`
	ExportUsed            bool       `gorm:"default:false" json:"export_used"`
	SearchUsed            bool       `gorm:"default:false" json:"search_used"`
	ChecklistCompleted    bool       `gorm:"default:false" json:"checklist_completed"`
	CompletionDate        *time.Time `json:"completion_date,omitempty"`
}
