package models

import "time"

// BudgetPeriod represents the recurrence period of a budget
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// Budget is a spending cap for one category over a recurring period.
// At most one budget exists per (user, category, period); creating a
// second one replaces the first through an upsert on that key.
type Budget struct {
	Base
	UserID     uint         `gorm:"not null;uniqueIndex:idx_budgets_user_category_period" json:"user_id"`
	CategoryID uint         `gorm:"not null;uniqueIndex:idx_budgets_user_category_period" json:"category_id"`
	Amount     float64      `gorm:"not null" json:"amount"`
	Period     BudgetPeriod `gorm:"size:10;not null;uniqueIndex:idx_budgets_user_category_period" json:"period"`
	StartDate  time.Time    `gorm:"not null" json:"start_date"`
	EndDate    *time.Time   `json:"end_date,omitempty"`
	IsActive   bool         `gorm:"default:true" json:"is_active"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
