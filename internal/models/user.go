package models

import "time"

// User represents a registered account. Users are never hard-deleted;
// deactivation clears IsActive instead.
type User struct {
	Base
	Username            string     `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email               string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password            string     `gorm:"not null" json:"-"`
	IsActive            bool       `gorm:"default:true" json:"is_active"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time `json:"-"`
	LastLoginAt         *time.Time `json:"last_login_at,omitempty"`

	Transactions []Transaction    `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	Budgets      []Budget         `gorm:"foreignKey:UserID" json:"budgets,omitempty"`
	Preferences  *UserPreferences `gorm:"foreignKey:UserID" json:"preferences,omitempty"`
	Onboarding   *UserOnboarding  `gorm:"foreignKey:UserID" json:"onboarding,omitempty"`
}
