package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single income or expense record. Amounts are
// stored rounded to two decimal places. Date is the user-supplied
// transaction date; CreatedAt breaks ties when sorting by date.
type Transaction struct {
	Base
	UserID      uint            `gorm:"not null;index:idx_transactions_user_date" json:"user_id"`
	CategoryID  uint            `gorm:"not null;index" json:"category_id"`
	Type        TransactionType `gorm:"size:10;not null;index" json:"type"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Description string          `gorm:"size:200" json:"description"`
	Date        time.Time       `gorm:"not null;index:idx_transactions_user_date" json:"date"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
