package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category is shared reference data seeded at bootstrap. Categories are
// global rather than per-user and are read-only after seeding; a
// transaction's type must always match its category's type.
type Category struct {
	Base
	Name      string       `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Type      CategoryType `gorm:"size:10;not null" json:"type"`
	Icon      string       `gorm:"size:10" json:"icon"`
	Color     string       `gorm:"size:7" json:"color"`
	IsDefault bool         `gorm:"default:true" json:"is_default"`

	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"transactions,omitempty"`
	Budgets      []Budget      `gorm:"foreignKey:CategoryID" json:"budgets,omitempty"`
}
