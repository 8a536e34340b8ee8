package database

import (
	"fmt"

	"fintrack/internal/logger"
	"fintrack/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// defaultCategories is the built-in category set with display metadata.
var defaultCategories = []models.Category{
	// Income
	{Name: "Salary", Type: models.CategoryTypeIncome, Icon: "💰", Color: "#4CAF50"},
	{Name: "Freelance", Type: models.CategoryTypeIncome, Icon: "💼", Color: "#2196F3"},
	{Name: "Business", Type: models.CategoryTypeIncome, Icon: "🏢", Color: "#FF9800"},
	{Name: "Investments", Type: models.CategoryTypeIncome, Icon: "📈", Color: "#9C27B0"},
	{Name: "Rental Income", Type: models.CategoryTypeIncome, Icon: "🏠", Color: "#607D8B"},
	{Name: "Side Hustle", Type: models.CategoryTypeIncome, Icon: "⚡", Color: "#00BCD4"},
	{Name: "Gifts Received", Type: models.CategoryTypeIncome, Icon: "🎁", Color: "#E91E63"},
	{Name: "Other Income", Type: models.CategoryTypeIncome, Icon: "💵", Color: "#795548"},

	// Expense
	{Name: "Food & Dining", Type: models.CategoryTypeExpense, Icon: "🍽️", Color: "#F44336"},
	{Name: "Transportation", Type: models.CategoryTypeExpense, Icon: "🚗", Color: "#3F51B5"},
	{Name: "Housing", Type: models.CategoryTypeExpense, Icon: "🏠", Color: "#795548"},
	{Name: "Utilities", Type: models.CategoryTypeExpense, Icon: "⚡", Color: "#FF5722"},
	{Name: "Healthcare", Type: models.CategoryTypeExpense, Icon: "🏥", Color: "#E91E63"},
	{Name: "Entertainment", Type: models.CategoryTypeExpense, Icon: "🎬", Color: "#9C27B0"},
	{Name: "Shopping", Type: models.CategoryTypeExpense, Icon: "🛒", Color: "#FF9800"},
	{Name: "Education", Type: models.CategoryTypeExpense, Icon: "📚", Color: "#2196F3"},
	{Name: "Insurance", Type: models.CategoryTypeExpense, Icon: "🛡️", Color: "#607D8B"},
	{Name: "Fitness", Type: models.CategoryTypeExpense, Icon: "💪", Color: "#4CAF50"},
	{Name: "Travel", Type: models.CategoryTypeExpense, Icon: "✈️", Color: "#00BCD4"},
	{Name: "Personal Care", Type: models.CategoryTypeExpense, Icon: "💅", Color: "#E91E63"},
	{Name: "Gifts & Donations", Type: models.CategoryTypeExpense, Icon: "🎁", Color: "#9C27B0"},
	{Name: "Subscriptions", Type: models.CategoryTypeExpense, Icon: "📱", Color: "#FF5722"},
	{Name: "Other Expenses", Type: models.CategoryTypeExpense, Icon: "💸", Color: "#607D8B"},
}

// SeedDefaultCategories inserts the default category set, skipping names
// that already exist. Safe to run on every startup.
func SeedDefaultCategories(db *gorm.DB) error {
	for _, cat := range defaultCategories {
		cat.IsDefault = true
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&cat).Error; err != nil {
			return fmt.Errorf("failed to seed category %q: %w", cat.Name, err)
		}
	}
	logger.Get().Infof("Default categories seeded (%d categories)", len(defaultCategories))
	return nil
}
