package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// Budget utilization thresholds, as percentages of the budget amount.
const (
	budgetOverThreshold    = 100
	budgetWarningThreshold = 80
	budgetCautionThreshold = 60
)

type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new budget service backed by the given database.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// CreateBudget creates or replaces a budget. At most one budget exists per
// (user, category, period); a second create for the same key overwrites the
// amount and start date in place rather than erroring.
func (s *budgetService) CreateBudget(userID, categoryID uint, amount float64, period models.BudgetPeriod, startDate time.Time) (*models.Budget, error) {
	if err := validateBudgetPeriod(period); err != nil {
		return nil, err
	}
	normalized, err := validateAmount(amount)
	if err != nil {
		return nil, err
	}

	var category models.Category
	if err := s.db.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	// Budgets cap spending, so only expense categories can carry one.
	if category.Type != models.CategoryTypeExpense {
		return nil, apperrors.WithMessage(apperrors.ErrCategoryTypeMismatch, "Budgets can only be set on expense categories")
	}

	budget := &models.Budget{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     normalized,
		Period:     period,
		StartDate:  startDate,
		IsActive:   true,
	}
	err = s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "category_id"}, {Name: "period"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount":     normalized,
			"start_date": startDate,
			"end_date":   nil,
			"is_active":  true,
			"updated_at": time.Now(),
		}),
	}).Create(budget).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Re-read by the natural key: on the conflict path the driver does not
	// reliably report the surviving row's ID.
	var saved models.Budget
	err = s.db.Preload("Category").
		Where("user_id = ? AND category_id = ? AND period = ?", userID, categoryID, period).
		First(&saved).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &saved, nil
}

// ListBudgets returns the user's active budgets with actual spend, ordered
// by category name. Spend sums the user's expense transactions in the
// budget's category from the budget start date (to the end date when set).
func (s *budgetService) ListBudgets(userID uint) ([]BudgetStatus, error) {
	var budgets []models.Budget
	err := s.db.Preload("Category").
		Joins("JOIN categories ON categories.id = budgets.category_id").
		Where("budgets.user_id = ? AND budgets.is_active = ?", userID, true).
		Order("categories.name ASC").
		Find(&budgets).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, budget := range budgets {
		spent, err := s.spentAgainst(userID, budget)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, buildBudgetStatus(budget, spent))
	}
	return statuses, nil
}

func (s *budgetService) spentAgainst(userID uint, budget models.Budget) (float64, error) {
	query := s.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND category_id = ? AND type = ? AND date >= ?",
			userID, budget.CategoryID, models.TransactionTypeExpense, budget.StartDate)
	if budget.EndDate != nil {
		query = query.Where("date <= ?", *budget.EndDate)
	}

	var spent float64
	if err := query.Scan(&spent).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return spent, nil
}

// buildBudgetStatus derives utilization and the status label. A zero or
// negative budget amount reports zero percent used rather than dividing.
func buildBudgetStatus(budget models.Budget, spent float64) BudgetStatus {
	status := BudgetStatus{
		BudgetID:      budget.ID,
		CategoryID:    budget.CategoryID,
		CategoryName:  budget.Category.Name,
		CategoryIcon:  budget.Category.Icon,
		CategoryColor: budget.Category.Color,
		Amount:        budget.Amount,
		Period:        budget.Period,
		StartDate:     budget.StartDate,
		EndDate:       budget.EndDate,
		Spent:         round2(spent),
		Remaining:     round2(budget.Amount - spent),
	}
	if budget.Amount > 0 {
		status.PercentUsed = round1(spent / budget.Amount * 100)
	}

	switch {
	case status.PercentUsed >= budgetOverThreshold:
		status.Status = "over"
	case status.PercentUsed >= budgetWarningThreshold:
		status.Status = "warning"
	case status.PercentUsed >= budgetCautionThreshold:
		status.Status = "caution"
	default:
		status.Status = "safe"
	}
	return status
}

// DeleteBudget removes one of the user's budgets. Returns false without
// error when no owned row matches.
func (s *budgetService) DeleteBudget(userID, budgetID uint) (bool, error) {
	result := s.db.Where("id = ? AND user_id = ?", budgetID, userID).Delete(&models.Budget{})
	if result.Error != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	return result.RowsAffected > 0, nil
}
