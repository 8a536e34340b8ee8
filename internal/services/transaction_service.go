package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/sanitize"
)

type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new transaction service backed by the given database.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction validates and records a new transaction. The amount is
// normalized to two decimal places, the date must fall inside the accepted
// window, and the category must exist and match the transaction type.
func (s *transactionService) CreateTransaction(userID, categoryID uint, amount float64, transactionType models.TransactionType, description string, date time.Time) (*models.Transaction, error) {
	if err := validateTransactionType(transactionType); err != nil {
		return nil, err
	}
	normalized, err := validateAmount(amount)
	if err != nil {
		return nil, err
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}

	description = sanitize.String(description)
	if err := validateDescription(description); err != nil {
		return nil, err
	}

	var category models.Category
	if err := s.db.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if string(category.Type) != string(transactionType) {
		return nil, apperrors.ErrCategoryTypeMismatch
	}

	transaction := &models.Transaction{
		UserID:      userID,
		CategoryID:  categoryID,
		Type:        transactionType,
		Amount:      normalized,
		Description: description,
		Date:        date,
	}
	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	transaction.Category = category
	return transaction, nil
}

// ListTransactions returns one page of the user's transactions matching the
// filter, with categories preloaded. Present filters combine with AND;
// search matches the description or category name case-insensitively.
func (s *transactionService) ListTransactions(userID uint, filter TransactionFilter, sort TransactionSort, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	query := s.applyFilter(userID, filter)
	query = applySort(query, sort)

	var transactions []models.Transaction
	err := query.
		Preload("Category").
		Scopes(pagination.Paginate(page)).
		Find(&transactions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(transactions, page)
	return &resp, nil
}

// applyFilter builds the filtered base query. The categories join is only
// added when search needs it, keeping the common path a single-table scan.
func (s *transactionService) applyFilter(userID uint, filter TransactionFilter) *gorm.DB {
	query := s.db.Model(&models.Transaction{}).Where("transactions.user_id = ?", userID)

	if filter.Type != nil {
		query = query.Where("transactions.type = ?", *filter.Type)
	}
	if filter.CategoryID != nil {
		query = query.Where("transactions.category_id = ?", *filter.CategoryID)
	}
	if filter.StartDate != nil {
		query = query.Where("transactions.date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("transactions.date <= ?", *filter.EndDate)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.
			Joins("JOIN categories ON categories.id = transactions.category_id").
			Where("LOWER(transactions.description) LIKE ? OR LOWER(categories.name) LIKE ?", pattern, pattern)
	}
	return query
}

// applySort maps a sort option to an ORDER BY clause. Date sorts use
// created_at as a tie-break so rows on the same day keep insertion order.
// Unrecognized options fall back to newest-first.
func applySort(query *gorm.DB, sort TransactionSort) *gorm.DB {
	switch sort {
	case SortDateAsc:
		return query.Order("transactions.date ASC, transactions.created_at ASC")
	case SortAmountDesc:
		return query.Order("transactions.amount DESC, transactions.created_at DESC")
	case SortAmountAsc:
		return query.Order("transactions.amount ASC, transactions.created_at ASC")
	default:
		return query.Order("transactions.date DESC, transactions.created_at DESC")
	}
}

// GetTransactionByID retrieves one of the user's transactions. A
// transaction owned by another user is reported as not found.
func (s *transactionService) GetTransactionByID(userID, transactionID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	err := s.db.
		Preload("Category").
		Where("id = ? AND user_id = ?", transactionID, userID).
		First(&transaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction applies a partial update to one of the user's
// transactions. Present fields are revalidated with the creation rules, and
// the type/category pairing is checked against the merged result of the
// update. Returns false without error when no owned row matches.
func (s *transactionService) UpdateTransaction(userID, transactionID uint, patch TransactionPatch) (bool, error) {
	var transaction models.Transaction
	err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updates := map[string]interface{}{}

	if patch.Amount != nil {
		normalized, err := validateAmount(*patch.Amount)
		if err != nil {
			return false, err
		}
		updates["amount"] = normalized
	}
	if patch.Date != nil {
		if err := validateDate(*patch.Date); err != nil {
			return false, err
		}
		updates["date"] = *patch.Date
	}
	if patch.Description != nil {
		clean := sanitize.String(*patch.Description)
		if err := validateDescription(clean); err != nil {
			return false, err
		}
		updates["description"] = clean
	}

	// The type/category pairing is validated against the merged state so a
	// patch cannot leave an income transaction pointing at an expense
	// category or vice versa.
	finalType := transaction.Type
	if patch.Type != nil {
		if err := validateTransactionType(*patch.Type); err != nil {
			return false, err
		}
		finalType = *patch.Type
		updates["type"] = finalType
	}
	finalCategoryID := transaction.CategoryID
	if patch.CategoryID != nil {
		finalCategoryID = *patch.CategoryID
		updates["category_id"] = finalCategoryID
	}
	if patch.Type != nil || patch.CategoryID != nil {
		var category models.Category
		if err := s.db.First(&category, finalCategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, apperrors.ErrCategoryNotFound
			}
			return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if string(category.Type) != string(finalType) {
			return false, apperrors.ErrCategoryTypeMismatch
		}
	}

	if len(updates) == 0 {
		return true, nil
	}

	if err := s.db.Model(&transaction).Updates(updates).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return true, nil
}

// DeleteTransaction removes one of the user's transactions. Returns false
// without error when no owned row matches.
func (s *transactionService) DeleteTransaction(userID, transactionID uint) (bool, error) {
	result := s.db.Where("id = ? AND user_id = ?", transactionID, userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// GetSummary computes aggregate totals for the user, optionally restricted
// to a date window. A user with no matching transactions gets all zeros;
// the savings rate is zero whenever income is zero.
func (s *transactionService) GetSummary(userID uint, startDate, endDate *time.Time) (*Summary, error) {
	var row struct {
		TotalIncome  float64
		TotalExpense float64
		IncomeCount  int64
		ExpenseCount int64
	}

	query := s.db.Model(&models.Transaction{}).
		Select(`COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS total_expense,
			COALESCE(SUM(CASE WHEN type = 'income' THEN 1 ELSE 0 END), 0) AS income_count,
			COALESCE(SUM(CASE WHEN type = 'expense' THEN 1 ELSE 0 END), 0) AS expense_count`).
		Where("user_id = ?", userID)
	if startDate != nil {
		query = query.Where("date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("date <= ?", *endDate)
	}
	if err := query.Scan(&row).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := &Summary{
		TotalIncome:  round2(row.TotalIncome),
		TotalExpense: round2(row.TotalExpense),
		NetBalance:   round2(row.TotalIncome - row.TotalExpense),
		IncomeCount:  row.IncomeCount,
		ExpenseCount: row.ExpenseCount,
		TotalCount:   row.IncomeCount + row.ExpenseCount,
	}
	if summary.TotalIncome > 0 {
		summary.SavingsRate = round1((summary.TotalIncome - summary.TotalExpense) / summary.TotalIncome * 100)
	}
	return summary, nil
}
