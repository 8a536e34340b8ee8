package services

import (
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// spendingTrendMonths is how many trailing months feed the spending trend.
const spendingTrendMonths = 6

type analyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService creates a new analytics service backed by the given database.
func NewAnalyticsService(db *gorm.DB) AnalyticsServicer {
	return &analyticsService{db: db}
}

// monthExpr returns the SQL expression that truncates the date column to a
// YYYY-MM string for the active dialect.
func (s *analyticsService) monthExpr() string {
	if s.db.Dialector.Name() == "postgres" {
		return "to_char(date, 'YYYY-MM')"
	}
	return "strftime('%Y-%m', date)"
}

// MonthlyTrends returns per-month income and expense totals for the
// trailing N calendar months, oldest first. Months with no transactions are
// omitted rather than zero-filled.
func (s *analyticsService) MonthlyTrends(userID uint, months int) ([]MonthlyTrend, error) {
	if months <= 0 {
		months = spendingTrendMonths
	}

	now := time.Now().UTC()
	cutoff := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	expr := s.monthExpr()
	var rows []struct {
		Month string
		Type  models.TransactionType
		Total float64
	}
	err := s.db.Model(&models.Transaction{}).
		Select(expr+" AS month, type, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND date >= ?", userID, cutoff).
		Group(expr + ", type").
		Order("month ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Fold the per-type rows into one entry per month, preserving the
	// ascending month order from the query.
	trends := make([]MonthlyTrend, 0, len(rows))
	index := make(map[string]int, len(rows))
	for _, row := range rows {
		i, ok := index[row.Month]
		if !ok {
			trends = append(trends, MonthlyTrend{Month: row.Month})
			i = len(trends) - 1
			index[row.Month] = i
		}
		switch row.Type {
		case models.TransactionTypeIncome:
			trends[i].Income = round2(row.Total)
		case models.TransactionTypeExpense:
			trends[i].Expense = round2(row.Total)
		}
	}
	return trends, nil
}

// CategoryBreakdown returns per-category totals for one transaction type,
// largest first, optionally restricted to a date window. Categories with no
// matching transactions do not appear.
func (s *analyticsService) CategoryBreakdown(userID uint, transactionType models.TransactionType, startDate, endDate *time.Time) ([]CategoryAmount, error) {
	if err := validateTransactionType(transactionType); err != nil {
		return nil, err
	}
	rows, err := s.categoryTotals(userID, transactionType, startDate, endDate, 0)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// categoryTotals is the shared breakdown query; limit 0 means unlimited.
func (s *analyticsService) categoryTotals(userID uint, transactionType models.TransactionType, startDate, endDate *time.Time, limit int) ([]CategoryAmount, error) {
	query := s.db.Model(&models.Transaction{}).
		Select(`categories.id AS category_id,
			categories.name AS category,
			categories.icon AS icon,
			categories.color AS color,
			COALESCE(SUM(transactions.amount), 0) AS amount,
			COUNT(transactions.id) AS count`).
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.type = ?", userID, transactionType).
		Group("categories.id, categories.name, categories.icon, categories.color").
		Order("amount DESC")
	if startDate != nil {
		query = query.Where("transactions.date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("transactions.date <= ?", *endDate)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []CategoryAmount
	if err := query.Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range rows {
		rows[i].Amount = round2(rows[i].Amount)
	}
	if rows == nil {
		rows = []CategoryAmount{}
	}
	return rows, nil
}

// GetInsights computes derived spending metrics over a trailing window of
// periodDays days: average daily spend, the largest transaction, the top
// five expense categories, overall totals, and the month-over-month
// spending trend.
func (s *analyticsService) GetInsights(userID uint, periodDays int) (*Insights, error) {
	if periodDays <= 0 {
		periodDays = 30
	}

	now := time.Now().UTC()
	start := now.AddDate(0, 0, -periodDays)

	var totals struct {
		TotalIncome  float64
		TotalExpense float64
	}
	err := s.db.Model(&models.Transaction{}).
		Select(`COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS total_expense`).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, now).
		Scan(&totals).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	insights := &Insights{
		TotalIncome:  round2(totals.TotalIncome),
		TotalExpense: round2(totals.TotalExpense),
		NetSavings:   round2(totals.TotalIncome - totals.TotalExpense),
		PeriodDays:   periodDays,
	}
	insights.AvgDailySpending = round2(totals.TotalExpense / float64(periodDays))
	if insights.TotalIncome > 0 {
		insights.SavingsRate = round1((insights.TotalIncome - insights.TotalExpense) / insights.TotalIncome * 100)
	}

	largest, err := s.largestTransaction(userID, start, now)
	if err != nil {
		return nil, err
	}
	insights.LargestTransaction = largest

	top, err := s.categoryTotals(userID, models.TransactionTypeExpense, &start, &now, 5)
	if err != nil {
		return nil, err
	}
	insights.TopCategories = top

	trend, err := s.spendingTrend(userID)
	if err != nil {
		return nil, err
	}
	insights.SpendingTrend = trend

	return insights, nil
}

func (s *analyticsService) largestTransaction(userID uint, start, end time.Time) (*LargestTransaction, error) {
	var transaction models.Transaction
	err := s.db.
		Preload("Category").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("amount DESC").
		First(&transaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &LargestTransaction{
		Amount:      transaction.Amount,
		Description: transaction.Description,
		Category:    transaction.Category.Name,
		Date:        transaction.Date,
		Type:        transaction.Type,
	}, nil
}

// spendingTrend compares the two most recent months that have expense
// activity within the trailing window. The trend is stable when fewer than
// two such months exist or the earlier month had no spending.
func (s *analyticsService) spendingTrend(userID uint) (SpendingTrend, error) {
	now := time.Now().UTC()
	cutoff := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(spendingTrendMonths - 1), 0)

	expr := s.monthExpr()
	var rows []struct {
		Month string
		Total float64
	}
	err := s.db.Model(&models.Transaction{}).
		Select(expr+" AS month, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND type = ? AND date >= ?", userID, models.TransactionTypeExpense, cutoff).
		Group(expr).
		Order("month ASC").
		Scan(&rows).Error
	if err != nil {
		return SpendingTrend{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	trend := SpendingTrend{Direction: "stable"}
	if len(rows) < 2 {
		return trend, nil
	}

	previous := rows[len(rows)-2].Total
	latest := rows[len(rows)-1].Total
	if previous <= 0 {
		return trend, nil
	}

	change := (latest - previous) / previous * 100
	trend.Percentage = round1(math.Abs(change))
	// Any non-increase counts as decreasing, so equal months report
	// decreasing with a zero percentage.
	if latest > previous {
		trend.Direction = "increasing"
	} else {
		trend.Direction = "decreasing"
	}
	return trend, nil
}
