package services

import (
	"math"
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

const (
	// maxAmount is the upper bound for transaction and budget amounts.
	maxAmount = 1_000_000

	// maxDescriptionLen is the longest accepted transaction description.
	maxDescriptionLen = 200

	// Transactions may be post-dated up to 30 days and back-dated up to
	// roughly ten years.
	maxFutureDays = 30
	maxPastDays   = 3650
)

// validateAmount checks that an amount is positive and within bounds, and
// normalizes it to two decimal places.
func validateAmount(amount float64) (float64, error) {
	if amount <= 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Amount must be greater than zero")
	}
	if amount > maxAmount {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Amount must not exceed 1,000,000")
	}
	return round2(amount), nil
}

// validateDate checks that a transaction date falls inside the accepted
// window relative to today. Comparison is at day granularity so a
// transaction dated today always passes regardless of time of day.
func validateDate(date time.Time) error {
	day := truncateToDay(date)
	today := truncateToDay(time.Now().UTC())

	if day.After(today.AddDate(0, 0, maxFutureDays)) {
		return apperrors.WithMessage(apperrors.ErrInvalidDate, "Date cannot be more than 30 days in the future")
	}
	if day.Before(today.AddDate(0, 0, -maxPastDays)) {
		return apperrors.WithMessage(apperrors.ErrInvalidDate, "Date cannot be more than 10 years in the past")
	}
	return nil
}

// validateTransactionType checks the type against the closed enum.
func validateTransactionType(t models.TransactionType) error {
	if t != models.TransactionTypeIncome && t != models.TransactionTypeExpense {
		return apperrors.ErrInvalidTransactionType
	}
	return nil
}

// validateDescription enforces the description length limit.
func validateDescription(description string) error {
	if len([]rune(description)) > maxDescriptionLen {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Description must be at most 200 characters")
	}
	return nil
}

// validateBudgetPeriod checks the period against the closed enum.
func validateBudgetPeriod(p models.BudgetPeriod) error {
	switch p {
	case models.BudgetPeriodWeekly, models.BudgetPeriodMonthly, models.BudgetPeriodYearly:
		return nil
	}
	return apperrors.ErrInvalidBudgetPeriod
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// round2 rounds to two decimal places (cents).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round1 rounds to one decimal place, used for percentages and rates.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
