package services

import (
	"time"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, email, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	AttemptLogin(username, password string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// CategoryServicer defines the contract for category lookups. Categories
// are shared reference data; there are no per-user mutations.
type CategoryServicer interface {
	ListCategories(categoryType *models.CategoryType) ([]models.Category, error)
	GetCategoryByID(id uint) (*models.Category, error)
}

// TransactionSort names the supported orderings for transaction lists.
type TransactionSort string

const (
	SortDateDesc   TransactionSort = "date_desc"
	SortDateAsc    TransactionSort = "date_asc"
	SortAmountDesc TransactionSort = "amount_desc"
	SortAmountAsc  TransactionSort = "amount_asc"
)

// TransactionFilter holds optional filter parameters for listing
// transactions. All present filters are combined with AND. Search matches
// case-insensitively against the description or the category name.
type TransactionFilter struct {
	Type       *models.TransactionType
	CategoryID *uint
	StartDate  *time.Time
	EndDate    *time.Time
	Search     string
}

// TransactionPatch enumerates the mutable fields of a transaction. A nil
// field is left untouched; a present field is revalidated with the same
// rules as creation.
type TransactionPatch struct {
	Amount      *float64
	Type        *models.TransactionType
	CategoryID  *uint
	Description *string
	Date        *time.Time
}

// Summary contains aggregate income/expense figures for a user, optionally
// restricted to a date window.
type Summary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	NetBalance   float64 `json:"net_balance"`
	SavingsRate  float64 `json:"savings_rate"`
	IncomeCount  int64   `json:"income_count"`
	ExpenseCount int64   `json:"expense_count"`
	TotalCount   int64   `json:"total_count"`
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID, categoryID uint, amount float64, transactionType models.TransactionType, description string, date time.Time) (*models.Transaction, error)
	ListTransactions(userID uint, filter TransactionFilter, sort TransactionSort, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID uint) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID uint, patch TransactionPatch) (bool, error)
	DeleteTransaction(userID, transactionID uint) (bool, error)
	GetSummary(userID uint, startDate, endDate *time.Time) (*Summary, error)
}

// MonthlyTrend holds income and expense totals for one calendar month.
// Months without any transactions do not appear in trend series.
type MonthlyTrend struct {
	Month   string  `json:"month"` // YYYY-MM
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// CategoryAmount is one row of a category breakdown.
type CategoryAmount struct {
	CategoryID uint    `json:"category_id"`
	Category   string  `json:"category"`
	Icon       string  `json:"icon"`
	Color      string  `json:"color"`
	Amount     float64 `json:"amount"`
	Count      int64   `json:"count"`
}

// LargestTransaction describes the single largest transaction in a window.
type LargestTransaction struct {
	Amount      float64                `json:"amount"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	Date        time.Time              `json:"date"`
	Type        models.TransactionType `json:"type"`
}

// SpendingTrend compares the two most recent monthly expense totals.
type SpendingTrend struct {
	Direction  string  `json:"direction"` // increasing, decreasing, stable
	Percentage float64 `json:"percentage"`
}

// Insights aggregates derived metrics over a trailing window of days.
type Insights struct {
	AvgDailySpending   float64             `json:"avg_daily_spending"`
	LargestTransaction *LargestTransaction `json:"largest_transaction,omitempty"`
	TopCategories      []CategoryAmount    `json:"top_categories"`
	TotalIncome        float64             `json:"total_income"`
	TotalExpense       float64             `json:"total_expense"`
	NetSavings         float64             `json:"net_savings"`
	SavingsRate        float64             `json:"savings_rate"`
	SpendingTrend      SpendingTrend       `json:"spending_trend"`
	PeriodDays         int                 `json:"period_days"`
}

// AnalyticsServicer defines the contract for aggregation queries.
type AnalyticsServicer interface {
	MonthlyTrends(userID uint, months int) ([]MonthlyTrend, error)
	CategoryBreakdown(userID uint, transactionType models.TransactionType, startDate, endDate *time.Time) ([]CategoryAmount, error)
	GetInsights(userID uint, periodDays int) (*Insights, error)
}

// BudgetStatus is a budget joined with its actual spend for the budget
// window [StartDate, EndDate or +inf).
type BudgetStatus struct {
	BudgetID      uint                `json:"budget_id"`
	CategoryID    uint                `json:"category_id"`
	CategoryName  string              `json:"category_name"`
	CategoryIcon  string              `json:"category_icon"`
	CategoryColor string              `json:"category_color"`
	Amount        float64             `json:"amount"`
	Period        models.BudgetPeriod `json:"period"`
	StartDate     time.Time           `json:"start_date"`
	EndDate       *time.Time          `json:"end_date,omitempty"`
	Spent         float64             `json:"spent"`
	Remaining     float64             `json:"remaining"`
	PercentUsed   float64             `json:"percent_used"`
	Status        string              `json:"status"` // over, warning, caution, safe
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(userID, categoryID uint, amount float64, period models.BudgetPeriod, startDate time.Time) (*models.Budget, error)
	ListBudgets(userID uint) ([]BudgetStatus, error)
	DeleteBudget(userID, budgetID uint) (bool, error)
}

// PreferencesPatch enumerates the mutable preference fields.
type PreferencesPatch struct {
	Currency             *string
	CurrencySymbol       *string
	DateFormat           *string
	Theme                *string
	DefaultView          *string
	Timezone             *string
	Language             *string
	NotificationsEnabled *bool
	EmailNotifications   *bool
	BudgetAlerts         *bool
	ExportFormat         *string
	DecimalPlaces        *int
}

// OnboardingPatch enumerates the onboarding milestone flags.
type OnboardingPatch struct {
	TourCompleted         *bool
	SampleDataAdded       *bool
	FirstTransactionAdded *bool
	FirstBudgetSet        *bool
	DashboardVisited      *bool
	ReportsVisited        *bool
	SettingsVisited       *bool
	ExportUsed            *bool
	SearchUsed            *bool
	ChecklistCompleted    *bool
}

// PreferenceServicer defines the contract for per-user settings and
// onboarding progress.
type PreferenceServicer interface {
	GetPreferences(userID uint) (*models.UserPreferences, error)
	UpdatePreferences(userID uint, patch PreferencesPatch) (*models.UserPreferences, error)
	GetOnboarding(userID uint) (*models.UserOnboarding, error)
	UpdateOnboarding(userID uint, patch OnboardingPatch) (*models.UserOnboarding, error)
}
