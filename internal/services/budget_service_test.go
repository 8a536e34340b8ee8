package services

import (
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func TestCreateBudget(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		budget, err := svc.CreateBudget(user.ID, cat.ID, 500, models.BudgetPeriodMonthly, time.Now().UTC())
		testutil.AssertNoError(t, err)

		if budget.ID == 0 {
			t.Fatal("expected non-zero budget ID")
		}
		if budget.Amount != 500 {
			t.Errorf("expected amount 500, got %v", budget.Amount)
		}
		if !budget.IsActive {
			t.Error("expected budget to be active")
		}
		if budget.Category.ID != cat.ID {
			t.Errorf("expected category preloaded, got %d", budget.Category.ID)
		}
	})

	t.Run("replaces_existing_for_same_key", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		first, err := svc.CreateBudget(user.ID, cat.ID, 500, models.BudgetPeriodMonthly, time.Now().UTC())
		testutil.AssertNoError(t, err)

		second, err := svc.CreateBudget(user.ID, cat.ID, 750, models.BudgetPeriodMonthly, time.Now().UTC())
		testutil.AssertNoError(t, err)

		if second.ID != first.ID {
			t.Errorf("expected the same row to survive, got IDs %d and %d", first.ID, second.ID)
		}
		if second.Amount != 750 {
			t.Errorf("expected replaced amount 750, got %v", second.Amount)
		}

		var count int64
		db.Model(&models.Budget{}).
			Where("user_id = ? AND category_id = ? AND period = ?", user.ID, cat.ID, models.BudgetPeriodMonthly).
			Count(&count)
		if count != 1 {
			t.Errorf("expected exactly one budget row, got %d", count)
		}
	})

	t.Run("different_period_is_separate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		_, err := svc.CreateBudget(user.ID, cat.ID, 500, models.BudgetPeriodMonthly, time.Now().UTC())
		testutil.AssertNoError(t, err)
		_, err = svc.CreateBudget(user.ID, cat.ID, 5000, models.BudgetPeriodYearly, time.Now().UTC())
		testutil.AssertNoError(t, err)

		budgets, err := svc.ListBudgets(user.ID)
		testutil.AssertNoError(t, err)
		if len(budgets) != 2 {
			t.Errorf("expected two budgets, got %d", len(budgets))
		}
	})

	t.Run("rejects_invalid_input", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		_, err := svc.CreateBudget(user.ID, cat.ID, 0, models.BudgetPeriodMonthly, time.Now().UTC())
		testutil.AssertAppError(t, err, "INVALID_AMOUNT")

		_, err = svc.CreateBudget(user.ID, cat.ID, 100, models.BudgetPeriod("daily"), time.Now().UTC())
		testutil.AssertAppError(t, err, "INVALID_BUDGET_PERIOD")

		_, err = svc.CreateBudget(user.ID, 99999, 100, models.BudgetPeriodMonthly, time.Now().UTC())
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")

		income := testutil.CreateTestCategory(t, db, models.CategoryTypeIncome)
		_, err = svc.CreateBudget(user.ID, income.ID, 100, models.BudgetPeriodMonthly, time.Now().UTC())
		testutil.AssertAppError(t, err, "CATEGORY_TYPE_MISMATCH")
	})
}

func TestListBudgets(t *testing.T) {
	t.Run("computes_spend_and_status", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		start := time.Now().UTC().AddDate(0, 0, -10)
		_, err := svc.CreateBudget(user.ID, cat.ID, 100, models.BudgetPeriodMonthly, start)
		testutil.AssertNoError(t, err)

		testutil.CreateTestTransaction(t, db, user.ID, cat, 50, time.Now().UTC())
		testutil.CreateTestTransaction(t, db, user.ID, cat, 30, time.Now().UTC().AddDate(0, 0, -1))
		// Before the budget window, must not count.
		testutil.CreateTestTransaction(t, db, user.ID, cat, 500, start.AddDate(0, 0, -5))

		budgets, err := svc.ListBudgets(user.ID)
		testutil.AssertNoError(t, err)
		if len(budgets) != 1 {
			t.Fatalf("expected 1 budget, got %d", len(budgets))
		}

		b := budgets[0]
		if b.Spent != 80 {
			t.Errorf("expected spent 80, got %v", b.Spent)
		}
		if b.Remaining != 20 {
			t.Errorf("expected remaining 20, got %v", b.Remaining)
		}
		if b.PercentUsed != 80.0 {
			t.Errorf("expected 80%% used, got %v", b.PercentUsed)
		}
		if b.Status != "warning" {
			t.Errorf("expected status warning, got %s", b.Status)
		}
	})

	t.Run("status_thresholds", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		cases := []struct {
			spent  float64
			status string
		}{
			{10, "safe"},
			{60, "caution"},
			{85, "warning"},
			{100, "over"},
			{140, "over"},
		}
		start := time.Now().UTC().AddDate(0, 0, -5)
		for _, tc := range cases {
			cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)
			_, err := svc.CreateBudget(user.ID, cat.ID, 100, models.BudgetPeriodMonthly, start)
			testutil.AssertNoError(t, err)
			testutil.CreateTestTransaction(t, db, user.ID, cat, tc.spent, time.Now().UTC())
		}

		budgets, err := svc.ListBudgets(user.ID)
		testutil.AssertNoError(t, err)
		if len(budgets) != len(cases) {
			t.Fatalf("expected %d budgets, got %d", len(cases), len(budgets))
		}

		byStatus := map[string]int{}
		for _, b := range budgets {
			byStatus[b.Status]++
		}
		if byStatus["safe"] != 1 || byStatus["caution"] != 1 || byStatus["warning"] != 1 || byStatus["over"] != 2 {
			t.Errorf("unexpected status distribution: %v", byStatus)
		}
	})

	t.Run("only_counts_expense_spend_for_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		start := time.Now().UTC().AddDate(0, 0, -5)
		_, err := svc.CreateBudget(user.ID, cat.ID, 100, models.BudgetPeriodMonthly, start)
		testutil.AssertNoError(t, err)

		testutil.CreateTestTransaction(t, db, user.ID, cat, 25, time.Now().UTC())
		testutil.CreateTestTransaction(t, db, other.ID, cat, 70, time.Now().UTC())

		budgets, err := svc.ListBudgets(user.ID)
		testutil.AssertNoError(t, err)
		if budgets[0].Spent != 25 {
			t.Errorf("expected only the owner's spend, got %v", budgets[0].Spent)
		}
	})
}

func TestDeleteBudget(t *testing.T) {
	t.Run("deletes_own_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		budget, err := svc.CreateBudget(user.ID, cat.ID, 100, models.BudgetPeriodMonthly, time.Now().UTC())
		testutil.AssertNoError(t, err)

		deleted, err := svc.DeleteBudget(user.ID, budget.ID)
		testutil.AssertNoError(t, err)
		if !deleted {
			t.Fatal("expected delete to succeed")
		}

		budgets, err := svc.ListBudgets(user.ID)
		testutil.AssertNoError(t, err)
		if len(budgets) != 0 {
			t.Errorf("expected no budgets, got %d", len(budgets))
		}
	})

	t.Run("foreign_budget_untouched", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		budget, err := svc.CreateBudget(owner.ID, cat.ID, 100, models.BudgetPeriodMonthly, time.Now().UTC())
		testutil.AssertNoError(t, err)

		deleted, err := svc.DeleteBudget(other.ID, budget.ID)
		testutil.AssertNoError(t, err)
		if deleted {
			t.Error("expected no delete for another user's budget")
		}
	})
}
