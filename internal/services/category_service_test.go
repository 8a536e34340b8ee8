package services

import (
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func TestListCategories(t *testing.T) {
	t.Run("filters_by_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		income := testutil.CreateTestCategory(t, db, models.CategoryTypeIncome)
		testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		incomeType := models.CategoryTypeIncome
		categories, err := svc.ListCategories(&incomeType)
		testutil.AssertNoError(t, err)

		for _, cat := range categories {
			if cat.Type != models.CategoryTypeIncome {
				t.Errorf("expected only income categories, got %s (%s)", cat.Name, cat.Type)
			}
		}
		found := false
		for _, cat := range categories {
			if cat.ID == income.ID {
				found = true
			}
		}
		if !found {
			t.Error("expected the created income category in the list")
		}
	})
}

func TestGetCategoryByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCategoryService(db)

	cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

	got, err := svc.GetCategoryByID(cat.ID)
	testutil.AssertNoError(t, err)
	if got.Name != cat.Name {
		t.Errorf("expected %s, got %s", cat.Name, got.Name)
	}

	_, err = svc.GetCategoryByID(99999)
	testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
}
