package services

import (
	"testing"

	"fintrack/internal/testutil"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestUpdatePreferences(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPreferenceService(db)
		user := testutil.CreateTestUser(t, db)

		prefs, err := svc.UpdatePreferences(user.ID, PreferencesPatch{
			Currency: strPtr("EUR"),
			Theme:    strPtr("dark"),
		})
		testutil.AssertNoError(t, err)

		if prefs.Currency != "EUR" {
			t.Errorf("expected EUR, got %s", prefs.Currency)
		}
		if prefs.Theme != "dark" {
			t.Errorf("expected dark, got %s", prefs.Theme)
		}
		// Untouched fields keep their defaults.
		if prefs.Language != "en" {
			t.Errorf("expected default language en, got %s", prefs.Language)
		}
	})

	t.Run("empty_patch_is_noop", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPreferenceService(db)
		user := testutil.CreateTestUser(t, db)

		prefs, err := svc.UpdatePreferences(user.ID, PreferencesPatch{})
		testutil.AssertNoError(t, err)
		if prefs.Currency != "USD" {
			t.Errorf("expected defaults intact, got %s", prefs.Currency)
		}
	})

	t.Run("missing_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPreferenceService(db)

		_, err := svc.GetPreferences(99999)
		testutil.AssertAppError(t, err, "PREFERENCES_NOT_FOUND")
	})
}

func TestUpdateOnboarding(t *testing.T) {
	t.Run("sets_milestones", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPreferenceService(db)
		user := testutil.CreateTestUser(t, db)

		onboarding, err := svc.UpdateOnboarding(user.ID, OnboardingPatch{
			FirstTransactionAdded: boolPtr(true),
			SearchUsed:            boolPtr(true),
		})
		testutil.AssertNoError(t, err)

		if !onboarding.FirstTransactionAdded || !onboarding.SearchUsed {
			t.Errorf("expected milestones set, got %+v", onboarding)
		}
		if onboarding.TourCompleted {
			t.Error("expected untouched flags to stay false")
		}
		if onboarding.CompletionDate != nil {
			t.Error("expected no completion date yet")
		}
	})

	t.Run("completion_stamps_date_once", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPreferenceService(db)
		user := testutil.CreateTestUser(t, db)

		onboarding, err := svc.UpdateOnboarding(user.ID, OnboardingPatch{ChecklistCompleted: boolPtr(true)})
		testutil.AssertNoError(t, err)
		if onboarding.CompletionDate == nil {
			t.Fatal("expected completion date stamped")
		}
		first := *onboarding.CompletionDate

		onboarding, err = svc.UpdateOnboarding(user.ID, OnboardingPatch{ChecklistCompleted: boolPtr(true)})
		testutil.AssertNoError(t, err)
		if onboarding.CompletionDate == nil || !onboarding.CompletionDate.Equal(first) {
			t.Errorf("expected completion date unchanged, got %v", onboarding.CompletionDate)
		}
	})
}
