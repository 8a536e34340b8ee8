package services

import (
	"fmt"
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("creates_user_with_preferences_and_onboarding", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("alice", "alice@example.com", "s3cretpass")
		testutil.AssertNoError(t, err)

		if user.ID == 0 {
			t.Fatal("expected non-zero user ID")
		}
		if user.Password == "s3cretpass" {
			t.Error("expected password to be hashed")
		}

		var prefs models.UserPreferences
		if err := db.Where("user_id = ?", user.ID).First(&prefs).Error; err != nil {
			t.Errorf("expected preferences row: %v", err)
		}
		var onboarding models.UserOnboarding
		if err := db.Where("user_id = ?", user.ID).First(&onboarding).Error; err != nil {
			t.Errorf("expected onboarding row: %v", err)
		}
	})

	t.Run("rejects_duplicates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("bob", "bob@example.com", "s3cretpass")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("bob", "bob2@example.com", "s3cretpass")
		testutil.AssertAppError(t, err, "DUPLICATE_USERNAME")

		_, err = svc.CreateUser("bob2", "bob@example.com", "s3cretpass")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})
}

func TestAttemptLogin(t *testing.T) {
	t.Run("success_resets_counters", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created, err := svc.CreateUser("carol", "carol@example.com", "s3cretpass")
		testutil.AssertNoError(t, err)

		_, err = svc.AttemptLogin("carol", "wrong")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")

		user, err := svc.AttemptLogin("carol", "s3cretpass")
		testutil.AssertNoError(t, err)
		if user.ID != created.ID {
			t.Errorf("expected user %d, got %d", created.ID, user.ID)
		}
		if user.FailedLoginAttempts != 0 {
			t.Errorf("expected reset counter, got %d", user.FailedLoginAttempts)
		}
		if user.LastLoginAt == nil {
			t.Error("expected last login to be recorded")
		}
	})

	t.Run("unknown_user_same_error_as_wrong_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.AttemptLogin("nobody", "whatever")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("locks_after_repeated_failures", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("dave", "dave@example.com", "s3cretpass")
		testutil.AssertNoError(t, err)

		for i := 0; i < maxFailedLogins; i++ {
			_, err = svc.AttemptLogin("dave", fmt.Sprintf("wrong%d", i))
			testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
		}

		// Locked now, even with the right password.
		_, err = svc.AttemptLogin("dave", "s3cretpass")
		testutil.AssertAppError(t, err, "ACCOUNT_LOCKED")
	})
}

func TestVerifyPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	user, err := svc.CreateUser("erin", "erin@example.com", "s3cretpass")
	testutil.AssertNoError(t, err)

	if !svc.VerifyPassword(user, "s3cretpass") {
		t.Error("expected correct password to verify")
	}
	if svc.VerifyPassword(user, "not-it") {
		t.Error("expected wrong password to fail")
	}
}
