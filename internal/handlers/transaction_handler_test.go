package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fintrack/internal/models"
	"fintrack/internal/services"
	"fintrack/internal/testutil"
	"fintrack/internal/validator"
)

// newTestRouter wires the transaction routes with the auth middleware
// replaced by a stub that injects the given user.
func newTestRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validator.Register()

	transactionService := services.NewTransactionService(db)
	preferenceService := services.NewPreferenceService(db)
	handler := NewTransactionHandler(transactionService, preferenceService)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	})
	router.POST("/transactions", handler.CreateTransaction)
	router.GET("/transactions", handler.ListTransactions)
	router.GET("/transactions/:id", handler.GetTransaction)
	router.PUT("/transactions/:id", handler.UpdateTransaction)
	router.DELETE("/transactions/:id", handler.DeleteTransaction)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("response is not JSON: %v\n%s", err, w.Body.String())
		}
	}
	return w, parsed
}

func TestCreateTransactionEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	user := testutil.CreateTestUser(t, db)
	cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)
	router := newTestRouter(db, user.ID)

	t.Run("created", func(t *testing.T) {
		body := fmt.Sprintf(`{"category_id": %d, "type": "expense", "amount": 12.346, "description": "snack"}`, cat.ID)
		w, resp := doJSON(t, router, http.MethodPost, "/transactions", body)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		tx := resp["transaction"].(map[string]interface{})
		if tx["amount"].(float64) != 12.35 {
			t.Errorf("expected rounded amount 12.35, got %v", tx["amount"])
		}

		// First transaction marks the onboarding milestone.
		var onboarding models.UserOnboarding
		if err := db.Where("user_id = ?", user.ID).First(&onboarding).Error; err != nil {
			t.Fatalf("failed to load onboarding: %v", err)
		}
		if !onboarding.FirstTransactionAdded {
			t.Error("expected first_transaction_added milestone")
		}
	})

	t.Run("rejects_bad_type", func(t *testing.T) {
		body := fmt.Sprintf(`{"category_id": %d, "type": "transfer", "amount": 5}`, cat.ID)
		w, _ := doJSON(t, router, http.MethodPost, "/transactions", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rejects_bad_date", func(t *testing.T) {
		body := fmt.Sprintf(`{"category_id": %d, "type": "expense", "amount": 5, "date": "not-a-date"}`, cat.ID)
		w, _ := doJSON(t, router, http.MethodPost, "/transactions", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestListTransactionsEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	user := testutil.CreateTestUser(t, db)
	cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)
	router := newTestRouter(db, user.ID)

	now := time.Now().UTC()
	testutil.CreateTestTransaction(t, db, user.ID, cat, 10, now)
	testutil.CreateTestTransaction(t, db, user.ID, cat, 20, now)

	w, resp := doJSON(t, router, http.MethodGet, "/transactions?limit=1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	transactions := resp["transactions"].([]interface{})
	if len(transactions) != 1 {
		t.Errorf("expected 1 transaction on the page, got %d", len(transactions))
	}
	paging := resp["pagination"].(map[string]interface{})
	if paging["has_more"] != true {
		t.Errorf("expected has_more, got %v", paging["has_more"])
	}
	summary := resp["summary"].(map[string]interface{})
	if summary["total_expense"].(float64) != 30 {
		t.Errorf("expected summary over all matching rows, got %v", summary["total_expense"])
	}

	w, _ = doJSON(t, router, http.MethodGet, "/transactions?sort=sideways", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad sort, got %d", w.Code)
	}
}

func TestTransactionOwnershipEndpoints(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	owner := testutil.CreateTestUser(t, db)
	intruder := testutil.CreateTestUser(t, db)
	cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)
	tx := testutil.CreateTestTransaction(t, db, owner.ID, cat, 10, time.Now().UTC())

	router := newTestRouter(db, intruder.ID)

	w, _ := doJSON(t, router, http.MethodGet, fmt.Sprintf("/transactions/%d", tx.ID), "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for foreign read, got %d", w.Code)
	}

	w, _ = doJSON(t, router, http.MethodPut, fmt.Sprintf("/transactions/%d", tx.ID), `{"amount": 99}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for foreign update, got %d", w.Code)
	}

	w, _ = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/transactions/%d", tx.ID), "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for foreign delete, got %d", w.Code)
	}
}
