package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"fintrack/internal/models"
)

func TestTransactionsCSV(t *testing.T) {
	date := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	transactions := []models.Transaction{
		{
			Type:        models.TransactionTypeExpense,
			Amount:      42.5,
			Description: "Lunch, with a comma",
			Date:        date,
			Category:    models.Category{Name: "Food & Dining"},
		},
		{
			Type:     models.TransactionTypeIncome,
			Amount:   1000,
			Date:     date.AddDate(0, 0, 1),
			Category: models.Category{Name: "Salary"},
		},
	}

	data, err := TransactionsCSV(transactions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}

	header := records[0]
	want := []string{"Date", "Category", "Type", "Description", "Amount"}
	for i, col := range want {
		if header[i] != col {
			t.Errorf("header[%d]: expected %s, got %s", i, col, header[i])
		}
	}

	row := records[1]
	if row[0] != "2026-03-15" {
		t.Errorf("expected date 2026-03-15, got %s", row[0])
	}
	if row[1] != "Food & Dining" {
		t.Errorf("expected category name, got %s", row[1])
	}
	if row[2] != "Expense" {
		t.Errorf("expected title-cased type, got %s", row[2])
	}
	if row[3] != "Lunch, with a comma" {
		t.Errorf("expected quoted description to round-trip, got %s", row[3])
	}
	if row[4] != "42.50" {
		t.Errorf("expected two decimal places, got %s", row[4])
	}

	if records[2][2] != "Income" || records[2][4] != "1000.00" {
		t.Errorf("unexpected income row: %v", records[2])
	}
}

func TestTransactionsCSVEmpty(t *testing.T) {
	data, err := TransactionsCSV(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected only the header row, got %d records", len(records))
	}
}
