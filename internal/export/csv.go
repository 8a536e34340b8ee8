// Package export renders transaction data into downloadable formats.
package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"fintrack/internal/models"
)

// csvHeader is the fixed column order of transaction exports.
var csvHeader = []string{"Date", "Category", "Type", "Description", "Amount"}

// TransactionsCSV renders transactions as CSV with a header row. Dates are
// formatted as YYYY-MM-DD, types are title-cased, and amounts always carry
// two decimal places. Transactions must have their Category preloaded.
func TransactionsCSV(transactions []models.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, t := range transactions {
		record := []string{
			t.Date.Format("2006-01-02"),
			t.Category.Name,
			titleCase(string(t.Type)),
			t.Description,
			strconv.FormatFloat(t.Amount, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
