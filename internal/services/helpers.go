package services

import "strings"

// isUniqueConstraintError detects unique constraint violations across the
// supported drivers. SQLite and Postgres report these with different
// messages and neither driver exposes a portable sentinel.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
