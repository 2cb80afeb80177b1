package postgres

import (
	"strings"

	"fuelradar/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation matches GORM's translated error as well as raw
// PostgreSQL (SQLSTATE 23505) and SQLite driver messages.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505") ||
		strings.Contains(errMsg, "unique constraint failed")
}

func isNotNullConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null constraint") ||
		strings.Contains(errMsg, "23502")
}
