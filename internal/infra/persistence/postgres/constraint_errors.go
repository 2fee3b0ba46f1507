package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes. GORM only translates them when TranslateError is set,
// so the raw codes are checked as well.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

type sqlStateError interface {
	SQLState() string
}

func hasSQLState(err error, code string) bool {
	var stateErr sqlStateError
	if errors.As(err, &stateErr) {
		return stateErr.SQLState() == code
	}

	return strings.Contains(err.Error(), "SQLSTATE "+code)
}

func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, gorm.ErrDuplicatedKey) || hasSQLState(err, pgUniqueViolation)
}

func isForeignKeyConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, gorm.ErrForeignKeyViolated) || hasSQLState(err, pgForeignKeyViolation)
}

func isNotNullConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	return hasSQLState(err, pgNotNullViolation)
}

func isCheckConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, gorm.ErrCheckConstraintViolated) || hasSQLState(err, pgCheckViolation)
}
