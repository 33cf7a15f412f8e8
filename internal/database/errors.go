package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrNotFound means the addressed row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConstraintViolation means the store rejected the write, e.g. a review
	// pointing at a book that does not exist.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrStorageUnavailable means the store could not be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// WrapError classifies a storage error and wraps it with the operation name.
// The result matches exactly one of the sentinels above via errors.Is, or
// none of them for errors that fit no category.
func WrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrConstraintViolation), errors.Is(err, ErrStorageUnavailable):
		return fmt.Errorf("%s: %w", op, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case isConstraintViolation(err):
		return fmt.Errorf("%s: %w: %w", op, ErrConstraintViolation, err)
	case isUnavailable(err):
		return fmt.Errorf("%s: %w: %w", op, ErrStorageUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "constraint failed") || strings.Contains(msg, "violates foreign key constraint")
}

func isUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrCantOpen, sqlite3.ErrIoErr:
			return true
		}
	}
	// database/sql does not export this one
	return strings.Contains(err.Error(), "sql: database is closed")
}
