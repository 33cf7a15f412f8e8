package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestWrapError(t *testing.T) {
	sentinels := []error{ErrNotFound, ErrConstraintViolation, ErrStorageUnavailable}

	tests := []struct {
		name string
		err  error
		want error // nil means no sentinel matches
	}{
		{"record not found", gorm.ErrRecordNotFound, ErrNotFound},
		{"foreign key", gorm.ErrForeignKeyViolated, ErrConstraintViolation},
		{"duplicate key", gorm.ErrDuplicatedKey, ErrConstraintViolation},
		{"sqlite constraint", sqlite3.Error{Code: sqlite3.ErrConstraint}, ErrConstraintViolation},
		{"postgres foreign key message", errors.New(`ERROR: insert or update on table "BookReviews" violates foreign key constraint (SQLSTATE 23503)`), ErrConstraintViolation},
		{"bad connection", driver.ErrBadConn, ErrStorageUnavailable},
		{"deadline", context.DeadlineExceeded, ErrStorageUnavailable},
		{"sqlite busy", sqlite3.Error{Code: sqlite3.ErrBusy}, ErrStorageUnavailable},
		{"closed pool", errors.New("sql: database is closed"), ErrStorageUnavailable},
		{"unclassified", errors.New("syntax error"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapError("load thing", tt.err)

			assert.ErrorContains(t, err, "load thing")
			for _, sentinel := range sentinels {
				if sentinel == tt.want {
					assert.ErrorIs(t, err, sentinel)
				} else {
					assert.NotErrorIs(t, err, sentinel)
				}
			}
		})
	}
}

func TestWrapError_Nil(t *testing.T) {
	assert.NoError(t, WrapError("noop", nil))
}

func TestWrapError_KeepsClassification(t *testing.T) {
	inner := fmt.Errorf("update book 3: %w", ErrNotFound)

	err := WrapError("handler", inner)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "handler: update book 3: record not found", err.Error())
}
