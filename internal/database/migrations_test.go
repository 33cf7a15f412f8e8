package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/bookreviews/internal/entities"
)

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func TestMigrator_UpIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	applied, err := NewMigrator(db.DB).Up(ctx)
	require.NoError(t, err)
	assert.Empty(t, applied)

	assert.Equal(t, int64(15), countRows(t, db.DB, &entities.Book{}))
	assert.Equal(t, int64(15), countRows(t, db.DB, &entities.BookReview{}))
	assert.Equal(t, int64(2), countRows(t, db.DB, &entities.SchemaMigration{}))
}

func TestMigrator_UpFromScratch(t *testing.T) {
	db, err := NewDatabase(testConfig(t, false))
	require.NoError(t, err)
	defer db.Close()

	applied, err := NewMigrator(db.DB).Up(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"20250930000000_initial_create",
		"20251002123556_add_book_review",
	}, applied)
}

func TestMigrator_Status(t *testing.T) {
	db := setupTestDB(t)
	migrator := NewMigrator(db.DB)
	ctx := context.Background()

	statuses, err := migrator.Status(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	for _, s := range statuses {
		assert.True(t, s.Applied, s.Version)
		assert.False(t, s.AppliedAt.IsZero(), s.Version)
	}

	_, err = migrator.Down(ctx, 1)
	require.NoError(t, err)

	statuses, err = migrator.Status(ctx)
	require.NoError(t, err)
	assert.True(t, statuses[0].Applied)
	assert.False(t, statuses[1].Applied)
	assert.Equal(t, "add_book_review", statuses[1].Name)
}

func TestMigrator_Down(t *testing.T) {
	t.Run("one step drops reviews and the later seed books", func(t *testing.T) {
		db := setupTestDB(t)

		reverted, err := NewMigrator(db.DB).Down(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"20251002123556_add_book_review"}, reverted)

		assert.False(t, db.DB.Migrator().HasTable("BookReviews"))
		assert.Equal(t, int64(5), countRows(t, db.DB, &entities.Book{}))
	})

	t.Run("all steps drop every table", func(t *testing.T) {
		db := setupTestDB(t)

		reverted, err := NewMigrator(db.DB).Down(context.Background(), 10)
		require.NoError(t, err)
		assert.Len(t, reverted, 2)

		assert.False(t, db.DB.Migrator().HasTable("BookReviews"))
		assert.False(t, db.DB.Migrator().HasTable("Books"))
		assert.Zero(t, countRows(t, db.DB, &entities.SchemaMigration{}))
	})

	t.Run("down then up restores the catalogue", func(t *testing.T) {
		db := setupTestDB(t)
		migrator := NewMigrator(db.DB)
		ctx := context.Background()

		_, err := migrator.Down(ctx, 2)
		require.NoError(t, err)
		applied, err := migrator.Up(ctx)
		require.NoError(t, err)
		assert.Len(t, applied, 2)

		assert.Equal(t, int64(15), countRows(t, db.DB, &entities.Book{}))
		assert.Equal(t, int64(15), countRows(t, db.DB, &entities.BookReview{}))
	})

	t.Run("zero steps is a no-op", func(t *testing.T) {
		db := setupTestDB(t)

		reverted, err := NewMigrator(db.DB).Down(context.Background(), 0)
		require.NoError(t, err)
		assert.Empty(t, reverted)
		assert.True(t, db.DB.Migrator().HasTable("BookReviews"))
	})
}

type scratchRow struct {
	ID uint
}

func (scratchRow) TableName() string { return "scratch" }

func TestMigrator_FailedStepRollsBack(t *testing.T) {
	db, err := NewDatabase(testConfig(t, false))
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("boom")
	steps := []Migration{
		{
			Version: "1",
			Name:    "create_scratch",
			Up: func(tx *gorm.DB) error {
				if err := tx.Migrator().CreateTable(&scratchRow{}); err != nil {
					return err
				}
				return boom
			},
			Down: func(tx *gorm.DB) error { return nil },
		},
	}

	applied, err := newMigrator(db.DB, steps).Up(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, applied)
	assert.False(t, db.DB.Migrator().HasTable("scratch"))
	assert.Zero(t, countRows(t, db.DB, &entities.SchemaMigration{}))
}

func TestMigrator_RejectsUnorderedSteps(t *testing.T) {
	db, err := NewDatabase(testConfig(t, false))
	require.NoError(t, err)
	defer db.Close()

	noop := func(tx *gorm.DB) error { return nil }
	steps := []Migration{
		{Version: "2", Name: "second", Up: noop, Down: noop},
		{Version: "1", Name: "first", Up: noop, Down: noop},
	}

	_, err = newMigrator(db.DB, steps).Up(context.Background())
	assert.ErrorContains(t, err, "out of order")
}
