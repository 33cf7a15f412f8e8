package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookreviews/internal/config"
	"github.com/mrlokans/bookreviews/internal/entities"
)

func testConfig(t *testing.T, autoMigrate bool) config.Database {
	t.Helper()
	return config.Database{
		Driver:      config.DriverSQLite,
		Path:        filepath.Join(t.TempDir(), "test.db"),
		LogLevel:    "silent",
		AutoMigrate: autoMigrate,
	}
}

// setupTestDB creates a fresh, fully migrated test database
func setupTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(testConfig(t, true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNewDatabase_SeedsCatalogue(t *testing.T) {
	db := setupTestDB(t)

	var bookCount, reviewCount int64
	require.NoError(t, db.DB.Model(&entities.Book{}).Count(&bookCount).Error)
	require.NoError(t, db.DB.Model(&entities.BookReview{}).Count(&reviewCount).Error)
	assert.Equal(t, int64(15), bookCount)
	assert.Equal(t, int64(15), reviewCount)

	t.Run("negative years survive", func(t *testing.T) {
		var odyssey entities.Book
		require.NoError(t, db.DB.First(&odyssey, 13).Error)
		assert.Equal(t, "The Odyssey", odyssey.Title)
		assert.Equal(t, "Homer", odyssey.Author)
		assert.Equal(t, -800, odyssey.Year)
	})

	t.Run("one review per book", func(t *testing.T) {
		for id := uint(1); id <= 15; id++ {
			var count int64
			require.NoError(t, db.DB.Model(&entities.BookReview{}).Where("book_id = ?", id).Count(&count).Error)
			assert.Equal(t, int64(1), count, "book %d", id)
		}
	})

	t.Run("review dates are kept", func(t *testing.T) {
		var review entities.BookReview
		require.NoError(t, db.DB.First(&review, 1).Error)
		assert.Equal(t, "Jane Smith", review.ReviewerName)
		assert.Equal(t, 4, review.Rating)
		assert.True(t, review.ReviewDate.Equal(time.Date(2023, time.February, 20, 0, 0, 0, 0, time.UTC)))
	})
}

func TestNewDatabase_Schema(t *testing.T) {
	db := setupTestDB(t)
	m := db.DB.Migrator()

	assert.True(t, m.HasTable("Books"))
	assert.True(t, m.HasTable("BookReviews"))
	assert.True(t, m.HasIndex(&entities.BookReview{}, "IX_BookReviews_BookId"))
	assert.True(t, m.HasColumn(&entities.BookReview{}, "reviewer_name"))
}

func TestNewDatabase_WithoutAutoMigrate(t *testing.T) {
	db, err := NewDatabase(testConfig(t, false))
	require.NoError(t, err)
	defer db.Close()

	assert.False(t, db.DB.Migrator().HasTable("Books"))
}

func TestNewDatabase_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Database
	}{
		{"unknown driver", config.Database{Driver: "oracle"}},
		{"sqlite without path", config.Database{Driver: config.DriverSQLite}},
		{"postgres without dsn", config.Database{Driver: config.DriverPostgres}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, err := NewDatabase(tt.cfg)
			assert.Error(t, err)
			assert.Nil(t, db)
		})
	}
}

func TestDatabase_ForeignKeys(t *testing.T) {
	db := setupTestDB(t)

	t.Run("review for a missing book is rejected", func(t *testing.T) {
		review := entities.BookReview{BookID: 999, ReviewerName: "Ghost", Rating: 3, ReviewText: "Nobody wrote this book."}
		err := WrapError("add review", db.DB.Create(&review).Error)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConstraintViolation)
	})

	t.Run("deleting a book deletes its reviews", func(t *testing.T) {
		require.NoError(t, db.DB.Delete(&entities.Book{}, 1).Error)

		var count int64
		require.NoError(t, db.DB.Model(&entities.BookReview{}).Where("book_id = ?", 1).Count(&count).Error)
		assert.Zero(t, count)

		require.NoError(t, db.DB.Model(&entities.BookReview{}).Count(&count).Error)
		assert.Equal(t, int64(14), count)
	})
}

func TestDatabase_Ping(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, db.Ping(context.Background()))

	require.NoError(t, db.Close())
	assert.Error(t, db.Ping(context.Background()))
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "app.db?"+sqlitePragmas, sqliteDSN("app.db"))
	assert.Equal(t, "file:app.db?cache=shared&"+sqlitePragmas, sqliteDSN("file:app.db?cache=shared"))
}
