package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Snapshots of the tables as each migration created them. Migrations must not
// depend on the live entities, which keep evolving.

type bookV1 struct {
	ID     uint   `gorm:"primaryKey"`
	Title  string `gorm:"not null"`
	Author string `gorm:"not null"`
	Year   int    `gorm:"not null"`
}

func (bookV1) TableName() string { return "Books" }

type bookReviewV1 struct {
	ID           uint      `gorm:"primaryKey"`
	BookID       uint      `gorm:"not null;index:IX_BookReviews_BookId"`
	Book         bookV1    `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
	ReviewerName string    `gorm:"size:100;not null"`
	Rating       int       `gorm:"not null"`
	ReviewText   string    `gorm:"size:2000;not null"`
	ReviewDate   time.Time `gorm:"not null"`
}

func (bookReviewV1) TableName() string { return "BookReviews" }

var migrations = []Migration{
	{
		Version: "20250930000000",
		Name:    "initial_create",
		Up: func(tx *gorm.DB) error {
			if err := tx.Migrator().CreateTable(&bookV1{}); err != nil {
				return err
			}
			return insertBooks(tx, seedBooks[:5])
		},
		Down: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable(&bookV1{})
		},
	},
	{
		Version: "20251002123556",
		Name:    "add_book_review",
		Up: func(tx *gorm.DB) error {
			if err := tx.Migrator().CreateTable(&bookReviewV1{}); err != nil {
				return err
			}
			if err := insertBooks(tx, seedBooks[5:]); err != nil {
				return err
			}
			return insertReviews(tx, seedReviews)
		},
		Down: func(tx *gorm.DB) error {
			if err := tx.Migrator().DropTable(&bookReviewV1{}); err != nil {
				return err
			}
			first, last := seedBooks[5].ID, seedBooks[len(seedBooks)-1].ID
			return tx.Where("id BETWEEN ? AND ?", first, last).Delete(&bookV1{}).Error
		},
	},
}

func insertBooks(tx *gorm.DB, books []bookV1) error {
	rows := make([]bookV1, len(books))
	copy(rows, books)
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("seed books: %w", err)
	}
	return advanceSequence(tx, bookV1{}.TableName())
}

func insertReviews(tx *gorm.DB, reviews []bookReviewV1) error {
	rows := make([]bookReviewV1, len(reviews))
	copy(rows, reviews)
	if err := tx.Omit(clause.Associations).Create(&rows).Error; err != nil {
		return fmt.Errorf("seed reviews: %w", err)
	}
	return advanceSequence(tx, bookReviewV1{}.TableName())
}

// advanceSequence moves a postgres serial past explicitly inserted ids so the
// next generated id does not collide with seed rows. sqlite needs nothing.
func advanceSequence(tx *gorm.DB, table string) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	sql := fmt.Sprintf(
		`SELECT setval(pg_get_serial_sequence('%q', 'id'), COALESCE((SELECT MAX(id) FROM %q), 1))`,
		table, table,
	)
	return tx.Exec(sql).Error
}
