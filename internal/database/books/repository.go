// Package books provides database operations for book management.
//
// This package implements the BookRepository interface defined in
// internal/http/books.go.
//
// # Interface Implementation
//
//	var _ http.BookRepository = (*Repository)(nil)
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetByID(ctx, 13)
package books

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/bookreviews/internal/database"
	"github.com/mrlokans/bookreviews/internal/entities"
)

// Repository handles all book database operations. Every call runs in its
// own session and commits immediately.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAll retrieves every book, without reviews.
func (r *Repository) GetAll(ctx context.Context) ([]entities.Book, error) {
	books := []entities.Book{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&books).Error; err != nil {
		return nil, database.WrapError("get all books", err)
	}
	return books, nil
}

// GetByID retrieves a book by its ID. A missing book is reported as (nil, nil).
func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.WithContext(ctx).First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, database.WrapError("get book", err)
	}
	return &book, nil
}

// Add inserts a book. Any caller-supplied ID is discarded and replaced by
// the one the store generates. Nested reviews are not written.
func (r *Repository) Add(ctx context.Context, book *entities.Book) error {
	book.ID = 0
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(book).Error; err != nil {
		return database.WrapError("add book", err)
	}
	return nil
}

// Remove deletes a book. The foreign key cascades the delete to its reviews
// within the same statement.
func (r *Repository) Remove(ctx context.Context, book *entities.Book) error {
	if book == nil || book.ID == 0 {
		return fmt.Errorf("remove book: %w", database.ErrNotFound)
	}
	result := r.db.WithContext(ctx).Delete(&entities.Book{}, book.ID)
	if result.Error != nil {
		return database.WrapError("remove book", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("remove book %d: %w", book.ID, database.ErrNotFound)
	}
	return nil
}

// Update overwrites every mutable field of the book with the same ID.
// It never inserts.
func (r *Repository) Update(ctx context.Context, book *entities.Book) error {
	result := r.db.WithContext(ctx).Model(&entities.Book{}).
		Where("id = ?", book.ID).
		Updates(map[string]any{
			"title":  book.Title,
			"author": book.Author,
			"year":   book.Year,
		})
	if result.Error != nil {
		return database.WrapError("update book", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update book %d: %w", book.ID, database.ErrNotFound)
	}
	return nil
}
