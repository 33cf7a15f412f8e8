// Package reviews provides database operations for book reviews.
//
//	var _ http.BookReviewRepository = (*Repository)(nil)
package reviews

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/bookreviews/internal/database"
	"github.com/mrlokans/bookreviews/internal/entities"
)

// Repository handles all book review database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new reviews repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAll retrieves every review.
func (r *Repository) GetAll(ctx context.Context) ([]entities.BookReview, error) {
	reviews := []entities.BookReview{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&reviews).Error; err != nil {
		return nil, database.WrapError("get all reviews", err)
	}
	return reviews, nil
}

// GetByID retrieves a review with its book. A missing review is (nil, nil).
func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.BookReview, error) {
	var review entities.BookReview
	err := r.db.WithContext(ctx).Preload("Book").First(&review, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, database.WrapError("get review", err)
	}
	return &review, nil
}

// GetByBookID retrieves the reviews of one book. No match yields an empty slice.
func (r *Repository) GetByBookID(ctx context.Context, bookID uint) ([]entities.BookReview, error) {
	reviews := []entities.BookReview{}
	err := r.db.WithContext(ctx).Where("book_id = ?", bookID).Order("id ASC").Find(&reviews).Error
	if err != nil {
		return nil, database.WrapError("get reviews by book", err)
	}
	return reviews, nil
}

// Exists reports whether a review with the given ID exists without loading it.
func (r *Repository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.BookReview{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, database.WrapError("check review exists", err)
	}
	return count > 0, nil
}

// Add inserts a review. The ID is always generated by the store and the
// book back-reference is never written. A BookID that matches no book is
// rejected by the foreign key with database.ErrConstraintViolation.
func (r *Repository) Add(ctx context.Context, review *entities.BookReview) error {
	review.ID = 0
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(review).Error; err != nil {
		return database.WrapError("add review", err)
	}
	return nil
}

// Remove deletes a review.
func (r *Repository) Remove(ctx context.Context, review *entities.BookReview) error {
	if review == nil || review.ID == 0 {
		return fmt.Errorf("remove review: %w", database.ErrNotFound)
	}
	result := r.db.WithContext(ctx).Delete(&entities.BookReview{}, review.ID)
	if result.Error != nil {
		return database.WrapError("remove review", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("remove review %d: %w", review.ID, database.ErrNotFound)
	}
	return nil
}

// Update overwrites the mutable fields of the review with the same ID.
// A zero ReviewDate keeps the stored date.
func (r *Repository) Update(ctx context.Context, review *entities.BookReview) error {
	fields := map[string]any{
		"book_id":       review.BookID,
		"reviewer_name": review.ReviewerName,
		"rating":        review.Rating,
		"review_text":   review.ReviewText,
	}
	if !review.ReviewDate.IsZero() {
		fields["review_date"] = review.ReviewDate
	}

	result := r.db.WithContext(ctx).Model(&entities.BookReview{}).Where("id = ?", review.ID).Updates(fields)
	if result.Error != nil {
		return database.WrapError("update review", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update review %d: %w", review.ID, database.ErrNotFound)
	}
	return nil
}
