package entities

import (
	"time"

	"gorm.io/gorm"
)

const (
	ReviewerNameMaxLength = 100
	ReviewTextMaxLength   = 2000
	MinRating             = 1
	MaxRating             = 5
)

// Book owns its reviews: deleting a book deletes every review that points at it.
type Book struct {
	ID      uint         `gorm:"primaryKey" json:"id"`
	Title   string       `gorm:"not null" json:"title" binding:"required"`
	Author  string       `gorm:"not null" json:"author" binding:"required"`
	Year    int          `gorm:"not null" json:"year"` // negative for BCE
	Reviews []BookReview `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"reviews,omitempty" binding:"-"`
}

func (Book) TableName() string {
	return "Books"
}

// BookReview references its book through BookID. Book is a lookup-only
// back-reference and is never written through a review.
type BookReview struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	BookID       uint      `gorm:"not null;index:IX_BookReviews_BookId" json:"bookId" binding:"required"`
	Book         *Book     `gorm:"foreignKey:BookID" json:"book,omitempty" binding:"-"`
	ReviewerName string    `gorm:"size:100;not null" json:"reviewerName" binding:"required,max=100"`
	Rating       int       `gorm:"not null" json:"rating" binding:"required,min=1,max=5"`
	ReviewText   string    `gorm:"size:2000;not null" json:"reviewText" binding:"required,max=2000"`
	ReviewDate   time.Time `gorm:"not null" json:"reviewDate"`
}

func (BookReview) TableName() string {
	return "BookReviews"
}

// BeforeCreate defaults ReviewDate to the creation time.
func (r *BookReview) BeforeCreate(tx *gorm.DB) error {
	r.StampReviewDate(time.Now())
	return nil
}

// StampReviewDate sets ReviewDate to now when it was left unset.
func (r *BookReview) StampReviewDate(now time.Time) {
	if r.ReviewDate.IsZero() {
		r.ReviewDate = now.UTC()
	}
}
