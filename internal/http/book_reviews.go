package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookreviews/internal/entities"
)

// BookReviewRepository is the storage contract of the review endpoints.
type BookReviewRepository interface {
	GetAll(ctx context.Context) ([]entities.BookReview, error)
	// GetByID returns (nil, nil) when no review has the given id.
	GetByID(ctx context.Context, id uint) (*entities.BookReview, error)
	GetByBookID(ctx context.Context, bookID uint) ([]entities.BookReview, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Add(ctx context.Context, review *entities.BookReview) error
	Remove(ctx context.Context, review *entities.BookReview) error
	Update(ctx context.Context, review *entities.BookReview) error
}

type BookReviewsController struct {
	repo BookReviewRepository
}

func NewBookReviewsController(repo BookReviewRepository) *BookReviewsController {
	registerValidator()
	return &BookReviewsController{
		repo: repo,
	}
}

func (controller *BookReviewsController) GetReviews(c *gin.Context) {
	reviews, err := controller.repo.GetAll(c.Request.Context())
	if err != nil {
		respondStorageError(c, err, "reviews", "list reviews")
		return
	}
	respondReviewList(c, reviews)
}

func (controller *BookReviewsController) GetReviewsByBook(c *gin.Context) {
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	reviews, err := controller.repo.GetByBookID(c.Request.Context(), bookID)
	if err != nil {
		respondStorageError(c, err, "reviews", "list reviews by book")
		return
	}
	respondReviewList(c, reviews)
}

func respondReviewList(c *gin.Context, reviews []entities.BookReview) {
	if len(reviews) == 0 {
		respondNotFound(c, "reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (controller *BookReviewsController) GetReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	review, err := controller.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStorageError(c, err, "review", "get review")
		return
	}
	if review == nil {
		respondNotFound(c, "review")
		return
	}
	c.JSON(http.StatusOK, review)
}

// CreateReview does not check that the book exists; a dangling bookId is
// rejected by the store as a constraint violation.
func (controller *BookReviewsController) CreateReview(c *gin.Context) {
	var review entities.BookReview
	if !bindJSON(c, &review) {
		return
	}
	review.Book = nil

	if err := controller.repo.Add(c.Request.Context(), &review); err != nil {
		respondStorageError(c, err, "review", "create review")
		return
	}
	respondCreated(c, fmt.Sprintf("/api/bookreviews/%d", review.ID), review)
}

func (controller *BookReviewsController) UpdateReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var review entities.BookReview
	if !bindJSON(c, &review) {
		return
	}
	if review.ID != 0 && review.ID != id {
		respondBadRequest(c, CodeIDMismatch, "id in body does not match id in path")
		return
	}
	review.ID = id
	review.Book = nil

	ctx := c.Request.Context()
	exists, err := controller.repo.Exists(ctx, id)
	if err != nil {
		respondStorageError(c, err, "review", "check review for update")
		return
	}
	if !exists {
		respondNotFound(c, "review")
		return
	}

	if err := controller.repo.Update(ctx, &review); err != nil {
		respondStorageError(c, err, "review", "update review")
		return
	}
	respondNoContent(c)
}

func (controller *BookReviewsController) DeleteReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	exists, err := controller.repo.Exists(ctx, id)
	if err != nil {
		respondStorageError(c, err, "review", "check review for delete")
		return
	}
	if !exists {
		respondNotFound(c, "review")
		return
	}

	if err := controller.repo.Remove(ctx, &entities.BookReview{ID: id}); err != nil {
		respondStorageError(c, err, "review", "delete review")
		return
	}
	respondNoContent(c)
}
