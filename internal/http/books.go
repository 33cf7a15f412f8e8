package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookreviews/internal/entities"
)

// BookRepository is the storage contract of the books endpoints.
// GetByID returns (nil, nil) when no book has the given id.
type BookRepository interface {
	GetAll(ctx context.Context) ([]entities.Book, error)
	GetByID(ctx context.Context, id uint) (*entities.Book, error)
	Add(ctx context.Context, book *entities.Book) error
	Remove(ctx context.Context, book *entities.Book) error
	Update(ctx context.Context, book *entities.Book) error
}

type BooksController struct {
	repo BookRepository
}

func NewBooksController(repo BookRepository) *BooksController {
	registerValidator()
	return &BooksController{
		repo: repo,
	}
}

// GetBooks answers 404 when there are no books at all.
func (controller *BooksController) GetBooks(c *gin.Context) {
	books, err := controller.repo.GetAll(c.Request.Context())
	if err != nil {
		respondStorageError(c, err, "books", "list books")
		return
	}
	if len(books) == 0 {
		respondNotFound(c, "books")
		return
	}
	c.JSON(http.StatusOK, books)
}

func (controller *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStorageError(c, err, "book", "get book")
		return
	}
	if book == nil {
		respondNotFound(c, "book")
		return
	}
	c.JSON(http.StatusOK, book)
}

func (controller *BooksController) CreateBook(c *gin.Context) {
	var book entities.Book
	if !bindJSON(c, &book) {
		return
	}
	book.Reviews = nil

	if err := controller.repo.Add(c.Request.Context(), &book); err != nil {
		respondStorageError(c, err, "book", "create book")
		return
	}
	respondCreated(c, fmt.Sprintf("/api/books/%d", book.ID), book)
}

func (controller *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input entities.Book
	if !bindJSON(c, &input) {
		return
	}
	if input.ID != 0 && input.ID != id {
		respondBadRequest(c, CodeIDMismatch, "id in body does not match id in path")
		return
	}

	ctx := c.Request.Context()
	book, err := controller.repo.GetByID(ctx, id)
	if err != nil {
		respondStorageError(c, err, "book", "get book for update")
		return
	}
	if book == nil {
		respondNotFound(c, "book")
		return
	}

	book.Title = input.Title
	book.Author = input.Author
	book.Year = input.Year

	if err := controller.repo.Update(ctx, book); err != nil {
		respondStorageError(c, err, "book", "update book")
		return
	}
	respondNoContent(c)
}

// DeleteBook removes the book together with all of its reviews.
func (controller *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	book, err := controller.repo.GetByID(ctx, id)
	if err != nil {
		respondStorageError(c, err, "book", "get book for delete")
		return
	}
	if book == nil {
		respondNotFound(c, "book")
		return
	}

	if err := controller.repo.Remove(ctx, book); err != nil {
		respondStorageError(c, err, "book", "delete book")
		return
	}
	respondNoContent(c)
}
