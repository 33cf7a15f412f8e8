// Package memory provides an in-process implementation of the book and
// review repositories. It keeps the invariants of the relational schema:
// generated monotonic IDs, foreign key checks on reviews and cascade delete.
//
//	store := memory.NewStore()
//	controller := http.NewBooksController(store.Books())
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mrlokans/bookreviews/internal/database"
	"github.com/mrlokans/bookreviews/internal/entities"
)

// Store holds books and reviews for both repository views. It is safe for
// concurrent use.
type Store struct {
	mu           sync.RWMutex
	books        map[uint]entities.Book
	reviews      map[uint]entities.BookReview
	lastBookID   uint
	lastReviewID uint
	failure      error
	now          func() time.Time
}

func NewStore() *Store {
	return &Store{
		books:   make(map[uint]entities.Book),
		reviews: make(map[uint]entities.BookReview),
		now:     time.Now,
	}
}

// Books returns the book repository view of the store.
func (s *Store) Books() *BookRepository {
	return &BookRepository{store: s}
}

// Reviews returns the review repository view of the store.
func (s *Store) Reviews() *BookReviewRepository {
	return &BookReviewRepository{store: s}
}

// FailWith makes every following operation return err, wrapped like a
// storage error. Pass nil to recover.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = err
}

func (s *Store) check(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return database.WrapError(op, err)
	}
	if s.failure != nil {
		return database.WrapError(op, s.failure)
	}
	return nil
}

func sortedKeys[V any](m map[uint]V) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func bookRow(b entities.Book) entities.Book {
	return entities.Book{ID: b.ID, Title: b.Title, Author: b.Author, Year: b.Year}
}

func reviewRow(r entities.BookReview) entities.BookReview {
	r.Book = nil
	return r
}

// BookRepository is the book view of a Store.
type BookRepository struct {
	store *Store
}

func (r *BookRepository) GetAll(ctx context.Context) ([]entities.Book, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx, "get all books"); err != nil {
		return nil, err
	}

	books := make([]entities.Book, 0, len(s.books))
	for _, id := range sortedKeys(s.books) {
		books = append(books, s.books[id])
	}
	return books, nil
}

func (r *BookRepository) GetByID(ctx context.Context, id uint) (*entities.Book, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx, "get book"); err != nil {
		return nil, err
	}

	book, ok := s.books[id]
	if !ok {
		return nil, nil
	}
	return &book, nil
}

func (r *BookRepository) Add(ctx context.Context, book *entities.Book) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "add book"); err != nil {
		return err
	}

	s.lastBookID++
	book.ID = s.lastBookID
	s.books[book.ID] = bookRow(*book)
	return nil
}

func (r *BookRepository) Remove(ctx context.Context, book *entities.Book) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "remove book"); err != nil {
		return err
	}

	if book == nil {
		return fmt.Errorf("remove book: %w", database.ErrNotFound)
	}
	if _, ok := s.books[book.ID]; !ok {
		return fmt.Errorf("remove book %d: %w", book.ID, database.ErrNotFound)
	}
	delete(s.books, book.ID)
	for id, review := range s.reviews {
		if review.BookID == book.ID {
			delete(s.reviews, id)
		}
	}
	return nil
}

func (r *BookRepository) Update(ctx context.Context, book *entities.Book) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "update book"); err != nil {
		return err
	}

	if _, ok := s.books[book.ID]; !ok {
		return fmt.Errorf("update book %d: %w", book.ID, database.ErrNotFound)
	}
	s.books[book.ID] = bookRow(*book)
	return nil
}

// BookReviewRepository is the review view of a Store.
type BookReviewRepository struct {
	store *Store
}

func (r *BookReviewRepository) GetAll(ctx context.Context) ([]entities.BookReview, error) {
	return r.filter(ctx, "get all reviews", func(entities.BookReview) bool { return true })
}

func (r *BookReviewRepository) GetByBookID(ctx context.Context, bookID uint) ([]entities.BookReview, error) {
	return r.filter(ctx, "get reviews by book", func(review entities.BookReview) bool {
		return review.BookID == bookID
	})
}

func (r *BookReviewRepository) filter(ctx context.Context, op string, keep func(entities.BookReview) bool) ([]entities.BookReview, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx, op); err != nil {
		return nil, err
	}

	reviews := []entities.BookReview{}
	for _, id := range sortedKeys(s.reviews) {
		if review := s.reviews[id]; keep(review) {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (r *BookReviewRepository) GetByID(ctx context.Context, id uint) (*entities.BookReview, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx, "get review"); err != nil {
		return nil, err
	}

	review, ok := s.reviews[id]
	if !ok {
		return nil, nil
	}
	if book, ok := s.books[review.BookID]; ok {
		review.Book = &book
	}
	return &review, nil
}

func (r *BookReviewRepository) Exists(ctx context.Context, id uint) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx, "check review exists"); err != nil {
		return false, err
	}

	_, ok := s.reviews[id]
	return ok, nil
}

func (r *BookReviewRepository) Add(ctx context.Context, review *entities.BookReview) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "add review"); err != nil {
		return err
	}

	if _, ok := s.books[review.BookID]; !ok {
		return fmt.Errorf("add review: book %d: %w", review.BookID, database.ErrConstraintViolation)
	}
	s.lastReviewID++
	review.ID = s.lastReviewID
	review.StampReviewDate(s.now())
	s.reviews[review.ID] = reviewRow(*review)
	return nil
}

func (r *BookReviewRepository) Remove(ctx context.Context, review *entities.BookReview) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "remove review"); err != nil {
		return err
	}

	if review == nil {
		return fmt.Errorf("remove review: %w", database.ErrNotFound)
	}
	if _, ok := s.reviews[review.ID]; !ok {
		return fmt.Errorf("remove review %d: %w", review.ID, database.ErrNotFound)
	}
	delete(s.reviews, review.ID)
	return nil
}

func (r *BookReviewRepository) Update(ctx context.Context, review *entities.BookReview) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "update review"); err != nil {
		return err
	}

	existing, ok := s.reviews[review.ID]
	if !ok {
		return fmt.Errorf("update review %d: %w", review.ID, database.ErrNotFound)
	}
	if _, ok := s.books[review.BookID]; !ok {
		return fmt.Errorf("update review %d: book %d: %w", review.ID, review.BookID, database.ErrConstraintViolation)
	}
	updated := reviewRow(*review)
	if updated.ReviewDate.IsZero() {
		updated.ReviewDate = existing.ReviewDate
	}
	s.reviews[review.ID] = updated
	return nil
}
