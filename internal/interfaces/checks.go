package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookreviews/internal/database/books"
	"github.com/mrlokans/bookreviews/internal/database/memory"
	"github.com/mrlokans/bookreviews/internal/database/reviews"
	"github.com/mrlokans/bookreviews/internal/http"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// BookRepository implementations
var _ http.BookRepository = (*books.Repository)(nil)
var _ http.BookRepository = (*memory.BookRepository)(nil)

// BookReviewRepository implementations
var _ http.BookReviewRepository = (*reviews.Repository)(nil)
var _ http.BookReviewRepository = (*memory.BookReviewRepository)(nil)
