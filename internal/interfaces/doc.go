// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - BookRepository: Book CRUD (internal/http/books.go)
//   - BookReviewRepository: Review CRUD plus lookup by book and existence
//     probe (internal/http/book_reviews.go)
//
// Both are defined next to the controllers that consume them. Implementations
// live under internal/database:
//
//   - books.Repository and reviews.Repository (gorm, sqlite or postgres)
//   - memory.BookRepository and memory.BookReviewRepository (in-process)
//
// # Repository Conventions
//
//   - Every method takes the request context and commits immediately.
//   - GetByID returns (nil, nil) for a missing row.
//   - Add ignores the caller's ID and sets the generated one.
//   - Remove and Update return an error matching database.ErrNotFound when
//     the row does not exist; Update never inserts.
//   - Storage failures match database.ErrConstraintViolation or
//     database.ErrStorageUnavailable.
//
// # Adding a New Implementation
//
//  1. Implement the interface methods following the conventions above
//  2. Add a compile-time check to checks.go
//  3. Pass it through http.RouterConfig
package interfaces
