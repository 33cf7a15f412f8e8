// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup (sqlite or postgres)
//	├── migrations.go    # Versioned schema steps tracked in schema_migrations
//	├── schema.go        # The schema history of Books and BookReviews
//	├── seed.go          # Initial catalogue inserted by the migrations
//	├── errors.go        # Error classification shared by all repositories
//	├── books/           # Book CRUD operations
//	├── reviews/         # Book review CRUD operations
//	└── memory/          # In-process store with the same contracts
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection and apply pending migrations
//	db, err := database.NewDatabase(cfg.Database)
//
//	// Create domain-specific repositories
//	booksRepo := books.NewRepository(db.DB)
//	reviewsRepo := reviews.NewRepository(db.DB)
//
//	// Use repositories
//	book, err := booksRepo.GetByID(ctx, 13)
//	reviews, err := reviewsRepo.GetByBookID(ctx, 13)
//
// Every repository call runs in its own session bound to the caller's
// context and commits immediately; there are no cross-call transactions.
//
// # Errors
//
// Repository errors match one of ErrNotFound, ErrConstraintViolation or
// ErrStorageUnavailable via errors.Is when they fall in that category.
// Point lookups report a missing row as (nil, nil) rather than an error.
//
// # Interface Implementations
//
//   - books.Repository: implements http.BookRepository
//   - reviews.Repository: implements http.BookReviewRepository
//   - memory.BookRepository, memory.BookReviewRepository: the same, in memory
//
// # Changing the Schema
//
//  1. Append a Migration to the list in schema.go with a newer Version
//  2. Describe the tables with snapshot structs local to that step
//  3. Provide a Down that undoes exactly what Up did
//  4. Update the entities in internal/entities to match
package database
