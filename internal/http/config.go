package http

import (
	"github.com/mrlokans/bookreviews/internal/database"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Repositories
	Books   BookRepository
	Reviews BookReviewRepository

	// Database backs the health check; nil reports "not configured".
	Database *database.Database

	// ServeAPIDocs exposes the OpenAPI document under /swagger.
	ServeAPIDocs bool

	// Application info
	Version string
}
