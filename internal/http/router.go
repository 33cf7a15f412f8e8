package http

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())

	// Apply security headers to all responses
	router.Use(SecurityHeadersMiddleware())

	health := NewHealthController(cfg.Database, cfg.Version)
	booksController := NewBooksController(cfg.Books)
	reviewsController := NewBookReviewsController(cfg.Reviews)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", Ping)

	if cfg.ServeAPIDocs {
		router.GET("/swagger/openapi.yaml", func(c *gin.Context) {
			c.Data(http.StatusOK, "application/yaml", openAPIDocument)
		})
	}

	api := router.Group("/api")

	// Books API endpoints
	api.GET("/books", booksController.GetBooks)
	api.GET("/books/:id", booksController.GetBook)
	api.POST("/books", booksController.CreateBook)
	api.PUT("/books/:id", booksController.UpdateBook)
	api.DELETE("/books/:id", booksController.DeleteBook)

	// Book reviews API endpoints
	api.GET("/bookreviews", reviewsController.GetReviews)
	api.GET("/bookreviews/:id", reviewsController.GetReview)
	api.GET("/bookreviews/book/:bookId", reviewsController.GetReviewsByBook)
	api.POST("/bookreviews", reviewsController.CreateReview)
	api.PUT("/bookreviews/:id", reviewsController.UpdateReview)
	api.DELETE("/bookreviews/:id", reviewsController.DeleteReview)

	return router
}
