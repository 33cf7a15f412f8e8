package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "X-Request-Id"

	// ContextKeyRequestID is the Gin context key holding the request id.
	ContextKeyRequestID = "request_id"

	maxRequestIDLength = 128
)

// RequestIDMiddleware reuses the caller's X-Request-Id or generates a new
// one, stores it in the Gin context and echoes it on the response.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		c.Set(ContextKeyRequestID, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestID returns the id assigned by RequestIDMiddleware, or "" outside of it.
func RequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}

// SecurityHeadersMiddleware adds security headers to all responses. The API
// serves only JSON and YAML, so the content policy forbids everything else.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent clickjacking
		c.Header("X-Frame-Options", "DENY")

		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		c.Header("Referrer-Policy", "no-referrer")
		c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		c.Header("Cache-Control", "no-store")

		c.Next()
	}
}
