package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookreviews/internal/database"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // additional context (validation errors, etc.)
}

const (
	CodeInvalidRequest      = "invalid_request"
	CodeValidationFailed    = "validation_failed"
	CodeIDMismatch          = "id_mismatch"
	CodeNotFound            = "not_found"
	CodeConstraintViolation = "constraint_violation"
	CodeStorageUnavailable  = "storage_unavailable"
	CodeInternal            = "internal_error"
)

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Code: code})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found", Code: CodeNotFound})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	respondServerError(c, err, context, "internal server error", CodeInternal)
}

func respondServerError(c *gin.Context, err error, context, message, code string) {
	log.Printf("Internal error (%s) [request %s]: %v", context, RequestID(c), err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message, Code: code})
}

// respondStorageError maps a repository error to a response. Absent rows
// become 404; everything else is a server-side failure.
func respondStorageError(c *gin.Context, err error, resource, context string) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		respondNotFound(c, resource)
	case errors.Is(err, database.ErrConstraintViolation):
		respondServerError(c, err, context, "constraint violation", CodeConstraintViolation)
	case errors.Is(err, database.ErrStorageUnavailable):
		respondServerError(c, err, context, "storage unavailable", CodeStorageUnavailable)
	default:
		respondInternalError(c, err, context)
	}
}

// --- Success Response Helpers ---

// respondCreated sends a 201 Created response with data and its location.
func respondCreated(c *gin.Context, location string, data any) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, data)
}

// respondNoContent sends a bodyless 204 No Content response.
func respondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, CodeInvalidRequest, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}
