package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorOnce sync.Once

// registerValidator makes field errors report JSON names (reviewerName)
// instead of Go names (ReviewerName).
func registerValidator() {
	registerValidatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
	})
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// bindJSON decodes and validates the request body into obj. On failure it
// writes a 400 response with per-field messages and returns false.
func bindJSON(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Code:    CodeValidationFailed,
			Details: fieldErrors(validationErrs),
		})
	case errors.Is(err, io.EOF):
		respondBadRequest(c, CodeInvalidRequest, "request body is required")
	default:
		respondBadRequest(c, CodeInvalidRequest, "invalid request body: "+err.Error())
	}
	return false
}

func fieldErrors(errs validator.ValidationErrors) map[string]string {
	details := make(map[string]string, len(errs))
	for _, fe := range errs {
		details[fe.Field()] = fieldMessage(fe)
	}
	return details
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	}
	return "is invalid"
}
