package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation          ErrorType = "VALIDATION_ERROR"
	ErrorTypeUnauthorized        ErrorType = "UNAUTHORIZED"
	ErrorTypeForbidden           ErrorType = "FORBIDDEN"
	ErrorTypeNotFound            ErrorType = "NOT_FOUND"
	ErrorTypeNotConfigured       ErrorType = "NOT_CONFIGURED"
	ErrorTypeUpstream            ErrorType = "UPSTREAM_ERROR"
	ErrorTypeInternalServerError ErrorType = "INTERNAL_SERVER_ERROR"
)

// CustomError represents a custom error with associated HTTP status code and type
type CustomError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Internal   error
}

// Error implements the error interface
func (e *CustomError) Error() string {
	return e.Message
}

func newError(errType ErrorType, message string, statusCode int, internal error) *CustomError {
	return &CustomError{
		Type:       errType,
		Message:    message,
		StatusCode: statusCode,
		Internal:   internal,
	}
}

// NewValidationError rejects bad input before any store or network call
func NewValidationError(message string) *CustomError {
	return newError(ErrorTypeValidation, message, http.StatusBadRequest, nil)
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError() *CustomError {
	return newError(ErrorTypeUnauthorized, "Unauthorized access", http.StatusUnauthorized, nil)
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError() *CustomError {
	return newError(ErrorTypeForbidden, "Access forbidden", http.StatusForbidden, nil)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *CustomError {
	return newError(ErrorTypeNotFound, message, http.StatusNotFound, nil)
}

// NewNotConfiguredError signals a missing credential or setting. Fatal to the
// requested operation only, never to the process.
func NewNotConfiguredError(message string) *CustomError {
	return newError(ErrorTypeNotConfigured, message, http.StatusServiceUnavailable, nil)
}

// NewUpstreamError wraps a non-success response from an external API
func NewUpstreamError(message string, internal error) *CustomError {
	return newError(ErrorTypeUpstream, message, http.StatusBadGateway, internal)
}

// NewInternalError creates a new internal server error
func NewInternalError(internal error) *CustomError {
	return newError(ErrorTypeInternalServerError, "An unexpected error occurred", http.StatusInternalServerError, internal)
}

// HandleError handles the custom error and sends an appropriate JSON response.
// This is the single point where an error becomes a user-visible message; every
// layer below propagates errors upward unchanged.
func HandleError(c *gin.Context, err error) {
	var customErr *CustomError
	var ok bool

	if customErr, ok = err.(*CustomError); !ok {
		customErr = NewInternalError(err)
	}

	if customErr.Type == ErrorTypeInternalServerError || customErr.Type == ErrorTypeUpstream {
		log.Error().
			Err(customErr.Internal).
			Str("url", c.Request.URL.String()).
			Str("type", string(customErr.Type)).
			Msg("Request failed")
	}

	c.JSON(customErr.StatusCode, gin.H{
		"error": gin.H{
			"type":    customErr.Type,
			"message": customErr.Message,
		},
	})
}
