// Package apierror defines the failures the API reports to clients and the
// translation of arbitrary errors into them.
//
// Every failure renders as
//
//	{"error": {"message": "...", "details": ["..."]}}
//
// with the HTTP status determined by its Kind.
package apierror

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"gorm.io/gorm"
)

// Kind discriminates the failure variants.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindDatabase
	// KindMethodNotAllowed is raised by the router, never by the services.
	KindMethodNotAllowed
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindMethodNotAllowed:
		return "method_not_allowed"
	default:
		return "database"
	}
}

// StatusCode returns the HTTP status for the kind.
func (k Kind) StatusCode() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

const fallbackDetail = "An unexpected error occurred"

// Error is a classified failure with a human message and ordered details.
type Error struct {
	Kind    Kind
	Message string
	Details []string
}

func (e *Error) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status for the failure.
func (e *Error) StatusCode() int {
	return e.Kind.StatusCode()
}

type body struct {
	Error payload `json:"error"`
}

type payload struct {
	Message string   `json:"message"`
	Details []string `json:"details"`
}

// MarshalJSON renders the client-facing shape. Details are never empty.
func (e *Error) MarshalJSON() ([]byte, error) {
	details := e.Details
	if len(details) == 0 {
		details = []string{fallbackDetail}
	}
	return json.Marshal(body{Error: payload{Message: e.Message, Details: details}})
}

func newError(kind Kind, message, fallback string, details []string) *Error {
	if message == "" {
		message = fallback
	}
	return &Error{Kind: kind, Message: message, Details: append([]string(nil), details...)}
}

// Validation reports malformed input (400).
func Validation(message string, details ...string) *Error {
	return newError(KindValidation, message, "Validation failed", details)
}

// NotFound reports a missing resource (404).
func NotFound(message string, details ...string) *Error {
	return newError(KindNotFound, message, "Resource not found", details)
}

// Database reports a failure below the validation layer (500).
func Database(message string, details ...string) *Error {
	return newError(KindDatabase, message, "Database error occurred", details)
}

// MethodNotAllowed reports a known path requested with an unsupported
// method (405).
func MethodNotAllowed(message string, details ...string) *Error {
	return newError(KindMethodNotAllowed, message, "Method not allowed", details)
}

// Parse reports a request body that is not valid JSON. It is a validation
// failure.
func Parse() *Error {
	return Validation("Invalid JSON in request body", "Request body must be valid JSON")
}

// Translate classifies any error into a failure. Failures pass through
// unchanged, constraint violations raised by the store become validation
// failures, and anything else is a database failure carrying the original
// message.
func Translate(err error) *Error {
	if err == nil {
		return nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Validation("Validation failed", "A record with the same unique value already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return Validation("Foreign key constraint failed", "Invalid reference to related resource")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound("Resource not found", err.Error())
	case isConnectionError(err):
		return Database("Database connection failed", "Unable to connect to the database")
	}

	return Database("Internal server error", err.Error())
}

func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
