// Package errors contains helper functions and types to work with errors
package errors

import (
	"errors"
	"net/http"
)

// Category defines error category
type Category int

const (
	// CategoryNoError is for request tracking, in case an internal call returns no error.
	CategoryNoError Category = iota
	// CategoryDataError The client sent malformed or invalid parameters.
	CategoryDataError
	// CategoryUnauthorized The request carries no verifiable signer.
	CategoryUnauthorized
	// CategoryForbidden The signer is known but lacks the role or ownership required.
	CategoryForbidden
	// CategoryResourceNotFound The house, campaign or player record does not exist.
	CategoryResourceNotFound
	// CategoryDataConflict The request clashes with the current lifecycle state,
	// for example ending a game that was never started.
	CategoryDataConflict
	// CategoryUnprocessable The request is well formed but violates an economic rule,
	// for example insufficient funds or an exhausted reward pool
	CategoryUnprocessable
	// CategoryDependencyFailure A dependency such as the database is failing.
	// Every category from here on is internal.
	CategoryDependencyFailure
	// CategoryGeneralError The service failed in an unexpected way
	CategoryGeneralError
)

var categories = map[Category]struct {
	name   string
	status int
}{
	CategoryDataError:         {"CategoryDataError", http.StatusBadRequest},
	CategoryUnauthorized:      {"CategoryUnauthorized", http.StatusUnauthorized},
	CategoryForbidden:         {"CategoryForbidden", http.StatusForbidden},
	CategoryResourceNotFound:  {"CategoryResourceNotFound", http.StatusNotFound},
	CategoryDataConflict:      {"CategoryDataConflict", http.StatusConflict},
	CategoryUnprocessable:     {"CategoryUnprocessable", http.StatusUnprocessableEntity},
	CategoryDependencyFailure: {"CategoryDependencyFailure", http.StatusBadGateway},
}

func (c Category) String() string {
	if meta, ok := categories[c]; ok {
		return meta.name
	}
	return "CategoryGeneralError"
}

// ServiceError represents service specific type that
// is used all over the services.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

// Error method to comply with error interface
func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err ServiceError) Unwrap() error {
	return err.Err
}

// Is matches a target whose text equals the client-facing message, so a
// domain sentinel compares equal to the ServiceError built from it.
func (err ServiceError) Is(target error) bool {
	return err.Message == target.Error()
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	if meta, ok := categories[err.Category]; ok {
		return meta.status
	}
	return http.StatusInternalServerError
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Category == cat
}

// IsInternalError reports whether err should be logged as a server fault.
// Errors that are not ServiceErrors count as internal.
func IsInternalError(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Category < CategoryDependencyFailure {
		return false
	}
	return true
}

func newError(cat Category, err error, fallback, message string) error {
	if err == nil {
		err = errors.New(fallback)
	}
	return &ServiceError{Category: cat, Message: message, Err: err}
}

// GeneralError returns a general service error.
// The client sees "Internal Server Error"; err is only logged.
func GeneralError(err error) error {
	return newError(CategoryGeneralError, err, "internal server error", "Internal Server Error")
}

// ResourceNotFoundError returns an error with category ResourceNotFound.
// The message is returned to the client and err is logged.
func ResourceNotFoundError(err error, message string) error {
	return newError(CategoryResourceNotFound, err, "resource not found: "+message, message)
}

// BadRequestError returns an error with category DataError
func BadRequestError(err error, message string) error {
	return newError(CategoryDataError, err, "bad request: "+message, message)
}

// ForbiddenError returns an error with category CategoryForbidden
func ForbiddenError(err error, message string) error {
	return newError(CategoryForbidden, err, "request forbidden", message)
}

// UnAuthorizedError returns an error with category CategoryUnauthorized
func UnAuthorizedError(err error, message string) error {
	return newError(CategoryUnauthorized, err, "unauthorized", message)
}

// ConflictError returns an error with category CategoryDataConflict
func ConflictError(err error, message string) error {
	return newError(CategoryDataConflict, err, "conflict", message)
}

// UnprocessableError returns an error with category CategoryUnprocessable
func UnprocessableError(err error, message string) error {
	return newError(CategoryUnprocessable, err, "unprocessable", message)
}
