// Package apperr defines the domain failure taxonomy shared by services
// and handlers. Services raise these at the point of detection; the HTTP
// layer performs the one translation to a status code.
package apperr

import "fmt"

// Code is the stable machine-readable error code exposed to clients.
type Code string

const (
	CodeNotFound         Code = "RESOURCE_NOT_FOUND"
	CodeDuplicate        Code = "DUPLICATE_RESOURCE"
	CodeRestaurantClosed Code = "RESTAURANT_CLOSED"
	CodeValidation       Code = "VALIDATION_ERROR"
	CodeInternal         Code = "INTERNAL_SERVER_ERROR"
)

type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func Duplicate(format string, args ...any) *Error {
	return &Error{Code: CodeDuplicate, Message: fmt.Sprintf(format, args...)}
}

func RestaurantClosed(message string) *Error {
	return &Error{Code: CodeRestaurantClosed, Message: message}
}

func Validation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

func Internal(err error) *Error {
	return &Error{Code: CodeInternal, Message: "An unexpected error occurred: " + err.Error()}
}
