package apierrors

import (
	"fmt"
	"net/http"
)

// Kind classifies an application error into the service's taxonomy.
type Kind string

const (
	KindValidation   Kind = "ValidationError"
	KindNotFound     Kind = "NotFoundError"
	KindInvalidState Kind = "InvalidStateError"
	KindStorage      Kind = "StorageError"
)

// Error represents an application error with its HTTP mapping.
type Error struct {
	Kind    Kind   `json:"kind"`
	Code    int    `json:"code"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports missing or malformed required input (400).
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Code: http.StatusBadRequest, Message: message}
}

// NotFound reports a referenced entity that does not exist (404).
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Code: http.StatusNotFound, Message: message}
}

// InvalidState reports an operation not legal in the entity's current
// lifecycle state (400).
func InvalidState(message string) *Error {
	return &Error{Kind: KindInvalidState, Code: http.StatusBadRequest, Message: message}
}

// Storage reports a persistence failure (500). The driver message is passed
// through verbatim.
func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Code: http.StatusInternalServerError, Message: err.Error(), Err: err}
}
