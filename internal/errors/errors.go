// Package errors classifies failures surfaced to site visitors. Validation
// failures carry a message meant for the visitor, configuration failures a
// message meant for the operator, and everything else is reported with a
// generic message so internal detail never leaves the server.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the category of an error
type Kind int

const (
	// KindInternal covers unexpected and infrastructure failures
	KindInternal Kind = iota
	// KindValidation covers bad client input
	KindValidation
	// KindConfiguration covers missing or invalid server configuration
	KindConfiguration
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConfiguration:
		return "configuration"
	default:
		return "internal"
	}
}

// GenericMessage is reported for internal failures
const GenericMessage = "Failed to send message. Please try again."

// Error is a classified error
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same kind with no message, or an identical one
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && (t.Message == "" || t.Message == e.Message)
}

// Sentinels for errors.Is checks by kind
var (
	ErrValidation    = &Error{Kind: KindValidation}
	ErrConfiguration = &Error{Kind: KindConfiguration}
	ErrInternal      = &Error{Kind: KindInternal}
)

// Validation creates a client input error
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Configuration creates a server configuration error
func Configuration(message string) *Error {
	return &Error{Kind: KindConfiguration, Message: message}
}

// Internal wraps an unexpected failure
func Internal(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: message, Cause: cause}
}

// KindOf returns the kind of err. Unclassified errors are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus maps err to a response status code
func HTTPStatus(err error) int {
	if KindOf(err) == KindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// PublicMessage returns the text that may be shown to the caller
func PublicMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) || e.Kind == KindInternal {
		return GenericMessage
	}
	return e.Message
}
