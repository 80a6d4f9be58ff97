// Package errors provides the error taxonomy used across phishscan.
// It extends the standard errors package with a closed set of error kinds
// so that callers can map failures to user-facing messages without parsing strings.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error into one of a fixed set of categories.
type Kind int

const (
	// KindInternal is any failure that is not one of the known kinds.
	KindInternal Kind = iota

	// KindInvalidURL means the URL could not be decomposed into its parts.
	KindInvalidURL

	// KindMissingInput means no URL was submitted.
	KindMissingInput

	// KindBadScheme means the submitted URL does not start with http:// or https://.
	KindBadScheme
)

// String returns a stable identifier for the kind, used in logs and metrics labels.
func (k Kind) String() string {
	switch k {
	case KindInvalidURL:
		return "invalid_url"
	case KindMissingInput:
		return "missing_input"
	case KindBadScheme:
		return "bad_scheme"
	default:
		return "internal"
	}
}

// Message returns the user-facing message for a kind.
func (k Kind) Message() string {
	switch k {
	case KindInvalidURL:
		return "Invalid URL"
	case KindMissingInput:
		return "No URL provided"
	case KindBadScheme:
		return "URL must start with http:// or https://"
	default:
		return "internal error"
	}
}

// Sentinel errors, one per non-internal kind. Match them with Is.
var (
	ErrInvalidURL   = &Error{Kind: KindInvalidURL}
	ErrMissingInput = &Error{Kind: KindMissingInput}
	ErrBadScheme    = &Error{Kind: KindBadScheme}
)

// Error is a typed error carrying its Kind, an optional message override and cause.
type Error struct {
	Kind  Kind
	Msg   string
	Cause error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.Message()
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports a match when target is an *Error of the same kind.
// This lets errors.Is(err, ErrInvalidURL) succeed for any invalid-URL error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// UserMessage returns the message safe to show to an end user.
// The cause is omitted on purpose: it may contain parser internals.
func (e *Error) UserMessage() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.Kind.Message()
}

// NewKind creates an error of the given kind with the default message.
func NewKind(kind Kind) error {
	return &Error{Kind: kind}
}

// WithCause creates an error of the given kind wrapping cause.
// If cause is nil, the result is equivalent to NewKind(kind).
func WithCause(kind Kind, cause error) error {
	return &Error{Kind: kind, Cause: cause}
}

// KindOf returns the Kind of the first *Error in err's chain.
// Errors outside the taxonomy report KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// UserMessage returns the user-facing message for any error.
// Errors outside the taxonomy report their own text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.UserMessage()
	}
	return err.Error()
}

// HTTPStatus maps a kind to the HTTP status code the transport answers with.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindInvalidURL, KindMissingInput, KindBadScheme:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// wrappedError wraps an error with additional context
type wrappedError struct {
	msg   string
	cause error
}

func (e *wrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *wrappedError) Unwrap() error {
	return e.cause
}

// Wrap wraps an error with additional context message.
// If err is nil, Wrap returns nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{msg: msg, cause: err}
}

// Wrapf wraps an error with a formatted context message.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{msg: fmt.Sprintf(format, args...), cause: err}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// New creates a new error with the given message.
func New(msg string) error {
	return errors.New(msg)
}
