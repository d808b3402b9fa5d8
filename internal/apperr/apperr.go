package apperr

import "fmt"

// Kind classifies an error for the API boundary.
type Kind int

const (
	// Internal is the default kind; its message is never shown to clients.
	Internal Kind = iota
	// Validation means required input was missing or malformed.
	Validation
	// Conflict means the operation would violate a uniqueness constraint.
	Conflict
	// Authentication means credential verification failed.
	Authentication
	// Unauthorized means the operation requires an authenticated session.
	Unauthorized
	// NotFound means a lookup by id found nothing.
	NotFound
)

// Error carries a kind tag and a message safe to show to clients.
// Internal errors keep their cause in Err and collapse to a generic
// message at the boundary.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ClientVisible reports whether the error's message may be surfaced verbatim.
func (e *Error) ClientVisible() bool {
	switch e.Kind {
	case Validation, Conflict, Authentication, Unauthorized:
		return true
	}
	return false
}

// New creates a tagged error with a client-safe message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap tags an underlying error without exposing it to clients.
func Wrap(message string, err error) *Error {
	return &Error{Kind: Internal, Message: message, Err: err}
}

// KindOf returns the kind of err if it is an *Error, Internal otherwise.
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return Internal
}
