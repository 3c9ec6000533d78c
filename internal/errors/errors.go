// Package errors defines typed errors with categories for user-friendly reporting.
// Every failure that crosses the session boundary is reduced to one of a few
// kinds with a single human-readable message, while the underlying cause stays
// reachable through Unwrap for verbose diagnostics.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// AuthFailed indicates a login attempt did not produce a stored session.
	AuthFailed Kind = "auth_failed"
	// RegistrationFailed indicates account creation or the follow-up login failed.
	RegistrationFailed Kind = "registration_failed"
	// StorageFailed indicates the token store could not be read or written.
	StorageFailed Kind = "storage_failed"
	// NotAuthenticated indicates an operation needed a session and none exists.
	NotAuthenticated Kind = "not_authenticated"
)

// User-facing messages. These are the only two strings surfaced on auth failures.
const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgRegistrationFailed = "Registration failed"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the kind of the outermost *E in err's chain, or "" when there is none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Message returns the human-friendly message of the outermost *E in err's chain.
// Errors without a kind fall back to err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *E
	if stderrors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
