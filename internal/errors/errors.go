// Package errors defines the service error taxonomy shared by every transport.
package errors

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Kind classifies a failure the way clients see it.
type Kind uint8

const (
	StorageFailure Kind = iota
	InvalidValue
	AlreadyExists
	NotFound
	InvalidTransition
)

func (k Kind) String() string {
	switch k {
	case InvalidValue:
		return "invalid_value"
	case AlreadyExists:
		return "already_exists"
	case NotFound:
		return "not_found"
	case InvalidTransition:
		return "invalid_transition"
	default:
		return "storage_failure"
	}
}

// Error carries a Kind, a client-facing message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the bare sentinels below by Kind, so errors.Is(err, ErrNotFound) works
// for any NotFound error regardless of its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Err == nil && t.Kind == e.Kind
}

var (
	ErrInvalidValue      = &Error{Kind: InvalidValue}
	ErrAlreadyExists     = &Error{Kind: AlreadyExists}
	ErrNotFound          = &Error{Kind: NotFound}
	ErrInvalidTransition = &Error{Kind: InvalidTransition}
	ErrStorage           = &Error{Kind: StorageFailure}
)

func Invalid(format string, args ...any) error {
	return &Error{Kind: InvalidValue, Message: fmt.Sprintf(format, args...)}
}

func Exists(format string, args ...any) error {
	return &Error{Kind: AlreadyExists, Message: fmt.Sprintf(format, args...)}
}

func Missing(format string, args ...any) error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

func Transition(format string, args ...any) error {
	return &Error{Kind: InvalidTransition, Message: fmt.Sprintf(format, args...)}
}

// Storage wraps an infrastructure error. The cause is logged, never shown to clients.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Kind: StorageFailure, Message: "internal storage error", Err: err}
}

// KindOf resolves the Kind of any error, translating gorm sentinels on the way.
func KindOf(err error) Kind {
	var e *Error
	switch {
	case errors.As(err, &e):
		return e.Kind
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return AlreadyExists
	default:
		return StorageFailure
	}
}

// Message returns the text safe to hand to a client.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != StorageFailure {
		if e.Message != "" {
			return e.Message
		}
		return e.Kind.String()
	}
	switch KindOf(err) {
	case NotFound:
		return "record not found"
	case AlreadyExists:
		return "record already exists"
	}
	return "internal storage error"
}
