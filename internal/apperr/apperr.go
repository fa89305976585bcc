// Package apperr defines the error type shared across hardmode packages
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error by how the session core treats it.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation errors are rejected before any state is mutated.
	KindValidation
	// KindPersistence errors leave the in-memory state authoritative.
	KindPersistence
	// KindRemoteSync errors are reported once and never retried.
	KindRemoteSync
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindPersistence:
		return "persistence"
	case KindRemoteSync:
		return "remote sync"
	default:
		return "unknown"
	}
}

// Error is a templated application error. Package-level values act as
// sentinels; Fmt and Wrap return copies that still match the sentinel with
// errors.Is.
type Error struct {
	Cause   error
	Message string
	tmpl    string
	Kind    Kind
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target was created from the same template.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.template() == t.template()
}

func (e *Error) template() string {
	if e.tmpl != "" {
		return e.tmpl
	}

	return e.Message
}

// Fmt formats the message template with the provided arguments.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.template(), args...),
		tmpl:    e.template(),
		Kind:    e.Kind,
		Cause:   e.Cause,
	}
}

// Wrap attaches an underlying cause to the error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		tmpl:    e.template(),
		Kind:    e.Kind,
		Cause:   err,
	}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindUnknown
}
