// Package apperr holds the closed set of failure kinds that cross the
// use-case boundary. Each kind carries a status classification for the
// transport layer; anything outside the set is treated as opaque.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
)

type Error struct {
	Kind    Kind
	Message string
	Status  int
}

func (e *Error) Error() string {
	return e.Message
}

// Validation signals an input or state-invariant violation.
func Validation(msg string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// NotFound signals that a referenced entity does not exist.
func NotFound(msg string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: msg,
		Status:  http.StatusNotFound,
	}
}

// From extracts an application error from err, unwrapping as needed.
func From(err error) (*Error, bool) {
	var ae *Error

	if errors.As(err, &ae) {
		return ae, true
	}

	return nil, false
}

func IsValidation(err error) bool {
	ae, ok := From(err)
	return ok && ae.Kind == KindValidation
}

func IsNotFound(err error) bool {
	ae, ok := From(err)
	return ok && ae.Kind == KindNotFound
}
