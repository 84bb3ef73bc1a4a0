// internal/app/system/apperrors/apperrors.go

// Package apperrors defines the request-level error taxonomy for the API.
//
// Handlers return one of these errors and the httpjson package maps it to
// the right HTTP status and the standard {success:false, message} envelope:
//
//	Validation     -> 400
//	Conflict       -> 400
//	Authentication -> 401
//	NotFound       -> 404
//	Storage        -> 500
//
// Every failure is request-local; there is no retry or compensation layer.
package apperrors

import (
	"errors"
	"net/http"
)

// Kind classifies an Error for status-code mapping.
type Kind int

const (
	KindValidation Kind = iota
	KindAuthentication
	KindNotFound
	KindConflict
	KindStorage
)

// Error is a request-scoped failure with a client-facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error // underlying cause, not exposed to clients
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status returns the HTTP status code for the error kind.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Validation reports missing or malformed required input.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Authentication reports a credential mismatch.
func Authentication(msg string) *Error {
	return &Error{Kind: KindAuthentication, Message: msg}
}

// NotFound reports that no matching entity exists.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Conflict reports a duplicate where the operation requires absence.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// Storage wraps an underlying store failure with a component-specific
// client-facing message.
func Storage(msg string, err error) *Error {
	return &Error{Kind: KindStorage, Message: msg, Err: err}
}

// From extracts an *Error from err, or wraps err as a storage failure with
// the given fallback message.
func From(err error, fallback string) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Storage(fallback, err)
}
