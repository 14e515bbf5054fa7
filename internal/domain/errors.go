package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain error for boundary translation. The HTTP
// layer maps kinds to status codes; services and repositories only deal in
// kinds.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

// Error is a tagged, operational domain error. Message is safe to return to
// clients; Err optionally wraps the underlying cause.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of err, or KindInternal if err carries no kind.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

func newErrorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func BadRequestf(format string, args ...any) *Error {
	return newErrorf(KindBadRequest, format, args...)
}

func Unauthorizedf(format string, args ...any) *Error {
	return newErrorf(KindUnauthorized, format, args...)
}

func Forbiddenf(format string, args ...any) *Error {
	return newErrorf(KindForbidden, format, args...)
}

func NotFoundf(format string, args ...any) *Error {
	return newErrorf(KindNotFound, format, args...)
}

func Conflictf(format string, args ...any) *Error {
	return newErrorf(KindConflict, format, args...)
}

// WrapInternal wraps an unclassified failure. The message is what clients may
// see; the cause stays server-side.
func WrapInternal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}
