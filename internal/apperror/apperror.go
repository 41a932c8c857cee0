// Package apperror categorizes failures that reach the HTTP boundary.
package apperror

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindInvalidFileType   Kind = "invalid_file_type"
	KindMissingFile       Kind = "missing_file"
	KindFileTooLarge      Kind = "file_too_large"
	KindExtractionFailure Kind = "extraction_failure"
	KindStorageFailure    Kind = "storage_failure"
	KindNetworkFailure    Kind = "network_failure"
	KindNotFound          Kind = "not_found"
	KindValidation        Kind = "validation"
)

// Error carries a user-facing message. Err holds the cause for logs only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Status() int {
	return StatusOf(e.Kind)
}

func StatusOf(kind Kind) int {
	switch kind {
	case KindInvalidFileType, KindMissingFile, KindValidation:
		return http.StatusBadRequest
	case KindFileTooLarge:
		return http.StatusRequestEntityTooLarge
	case KindExtractionFailure:
		return http.StatusUnprocessableEntity
	case KindNetworkFailure:
		return http.StatusBadGateway
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// As returns the *Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}
