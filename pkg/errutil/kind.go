package errutil

import (
	"errors"
	"net/http"
)

// Kind classifies an error for callers and for the HTTP layer. Every error
// that crosses a service boundary carries exactly one kind.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindTransition    Kind = "transition"
	KindAuthorization Kind = "authorization"
	KindNotFound      Kind = "not_found"
	KindConflict      Kind = "conflict"
	KindPersistence   Kind = "persistence"
	KindInternal      Kind = "internal"
)

func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindTransition:
		return http.StatusUnprocessableEntity
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// KindOf extracts the kind from an error chain. Returns "" for nil and
// KindInternal for errors that were not built by this package.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var be BaseError
	if errors.As(err, &be) {
		return be.Code
	}
	return KindInternal
}
