// Package apperr defines the error kinds shared by every feature.
//
// Feature packages declare their own sentinel errors and wrap one of these
// kinds, so the transport layer can pick a status code with errors.Is
// without knowing every feature sentinel.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation marks missing or malformed input.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a lookup that matched nothing.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized marks a credential mismatch.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict marks a violated uniqueness constraint.
	ErrConflict = errors.New("conflict")

	// ErrTooManyAttempts marks a throttled caller.
	ErrTooManyAttempts = errors.New("too many attempts")
)

// HTTPStatus maps an error to the status code the API answers with.
// Conflicts are reported as 400 to keep the public contract of the storefront.
// Anything that is not a known kind is a store or runtime failure.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation), errors.Is(err, ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrTooManyAttempts):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
