// Package usecase implements the business logic for the account feature.
package usecase

import (
	"fmt"

	"storefront_backend/internal/shared/apperr"
)

var (
	// ErrMissingFields is returned when a required field is empty.
	ErrMissingFields = fmt.Errorf("%w: missing required fields", apperr.ErrValidation)

	// ErrMissingUserID is returned when an operation needs a user id and got none.
	ErrMissingUserID = fmt.Errorf("%w: missing user id", apperr.ErrValidation)

	// ErrMissingPhoto is returned when a photo upload carries no file.
	ErrMissingPhoto = fmt.Errorf("%w: missing photo file", apperr.ErrValidation)

	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = fmt.Errorf("%w: user not found", apperr.ErrNotFound)

	// ErrEmailAlreadyExists is returned when attempting to register an email that already exists.
	ErrEmailAlreadyExists = fmt.Errorf("%w: email already registered", apperr.ErrConflict)

	// ErrInvalidPassword is returned when the password does not match the stored digest.
	ErrInvalidPassword = fmt.Errorf("%w: invalid password", apperr.ErrUnauthorized)

	// ErrTooManyAttempts is returned while an email is locked out after repeated failures.
	ErrTooManyAttempts = fmt.Errorf("%w: too many failed logins", apperr.ErrTooManyAttempts)
)

// ErrPasswordTooLong is returned when the password exceeds what bcrypt can digest (72 bytes).
var ErrPasswordTooLong = fmt.Errorf("%w: password too long", apperr.ErrValidation)
