// Package usecase implements the business logic for the orders feature.
package usecase

import (
	"fmt"

	"storefront_backend/internal/shared/apperr"
)

var (
	// ErrEmptyOrder is returned when the user id is missing or there are no items.
	ErrEmptyOrder = fmt.Errorf("%w: empty order", apperr.ErrValidation)

	// ErrInvalidItem is returned for an item without product id or with a quantity below 1.
	ErrInvalidItem = fmt.Errorf("%w: invalid order item", apperr.ErrValidation)

	// ErrInvalidPrice is returned for a negative unit price or one with more than two decimals.
	ErrInvalidPrice = fmt.Errorf("%w: invalid price", apperr.ErrValidation)

	// ErrUnknownProduct is returned when pricing from the catalog and an item is not in it.
	ErrUnknownProduct = fmt.Errorf("%w: unknown product", apperr.ErrValidation)

	// ErrMissingUserID is returned when reading history without a user id.
	ErrMissingUserID = fmt.Errorf("%w: missing user id", apperr.ErrValidation)
)
