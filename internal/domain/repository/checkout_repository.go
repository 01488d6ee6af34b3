package repository

import (
	"context"
	"errors"

	"orda/internal/domain/entity"
)

// ErrCheckoutNotFound is returned when no checkout matches the reference.
var ErrCheckoutNotFound = errors.New("checkout not found")

// CheckoutRepository persists online payment attempts keyed by reference.
type CheckoutRepository interface {
	Create(ctx context.Context, checkout *entity.Checkout) error

	FindByReference(ctx context.Context, reference string) (*entity.Checkout, error)

	// UpdateOutcome records the terminal status and processor transaction
	// reference for a checkout.
	UpdateOutcome(ctx context.Context, reference string, status entity.CheckoutStatus, transactionRef string) error
}
