// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"orda/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// InitiateCheckoutInput defines the data required to start an online payment.
type InitiateCheckoutInput struct {
	ItemType entity.ItemType
	ItemID   int64
	Quantity int
}

// --- Output DTOs ---

// InitiateCheckoutOutput returns the processor handoff for the hosted
// checkout page, plus a QR rendering of the authorization URL.
type InitiateCheckoutOutput struct {
	Reference        string
	AuthorizationURL string
	AccessCode       string
	AmountMinor      int64
	Currency         string
	QRCode           []byte
}

// ResolveCheckoutOutput reports the recorded outcome of a checkout.
type ResolveCheckoutOutput struct {
	Checkout *entity.Checkout
	Order    *entity.Order
}

// CheckoutUsecase defines the interface for the online payment workflow.
type CheckoutUsecase interface {
	// InitiateCheckout snapshots the order details, opens a transaction with
	// the payment processor, and returns the handoff data.
	InitiateCheckout(ctx context.Context, customerID uuid.UUID, input *InitiateCheckoutInput) (*InitiateCheckoutOutput, error)

	// ResolveCheckout verifies the transaction with the processor and, on
	// success, records the order. Resolving an already-terminal checkout
	// returns the recorded outcome without contacting the processor again.
	ResolveCheckout(ctx context.Context, reference string) (*ResolveCheckoutOutput, error)

	// GetCheckout returns the current state of a checkout owned by the customer.
	GetCheckout(ctx context.Context, customerID uuid.UUID, reference string) (*entity.Checkout, error)
}
