// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"orda/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// PlaceOrderInput defines the data required to place an order paid on arrival.
type PlaceOrderInput struct {
	ItemType entity.ItemType
	ItemID   int64
	Quantity int
}

// --- Output DTOs ---

// PlaceOrderOutput returns the recorded order.
type PlaceOrderOutput struct {
	Order *entity.Order
}

// OrderUsecase defines the interface for order composition and history operations.
type OrderUsecase interface {
	// PlaceOrder records a pay-on-arrival order for the customer.
	PlaceOrder(ctx context.Context, customerID uuid.UUID, input *PlaceOrderInput) (*PlaceOrderOutput, error)

	// ListOrders returns the customer's order history, newest first.
	ListOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// CancelOrder cancels a pending order owned by the customer.
	CancelOrder(ctx context.Context, customerID, orderID uuid.UUID) error
}
