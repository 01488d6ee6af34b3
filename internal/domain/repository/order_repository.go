package repository

import (
	"context"
	"errors"

	"orda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when no order matches the given ID.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines persistence for placed orders.
type OrderRepository interface {
	// Create inserts a single order row; the backend assigns ID and timestamp.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves one order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByCustomer returns the customer's orders, newest first.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// CancelPending flips a pending order owned by the customer to cancelled.
	// The pending filter is part of the statement so a concurrent status
	// change loses cleanly; returns false when no row was updated.
	CancelPending(ctx context.Context, customerID, orderID uuid.UUID) (bool, error)
}
