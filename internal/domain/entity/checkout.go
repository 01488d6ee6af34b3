package entity

import (
	"time"

	"github.com/google/uuid"
)

// CheckoutStatus is the lifecycle state of one checkout attempt.
type CheckoutStatus string

const (
	// CheckoutStatusInitiated means the transaction was opened with the
	// processor and awaits resolution.
	CheckoutStatusInitiated CheckoutStatus = "initiated"
	CheckoutStatusSucceeded CheckoutStatus = "succeeded"
	CheckoutStatusCancelled CheckoutStatus = "cancelled"
	CheckoutStatusFailed    CheckoutStatus = "failed"
)

// Terminal reports whether the checkout has reached one of its three
// observable outcomes.
func (s CheckoutStatus) Terminal() bool {
	return s == CheckoutStatusSucceeded || s == CheckoutStatusCancelled || s == CheckoutStatusFailed
}

// Checkout is one online payment attempt. It snapshots the order details at
// handoff time so a verified success can still produce a durable Order row
// even though the draft that initiated it is long gone.
type Checkout struct {
	Reference      string         `json:"reference"`
	CustomerID     uuid.UUID      `json:"customer_id"`
	Email          string         `json:"email"`
	AmountMinor    int64          `json:"amount_minor"`
	Currency       string         `json:"currency"`
	HotelID        int64          `json:"hotel_id"`
	ItemID         int64          `json:"item_id"`
	ItemType       ItemType       `json:"item_type"`
	Quantity       int            `json:"quantity"`
	TotalPrice     float64        `json:"total_price"`
	Status         CheckoutStatus `json:"status"`
	TransactionRef string         `json:"transaction_ref,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
