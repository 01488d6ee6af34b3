package entity

import (
	"errors"

	"github.com/google/uuid"
)

// DraftState tracks where a single order draft is in its lifecycle.
type DraftState string

const (
	// DraftStateDrafting accepts quantity and payment-method changes.
	DraftStateDrafting DraftState = "drafting"
	// DraftStateSubmitting has a submission in flight; further submits are rejected.
	DraftStateSubmitting DraftState = "submitting"
	// DraftStateCompleted is terminal: the order row was recorded.
	DraftStateCompleted DraftState = "completed"
	// DraftStateHandoff is terminal: control passed to the external checkout.
	DraftStateHandoff DraftState = "handoff"
)

// Draft transition errors.
var (
	ErrSubmitInFlight  = errors.New("a submission is already in flight for this draft")
	ErrDraftNotPending = errors.New("draft has no submission in flight")
	ErrDraftTerminal   = errors.New("draft is already completed or handed off")
)

// OrderDraft is the ephemeral, pre-submission representation of one order.
// It lives only in memory for the duration of the ordering interaction and is
// discarded once it reaches a terminal state; a new draft must be constructed
// for the next order.
//
// The zero value is not usable; construct with NewOrderDraft.
type OrderDraft struct {
	ItemID    int64
	ItemType  ItemType
	ItemName  string
	UnitPrice float64
	HotelID   int64
	HotelName string

	quantity      int
	paymentMethod PaymentMethod
	state         DraftState
}

// NewOrderDraft starts a draft for the given item. Quantity initializes to 1
// and the payment method defaults to arrival.
func NewOrderDraft(item *Item, hotelName string) *OrderDraft {
	return &OrderDraft{
		ItemID:        item.ID,
		ItemType:      item.Type,
		ItemName:      item.Name,
		UnitPrice:     item.Price,
		HotelID:       item.HotelID,
		HotelName:     hotelName,
		quantity:      1,
		paymentMethod: PaymentMethodArrival,
		state:         DraftStateDrafting,
	}
}

// State returns the draft's current lifecycle state.
func (d *OrderDraft) State() DraftState { return d.state }

// Quantity returns the current quantity, always >= 1.
func (d *OrderDraft) Quantity() int { return d.quantity }

// PaymentMethod returns the currently selected payment method.
func (d *OrderDraft) PaymentMethod() PaymentMethod { return d.paymentMethod }

// TotalPrice recomputes the total from unit price and quantity, rounded to
// two decimal places. No stored total is trusted after a quantity change.
func (d *OrderDraft) TotalPrice() float64 {
	return RoundAmount(d.UnitPrice * float64(d.quantity))
}

// IncrementQuantity raises the quantity by one. Ignored outside Drafting.
func (d *OrderDraft) IncrementQuantity() {
	if d.state != DraftStateDrafting {
		return
	}
	d.quantity++
}

// DecrementQuantity lowers the quantity by one, clamped to a minimum of 1.
// Decrementing at quantity 1 is a no-op, as is any change outside Drafting.
func (d *OrderDraft) DecrementQuantity() {
	if d.state != DraftStateDrafting || d.quantity <= 1 {
		return
	}
	d.quantity--
}

// SetQuantity replaces the quantity, clamped to a minimum of 1.
// Ignored outside Drafting.
func (d *OrderDraft) SetQuantity(q int) {
	if d.state != DraftStateDrafting {
		return
	}
	if q < 1 {
		q = 1
	}
	d.quantity = q
}

// SetPaymentMethod toggles between arrival and online. Unknown methods and
// changes outside Drafting are ignored.
func (d *OrderDraft) SetPaymentMethod(m PaymentMethod) {
	if d.state != DraftStateDrafting || !m.Valid() {
		return
	}
	d.paymentMethod = m
}

// BeginSubmit moves the draft into Submitting. A second submit while one is
// in flight is rejected with ErrSubmitInFlight, and terminal drafts with
// ErrDraftTerminal; callers must construct a new draft for the next order.
func (d *OrderDraft) BeginSubmit() error {
	switch d.state {
	case DraftStateDrafting:
		d.state = DraftStateSubmitting

		return nil
	case DraftStateSubmitting:
		return ErrSubmitInFlight
	default:
		return ErrDraftTerminal
	}
}

// FailSubmit returns the draft to Drafting after a failed submission,
// retaining all user input so the user can retry explicitly.
func (d *OrderDraft) FailSubmit() error {
	if d.state != DraftStateSubmitting {
		return ErrDraftNotPending
	}
	d.state = DraftStateDrafting

	return nil
}

// CompleteSubmit marks the draft terminal after the order row was recorded.
func (d *OrderDraft) CompleteSubmit() error {
	if d.state != DraftStateSubmitting {
		return ErrDraftNotPending
	}
	d.state = DraftStateCompleted

	return nil
}

// HandOff marks the draft terminal after control passed to the external
// checkout. Whether the payment eventually succeeds is not this draft's
// concern.
func (d *OrderDraft) HandOff() error {
	if d.state != DraftStateSubmitting {
		return ErrDraftNotPending
	}
	d.state = DraftStateHandoff

	return nil
}

// Order materializes the draft into an Order row for the given customer,
// with status pending and the draft's payment method.
func (d *OrderDraft) Order(customerID uuid.UUID) *Order {
	return &Order{
		CustomerID:    customerID,
		HotelID:       d.HotelID,
		ItemID:        d.ItemID,
		ItemType:      d.ItemType,
		Quantity:      d.quantity,
		TotalPrice:    d.TotalPrice(),
		Status:        OrderStatusPending,
		PaymentMethod: d.paymentMethod,
	}
}
