package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftFixture() *OrderDraft {
	return NewOrderDraft(&Item{
		ID:      42,
		Type:    ItemTypeFood,
		Name:    "Jollof Rice",
		Price:   19.99,
		HotelID: 7,
	}, "Grand")
}

func TestOrderDraft_Defaults(t *testing.T) {
	draft := draftFixture()

	assert.Equal(t, DraftStateDrafting, draft.State())
	assert.Equal(t, 1, draft.Quantity())
	assert.Equal(t, PaymentMethodArrival, draft.PaymentMethod())
	assert.Equal(t, 19.99, draft.TotalPrice())
}

func TestOrderDraft_QuantityClamping(t *testing.T) {
	draft := draftFixture()

	draft.DecrementQuantity()
	assert.Equal(t, 1, draft.Quantity(), "decrement at 1 is a no-op")

	draft.SetQuantity(0)
	assert.Equal(t, 1, draft.Quantity(), "quantity never drops below 1")

	draft.SetQuantity(-5)
	assert.Equal(t, 1, draft.Quantity())

	draft.IncrementQuantity()
	draft.IncrementQuantity()
	assert.Equal(t, 3, draft.Quantity())

	draft.DecrementQuantity()
	assert.Equal(t, 2, draft.Quantity())
}

func TestOrderDraft_TotalPriceRecomputed(t *testing.T) {
	draft := draftFixture()

	draft.SetQuantity(3)
	assert.Equal(t, 59.97, draft.TotalPrice())

	draft.SetQuantity(100)
	assert.Equal(t, 1999.0, draft.TotalPrice())
}

func TestOrderDraft_SetPaymentMethod(t *testing.T) {
	draft := draftFixture()

	draft.SetPaymentMethod(PaymentMethodOnline)
	assert.Equal(t, PaymentMethodOnline, draft.PaymentMethod())

	draft.SetPaymentMethod("cheque")
	assert.Equal(t, PaymentMethodOnline, draft.PaymentMethod(), "unknown methods are ignored")
}

func TestOrderDraft_DoubleSubmitRejected(t *testing.T) {
	draft := draftFixture()

	require.NoError(t, draft.BeginSubmit())
	assert.ErrorIs(t, draft.BeginSubmit(), ErrSubmitInFlight)
}

func TestOrderDraft_FailSubmitRetainsInput(t *testing.T) {
	draft := draftFixture()
	draft.SetQuantity(4)
	draft.SetPaymentMethod(PaymentMethodOnline)

	require.NoError(t, draft.BeginSubmit())
	require.NoError(t, draft.FailSubmit())

	assert.Equal(t, DraftStateDrafting, draft.State())
	assert.Equal(t, 4, draft.Quantity())
	assert.Equal(t, PaymentMethodOnline, draft.PaymentMethod())

	// The user can retry explicitly.
	require.NoError(t, draft.BeginSubmit())
	require.NoError(t, draft.CompleteSubmit())
	assert.Equal(t, DraftStateCompleted, draft.State())
}

func TestOrderDraft_TerminalStatesRejectSubmit(t *testing.T) {
	completed := draftFixture()
	require.NoError(t, completed.BeginSubmit())
	require.NoError(t, completed.CompleteSubmit())
	assert.ErrorIs(t, completed.BeginSubmit(), ErrDraftTerminal)

	handedOff := draftFixture()
	require.NoError(t, handedOff.BeginSubmit())
	require.NoError(t, handedOff.HandOff())
	assert.ErrorIs(t, handedOff.BeginSubmit(), ErrDraftTerminal)
}

func TestOrderDraft_MutationsIgnoredOutsideDrafting(t *testing.T) {
	draft := draftFixture()
	require.NoError(t, draft.BeginSubmit())

	draft.SetQuantity(9)
	draft.IncrementQuantity()
	draft.SetPaymentMethod(PaymentMethodOnline)

	assert.Equal(t, 1, draft.Quantity())
	assert.Equal(t, PaymentMethodArrival, draft.PaymentMethod())
}

func TestOrderDraft_Order(t *testing.T) {
	draft := draftFixture()
	draft.SetQuantity(2)
	customerID := uuid.New()

	order := draft.Order(customerID)

	assert.Equal(t, customerID, order.CustomerID)
	assert.Equal(t, int64(7), order.HotelID)
	assert.Equal(t, int64(42), order.ItemID)
	assert.Equal(t, ItemTypeFood, order.ItemType)
	assert.Equal(t, 2, order.Quantity)
	assert.Equal(t, 39.98, order.TotalPrice)
	assert.Equal(t, OrderStatusPending, order.Status)
}
