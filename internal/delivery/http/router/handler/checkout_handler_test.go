package handler

import (
	"net/http"
	"testing"

	"orda/internal/domain/entity"
	ucmocks "orda/internal/mocks/usecase"
	"orda/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckoutHandler_InitiateCheckout_Success(t *testing.T) {
	mockCheckoutUC := ucmocks.NewMockCheckoutUsecase(t)
	handler := &CheckoutHandler{uc: mockCheckoutUC, logger: newTestLogger()}

	customerID := uuid.New()
	mockCheckoutUC.EXPECT().
		InitiateCheckout(mock.Anything, customerID, &usecase.InitiateCheckoutInput{
			ItemType: entity.ItemTypeFood,
			ItemID:   42,
			Quantity: 2,
		}).
		Return(&usecase.InitiateCheckoutOutput{
			Reference:        "ORDA_1700000000000",
			AuthorizationURL: "https://checkout.paystack.com/abc123",
			AccessCode:       "abc123",
			AmountMinor:      3998,
			Currency:         "NGN",
			QRCode:           []byte("png-bytes"),
		}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/checkout",
		`{"item_type":"food","item_id":42,"quantity":2}`)
	c.Set("userID", customerID)

	require.NoError(t, handler.InitiateCheckout(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "ORDA_1700000000000")
	assert.Contains(t, rec.Body.String(), "checkout.paystack.com")
	assert.Contains(t, rec.Body.String(), "qr_code")
}

func TestCheckoutHandler_GetCheckout_Success(t *testing.T) {
	mockCheckoutUC := ucmocks.NewMockCheckoutUsecase(t)
	handler := &CheckoutHandler{uc: mockCheckoutUC, logger: newTestLogger()}

	customerID := uuid.New()
	mockCheckoutUC.EXPECT().
		GetCheckout(mock.Anything, customerID, "ORDA_1700000000000").
		Return(&entity.Checkout{Reference: "ORDA_1700000000000", Status: entity.CheckoutStatusInitiated}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/checkout/ORDA_1700000000000", "")
	c.Set("userID", customerID)
	c.SetParamNames("reference")
	c.SetParamValues("ORDA_1700000000000")

	require.NoError(t, handler.GetCheckout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "initiated")
}

func TestCheckoutHandler_PaymentCallback_ResolvesByReference(t *testing.T) {
	mockCheckoutUC := ucmocks.NewMockCheckoutUsecase(t)
	handler := &CheckoutHandler{uc: mockCheckoutUC, logger: newTestLogger()}

	mockCheckoutUC.EXPECT().
		ResolveCheckout(mock.Anything, "ORDA_1700000000000").
		Return(&usecase.ResolveCheckoutOutput{
			Checkout: &entity.Checkout{Reference: "ORDA_1700000000000", Status: entity.CheckoutStatusSucceeded},
			Order:    &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPending, PaymentMethod: entity.PaymentMethodOnline},
		}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/payments/callback?reference=ORDA_1700000000000", "")

	require.NoError(t, handler.PaymentCallback(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "succeeded")
	assert.Contains(t, rec.Body.String(), "online")
}

func TestCheckoutHandler_PaymentCallback_AcceptsTrxref(t *testing.T) {
	mockCheckoutUC := ucmocks.NewMockCheckoutUsecase(t)
	handler := &CheckoutHandler{uc: mockCheckoutUC, logger: newTestLogger()}

	mockCheckoutUC.EXPECT().
		ResolveCheckout(mock.Anything, "ORDA_1700000000000").
		Return(&usecase.ResolveCheckoutOutput{
			Checkout: &entity.Checkout{Reference: "ORDA_1700000000000", Status: entity.CheckoutStatusCancelled},
		}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/payments/callback?trxref=ORDA_1700000000000", "")

	require.NoError(t, handler.PaymentCallback(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCheckoutHandler_PaymentCallback_MissingReference(t *testing.T) {
	mockCheckoutUC := ucmocks.NewMockCheckoutUsecase(t)
	handler := &CheckoutHandler{uc: mockCheckoutUC, logger: newTestLogger()}

	c, rec := newJSONContext(t, http.MethodGet, "/payments/callback", "")

	require.NoError(t, handler.PaymentCallback(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
