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

func TestOrderHandler_PlaceOrder_Success(t *testing.T) {
	mockOrderUC := ucmocks.NewMockOrderUsecase(t)
	handler := &OrderHandler{uc: mockOrderUC, logger: newTestLogger()}

	customerID := uuid.New()
	order := &entity.Order{ID: uuid.New(), CustomerID: customerID, ItemID: 42, Quantity: 2, TotalPrice: 39.98, Status: entity.OrderStatusPending}
	mockOrderUC.EXPECT().
		PlaceOrder(mock.Anything, customerID, &usecase.PlaceOrderInput{
			ItemType: entity.ItemTypeFood,
			ItemID:   42,
			Quantity: 2,
		}).
		Return(&usecase.PlaceOrderOutput{Order: order}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/orders",
		`{"item_type":"food","item_id":42,"quantity":2}`)
	c.Set("userID", customerID)

	require.NoError(t, handler.PlaceOrder(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), order.ID.String())
}

func TestOrderHandler_PlaceOrder_RequiresAuthentication(t *testing.T) {
	mockOrderUC := ucmocks.NewMockOrderUsecase(t)
	handler := &OrderHandler{uc: mockOrderUC, logger: newTestLogger()}

	c, rec := newJSONContext(t, http.MethodPost, "/orders",
		`{"item_type":"food","item_id":42,"quantity":2}`)

	require.NoError(t, handler.PlaceOrder(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderHandler_ListOrders(t *testing.T) {
	mockOrderUC := ucmocks.NewMockOrderUsecase(t)
	handler := &OrderHandler{uc: mockOrderUC, logger: newTestLogger()}

	customerID := uuid.New()
	mockOrderUC.EXPECT().
		ListOrders(mock.Anything, customerID).
		Return([]*entity.Order{{ID: uuid.New(), CustomerID: customerID, ItemID: 9, Status: entity.OrderStatusPending}}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/orders", "")
	c.Set("userID", customerID)

	require.NoError(t, handler.ListOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pending")
}

func TestOrderHandler_CancelOrder_RejectsBadID(t *testing.T) {
	mockOrderUC := ucmocks.NewMockOrderUsecase(t)
	handler := &OrderHandler{uc: mockOrderUC, logger: newTestLogger()}

	c, rec := newJSONContext(t, http.MethodPost, "/orders/not-a-uuid/cancel", "")
	c.Set("userID", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.CancelOrder(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_CancelOrder_Success(t *testing.T) {
	mockOrderUC := ucmocks.NewMockOrderUsecase(t)
	handler := &OrderHandler{uc: mockOrderUC, logger: newTestLogger()}

	customerID := uuid.New()
	orderID := uuid.New()
	mockOrderUC.EXPECT().
		CancelOrder(mock.Anything, customerID, orderID).
		Return(nil)

	c, rec := newJSONContext(t, http.MethodPost, "/orders/"+orderID.String()+"/cancel", "")
	c.Set("userID", customerID)
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())

	require.NoError(t, handler.CancelOrder(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
