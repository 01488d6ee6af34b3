package handler

import (
	"log/slog"
	"net/http"

	"orda/internal/delivery/http/response"
	"orda/internal/domain/entity"
	"orda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type placeOrderRequest struct {
	ItemType string `json:"item_type" validate:"required"`
	ItemID   int64  `json:"item_id" validate:"required"`
	Quantity int    `json:"quantity"`
}

// PlaceOrder records a pay-on-arrival order for the caller.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.PlaceOrder(c.Request().Context(), userID, &usecase.PlaceOrderInput{
		ItemType: entity.ItemType(req.ItemType),
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Order, "Order placed successfully")
}

// ListOrders returns the caller's order history, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// CancelOrder cancels a pending order owned by the caller.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	if err := h.uc.CancelOrder(c.Request().Context(), userID, orderID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Order cancelled"}, "Order cancelled successfully")
}
