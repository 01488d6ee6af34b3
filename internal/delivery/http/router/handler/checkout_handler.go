package handler

import (
	"log/slog"
	"net/http"

	"orda/internal/delivery/http/response"
	"orda/internal/domain/entity"
	"orda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for online payment handlers.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: logger,
	}
}

type initiateCheckoutRequest struct {
	ItemType string `json:"item_type" validate:"required"`
	ItemID   int64  `json:"item_id" validate:"required"`
	Quantity int    `json:"quantity"`
}

type initiateCheckoutResponse struct {
	Reference        string `json:"reference"`
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	AmountMinor      int64  `json:"amount_minor"`
	Currency         string `json:"currency"`
	// QRCode is a PNG rendering of the authorization URL, base64 encoded.
	QRCode []byte `json:"qr_code,omitempty"`
}

type resolveCheckoutResponse struct {
	Checkout *entity.Checkout `json:"checkout"`
	Order    *entity.Order    `json:"order,omitempty"`
}

// InitiateCheckout opens a hosted payment page for the requested item.
func (h *CheckoutHandler) InitiateCheckout(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req initiateCheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.InitiateCheckout(c.Request().Context(), userID, &usecase.InitiateCheckoutInput{
		ItemType: entity.ItemType(req.ItemType),
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, initiateCheckoutResponse{
		Reference:        output.Reference,
		AuthorizationURL: output.AuthorizationURL,
		AccessCode:       output.AccessCode,
		AmountMinor:      output.AmountMinor,
		Currency:         output.Currency,
		QRCode:           output.QRCode,
	}, "Checkout initiated successfully")
}

// GetCheckout returns the current state of a checkout owned by the caller.
func (h *CheckoutHandler) GetCheckout(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	checkout, err := h.uc.GetCheckout(c.Request().Context(), userID, c.Param("reference"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, checkout, "Checkout retrieved successfully")
}

// ResolveCheckout verifies a checkout against the processor and records
// the outcome. The app calls this after returning from the payment page.
func (h *CheckoutHandler) ResolveCheckout(c echo.Context) error {
	if _, ok := currentUserID(c); !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.uc.ResolveCheckout(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resolveCheckoutResponse{
		Checkout: output.Checkout,
		Order:    output.Order,
	}, "Checkout resolved successfully")
}

// PaymentCallback is the processor redirect target. The reference arrives
// as a query parameter and the endpoint is unauthenticated, mirroring the
// hosted page redirect.
func (h *CheckoutHandler) PaymentCallback(c echo.Context) error {
	reference := c.QueryParam("reference")
	if reference == "" {
		// Some processors use trxref for the redirect parameter.
		reference = c.QueryParam("trxref")
	}
	if reference == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing checkout reference")
	}

	output, err := h.uc.ResolveCheckout(c.Request().Context(), reference)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resolveCheckoutResponse{
		Checkout: output.Checkout,
		Order:    output.Order,
	}, "Checkout resolved successfully")
}
