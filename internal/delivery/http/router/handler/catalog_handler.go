package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"orda/internal/delivery/http/response"
	"orda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for catalog browsing handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListHotels returns every hotel available for ordering.
func (h *CatalogHandler) ListHotels(c echo.Context) error {
	hotels, err := h.uc.ListHotels(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, hotels, "Hotels retrieved successfully")
}

// GetHotelMenu returns the full menu of one hotel.
func (h *CatalogHandler) GetHotelMenu(c echo.Context) error {
	hotelID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid hotel ID")
	}

	menu, err := h.uc.GetHotelMenu(c.Request().Context(), hotelID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, menu, "Menu retrieved successfully")
}
