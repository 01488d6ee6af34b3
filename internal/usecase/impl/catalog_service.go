// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "orda/internal/delivery/context"
	"orda/internal/domain/entity"
	domainerrors "orda/internal/domain/errors"
	"orda/internal/domain/repository"
	"orda/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListHotels returns all hotels available for browsing.
func (srv *catalogService) ListHotels(ctx context.Context) ([]*entity.Hotel, error) {
	hotels, err := srv.catalogRepo.ListHotels(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list hotels", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list hotels")
	}

	return hotels, nil
}

// GetHotelMenu returns one hotel together with its full menu across food,
// drinks, and rooms.
func (srv *catalogService) GetHotelMenu(ctx context.Context, hotelID int64) (*usecase.HotelMenu, error) {
	hotel, err := srv.catalogRepo.FindHotelByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "hotel not found")
		}

		return nil, errors.Wrap(err, "failed to find hotel")
	}

	items, err := srv.catalogRepo.ListMenu(ctx, hotelID)
	if err != nil {
		srv.log(ctx).Error("Failed to list menu", slog.Int64("hotelID", hotelID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list menu")
	}

	return &usecase.HotelMenu{Hotel: hotel, Items: items}, nil
}
