// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"orda/internal/domain/entity"
)

// HotelMenu groups a hotel with its full menu across item types.
type HotelMenu struct {
	Hotel *entity.Hotel
	Items []*entity.Item
}

// CatalogUsecase defines the interface for browsing hotels and menus.
type CatalogUsecase interface {
	ListHotels(ctx context.Context) ([]*entity.Hotel, error)
	GetHotelMenu(ctx context.Context, hotelID int64) (*HotelMenu, error)
}
