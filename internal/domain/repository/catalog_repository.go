package repository

import (
	"context"
	"errors"

	"orda/internal/domain/entity"
)

// ErrItemNotFound is returned when no catalog item matches type and ID.
var ErrItemNotFound = errors.New("catalog item not found")

// ErrHotelNotFound is returned when no hotel matches the given ID.
var ErrHotelNotFound = errors.New("hotel not found")

// CatalogRepository reads the browsable catalog. All tables are read-only
// from this service's ordering workflows.
type CatalogRepository interface {
	ListHotels(ctx context.Context) ([]*entity.Hotel, error)

	FindHotelByID(ctx context.Context, id int64) (*entity.Hotel, error)

	// ListMenu returns all item variants (food, drinks, rooms) for a hotel.
	ListMenu(ctx context.Context, hotelID int64) ([]*entity.Item, error)

	// FindItem retrieves one item by discriminator type and ID.
	FindItem(ctx context.Context, itemType entity.ItemType, id int64) (*entity.Item, error)
}
