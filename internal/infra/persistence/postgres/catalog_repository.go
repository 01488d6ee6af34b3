// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"orda/internal/domain/entity"
	"orda/internal/domain/repository"
	"orda/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements the domain.CatalogRepository interface.
// Menu items live in three per-type tables sharing one row shape, so the
// table name is picked from the item type at query time.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

// itemTables maps each item type to its backing table.
var itemTables = map[entity.ItemType]string{
	entity.ItemTypeFood:  "foods",
	entity.ItemTypeDrink: "drinks",
	entity.ItemTypeRoom:  "rooms",
}

// ListHotels returns every hotel in the catalog.
func (repo *catalogRepository) ListHotels(ctx context.Context) ([]*entity.Hotel, error) {
	var hotelModels []*model.HotelModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&hotelModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	hotels := make([]*entity.Hotel, 0, len(hotelModels))
	for _, hotelM := range hotelModels {
		hotels = append(hotels, toHotelDomain(hotelM))
	}

	return hotels, nil
}

// FindHotelByID retrieves a single hotel.
func (repo *catalogRepository) FindHotelByID(ctx context.Context, id int64) (*entity.Hotel, error) {
	var hotelM model.HotelModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&hotelM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHotelNotFound
		}

		return nil, errors.Wrap(err, "failed to find hotel by id")
	}

	return toHotelDomain(&hotelM), nil
}

// ListMenu returns all item variants (foods, drinks, rooms) for a hotel.
func (repo *catalogRepository) ListMenu(ctx context.Context, hotelID int64) ([]*entity.Item, error) {
	var items []*entity.Item

	for _, itemType := range []entity.ItemType{entity.ItemTypeFood, entity.ItemTypeDrink, entity.ItemTypeRoom} {
		var itemModels []*model.ItemModel
		err := repo.db.WithContext(ctx).
			Table(itemTables[itemType]).
			Where("hotel_id = ?", hotelID).
			Order("id").
			Find(&itemModels).Error
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list %s", itemTables[itemType])
		}

		for _, itemM := range itemModels {
			items = append(items, toItemDomain(itemM, itemType))
		}
	}

	return items, nil
}

// FindItem retrieves one item by discriminator type and ID.
func (repo *catalogRepository) FindItem(ctx context.Context, itemType entity.ItemType, id int64) (*entity.Item, error) {
	table, ok := itemTables[itemType]
	if !ok {
		return nil, repository.ErrItemNotFound
	}

	var itemM model.ItemModel
	err := repo.db.WithContext(ctx).
		Table(table).
		Where("id = ?", id).
		First(&itemM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrapf(err, "failed to find item in %s", table)
	}

	return toItemDomain(&itemM, itemType), nil
}

// --- Mapper Functions ---

// toHotelDomain converts a GORM HotelModel to a domain Hotel entity.
func toHotelDomain(data *model.HotelModel) *entity.Hotel {
	if data == nil {
		return nil
	}

	return &entity.Hotel{
		ID:       data.ID,
		Name:     data.Name,
		ImageURL: data.ImageURL,
	}
}

// toItemDomain converts a GORM ItemModel to a domain Item entity.
func toItemDomain(data *model.ItemModel, itemType entity.ItemType) *entity.Item {
	if data == nil {
		return nil
	}

	return &entity.Item{
		ID:       data.ID,
		Type:     itemType,
		Name:     data.Name,
		Price:    data.Price,
		HotelID:  data.HotelID,
		ImageURL: data.ImageURL,
	}
}
