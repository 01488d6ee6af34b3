package impl

import (
	"context"
	"testing"

	"orda/internal/domain/entity"
	domainerrors "orda/internal/domain/errors"
	"orda/internal/domain/repository"
	mockRepo "orda/internal/mocks/repository"
	"orda/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCatalogService(t *testing.T) (usecase.CatalogUsecase, *mockRepo.MockCatalogRepository) {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)

	svc := NewCatalogService(CatalogServiceParams{
		CatalogRepo: catalogRepo,
		Logger:      newDiscardLogger(),
	})

	return svc, catalogRepo
}

func TestCatalogService_ListHotels(t *testing.T) {
	svc, catalogRepo := createTestCatalogService(t)

	ctx := context.Background()
	hotels := []*entity.Hotel{{ID: 1, Name: "Grand"}, {ID: 2, Name: "Plaza"}}

	catalogRepo.EXPECT().ListHotels(ctx).Return(hotels, nil)

	got, err := svc.ListHotels(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCatalogService_GetHotelMenu(t *testing.T) {
	svc, catalogRepo := createTestCatalogService(t)

	ctx := context.Background()
	items := []*entity.Item{
		{ID: 1, Type: entity.ItemTypeFood, HotelID: 7},
		{ID: 2, Type: entity.ItemTypeDrink, HotelID: 7},
		{ID: 3, Type: entity.ItemTypeRoom, HotelID: 7},
	}

	catalogRepo.EXPECT().FindHotelByID(ctx, int64(7)).Return(&entity.Hotel{ID: 7, Name: "Grand"}, nil)
	catalogRepo.EXPECT().ListMenu(ctx, int64(7)).Return(items, nil)

	menu, err := svc.GetHotelMenu(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), menu.Hotel.ID)
	assert.Len(t, menu.Items, 3)
}

func TestCatalogService_GetHotelMenu_UnknownHotel(t *testing.T) {
	svc, catalogRepo := createTestCatalogService(t)

	ctx := context.Background()

	catalogRepo.EXPECT().FindHotelByID(ctx, int64(99)).Return(nil, repository.ErrHotelNotFound)

	menu, err := svc.GetHotelMenu(ctx, 99)

	require.Error(t, err)
	assert.Nil(t, menu)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
