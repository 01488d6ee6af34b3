package handler

import (
	"net/http"
	"testing"

	"orda/internal/domain/entity"
	ucmocks "orda/internal/mocks/usecase"
	"orda/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler_ListHotels(t *testing.T) {
	mockCatalogUC := ucmocks.NewMockCatalogUsecase(t)
	handler := &CatalogHandler{uc: mockCatalogUC, logger: newTestLogger()}

	mockCatalogUC.EXPECT().
		ListHotels(mock.Anything).
		Return([]*entity.Hotel{{ID: 1, Name: "Grand Palace"}, {ID: 2, Name: "Sea View"}}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/hotels", "")

	require.NoError(t, handler.ListHotels(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Grand Palace")
	assert.Contains(t, rec.Body.String(), "Sea View")
}

func TestCatalogHandler_GetHotelMenu(t *testing.T) {
	mockCatalogUC := ucmocks.NewMockCatalogUsecase(t)
	handler := &CatalogHandler{uc: mockCatalogUC, logger: newTestLogger()}

	mockCatalogUC.EXPECT().
		GetHotelMenu(mock.Anything, int64(7)).
		Return(&usecase.HotelMenu{
			Hotel: &entity.Hotel{ID: 7, Name: "Grand Palace"},
			Items: []*entity.Item{{ID: 42, Name: "Jollof Rice", Price: 19.99, HotelID: 7}},
		}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/hotels/7/menu", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, handler.GetHotelMenu(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jollof Rice")
}

func TestCatalogHandler_GetHotelMenu_RejectsBadID(t *testing.T) {
	mockCatalogUC := ucmocks.NewMockCatalogUsecase(t)
	handler := &CatalogHandler{uc: mockCatalogUC, logger: newTestLogger()}

	c, rec := newJSONContext(t, http.MethodGet, "/hotels/abc/menu", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, handler.GetHotelMenu(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
