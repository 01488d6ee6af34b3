package impl

import (
	"context"
	"testing"

	"orda/internal/domain/entity"
	domainerrors "orda/internal/domain/errors"
	"orda/internal/domain/repository"
	"orda/internal/domain/service"
	mockRepo "orda/internal/mocks/repository"
	mockSvc "orda/internal/mocks/service"
	"orda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service        usecase.OrderUsecase
	txManager      *mockRepo.MockTransactionManager
	orderRepo      *mockRepo.MockOrderRepository
	catalogRepo    *mockRepo.MockCatalogRepository
	eventPublisher *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	svc := NewOrderService(OrderServiceParams{
		TxManager:      txManager,
		OrderRepo:      orderRepo,
		CatalogRepo:    catalogRepo,
		EventPublisher: eventPublisher,
		Logger:         newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:        svc,
		txManager:      txManager,
		orderRepo:      orderRepo,
		catalogRepo:    catalogRepo,
		eventPublisher: eventPublisher,
	}
}

func testItem() *entity.Item {
	return &entity.Item{
		ID:      42,
		Type:    entity.ItemTypeFood,
		Name:    "Jollof Rice",
		Price:   19.99,
		HotelID: 7,
	}
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	input := &usecase.PlaceOrderInput{
		ItemType: entity.ItemTypeFood,
		ItemID:   42,
		Quantity: 3,
	}

	fx.catalogRepo.EXPECT().FindItem(ctx, entity.ItemTypeFood, int64(42)).Return(testItem(), nil)
	fx.catalogRepo.EXPECT().FindHotelByID(ctx, int64(7)).Return(&entity.Hotel{ID: 7, Name: "Grand"}, nil)

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			order.ID = uuid.New()
			// Total is recomputed from the catalog price, never from the client.
			assert.Equal(t, 59.97, order.TotalPrice)
			assert.Equal(t, entity.OrderStatusPending, order.Status)
			assert.Equal(t, entity.PaymentMethodArrival, order.PaymentMethod)
		}).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(ctx context.Context, event *service.OrderEvent) {
			assert.Equal(t, service.OrderEventPlaced, event.EventType)
			assert.Equal(t, customerID.String(), event.CustomerID)
		}).
		Return(nil)

	output, err := fx.service.PlaceOrder(ctx, customerID, input)

	require.NoError(t, err)
	assert.Equal(t, customerID, output.Order.CustomerID)
	assert.Equal(t, 3, output.Order.Quantity)
}

func TestOrderService_PlaceOrder_ClampsQuantity(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	input := &usecase.PlaceOrderInput{
		ItemType: entity.ItemTypeFood,
		ItemID:   42,
		Quantity: 0,
	}

	fx.catalogRepo.EXPECT().FindItem(ctx, entity.ItemTypeFood, int64(42)).Return(testItem(), nil)
	fx.catalogRepo.EXPECT().FindHotelByID(ctx, int64(7)).Return(&entity.Hotel{ID: 7, Name: "Grand"}, nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.eventPublisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	output, err := fx.service.PlaceOrder(ctx, customerID, input)

	require.NoError(t, err)
	assert.Equal(t, 1, output.Order.Quantity)
	assert.Equal(t, 19.99, output.Order.TotalPrice)
}

func TestOrderService_PlaceOrder_CreateFailureSurfacesBackendMessage(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.catalogRepo.EXPECT().FindItem(ctx, entity.ItemTypeFood, int64(42)).Return(testItem(), nil)
	fx.catalogRepo.EXPECT().FindHotelByID(ctx, int64(7)).Return(&entity.Hotel{ID: 7, Name: "Grand"}, nil)

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(errors.New("orders relation unavailable"))

	// No eventPublisher expectation: a failed insert publishes nothing.
	output, err := fx.service.PlaceOrder(ctx, customerID, &usecase.PlaceOrderInput{
		ItemType: entity.ItemTypeFood,
		ItemID:   42,
		Quantity: 3,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	// The backend message survives the wrap unchanged.
	assert.ErrorContains(t, err, "orders relation unavailable")
}

func TestOrderService_PlaceOrder_UnknownItemType(t *testing.T) {
	fx := createTestOrderService(t)

	output, err := fx.service.PlaceOrder(context.Background(), uuid.New(), &usecase.PlaceOrderInput{
		ItemType: "dessert",
		ItemID:   42,
		Quantity: 1,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_PlaceOrder_ItemNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.catalogRepo.EXPECT().
		FindItem(ctx, entity.ItemTypeRoom, int64(999)).
		Return(nil, repository.ErrItemNotFound)

	output, err := fx.service.PlaceOrder(ctx, uuid.New(), &usecase.PlaceOrderInput{
		ItemType: entity.ItemTypeRoom,
		ItemID:   999,
		Quantity: 1,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestOrderService_PlaceOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.catalogRepo.EXPECT().FindItem(ctx, entity.ItemTypeFood, int64(42)).Return(testItem(), nil)
	fx.catalogRepo.EXPECT().FindHotelByID(ctx, int64(7)).Return(&entity.Hotel{ID: 7, Name: "Grand"}, nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.eventPublisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(assert.AnError)

	output, err := fx.service.PlaceOrder(ctx, uuid.New(), &usecase.PlaceOrderInput{
		ItemType: entity.ItemTypeFood,
		ItemID:   42,
		Quantity: 1,
	})

	require.NoError(t, err)
	assert.NotNil(t, output)
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	history := []*entity.Order{
		{ID: uuid.New(), CustomerID: customerID},
		{ID: uuid.New(), CustomerID: customerID},
	}

	fx.orderRepo.EXPECT().ListByCustomer(ctx, customerID).Return(history, nil)

	orders, err := fx.service.ListOrders(ctx, customerID)

	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestOrderService_CancelOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	orderID := uuid.New()
	cancelled := &entity.Order{ID: orderID, CustomerID: customerID, Status: entity.OrderStatusCancelled}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().CancelPending(ctx, customerID, orderID).Return(true, nil)
			mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(cancelled, nil)

			return fn(mockFactory)
		})

	fx.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(ctx context.Context, event *service.OrderEvent) {
			assert.Equal(t, service.OrderEventCancelled, event.EventType)
			assert.Equal(t, orderID.String(), event.OrderID)
		}).
		Return(nil)

	err := fx.service.CancelOrder(ctx, customerID, orderID)

	require.NoError(t, err)
}

func TestOrderService_CancelOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	orderID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().CancelPending(ctx, customerID, orderID).Return(false, nil)
			mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

			return fn(mockFactory)
		})

	err := fx.service.CancelOrder(ctx, customerID, orderID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_CancelOrder_NotOwner(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	orderID := uuid.New()
	foreign := &entity.Order{ID: orderID, CustomerID: uuid.New(), Status: entity.OrderStatusPending}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().CancelPending(ctx, customerID, orderID).Return(false, nil)
			mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(foreign, nil)

			return fn(mockFactory)
		})

	err := fx.service.CancelOrder(ctx, customerID, orderID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_CancelOrder_NoLongerPending(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	orderID := uuid.New()
	delivered := &entity.Order{ID: orderID, CustomerID: customerID, Status: entity.OrderStatusDelivered}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().CancelPending(ctx, customerID, orderID).Return(false, nil)
			mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(delivered, nil)

			return fn(mockFactory)
		})

	err := fx.service.CancelOrder(ctx, customerID, orderID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotCancellable)
}
