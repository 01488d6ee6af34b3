package impl

import (
	"context"
	"strings"
	"testing"

	"orda/internal/domain/entity"
	domainerrors "orda/internal/domain/errors"
	"orda/internal/domain/repository"
	"orda/internal/domain/service"
	mockRepo "orda/internal/mocks/repository"
	mockSvc "orda/internal/mocks/service"
	"orda/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutServiceFixtures struct {
	service        usecase.CheckoutUsecase
	txManager      *mockRepo.MockTransactionManager
	checkoutRepo   *mockRepo.MockCheckoutRepository
	catalogRepo    *mockRepo.MockCatalogRepository
	userRepo       *mockRepo.MockUserRepository
	profileRepo    *mockRepo.MockProfileRepository
	gateway        *mockSvc.MockPaymentGateway
	qrService      *mockSvc.MockQRCodeService
	eventPublisher *mockSvc.MockEventPublisher
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	checkoutRepo := mockRepo.NewMockCheckoutRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	svc := NewCheckoutService(CheckoutServiceParams{
		TxManager:      txManager,
		CheckoutRepo:   checkoutRepo,
		CatalogRepo:    catalogRepo,
		UserRepo:       userRepo,
		ProfileRepo:    profileRepo,
		Gateway:        gateway,
		QRService:      qrService,
		EventPublisher: eventPublisher,
		Logger:         newDiscardLogger(),
	})

	return checkoutServiceFixtures{
		service:        svc,
		txManager:      txManager,
		checkoutRepo:   checkoutRepo,
		catalogRepo:    catalogRepo,
		userRepo:       userRepo,
		profileRepo:    profileRepo,
		gateway:        gateway,
		qrService:      qrService,
		eventPublisher: eventPublisher,
	}
}

func TestCheckoutService_InitiateCheckout_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	customerID := uuid.New()
	input := &usecase.InitiateCheckoutInput{
		ItemType: entity.ItemTypeFood,
		ItemID:   42,
		Quantity: 2,
	}

	fx.catalogRepo.EXPECT().FindItem(ctx, entity.ItemTypeFood, int64(42)).Return(testItem(), nil)
	fx.catalogRepo.EXPECT().FindHotelByID(ctx, int64(7)).Return(&entity.Hotel{ID: 7, Name: "Grand"}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, customerID).
		Return(&entity.User{ID: customerID, Email: "pay@example.com"}, nil)
	fx.profileRepo.EXPECT().
		FindByUserID(ctx, customerID).
		Return(&entity.Profile{UserID: customerID, Currency: "NGN"}, nil)

	fx.checkoutRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Checkout")).
		Run(func(ctx context.Context, checkout *entity.Checkout) {
			assert.True(t, strings.HasPrefix(checkout.Reference, "ORDA_"))
			assert.Equal(t, customerID, checkout.CustomerID)
			// 2 x 19.99 in integer minor units.
			assert.Equal(t, int64(3998), checkout.AmountMinor)
			assert.Equal(t, "NGN", checkout.Currency)
			assert.Equal(t, entity.CheckoutStatusInitiated, checkout.Status)
		}).
		Return(nil)

	fx.gateway.EXPECT().
		InitializeTransaction(ctx, mock.AnythingOfType("*service.InitializeRequest")).
		RunAndReturn(func(ctx context.Context, req *service.InitializeRequest) (*service.InitializeResult, error) {
			assert.Equal(t, "pay@example.com", req.Email)
			assert.Equal(t, int64(3998), req.AmountMinor)

			return &service.InitializeResult{
				AuthorizationURL: "https://checkout.example.com/abc",
				AccessCode:       "abc",
				Reference:        req.Reference,
			}, nil
		})

	fx.qrService.EXPECT().
		GenerateCheckoutQR("https://checkout.example.com/abc").
		Return([]byte("png"), nil)

	output, err := fx.service.InitiateCheckout(ctx, customerID, input)

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.example.com/abc", output.AuthorizationURL)
	assert.Equal(t, int64(3998), output.AmountMinor)
	assert.Equal(t, "NGN", output.Currency)
	assert.Equal(t, []byte("png"), output.QRCode)
}

func TestCheckoutService_InitiateCheckout_ProcessorFailure(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.catalogRepo.EXPECT().FindItem(ctx, entity.ItemTypeFood, int64(42)).Return(testItem(), nil)
	fx.catalogRepo.EXPECT().FindHotelByID(ctx, int64(7)).Return(&entity.Hotel{ID: 7, Name: "Grand"}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, customerID).
		Return(&entity.User{ID: customerID, Email: "pay@example.com"}, nil)
	fx.profileRepo.EXPECT().
		FindByUserID(ctx, customerID).
		Return(nil, repository.ErrProfileNotFound)

	var reference string
	fx.checkoutRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Checkout")).
		Run(func(ctx context.Context, checkout *entity.Checkout) {
			reference = checkout.Reference
			// No profile: currency falls back to the default.
			assert.Equal(t, entity.DefaultCurrency, checkout.Currency)
		}).
		Return(nil)

	fx.gateway.EXPECT().
		InitializeTransaction(ctx, mock.Anything).
		Return(nil, assert.AnError)
	fx.checkoutRepo.EXPECT().
		UpdateOutcome(ctx, mock.MatchedBy(func(ref string) bool { return ref == reference }), entity.CheckoutStatusFailed, "").
		Return(nil)

	output, err := fx.service.InitiateCheckout(ctx, customerID, &usecase.InitiateCheckoutInput{
		ItemType: entity.ItemTypeFood,
		ItemID:   42,
		Quantity: 1,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentFailed)
}

func TestCheckoutService_InitiateCheckout_RejectsCountryCodeAsCurrency(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.catalogRepo.EXPECT().FindItem(ctx, entity.ItemTypeFood, int64(42)).Return(testItem(), nil)
	fx.catalogRepo.EXPECT().FindHotelByID(ctx, int64(7)).Return(&entity.Hotel{ID: 7, Name: "Grand"}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, customerID).
		Return(&entity.User{ID: customerID, Email: "pay@example.com"}, nil)
	// A corrupt profile carrying a country code where the currency belongs.
	fx.profileRepo.EXPECT().
		FindByUserID(ctx, customerID).
		Return(&entity.Profile{UserID: customerID, Currency: "US"}, nil)

	// No checkoutRepo or gateway expectations: the processor and the
	// checkout table must never see the bad payload.
	output, err := fx.service.InitiateCheckout(ctx, customerID, &usecase.InitiateCheckoutInput{
		ItemType: entity.ItemTypeFood,
		ItemID:   42,
		Quantity: 1,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCheckoutService_InitiateCheckout_RejectsNonPositiveAmount(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	customerID := uuid.New()
	freeItem := &entity.Item{ID: 42, Type: entity.ItemTypeFood, Name: "Sample", Price: 0, HotelID: 7}

	fx.catalogRepo.EXPECT().FindItem(ctx, entity.ItemTypeFood, int64(42)).Return(freeItem, nil)
	fx.catalogRepo.EXPECT().FindHotelByID(ctx, int64(7)).Return(&entity.Hotel{ID: 7, Name: "Grand"}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, customerID).
		Return(&entity.User{ID: customerID, Email: "pay@example.com"}, nil)
	fx.profileRepo.EXPECT().
		FindByUserID(ctx, customerID).
		Return(&entity.Profile{UserID: customerID, Currency: "NGN"}, nil)

	output, err := fx.service.InitiateCheckout(ctx, customerID, &usecase.InitiateCheckoutInput{
		ItemType: entity.ItemTypeFood,
		ItemID:   42,
		Quantity: 1,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCheckoutService_InitiateCheckout_RejectsMissingEmail(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.catalogRepo.EXPECT().FindItem(ctx, entity.ItemTypeFood, int64(42)).Return(testItem(), nil)
	fx.catalogRepo.EXPECT().FindHotelByID(ctx, int64(7)).Return(&entity.Hotel{ID: 7, Name: "Grand"}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, customerID).
		Return(&entity.User{ID: customerID, Email: ""}, nil)
	fx.profileRepo.EXPECT().
		FindByUserID(ctx, customerID).
		Return(&entity.Profile{UserID: customerID, Currency: "NGN"}, nil)

	output, err := fx.service.InitiateCheckout(ctx, customerID, &usecase.InitiateCheckoutInput{
		ItemType: entity.ItemTypeFood,
		ItemID:   42,
		Quantity: 1,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCheckoutService_ResolveCheckout_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	customerID := uuid.New()
	checkout := &entity.Checkout{
		Reference:   "ORDA_1700000000000",
		CustomerID:  customerID,
		AmountMinor: 3998,
		Currency:    "NGN",
		HotelID:     7,
		ItemID:      42,
		ItemType:    entity.ItemTypeFood,
		Quantity:    2,
		TotalPrice:  39.98,
		Status:      entity.CheckoutStatusInitiated,
	}

	fx.checkoutRepo.EXPECT().FindByReference(ctx, checkout.Reference).Return(checkout, nil)
	fx.gateway.EXPECT().
		VerifyTransaction(ctx, checkout.Reference).
		Return(&service.VerifyResult{
			Status:         service.PaymentStatusSuccess,
			TransactionRef: "12345",
			AmountMinor:    3998,
			Currency:       "NGN",
		}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCheckoutRepo := mockRepo.NewMockCheckoutRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().CheckoutRepo().Return(mockCheckoutRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockCheckoutRepo.EXPECT().
				UpdateOutcome(ctx, checkout.Reference, entity.CheckoutStatusSucceeded, "12345").
				Return(nil)
			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = uuid.New()
					assert.Equal(t, customerID, order.CustomerID)
					assert.Equal(t, entity.OrderStatusPending, order.Status)
					assert.Equal(t, entity.PaymentMethodOnline, order.PaymentMethod)
					assert.Equal(t, 39.98, order.TotalPrice)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(ctx context.Context, event *service.OrderEvent) {
			assert.Equal(t, service.OrderEventPlaced, event.EventType)
		}).
		Return(nil)

	output, err := fx.service.ResolveCheckout(ctx, checkout.Reference)

	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStatusSucceeded, output.Checkout.Status)
	require.NotNil(t, output.Order)
	assert.Equal(t, entity.PaymentMethodOnline, output.Order.PaymentMethod)
}

func TestCheckoutService_ResolveCheckout_Cancelled(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	checkout := &entity.Checkout{
		Reference: "ORDA_1700000000001",
		Status:    entity.CheckoutStatusInitiated,
	}

	fx.checkoutRepo.EXPECT().FindByReference(ctx, checkout.Reference).Return(checkout, nil)
	fx.gateway.EXPECT().
		VerifyTransaction(ctx, checkout.Reference).
		Return(&service.VerifyResult{Status: service.PaymentStatusCancelled, TransactionRef: "12346"}, nil)
	fx.checkoutRepo.EXPECT().
		UpdateOutcome(ctx, checkout.Reference, entity.CheckoutStatusCancelled, "12346").
		Return(nil)

	output, err := fx.service.ResolveCheckout(ctx, checkout.Reference)

	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStatusCancelled, output.Checkout.Status)
	assert.Nil(t, output.Order)
}

func TestCheckoutService_ResolveCheckout_AlreadyTerminal(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	checkout := &entity.Checkout{
		Reference: "ORDA_1700000000002",
		Status:    entity.CheckoutStatusSucceeded,
	}

	// A terminal checkout resolves from the recorded outcome; the processor
	// is not contacted again and no second order is written.
	fx.checkoutRepo.EXPECT().FindByReference(ctx, checkout.Reference).Return(checkout, nil)

	output, err := fx.service.ResolveCheckout(ctx, checkout.Reference)

	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStatusSucceeded, output.Checkout.Status)
	assert.Nil(t, output.Order)
}

func TestCheckoutService_ResolveCheckout_PendingLeavesCheckoutOpen(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	checkout := &entity.Checkout{
		Reference: "ORDA_1700000000003",
		Status:    entity.CheckoutStatusInitiated,
	}

	fx.checkoutRepo.EXPECT().FindByReference(ctx, checkout.Reference).Return(checkout, nil)
	fx.gateway.EXPECT().
		VerifyTransaction(ctx, checkout.Reference).
		Return(&service.VerifyResult{Status: service.PaymentStatusPending}, nil)

	output, err := fx.service.ResolveCheckout(ctx, checkout.Reference)

	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStatusInitiated, output.Checkout.Status)
}

func TestCheckoutService_ResolveCheckout_AmountMismatchFails(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	checkout := &entity.Checkout{
		Reference:   "ORDA_1700000000004",
		AmountMinor: 3998,
		Status:      entity.CheckoutStatusInitiated,
	}

	fx.checkoutRepo.EXPECT().FindByReference(ctx, checkout.Reference).Return(checkout, nil)
	fx.gateway.EXPECT().
		VerifyTransaction(ctx, checkout.Reference).
		Return(&service.VerifyResult{
			Status:         service.PaymentStatusSuccess,
			TransactionRef: "12347",
			AmountMinor:    100,
		}, nil)
	fx.checkoutRepo.EXPECT().
		UpdateOutcome(ctx, checkout.Reference, entity.CheckoutStatusFailed, "12347").
		Return(nil)

	output, err := fx.service.ResolveCheckout(ctx, checkout.Reference)

	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStatusFailed, output.Checkout.Status)
	assert.Nil(t, output.Order)
}

func TestCheckoutService_ResolveCheckout_UnknownReference(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()

	fx.checkoutRepo.EXPECT().
		FindByReference(ctx, "ORDA_missing").
		Return(nil, repository.ErrCheckoutNotFound)

	output, err := fx.service.ResolveCheckout(ctx, "ORDA_missing")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutNotFound)
}

func TestCheckoutService_GetCheckout_OwnershipEnforced(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	owner := uuid.New()
	checkout := &entity.Checkout{Reference: "ORDA_1700000000005", CustomerID: owner}

	fx.checkoutRepo.EXPECT().FindByReference(ctx, checkout.Reference).Return(checkout, nil).Twice()

	got, err := fx.service.GetCheckout(ctx, owner, checkout.Reference)
	require.NoError(t, err)
	assert.Same(t, checkout, got)

	_, err = fx.service.GetCheckout(ctx, uuid.New(), checkout.Reference)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
