// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "orda/internal/delivery/context"
	"orda/internal/domain/constants"
	"orda/internal/domain/entity"
	domainerrors "orda/internal/domain/errors"
	"orda/internal/domain/repository"
	"orda/internal/domain/service"
	"orda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager      repository.TransactionManager
	checkoutRepo   repository.CheckoutRepository
	catalogRepo    repository.CatalogRepository
	userRepo       repository.UserRepository
	profileRepo    repository.ProfileRepository
	gateway        service.PaymentGateway
	qrService      service.QRCodeService
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CheckoutRepo   repository.CheckoutRepository
	CatalogRepo    repository.CatalogRepository
	UserRepo       repository.UserRepository
	ProfileRepo    repository.ProfileRepository
	Gateway        service.PaymentGateway
	QRService      service.QRCodeService
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager:      params.TxManager,
		checkoutRepo:   params.CheckoutRepo,
		catalogRepo:    params.CatalogRepo,
		userRepo:       params.UserRepo,
		profileRepo:    params.ProfileRepo,
		gateway:        params.Gateway,
		qrService:      params.QRService,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// newCheckoutReference builds a unique payment reference. Millisecond
// timestamps keep references sortable and unique enough per customer;
// the database unique key backstops collisions.
func newCheckoutReference() string {
	return fmt.Sprintf("%s_%d", constants.CheckoutReferencePrefix, time.Now().UnixMilli())
}

// InitiateCheckout snapshots the order details in a checkout row and opens a
// transaction with the payment processor. The order row itself is only
// written once the processor confirms payment.
func (srv *checkoutService) InitiateCheckout(ctx context.Context, customerID uuid.UUID, input *usecase.InitiateCheckoutInput) (*usecase.InitiateCheckoutOutput, error) {
	srv.log(ctx).Info("Initiating checkout",
		slog.Any("customerID", customerID),
		slog.String("itemType", string(input.ItemType)),
		slog.Int64("itemID", input.ItemID),
	)

	draft, err := buildOrderDraft(ctx, srv.catalogRepo, input.ItemType, input.ItemID, input.Quantity)
	if err != nil {
		return nil, err
	}
	draft.SetPaymentMethod(entity.PaymentMethodOnline)

	user, err := srv.userRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find customer")
	}

	currency := entity.DefaultCurrency
	if profile, err := srv.profileRepo.FindByUserID(ctx, customerID); err == nil && profile.Currency != "" {
		currency = profile.Currency
	}

	// The processor is never contacted with a payload it would reject.
	amountMinor := entity.MinorUnits(draft.TotalPrice())
	if user.Email == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "customer email is required for online payment")
	}
	if !entity.ValidCurrencyCode(currency) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "currency must be a 3-letter ISO code")
	}
	if amountMinor <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "payment amount must be positive")
	}

	if err := draft.BeginSubmit(); err != nil {
		return nil, errors.Wrap(err, "order draft not submittable")
	}

	checkout := &entity.Checkout{
		Reference:   newCheckoutReference(),
		CustomerID:  customerID,
		Email:       user.Email,
		AmountMinor: amountMinor,
		Currency:    currency,
		HotelID:     draft.HotelID,
		ItemID:      draft.ItemID,
		ItemType:    draft.ItemType,
		Quantity:    draft.Quantity(),
		TotalPrice:  draft.TotalPrice(),
		Status:      entity.CheckoutStatusInitiated,
	}

	if err := srv.checkoutRepo.Create(ctx, checkout); err != nil {
		_ = draft.FailSubmit()

		return nil, errors.Wrap(err, "failed to create checkout")
	}

	result, err := srv.gateway.InitializeTransaction(ctx, &service.InitializeRequest{
		Reference:   checkout.Reference,
		Email:       checkout.Email,
		AmountMinor: checkout.AmountMinor,
		Currency:    checkout.Currency,
	})
	if err != nil {
		_ = draft.FailSubmit()
		srv.log(ctx).Error("Processor initialization failed", slog.String("reference", checkout.Reference), slog.Any("error", err))

		if updateErr := srv.checkoutRepo.UpdateOutcome(ctx, checkout.Reference, entity.CheckoutStatusFailed, ""); updateErr != nil {
			srv.log(ctx).Error("Failed to mark checkout failed", slog.String("reference", checkout.Reference), slog.Any("error", updateErr))
		}

		return nil, errors.Wrap(domainerrors.ErrPaymentFailed, "failed to initialize payment")
	}

	// The draft's lifecycle ends here; the checkout row carries the state
	// until the processor reports an outcome.
	if err := draft.HandOff(); err != nil {
		return nil, errors.Wrap(err, "failed to hand off order draft")
	}

	// QR generation is a convenience for cross-device checkout; its failure
	// must not fail the initiation.
	var qrPNG []byte
	if srv.qrService != nil {
		if png, qrErr := srv.qrService.GenerateCheckoutQR(result.AuthorizationURL); qrErr == nil {
			qrPNG = png
		} else {
			srv.log(ctx).Warn("Failed to render checkout QR", slog.String("reference", checkout.Reference), slog.Any("error", qrErr))
		}
	}

	return &usecase.InitiateCheckoutOutput{
		Reference:        checkout.Reference,
		AuthorizationURL: result.AuthorizationURL,
		AccessCode:       result.AccessCode,
		AmountMinor:      checkout.AmountMinor,
		Currency:         checkout.Currency,
		QRCode:           qrPNG,
	}, nil
}

// ResolveCheckout verifies the transaction with the processor and records the
// outcome. On success the order row is written in the same transaction that
// terminalizes the checkout, so a crash cannot produce a paid-but-missing
// order. Resolving an already-terminal checkout returns the recorded outcome
// without contacting the processor again.
func (srv *checkoutService) ResolveCheckout(ctx context.Context, reference string) (*usecase.ResolveCheckoutOutput, error) {
	checkout, err := srv.checkoutRepo.FindByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, repository.ErrCheckoutNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCheckoutNotFound, "checkout not found")
		}

		return nil, errors.Wrap(err, "failed to find checkout")
	}

	if checkout.Status.Terminal() {
		srv.log(ctx).Debug("Checkout already resolved",
			slog.String("reference", reference),
			slog.String("status", string(checkout.Status)),
		)

		return &usecase.ResolveCheckoutOutput{Checkout: checkout}, nil
	}

	verify, err := srv.gateway.VerifyTransaction(ctx, reference)
	if err != nil {
		srv.log(ctx).Error("Processor verification failed", slog.String("reference", reference), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPaymentFailed, "failed to verify payment")
	}

	switch verify.Status {
	case service.PaymentStatusSuccess:
		// A paid amount that differs from the snapshot means the processor
		// charged something we never quoted; never record that as success.
		if verify.AmountMinor != checkout.AmountMinor {
			srv.log(ctx).Error("Paid amount does not match checkout",
				slog.String("reference", reference),
				slog.Int64("expected", checkout.AmountMinor),
				slog.Int64("paid", verify.AmountMinor),
			)

			return srv.recordOutcome(ctx, checkout, entity.CheckoutStatusFailed, verify.TransactionRef)
		}

		return srv.recordSuccess(ctx, checkout, verify.TransactionRef)

	case service.PaymentStatusCancelled:
		return srv.recordOutcome(ctx, checkout, entity.CheckoutStatusCancelled, verify.TransactionRef)

	case service.PaymentStatusFailed:
		return srv.recordOutcome(ctx, checkout, entity.CheckoutStatusFailed, verify.TransactionRef)

	default:
		// Still pending at the processor; leave the checkout open.
		return &usecase.ResolveCheckoutOutput{Checkout: checkout}, nil
	}
}

// recordSuccess terminalizes the checkout and writes the paid order atomically.
func (srv *checkoutService) recordSuccess(ctx context.Context, checkout *entity.Checkout, transactionRef string) (*usecase.ResolveCheckoutOutput, error) {
	order := &entity.Order{
		CustomerID:    checkout.CustomerID,
		HotelID:       checkout.HotelID,
		ItemID:        checkout.ItemID,
		ItemType:      checkout.ItemType,
		Quantity:      checkout.Quantity,
		TotalPrice:    checkout.TotalPrice,
		Status:        entity.OrderStatusPending,
		PaymentMethod: entity.PaymentMethodOnline,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CheckoutRepo().UpdateOutcome(ctx, checkout.Reference, entity.CheckoutStatusSucceeded, transactionRef); err != nil {
			return errors.Wrap(err, "failed to record checkout success")
		}

		return errors.Wrap(repoFactory.OrderRepo().Create(ctx, order), "failed to create paid order")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to record successful checkout", slog.String("reference", checkout.Reference), slog.Any("error", err))

		return nil, err
	}

	checkout.Status = entity.CheckoutStatusSucceeded
	checkout.TransactionRef = transactionRef

	srv.log(ctx).Info("Checkout succeeded",
		slog.String("reference", checkout.Reference),
		slog.Any("orderID", order.ID),
	)

	srv.publishOrderPlaced(ctx, order)

	return &usecase.ResolveCheckoutOutput{Checkout: checkout, Order: order}, nil
}

// recordOutcome terminalizes a non-successful checkout.
func (srv *checkoutService) recordOutcome(ctx context.Context, checkout *entity.Checkout, status entity.CheckoutStatus, transactionRef string) (*usecase.ResolveCheckoutOutput, error) {
	if err := srv.checkoutRepo.UpdateOutcome(ctx, checkout.Reference, status, transactionRef); err != nil {
		return nil, errors.Wrap(err, "failed to record checkout outcome")
	}

	checkout.Status = status
	checkout.TransactionRef = transactionRef

	srv.log(ctx).Info("Checkout resolved",
		slog.String("reference", checkout.Reference),
		slog.String("status", string(status)),
	)

	return &usecase.ResolveCheckoutOutput{Checkout: checkout}, nil
}

// GetCheckout returns the current state of a checkout owned by the customer.
func (srv *checkoutService) GetCheckout(ctx context.Context, customerID uuid.UUID, reference string) (*entity.Checkout, error) {
	checkout, err := srv.checkoutRepo.FindByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, repository.ErrCheckoutNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCheckoutNotFound, "checkout not found")
		}

		return nil, errors.Wrap(err, "failed to find checkout")
	}

	if checkout.CustomerID != customerID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "checkout does not belong to customer")
	}

	return checkout, nil
}

func (srv *checkoutService) publishOrderPlaced(ctx context.Context, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		EventType:     service.OrderEventPlaced,
		OrderID:       order.ID.String(),
		CustomerID:    order.CustomerID.String(),
		HotelID:       order.HotelID,
		ItemID:        order.ItemID,
		ItemType:      string(order.ItemType),
		Quantity:      order.Quantity,
		TotalPrice:    order.TotalPrice,
		PaymentMethod: string(order.PaymentMethod),
	}

	if err := srv.eventPublisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("orderID", event.OrderID),
			slog.Any("error", err),
		)
	}
}
