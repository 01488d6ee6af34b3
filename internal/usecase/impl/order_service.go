// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "orda/internal/delivery/context"
	"orda/internal/domain/entity"
	domainerrors "orda/internal/domain/errors"
	"orda/internal/domain/repository"
	"orda/internal/domain/service"
	"orda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager      repository.TransactionManager
	orderRepo      repository.OrderRepository
	catalogRepo    repository.CatalogRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	OrderRepo      repository.OrderRepository
	CatalogRepo    repository.CatalogRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:      params.TxManager,
		orderRepo:      params.OrderRepo,
		catalogRepo:    params.CatalogRepo,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder records a pay-on-arrival order. The draft state machine guards
// against double submission and recomputes the total from the catalog price,
// never from client input.
func (srv *orderService) PlaceOrder(ctx context.Context, customerID uuid.UUID, input *usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
	srv.log(ctx).Info("Placing order",
		slog.Any("customerID", customerID),
		slog.String("itemType", string(input.ItemType)),
		slog.Int64("itemID", input.ItemID),
	)

	draft, err := buildOrderDraft(ctx, srv.catalogRepo, input.ItemType, input.ItemID, input.Quantity)
	if err != nil {
		return nil, err
	}

	if err := draft.BeginSubmit(); err != nil {
		return nil, errors.Wrap(err, "order draft not submittable")
	}

	order := draft.Order(customerID)
	if err := srv.orderRepo.Create(ctx, order); err != nil {
		_ = draft.FailSubmit()
		srv.log(ctx).Error("Failed to create order", slog.Any("customerID", customerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create order")
	}
	if err := draft.CompleteSubmit(); err != nil {
		return nil, errors.Wrap(err, "failed to complete order draft")
	}

	srv.publishOrderEvent(ctx, service.OrderEventPlaced, order)

	return &usecase.PlaceOrderOutput{Order: order}, nil
}

// buildOrderDraft loads the item and hotel and assembles a submit-ready
// draft. Shared by the arrival-payment and online-checkout flows.
func buildOrderDraft(ctx context.Context, catalogRepo repository.CatalogRepository, itemType entity.ItemType, itemID int64, quantity int) (*entity.OrderDraft, error) {
	if !itemType.Valid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown item type")
	}

	item, err := catalogRepo.FindItem(ctx, itemType, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrItemNotFound, "item not found")
		}

		return nil, errors.Wrap(err, "failed to find item")
	}

	hotel, err := catalogRepo.FindHotelByID(ctx, item.HotelID)
	if err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return nil, errors.Wrap(domainerrors.ErrItemNotFound, "hotel not found for item")
		}

		return nil, errors.Wrap(err, "failed to find hotel")
	}

	draft := entity.NewOrderDraft(item, hotel.Name)
	draft.SetQuantity(quantity)

	return draft, nil
}

// ListOrders returns the customer's order history, newest first.
func (srv *orderService) ListOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("customerID", customerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// CancelOrder cancels a pending order owned by the customer. Only pending
// orders are cancellable; anything further along must be handled out of band.
func (srv *orderService) CancelOrder(ctx context.Context, customerID, orderID uuid.UUID) error {
	srv.log(ctx).Info("Cancelling order", slog.Any("customerID", customerID), slog.Any("orderID", orderID))

	var cancelled *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		ok, err := orderRepo.CancelPending(ctx, customerID, orderID)
		if err != nil {
			return errors.Wrap(err, "failed to cancel order")
		}
		if ok {
			cancelled, err = orderRepo.FindByID(ctx, orderID)

			return errors.Wrap(err, "failed to load cancelled order")
		}

		// Nothing updated: distinguish a missing order from one that has
		// already moved past pending.
		order, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}
		if order.CustomerID != customerID {
			return errors.Wrap(domainerrors.ErrForbidden, "order does not belong to customer")
		}

		return errors.Wrap(domainerrors.ErrOrderNotCancellable, "order is no longer pending")
	})

	if err != nil {
		srv.log(ctx).Warn("Order cancellation rejected", slog.Any("orderID", orderID), slog.Any("error", err))

		return err
	}

	srv.publishOrderEvent(ctx, service.OrderEventCancelled, cancelled)

	return nil
}

// publishOrderEvent emits an event for async consumers. Publish failures are
// logged and swallowed; the order operation has already committed.
func (srv *orderService) publishOrderEvent(ctx context.Context, eventType string, order *entity.Order) {
	if order == nil {
		return
	}

	event := &service.OrderEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		EventType:     eventType,
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
			slog.String("eventType", eventType),
			slog.String("orderID", event.OrderID),
			slog.Any("error", err),
		)
	}
}
