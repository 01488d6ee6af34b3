// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"orda/internal/domain/entity"
	domainerrors "orda/internal/domain/errors"
	"orda/internal/domain/repository"
	"orda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order row; the database assigns ID and timestamp.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("invalid customer reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("missing required order information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("order violates a data constraint")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// FindByID retrieves a single order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// ListByCustomer returns all orders placed by a customer, newest first.
func (repo *orderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orderModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// CancelPending flips a pending order owned by the customer to cancelled.
// The status filter is part of the UPDATE so a concurrent transition wins
// and this call reports no rows affected.
func (repo *orderRepository) CancelPending(ctx context.Context, customerID, orderID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND customer_id = ? AND status = ?", orderID, customerID, string(entity.OrderStatusPending)).
		Update("status", string(entity.OrderStatusCancelled))

	if result.Error != nil {
		return false, errors.WithStack(result.Error)
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:            data.ID,
		CustomerID:    data.CustomerID,
		HotelID:       data.HotelID,
		ItemID:        data.ItemID,
		ItemType:      entity.ItemType(data.ItemType),
		Quantity:      data.Quantity,
		TotalPrice:    data.TotalPrice,
		Status:        entity.OrderStatus(data.Status),
		PaymentMethod: entity.PaymentMethod(data.PaymentMethod),
		CreatedAt:     data.CreatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:            data.ID,
		CustomerID:    data.CustomerID,
		HotelID:       data.HotelID,
		ItemID:        data.ItemID,
		ItemType:      string(data.ItemType),
		Quantity:      data.Quantity,
		TotalPrice:    data.TotalPrice,
		Status:        string(data.Status),
		PaymentMethod: string(data.PaymentMethod),
	}
}
