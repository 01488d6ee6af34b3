// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"orda/internal/domain/entity"
	domainerrors "orda/internal/domain/errors"
	"orda/internal/domain/repository"
	"orda/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// checkoutRepository implements the domain.CheckoutRepository interface.
type checkoutRepository struct {
	db *gorm.DB
}

// NewCheckoutRepository is the constructor for checkoutRepository.
func NewCheckoutRepository(db *gorm.DB) repository.CheckoutRepository {
	return &checkoutRepository{db: db}
}

// Create persists a new checkout row keyed by its payment reference.
func (repo *checkoutRepository) Create(ctx context.Context, checkout *entity.Checkout) error {
	checkoutM := fromCheckoutDomain(checkout)

	if err := repo.db.WithContext(ctx).Create(checkoutM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("checkout reference already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPaymentFailed.WrapMessage("invalid customer reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrPaymentFailed.WrapMessage("missing required checkout information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create checkout")
	}

	checkout.CreatedAt = checkoutM.CreatedAt
	checkout.UpdatedAt = checkoutM.UpdatedAt

	return nil
}

// FindByReference retrieves a checkout by its payment reference.
func (repo *checkoutRepository) FindByReference(ctx context.Context, reference string) (*entity.Checkout, error) {
	var checkoutM model.CheckoutModel
	err := repo.db.WithContext(ctx).
		Where("reference = ?", reference).
		First(&checkoutM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCheckoutNotFound
		}

		return nil, errors.Wrap(err, "failed to find checkout by reference")
	}

	return toCheckoutDomain(&checkoutM), nil
}

// UpdateOutcome records the terminal status and processor transaction
// reference for a checkout.
func (repo *checkoutRepository) UpdateOutcome(ctx context.Context, reference string, status entity.CheckoutStatus, transactionRef string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CheckoutModel{}).
		Where("reference = ?", reference).
		Updates(map[string]any{
			"status":          string(status),
			"transaction_ref": transactionRef,
		})

	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	if result.RowsAffected == 0 {
		return repository.ErrCheckoutNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCheckoutDomain converts a GORM CheckoutModel to a domain Checkout entity.
func toCheckoutDomain(data *model.CheckoutModel) *entity.Checkout {
	if data == nil {
		return nil
	}

	return &entity.Checkout{
		Reference:      data.Reference,
		CustomerID:     data.CustomerID,
		Email:          data.Email,
		AmountMinor:    data.AmountMinor,
		Currency:       data.Currency,
		HotelID:        data.HotelID,
		ItemID:         data.ItemID,
		ItemType:       entity.ItemType(data.ItemType),
		Quantity:       data.Quantity,
		TotalPrice:     data.TotalPrice,
		Status:         entity.CheckoutStatus(data.Status),
		TransactionRef: data.TransactionRef,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromCheckoutDomain converts a domain Checkout entity to a GORM CheckoutModel.
func fromCheckoutDomain(data *entity.Checkout) *model.CheckoutModel {
	if data == nil {
		return nil
	}

	return &model.CheckoutModel{
		Reference:      data.Reference,
		CustomerID:     data.CustomerID,
		Email:          data.Email,
		AmountMinor:    data.AmountMinor,
		Currency:       data.Currency,
		HotelID:        data.HotelID,
		ItemID:         data.ItemID,
		ItemType:       string(data.ItemType),
		Quantity:       data.Quantity,
		TotalPrice:     data.TotalPrice,
		Status:         string(data.Status),
		TransactionRef: data.TransactionRef,
	}
}
