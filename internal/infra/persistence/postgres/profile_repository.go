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
	"gorm.io/gorm/clause"
)

// profileRepository implements the domain.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByUserID retrieves the profile for a given user.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user id")
	}

	return toProfileDomain(&profileM), nil
}

// Create persists a new profile row. A duplicate user_id maps to a domain
// conflict error so lazy provisioning can fall back to a re-read.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfileAlreadyExists.WrapMessage("profile already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileCreationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProfileCreationFailed.WrapMessage("missing required profile information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// UpdateUsername changes the display name on an existing profile.
func (repo *profileRepository) UpdateUsername(ctx context.Context, userID uuid.UUID, username string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", userID).
		Update("username", username)

	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// UpsertLocale writes country and currency, inserting the profile row when it
// does not exist yet. Mirrors an INSERT ... ON CONFLICT (user_id) DO UPDATE.
func (repo *profileRepository) UpsertLocale(ctx context.Context, userID uuid.UUID, country, currency string) error {
	profileM := &model.ProfileModel{
		UserID:   userID,
		Country:  country,
		Currency: currency,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"country", "currency", "updated_at"}),
		}).
		Create(profileM).Error

	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileCreationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert profile locale")
	}

	return nil
}

// UpdateAvatarURL points the profile at a newly uploaded avatar object.
// An empty URL clears the avatar.
func (repo *profileRepository) UpdateAvatarURL(ctx context.Context, userID uuid.UUID, avatarURL string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", userID).
		Update("avatar_url", avatarURL)

	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		UserID:    data.UserID,
		Username:  data.Username,
		Country:   data.Country,
		Currency:  data.Currency,
		AvatarURL: data.AvatarURL,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		UserID:    data.UserID,
		Username:  data.Username,
		Country:   data.Country,
		Currency:  data.Currency,
		AvatarURL: data.AvatarURL,
	}
}
