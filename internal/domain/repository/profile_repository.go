package repository

import (
	"context"
	"errors"

	"orda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound signals the zero-row case on profile lookup. It is a
// branch condition, not a failure: the provisioning workflow creates the
// profile when it sees this.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines persistence for application-level user profiles.
type ProfileRepository interface {
	// FindByUserID retrieves the profile keyed by the identity ID.
	// Returns ErrProfileNotFound when no row exists.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Create inserts a new profile row. A unique-constraint violation maps to
	// the domain's profile-already-exists error so callers can collapse a
	// lost provisioning race to success.
	Create(ctx context.Context, profile *entity.Profile) error

	// UpdateUsername replaces the profile's username.
	UpdateUsername(ctx context.Context, userID uuid.UUID, username string) error

	// UpsertLocale writes the sign-in-time country/currency pair, inserting
	// the row when absent.
	UpsertLocale(ctx context.Context, userID uuid.UUID, country, currency string) error

	// UpdateAvatarURL sets or clears the stored avatar URL.
	UpdateAvatarURL(ctx context.Context, userID uuid.UUID, avatarURL string) error
}
