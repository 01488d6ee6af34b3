// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"orda/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
// EnsureProfile provisions the row lazily: every read goes through it, so a
// missing profile is created on first access rather than at sign-up.
type ProfileUsecase interface {
	EnsureProfile(ctx context.Context, userID uuid.UUID, email string) (*entity.Profile, error)
	UpdateUsername(ctx context.Context, userID uuid.UUID, username string) (*entity.Profile, error)
	UpsertLocale(ctx context.Context, userID uuid.UUID, country string) error
	UploadAvatar(ctx context.Context, userID uuid.UUID, input *UploadAvatarInput) (*entity.Profile, error)
	RemoveAvatar(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
}

// --- Input DTOs ---

// UploadAvatarInput defines the data required to replace a profile avatar.
type UploadAvatarInput struct {
	Data        []byte
	ContentType string
	Extension   string
}
