// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager     repository.TransactionManager
	profileRepo   repository.ProfileRepository
	avatarStorage service.AvatarStorage
	logger        *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ProfileRepo   repository.ProfileRepository
	AvatarStorage service.AvatarStorage
	Logger        *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:     params.TxManager,
		profileRepo:   params.ProfileRepo,
		avatarStorage: params.AvatarStorage,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EnsureProfile returns the user's profile, creating it on first access.
// Accounts exist before profiles, so every profile read goes through here and
// the missing-row case is the provisioning trigger, not an error.
func (srv *profileService) EnsureProfile(ctx context.Context, userID uuid.UUID, email string) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	srv.log(ctx).Info("Profile missing, provisioning", slog.Any("userID", userID))

	newProfile := &entity.Profile{
		UserID:   userID,
		Username: defaultUsername(userID, email),
		Country:  entity.DefaultCountry,
		Currency: entity.DefaultCurrency,
	}

	if err := srv.profileRepo.Create(ctx, newProfile); err != nil {
		// A concurrent request may have provisioned the row first; the
		// surviving row wins and we simply read it back.
		if errors.Is(err, domainerrors.ErrProfileAlreadyExists) {
			return srv.profileRepo.FindByUserID(ctx, userID)
		}

		return nil, errors.Wrap(err, "failed to provision profile")
	}

	return newProfile, nil
}

// defaultUsername derives the initial display name: the email local part, or
// a short ID-based handle when the email is unusable.
func defaultUsername(userID uuid.UUID, email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}

	return "user_" + strings.ReplaceAll(userID.String(), "-", "")[:6]
}

// UpdateUsername changes the display name and returns the updated profile.
func (srv *profileService) UpdateUsername(ctx context.Context, userID uuid.UUID, username string) (*entity.Profile, error) {
	srv.log(ctx).Info("Updating username", slog.Any("userID", userID))

	if err := srv.profileRepo.UpdateUsername(ctx, userID, username); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to update username")
	}

	return srv.profileRepo.FindByUserID(ctx, userID)
}

// UpsertLocale refreshes the stored country and its derived currency.
// An unknown or empty country falls back to the defaults, so a sign-in from
// an unrecognized locale never fails.
func (srv *profileService) UpsertLocale(ctx context.Context, userID uuid.UUID, country string) error {
	country = strings.ToUpper(strings.TrimSpace(country))
	if country == "" {
		country = entity.DefaultCountry
	}
	currency := entity.CurrencyForCountry(country)

	srv.log(ctx).Debug("Upserting profile locale",
		slog.Any("userID", userID),
		slog.String("country", country),
		slog.String("currency", currency),
	)

	if err := srv.profileRepo.UpsertLocale(ctx, userID, country, currency); err != nil {
		return errors.Wrap(err, "failed to upsert locale")
	}

	return nil
}

// UploadAvatar stores a new avatar image and points the profile at it.
// The object key embeds the upload time so stale CDN caches never serve an
// old image under a reused key.
func (srv *profileService) UploadAvatar(ctx context.Context, userID uuid.UUID, input *usecase.UploadAvatarInput) (*entity.Profile, error) {
	srv.log(ctx).Info("Uploading avatar", slog.Any("userID", userID), slog.Int("bytes", len(input.Data)))

	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	path := fmt.Sprintf("%s_%d.%s", userID, time.Now().Unix(), strings.TrimPrefix(input.Extension, "."))
	avatarURL, err := srv.avatarStorage.Upload(ctx, path, input.Data, input.ContentType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload avatar")
	}

	if err := srv.profileRepo.UpdateAvatarURL(ctx, userID, avatarURL); err != nil {
		return nil, errors.Wrap(err, "failed to update avatar URL")
	}

	// Best-effort cleanup of the previous object; the profile row already
	// points at the new one.
	if profile.AvatarURL != "" {
		if err := srv.avatarStorage.Remove(ctx, profile.AvatarURL); err != nil {
			srv.log(ctx).Warn("Failed to remove previous avatar", slog.Any("userID", userID), slog.Any("error", err))
		}
	}

	profile.AvatarURL = avatarURL

	return profile, nil
}

// RemoveAvatar clears the avatar and deletes the stored object.
func (srv *profileService) RemoveAvatar(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	srv.log(ctx).Info("Removing avatar", slog.Any("userID", userID))

	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	if err := srv.profileRepo.UpdateAvatarURL(ctx, userID, ""); err != nil {
		return nil, errors.Wrap(err, "failed to clear avatar URL")
	}

	if profile.AvatarURL != "" {
		if err := srv.avatarStorage.Remove(ctx, profile.AvatarURL); err != nil {
			srv.log(ctx).Warn("Failed to remove avatar object", slog.Any("userID", userID), slog.Any("error", err))
		}
	}

	profile.AvatarURL = ""

	return profile, nil
}
