package impl

import (
	"context"
	"testing"

	"orda/internal/domain/entity"
	domainerrors "orda/internal/domain/errors"
	"orda/internal/domain/repository"
	mockRepo "orda/internal/mocks/repository"
	mockSvc "orda/internal/mocks/service"
	"orda/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service       usecase.ProfileUsecase
	profileRepo   *mockRepo.MockProfileRepository
	avatarStorage *mockSvc.MockAvatarStorage
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	avatarStorage := mockSvc.NewMockAvatarStorage(t)

	service := NewProfileService(ProfileServiceParams{
		TxManager:     txManager,
		ProfileRepo:   profileRepo,
		AvatarStorage: avatarStorage,
		Logger:        newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:       service,
		profileRepo:   profileRepo,
		avatarStorage: avatarStorage,
	}
}

func TestProfileService_EnsureProfile_Existing(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Profile{UserID: userID, Username: "alice"}

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)

	profile, err := fx.service.EnsureProfile(ctx, userID, "alice@example.com")

	require.NoError(t, err)
	assert.Same(t, existing, profile)
}

func TestProfileService_EnsureProfile_ProvisionsOnFirstAccess(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	fx.profileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(ctx context.Context, profile *entity.Profile) {
			assert.Equal(t, userID, profile.UserID)
			assert.Equal(t, "alice", profile.Username)
			assert.Equal(t, entity.DefaultCountry, profile.Country)
			assert.Equal(t, entity.DefaultCurrency, profile.Currency)
		}).
		Return(nil)

	profile, err := fx.service.EnsureProfile(ctx, userID, "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
}

func TestProfileService_EnsureProfile_UnusableEmail(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	fx.profileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(ctx context.Context, profile *entity.Profile) {
			assert.Regexp(t, "^user_[0-9a-f]{6}$", profile.Username)
		}).
		Return(nil)

	_, err := fx.service.EnsureProfile(ctx, userID, "")

	require.NoError(t, err)
}

func TestProfileService_EnsureProfile_LostProvisioningRace(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	winner := &entity.Profile{UserID: userID, Username: "alice"}

	// A concurrent request created the row between our read and our insert;
	// the surviving row wins.
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound).Once()
	fx.profileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(domainerrors.ErrProfileAlreadyExists)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(winner, nil).Once()

	profile, err := fx.service.EnsureProfile(ctx, userID, "alice@example.com")

	require.NoError(t, err)
	assert.Same(t, winner, profile)
}

func TestProfileService_UpdateUsername(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	updated := &entity.Profile{UserID: userID, Username: "newname"}

	fx.profileRepo.EXPECT().UpdateUsername(ctx, userID, "newname").Return(nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(updated, nil)

	profile, err := fx.service.UpdateUsername(ctx, userID, "newname")

	require.NoError(t, err)
	assert.Equal(t, "newname", profile.Username)
}

func TestProfileService_UpdateUsername_NoProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().UpdateUsername(ctx, userID, "newname").Return(repository.ErrProfileNotFound)

	_, err := fx.service.UpdateUsername(ctx, userID, "newname")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProfileService_UpsertLocale(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().UpsertLocale(ctx, userID, "NG", "NGN").Return(nil)

	err := fx.service.UpsertLocale(ctx, userID, " ng ")

	require.NoError(t, err)
}

func TestProfileService_UpsertLocale_UnknownCountryFallsBack(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	// Unknown country keeps the code but derives the default currency.
	fx.profileRepo.EXPECT().UpsertLocale(ctx, userID, "ZZ", entity.DefaultCurrency).Return(nil)

	err := fx.service.UpsertLocale(ctx, userID, "ZZ")

	require.NoError(t, err)
}

func TestProfileService_UpsertLocale_EmptyCountry(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		UpsertLocale(ctx, userID, entity.DefaultCountry, entity.DefaultCurrency).
		Return(nil)

	err := fx.service.UpsertLocale(ctx, userID, "")

	require.NoError(t, err)
}

func TestProfileService_UploadAvatar_ReplacesPrevious(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	oldURL := "https://cdn.example.com/avatars/old.png"

	fx.profileRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.Profile{UserID: userID, AvatarURL: oldURL}, nil)
	fx.avatarStorage.EXPECT().
		Upload(ctx, mock.MatchedBy(func(path string) bool { return path != "" }), []byte("png-bytes"), "image/png").
		Return("https://cdn.example.com/avatars/new.png", nil)
	fx.profileRepo.EXPECT().
		UpdateAvatarURL(ctx, userID, "https://cdn.example.com/avatars/new.png").
		Return(nil)
	fx.avatarStorage.EXPECT().Remove(ctx, oldURL).Return(nil)

	profile, err := fx.service.UploadAvatar(ctx, userID, &usecase.UploadAvatarInput{
		Data:        []byte("png-bytes"),
		ContentType: "image/png",
		Extension:   "png",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/avatars/new.png", profile.AvatarURL)
}

func TestProfileService_UploadAvatar_CleanupFailureIsNotFatal(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	oldURL := "https://cdn.example.com/avatars/old.png"

	fx.profileRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.Profile{UserID: userID, AvatarURL: oldURL}, nil)
	fx.avatarStorage.EXPECT().
		Upload(ctx, mock.Anything, []byte("png-bytes"), "image/png").
		Return("https://cdn.example.com/avatars/new.png", nil)
	fx.profileRepo.EXPECT().
		UpdateAvatarURL(ctx, userID, "https://cdn.example.com/avatars/new.png").
		Return(nil)
	fx.avatarStorage.EXPECT().Remove(ctx, oldURL).Return(assert.AnError)

	profile, err := fx.service.UploadAvatar(ctx, userID, &usecase.UploadAvatarInput{
		Data:        []byte("png-bytes"),
		ContentType: "image/png",
		Extension:   "png",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/avatars/new.png", profile.AvatarURL)
}

func TestProfileService_RemoveAvatar(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	oldURL := "https://cdn.example.com/avatars/old.png"

	fx.profileRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.Profile{UserID: userID, AvatarURL: oldURL}, nil)
	fx.profileRepo.EXPECT().UpdateAvatarURL(ctx, userID, "").Return(nil)
	fx.avatarStorage.EXPECT().Remove(ctx, oldURL).Return(nil)

	profile, err := fx.service.RemoveAvatar(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, profile.AvatarURL)
}
