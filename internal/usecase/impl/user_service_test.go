package impl

import (
	"context"
	"testing"
	"time"

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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T, maxActiveSessions int) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:        txManager,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Config:           newTestConfig(maxActiveSessions),
		Logger:           newDiscardLogger(),
	})

	return userServiceFixtures{
		service:          service,
		txManager:        txManager,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(nil, repository.ErrAuthNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Run(func(ctx context.Context, auth *entity.Authentication) {
					assert.Equal(t, "hashed_password", auth.PasswordHash)
					assert.Equal(t, input.Email, auth.ProviderUserID)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Email, output.User.Email)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(&entity.Authentication{UserID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockAuthRepo := mockRepo.NewMockAuthRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)

	mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

	mockAuthRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(&entity.Authentication{UserID: userID, PasswordHash: "stored_hash"}, nil)
	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: input.Email}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	fx.hasher.EXPECT().Check(input.Password, "stored_hash").Return(true)
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("access_token", "refresh_token", nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_token_hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour * 24 * 7)

	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, userID, token.UserID)
			assert.Equal(t, "refresh_token_hash", token.TokenHash)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "wrong",
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockAuthRepo := mockRepo.NewMockAuthRepository(t)
	mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

	mockAuthRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "stored_hash"}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	fx.hasher.EXPECT().Check(input.Password, "stored_hash").Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockAuthRepo := mockRepo.NewMockAuthRepository(t)
	mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

	mockAuthRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(nil, repository.ErrAuthNotFound)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	// Unknown email and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_SessionLimitEvictsOldest(t *testing.T) {
	fx := createTestUserService(t, 2)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	oldestID := uuid.New()
	existing := []*entity.RefreshToken{
		{ID: uuid.New(), UserID: userID, CreatedAt: time.Now()},
		{ID: oldestID, UserID: userID, CreatedAt: time.Now().Add(-time.Hour)},
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockAuthRepo := mockRepo.NewMockAuthRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

	mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

	mockAuthRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(&entity.Authentication{UserID: userID, PasswordHash: "stored_hash"}, nil)
	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: input.Email}, nil)

	// Tokens come back newest first; the oldest session is the one evicted.
	mockRefreshRepo.EXPECT().FindRefreshTokensByUserID(ctx, userID).Return(existing, nil)
	mockRefreshRepo.EXPECT().DeleteRefreshToken(ctx, oldestID).Return(nil)
	mockRefreshRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	fx.hasher.EXPECT().Check(input.Password, "stored_hash").Return(true)
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("access_token", "refresh_token", nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_token_hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour * 24 * 7)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RefreshTokenInput{RefreshToken: "valid_refresh_token"}

	fx.tokenService.EXPECT().ValidateRefreshToken(input.RefreshToken).Return(userID, nil)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("token_hash")
	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "token_hash").
		Return(&entity.RefreshToken{ID: uuid.New(), UserID: userID}, nil)
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("new_access_token", "unused_refresh", nil)

	output, err := fx.service.RefreshToken(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "new_access_token", output.AccessToken)
}

func TestUserService_RefreshToken_Revoked(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.RefreshTokenInput{RefreshToken: "revoked_refresh_token"}

	fx.tokenService.EXPECT().ValidateRefreshToken(input.RefreshToken).Return(uuid.New(), nil)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("token_hash")
	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "token_hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	output, err := fx.service.RefreshToken(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Logout_Success(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	tokenID := uuid.New()
	input := &usecase.LogoutInput{RefreshToken: "valid_refresh_token"}

	fx.tokenService.EXPECT().ValidateRefreshToken(input.RefreshToken).Return(uuid.New(), nil)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("token_hash")
	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "token_hash").
		Return(&entity.RefreshToken{ID: tokenID}, nil)
	fx.refreshTokenRepo.EXPECT().DeleteRefreshToken(ctx, tokenID).Return(nil)

	err := fx.service.Logout(ctx, input)

	require.NoError(t, err)
}

func TestUserService_Logout_AlreadyGone(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.LogoutInput{RefreshToken: "stale_refresh_token"}

	fx.tokenService.EXPECT().ValidateRefreshToken(input.RefreshToken).Return(uuid.Nil, assert.AnError)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("token_hash")
	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "token_hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	// Logging out a session that no longer exists is not an error.
	err := fx.service.Logout(ctx, input)

	require.NoError(t, err)
}
