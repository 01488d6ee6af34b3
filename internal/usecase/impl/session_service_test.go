package impl

import (
	"context"
	"testing"
	"time"

	"orda/internal/domain/entity"
	domainerrors "orda/internal/domain/errors"
	mockRepo "orda/internal/mocks/repository"
	"orda/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSessionService(t *testing.T) (usecase.SessionUsecase, *mockRepo.MockRefreshTokenRepository) {
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

	svc := NewSessionService(SessionServiceParams{
		RefreshTokenRepo: refreshTokenRepo,
		Logger:           newDiscardLogger(),
	})

	return svc, refreshTokenRepo
}

func TestSessionService_GetActiveSessions(t *testing.T) {
	svc, refreshTokenRepo := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	tokens := []*entity.RefreshToken{
		{ID: uuid.New(), UserID: userID, ExpiresAt: time.Now().Add(time.Hour)},
		{ID: uuid.New(), UserID: userID, ExpiresAt: time.Now().Add(-time.Hour)},
	}

	refreshTokenRepo.EXPECT().FindRefreshTokensByUserID(ctx, userID).Return(tokens, nil)

	sessions, err := svc.GetActiveSessions(ctx, userID)

	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.True(t, sessions[0].IsActive)
	assert.False(t, sessions[1].IsActive)
}

func TestSessionService_RevokeSession(t *testing.T) {
	svc, refreshTokenRepo := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	tokens := []*entity.RefreshToken{{ID: sessionID, UserID: userID}}

	refreshTokenRepo.EXPECT().FindRefreshTokensByUserID(ctx, userID).Return(tokens, nil)
	refreshTokenRepo.EXPECT().DeleteRefreshToken(ctx, sessionID).Return(nil)

	err := svc.RevokeSession(ctx, userID, sessionID)

	require.NoError(t, err)
}

func TestSessionService_RevokeSession_NotOwned(t *testing.T) {
	svc, refreshTokenRepo := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	// A session ID that does not belong to the user looks like a missing one.
	refreshTokenRepo.EXPECT().
		FindRefreshTokensByUserID(ctx, userID).
		Return([]*entity.RefreshToken{{ID: uuid.New(), UserID: userID}}, nil)

	err := svc.RevokeSession(ctx, userID, uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestSessionService_RevokeAllSessions(t *testing.T) {
	svc, refreshTokenRepo := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	refreshTokenRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)

	err := svc.RevokeAllSessions(ctx, userID)

	require.NoError(t, err)
}
