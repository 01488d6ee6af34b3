// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "orda/internal/delivery/context"
	"orda/internal/domain/entity"
	domainerrors "orda/internal/domain/errors"
	"orda/internal/domain/repository"
	"orda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	refreshTokenRepo repository.RefreshTokenRepository
	logger           *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	RefreshTokenRepo repository.RefreshTokenRepository
	Logger           *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		refreshTokenRepo: params.RefreshTokenRepo,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetActiveSessions lists the user's sessions, derived from stored refresh
// tokens. Expired tokens still appear, flagged inactive, until the cleanup
// job removes them.
func (srv *sessionService) GetActiveSessions(ctx context.Context, userID uuid.UUID) ([]*entity.SessionInfo, error) {
	tokens, err := srv.refreshTokenRepo.FindRefreshTokensByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list sessions", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list sessions")
	}

	now := time.Now()
	sessions := make([]*entity.SessionInfo, 0, len(tokens))
	for _, token := range tokens {
		sessions = append(sessions, &entity.SessionInfo{
			ID:        token.ID,
			UserID:    token.UserID,
			CreatedAt: token.CreatedAt,
			ExpiresAt: token.ExpiresAt,
			IsActive:  token.ExpiresAt.After(now),
		})
	}

	return sessions, nil
}

// RevokeSession deletes one of the user's sessions. The session must belong
// to the requesting user; revoking someone else's session is forbidden even
// if the ID is guessed.
func (srv *sessionService) RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	srv.log(ctx).Info("Revoking session", slog.Any("userID", userID), slog.Any("sessionID", sessionID))

	tokens, err := srv.refreshTokenRepo.FindRefreshTokensByUserID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to list sessions")
	}

	for _, token := range tokens {
		if token.ID == sessionID {
			return errors.Wrap(srv.refreshTokenRepo.DeleteRefreshToken(ctx, sessionID), "failed to delete session")
		}
	}

	return errors.Wrap(domainerrors.ErrNotFound, "session not found")
}

// RevokeAllSessions deletes every session the user has, signing them out
// everywhere. Access tokens already issued remain valid until they expire.
func (srv *sessionService) RevokeAllSessions(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Revoking all sessions", slog.Any("userID", userID))

	if err := srv.refreshTokenRepo.DeleteRefreshTokensByUserID(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to revoke sessions", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke sessions")
	}

	return nil
}
