// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"orda/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase defines the interface for session management operations.
type SessionUsecase interface {
	GetActiveSessions(ctx context.Context, userID uuid.UUID) ([]*entity.SessionInfo, error)
	RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error
	RevokeAllSessions(ctx context.Context, userID uuid.UUID) error
}
