package repository

import (
	"context"
	"errors"

	"orda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when no stored refresh token matches.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository persists long-lived session tokens (hashed).
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)
	FindRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error)
	DeleteRefreshToken(ctx context.Context, id uuid.UUID) error
	DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error
	DeleteExpiredRefreshTokens(ctx context.Context) error
}
