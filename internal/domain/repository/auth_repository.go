package repository

import (
	"context"
	"errors"

	"orda/internal/domain/entity"
)

// ErrAuthNotFound is returned when no authentication record matches.
var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository manages login credentials linked to users.
type AuthRepository interface {
	// FindAuthentication retrieves a credential by provider and provider-side identifier.
	FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error)

	// CreateAuthentication links a new credential to a user.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error
}
