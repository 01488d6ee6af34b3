// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the authenticated principal issued by the auth subsystem.
// It carries only identity information; application-level data lives on Profile.
type User struct {
	ID        uuid.UUID // The unique identifier for the user.
	Email     string    // The user's primary contact email, used as a login identifier.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}
