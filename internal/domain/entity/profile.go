package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the application-level user record, keyed by the user's identity ID.
// At most one Profile exists per user; it is created lazily on first
// authenticated access and updated by the username and locale workflows.
type Profile struct {
	UserID    uuid.UUID // Equals the owning User.ID; primary key.
	Username  string    // Display name, defaulted from the email local part on provisioning.
	Country   string    // ISO 3166-1 alpha-2 country code, upserted at sign-in.
	Currency  string    // ISO 4217 currency code derived from Country.
	AvatarURL string    // Public URL of the uploaded avatar image, empty when unset.
	CreatedAt time.Time
	UpdatedAt time.Time
}
