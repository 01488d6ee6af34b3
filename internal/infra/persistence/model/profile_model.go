package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. One row per user, created lazily
// on first profile access after sign-up.
type ProfileModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"type:varchar(100);not null"`
	Country   string    `gorm:"type:varchar(2)"`
	Currency  string    `gorm:"type:varchar(3)"`
	AvatarURL string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
