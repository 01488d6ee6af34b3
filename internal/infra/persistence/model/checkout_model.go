package model

import (
	"time"

	"github.com/google/uuid"
)

// CheckoutModel mirrors the 'checkouts' table. The reference is the primary
// key so a processor callback can resolve a checkout without a join.
type CheckoutModel struct {
	Reference      string    `gorm:"type:varchar(64);primary_key"`
	CustomerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Email          string    `gorm:"type:varchar(255);not null"`
	AmountMinor    int64     `gorm:"not null"`
	Currency       string    `gorm:"type:varchar(3);not null"`
	HotelID        int64     `gorm:"not null"`
	ItemID         int64     `gorm:"not null"`
	ItemType       string    `gorm:"type:varchar(10);not null"`
	Quantity       int       `gorm:"not null"`
	TotalPrice     float64   `gorm:"not null"`
	Status         string    `gorm:"type:varchar(20);not null"`
	TransactionRef string    `gorm:"type:varchar(128)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CheckoutModel) TableName() string {
	return "checkouts"
}
