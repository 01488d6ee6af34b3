package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. UUID columns align with PostgreSQL schema.
type OrderModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	HotelID       int64     `gorm:"not null"`
	ItemID        int64     `gorm:"not null"`
	ItemType      string    `gorm:"type:varchar(10);not null"`
	Quantity      int       `gorm:"not null"`
	TotalPrice    float64   `gorm:"not null"`
	Status        string    `gorm:"type:varchar(20);not null"`
	PaymentMethod string    `gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
