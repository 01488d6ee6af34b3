package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of a placed order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaymentMethod selects how a placed order is paid for.
type PaymentMethod string

const (
	// PaymentMethodArrival defers payment to arrival at the hotel.
	PaymentMethodArrival PaymentMethod = "arrival"
	// PaymentMethodOnline pays through the external checkout before the order is recorded.
	PaymentMethodOnline PaymentMethod = "online"
)

// Valid reports whether the payment method is one of the known values.
func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodArrival || m == PaymentMethodOnline
}

// Order is a single-line-item order placed by a customer. Orders are created
// with status pending and may only be cancelled by the customer while still
// pending; all other status transitions belong to the hotel side.
type Order struct {
	ID            uuid.UUID     `json:"id"`
	CustomerID    uuid.UUID     `json:"customer_id"`
	HotelID       int64         `json:"hotel_id"`
	ItemID        int64         `json:"item_id"`
	ItemType      ItemType      `json:"item_type"`
	Quantity      int           `json:"quantity"`
	TotalPrice    float64       `json:"total_price"`
	Status        OrderStatus   `json:"status"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	CreatedAt     time.Time     `json:"created_at"`
}
