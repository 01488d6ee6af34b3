package service

import (
	"context"
)

// OrderEvent is published whenever an order changes state, for async
// consumers (hotel dashboards, audit).
type OrderEvent struct {
	RequestID     string  `json:"request_id,omitempty"` // For distributed tracing
	EventType     string  `json:"event_type"`           // "order.placed" or "order.cancelled"
	OrderID       string  `json:"order_id"`
	CustomerID    string  `json:"customer_id"`
	HotelID       int64   `json:"hotel_id"`
	ItemID        int64   `json:"item_id"`
	ItemType      string  `json:"item_type"`
	Quantity      int     `json:"quantity"`
	TotalPrice    float64 `json:"total_price"`
	PaymentMethod string  `json:"payment_method"`
}

// Order event types.
const (
	OrderEventPlaced    = "order.placed"
	OrderEventCancelled = "order.cancelled"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing.
	// Publish failures must not fail the order operation itself.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
