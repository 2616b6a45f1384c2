package service

import (
	"context"
	"time"
)

// OrderEvent is published after an order has been durably written. Delivery
// is best-effort; a publish failure never fails the checkout.
type OrderEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	OrderID       string    `json:"order_id"`
	UserID        string    `json:"user_id,omitempty"`
	TotalItems    int       `json:"total_items"`
	TotalPrice    int64     `json:"total_price"`
	PaymentMethod string    `json:"payment_method"`
	PlacedAt      time.Time `json:"placed_at"`
}

// EventPublisher publishes order events for downstream consumers
// (fulfilment, notifications).
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error
	Close() error
}
