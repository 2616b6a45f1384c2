package entity

import "time"

// OrderStatus is a free-form progression; there is no workflow machine
// enforcing transitions, admins set it directly.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

// Order is a checkout snapshot of the local cart ledger. Checkout reads the
// ledger directly; there is no server-side cart reconciliation.
type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId,omitempty"`
	Items           []CartItem  `json:"items"`
	TotalItems      int         `json:"totalItems"`
	TotalPrice      int64       `json:"totalPrice"`
	PaymentMethod   string      `json:"paymentMethod"`
	ShippingAddress string      `json:"shippingAddress"`
	Status          OrderStatus `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}
