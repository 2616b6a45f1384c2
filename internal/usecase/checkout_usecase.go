package usecase

import (
	"context"

	"gearshop/internal/domain/entity"
)

// CheckoutUsecase turns a local cart ledger into a durable order.
type CheckoutUsecase interface {
	// Checkout reads the ledger for the cart key directly, validates the
	// payment method against settings, writes the order, clears the
	// ledger and publishes an order event. Publishing is best-effort.
	Checkout(ctx context.Context, input *CheckoutInput) (*entity.Order, error)
}

// CheckoutInput defines the data required to place an order.
type CheckoutInput struct {
	CartKey         string `json:"cartKey" validate:"required"`
	UserID          string `json:"userId"`
	PaymentMethod   string `json:"paymentMethod" validate:"required,oneof=razorpay cod"`
	ShippingAddress string `json:"shippingAddress" validate:"required"`
}
