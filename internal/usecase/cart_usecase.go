package usecase

import (
	"context"

	"gearshop/internal/domain/entity"
)

// CartView is the ledger snapshot returned to callers, with its folds
// precomputed.
type CartView struct {
	Items      []entity.CartItem `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice int64             `json:"totalPrice"`
}

// CartUsecase manages durable local cart ledgers, one per cart key. All
// mutations are strictly ordered by call sequence; no server-side
// reconciliation happens.
type CartUsecase interface {
	Get(ctx context.Context, key string) (*CartView, error)
	Add(ctx context.Context, key string, item entity.CartItem) (*CartView, error)
	Remove(ctx context.Context, key string, productID string) (*CartView, error)
	SetQuantity(ctx context.Context, key string, productID string, quantity int) (*CartView, error)
	Clear(ctx context.Context, key string) error
}

// AddCartItemInput defines a line to merge into the cart.
type AddCartItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Price     int64  `json:"price" validate:"gte=0"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}
