package usecase

import (
	"context"

	"gearshop/internal/domain/entity"
)

// CatalogUsecase is the live read-through mirror of the product collection
// and its derived category view.
type CatalogUsecase interface {
	// Start subscribes to the product collection. The snapshot is rebuilt
	// on every push until Stop is called.
	Start(ctx context.Context) error

	// Stop releases the subscription handle; later pushes no longer touch
	// the snapshot.
	Stop()

	// Products returns the current product snapshot.
	Products() []entity.Product

	// Product returns a single product from the snapshot.
	Product(id string) (entity.Product, bool)

	// Categories returns the derived category view: the fixed default set
	// merged with the distinct categories observed across live products.
	Categories() []entity.Category

	// Loading reports whether the first push is still pending. A
	// subscription error clears it so callers never block indefinitely.
	Loading() bool
}
