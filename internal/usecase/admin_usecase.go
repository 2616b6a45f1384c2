package usecase

import (
	"context"

	"gearshop/internal/domain/entity"
)

// AdminUsecase wraps the role-gated mutations against the remote store.
// Role-gating itself is enforced in the route layer; this layer assumes
// cooperative callers and the gateway's own access rules remain the actual
// enforcement point.
type AdminUsecase interface {
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]entity.Product, error)

	// GetByCategory uses a server-side indexed equality query when the
	// gateway supports one, falling back to a full fetch with client-side
	// filtering.
	GetByCategory(ctx context.Context, category string) ([]entity.Product, error)

	// SetUserRole escalates or de-escalates a profile's role. Reachable
	// only through the superadmin gate.
	SetUserRole(ctx context.Context, uid string, role entity.Role) error
	ListUsers(ctx context.Context) ([]entity.Profile, error)

	SaveHeroSlide(ctx context.Context, slide *entity.HeroSlide) (*entity.HeroSlide, error)
	DeleteHeroSlide(ctx context.Context, id string) error
	SaveHighlight(ctx context.Context, highlight *entity.Highlight) (*entity.Highlight, error)
	DeleteHighlight(ctx context.Context, id string) error
	SaveBrandStory(ctx context.Context, story *entity.BrandStory) (*entity.BrandStory, error)
	DeleteBrandStory(ctx context.Context, id string) error

	// HomeContent returns the presentational records filtered to enabled
	// entries and sorted by their order field.
	HomeContent(ctx context.Context) (*HomeContentView, error)

	ListOrders(ctx context.Context) ([]entity.Order, error)
	SetOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error
}

// ProductInput defines the data for product create/update.
type ProductInput struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description"`
	Price         int64    `json:"price" validate:"gt=0"`
	DiscountPrice int64    `json:"discountPrice" validate:"gte=0"`
	Stock         int      `json:"stock" validate:"gte=0"`
	Category      string   `json:"category" validate:"required"`
	Model         string   `json:"model"`
	Images        []string `json:"images"`
	IsNew         bool     `json:"isNew"`
	IsFeatured    bool     `json:"isFeatured"`
}

// HomeContentView is the display-ready homepage content.
type HomeContentView struct {
	HeroSlides []entity.HeroSlide  `json:"heroSlides"`
	Highlights []entity.Highlight  `json:"highlights"`
	BrandStory []entity.BrandStory `json:"brandStory"`
}
