package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"gearshop/internal/domain/entity"
	"gearshop/internal/domain/gateway"
	"gearshop/internal/usecase"

	domainerrors "gearshop/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface: direct CRUD against
// the remote store with server-equivalent timestamps stamped on every
// write. Role-gating happens in the route layer; the gateway's own access
// rules are the actual enforcement point.
type adminService struct {
	gw     gateway.RealtimeGateway
	logger *slog.Logger
}

// AdminServiceParams holds dependencies for the admin service, injected by Fx.
type AdminServiceParams struct {
	fx.In

	Gateway gateway.RealtimeGateway
	Logger  *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		gw:     params.Gateway,
		logger: params.Logger,
	}
}

// --- Products ---

// CreateProduct writes a new product record, stamping both timestamps.
func (srv *adminService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	now := time.Now().UTC()
	product := &entity.Product{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		DiscountPrice: input.DiscountPrice,
		Stock:         input.Stock,
		Category:      input.Category,
		Model:         input.Model,
		Images:        input.Images,
		IsNew:         input.IsNew,
		IsFeatured:    input.IsFeatured,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := srv.gw.Write(ctx, gateway.Child(gateway.ProductsPath, product.ID), product); err != nil {
		return nil, errors.Wrap(domainerrors.ErrRemoteWriteFailed, err.Error())
	}

	srv.logger.Info("product created", slog.String("id", product.ID), slog.String("name", product.Name))

	return product, nil
}

// UpdateProduct replaces an existing product record, preserving createdAt
// and stamping updatedAt.
func (srv *adminService) UpdateProduct(ctx context.Context, id string, input *usecase.ProductInput) (*entity.Product, error) {
	existing, err := srv.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:            id,
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		DiscountPrice: input.DiscountPrice,
		Stock:         input.Stock,
		Category:      input.Category,
		Model:         input.Model,
		Images:        input.Images,
		IsNew:         input.IsNew,
		IsFeatured:    input.IsFeatured,
		CreatedAt:     existing.CreatedAt,
		UpdatedAt:     time.Now().UTC(),
	}

	if err := srv.gw.Write(ctx, gateway.Child(gateway.ProductsPath, id), product); err != nil {
		return nil, errors.Wrap(domainerrors.ErrRemoteWriteFailed, err.Error())
	}

	srv.logger.Info("product updated", slog.String("id", id))

	return product, nil
}

// DeleteProduct removes a product record.
func (srv *adminService) DeleteProduct(ctx context.Context, id string) error {
	if err := srv.gw.Delete(ctx, gateway.Child(gateway.ProductsPath, id)); err != nil {
		return errors.Wrap(domainerrors.ErrRemoteWriteFailed, err.Error())
	}

	srv.logger.Info("product deleted", slog.String("id", id))

	return nil
}

// GetProduct reads a single product record.
func (srv *adminService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	found, err := srv.gw.Read(ctx, gateway.Child(gateway.ProductsPath, id), &product)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRemoteReadFailed, err.Error())
	}
	if !found {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "product not found")
	}
	if product.ID == "" {
		product.ID = id
	}

	return &product, nil
}

// ListProducts reads the whole product collection.
func (srv *adminService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var records map[string]entity.Product
	if _, err := srv.gw.Read(ctx, gateway.ProductsPath, &records); err != nil {
		return nil, errors.Wrap(domainerrors.ErrRemoteReadFailed, err.Error())
	}

	return sortedProducts(records), nil
}

// GetByCategory performs a server-side indexed equality query, falling back
// to a full fetch with client-side filtering when the query fails.
func (srv *adminService) GetByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	var records map[string]entity.Product
	if err := srv.gw.Query(ctx, gateway.ProductsPath, "category", category, &records); err != nil {
		srv.logger.Warn("indexed category query failed, falling back to full fetch",
			slog.String("category", category),
			slog.Any("error", err),
		)

		all, listErr := srv.ListProducts(ctx)
		if listErr != nil {
			return nil, listErr
		}

		filtered := all[:0:0]
		for _, p := range all {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}

		return filtered, nil
	}

	return sortedProducts(records), nil
}

func sortedProducts(records map[string]entity.Product) []entity.Product {
	products := make([]entity.Product, 0, len(records))
	for id, p := range records {
		if p.ID == "" {
			p.ID = id
		}
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })

	return products
}

// --- Users ---

// SetUserRole patches a profile's role. The route layer guarantees the
// caller holds the superadmin role.
func (srv *adminService) SetUserRole(ctx context.Context, uid string, role entity.Role) error {
	if !role.IsValid() {
		return errors.Wrap(domainerrors.ErrValidationRejected, "unknown role")
	}

	var profile entity.Profile
	found, err := srv.gw.Read(ctx, gateway.Child(gateway.UsersPath, uid), &profile)
	if err != nil {
		return errors.Wrap(domainerrors.ErrRemoteReadFailed, err.Error())
	}
	if !found {
		return errors.Wrap(domainerrors.ErrNotFound, "profile not found")
	}

	patch := map[string]any{
		"role":      role,
		"updatedAt": time.Now().UTC(),
	}
	if err := srv.gw.Patch(ctx, gateway.Child(gateway.UsersPath, uid), patch); err != nil {
		return errors.Wrap(domainerrors.ErrRemoteWriteFailed, err.Error())
	}

	srv.logger.Info("user role changed", slog.String("uid", uid), slog.String("role", role.String()))

	return nil
}

// ListUsers reads all profile records.
func (srv *adminService) ListUsers(ctx context.Context) ([]entity.Profile, error) {
	var records map[string]entity.Profile
	if _, err := srv.gw.Read(ctx, gateway.UsersPath, &records); err != nil {
		return nil, errors.Wrap(domainerrors.ErrRemoteReadFailed, err.Error())
	}

	profiles := make([]entity.Profile, 0, len(records))
	for uid, p := range records {
		if p.UID == "" {
			p.UID = uid
		}
		profiles = append(profiles, p)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Email < profiles[j].Email })

	return profiles, nil
}

// --- Home content ---

// SaveHeroSlide creates or updates a hero slide.
func (srv *adminService) SaveHeroSlide(ctx context.Context, slide *entity.HeroSlide) (*entity.HeroSlide, error) {
	now := time.Now().UTC()
	if slide.ID == "" {
		slide.ID = uuid.NewString()
		slide.CreatedAt = now
	}
	slide.UpdatedAt = now

	if err := srv.gw.Write(ctx, gateway.Child(gateway.HeroSlidesPath, slide.ID), slide); err != nil {
		return nil, errors.Wrap(domainerrors.ErrRemoteWriteFailed, err.Error())
	}

	return slide, nil
}

// DeleteHeroSlide removes a hero slide.
func (srv *adminService) DeleteHeroSlide(ctx context.Context, id string) error {
	return errors.Wrap(srv.gw.Delete(ctx, gateway.Child(gateway.HeroSlidesPath, id)), "failed to delete hero slide")
}

// SaveHighlight creates or updates a highlight tile.
func (srv *adminService) SaveHighlight(ctx context.Context, highlight *entity.Highlight) (*entity.Highlight, error) {
	now := time.Now().UTC()
	if highlight.ID == "" {
		highlight.ID = uuid.NewString()
		highlight.CreatedAt = now
	}
	highlight.UpdatedAt = now

	if err := srv.gw.Write(ctx, gateway.Child(gateway.HighlightsPath, highlight.ID), highlight); err != nil {
		return nil, errors.Wrap(domainerrors.ErrRemoteWriteFailed, err.Error())
	}

	return highlight, nil
}

// DeleteHighlight removes a highlight tile.
func (srv *adminService) DeleteHighlight(ctx context.Context, id string) error {
	return errors.Wrap(srv.gw.Delete(ctx, gateway.Child(gateway.HighlightsPath, id)), "failed to delete highlight")
}

// SaveBrandStory creates or updates a brand story block.
func (srv *adminService) SaveBrandStory(ctx context.Context, story *entity.BrandStory) (*entity.BrandStory, error) {
	now := time.Now().UTC()
	if story.ID == "" {
		story.ID = uuid.NewString()
		story.CreatedAt = now
	}
	story.UpdatedAt = now

	if err := srv.gw.Write(ctx, gateway.Child(gateway.BrandStoryPath, story.ID), story); err != nil {
		return nil, errors.Wrap(domainerrors.ErrRemoteWriteFailed, err.Error())
	}

	return story, nil
}

// DeleteBrandStory removes a brand story block.
func (srv *adminService) DeleteBrandStory(ctx context.Context, id string) error {
	return errors.Wrap(srv.gw.Delete(ctx, gateway.Child(gateway.BrandStoryPath, id)), "failed to delete brand story")
}

// HomeContent returns enabled entries sorted by their order field. Records
// carry no cross-entity invariants, so each family loads independently.
func (srv *adminService) HomeContent(ctx context.Context) (*usecase.HomeContentView, error) {
	view := &usecase.HomeContentView{}

	var slides map[string]entity.HeroSlide
	if _, err := srv.gw.Read(ctx, gateway.HeroSlidesPath, &slides); err != nil {
		return nil, errors.Wrap(domainerrors.ErrRemoteReadFailed, err.Error())
	}
	for id, s := range slides {
		if s.ID == "" {
			s.ID = id
		}
		if s.Enabled {
			view.HeroSlides = append(view.HeroSlides, s)
		}
	}
	sort.Slice(view.HeroSlides, func(i, j int) bool { return view.HeroSlides[i].Order < view.HeroSlides[j].Order })

	var highlights map[string]entity.Highlight
	if _, err := srv.gw.Read(ctx, gateway.HighlightsPath, &highlights); err != nil {
		return nil, errors.Wrap(domainerrors.ErrRemoteReadFailed, err.Error())
	}
	for id, h := range highlights {
		if h.ID == "" {
			h.ID = id
		}
		if h.Enabled {
			view.Highlights = append(view.Highlights, h)
		}
	}
	sort.Slice(view.Highlights, func(i, j int) bool { return view.Highlights[i].Order < view.Highlights[j].Order })

	var stories map[string]entity.BrandStory
	if _, err := srv.gw.Read(ctx, gateway.BrandStoryPath, &stories); err != nil {
		return nil, errors.Wrap(domainerrors.ErrRemoteReadFailed, err.Error())
	}
	for id, b := range stories {
		if b.ID == "" {
			b.ID = id
		}
		if b.Enabled {
			view.BrandStory = append(view.BrandStory, b)
		}
	}
	sort.Slice(view.BrandStory, func(i, j int) bool { return view.BrandStory[i].Order < view.BrandStory[j].Order })

	return view, nil
}

// --- Orders ---

// ListOrders reads all order records, newest first.
func (srv *adminService) ListOrders(ctx context.Context) ([]entity.Order, error) {
	var records map[string]entity.Order
	if _, err := srv.gw.Read(ctx, gateway.OrdersPath, &records); err != nil {
		return nil, errors.Wrap(domainerrors.ErrRemoteReadFailed, err.Error())
	}

	orders := make([]entity.Order, 0, len(records))
	for id, o := range records {
		if o.ID == "" {
			o.ID = id
		}
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })

	return orders, nil
}

// SetOrderStatus patches an order's status.
func (srv *adminService) SetOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	if !status.IsValid() {
		return errors.Wrap(domainerrors.ErrValidationRejected, "unknown order status")
	}

	var order entity.Order
	found, err := srv.gw.Read(ctx, gateway.Child(gateway.OrdersPath, id), &order)
	if err != nil {
		return errors.Wrap(domainerrors.ErrRemoteReadFailed, err.Error())
	}
	if !found {
		return errors.Wrap(domainerrors.ErrNotFound, "order not found")
	}

	patch := map[string]any{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}
	if err := srv.gw.Patch(ctx, gateway.Child(gateway.OrdersPath, id), patch); err != nil {
		return errors.Wrap(domainerrors.ErrRemoteWriteFailed, err.Error())
	}

	srv.logger.Info("order status changed", slog.String("id", id), slog.String("status", string(status)))

	return nil
}
