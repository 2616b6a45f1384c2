package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"gearshop/internal/domain/entity"
	"gearshop/internal/domain/gateway"
	"gearshop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// placeholder presentation for categories that only exist dynamically.
const (
	dynamicCategoryImage       = "/images/categories/placeholder.jpg"
	dynamicCategoryDescription = "Browse our range in this category."
)

// DefaultCategories is the fixed category set always served, regardless of
// what the live catalog contains. Entries here win over dynamically
// observed categories with the same name.
var DefaultCategories = []entity.Category{
	{ID: "seat-covers", Name: "Seat Covers", Description: "Custom-fit and universal seat covers.", Image: "/images/categories/seat-covers.jpg"},
	{ID: "floor-mats", Name: "Floor Mats", Description: "All-weather and carpet floor mats.", Image: "/images/categories/floor-mats.jpg"},
	{ID: "lighting", Name: "Lighting", Description: "LED headlamps, fog lamps and interior lighting.", Image: "/images/categories/lighting.jpg"},
	{ID: "audio", Name: "Audio", Description: "Speakers, subwoofers and head units.", Image: "/images/categories/audio.jpg"},
	{ID: "car-care", Name: "Car Care", Description: "Polish, wax and cleaning kits.", Image: "/images/categories/car-care.jpg"},
}

// catalogMirror implements the CatalogUsecase interface. Every push
// rebuilds the whole snapshot and derived category view; that is O(total
// products) per push, acceptable because push frequency and catalog size
// are small. Not designed for catalogs beyond a few thousand items.
type catalogMirror struct {
	gw     gateway.RealtimeGateway
	logger *slog.Logger

	mu         sync.Mutex
	sub        gateway.Subscription
	products   []entity.Product
	categories []entity.Category
	loading    bool
}

// CatalogMirrorParams holds dependencies for the catalog mirror, injected by Fx.
type CatalogMirrorParams struct {
	fx.In

	Gateway gateway.RealtimeGateway
	Logger  *slog.Logger
}

// NewCatalogMirror is the constructor for catalogMirror.
func NewCatalogMirror(params CatalogMirrorParams) usecase.CatalogUsecase {
	return &catalogMirror{
		gw:         params.Gateway,
		logger:     params.Logger,
		categories: DefaultCategories,
		loading:    true,
	}
}

// Start subscribes to the product collection. On subscription failure the
// mirror settles into the static default category view so callers never
// block indefinitely.
func (m *catalogMirror) Start(ctx context.Context) error {
	sub, err := m.gw.Subscribe(ctx, gateway.ProductsPath, m.onPush)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.loading = false
		m.categories = DefaultCategories
		m.logger.Error("catalog subscription failed, serving defaults", slog.Any("error", err))

		return errors.Wrap(err, "failed to subscribe to products")
	}
	m.sub = sub

	return nil
}

// Stop releases the subscription handle.
func (m *catalogMirror) Stop() {
	m.mu.Lock()
	sub := m.sub
	m.sub = nil
	m.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
}

// onPush rebuilds the product snapshot and derived category view.
func (m *catalogMirror) onPush(snap gateway.Snapshot) {
	var records map[string]entity.Product
	if snap.Value != nil {
		if err := json.Unmarshal(snap.Value, &records); err != nil {
			m.logger.Error("failed to decode product push", slog.Any("error", err))

			m.mu.Lock()
			m.loading = false
			m.mu.Unlock()

			return
		}
	}

	products := make([]entity.Product, 0, len(records))
	for id, p := range records {
		if p.ID == "" {
			p.ID = id
		}
		products = append(products, p)
	}
	// Order is irrelevant to correctness; sort by name so responses are
	// stable between pushes.
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })

	categories := deriveCategories(DefaultCategories, products)

	m.mu.Lock()
	m.products = products
	m.categories = categories
	m.loading = false
	m.mu.Unlock()

	m.logger.Debug("catalog snapshot rebuilt",
		slog.Int("products", len(products)),
		slog.Int("categories", len(categories)),
	)
}

// deriveCategories merges the default set with the distinct category names
// observed across products. Default entries keep their image and
// description on name collision; observed-only entries get a slugified id
// and placeholder presentation.
func deriveCategories(defaults []entity.Category, products []entity.Product) []entity.Category {
	result := make([]entity.Category, len(defaults))
	copy(result, defaults)

	known := make(map[string]struct{}, len(defaults))
	for _, c := range defaults {
		known[strings.ToLower(c.Name)] = struct{}{}
	}

	var dynamic []entity.Category
	for _, p := range products {
		name := strings.TrimSpace(p.Category)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := known[key]; ok {
			continue
		}
		known[key] = struct{}{}
		dynamic = append(dynamic, entity.Category{
			ID:          entity.Slugify(name),
			Name:        name,
			Description: dynamicCategoryDescription,
			Image:       dynamicCategoryImage,
		})
	}
	sort.Slice(dynamic, func(i, j int) bool { return dynamic[i].Name < dynamic[j].Name })

	return append(result, dynamic...)
}

// Products returns the current product snapshot.
func (m *catalogMirror) Products() []entity.Product {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]entity.Product, len(m.products))
	copy(out, m.products)

	return out
}

// Product returns a single product from the snapshot.
func (m *catalogMirror) Product(id string) (entity.Product, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.products {
		if p.ID == id {
			return p, true
		}
	}

	return entity.Product{}, false
}

// Categories returns the derived category view.
func (m *catalogMirror) Categories() []entity.Category {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]entity.Category, len(m.categories))
	copy(out, m.categories)

	return out
}

// Loading reports whether the first push is still pending.
func (m *catalogMirror) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.loading
}
