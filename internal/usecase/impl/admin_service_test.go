package impl

import (
	"context"
	"testing"
	"time"

	"gearshop/internal/domain/entity"
	"gearshop/internal/domain/gateway"
	"gearshop/internal/errors"
	"gearshop/internal/infra/memory"
	"gearshop/internal/usecase"

	domainerrors "gearshop/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// queryFailGateway simulates a store without the required index, forcing the
// category lookup onto its client-side fallback path.
type queryFailGateway struct {
	*memory.Gateway
}

func (g *queryFailGateway) Query(context.Context, string, string, any, any) error {
	return errors.New("index not defined")
}

func newAdminService(gw gateway.RealtimeGateway) usecase.AdminUsecase {
	return NewAdminService(AdminServiceParams{
		Gateway: gw,
		Logger:  newDiscardLogger(),
	})
}

func TestAdminService_CreateProduct_StampsTimestamps(t *testing.T) {
	gw := memory.NewGateway()
	svc := newAdminService(gw)

	before := time.Now().UTC()
	product, err := svc.CreateProduct(context.Background(), &usecase.ProductInput{
		Name:     "LED Fog Lamp Pair",
		Price:    189900,
		Stock:    25,
		Category: "Lighting",
		Images:   []string{"/images/products/fog.jpg"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, product.CreatedAt, product.UpdatedAt)
	assert.False(t, product.CreatedAt.Before(before))

	stored, err := svc.GetProduct(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, "LED Fog Lamp Pair", stored.Name)
}

func TestAdminService_UpdateProduct_PreservesCreatedAt(t *testing.T) {
	gw := memory.NewGateway()
	svc := newAdminService(gw)

	created, err := svc.CreateProduct(context.Background(), &usecase.ProductInput{
		Name:     "Bass Tube",
		Price:    599900,
		Category: "Audio",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(context.Background(), created.ID, &usecase.ProductInput{
		Name:     "Bass Tube 1200W",
		Price:    649900,
		Category: "Audio",
	})
	require.NoError(t, err)

	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	assert.Equal(t, "Bass Tube 1200W", updated.Name)
}

func TestAdminService_UpdateProduct_NotFound(t *testing.T) {
	svc := newAdminService(memory.NewGateway())

	_, err := svc.UpdateProduct(context.Background(), "missing", &usecase.ProductInput{
		Name:     "Ghost",
		Price:    100,
		Category: "None",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAdminService_DeleteProduct(t *testing.T) {
	gw := memory.NewGateway()
	svc := newAdminService(gw)
	seedProduct(gw, "p1", "Mud Flaps", "Exterior", 89900)

	require.NoError(t, svc.DeleteProduct(context.Background(), "p1"))

	_, err := svc.GetProduct(context.Background(), "p1")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAdminService_ListProducts_SortedByName(t *testing.T) {
	gw := memory.NewGateway()
	svc := newAdminService(gw)
	seedProduct(gw, "p1", "Zinc Polish", "Car Care", 39900)
	seedProduct(gw, "p2", "Air Freshener", "Car Care", 19900)

	products, err := svc.ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Air Freshener", products[0].Name)
	assert.Equal(t, "Zinc Polish", products[1].Name)
}

func TestAdminService_GetByCategory_IndexedQuery(t *testing.T) {
	gw := memory.NewGateway()
	svc := newAdminService(gw)
	seedProduct(gw, "p1", "Sub Woofer", "Audio", 799900)
	seedProduct(gw, "p2", "Mud Flaps", "Exterior", 89900)

	products, err := svc.GetByCategory(context.Background(), "Audio")

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Sub Woofer", products[0].Name)
}

func TestAdminService_GetByCategory_FallsBackToClientFilter(t *testing.T) {
	gw := memory.NewGateway()
	seedProduct(gw, "p1", "Sub Woofer", "Audio", 799900)
	seedProduct(gw, "p2", "Mud Flaps", "Exterior", 89900)

	svc := newAdminService(&queryFailGateway{Gateway: gw})

	products, err := svc.GetByCategory(context.Background(), "Audio")

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Sub Woofer", products[0].Name)
}

func TestAdminService_SetUserRole(t *testing.T) {
	gw := memory.NewGateway()
	svc := newAdminService(gw)
	seedProfile(gw, "u1", entity.RoleUser)

	require.NoError(t, svc.SetUserRole(context.Background(), "u1", entity.RoleAdmin))

	var stored entity.Profile
	found, err := gw.Read(context.Background(), gateway.Child(gateway.UsersPath, "u1"), &stored)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, entity.RoleAdmin, stored.Role)
	assert.Equal(t, "u1@example.com", stored.Email, "patch must not clobber untouched fields")
}

func TestAdminService_SetUserRole_Invalid(t *testing.T) {
	svc := newAdminService(memory.NewGateway())

	err := svc.SetUserRole(context.Background(), "u1", entity.Role("root"))

	assert.ErrorIs(t, err, domainerrors.ErrValidationRejected)
}

func TestAdminService_SetUserRole_UnknownUser(t *testing.T) {
	svc := newAdminService(memory.NewGateway())

	err := svc.SetUserRole(context.Background(), "ghost", entity.RoleAdmin)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAdminService_ListUsers_SortedByEmail(t *testing.T) {
	gw := memory.NewGateway()
	svc := newAdminService(gw)
	seedProfile(gw, "zeta", entity.RoleUser)
	seedProfile(gw, "alpha", entity.RoleAdmin)

	users, err := svc.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alpha", users[0].UID)
	assert.Equal(t, "zeta", users[1].UID)
}

func TestAdminService_HomeContent_FiltersAndSorts(t *testing.T) {
	gw := memory.NewGateway()
	svc := newAdminService(gw)
	ctx := context.Background()

	_, err := svc.SaveHeroSlide(ctx, &entity.HeroSlide{Title: "Monsoon Sale", Enabled: true, Order: 2})
	require.NoError(t, err)
	_, err = svc.SaveHeroSlide(ctx, &entity.HeroSlide{Title: "New Arrivals", Enabled: true, Order: 1})
	require.NoError(t, err)
	_, err = svc.SaveHeroSlide(ctx, &entity.HeroSlide{Title: "Draft", Enabled: false, Order: 0})
	require.NoError(t, err)

	_, err = svc.SaveHighlight(ctx, &entity.Highlight{Title: "Free Shipping", Enabled: true, Order: 1})
	require.NoError(t, err)

	view, err := svc.HomeContent(ctx)

	require.NoError(t, err)
	require.Len(t, view.HeroSlides, 2)
	assert.Equal(t, "New Arrivals", view.HeroSlides[0].Title)
	assert.Equal(t, "Monsoon Sale", view.HeroSlides[1].Title)
	require.Len(t, view.Highlights, 1)
	assert.Empty(t, view.BrandStory)
}

func TestAdminService_SaveHeroSlide_AssignsIDAndTimestamps(t *testing.T) {
	svc := newAdminService(memory.NewGateway())

	slide, err := svc.SaveHeroSlide(context.Background(), &entity.HeroSlide{Title: "Launch", Enabled: true})

	require.NoError(t, err)
	assert.NotEmpty(t, slide.ID)
	assert.False(t, slide.CreatedAt.IsZero())
	assert.Equal(t, slide.CreatedAt, slide.UpdatedAt)
}

func TestAdminService_SetOrderStatus(t *testing.T) {
	gw := memory.NewGateway()
	svc := newAdminService(gw)

	order := entity.Order{
		ID:            "o1",
		TotalItems:    1,
		TotalPrice:    89900,
		PaymentMethod: "cod",
		Status:        entity.OrderPending,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	require.NoError(t, gw.Write(context.Background(), gateway.Child(gateway.OrdersPath, order.ID), order))

	require.NoError(t, svc.SetOrderStatus(context.Background(), "o1", entity.OrderShipped))

	var stored entity.Order
	found, err := gw.Read(context.Background(), gateway.Child(gateway.OrdersPath, "o1"), &stored)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, entity.OrderShipped, stored.Status)
}

func TestAdminService_SetOrderStatus_Invalid(t *testing.T) {
	svc := newAdminService(memory.NewGateway())

	err := svc.SetOrderStatus(context.Background(), "o1", entity.OrderStatus("teleported"))

	assert.ErrorIs(t, err, domainerrors.ErrValidationRejected)
}

func TestAdminService_ListOrders_NewestFirst(t *testing.T) {
	gw := memory.NewGateway()
	svc := newAdminService(gw)
	ctx := context.Background()

	older := entity.Order{ID: "o1", Status: entity.OrderPending, CreatedAt: time.Now().UTC().Add(-time.Hour)}
	newer := entity.Order{ID: "o2", Status: entity.OrderPending, CreatedAt: time.Now().UTC()}
	require.NoError(t, gw.Write(ctx, gateway.Child(gateway.OrdersPath, older.ID), older))
	require.NoError(t, gw.Write(ctx, gateway.Child(gateway.OrdersPath, newer.ID), newer))

	orders, err := svc.ListOrders(ctx)

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "o2", orders[0].ID)
	assert.Equal(t, "o1", orders[1].ID)
}
