package impl

import (
	"context"
	"testing"

	"gearshop/internal/domain/entity"
	"gearshop/internal/infra/localstore"
	"gearshop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartService(t *testing.T, dir string) usecase.CartUsecase {
	t.Helper()

	store, err := localstore.NewFileStore(dir, "test-cart")
	require.NoError(t, err)

	return NewCartService(CartServiceParams{
		Store:  store,
		Logger: newDiscardLogger(),
	})
}

func TestCartService_Add_MergesSameProduct(t *testing.T) {
	svc := newCartService(t, t.TempDir())
	ctx := context.Background()

	_, err := svc.Add(ctx, "k1", entity.CartItem{ProductID: "p1", Name: "Floor Mats", Price: 149900, Quantity: 2})
	require.NoError(t, err)

	cart, err := svc.Add(ctx, "k1", entity.CartItem{ProductID: "p1", Name: "Floor Mats", Price: 149900, Quantity: 3})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 5, cart.TotalItems)
	assert.Equal(t, int64(5*149900), cart.TotalPrice)
}

func TestCartService_LedgerSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first := newCartService(t, dir)
	_, err := first.Add(ctx, "k1", entity.CartItem{ProductID: "p1", Name: "Seat Covers", Price: 249900, Quantity: 1})
	require.NoError(t, err)

	second := newCartService(t, dir)
	cart, err := second.Get(ctx, "k1")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p1", cart.Items[0].ProductID)
}

func TestCartService_KeysAreIsolated(t *testing.T) {
	svc := newCartService(t, t.TempDir())
	ctx := context.Background()

	_, err := svc.Add(ctx, "k1", entity.CartItem{ProductID: "p1", Price: 100, Quantity: 1})
	require.NoError(t, err)

	other, err := svc.Get(ctx, "k2")
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}

func TestCartService_SetQuantityAndRemove(t *testing.T) {
	svc := newCartService(t, t.TempDir())
	ctx := context.Background()

	_, err := svc.Add(ctx, "k1", entity.CartItem{ProductID: "p1", Price: 100, Quantity: 2})
	require.NoError(t, err)
	_, err = svc.Add(ctx, "k1", entity.CartItem{ProductID: "p2", Price: 200, Quantity: 1})
	require.NoError(t, err)

	cart, err := svc.SetQuantity(ctx, "k1", "p1", 7)
	require.NoError(t, err)
	assert.Equal(t, 8, cart.TotalItems)

	cart, err = svc.SetQuantity(ctx, "k1", "p1", 0)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)

	cart, err = svc.Remove(ctx, "k1", "p2")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalPrice)
}

func TestCartService_Clear(t *testing.T) {
	svc := newCartService(t, t.TempDir())
	ctx := context.Background()

	_, err := svc.Add(ctx, "k1", entity.CartItem{ProductID: "p1", Price: 100, Quantity: 3})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "k1"))

	cart, err := svc.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartService_CorruptLedgerResets(t *testing.T) {
	dir := t.TempDir()
	store, err := localstore.NewFileStore(dir, "test-cart")
	require.NoError(t, err)
	require.NoError(t, store.Set(cartKeyPrefix+"k1", []byte("{not json")))

	svc := NewCartService(CartServiceParams{Store: store, Logger: newDiscardLogger()})

	cart, err := svc.Get(context.Background(), "k1")
	require.NoError(t, err, "a corrupt ledger resets instead of wedging the cart")
	assert.Empty(t, cart.Items)
}
