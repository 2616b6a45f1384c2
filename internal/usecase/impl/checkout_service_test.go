package impl

import (
	"context"
	"testing"

	"gearshop/internal/domain/entity"
	"gearshop/internal/domain/gateway"
	"gearshop/internal/domain/service"
	"gearshop/internal/errors"
	"gearshop/internal/infra/memory"
	"gearshop/internal/usecase"

	domainerrors "gearshop/internal/domain/errors"
	mockService "gearshop/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	gw        *memory.Gateway
	cart      usecase.CartUsecase
	publisher *mockService.MockEventPublisher
	svc       usecase.CheckoutUsecase
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	gw := memory.NewGateway()
	cart := newCartService(t, t.TempDir())
	settings := newSettingsService(gw)
	publisher := &mockService.MockEventPublisher{}

	svc := NewCheckoutService(CheckoutServiceParams{
		Cart:      cart,
		Settings:  settings,
		Gateway:   gw,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})

	return &checkoutFixture{gw: gw, cart: cart, publisher: publisher, svc: svc}
}

func TestCheckoutService_Checkout_Success(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := f.cart.Add(ctx, "k1", entity.CartItem{ProductID: "p1", Name: "Floor Mats", Price: 149900, Quantity: 2})
	require.NoError(t, err)

	f.publisher.On("PublishOrderEvent", mock.Anything, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	order, err := f.svc.Checkout(ctx, &usecase.CheckoutInput{
		CartKey:         "k1",
		UserID:          "u1",
		PaymentMethod:   "cod",
		ShippingAddress: "12 MG Road, Pune",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, 2, order.TotalItems)
	assert.Equal(t, int64(2*149900), order.TotalPrice)

	var stored entity.Order
	found, err := f.gw.Read(ctx, gateway.Child(gateway.OrdersPath, order.ID), &stored)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, order.ID, stored.ID)

	cart, err := f.cart.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items, "a placed order empties the ledger")

	f.publisher.AssertExpectations(t)
}

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.svc.Checkout(context.Background(), &usecase.CheckoutInput{
		CartKey:         "empty",
		PaymentMethod:   "cod",
		ShippingAddress: "12 MG Road, Pune",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
	f.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestCheckoutService_Checkout_DisabledPaymentMethod(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	require.NoError(t, f.gw.Write(ctx, gateway.PaymentSettingsPath,
		entity.Settings{RazorpayEnabled: false, CODEnabled: true}))

	_, err := f.cart.Add(ctx, "k1", entity.CartItem{ProductID: "p1", Price: 100, Quantity: 1})
	require.NoError(t, err)

	_, err = f.svc.Checkout(ctx, &usecase.CheckoutInput{
		CartKey:         "k1",
		PaymentMethod:   "razorpay",
		ShippingAddress: "12 MG Road, Pune",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentMethodDisabled)

	cart, err := f.cart.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1, "a rejected checkout leaves the ledger intact")
}

func TestCheckoutService_Checkout_OrderWriteFailure(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := f.cart.Add(ctx, "k1", entity.CartItem{ProductID: "p1", Price: 100, Quantity: 1})
	require.NoError(t, err)

	// Settings are primed first so only the order write hits the failure.
	settings := newSettingsService(f.gw)
	_, err = settings.Fetch(ctx)
	require.NoError(t, err)

	svc := NewCheckoutService(CheckoutServiceParams{
		Cart:      f.cart,
		Settings:  settings,
		Gateway:   f.gw,
		Publisher: f.publisher,
		Logger:    newDiscardLogger(),
	})

	f.gw.FailWrites(errors.New("permission denied"))

	_, err = svc.Checkout(ctx, &usecase.CheckoutInput{
		CartKey:         "k1",
		PaymentMethod:   "cod",
		ShippingAddress: "12 MG Road, Pune",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRemoteWriteFailed)

	cart, cartErr := f.cart.Get(ctx, "k1")
	require.NoError(t, cartErr)
	assert.Len(t, cart.Items, 1, "the ledger is only cleared once the order is durable")
}

func TestCheckoutService_Checkout_PublishFailureTolerated(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := f.cart.Add(ctx, "k1", entity.CartItem{ProductID: "p1", Price: 100, Quantity: 1})
	require.NoError(t, err)

	f.publisher.On("PublishOrderEvent", mock.Anything, mock.AnythingOfType("*service.OrderEvent")).
		Return(errors.New("broker unavailable"))

	order, err := f.svc.Checkout(ctx, &usecase.CheckoutInput{
		CartKey:         "k1",
		PaymentMethod:   "cod",
		ShippingAddress: "12 MG Road, Pune",
	})

	require.NoError(t, err, "event publishing is best-effort")
	require.NotNil(t, order)
}

func TestCheckoutService_Checkout_EventCarriesOrderTotals(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := f.cart.Add(ctx, "k1", entity.CartItem{ProductID: "p1", Price: 250000, Quantity: 2})
	require.NoError(t, err)

	var published *service.OrderEvent
	f.publisher.On("PublishOrderEvent", mock.Anything, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(args mock.Arguments) {
			published = args.Get(1).(*service.OrderEvent)
		}).
		Return(nil)

	order, err := f.svc.Checkout(ctx, &usecase.CheckoutInput{
		CartKey:         "k1",
		UserID:          "u1",
		PaymentMethod:   "cod",
		ShippingAddress: "12 MG Road, Pune",
	})

	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, order.ID, published.OrderID)
	assert.Equal(t, "u1", published.UserID)
	assert.Equal(t, int64(500000), published.TotalPrice)
	assert.Equal(t, "cod", published.PaymentMethod)
}
