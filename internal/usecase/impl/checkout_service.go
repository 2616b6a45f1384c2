package impl

import (
	"context"
	"log/slog"
	"time"

	"gearshop/internal/domain/entity"
	"gearshop/internal/domain/gateway"
	"gearshop/internal/domain/service"
	"gearshop/internal/usecase"

	domainerrors "gearshop/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// checkoutService implements the CheckoutUsecase interface. Checkout reads
// the local ledger directly; nothing reconciles it against the remote store
// first.
type checkoutService struct {
	cart      usecase.CartUsecase
	settings  usecase.SettingsUsecase
	gw        gateway.RealtimeGateway
	publisher service.EventPublisher
	logger    *slog.Logger
}

// CheckoutServiceParams holds dependencies for the checkout service, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Cart      usecase.CartUsecase
	Settings  usecase.SettingsUsecase
	Gateway   gateway.RealtimeGateway
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		cart:      params.Cart,
		settings:  params.Settings,
		gw:        params.Gateway,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// Checkout places an order from the cart ledger.
func (srv *checkoutService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*entity.Order, error) {
	cart, err := srv.cart.Get(ctx, input.CartKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cart")
	}
	if len(cart.Items) == 0 {
		return nil, errors.Wrap(domainerrors.ErrEmptyCart, "cannot check out an empty cart")
	}

	settings, err := srv.settings.Fetch(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read payment settings")
	}
	if !settings.MethodEnabled(input.PaymentMethod) {
		return nil, errors.Wrapf(domainerrors.ErrPaymentMethodDisabled, "method %q", input.PaymentMethod)
	}

	now := time.Now().UTC()
	order := &entity.Order{
		ID:              uuid.NewString(),
		UserID:          input.UserID,
		Items:           cart.Items,
		TotalItems:      cart.TotalItems,
		TotalPrice:      cart.TotalPrice,
		PaymentMethod:   input.PaymentMethod,
		ShippingAddress: input.ShippingAddress,
		Status:          entity.OrderPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := srv.gw.Write(ctx, gateway.Child(gateway.OrdersPath, order.ID), order); err != nil {
		return nil, errors.Wrap(domainerrors.ErrRemoteWriteFailed, err.Error())
	}

	if err := srv.cart.Clear(ctx, input.CartKey); err != nil {
		// The order is already durable; an uncleared ledger is the lesser
		// failure and the user can clear it manually.
		srv.logger.Warn("failed to clear cart after checkout",
			slog.String("order_id", order.ID),
			slog.Any("error", err),
		)
	}

	event := &service.OrderEvent{
		OrderID:       order.ID,
		UserID:        order.UserID,
		TotalItems:    order.TotalItems,
		TotalPrice:    order.TotalPrice,
		PaymentMethod: order.PaymentMethod,
		PlacedAt:      order.CreatedAt,
	}
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.logger.Warn("failed to publish order event",
			slog.String("order_id", order.ID),
			slog.Any("error", err),
		)
	}

	srv.logger.Info("order placed",
		slog.String("order_id", order.ID),
		slog.Int64("total_price", order.TotalPrice),
		slog.String("payment_method", order.PaymentMethod),
	)

	return order, nil
}
