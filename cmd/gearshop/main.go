package main

import (
	"context"
	"log/slog"
	"os"

	"gearshop/config"
	"gearshop/internal/delivery"
	"gearshop/internal/delivery/http"
	"gearshop/internal/delivery/http/middleware"
	"gearshop/internal/delivery/http/router/handler"
	"gearshop/internal/domain/gateway"
	"gearshop/internal/domain/service"
	"gearshop/internal/infra/auth"
	"gearshop/internal/infra/firebase"
	"gearshop/internal/infra/localstore"
	"gearshop/internal/infra/media"
	"gearshop/internal/infra/memory"
	"gearshop/internal/infra/pubsub"
	"gearshop/internal/usecase"
	"gearshop/internal/usecase/impl"

	logs "gearshop/internal/infra/log"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startCatalogMirror,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newRealtimeGateway,
	)
}

// newRealtimeGateway selects the data gateway from configuration. The
// in-memory gateway serves local development and tests; everything talking
// through the gateway interface is unaware of the difference.
func newRealtimeGateway(ctx context.Context, cfg *config.Config, logger *slog.Logger) (gateway.RealtimeGateway, error) {
	switch cfg.Gateway.Provider {
	case "firebase":
		app, err := firebase.NewApp(ctx, cfg)
		if err != nil {
			return nil, err
		}

		return firebase.NewGateway(ctx, app, cfg.Gateway.PollInterval, logger)

	case "", "memory":
		logger.Info("Using in-memory data gateway")

		return memory.NewGateway(), nil

	default:
		return nil, errors.Errorf("unknown gateway provider: %s", cfg.Gateway.Provider)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newIdentityProvider,
			newCartStore,
			newMediaUploader,
			pubsub.NewEventPublisher,
		),
	)
}

func newIdentityProvider(ctx context.Context, cfg *config.Config) (service.IdentityProvider, error) {
	switch cfg.Auth.Provider {
	case "firebase":
		app, err := firebase.NewApp(ctx, cfg)
		if err != nil {
			return nil, err
		}

		return firebase.NewIdentityProvider(ctx, app)

	case "", "local":
		return auth.NewLocalIdentityProvider(cfg.Auth.LocalSecret), nil

	default:
		return nil, errors.Errorf("unknown auth provider: %s", cfg.Auth.Provider)
	}
}

func newCartStore(cfg *config.Config) (service.CartStore, error) {
	return localstore.NewFileStore(cfg.Cart.Dir, cfg.Cart.Namespace)
}

func newMediaUploader(cfg *config.Config, logger *slog.Logger) service.MediaUploader {
	endpoint := ""
	if cfg.Media != nil {
		endpoint = cfg.Media.Endpoint
	}
	if endpoint == "" {
		logger.Warn("media endpoint not configured, uploads will fail")
	}

	return media.NewUploader(endpoint, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionStore,
			impl.NewCatalogMirror,
			impl.NewCartService,
			impl.NewSettingsService,
			impl.NewAdminService,
			impl.NewCheckoutService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewSettingsHandler,
			handler.NewAdminHandler,
			handler.NewMediaHandler,
		),
	)
}

// startCatalogMirror ties the product subscription to the application
// lifecycle. A subscription failure is not fatal; the mirror serves the
// default category view until the process is restarted.
func startCatalogMirror(lc fx.Lifecycle, catalog usecase.CatalogUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := catalog.Start(ctx); err != nil {
				logger.Error("catalog mirror degraded to defaults", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(context.Context) error {
			catalog.Stop()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
