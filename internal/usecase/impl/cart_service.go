package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"gearshop/internal/domain/entity"
	"gearshop/internal/domain/service"
	"gearshop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const cartKeyPrefix = "cart:"

// cartService implements the CartUsecase interface over the durable local
// store. A single mutex serializes mutations, so each ledger sees a strict
// call-sequence order, matching the single-threaded semantics of the
// aggregate. Ledgers have no expiry and are never reconciled remotely.
type cartService struct {
	store  service.CartStore
	logger *slog.Logger

	mu sync.Mutex
}

// CartServiceParams holds dependencies for the cart service, injected by Fx.
type CartServiceParams struct {
	fx.In

	Store  service.CartStore
	Logger *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		store:  params.Store,
		logger: params.Logger,
	}
}

func (s *cartService) load(key string) (*entity.Ledger, error) {
	raw, found, err := s.store.Get(cartKeyPrefix + key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart ledger")
	}

	ledger := &entity.Ledger{}
	if found {
		if err := json.Unmarshal(raw, ledger); err != nil {
			// A corrupt ledger is unrecoverable; start fresh rather than
			// wedging the cart forever.
			s.logger.Error("corrupt cart ledger, resetting", slog.String("key", key), slog.Any("error", err))
			*ledger = entity.Ledger{}
		}
	}

	return ledger, nil
}

func (s *cartService) save(key string, ledger *entity.Ledger) error {
	raw, err := json.Marshal(ledger)
	if err != nil {
		return errors.Wrap(err, "failed to encode cart ledger")
	}

	return errors.Wrap(s.store.Set(cartKeyPrefix+key, raw), "failed to persist cart ledger")
}

func view(ledger *entity.Ledger) *usecase.CartView {
	items := make([]entity.CartItem, len(ledger.Items))
	copy(items, ledger.Items)

	return &usecase.CartView{
		Items:      items,
		TotalItems: ledger.TotalItems(),
		TotalPrice: ledger.TotalPrice(),
	}
}

// Get returns the current ledger snapshot for key.
func (s *cartService) Get(_ context.Context, key string) (*usecase.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.load(key)
	if err != nil {
		return nil, err
	}

	return view(ledger), nil
}

// Add merges item into the ledger for key.
func (s *cartService) Add(_ context.Context, key string, item entity.CartItem) (*usecase.CartView, error) {
	return s.mutate(key, func(l *entity.Ledger) { l.Add(item) })
}

// Remove deletes the line for productID.
func (s *cartService) Remove(_ context.Context, key string, productID string) (*usecase.CartView, error) {
	return s.mutate(key, func(l *entity.Ledger) { l.Remove(productID) })
}

// SetQuantity applies a clamped quantity to the line for productID.
func (s *cartService) SetQuantity(_ context.Context, key string, productID string, quantity int) (*usecase.CartView, error) {
	return s.mutate(key, func(l *entity.Ledger) { l.SetQuantity(productID, quantity) })
}

// Clear empties the ledger for key.
func (s *cartService) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return errors.Wrap(s.store.Delete(cartKeyPrefix+key), "failed to clear cart ledger")
}

func (s *cartService) mutate(key string, fn func(*entity.Ledger)) (*usecase.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.load(key)
	if err != nil {
		return nil, err
	}

	fn(ledger)

	if err := s.save(key, ledger); err != nil {
		return nil, err
	}

	return view(ledger), nil
}
