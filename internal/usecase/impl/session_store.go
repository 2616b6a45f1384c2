// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gearshop/internal/domain/entity"
	"gearshop/internal/domain/gateway"
	"gearshop/internal/domain/service"
	"gearshop/internal/usecase"

	domainerrors "gearshop/internal/domain/errors"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionStore implements the SessionUsecase interface.
//
// Every identity change bumps a sequence number that is captured by the
// asynchronous profile fetch it dispatches; a fetch whose number is stale by
// the time it completes is discarded, so the profile always belongs to the
// most recent identity even when fetches race a sign-out.
type sessionStore struct {
	gw       gateway.RealtimeGateway
	provider service.IdentityProvider
	logger   *slog.Logger

	mu      sync.Mutex
	seq     uint64
	profile *entity.Profile
	loaded  bool
	wg      sync.WaitGroup
}

// SessionStoreParams holds dependencies for the session store, injected by Fx.
type SessionStoreParams struct {
	fx.In

	Gateway  gateway.RealtimeGateway
	Provider service.IdentityProvider
	Logger   *slog.Logger
}

// NewSessionStore is the constructor for sessionStore.
func NewSessionStore(params SessionStoreParams) usecase.SessionUsecase {
	return &sessionStore{
		gw:       params.Gateway,
		provider: params.Provider,
		logger:   params.Logger,
		loaded:   true,
	}
}

// SetIdentity reacts to an identity change. The profile fetch is
// fire-and-forget relative to the caller.
func (s *sessionStore) SetIdentity(ctx context.Context, identity *entity.Identity) {
	s.mu.Lock()
	s.seq++
	dispatched := s.seq

	if identity == nil {
		s.profile = nil
		s.loaded = true
		s.mu.Unlock()
		s.logger.Debug("identity cleared")

		return
	}

	s.loaded = false
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.fetchProfile(ctx, identity.UID, dispatched)
	}()
}

func (s *sessionStore) fetchProfile(ctx context.Context, uid string, dispatched uint64) {
	var profile entity.Profile
	found, err := s.gw.Read(ctx, gateway.Child(gateway.UsersPath, uid), &profile)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seq != dispatched {
		s.logger.Debug("discarding stale profile fetch",
			slog.String("uid", uid),
			slog.Uint64("dispatched", dispatched),
			slog.Uint64("current", s.seq),
		)

		return
	}

	s.loaded = true
	switch {
	case err != nil:
		// A failed fetch leaves the profile empty; no retry.
		s.profile = nil
		s.logger.Error("profile fetch failed", slog.String("uid", uid), slog.Any("error", err))
	case !found:
		s.profile = nil
		s.logger.Warn("no profile record for identity", slog.String("uid", uid))
	default:
		s.profile = &profile
	}
}

// Profile returns the currently mirrored profile.
func (s *sessionStore) Profile() *entity.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.profile
}

// Loaded reports whether the store has settled.
func (s *sessionStore) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loaded
}

// Wait blocks until in-flight profile fetches have settled.
func (s *sessionStore) Wait() {
	s.wg.Wait()
}

// Register creates the identity and writes its profile record. A profile
// write failure does not fail registration: the identity stays signed in
// and the output carries a warning instead.
func (s *sessionStore) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	s.logger.Info("Starting registration", slog.String("email", input.Email))

	identity, err := s.provider.CreateIdentity(ctx, input.Email, input.Password, input.Name)
	if err != nil {
		s.logger.Error("identity creation failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrIdentityCreationFailed, err.Error())
	}

	now := time.Now().UTC()
	profile := &entity.Profile{
		UID:         identity.UID,
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
		Role:        entity.RoleUser,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.gw.Write(ctx, gateway.Child(gateway.UsersPath, identity.UID), profile); err != nil {
		s.logger.Warn("profile setup failed after identity creation; user remains signed in",
			slog.String("uid", identity.UID),
			slog.Any("error", err),
		)

		return &usecase.RegisterOutput{
			Identity:       identity,
			ProfileWarning: "profile setup failed; please retry from account settings",
		}, nil
	}

	s.logger.Debug("Registration completed", slog.String("uid", identity.UID))

	return &usecase.RegisterOutput{Identity: identity, Profile: profile}, nil
}
