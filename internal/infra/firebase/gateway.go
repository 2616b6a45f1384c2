package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"gearshop/internal/domain/gateway"
	"gearshop/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
)

const defaultPollInterval = 5 * time.Second

// Gateway implements gateway.RealtimeGateway on the Realtime Database.
//
// The Admin SDK exposes no streaming listener, so Subscribe is a poll-driven
// watcher: each subscription re-reads its path on an interval and pushes a
// snapshot whenever the encoded value changed. Per-path delivery order is
// preserved because each watcher is a single goroutine.
type Gateway struct {
	client       *db.Client
	logger       *slog.Logger
	pollInterval time.Duration
}

// NewGateway derives the database client from the Firebase app.
func NewGateway(ctx context.Context, app *firebase.App, pollInterval time.Duration, logger *slog.Logger) (*Gateway, error) {
	client, err := app.Database(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get database client")
	}
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	return &Gateway{client: client, logger: logger, pollInterval: pollInterval}, nil
}

// Read implements gateway.RealtimeGateway.
func (g *Gateway) Read(ctx context.Context, path string, dest any) (bool, error) {
	var raw json.RawMessage
	if err := g.client.NewRef(path).Get(ctx, &raw); err != nil {
		return false, errors.Wrapf(err, "read %s", path)
	}
	if isAbsent(raw) {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, errors.Wrapf(err, "decode value at %s", path)
	}

	return true, nil
}

// Write implements gateway.RealtimeGateway.
func (g *Gateway) Write(ctx context.Context, path string, value any) error {
	return errors.Wrapf(g.client.NewRef(path).Set(ctx, value), "write %s", path)
}

// Patch implements gateway.RealtimeGateway.
func (g *Gateway) Patch(ctx context.Context, path string, partial map[string]any) error {
	return errors.Wrapf(g.client.NewRef(path).Update(ctx, partial), "patch %s", path)
}

// Delete implements gateway.RealtimeGateway.
func (g *Gateway) Delete(ctx context.Context, path string) error {
	return errors.Wrapf(g.client.NewRef(path).Delete(ctx), "delete %s", path)
}

// Query implements gateway.RealtimeGateway using a server-side indexed
// equality query.
func (g *Gateway) Query(ctx context.Context, path, field string, equals any, dest any) error {
	query := g.client.NewRef(path).OrderByChild(field).EqualTo(equals)

	return errors.Wrapf(query.Get(ctx, dest), "query %s by %s", path, field)
}

type pollSubscription struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Unsubscribe implements gateway.Subscription. It blocks until the watcher
// goroutine has stopped, so no callback fires after it returns.
func (s *pollSubscription) Unsubscribe() {
	s.once.Do(func() {
		s.cancel()
		<-s.done
	})
}

// Subscribe implements gateway.RealtimeGateway. The initial read happens
// synchronously so subscription errors surface to the caller instead of a
// detached goroutine.
func (g *Gateway) Subscribe(ctx context.Context, path string, onChange func(gateway.Snapshot)) (gateway.Subscription, error) {
	var current json.RawMessage
	if err := g.client.NewRef(path).Get(ctx, &current); err != nil {
		return nil, errors.Wrapf(err, "subscribe %s", path)
	}
	if isAbsent(current) {
		current = nil
	}

	watchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	sub := &pollSubscription{cancel: cancel, done: make(chan struct{})}

	onChange(gateway.Snapshot{Path: path, Value: current})

	go func() {
		defer close(sub.done)
		ticker := time.NewTicker(g.pollInterval)
		defer ticker.Stop()

		last := current
		for {
			select {
			case <-watchCtx.Done():
				return
			case <-ticker.C:
			}

			var raw json.RawMessage
			if err := g.client.NewRef(path).Get(watchCtx, &raw); err != nil {
				if watchCtx.Err() != nil {
					return
				}
				g.logger.Warn("gateway poll failed",
					slog.String("path", path),
					slog.Any("error", err),
				)

				continue
			}
			if isAbsent(raw) {
				raw = nil
			}
			if bytes.Equal(last, raw) {
				continue
			}
			last = raw
			onChange(gateway.Snapshot{Path: path, Value: raw})
		}
	}()

	return sub, nil
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
