// Package memory provides an in-process RealtimeGateway used for local
// development and tests. It mimics the remote tree store's semantics:
// last-writer-wins per path, push delivery in emission order per
// subscription, no cross-path guarantees.
package memory

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"

	"gearshop/internal/domain/gateway"
	"gearshop/internal/errors"
)

// Gateway stores values keyed by exact path. Reading a path that has no
// exact value assembles its immediate children into an object, matching how
// the remote store materializes subtrees.
type Gateway struct {
	mu          sync.Mutex
	values      map[string]json.RawMessage
	subs        map[string][]*subscription
	writeCounts map[string]int

	readErr  error
	writeErr error
}

type subscription struct {
	gw       *Gateway
	path     string
	onChange func(gateway.Snapshot)

	mu     sync.Mutex
	closed bool
}

// NewGateway creates an empty in-memory gateway.
func NewGateway() *Gateway {
	return &Gateway{
		values:      make(map[string]json.RawMessage),
		subs:        make(map[string][]*subscription),
		writeCounts: make(map[string]int),
	}
}

// FailReads makes every subsequent read/query/subscribe return err.
// Pass nil to restore normal delivery.
func (g *Gateway) FailReads(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.readErr = err
}

// FailWrites makes every subsequent write/patch/delete return err.
func (g *Gateway) FailWrites(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.writeErr = err
}

// WriteCount reports how many writes (including patches and deletes)
// touched exactly path.
func (g *Gateway) WriteCount(path string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.writeCounts[path]
}

// Read implements gateway.RealtimeGateway.
func (g *Gateway) Read(_ context.Context, path string, dest any) (bool, error) {
	g.mu.Lock()
	if g.readErr != nil {
		err := g.readErr
		g.mu.Unlock()

		return false, err
	}
	raw := g.snapshotLocked(path)
	g.mu.Unlock()

	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, errors.Wrapf(err, "decode value at %s", path)
	}

	return true, nil
}

// Write implements gateway.RealtimeGateway.
func (g *Gateway) Write(_ context.Context, path string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode value for %s", path)
	}

	g.mu.Lock()
	if g.writeErr != nil {
		err := g.writeErr
		g.mu.Unlock()

		return err
	}
	// A write to a path shadows anything previously stored beneath it.
	g.clearSubtreeLocked(path)
	g.values[path] = raw
	g.writeCounts[path]++
	subs := g.affectedSubsLocked(path)
	g.mu.Unlock()

	g.notify(subs)

	return nil
}

// Patch implements gateway.RealtimeGateway.
func (g *Gateway) Patch(ctx context.Context, path string, partial map[string]any) error {
	g.mu.Lock()
	if g.writeErr != nil {
		err := g.writeErr
		g.mu.Unlock()

		return err
	}
	current := map[string]json.RawMessage{}
	if raw := g.snapshotLocked(path); raw != nil {
		if err := json.Unmarshal(raw, &current); err != nil {
			g.mu.Unlock()

			return errors.Wrapf(err, "decode value at %s", path)
		}
	}
	for k, v := range partial {
		raw, err := json.Marshal(v)
		if err != nil {
			g.mu.Unlock()

			return errors.Wrapf(err, "encode patch field %s", k)
		}
		current[k] = raw
	}
	merged, err := json.Marshal(current)
	if err != nil {
		g.mu.Unlock()

		return errors.Wrapf(err, "encode value for %s", path)
	}
	g.clearSubtreeLocked(path)
	g.values[path] = merged
	g.writeCounts[path]++
	subs := g.affectedSubsLocked(path)
	g.mu.Unlock()

	g.notify(subs)

	return nil
}

// Delete implements gateway.RealtimeGateway.
func (g *Gateway) Delete(_ context.Context, path string) error {
	g.mu.Lock()
	if g.writeErr != nil {
		err := g.writeErr
		g.mu.Unlock()

		return err
	}
	delete(g.values, path)
	g.clearSubtreeLocked(path)
	g.writeCounts[path]++
	subs := g.affectedSubsLocked(path)
	g.mu.Unlock()

	g.notify(subs)

	return nil
}

// Query implements gateway.RealtimeGateway with a client-side scan; the
// in-memory store has no indexes.
func (g *Gateway) Query(_ context.Context, path, field string, equals any, dest any) error {
	g.mu.Lock()
	if g.readErr != nil {
		err := g.readErr
		g.mu.Unlock()

		return err
	}
	children := g.childrenLocked(path)
	g.mu.Unlock()

	want, err := json.Marshal(equals)
	if err != nil {
		return errors.Wrap(err, "encode query value")
	}

	matched := make(map[string]json.RawMessage, len(children))
	for id, raw := range children {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			continue
		}
		if got, ok := fields[field]; ok && bytes.Equal(got, want) {
			matched[id] = raw
		}
	}

	encoded, err := json.Marshal(matched)
	if err != nil {
		return errors.Wrap(err, "encode query result")
	}

	return errors.Wrap(json.Unmarshal(encoded, dest), "decode query result")
}

// Subscribe implements gateway.RealtimeGateway. The current value is
// delivered immediately, then every mutation touching the subtree pushes a
// fresh snapshot.
func (g *Gateway) Subscribe(_ context.Context, path string, onChange func(gateway.Snapshot)) (gateway.Subscription, error) {
	g.mu.Lock()
	if g.readErr != nil {
		err := g.readErr
		g.mu.Unlock()

		return nil, err
	}
	sub := &subscription{gw: g, path: path, onChange: onChange}
	g.subs[path] = append(g.subs[path], sub)
	raw := g.snapshotLocked(path)
	g.mu.Unlock()

	sub.deliver(gateway.Snapshot{Path: path, Value: raw})

	return sub, nil
}

// Unsubscribe implements gateway.Subscription.
func (s *subscription) Unsubscribe() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.gw.mu.Lock()
	defer s.gw.mu.Unlock()
	list := s.gw.subs[s.path]
	for i, sub := range list {
		if sub == s {
			s.gw.subs[s.path] = append(list[:i], list[i+1:]...)

			break
		}
	}
}

// deliver invokes the callback unless the handle has been released. The
// per-subscription mutex serializes deliveries so snapshots arrive in
// emission order.
func (s *subscription) deliver(snap gateway.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.onChange(snap)
}

func (g *Gateway) notify(subs []*subscription) {
	for _, sub := range subs {
		g.mu.Lock()
		raw := g.snapshotLocked(sub.path)
		g.mu.Unlock()
		sub.deliver(gateway.Snapshot{Path: sub.path, Value: raw})
	}
}

// affectedSubsLocked returns subscriptions whose subtree contains path or
// is contained by it.
func (g *Gateway) affectedSubsLocked(path string) []*subscription {
	var affected []*subscription
	for subPath, list := range g.subs {
		if subPath == path ||
			strings.HasPrefix(path, subPath+"/") ||
			strings.HasPrefix(subPath, path+"/") {
			affected = append(affected, list...)
		}
	}

	return affected
}

// snapshotLocked materializes the value at path: the exact stored value, or
// an object assembled from immediate children, or nil when absent.
func (g *Gateway) snapshotLocked(path string) json.RawMessage {
	if raw, ok := g.values[path]; ok {
		return raw
	}
	children := g.childrenLocked(path)
	if len(children) == 0 {
		return nil
	}
	raw, err := json.Marshal(children)
	if err != nil {
		return nil
	}

	return raw
}

func (g *Gateway) childrenLocked(path string) map[string]json.RawMessage {
	prefix := path + "/"
	children := make(map[string]json.RawMessage)
	for key, raw := range g.values {
		rest, ok := strings.CutPrefix(key, prefix)
		if !ok || rest == "" {
			continue
		}
		if id, _, nested := strings.Cut(rest, "/"); !nested {
			children[id] = raw
		}
	}

	return children
}

func (g *Gateway) clearSubtreeLocked(path string) {
	prefix := path + "/"
	for key := range g.values {
		if strings.HasPrefix(key, prefix) {
			delete(g.values, key)
		}
	}
}
