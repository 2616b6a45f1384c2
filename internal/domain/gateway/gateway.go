// Package gateway defines the contract with the remote key-tree store the
// whole synchronization layer is built on. The store is eventually
// consistent and multi-writer; every write is last-writer-wins at the path
// level and no transactional guarantee exists across paths.
package gateway

import "context"

// Snapshot is one delivered value for a subscribed path. Value is the raw
// JSON encoding of the subtree, or nil when the path is absent.
type Snapshot struct {
	Path  string
	Value []byte
}

// Subscription is the resource handle returned by Subscribe. Owners must
// release it when their scope ends or the callback keeps firing into a
// detached consumer.
type Subscription interface {
	// Unsubscribe stops delivery. It is idempotent. After it returns no
	// further callbacks fire for this handle.
	Unsubscribe()
}

// RealtimeGateway is the path-addressable tree store consumed by the
// mirrors and the admin mutation layer.
//
// Ordering: snapshots for a single subscribed path arrive in the order the
// gateway emits them; nothing is guaranteed across distinct paths or
// against independently-issued one-shot reads.
type RealtimeGateway interface {
	// Read unmarshals the value at path into dest. An absent path yields
	// found=false and leaves dest untouched; absence is not an error.
	Read(ctx context.Context, path string, dest any) (found bool, err error)

	// Write replaces the value at path.
	Write(ctx context.Context, path string, value any) error

	// Patch applies a partial update, merging the given children into the
	// value at path.
	Patch(ctx context.Context, path string, partial map[string]any) error

	// Delete removes the value at path. Deleting an absent path is a no-op.
	Delete(ctx context.Context, path string) error

	// Query returns the children of path whose field equals the given
	// value, unmarshalled into dest (a pointer to a map keyed by child id).
	// Implementations use a server-side indexed query when the backend
	// supports one.
	Query(ctx context.Context, path, field string, equals any, dest any) error

	// Subscribe registers onChange for pushes of the subtree at path. The
	// first delivery reflects the current value. onChange is invoked
	// sequentially per subscription.
	Subscribe(ctx context.Context, path string, onChange func(Snapshot)) (Subscription, error)
}
