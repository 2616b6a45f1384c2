package service

// CartStore is the durable local persistence backing the cart aggregate.
// Keys are namespaced by the owning service; the store treats values as
// opaque bytes. There is no expiry policy.
type CartStore interface {
	// Get returns the stored bytes for key, or found=false when absent.
	Get(key string) (value []byte, found bool, err error)

	// Set durably stores value under key.
	Set(key string, value []byte) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string) error
}
