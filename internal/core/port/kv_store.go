package port

import "context"

// KeyValueStorePort is the durable namespaced key/value storage the per-user
// records live in. Keys are built by typed constructors in the adapters, not
// by ad-hoc string interpolation at call sites.
type KeyValueStorePort interface {
	// Get returns the stored value, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores the value wholesale, replacing any previous one.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the key; absent keys are a no-op.
	Delete(ctx context.Context, key string) error
}
