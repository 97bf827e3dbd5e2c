package port

import "context"

// KeyValueStore persists string-keyed blobs. Entries are partitioned by
// scope, which is the visitor's session id.
type KeyValueStore interface {
	// Get returns the value stored at the given key, or ErrNotFound
	Get(ctx context.Context, scope string, key string) ([]byte, error)

	// Put stores the value at the given key, replacing any previous value
	Put(ctx context.Context, scope string, key string, value []byte) error

	// Delete removes the given key. Deleting a missing key is not an error
	Delete(ctx context.Context, scope string, key string) error

	// Keys lists the keys stored in the given scope
	Keys(ctx context.Context, scope string) ([]string, error)
}
