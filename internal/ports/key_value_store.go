package ports

import "context"

// Port: the persistence collaborator the application state is kept in.
// Values are opaque bytes; callers own the encoding.
type KeyValueStore interface {
	// Return the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Store value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
}
