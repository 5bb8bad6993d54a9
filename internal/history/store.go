package history

import "context"

// BlobStore is the opaque-text persistence the logs write through. The
// engine backs it with sqlite (internal/store); tests use a map.
type BlobStore interface {
	// Get returns the blob for key and whether it existed.
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
}
