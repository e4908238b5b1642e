// Package cache provides the volatile store for translated answers.
package cache

import "context"

// TranslationCache is the low-level key-value contract. Entries carry a
// fixed TTL set by the implementation; an absent key is always a valid
// state and never an error.
type TranslationCache interface {
	// Get retrieves a value. The bool reports whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores a value with the cache's TTL.
	Set(ctx context.Context, key, value string) error

	// Keys returns all keys matching a glob pattern such as "faq:42:*".
	Keys(ctx context.Context, pattern string) ([]string, error)

	// DeleteMany removes the given keys. Deleting zero keys is a no-op.
	DeleteMany(ctx context.Context, keys []string) error

	Close() error
}
