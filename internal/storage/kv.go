// Package storage persists application state in a simple key-value store.
//
// State lives under four logical keys (transactions, categories, settings,
// version). There are no transactional guarantees beyond whole-collection
// overwrite-on-save; concurrent processes race and the last write wins,
// which is acceptable for a single-user local tool.
package storage

import (
	"context"
	"fmt"
)

// Logical keys for application state.
const (
	KeyTransactions = "transactions"
	KeyCategories   = "categories"
	KeySettings     = "settings"
	KeyVersion      = "version"
)

// SchemaVersion marks the stored data layout.
const SchemaVersion = "1.0.0"

// KV is the persistence collaborator: a flat key to JSON-blob store.
type KV interface {
	// Get returns the blob for key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}

func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}
	for _, r := range key {
		if !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '_' && r != '-' {
			return fmt.Errorf("invalid key %q", key)
		}
	}
	return nil
}

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	return ctx.Err()
}
