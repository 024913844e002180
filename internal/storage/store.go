package storage

import (
	"context"
	"time"
)

// StoredObject is a storage listing entry; LastModified feeds the
// reconciliation sweep's grace window.
type StoredObject struct {
	Key          string
	LastModified time.Time
}

// Store is the object-store capability the pipeline depends on.
// Keys are opaque to the store; BuildReceiptKey owns the naming scheme.
type Store interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	// Get fails with common.ErrNotFound on a missing key; it never returns
	// empty bytes silently.
	Get(ctx context.Context, key string) ([]byte, error)
	// Delete is idempotent: deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	SignedReadURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	ListKeys(ctx context.Context, prefix string) ([]StoredObject, error)
}
