package storage

import (
	"context"
	"errors"
)

// Logical keys for the three persisted stores. Each key holds a full
// snapshot of its store, overwritten wholesale on every mutation.
const (
	KeyProducts = "products"
	KeyCart     = "cart"
	KeyHistory  = "purchase-history"
)

// ErrNotFound means the key has never been saved (or was deleted). It is
// the normal first-run condition, not a failure.
var ErrNotFound = errors.New("storage: key not found")

// SnapshotStore persists whole-store snapshots under logical keys.
// A Save error signals degraded durability only: callers keep their
// in-memory state and retry on the next mutation.
type SnapshotStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
