package history

import (
	"context"

	"github.com/tiendita/cart-ledger/internal/model"
)

// UseCase owns the purchase-history log. Records are appended in commit
// order and never merged, reordered or rewritten; append-only is
// enforced here, not by the storage layer.
type UseCase interface {
	// Append archives a record. The returned flag reports whether the
	// history snapshot reached durable storage.
	Append(ctx context.Context, record model.PurchaseRecord) (bool, error)

	List(ctx context.Context) ([]model.PurchaseRecord, error)
}
