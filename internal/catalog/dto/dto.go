package dto

import "github.com/tiendita/cart-ledger/internal/model"

// StockResult reports a stock mutation: the updated catalog entry and
// whether the snapshot reached durable storage. Persisted=false is a
// degraded-durability warning, not a failure: the in-memory mutation
// stands either way.
type StockResult struct {
	Product   model.Product
	Persisted bool
}
