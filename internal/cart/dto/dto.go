package dto

import "github.com/tiendita/cart-ledger/internal/model"

// MutationResult carries everything a presentation layer needs to
// re-render after a cart mutation: the touched catalog entry (nil for
// clear/consume), the full line set, and the new total in base currency.
// Persisted=false flags degraded durability on any of the snapshots
// written during the mutation.
type MutationResult struct {
	Product   *model.Product
	Lines     []model.CartLine
	Total     float64
	Persisted bool
}
