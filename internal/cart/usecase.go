package cart

import (
	"context"
	"errors"

	"github.com/tiendita/cart-ledger/internal/cart/dto"
	"github.com/tiendita/cart-ledger/internal/model"
)

// ErrOutOfStock means the product has no units left to reserve. The
// add is a no-op; presentation layers surface it as messaging, not as a
// fatal error.
var ErrOutOfStock = errors.New("cart: product out of stock")

type UseCase interface {
	// AddItem reserves one unit of the product: the stock decrement and
	// the cart line mutation apply together or not at all. Unknown ids
	// surface catalog.ErrNotFound, exhausted stock ErrOutOfStock.
	AddItem(ctx context.Context, productID int64) (*dto.MutationResult, error)

	// RemoveItem drops the whole line and restores its full quantity to
	// catalog stock. Removing an absent line is a no-op, not an error.
	RemoveItem(ctx context.Context, productID int64) (*dto.MutationResult, error)

	// Clear restores every line's quantity and empties the cart,
	// all-or-nothing: every product id is validated before the first
	// restore is applied.
	Clear(ctx context.Context) (*dto.MutationResult, error)

	// Consume empties the cart WITHOUT restoring stock, the terminal
	// consumption of the reserved units at checkout. Returns the lines
	// and total as they were at the moment of consumption.
	Consume(ctx context.Context) (*dto.MutationResult, error)

	Items(ctx context.Context) ([]model.CartLine, error)

	// Total is the cart total in base currency, zero for an empty cart.
	Total(ctx context.Context) (float64, error)
}
