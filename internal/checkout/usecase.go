package checkout

import (
	"context"
	"errors"

	"github.com/tiendita/cart-ledger/internal/checkout/dto"
)

var (
	// ErrEmptyCart rejects a checkout with no lines; all state is left
	// untouched.
	ErrEmptyCart = errors.New("checkout: cart is empty")
	// ErrUnauthenticated rejects a checkout without an active session
	// on the context.
	ErrUnauthenticated = errors.New("checkout: no active session")
)

type UseCase interface {
	// Checkout commits the cart: snapshots lines and total into a new
	// purchase record, appends it to history and empties the cart
	// without restoring stock. The payment method arrives fully formed
	// in the input; the core never prompts.
	Checkout(ctx context.Context, input *dto.CheckoutInput) (*dto.CheckoutResult, error)
}
