package dto

import "github.com/tiendita/cart-ledger/internal/model"

type CheckoutInput struct {
	PaymentMethod model.PaymentMethod
}

// CheckoutResult returns the archived record plus the durability flag
// covering the cart and history snapshots written during the commit.
type CheckoutResult struct {
	Record    model.PurchaseRecord
	Persisted bool
}
