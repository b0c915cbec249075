package events

import (
	"context"

	"github.com/tiendita/cart-ledger/internal/model"
)

// Publisher emits committed purchases to interested consumers. Publish
// failures never fail the checkout that produced the record.
type Publisher interface {
	PublishPurchase(ctx context.Context, record model.PurchaseRecord) error
	Close() error
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishPurchase(context.Context, model.PurchaseRecord) error { return nil }
func (NopPublisher) Close() error                                                { return nil }
