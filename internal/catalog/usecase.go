package catalog

import (
	"context"
	"errors"

	"github.com/tiendita/cart-ledger/internal/catalog/dto"
	"github.com/tiendita/cart-ledger/internal/model"
)

var (
	// ErrNotFound means the product id does not resolve in the catalog.
	ErrNotFound = errors.New("catalog: product not found")
	// ErrInsufficientStock means a decrement asked for more units than
	// the product currently has. Stock never goes negative.
	ErrInsufficientStock = errors.New("catalog: insufficient stock")
)

type UseCase interface {
	// Initialize loads the persisted catalog snapshot, seeding and
	// persisting the default dataset when none exists. On a load error
	// it falls back to an empty catalog and returns the error for
	// reporting; it never panics.
	Initialize(ctx context.Context) error

	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (*model.Product, error)

	// DecrementStock reserves qty units. Rejected with ErrNotFound or
	// ErrInsufficientStock; on success the catalog snapshot is mirrored
	// to storage.
	DecrementStock(ctx context.Context, id int64, qty int) (*dto.StockResult, error)

	// IncrementStock restores qty previously reserved units.
	IncrementStock(ctx context.Context, id int64, qty int) (*dto.StockResult, error)
}
