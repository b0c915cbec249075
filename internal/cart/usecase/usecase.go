package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/tiendita/cart-ledger/internal/cart"
	"github.com/tiendita/cart-ledger/internal/cart/dto"
	"github.com/tiendita/cart-ledger/internal/catalog"
	"github.com/tiendita/cart-ledger/internal/model"
	"github.com/tiendita/cart-ledger/internal/storage"
	"go.uber.org/zap"
)

type cartUseCase struct {
	catalog catalog.UseCase
	store   storage.SnapshotStore
	logger  *zap.Logger

	mu     sync.Mutex
	items  model.Cart
	loaded bool
}

func NewCartUseCase(cat catalog.UseCase, store storage.SnapshotStore, log *zap.Logger) cart.UseCase {
	return &cartUseCase{
		catalog: cat,
		store:   store,
		logger:  log,
	}
}

func (uc *cartUseCase) AddItem(ctx context.Context, productID int64) (*dto.MutationResult, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.loadLocked(ctx)

	p, err := uc.catalog.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p.Stock == 0 {
		return nil, cart.ErrOutOfStock
	}

	// Reserve the unit first; the line mutation below cannot fail, so
	// the decrement and the line change apply as one unit.
	res, err := uc.catalog.DecrementStock(ctx, productID, 1)
	if err != nil {
		if errors.Is(err, catalog.ErrInsufficientStock) {
			return nil, cart.ErrOutOfStock
		}
		return nil, err
	}

	if line := uc.items.FindLine(productID); line != nil {
		line.Quantity++
	} else {
		uc.items.Lines = append(uc.items.Lines, model.CartLine{
			Product:  res.Product.Ref(),
			Quantity: 1,
		})
	}

	persisted := uc.persistLocked(ctx) && res.Persisted
	updated := res.Product

	return &dto.MutationResult{
		Product:   &updated,
		Lines:     uc.items.Clone(),
		Total:     uc.items.Total(),
		Persisted: persisted,
	}, nil
}

func (uc *cartUseCase) RemoveItem(ctx context.Context, productID int64) (*dto.MutationResult, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.loadLocked(ctx)

	line := uc.items.FindLine(productID)
	if line == nil {
		// Absent line: nothing to remove, nothing to restore.
		return &dto.MutationResult{
			Lines:     uc.items.Clone(),
			Total:     uc.items.Total(),
			Persisted: true,
		}, nil
	}

	res, err := uc.catalog.IncrementStock(ctx, productID, line.Quantity)
	if err != nil {
		// Restore failed: leave the line in place so the reservation
		// stays accounted for.
		return nil, fmt.Errorf("restore stock for product %d: %w", productID, err)
	}

	uc.dropLineLocked(productID)
	persisted := uc.persistLocked(ctx) && res.Persisted
	updated := res.Product

	return &dto.MutationResult{
		Product:   &updated,
		Lines:     uc.items.Clone(),
		Total:     uc.items.Total(),
		Persisted: persisted,
	}, nil
}

func (uc *cartUseCase) Clear(ctx context.Context) (*dto.MutationResult, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.loadLocked(ctx)

	// All-or-nothing: reject before the first restore if any line's
	// product no longer resolves.
	for _, line := range uc.items.Lines {
		if _, err := uc.catalog.FindByID(ctx, line.Product.ID); err != nil {
			return nil, fmt.Errorf("clear rejected, product %d: %w", line.Product.ID, err)
		}
	}

	persisted := true
	for _, line := range uc.items.Lines {
		res, err := uc.catalog.IncrementStock(ctx, line.Product.ID, line.Quantity)
		if err != nil {
			// Unreachable single-session: ids were validated above.
			uc.logger.Error("stock restore failed mid-clear",
				zap.Int64("product_id", line.Product.ID), zap.Error(err))
			return nil, fmt.Errorf("restore stock for product %d: %w", line.Product.ID, err)
		}
		persisted = persisted && res.Persisted
	}

	uc.items.Lines = nil
	persisted = uc.persistLocked(ctx) && persisted

	return &dto.MutationResult{
		Lines:     nil,
		Total:     0,
		Persisted: persisted,
	}, nil
}

func (uc *cartUseCase) Consume(ctx context.Context) (*dto.MutationResult, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.loadLocked(ctx)

	lines := uc.items.Clone()
	total := uc.items.Total()

	// Terminal consumption: the reservation becomes permanent, so no
	// stock is restored here.
	uc.items.Lines = nil
	persisted := uc.persistLocked(ctx)

	return &dto.MutationResult{
		Lines:     lines,
		Total:     total,
		Persisted: persisted,
	}, nil
}

func (uc *cartUseCase) Items(ctx context.Context) ([]model.CartLine, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.loadLocked(ctx)
	return uc.items.Clone(), nil
}

func (uc *cartUseCase) Total(ctx context.Context) (float64, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.loadLocked(ctx)
	return uc.items.Total(), nil
}

func (uc *cartUseCase) dropLineLocked(productID int64) {
	for i := range uc.items.Lines {
		if uc.items.Lines[i].Product.ID == productID {
			uc.items.Lines = append(uc.items.Lines[:i], uc.items.Lines[i+1:]...)
			return
		}
	}
}

// loadLocked restores the persisted cart on first use. An absent
// snapshot is the normal empty-cart start; a corrupt or unreadable one
// is dropped with a warning rather than wedging the session.
func (uc *cartUseCase) loadLocked(ctx context.Context) {
	if uc.loaded {
		return
	}
	uc.loaded = true

	data, err := uc.store.Load(ctx, storage.KeyCart)
	switch {
	case err == nil:
		var c model.Cart
		if uerr := json.Unmarshal(data, &c); uerr != nil {
			uc.logger.Warn("corrupt cart snapshot dropped", zap.Error(uerr))
		} else {
			uc.items = c
		}
	case errors.Is(err, storage.ErrNotFound):
		// First run.
	default:
		uc.logger.Warn("cart snapshot unreadable, starting empty", zap.Error(err))
	}
}

func (uc *cartUseCase) persistLocked(ctx context.Context) bool {
	data, err := json.Marshal(uc.items)
	if err != nil {
		uc.logger.Error("encode cart snapshot", zap.Error(err))
		return false
	}
	if err := uc.store.Save(ctx, storage.KeyCart, data); err != nil {
		uc.logger.Warn("cart snapshot not persisted, continuing in memory",
			zap.Error(err))
		return false
	}
	return true
}
