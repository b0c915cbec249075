package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/tiendita/cart-ledger/internal/catalog"
	"github.com/tiendita/cart-ledger/internal/catalog/dto"
	"github.com/tiendita/cart-ledger/internal/model"
	"github.com/tiendita/cart-ledger/internal/storage"
	"go.uber.org/zap"
)

type catalogUseCase struct {
	store  storage.SnapshotStore
	logger *zap.Logger

	mu       sync.Mutex
	products []model.Product
	loaded   bool
}

func NewCatalogUseCase(store storage.SnapshotStore, log *zap.Logger) catalog.UseCase {
	return &catalogUseCase{
		store:  store,
		logger: log,
	}
}

func (uc *catalogUseCase) Initialize(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.initLocked(ctx)
}

func (uc *catalogUseCase) initLocked(ctx context.Context) error {
	if uc.loaded {
		return nil
	}

	data, err := uc.store.Load(ctx, storage.KeyProducts)
	switch {
	case err == nil:
		var products []model.Product
		if uerr := json.Unmarshal(data, &products); uerr != nil {
			// Corrupt snapshot: fail soft with an empty catalog.
			uc.products = nil
			uc.loaded = true
			uc.logger.Error("corrupt catalog snapshot, starting empty", zap.Error(uerr))
			return fmt.Errorf("decode catalog snapshot: %w", uerr)
		}
		uc.products = products
		uc.loaded = true
		return nil

	case errors.Is(err, storage.ErrNotFound):
		uc.products = catalog.DefaultSeed()
		uc.loaded = true
		uc.persistLocked(ctx)
		uc.logger.Info("catalog seeded from default dataset",
			zap.Int("products", len(uc.products)))
		return nil

	default:
		uc.products = nil
		uc.loaded = true
		uc.logger.Error("catalog load failed, starting empty", zap.Error(err))
		return fmt.Errorf("load catalog snapshot: %w", err)
	}
}

func (uc *catalogUseCase) List(ctx context.Context) ([]model.Product, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.initLocked(ctx); err != nil {
		return nil, err
	}
	out := make([]model.Product, len(uc.products))
	copy(out, uc.products)
	return out, nil
}

func (uc *catalogUseCase) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.initLocked(ctx); err != nil {
		return nil, err
	}
	p := uc.findLocked(id)
	if p == nil {
		return nil, catalog.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (uc *catalogUseCase) DecrementStock(ctx context.Context, id int64, qty int) (*dto.StockResult, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("decrement quantity must be positive, got %d", qty)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.initLocked(ctx); err != nil {
		return nil, err
	}

	p := uc.findLocked(id)
	if p == nil {
		return nil, catalog.ErrNotFound
	}
	if qty > p.Stock {
		return nil, catalog.ErrInsufficientStock
	}

	p.Stock -= qty
	persisted := uc.persistLocked(ctx)

	return &dto.StockResult{Product: *p, Persisted: persisted}, nil
}

func (uc *catalogUseCase) IncrementStock(ctx context.Context, id int64, qty int) (*dto.StockResult, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("increment quantity must be positive, got %d", qty)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.initLocked(ctx); err != nil {
		return nil, err
	}

	p := uc.findLocked(id)
	if p == nil {
		return nil, catalog.ErrNotFound
	}

	p.Stock += qty
	persisted := uc.persistLocked(ctx)

	return &dto.StockResult{Product: *p, Persisted: persisted}, nil
}

func (uc *catalogUseCase) findLocked(id int64) *model.Product {
	for i := range uc.products {
		if uc.products[i].ID == id {
			return &uc.products[i]
		}
	}
	return nil
}

// persistLocked mirrors the full product list to storage. A failed save
// degrades durability only; the in-memory state stays authoritative.
func (uc *catalogUseCase) persistLocked(ctx context.Context) bool {
	data, err := json.Marshal(uc.products)
	if err != nil {
		uc.logger.Error("encode catalog snapshot", zap.Error(err))
		return false
	}
	if err := uc.store.Save(ctx, storage.KeyProducts, data); err != nil {
		uc.logger.Warn("catalog snapshot not persisted, continuing in memory",
			zap.Error(err))
		return false
	}
	return true
}
