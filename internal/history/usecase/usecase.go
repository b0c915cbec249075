package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/tiendita/cart-ledger/internal/history"
	"github.com/tiendita/cart-ledger/internal/model"
	"github.com/tiendita/cart-ledger/internal/storage"
	"go.uber.org/zap"
)

type historyUseCase struct {
	store  storage.SnapshotStore
	logger *zap.Logger

	mu      sync.Mutex
	records []model.PurchaseRecord
	loaded  bool
}

func NewHistoryUseCase(store storage.SnapshotStore, log *zap.Logger) history.UseCase {
	return &historyUseCase{
		store:  store,
		logger: log,
	}
}

func (uc *historyUseCase) Append(ctx context.Context, record model.PurchaseRecord) (bool, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.loadLocked(ctx)

	uc.records = append(uc.records, record)

	data, err := json.Marshal(uc.records)
	if err != nil {
		uc.logger.Error("encode history snapshot", zap.Error(err))
		return false, nil
	}
	if err := uc.store.Save(ctx, storage.KeyHistory, data); err != nil {
		uc.logger.Warn("history snapshot not persisted, continuing in memory",
			zap.Error(err))
		return false, nil
	}
	return true, nil
}

func (uc *historyUseCase) List(ctx context.Context) ([]model.PurchaseRecord, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.loadLocked(ctx)

	out := make([]model.PurchaseRecord, len(uc.records))
	copy(out, uc.records)
	return out, nil
}

func (uc *historyUseCase) loadLocked(ctx context.Context) {
	if uc.loaded {
		return
	}
	uc.loaded = true

	data, err := uc.store.Load(ctx, storage.KeyHistory)
	switch {
	case err == nil:
		var records []model.PurchaseRecord
		if uerr := json.Unmarshal(data, &records); uerr != nil {
			uc.logger.Warn("corrupt history snapshot dropped", zap.Error(uerr))
			return
		}
		uc.records = records
	case errors.Is(err, storage.ErrNotFound):
		// No purchases yet.
	default:
		uc.logger.Warn("history snapshot unreadable, starting empty", zap.Error(err))
	}
}
