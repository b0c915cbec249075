package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tiendita/cart-ledger/config"
	"github.com/tiendita/cart-ledger/internal/auth"
	"github.com/tiendita/cart-ledger/internal/cart"
	cartUC "github.com/tiendita/cart-ledger/internal/cart/usecase"
	"github.com/tiendita/cart-ledger/internal/catalog"
	catalogUC "github.com/tiendita/cart-ledger/internal/catalog/usecase"
	"github.com/tiendita/cart-ledger/internal/checkout"
	checkoutUC "github.com/tiendita/cart-ledger/internal/checkout/usecase"
	"github.com/tiendita/cart-ledger/internal/currency"
	"github.com/tiendita/cart-ledger/internal/events"
	"github.com/tiendita/cart-ledger/internal/history"
	historyUC "github.com/tiendita/cart-ledger/internal/history/usecase"
	"github.com/tiendita/cart-ledger/internal/storage"
	"go.uber.org/zap"
)

// app wires config, storage and the ledger usecases for one CLI
// invocation. It is the presentation layer: prompts, flags and output
// live here, never in the usecases.
type app struct {
	cfg    *config.Config
	logger *zap.Logger

	store     storage.SnapshotStore
	publisher events.Publisher
	rates     currency.Provider

	catalog  catalog.UseCase
	cart     cart.UseCase
	history  history.UseCase
	checkout checkout.UseCase
}

func newLogger(cfg *config.Config) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	if cfg.App.Env == "dev" || cfg.App.Env == "development" {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Encoding = cfg.Logger.Encoding
	if lvl, err := zap.ParseAtomicLevel(cfg.Logger.Level); err == nil {
		zcfg.Level = lvl
	}
	zcfg.DisableCaller = cfg.Logger.DisableCaller
	zcfg.DisableStacktrace = cfg.Logger.DisableStacktrace

	logger, err := zcfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger
}

func newApp(cfg *config.Config, logger *zap.Logger) (*app, error) {
	store, err := newStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = events.NewKafkaPublisher(&events.KafkaConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		logger.Info("purchase events enabled",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("topic", cfg.Kafka.Topic))
	}

	var rates currency.Provider
	switch {
	case cfg.Currency.StaticRate > 0:
		rates = currency.NewStaticProvider(cfg.Currency.StaticRate, cfg.Currency.DisplayCode)
	case cfg.Currency.RateURL != "":
		rates = currency.NewHTTPProvider(cfg.Currency.RateURL)
	}

	catUC := catalogUC.NewCatalogUseCase(store, logger)
	crtUC := cartUC.NewCartUseCase(catUC, store, logger)
	histUC := historyUC.NewHistoryUseCase(store, logger)
	chkUC := checkoutUC.NewCheckoutUseCase(crtUC, histUC, publisher, logger)

	return &app{
		cfg:       cfg,
		logger:    logger,
		store:     store,
		publisher: publisher,
		rates:     rates,
		catalog:   catUC,
		cart:      crtUC,
		history:   histUC,
		checkout:  chkUC,
	}, nil
}

// newStore opens the configured snapshot backend. When it cannot be
// opened the session still runs, degraded, on an in-memory store.
func newStore(cfg *config.Config, logger *zap.Logger) (storage.SnapshotStore, error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		store, err := storage.NewSQLiteStore(cfg.Storage.SQLitePath)
		if err != nil {
			logger.Warn("sqlite store unavailable, falling back to memory", zap.Error(err))
			return storage.NewMemoryStore(), nil
		}
		return store, nil
	case "redis":
		store, err := storage.NewRedisStore(&storage.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
		if err != nil {
			logger.Warn("redis store unavailable, falling back to memory", zap.Error(err))
			return storage.NewMemoryStore(), nil
		}
		return store, nil
	case "memory":
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func (a *app) close() {
	if err := a.publisher.Close(); err != nil {
		a.logger.Warn("close publisher", zap.Error(err))
	}
	if err := a.store.Close(); err != nil {
		a.logger.Warn("close store", zap.Error(err))
	}
}

// sessionContext attaches the configured user identity, if any.
func (a *app) sessionContext(ctx context.Context) context.Context {
	if a.cfg.Session.UserID != "" {
		return auth.WithUserID(ctx, a.cfg.Session.UserID)
	}
	return ctx
}

// displayRate resolves the rate once, at display time. A missing
// provider or failed lookup leaves the rate pending.
func (a *app) displayRate(ctx context.Context) currency.Rate {
	code := a.cfg.Currency.DisplayCode
	if code == "" || code == currency.BaseCurrency || a.rates == nil {
		return currency.Rate{}
	}
	rate, err := a.rates.Rate(ctx, code)
	if err != nil {
		a.logger.Warn("exchange rate pending", zap.String("currency", code), zap.Error(err))
		return currency.Rate{}
	}
	return rate
}

func newRootCmd(cfg *config.Config, logger *zap.Logger) *cobra.Command {
	var a *app

	root := &cobra.Command{
		Use:           "ledger",
		Short:         "Cart/inventory ledger for the tiendita demo shop",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = newApp(cfg, logger)
			if err != nil {
				return err
			}
			// Initialize fails soft: a broken snapshot is reported and
			// the session starts on an empty catalog.
			if ierr := a.catalog.Initialize(a.sessionContext(cmd.Context())); ierr != nil {
				logger.Warn("catalog initialized degraded", zap.Error(ierr))
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a != nil {
				a.close()
			}
		},
	}

	root.AddCommand(
		newCatalogCmd(&a),
		newAddCmd(&a),
		newRemoveCmd(&a),
		newClearCmd(&a),
		newTotalCmd(&a),
		newCheckoutCmd(&a),
		newHistoryCmd(&a),
		newResetCmd(&a),
	)

	return root
}
