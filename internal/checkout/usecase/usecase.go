package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tiendita/cart-ledger/internal/auth"
	"github.com/tiendita/cart-ledger/internal/cart"
	"github.com/tiendita/cart-ledger/internal/checkout"
	"github.com/tiendita/cart-ledger/internal/checkout/dto"
	"github.com/tiendita/cart-ledger/internal/events"
	"github.com/tiendita/cart-ledger/internal/history"
	"github.com/tiendita/cart-ledger/internal/model"
	"go.uber.org/zap"
)

type checkoutUseCase struct {
	cart      cart.UseCase
	history   history.UseCase
	publisher events.Publisher
	logger    *zap.Logger
}

func NewCheckoutUseCase(c cart.UseCase, h history.UseCase, pub events.Publisher, log *zap.Logger) checkout.UseCase {
	return &checkoutUseCase{
		cart:      c,
		history:   h,
		publisher: pub,
		logger:    log,
	}
}

func (uc *checkoutUseCase) Checkout(ctx context.Context, input *dto.CheckoutInput) (*dto.CheckoutResult, error) {
	userID := auth.UserID(ctx)
	if userID == "" {
		return nil, checkout.ErrUnauthenticated
	}

	if _, err := model.ParsePaymentMethod(string(input.PaymentMethod)); err != nil {
		return nil, err
	}

	// Precondition check before any mutation so a rejected checkout
	// leaves cart, catalog and history untouched.
	lines, err := uc.cart.Items(ctx)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, checkout.ErrEmptyCart
	}

	// Terminal consumption: the cart empties without restoring stock.
	consumed, err := uc.cart.Consume(ctx)
	if err != nil {
		return nil, fmt.Errorf("consume cart: %w", err)
	}

	record := model.PurchaseRecord{
		ID:            uuid.New().String(),
		CreatedAt:     time.Now().UTC(),
		Lines:         consumed.Lines,
		Total:         consumed.Total,
		PaymentMethod: input.PaymentMethod,
		UserID:        userID,
	}

	historyPersisted, err := uc.history.Append(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("archive purchase: %w", err)
	}

	if err := uc.publisher.PublishPurchase(ctx, record); err != nil {
		// Best effort: the commit already happened.
		uc.logger.Warn("purchase event not published",
			zap.String("record_id", record.ID), zap.Error(err))
	}

	uc.logger.Info("checkout committed",
		zap.String("record_id", record.ID),
		zap.String("payment_method", string(record.PaymentMethod)),
		zap.Float64("total", record.Total),
		zap.Int("lines", len(record.Lines)))

	return &dto.CheckoutResult{
		Record:    record,
		Persisted: consumed.Persisted && historyPersisted,
	}, nil
}
