package repository

import (
	"context"
	"fmt"

	"foodie-kart/internal/model"
	"foodie-kart/internal/storage"

	"github.com/rs/zerolog"
)

// orderRepository implements OrderRepository on a key-value store.
type orderRepository struct {
	store  storage.Store
	logger zerolog.Logger
}

// NewOrderRepository creates an order repository backed by store.
func NewOrderRepository(store storage.Store, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		store:  store,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// List returns every order in insertion order; empty when none exist.
func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	found, err := storage.GetJSON(ctx, r.store, OrdersKey, &orders)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to read order ledger")
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}

	if !found || orders == nil {
		return []model.Order{}, nil
	}

	return orders, nil
}

// SaveAll replaces the persisted ledger.
func (r *orderRepository) SaveAll(ctx context.Context, orders []model.Order) error {
	if err := storage.SetJSON(ctx, r.store, OrdersKey, orders); err != nil {
		r.logger.Error().Err(err).Int("order_count", len(orders)).Msg("failed to save order ledger")
		return fmt.Errorf("failed to save orders: %w", err)
	}

	r.logger.Debug().Int("order_count", len(orders)).Msg("order ledger saved")
	return nil
}
