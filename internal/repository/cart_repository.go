package repository

import (
	"context"
	"fmt"

	"foodie-kart/internal/model"
	"foodie-kart/internal/storage"

	"github.com/rs/zerolog"
)

// cartRepository implements CartRepository on a key-value store.
type cartRepository struct {
	store  storage.Store
	logger zerolog.Logger
}

// NewCartRepository creates a cart repository backed by store.
func NewCartRepository(store storage.Store, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		store:  store,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

// Get returns the persisted cart, or nil when none has been saved.
func (r *cartRepository) Get(ctx context.Context) (*model.Cart, error) {
	var cart model.Cart
	found, err := storage.GetJSON(ctx, r.store, CartKey, &cart)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to read cart")
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	if !found {
		r.logger.Debug().Msg("no persisted cart")
		return nil, nil
	}

	if cart.Items == nil {
		cart.Items = []model.CartItem{}
	}

	return &cart, nil
}

// Save replaces the persisted cart.
func (r *cartRepository) Save(ctx context.Context, cart *model.Cart) error {
	if err := storage.SetJSON(ctx, r.store, CartKey, cart); err != nil {
		r.logger.Error().Err(err).Int("item_count", len(cart.Items)).Msg("failed to save cart")
		return fmt.Errorf("failed to save cart: %w", err)
	}

	r.logger.Debug().Int("item_count", len(cart.Items)).Msg("cart saved")
	return nil
}

// Delete removes the persisted cart.
func (r *cartRepository) Delete(ctx context.Context) error {
	if err := r.store.Remove(ctx, CartKey); err != nil {
		r.logger.Error().Err(err).Msg("failed to delete cart")
		return fmt.Errorf("failed to delete cart: %w", err)
	}

	r.logger.Debug().Msg("cart deleted")
	return nil
}
