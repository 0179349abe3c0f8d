package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"foodie-kart/internal/model"
	"foodie-kart/internal/repository"

	"github.com/rs/zerolog"
)

// cartService implements CartService.
// mu serialises every read-modify-write of the persisted cart.
type cartService struct {
	mu       sync.Mutex
	cartRepo repository.CartRepository
	now      func() time.Time
	logger   zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(cartRepo repository.CartRepository, logger zerolog.Logger) CartService {
	return &cartService{
		cartRepo: cartRepo,
		now:      time.Now,
		logger:   logger.With().Str("service", "cart").Logger(),
	}
}

// GetCart returns the current cart, or a fresh empty one that is not persisted.
func (s *cartService) GetCart(ctx context.Context) (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// AddItem adds quantity of food, merging with an existing entry for the same ID.
func (s *cartService) AddItem(ctx context.Context, food model.Food, quantity int) (*model.Cart, error) {
	if food.ID == "" {
		return nil, model.ErrMissingFoodID
	}
	if quantity <= 0 {
		s.logger.Warn().
			Str("food_id", food.ID).
			Int("quantity", quantity).
			Msg("invalid quantity")
		return nil, model.ErrInvalidQuantity
	}

	return s.mutate(ctx, func(cart *model.Cart) {
		if i := cart.Find(food.ID); i >= 0 {
			cart.Items[i].Quantity += quantity
			return
		}
		cart.Items = append(cart.Items, model.CartItem{Food: food, Quantity: quantity})
	})
}

// RemoveItem drops the entry for foodID. An absent entry is not an error.
func (s *cartService) RemoveItem(ctx context.Context, foodID string) (*model.Cart, error) {
	return s.mutate(ctx, func(cart *model.Cart) {
		removeItem(cart, foodID)
	})
}

// UpdateQuantity sets the exact quantity for foodID; quantity <= 0 removes it.
func (s *cartService) UpdateQuantity(ctx context.Context, foodID string, quantity int) (*model.Cart, error) {
	return s.mutate(ctx, func(cart *model.Cart) {
		i := cart.Find(foodID)
		if i < 0 {
			return
		}
		if quantity <= 0 {
			removeItem(cart, foodID)
			return
		}
		cart.Items[i].Quantity = quantity
	})
}

// Clear deletes the persisted cart and returns a fresh empty one.
func (s *cartService) Clear(ctx context.Context) (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cartRepo.Delete(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to clear cart")
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	s.logger.Info().Msg("cart cleared")
	return model.NewCart(s.now()), nil
}

// Drain calls place with the current cart while holding the cart lock and
// deletes the persisted cart only when place succeeds. No other cart
// operation can run between the read and the delete.
func (s *cartService) Drain(ctx context.Context, place func(cart *model.Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load(ctx)
	if err != nil {
		return err
	}

	if err := place(cart); err != nil {
		return err
	}

	if err := s.cartRepo.Delete(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	s.logger.Info().Int("item_count", len(cart.Items)).Msg("cart drained")
	return nil
}

// ComputeTotal sums unit price times quantity over items.
func (s *cartService) ComputeTotal(items []model.CartItem) float64 {
	return model.ComputeTotal(items)
}

// mutate applies fn to the current cart and persists the whole cart.
func (s *cartService) mutate(ctx context.Context, fn func(cart *model.Cart)) (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	fn(cart)
	cart.LastUpdated = s.now()

	if err := s.cartRepo.Save(ctx, cart); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist cart")
		return nil, fmt.Errorf("failed to update cart: %w", err)
	}

	s.logger.Debug().Int("item_count", len(cart.Items)).Msg("cart updated")
	return cart, nil
}

// load reads the persisted cart. Callers must hold s.mu.
func (s *cartService) load(ctx context.Context) (*model.Cart, error) {
	cart, err := s.cartRepo.Get(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load cart")
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if cart == nil {
		return model.NewCart(s.now()), nil
	}
	return cart, nil
}

func removeItem(cart *model.Cart, foodID string) {
	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.Food.ID != foodID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept
}
