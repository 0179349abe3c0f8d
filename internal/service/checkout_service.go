package service

import (
	"context"
	"fmt"
	"time"

	"foodie-kart/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultDeliveryWindow is the estimated delivery offset from order creation.
const DefaultDeliveryWindow = 30 * time.Minute

// checkoutService implements CheckoutService.
type checkoutService struct {
	carts          CartService
	orders         OrderService
	deliveryWindow time.Duration
	now            func() time.Time
	newID          func() (string, error)
	logger         zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
// A non-positive deliveryWindow falls back to DefaultDeliveryWindow.
func NewCheckoutService(carts CartService, orders OrderService, deliveryWindow time.Duration, logger zerolog.Logger) CheckoutService {
	if deliveryWindow <= 0 {
		deliveryWindow = DefaultDeliveryWindow
	}
	return &checkoutService{
		carts:          carts,
		orders:         orders,
		deliveryWindow: deliveryWindow,
		now:            time.Now,
		newID:          newOrderID,
		logger:         logger.With().Str("service", "checkout").Logger(),
	}
}

// newOrderID returns a time-ordered unique order identifier.
func newOrderID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return "ORDER_" + id.String(), nil
}

// Checkout places an order for items and then clears the cart. The cart is
// only cleared once the order has been persisted.
func (s *checkoutService) Checkout(ctx context.Context, items []model.CartItem) (*model.Order, error) {
	if err := s.validateItems(items); err != nil {
		return nil, err
	}
	return s.place(ctx, func(*model.Cart) []model.CartItem { return items })
}

// CheckoutCart checks out the current cart contents.
func (s *checkoutService) CheckoutCart(ctx context.Context) (*model.Order, error) {
	return s.place(ctx, func(cart *model.Cart) []model.CartItem { return cart.Items })
}

// place appends an order for the items picked from the cart and clears the
// cart, all under the cart lock so items added concurrently are never lost.
func (s *checkoutService) place(ctx context.Context, pick func(cart *model.Cart) []model.CartItem) (*model.Order, error) {
	var order *model.Order
	err := s.carts.Drain(ctx, func(cart *model.Cart) error {
		o, err := s.newOrder(pick(cart))
		if err != nil {
			return err
		}
		if err := s.orders.AppendOrder(ctx, o); err != nil {
			s.logger.Error().Err(err).Str("order_id", o.ID).Msg("failed to place order, cart left intact")
			return fmt.Errorf("failed to place order: %w", err)
		}
		order = o
		return nil
	})
	if err != nil {
		if order != nil {
			s.logger.Error().Err(err).Str("order_id", order.ID).Msg("order placed but cart could not be cleared")
			return nil, fmt.Errorf("failed to clear cart after checkout: %w", err)
		}
		return nil, err
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Int("item_count", len(order.Items)).
		Float64("total", order.Total).
		Msg("order placed successfully")

	return order, nil
}

// newOrder builds a pending order snapshotting items.
func (s *checkoutService) newOrder(items []model.CartItem) (*model.Order, error) {
	if err := s.validateItems(items); err != nil {
		return nil, err
	}

	id, err := s.newID()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to generate order ID")
		return nil, fmt.Errorf("failed to generate order ID: %w", err)
	}

	now := s.now()
	return &model.Order{
		ID:                id,
		Items:             model.CopyItems(items),
		Total:             s.carts.ComputeTotal(items),
		Status:            model.OrderStatusPending,
		CreatedAt:         now,
		EstimatedDelivery: now.Add(s.deliveryWindow),
	}, nil
}

func (s *checkoutService) validateItems(items []model.CartItem) error {
	if len(items) == 0 {
		return model.ErrEmptyCart
	}

	for i, item := range items {
		if item.Food.ID == "" {
			return model.ErrMissingFoodID
		}
		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Str("food_id", item.Food.ID).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}
	}

	return nil
}
