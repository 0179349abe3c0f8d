package repository

import (
	"context"

	"foodie-kart/internal/model"
)

// Well-known storage keys.
const (
	CartKey   = "cart"
	OrdersKey = "orders"
)

// CartRepository persists the single shopping cart as one document.
type CartRepository interface {
	// Get returns the persisted cart, or nil when none has been saved.
	Get(ctx context.Context) (*model.Cart, error)

	// Save replaces the persisted cart.
	Save(ctx context.Context, cart *model.Cart) error

	// Delete removes the persisted cart.
	Delete(ctx context.Context) error
}

// OrderRepository persists the order ledger as one document.
type OrderRepository interface {
	// List returns every order in insertion order; empty when none exist.
	List(ctx context.Context) ([]model.Order, error)

	// SaveAll replaces the persisted ledger.
	SaveAll(ctx context.Context, orders []model.Order) error
}
