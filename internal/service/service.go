package service

import (
	"context"

	"foodie-kart/internal/model"
)

// CatalogService defines read-only operations on the menu.
type CatalogService interface {
	// ListFoods returns foods filtered by category and, when query is not
	// empty, by a case-insensitive name/description match.
	ListFoods(ctx context.Context, category model.FoodCategory, query string) ([]model.Food, error)

	// GetFood retrieves a single food by ID.
	GetFood(ctx context.Context, id string) (*model.Food, error)

	// Featured returns up to limit of the best rated foods.
	Featured(ctx context.Context, limit int) ([]model.Food, error)
}

// CartService defines operations on the shopping cart.
type CartService interface {
	// GetCart returns the current cart, or a fresh empty one.
	GetCart(ctx context.Context) (*model.Cart, error)

	// AddItem adds quantity of food, merging with an existing entry.
	AddItem(ctx context.Context, food model.Food, quantity int) (*model.Cart, error)

	// RemoveItem drops the entry for foodID if present.
	RemoveItem(ctx context.Context, foodID string) (*model.Cart, error)

	// UpdateQuantity sets the exact quantity for foodID; quantity <= 0 removes it.
	UpdateQuantity(ctx context.Context, foodID string, quantity int) (*model.Cart, error)

	// Clear deletes the persisted cart and returns a fresh empty one.
	Clear(ctx context.Context) (*model.Cart, error)

	// Drain runs place on the current cart under the cart lock and deletes
	// the cart only if place returns nil.
	Drain(ctx context.Context, place func(cart *model.Cart) error) error

	// ComputeTotal sums unit price times quantity over items.
	ComputeTotal(items []model.CartItem) float64
}

// OrderService defines operations on the order ledger.
type OrderService interface {
	// ListOrders returns every order in insertion order.
	ListOrders(ctx context.Context) ([]model.Order, error)

	// GetOrder returns the order with the given ID, or nil if there is none.
	GetOrder(ctx context.Context, id string) (*model.Order, error)

	// AppendOrder adds an order to the end of the ledger.
	AppendOrder(ctx context.Context, order *model.Order) error

	// SetStatus moves an order to status. It returns nil when the order does
	// not exist and model.ErrInvalidTransition for an illegal move.
	SetStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)

	// Cancel cancels an order that is neither delivered nor already cancelled.
	Cancel(ctx context.Context, id string) (bool, error)
}

// CheckoutService turns cart contents into orders.
type CheckoutService interface {
	// Checkout places an order for items and clears the cart.
	Checkout(ctx context.Context, items []model.CartItem) (*model.Order, error)

	// CheckoutCart reads the current cart and checks it out.
	CheckoutCart(ctx context.Context) (*model.Order, error)
}
