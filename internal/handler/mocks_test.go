package handler

import (
	"context"

	"foodie-kart/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a mock implementation of CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListFoods(ctx context.Context, category model.FoodCategory, query string) ([]model.Food, error) {
	args := m.Called(ctx, category, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Food), args.Error(1)
}

func (m *MockCatalogService) GetFood(ctx context.Context, id string) (*model.Food, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Food), args.Error(1)
}

func (m *MockCatalogService) Featured(ctx context.Context, limit int) ([]model.Food, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Food), args.Error(1)
}

// MockCartService is a mock implementation of CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetCart(ctx context.Context) (*model.Cart, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cart), args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, food model.Food, quantity int) (*model.Cart, error) {
	args := m.Called(ctx, food, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cart), args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, foodID string) (*model.Cart, error) {
	args := m.Called(ctx, foodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cart), args.Error(1)
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, foodID string, quantity int) (*model.Cart, error) {
	args := m.Called(ctx, foodID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cart), args.Error(1)
}

func (m *MockCartService) Clear(ctx context.Context) (*model.Cart, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cart), args.Error(1)
}

// Drain runs place on the cart configured via Return and, when place
// succeeds, returns the configured clear error.
func (m *MockCartService) Drain(ctx context.Context, place func(cart *model.Cart) error) error {
	args := m.Called(ctx)
	if cart, ok := args.Get(0).(*model.Cart); ok {
		if err := place(cart); err != nil {
			return err
		}
	}
	return args.Error(1)
}

func (m *MockCartService) ComputeTotal(items []model.CartItem) float64 {
	return model.ComputeTotal(items)
}

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) AppendOrder(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderService) SetStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) Cancel(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockCheckoutService is a mock implementation of CheckoutService.
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Checkout(ctx context.Context, items []model.CartItem) (*model.Order, error) {
	args := m.Called(ctx, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockCheckoutService) CheckoutCart(ctx context.Context) (*model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}
