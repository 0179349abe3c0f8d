package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"foodie-kart/internal/model"
	"foodie-kart/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
// mu serialises every read-modify-write of the persisted ledger.
type orderService struct {
	mu        sync.Mutex
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// ListOrders returns every order in insertion order.
func (s *orderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// GetOrder returns the order with the given ID, or nil if there is none.
func (s *orderService) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	i := findOrder(orders, id)
	if i < 0 {
		s.logger.Debug().Str("order_id", id).Msg("order not found")
		return nil, nil
	}

	return &orders[i], nil
}

// AppendOrder adds an order to the end of the ledger.
func (s *orderService) AppendOrder(ctx context.Context, order *model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to load ledger")
		return fmt.Errorf("failed to append order: %w", err)
	}

	orders = append(orders, *order)

	if err := s.orderRepo.SaveAll(ctx, orders); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to append order")
		return fmt.Errorf("failed to append order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Int("ledger_size", len(orders)).
		Msg("order appended")

	return nil
}

// SetStatus moves an order to status following the order lifecycle.
func (s *orderService) SetStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		s.logger.Warn().Str("order_id", id).Str("status", string(status)).Msg("unknown order status")
		return nil, model.ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.setStatus(ctx, id, status)
}

// Cancel cancels an order that is neither delivered nor already cancelled.
func (s *orderService) Cancel(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.setStatus(ctx, id, model.OrderStatusCancelled)
	if errors.Is(err, model.ErrInvalidTransition) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return order != nil, nil
}

// setStatus performs the status change. Callers must hold s.mu.
func (s *orderService) setStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to load ledger")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	i := findOrder(orders, id)
	if i < 0 {
		s.logger.Debug().Str("order_id", id).Msg("order not found")
		return nil, nil
	}

	current := orders[i].Status
	if !current.CanTransitionTo(status) {
		s.logger.Warn().
			Str("order_id", id).
			Str("from", string(current)).
			Str("to", string(status)).
			Msg("illegal order status transition")
		return nil, model.ErrInvalidTransition
	}

	orders[i].Status = status

	if err := s.orderRepo.SaveAll(ctx, orders); err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to persist order status")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	s.logger.Info().
		Str("order_id", id).
		Str("from", string(current)).
		Str("to", string(status)).
		Msg("order status updated")

	updated := orders[i]
	return &updated, nil
}

func findOrder(orders []model.Order, id string) int {
	for i := range orders {
		if orders[i].ID == id {
			return i
		}
	}
	return -1
}
