package model

import (
	"time"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// nextStatus lists the forward edge out of each non-terminal status.
// Cancellation is allowed from every non-terminal status and is not listed.
var nextStatus = map[OrderStatus]OrderStatus{
	OrderStatusPending:   OrderStatusConfirmed,
	OrderStatusConfirmed: OrderStatusPreparing,
	OrderStatusPreparing: OrderStatusReady,
	OrderStatusReady:     OrderStatusDelivered,
}

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed out of s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether moving from s to next follows the order lifecycle.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() || !next.Valid() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	return nextStatus[s] == next
}

// Order is a checked-out cart tracked through its status lifecycle.
type Order struct {
	ID                string      `json:"id"`
	Items             []CartItem  `json:"items"`
	Total             float64     `json:"total"`
	Status            OrderStatus `json:"status"`
	CreatedAt         time.Time   `json:"createdAt"`
	EstimatedDelivery time.Time   `json:"estimatedDelivery"`
}

// OrderStatusRequest is the payload for changing an order's status.
type OrderStatusRequest struct {
	Status OrderStatus `json:"status"`
}

// CancelResponse reports the outcome of a cancellation.
type CancelResponse struct {
	Cancelled bool   `json:"cancelled"`
	Order     *Order `json:"order,omitempty"`
}
