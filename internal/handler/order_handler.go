package handler

import (
	"net/http"

	"foodie-kart/internal/model"
	"foodie-kart/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles checkout and order HTTP requests.
type OrderHandler struct {
	orders   service.OrderService
	checkout service.CheckoutService
	logger   zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orders service.OrderService, checkout service.CheckoutService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		orders:   orders,
		checkout: checkout,
		logger:   logger.With().Str("handler", "order").Logger(),
	}
}

// Checkout handles POST /api/checkout requests.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	if methodNotAllowed(w, r, h.logger, http.MethodPost) {
		return
	}

	order, err := h.checkout.CheckoutCart(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "failed to place order", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order, h.logger)
}

// List handles GET /api/orders requests.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	if methodNotAllowed(w, r, h.logger, http.MethodGet) {
		return
	}

	orders, err := h.orders.ListOrders(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "failed to retrieve orders", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders, h.logger)
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if methodNotAllowed(w, r, h.logger, http.MethodGet) {
		return
	}

	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}

	order, err := h.orders.GetOrder(r.Context(), orderID)
	if err != nil {
		writeServiceError(w, r, err, "failed to retrieve order", h.logger)
		return
	}

	if order == nil {
		writeServiceError(w, r, model.ErrOrderNotFound, "", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order, h.logger)
}

// UpdateStatus handles PUT /api/orders/{id}/status requests.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if methodNotAllowed(w, r, h.logger, http.MethodPut) {
		return
	}

	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}

	var req model.OrderStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, err.Error(), h.logger)
		return
	}
	if req.Status == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "status is required", h.logger)
		return
	}

	order, err := h.orders.SetStatus(r.Context(), orderID, req.Status)
	if err != nil {
		writeServiceError(w, r, err, "failed to update order status", h.logger)
		return
	}

	if order == nil {
		writeServiceError(w, r, model.ErrOrderNotFound, "", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order, h.logger)
}

// Cancel handles POST /api/orders/{id}/cancel requests. A refused
// cancellation is reported as cancelled=false, not as an error.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if methodNotAllowed(w, r, h.logger, http.MethodPost) {
		return
	}

	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}

	cancelled, err := h.orders.Cancel(r.Context(), orderID)
	if err != nil {
		writeServiceError(w, r, err, "failed to cancel order", h.logger)
		return
	}

	order, err := h.orders.GetOrder(r.Context(), orderID)
	if err != nil {
		writeServiceError(w, r, err, "failed to retrieve order", h.logger)
		return
	}

	if order == nil {
		writeServiceError(w, r, model.ErrOrderNotFound, "", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.CancelResponse{Cancelled: cancelled, Order: order}, h.logger)
}

func (h *OrderHandler) orderID(w http.ResponseWriter, r *http.Request) (string, bool) {
	orderID := r.PathValue("id")
	if orderID == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "order ID is required", h.logger)
		return "", false
	}
	return orderID, true
}
