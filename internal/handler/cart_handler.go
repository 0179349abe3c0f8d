package handler

import (
	"net/http"

	"foodie-kart/internal/model"
	"foodie-kart/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles shopping cart HTTP requests.
type CartHandler struct {
	carts   service.CartService
	catalog service.CatalogService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler. Foods added by ID are resolved
// through catalog.
func NewCartHandler(carts service.CartService, catalog service.CatalogService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		carts:   carts,
		catalog: catalog,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// Cart handles GET and DELETE /api/cart requests.
func (h *CartHandler) Cart(w http.ResponseWriter, r *http.Request) {
	if methodNotAllowed(w, r, h.logger, http.MethodGet, http.MethodDelete) {
		return
	}

	var (
		cart *model.Cart
		err  error
	)
	if r.Method == http.MethodDelete {
		cart, err = h.carts.Clear(r.Context())
	} else {
		cart, err = h.carts.GetCart(r.Context())
	}
	if err != nil {
		writeServiceError(w, r, err, "failed to process cart", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart, h.logger)
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if methodNotAllowed(w, r, h.logger, http.MethodPost) {
		return
	}

	var req model.CartAddRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, err.Error(), h.logger)
		return
	}

	if req.FoodID == "" {
		writeServiceError(w, r, model.ErrMissingFoodID, "", h.logger)
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	food, err := h.catalog.GetFood(r.Context(), req.FoodID)
	if err != nil {
		writeServiceError(w, r, err, "failed to retrieve food", h.logger)
		return
	}

	cart, err := h.carts.AddItem(r.Context(), *food, quantity)
	if err != nil {
		writeServiceError(w, r, err, "failed to add item to cart", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart, h.logger)
}

// Item handles PUT and DELETE /api/cart/items/{foodId} requests.
func (h *CartHandler) Item(w http.ResponseWriter, r *http.Request) {
	if methodNotAllowed(w, r, h.logger, http.MethodPut, http.MethodDelete) {
		return
	}

	foodID := r.PathValue("foodId")
	if foodID == "" {
		writeServiceError(w, r, model.ErrMissingFoodID, "", h.logger)
		return
	}

	if r.Method == http.MethodDelete {
		cart, err := h.carts.RemoveItem(r.Context(), foodID)
		if err != nil {
			writeServiceError(w, r, err, "failed to remove item from cart", h.logger)
			return
		}
		writeJSON(w, http.StatusOK, cart, h.logger)
		return
	}

	var req model.CartUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, err.Error(), h.logger)
		return
	}
	if req.Quantity == nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "quantity is required", h.logger)
		return
	}

	cart, err := h.carts.UpdateQuantity(r.Context(), foodID, *req.Quantity)
	if err != nil {
		writeServiceError(w, r, err, "failed to update cart item", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart, h.logger)
}

// Total handles GET /api/cart/total requests.
func (h *CartHandler) Total(w http.ResponseWriter, r *http.Request) {
	if methodNotAllowed(w, r, h.logger, http.MethodGet) {
		return
	}

	cart, err := h.carts.GetCart(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "failed to retrieve cart", h.logger)
		return
	}

	count := 0
	for _, item := range cart.Items {
		count += item.Quantity
	}

	writeJSON(w, http.StatusOK, model.CartTotalResponse{
		Total:     h.carts.ComputeTotal(cart.Items),
		ItemCount: count,
	}, h.logger)
}
