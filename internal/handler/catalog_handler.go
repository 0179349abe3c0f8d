package handler

import (
	"net/http"
	"strconv"

	"foodie-kart/internal/model"
	"foodie-kart/internal/service"

	"github.com/rs/zerolog"
)

// CatalogHandler handles menu HTTP requests.
type CatalogHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(service service.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// List handles GET /api/foods requests with optional category and q filters.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	if methodNotAllowed(w, r, h.logger, http.MethodGet) {
		return
	}

	category := model.FoodCategory(r.URL.Query().Get("category"))
	if category != "" && !category.Valid() {
		writeServiceError(w, r, model.ErrInvalidCategory, "", h.logger)
		return
	}

	foods, err := h.service.ListFoods(r.Context(), category, r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, r, err, "failed to retrieve foods", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, foods, h.logger)
}

// Featured handles GET /api/foods/featured requests.
func (h *CatalogHandler) Featured(w http.ResponseWriter, r *http.Request) {
	if methodNotAllowed(w, r, h.logger, http.MethodGet) {
		return
	}

	limit := 0 // service default
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidParameter, "invalid limit parameter", h.logger)
			return
		}
	}

	foods, err := h.service.Featured(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, err, "failed to retrieve featured foods", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, foods, h.logger)
}

// GetByID handles GET /api/foods/{id} requests.
func (h *CatalogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if methodNotAllowed(w, r, h.logger, http.MethodGet) {
		return
	}

	foodID := r.PathValue("id")
	if foodID == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "food ID is required", h.logger)
		return
	}

	food, err := h.service.GetFood(r.Context(), foodID)
	if err != nil {
		writeServiceError(w, r, err, "failed to retrieve food", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, food, h.logger)
}
