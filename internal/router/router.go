package router

import (
	"net/http"

	"foodie-kart/internal/handler"
	"foodie-kart/internal/middleware"
	"foodie-kart/internal/model"

	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Catalog *handler.CatalogHandler
	Cart    *handler.CartHandler
	Orders  *handler.OrderHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, apiKey string, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Menu
	mux.HandleFunc("/api/foods", h.Catalog.List)
	mux.HandleFunc("/api/foods/featured", h.Catalog.Featured)
	mux.HandleFunc("/api/foods/{id}", h.Catalog.GetByID)

	// Cart
	mux.HandleFunc("/api/cart", h.Cart.Cart)
	mux.HandleFunc("/api/cart/total", h.Cart.Total)
	mux.HandleFunc("/api/cart/items", h.Cart.AddItem)
	mux.HandleFunc("/api/cart/items/{foodId}", h.Cart.Item)

	// Orders
	mux.HandleFunc("/api/checkout", h.Orders.Checkout)
	mux.HandleFunc("/api/orders", h.Orders.List)
	mux.HandleFunc("/api/orders/{id}", h.Orders.GetByID)
	mux.HandleFunc("/api/orders/{id}/status", h.Orders.UpdateStatus)
	mux.HandleFunc("/api/orders/{id}/cancel", h.Orders.Cancel)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "` + model.ErrCodeNotFound + `", "message": "route not found"}`))
	})

	// Apply middleware in order: Recovery -> Logging -> CorrelationID -> CORS -> APIKeyAuth
	var handler http.Handler = mux
	handler = middleware.APIKeyAuth(apiKey, logger)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.CorrelationID(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
