package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/rogerio-castellano/storefront/internal/http/handlers"
	rl "github.com/rogerio-castellano/storefront/internal/http/rate_limiter"
)

// NewRouter assembles the API routes, the swagger UI, and the static site.
// publicDir may be empty to run API-only (tests do this).
func NewRouter(h *handlers.Server, limiter *rl.Limiter, publicDir string) http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(api chi.Router) {
		if limiter != nil {
			api.Use(limiter.Middleware)
		}
		api.Get("/products", h.GetProductsHandler)
		api.Get("/products/{id}", h.GetProductByIDHandler)
		api.Post("/orders", h.CreateOrderHandler)
		api.Get("/orders", h.GetOrdersHandler)
		api.NotFound(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"unknown API path"}`))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	if publicDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(publicDir)))
	}

	return r
}
