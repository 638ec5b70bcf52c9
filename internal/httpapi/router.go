package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/BeAyanK/TechInfinite-User/internal/session"
)

// NewRouter wires the storefront API surface.
func NewRouter(catalog Catalog, sessions *session.Registry, requestTimeout time.Duration) http.Handler {
	productHandler := NewProductHandler(catalog, sessions, requestTimeout)
	searchHandler := NewSearchHandler(catalog, requestTimeout)
	cartHandler := NewCartHandler(catalog, sessions, requestTimeout)
	favoritesHandler := NewFavoritesHandler(catalog, sessions, requestTimeout)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(SessionMiddleware)
	r.Use(AuthMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", productHandler.ListProducts)
		r.Get("/products/{id}", productHandler.GetProduct)
		r.Get("/categories", productHandler.ListCategories)
		r.Get("/categories/{category}/products", productHandler.ListProductsByCategory)

		r.Get("/search", searchHandler.Search)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Post("/items", cartHandler.AddItem)
			r.Post("/items/{product_id}/increase", cartHandler.IncreaseQuantity)
			r.Post("/items/{product_id}/decrease", cartHandler.DecreaseQuantity)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
			r.Delete("/", cartHandler.ClearCart)
			r.Post("/visibility", cartHandler.ToggleVisibility)
			r.Post("/checkout", cartHandler.Checkout)
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", favoritesHandler.List)
			r.Post("/{product_id}/toggle", favoritesHandler.Toggle)
		})
	})

	return r
}
