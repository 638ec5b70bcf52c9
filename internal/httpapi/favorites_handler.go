package httpapi

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/BeAyanK/TechInfinite-User/internal/session"
)

type FavoritesHandler struct {
	catalog  Catalog
	sessions *session.Registry
	timeout  time.Duration
}

func NewFavoritesHandler(catalog Catalog, sessions *session.Registry, timeout time.Duration) *FavoritesHandler {
	return &FavoritesHandler{
		catalog:  catalog,
		sessions: sessions,
		timeout:  timeout,
	}
}

type ToggleResponseDTO struct {
	ProductID string `json:"product_id"`
	Favorite  bool   `json:"favorite"`
}

func (h *FavoritesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	sess := h.sessions.Get(r.Context(), getSessionID(r.Context()))

	respondJSON(w, http.StatusOK, ToggleResponseDTO{
		ProductID: productID,
		Favorite:  sess.Favorites.Toggle(r.Context(), productID),
	})
}

// List returns the favorited slice of the catalog, in catalog order.
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	products, err := h.catalog.Products(ctx)
	if err != nil {
		log.Printf("list favorites: %v", err)
		respondError(w, http.StatusBadGateway, "store_unavailable", "failed to load products")
		return
	}

	sess := h.sessions.Get(ctx, getSessionID(r.Context()))
	favorites := sess.Favorites.List(products)
	for i := range favorites {
		favorites[i].Normalize()
	}
	respondJSON(w, http.StatusOK, favorites)
}
