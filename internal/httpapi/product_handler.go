package httpapi

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/BeAyanK/TechInfinite-User/internal/catalog"
	"github.com/BeAyanK/TechInfinite-User/internal/domain"
	"github.com/BeAyanK/TechInfinite-User/internal/session"
)

// Catalog is the slice of the catalog service the handlers need.
type Catalog interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	Product(ctx context.Context, id string) (*domain.Product, error)
	ProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
}

type ProductHandler struct {
	catalog  Catalog
	sessions *session.Registry
	timeout  time.Duration
}

func NewProductHandler(catalog Catalog, sessions *session.Registry, timeout time.Duration) *ProductHandler {
	return &ProductHandler{
		catalog:  catalog,
		sessions: sessions,
		timeout:  timeout,
	}
}

// ProductDTO decorates a product with the per-session flags the
// listing views need for their item controls.
type ProductDTO struct {
	domain.Product
	Favorite     bool `json:"favorite"`
	CartQuantity int  `json:"cartQuantity"`
}

// ProductDetailDTO adds the gallery image list the detail view renders.
type ProductDetailDTO struct {
	ProductDTO
	Images []string `json:"images"`
}

func (h *ProductHandler) newProductDTO(p domain.Product, sess *session.Session) ProductDTO {
	p.Normalize()
	qty := 0
	for _, line := range sess.Cart.Snapshot().Lines {
		if line.ProductID == p.ID {
			qty = line.Quantity
			break
		}
	}
	return ProductDTO{
		Product:      p,
		Favorite:     sess.Favorites.IsFavorite(p.ID),
		CartQuantity: qty,
	}
}

func (h *ProductHandler) listDTOs(products []domain.Product, sess *session.Session) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, h.newProductDTO(p, sess))
	}
	return dtos
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	products, err := h.catalog.Products(ctx)
	if err != nil {
		log.Printf("list products: %v", err)
		respondError(w, http.StatusBadGateway, "store_unavailable", "failed to load products")
		return
	}

	sess := h.sessions.Get(ctx, getSessionID(r.Context()))
	respondJSON(w, http.StatusOK, h.listDTOs(products, sess))
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id := chi.URLParam(r, "id")
	product, err := h.catalog.Product(ctx, id)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		log.Printf("get product %s: %v", id, err)
		respondError(w, http.StatusBadGateway, "store_unavailable", "failed to load product")
		return
	}

	sess := h.sessions.Get(ctx, getSessionID(r.Context()))
	respondJSON(w, http.StatusOK, ProductDetailDTO{
		ProductDTO: h.newProductDTO(*product, sess),
		Images:     product.Images(),
	})
}

func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	categories, err := h.catalog.Categories(ctx)
	if err != nil {
		log.Printf("list categories: %v", err)
		respondError(w, http.StatusBadGateway, "store_unavailable", "failed to load categories")
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

func (h *ProductHandler) ListProductsByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	category := chi.URLParam(r, "category")
	products, err := h.catalog.ProductsByCategory(ctx, category)
	if err != nil {
		log.Printf("list products for category %s: %v", category, err)
		respondError(w, http.StatusBadGateway, "store_unavailable", "failed to load products")
		return
	}

	sess := h.sessions.Get(ctx, getSessionID(r.Context()))
	respondJSON(w, http.StatusOK, h.listDTOs(products, sess))
}
