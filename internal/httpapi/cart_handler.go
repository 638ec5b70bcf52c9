package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/BeAyanK/TechInfinite-User/internal/cart"
	"github.com/BeAyanK/TechInfinite-User/internal/catalog"
	"github.com/BeAyanK/TechInfinite-User/internal/session"
)

type CartHandler struct {
	catalog  Catalog
	sessions *session.Registry
	timeout  time.Duration
}

func NewCartHandler(catalog Catalog, sessions *session.Registry, timeout time.Duration) *CartHandler {
	return &CartHandler{
		catalog:  catalog,
		sessions: sessions,
		timeout:  timeout,
	}
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
}

type CheckoutRequestDTO struct {
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}

const defaultPaymentMethod = "cod"

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r.Context(), getSessionID(r.Context()))
	respondJSON(w, http.StatusOK, sess.Cart.Snapshot())
}

// AddItem resolves the product in the catalog and adds it to the cart,
// copying its display fields into the line.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	product, err := h.catalog.Product(ctx, req.ProductID)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		log.Printf("add to cart %s: %v", req.ProductID, err)
		respondError(w, http.StatusBadGateway, "store_unavailable", "failed to load product")
		return
	}
	product.Normalize()

	sess := h.sessions.Get(ctx, getSessionID(r.Context()))
	respondJSON(w, http.StatusCreated, sess.Cart.Add(ctx, *product))
}

func (h *CartHandler) IncreaseQuantity(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r.Context(), getSessionID(r.Context()))
	respondJSON(w, http.StatusOK, sess.Cart.Increase(r.Context(), chi.URLParam(r, "product_id")))
}

func (h *CartHandler) DecreaseQuantity(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r.Context(), getSessionID(r.Context()))
	respondJSON(w, http.StatusOK, sess.Cart.Decrease(r.Context(), chi.URLParam(r, "product_id")))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r.Context(), getSessionID(r.Context()))
	respondJSON(w, http.StatusOK, sess.Cart.Remove(r.Context(), chi.URLParam(r, "product_id")))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r.Context(), getSessionID(r.Context()))
	respondJSON(w, http.StatusOK, sess.Cart.Clear(r.Context()))
}

func (h *CartHandler) ToggleVisibility(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r.Context(), getSessionID(r.Context()))
	respondJSON(w, http.StatusOK, sess.Cart.ToggleVisibility())
}

// Checkout places an order from the current cart. Precondition
// failures each map to their own code so the client can show a
// distinct message; a store failure leaves the cart intact for retry.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = defaultPaymentMethod
	}

	sess := h.sessions.Get(ctx, getSessionID(r.Context()))
	order, err := sess.Cart.PlaceOrder(ctx, req.Address, req.PaymentMethod, getIdentity(r.Context()))
	switch {
	case errors.Is(err, cart.ErrNotAuthenticated):
		respondError(w, http.StatusUnauthorized, "unauthenticated", err.Error())
		return
	case errors.Is(err, cart.ErrNoAddress):
		respondError(w, http.StatusBadRequest, "missing_address", err.Error())
		return
	case errors.Is(err, cart.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "empty_cart", err.Error())
		return
	case err != nil:
		log.Printf("place order: %v", err)
		respondError(w, http.StatusBadGateway, "order_failed", "failed to place order, cart unchanged")
		return
	}

	respondJSON(w, http.StatusCreated, order)
}
