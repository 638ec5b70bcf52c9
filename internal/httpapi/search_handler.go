package httpapi

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/BeAyanK/TechInfinite-User/internal/search"
)

type SearchHandler struct {
	catalog Catalog
	timeout time.Duration
}

func NewSearchHandler(catalog Catalog, timeout time.Duration) *SearchHandler {
	return &SearchHandler{
		catalog: catalog,
		timeout: timeout,
	}
}

type SearchResponse struct {
	Query   string                 `json:"query"`
	Results []search.ScoredProduct `json:"results"`
}

// Search ranks the catalog against the q parameter. A blank query is a
// 400 so clients can show "enter a search term" instead of "no
// matches".
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	query := r.URL.Query().Get("q")
	if len(search.Tokenize(query)) == 0 {
		respondError(w, http.StatusBadRequest, "empty_query", "enter a search term")
		return
	}

	products, err := h.catalog.Products(ctx)
	if err != nil {
		log.Printf("search %q: %v", query, err)
		respondError(w, http.StatusBadGateway, "store_unavailable", "failed to load products")
		return
	}

	results := search.Rank(query, products)
	for i := range results {
		results[i].Normalize()
	}
	if results == nil {
		results = []search.ScoredProduct{}
	}

	respondJSON(w, http.StatusOK, SearchResponse{
		Query:   query,
		Results: results,
	})
}
