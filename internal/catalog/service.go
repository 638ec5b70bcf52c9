package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/BeAyanK/TechInfinite-User/internal/docstore"
	"github.com/BeAyanK/TechInfinite-User/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

const (
	productsCollection   = "products"
	categoriesCollection = "categories"
)

// Store is the slice of the document store the catalog needs.
// Consumers define this interface, not the docstore implementation.
type Store interface {
	ListEntries(ctx context.Context, collection string) ([]docstore.Entry, error)
	Get(ctx context.Context, collection, id string, v any) error
}

type Service struct {
	store Store
	sfg   singleflight.Group // Collapses concurrent identical fetches
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Products returns the full catalog in store order, each entry's
// generated key attached as the product id. No caching: a fetch
// failure surfaces to the caller, the next request fetches again.
func (s *Service) Products(ctx context.Context) ([]domain.Product, error) {
	v, err, _ := s.sfg.Do(productsCollection, func() (interface{}, error) {
		entries, err := s.store.ListEntries(ctx, productsCollection)
		if err != nil {
			return nil, fmt.Errorf("fetch products: %w", err)
		}

		products := make([]domain.Product, 0, len(entries))
		for _, e := range entries {
			var p domain.Product
			if err := json.Unmarshal(e.Raw, &p); err != nil {
				// A single malformed document degrades, it does not
				// fail the whole catalog.
				log.Printf("skipping malformed product %s: %v", e.Key, err)
				continue
			}
			p.ID = e.Key
			products = append(products, p)
		}
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Product), nil
}

// Categories returns all categories in store order.
func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	v, err, _ := s.sfg.Do(categoriesCollection, func() (interface{}, error) {
		entries, err := s.store.ListEntries(ctx, categoriesCollection)
		if err != nil {
			return nil, fmt.Errorf("fetch categories: %w", err)
		}

		categories := make([]domain.Category, 0, len(entries))
		for _, e := range entries {
			var c domain.Category
			if err := json.Unmarshal(e.Raw, &c); err != nil {
				log.Printf("skipping malformed category %s: %v", e.Key, err)
				continue
			}
			c.ID = e.Key
			categories = append(categories, c)
		}
		return categories, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Category), nil
}

// Product fetches a single product by id.
func (s *Service) Product(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	err := s.store.Get(ctx, productsCollection, id, &p)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch product %s: %w", id, err)
	}
	p.ID = id
	return &p, nil
}

// ProductsByCategory filters the catalog to one category title,
// case-insensitively, preserving catalog order.
func (s *Service) ProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.EqualFold(p.Category, category) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}
