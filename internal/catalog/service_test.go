package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeAyanK/TechInfinite-User/internal/docstore"
	"github.com/BeAyanK/TechInfinite-User/internal/domain"
)

type mockStore struct {
	entries map[string][]docstore.Entry
	docs    map[string]json.RawMessage
	err     error
}

func (m *mockStore) ListEntries(_ context.Context, collection string) ([]docstore.Entry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.entries[collection], nil
}

func (m *mockStore) Get(_ context.Context, collection, id string, v any) error {
	if m.err != nil {
		return m.err
	}
	raw, ok := m.docs[collection+"/"+id]
	if !ok {
		return docstore.ErrNotFound
	}
	return json.Unmarshal(raw, v)
}

func TestProducts_AttachesKeysInStoreOrder(t *testing.T) {
	store := &mockStore{entries: map[string][]docstore.Entry{
		"products": {
			{Key: "-Nb", Raw: json.RawMessage(`{"title":"Blue Hat","price":5}`)},
			{Key: "-Na", Raw: json.RawMessage(`{"title":"Red Shoe","price":10}`)},
		},
	}}

	sut := NewService(store)
	products, err := sut.Products(context.Background())
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "-Nb", products[0].ID)
	assert.Equal(t, "Blue Hat", products[0].Title)
	assert.Equal(t, "-Na", products[1].ID)
}

func TestProducts_SkipsMalformedDocuments(t *testing.T) {
	store := &mockStore{entries: map[string][]docstore.Entry{
		"products": {
			{Key: "-Na", Raw: json.RawMessage(`{"title":"Red Shoe"}`)},
			{Key: "-Nbad", Raw: json.RawMessage(`"just a string"`)},
		},
	}}

	sut := NewService(store)
	products, err := sut.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "-Na", products[0].ID)
}

func TestProducts_FetchFailureSurfaces(t *testing.T) {
	store := &mockStore{err: fmt.Errorf("store down")}

	sut := NewService(store)
	_, err := sut.Products(context.Background())
	require.ErrorContains(t, err, "store down")
}

func TestCategories(t *testing.T) {
	store := &mockStore{entries: map[string][]docstore.Entry{
		"categories": {
			{Key: "-Nc1", Raw: json.RawMessage(`{"title":"Footwear","imageUrl":"https://img/f"}`)},
		},
	}}

	sut := NewService(store)
	categories, err := sut.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "-Nc1", categories[0].ID)
	assert.Equal(t, "Footwear", categories[0].Title)
}

func TestProduct_NotFound(t *testing.T) {
	store := &mockStore{docs: map[string]json.RawMessage{}}

	sut := NewService(store)
	_, err := sut.Product(context.Background(), "missing")
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestProduct_AttachesID(t *testing.T) {
	store := &mockStore{docs: map[string]json.RawMessage{
		"products/-Na": json.RawMessage(`{"title":"Red Shoe","price":10}`),
	}}

	sut := NewService(store)
	p, err := sut.Product(context.Background(), "-Na")
	require.NoError(t, err)
	assert.Equal(t, "-Na", p.ID)
	assert.Equal(t, "Red Shoe", p.Title)
}

func TestProductsByCategory_CaseInsensitiveFilter(t *testing.T) {
	store := &mockStore{entries: map[string][]docstore.Entry{
		"products": {
			{Key: "-Na", Raw: json.RawMessage(`{"title":"Red Shoe","category":"Footwear"}`)},
			{Key: "-Nb", Raw: json.RawMessage(`{"title":"Blue Hat","category":"Headwear"}`)},
			{Key: "-Nc", Raw: json.RawMessage(`{"title":"Boot","category":"footwear"}`)},
		},
	}}

	sut := NewService(store)
	products, err := sut.ProductsByCategory(context.Background(), "Footwear")
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "-Na", products[0].ID)
	assert.Equal(t, "-Nc", products[1].ID)
}

func TestNormalize_PlaceholdersForMissingFields(t *testing.T) {
	p := domain.Product{ID: "-Na"}
	p.Normalize()

	assert.Equal(t, "No Title", p.Title)
	assert.Equal(t, "No description available", p.Description)
	assert.Equal(t, domain.PlaceholderImageURL, p.ImageURL)
	assert.Equal(t, 0.0, p.Price)
}
