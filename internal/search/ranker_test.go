package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeAyanK/TechInfinite-User/internal/domain"
)

func TestRank_FieldWeights(t *testing.T) {
	catalog := []domain.Product{
		{ID: "a", Title: "Red Shoe", Category: "Footwear"},
		{ID: "b", Title: "Blue Hat", Category: "Footwear accessory"},
	}

	results := Rank("shoe footwear", catalog)

	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].ID)
	assert.Equal(t, 5, results[0].Score) // 3 title + 2 category
	assert.Equal(t, "b", results[1].ID)
	assert.Equal(t, 2, results[1].Score) // 2 category
}

func TestRank_EmptyQueryReturnsNil(t *testing.T) {
	catalog := []domain.Product{{ID: "a", Title: "Red Shoe"}}

	assert.Nil(t, Rank("", catalog))
	assert.Nil(t, Rank("   \t  ", catalog))
}

func TestRank_NoMatchesIsEmptyNotNilQuery(t *testing.T) {
	catalog := []domain.Product{{ID: "a", Title: "Red Shoe"}}

	results := Rank("submarine", catalog)
	assert.Empty(t, results)
}

func TestRank_MissingFieldsContributeZero(t *testing.T) {
	catalog := []domain.Product{
		{ID: "a", Title: "Lamp"}, // no category, no description
	}

	results := Rank("lamp", catalog)
	require.Len(t, results, 1)
	assert.Equal(t, 3, results[0].Score)
}

func TestRank_DescriptionWeight(t *testing.T) {
	catalog := []domain.Product{
		{ID: "a", Title: "Desk", Description: "a sturdy oak desk with drawers"},
	}

	results := Rank("oak", catalog)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Score)
}

func TestRank_CaseInsensitive(t *testing.T) {
	catalog := []domain.Product{{ID: "a", Title: "RED Shoe"}}

	results := Rank("ReD", catalog)
	require.Len(t, results, 1)
	assert.Equal(t, 3, results[0].Score)
}

func TestRank_TieBreakByTitle(t *testing.T) {
	catalog := []domain.Product{
		{ID: "z", Title: "Zebra Lamp"},
		{ID: "a", Title: "Amber Lamp"},
	}

	results := Rank("lamp", catalog)
	require.Len(t, results, 2)
	assert.Equal(t, "Amber Lamp", results[0].Title)
	assert.Equal(t, "Zebra Lamp", results[1].Title)
}

func TestRank_Deterministic(t *testing.T) {
	catalog := []domain.Product{
		{ID: "a", Title: "Red Shoe", Category: "Footwear"},
		{ID: "b", Title: "Blue Hat", Category: "Headwear", Description: "a shoe-themed hat"},
		{ID: "c", Title: "Shoe Rack", Category: "Storage"},
	}

	first := Rank("shoe", catalog)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Rank("shoe", catalog))
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"red", "shoe"}, Tokenize("  Red   SHOE "))
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   "))
}
