package search

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/BeAyanK/TechInfinite-User/internal/domain"
)

// Field weights: a title hit outranks a category hit outranks a
// description hit.
const (
	titleWeight       = 3
	categoryWeight    = 2
	descriptionWeight = 1
)

type ScoredProduct struct {
	domain.Product
	Score int `json:"score"`
}

var collatorMu sync.Mutex

// collator is not safe for concurrent use.
var collator = collate.New(language.English, collate.IgnoreCase)

// Tokenize normalizes a raw query: lowercased, split on whitespace,
// empty tokens dropped. An empty result means "no query", which
// callers must treat differently from "no matches".
func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// Rank scores every product against the query tokens and returns the
// matches ordered by score descending, ties broken by title ascending
// under locale collation. Pure: identical inputs yield identical
// output, nothing is cached.
func Rank(query string, products []domain.Product) []ScoredProduct {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	var scored []ScoredProduct
	for _, p := range products {
		if s := score(tokens, p); s > 0 {
			scored = append(scored, ScoredProduct{Product: p, Score: s})
		}
	}

	collatorMu.Lock()
	defer collatorMu.Unlock()
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return collator.CompareString(scored[i].Title, scored[j].Title) < 0
	})
	return scored
}

func score(tokens []string, p domain.Product) int {
	title := strings.ToLower(p.Title)
	category := strings.ToLower(p.Category)
	description := strings.ToLower(p.Description)

	total := 0
	for _, tok := range tokens {
		if strings.Contains(title, tok) {
			total += titleWeight
		}
		if strings.Contains(category, tok) {
			total += categoryWeight
		}
		if strings.Contains(description, tok) {
			total += descriptionWeight
		}
	}
	return total
}
