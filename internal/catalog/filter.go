// Package catalog holds the one search predicate shared by the client-side
// filter and the in-memory store. The Postgres search mirrors it with ILIKE.
package catalog

import (
	"strings"

	"foodiehaven/internal/model"
)

// AllCategories is the category filter sentinel meaning "no filter".
const AllCategories = "All"

// Matches reports whether query is a case-insensitive substring of the
// food's name or category. An empty query matches everything.
func Matches(f model.Food, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(f.Name), q) ||
		strings.Contains(strings.ToLower(f.Category), q)
}

// Filter intersects the text predicate with an exact category match.
func Filter(foods []model.Food, query, category string) []model.Food {
	filtered := make([]model.Food, 0, len(foods))
	for _, f := range foods {
		if !Matches(f, query) {
			continue
		}
		if category != AllCategories && f.Category != category {
			continue
		}
		filtered = append(filtered, f)
	}
	return filtered
}
