// internal/search/search.go
package search

import (
	"strings"

	"github.com/shopkart/backend/internal/models"
)

// Search applies the storefront search policy. The two modes are exclusive per
// query, never blended:
//
//  1. An empty query is browse mode: the candidate set is returned untouched.
//  2. A query naming one or more categories returns every product in those
//     categories, in catalog order, with no fuzzy ranking. "mobiles" should
//     surface the whole mobiles catalog, not the top-N fuzziest name matches.
//  3. Anything else falls through to fuzzy ranking over the full candidate
//     set, so a typo like "iphoen" still finds iPhone products.
func Search(query string, products []models.Product, categories []models.Category) []models.Product {
	if strings.TrimSpace(query) == "" {
		return products
	}

	if matched := MatchCategories(query, categories); len(matched) > 0 {
		var filtered []models.Product
		for _, product := range products {
			if _, ok := matched[product.CategoryID]; ok {
				filtered = append(filtered, product)
			}
		}
		return filtered
	}

	return FuzzyMatch(query, products)
}
