// internal/search/category.go
package search

import (
	"strings"

	"github.com/google/uuid"

	"github.com/shopkart/backend/internal/models"
)

// MatchCategories decides which categories a free-text query refers to. A
// category matches on substring containment in either direction against its
// display name or slug, falling back to its synonym set. Membership only, no
// ranking. An empty or whitespace-only query matches nothing.
func MatchCategories(query string, categories []models.Category) map[uuid.UUID]struct{} {
	matched := make(map[uuid.UUID]struct{})

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return matched
	}

	for _, category := range categories {
		name := strings.ToLower(category.Name)
		slug := strings.ToLower(category.Slug)

		if strings.Contains(name, q) || strings.Contains(q, name) ||
			strings.Contains(slug, q) || strings.Contains(q, slug) {
			matched[category.ID] = struct{}{}
			continue
		}

		for _, synonym := range SynonymsFor(slug) {
			if strings.Contains(q, synonym) || strings.Contains(synonym, q) {
				matched[category.ID] = struct{}{}
				break
			}
		}
	}

	return matched
}
