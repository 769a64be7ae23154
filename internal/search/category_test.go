// internal/search/category_test.go
package search

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/shopkart/backend/internal/models"
)

func makeCategory(name, slug string) models.Category {
	c := models.Category{Name: name, Slug: slug}
	c.ID = uuid.New()
	return c
}

func TestMatchCategoriesEmptyQuery(t *testing.T) {
	categories := []models.Category{
		makeCategory("Mobiles", "mobiles"),
		makeCategory("Fashion", "fashion"),
	}

	assert.Empty(t, MatchCategories("", categories))
	assert.Empty(t, MatchCategories("   ", categories))
}

func TestMatchCategoriesByName(t *testing.T) {
	mobiles := makeCategory("Mobiles", "mobiles")
	fashion := makeCategory("Fashion", "fashion")
	categories := []models.Category{mobiles, fashion}

	matched := MatchCategories("mobiles", categories)
	assert.Len(t, matched, 1)
	assert.Contains(t, matched, mobiles.ID)

	// Partial query contained in the name
	matched = MatchCategories("mobil", categories)
	assert.Contains(t, matched, mobiles.ID)

	// Name contained in a longer query
	matched = MatchCategories("best mobiles deals", categories)
	assert.Contains(t, matched, mobiles.ID)
	assert.NotContains(t, matched, fashion.ID)
}

func TestMatchCategoriesBySlug(t *testing.T) {
	home := makeCategory("Home & Furniture", "home")
	categories := []models.Category{home}

	matched := MatchCategories("home", categories)
	assert.Contains(t, matched, home.ID)
}

func TestMatchCategoriesBySynonym(t *testing.T) {
	mobiles := makeCategory("Mobiles", "mobiles")
	books := makeCategory("Books", "books")
	categories := []models.Category{mobiles, books}

	matched := MatchCategories("smartphone", categories)
	assert.Len(t, matched, 1)
	assert.Contains(t, matched, mobiles.ID)

	matched = MatchCategories("novel", categories)
	assert.Len(t, matched, 1)
	assert.Contains(t, matched, books.ID)
}

func TestMatchCategoriesCaseInsensitive(t *testing.T) {
	mobiles := makeCategory("Mobiles", "mobiles")

	matched := MatchCategories("SMARTPHONE", []models.Category{mobiles})
	assert.Contains(t, matched, mobiles.ID)
}

func TestMatchCategoriesNoMatch(t *testing.T) {
	categories := []models.Category{
		makeCategory("Mobiles", "mobiles"),
		makeCategory("Fashion", "fashion"),
	}

	assert.Empty(t, MatchCategories("iphoen", categories))
	assert.Empty(t, MatchCategories("qwerty", categories))
}
