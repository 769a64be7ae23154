// internal/search/fuzzy_test.go
package search

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/shopkart/backend/internal/models"
)

func makeProduct(name, description string, category models.Category) models.Product {
	p := models.Product{
		Name:        name,
		Description: description,
		CategoryID:  category.ID,
		Category:    category,
	}
	p.ID = uuid.New()
	return p
}

func TestFuzzyMatchShortQuery(t *testing.T) {
	mobiles := makeCategory("Mobiles", "mobiles")
	products := []models.Product{makeProduct("iPhone 15", "", mobiles)}

	assert.Nil(t, FuzzyMatch("a", products))
	assert.Nil(t, FuzzyMatch("", products))
}

func TestFuzzyMatchTypoTolerance(t *testing.T) {
	mobiles := makeCategory("Mobiles", "mobiles")
	fashion := makeCategory("Fashion", "fashion")
	products := []models.Product{
		makeProduct("Samsung Galaxy S24", "", mobiles),
		makeProduct("iPhone 15", "", mobiles),
		makeProduct("Denim Jacket", "", fashion),
	}

	ranked := FuzzyMatch("iphoen", products)
	assert.Len(t, ranked, 1)
	assert.Equal(t, "iPhone 15", ranked[0].Name)
}

func TestFuzzyMatchExactWordRanksFirst(t *testing.T) {
	fashion := makeCategory("Fashion", "fashion")
	products := []models.Product{
		makeProduct("Shoe Polish", "", fashion),
		makeProduct("Running Shoes", "", fashion),
	}

	ranked := FuzzyMatch("shoes", products)
	assert.Len(t, ranked, 2)
	assert.Equal(t, "Running Shoes", ranked[0].Name)
	assert.Equal(t, "Shoe Polish", ranked[1].Name)
}

func TestFuzzyMatchPrefix(t *testing.T) {
	fashion := makeCategory("Fashion", "fashion")
	products := []models.Product{
		makeProduct("Running Shoes", "", fashion),
		makeProduct("Samsung Galaxy S24", "", makeCategory("Mobiles", "mobiles")),
	}

	ranked := FuzzyMatch("run", products)
	assert.Len(t, ranked, 1)
	assert.Equal(t, "Running Shoes", ranked[0].Name)
}

func TestFuzzyMatchUnrelatedQueryExcluded(t *testing.T) {
	mobiles := makeCategory("Mobiles", "mobiles")
	products := []models.Product{
		makeProduct("iPhone 15", "Latest flagship", mobiles),
		makeProduct("Samsung Galaxy S24", "Android flagship", mobiles),
	}

	assert.Empty(t, FuzzyMatch("xylophone", products))
}

func TestFuzzyMatchStableOrderOnTies(t *testing.T) {
	fashion := makeCategory("Fashion", "fashion")
	first := makeProduct("Canvas Shoes", "", fashion)
	second := makeProduct("Leather Shoes", "", fashion)
	products := []models.Product{first, second}

	// Both carry an exact word hit; input order must survive the sort.
	ranked := FuzzyMatch("shoes", products)
	assert.Len(t, ranked, 2)
	assert.Equal(t, first.ID, ranked[0].ID)
	assert.Equal(t, second.ID, ranked[1].ID)
}

func TestFieldDistanceEmptyField(t *testing.T) {
	assert.Equal(t, 1.0, fieldDistance("shoes", ""))
}

func TestFieldDistanceExactMatch(t *testing.T) {
	assert.Equal(t, 0.0, fieldDistance("shoes", "Shoes"))
}

func TestNormalizeStripsPunctuation(t *testing.T) {
	assert.Equal(t, "tshirt mens", normalize("  T-Shirt (Men's)  "))
}

func TestLevenshteinCountsRunes(t *testing.T) {
	// Multi-byte letters are single edits, not one per byte.
	assert.Equal(t, 1, levenshtein([]rune("café"), []rune("cafe")))
	assert.Equal(t, 1, levenshtein([]rune("müsli"), []rune("musli")))
	assert.Equal(t, 0, levenshtein([]rune("crème"), []rune("crème")))
}

func TestSimilarityAccentedNames(t *testing.T) {
	assert.Equal(t, 0.75, similarity("über", "uber"))
	assert.InDelta(t, 0.8, similarity("café", "cafés"), 1e-9)
}

func TestFuzzyMatchAccentedProductName(t *testing.T) {
	groceries := makeCategory("Groceries", "groceries")
	products := []models.Product{
		makeProduct("Nescafé Classic", "Instant coffee", groceries),
	}

	ranked := FuzzyMatch("nescafe", products)
	assert.Len(t, ranked, 1)
	assert.Equal(t, "Nescafé Classic", ranked[0].Name)
}
