// internal/search/fuzzy.go
package search

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopkart/backend/internal/models"
)

const (
	// DistanceThreshold is the normalized distance (0 exact, 1 unrelated) a
	// product's best field must stay within to be returned at all.
	DistanceThreshold = 0.4

	// MinQueryLength is the shortest query fragment worth matching.
	MinQueryLength = 2
)

// Field weights for scoring, heaviest on the product name.
const (
	weightName        = 0.6
	weightCategory    = 0.3
	weightDescription = 0.1
)

// FuzzyMatch ranks products by approximate textual similarity to the query
// across name, category name and description. Results are ordered by ascending
// weighted distance, ties kept in input order. Products whose best field falls
// outside DistanceThreshold are dropped.
func FuzzyMatch(query string, products []models.Product) []models.Product {
	q := normalize(query)
	if len(q) < MinQueryLength {
		return nil
	}

	type scored struct {
		product  models.Product
		distance float64
	}

	var results []scored
	for _, product := range products {
		dName := fieldDistance(q, product.Name)
		dCategory := fieldDistance(q, product.Category.Name)
		dDescription := fieldDistance(q, product.Description)

		best := dName
		if dCategory < best {
			best = dCategory
		}
		if dDescription < best {
			best = dDescription
		}
		if best > DistanceThreshold {
			continue
		}

		weighted := weightName*dName + weightCategory*dCategory + weightDescription*dDescription
		results = append(results, scored{product: product, distance: weighted})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].distance < results[j].distance
	})

	ranked := make([]models.Product, len(results))
	for i, r := range results {
		ranked[i] = r.product
	}
	return ranked
}

// fieldDistance returns the normalized distance between the query and a field,
// taking the closest of whole-string, per-word and substring evidence. An
// empty field is maximally distant.
func fieldDistance(query, field string) float64 {
	f := normalize(field)
	if f == "" {
		return 1
	}

	best := 1 - similarity(query, f)

	if strings.Contains(f, query) {
		// Substring hits score by how much of the field the query covers.
		d := 0.4 - 0.25*float64(utf8.RuneCountInString(query))/float64(utf8.RuneCountInString(f))
		if strings.HasPrefix(f, query) {
			d = 0.1
		}
		if d < best {
			best = d
		}
	}

	for _, word := range strings.Fields(f) {
		if d := 1 - similarity(query, word); d < best {
			best = d
		}
	}

	if best < 0 {
		best = 0
	}
	return best
}

// similarity is 1 - levenshtein/maxLen on already-normalized input. Distances
// count runes, not bytes, so accented names are not penalized.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 0
	}
	return 1 - float64(levenshtein(ra, rb))/float64(maxLen)
}

// levenshtein computes the edit distance with a single-row DP.
func levenshtein(a, b []rune) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr := make([]int, lb+1)
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev = curr
	}
	return prev[lb]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// normalize lowercases, trims and strips characters that are neither
// alphanumeric nor spaces.
func normalize(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
