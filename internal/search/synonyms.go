// internal/search/synonyms.go
package search

// categorySynonyms maps a category slug to related terms a shopper might type
// instead of the category name itself.
var categorySynonyms = map[string][]string{
	"mobiles":     {"phone", "smartphone", "mobile", "cell", "iphone", "android", "samsung", "oneplus", "xiaomi", "realme", "oppo", "vivo"},
	"electronics": {"gadget", "device", "electronic", "tech", "technology"},
	"fashion":     {"clothing", "clothes", "wear", "apparel", "dress", "shirt", "pant", "jeans", "tshirt", "t-shirt"},
	"home":        {"furniture", "decor", "decoration", "household", "kitchen", "bedroom", "living"},
	"appliances":  {"appliance", "washing", "fridge", "refrigerator", "ac", "microwave", "oven"},
	"books":       {"book", "novel", "textbook", "reading", "literature"},
	"toys":        {"toy", "game", "kids", "children", "play"},
	"sports":      {"sport", "fitness", "gym", "exercise", "athletic"},
	"beauty":      {"cosmetic", "makeup", "skincare", "beauty", "grooming"},
	"groceries":   {"grocery", "food", "snack", "beverage", "drink"},
}

// SynonymsFor returns the synonym set for a category slug, or nil when the
// slug has no entry.
func SynonymsFor(slug string) []string {
	return categorySynonyms[slug]
}
