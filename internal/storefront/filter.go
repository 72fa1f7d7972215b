package storefront

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"storefront_backend/internal/feature/catalog/transport/http/dto"
)

// AllCategories matches every product category.
const AllCategories = "all"

// Normalize lower-cases s and strips accents, so "Pequeño" matches "pequeno".
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Filter returns the products whose normalized name contains the normalized
// query and whose category is category ("all" or empty matches any).
func Filter(products []dto.ProductItem, query, category string) []dto.ProductItem {
	q := Normalize(strings.TrimSpace(query))
	out := make([]dto.ProductItem, 0, len(products))
	for _, p := range products {
		if category != "" && category != AllCategories && p.Category != category {
			continue
		}
		if !strings.Contains(Normalize(p.Name), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}
