// Package listing implements the restaurant discovery pipeline: scope
// matching, facet filtering, open/closed evaluation, ranking and view
// model assembly.  Everything in this package is a pure function of its
// inputs; all data store access happens in the repository layer before
// these functions run.
package listing

import "strings"

// DefaultPriceSymbol is used whenever a restaurant has no resolvable
// price tier.  Rendering an empty price field on a card was the bug
// this fallback exists to prevent.
const DefaultPriceSymbol = "$$"

// TitleFromSlug turns a URL slug into a readable title, e.g.
// "comida-mexicana" -> "Comida Mexicana".  It is only used when a row
// has no stored display name.
func TitleFromSlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// DisplayName resolves the canonical display name for a slugged row:
// the stored name wins, otherwise the title-cased slug.  Every caller
// must go through this helper so the fallback cannot drift between
// pages.
func DisplayName(name, slug string) string {
	if strings.TrimSpace(name) != "" {
		return name
	}
	return TitleFromSlug(slug)
}

// symbolFromTierName maps a tier name to a symbol when the tier row
// has no symbol of its own.  Matches both the English and Spanish
// tier vocabularies.
func symbolFromTierName(name string) string {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "budget") || strings.Contains(n, "econ"):
		return "$"
	case strings.Contains(n, "mid") || strings.Contains(n, "medio"):
		return "$$"
	case strings.Contains(n, "premium") || strings.Contains(n, "alto"):
		return "$$$"
	case strings.Contains(n, "luxury") || strings.Contains(n, "lujo"):
		return "$$$$"
	}
	return DefaultPriceSymbol
}

// PriceSymbol resolves the displayed price symbol with documented
// precedence: the tier's own symbol, then a symbol derived from the
// tier name, then DefaultPriceSymbol.
func PriceSymbol(symbol, tierName string) string {
	if strings.TrimSpace(symbol) != "" {
		return symbol
	}
	if strings.TrimSpace(tierName) != "" {
		return symbolFromTierName(tierName)
	}
	return DefaultPriceSymbol
}
