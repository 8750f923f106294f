package listing

import "github.com/iliyamo/restaurant-directory/internal/model"

// FilterSelection is the set of option identifiers the user picked for
// each facet.  An empty slice means no constraint for that facet.
type FilterSelection struct {
	Subcategory []uint64
	Amenity     []uint64
	Dietary     []uint64
	Price       []uint64
}

// IsEmpty reports whether no facet carries a selection.
func (f FilterSelection) IsEmpty() bool {
	return len(f.Subcategory) == 0 && len(f.Amenity) == 0 &&
		len(f.Dietary) == 0 && len(f.Price) == 0
}

// SanitizeSelection drops selected values that do not exist in the
// facet catalog.  Stale bookmarks and hand-edited URLs carry unknown
// identifiers all the time; they are treated as not selected instead of
// failing the request.
func SanitizeSelection(sel FilterSelection, catalog []Facet) FilterSelection {
	known := make(map[string]map[uint64]bool, len(catalog))
	for _, f := range catalog {
		vals := make(map[uint64]bool, len(f.Options))
		for _, o := range f.Options {
			vals[o.Value] = true
		}
		known[f.Type] = vals
	}
	keep := func(typ string, vals []uint64) []uint64 {
		out := vals[:0]
		for _, v := range vals {
			if known[typ][v] {
				out = append(out, v)
			}
		}
		return out
	}
	return FilterSelection{
		Subcategory: keep(FacetSubcategory, sel.Subcategory),
		Amenity:     keep(FacetAmenity, sel.Amenity),
		Dietary:     keep(FacetDietary, sel.Dietary),
		Price:       keep(FacetPrice, sel.Price),
	}
}

// MatchesScope reports whether a restaurant belongs to the category or
// subcategory level of a resolved scope.  A city-only scope matches
// everything (candidates are already city-filtered at fetch time).  A
// subcategory scope requires a membership with that exact subcategory;
// a category scope is satisfied transitively by any membership whose
// parent category matches.
func MatchesScope(r *model.Restaurant, scope model.ResolvedScope) bool {
	if scope.HasSubcategory() {
		for _, l := range r.Subcategories {
			if l.SubcategoryID == scope.SubcategoryID {
				return true
			}
		}
		return false
	}
	if scope.HasCategory() {
		for _, l := range r.Subcategories {
			if l.CategoryID == scope.CategoryID {
				return true
			}
		}
		return false
	}
	return true
}

// anyOverlap reports whether have contains at least one of want.
func anyOverlap(have []uint64, want []uint64) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// matchesSelection applies the four facets to one restaurant with
// OR-within-facet, AND-across-facets semantics.  A facet with an empty
// selection always passes.
func matchesSelection(r *model.Restaurant, sel FilterSelection) bool {
	if len(sel.Subcategory) > 0 {
		ids := make([]uint64, 0, len(r.Subcategories))
		for _, l := range r.Subcategories {
			ids = append(ids, l.SubcategoryID)
		}
		if !anyOverlap(ids, sel.Subcategory) {
			return false
		}
	}
	if len(sel.Amenity) > 0 && !anyOverlap(r.AmenityIDs, sel.Amenity) {
		return false
	}
	if len(sel.Dietary) > 0 && !anyOverlap(r.DietaryIDs, sel.Dietary) {
		return false
	}
	if len(sel.Price) > 0 {
		if !r.PriceLevelID.Valid {
			return false
		}
		if !anyOverlap([]uint64{uint64(r.PriceLevelID.Int64)}, sel.Price) {
			return false
		}
	}
	return true
}

// Filter narrows the city candidate set to the scope and the facet
// selection.  The result is always a subset of the input; an empty
// selection leaves the scoped set untouched.
func Filter(candidates []*model.Restaurant, scope model.ResolvedScope, sel FilterSelection) []*model.Restaurant {
	out := make([]*model.Restaurant, 0, len(candidates))
	for _, r := range candidates {
		if !MatchesScope(r, scope) {
			continue
		}
		if !matchesSelection(r, sel) {
			continue
		}
		out = append(out, r)
	}
	return out
}
