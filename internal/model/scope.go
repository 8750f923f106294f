package model

// ResolvedScope is the outcome of resolving a listing path
// (city, optional category, optional subcategory) to internal
// identifiers.  It is produced by the scope repository from exact
// slug lookups and carries the canonical display names so downstream
// code never re-derives them.  A zero CategoryID / SubcategoryID means
// that level of the path was not supplied.
type ResolvedScope struct {
	CityID          uint64
	CityName        string
	CitySlug        string
	CityState       string
	CityDescription string

	CategoryID   uint64
	CategoryName string
	CategorySlug string

	SubcategoryID   uint64
	SubcategoryName string
	SubcategorySlug string
}

// HasCategory reports whether the scope narrows to a category.
func (s ResolvedScope) HasCategory() bool { return s.CategoryID != 0 }

// HasSubcategory reports whether the scope narrows to a subcategory.
func (s ResolvedScope) HasSubcategory() bool { return s.SubcategoryID != 0 }
