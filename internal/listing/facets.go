package listing

// Facet type keys.  The catalog always emits facets in this declared
// order regardless of option counts.
const (
	FacetSubcategory = "subcategory"
	FacetAmenity     = "amenity"
	FacetDietary     = "dietary"
	FacetPrice       = "price"
)

// Option is a single selectable filter value: a user-facing label and
// the internal identifier used in query strings.
type Option struct {
	Label string `json:"label"`
	Value uint64 `json:"value"`
}

// Facet is one filterable dimension with its ordered option set.
type Facet struct {
	Type    string   `json:"type"`
	Name    string   `json:"name"`
	Options []Option `json:"options"`
}

// Vocabulary holds the raw option rows fetched for a scope (global or
// city-wide).  Facets are always built from this full vocabulary, not
// from the filtered result set: a user narrowing by price still sees
// every subcategory the city has.  That behaviour is deliberate.
type Vocabulary struct {
	Subcategories []Option
	Amenities     []Option
	Dietary       []Option
	Prices        []Option
}

// facetTitles maps facet type keys to the sidebar headings.
var facetTitles = map[string]string{
	FacetSubcategory: "Tipos de comida",
	FacetAmenity:     "Servicios",
	FacetDietary:     "Opciones dietéticas",
	FacetPrice:       "Nivel de precios",
}

// dedupeOptions removes repeated option values while preserving first
// occurrence order.  Join queries can legitimately return the same
// option once per restaurant that carries it.
func dedupeOptions(opts []Option) []Option {
	seen := make(map[uint64]bool, len(opts))
	out := make([]Option, 0, len(opts))
	for _, o := range opts {
		if seen[o.Value] {
			continue
		}
		seen[o.Value] = true
		out = append(out, o)
	}
	return out
}

// BuildCatalog assembles the facet catalog from a vocabulary.  Options
// are deduplicated by identifier and facets with no options are omitted
// entirely rather than emitted empty.
func BuildCatalog(v Vocabulary) []Facet {
	catalog := make([]Facet, 0, 4)
	for _, f := range []struct {
		typ  string
		opts []Option
	}{
		{FacetSubcategory, v.Subcategories},
		{FacetAmenity, v.Amenities},
		{FacetDietary, v.Dietary},
		{FacetPrice, v.Prices},
	} {
		opts := dedupeOptions(f.opts)
		if len(opts) == 0 {
			continue
		}
		catalog = append(catalog, Facet{Type: f.typ, Name: facetTitles[f.typ], Options: opts})
	}
	return catalog
}
