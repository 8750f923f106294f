package listing

import (
	"reflect"
	"testing"
)

func TestBuildCatalogOrderAndOmission(t *testing.T) {
	v := Vocabulary{
		Subcategories: []Option{{Label: "Tacos", Value: 10}},
		Prices:        []Option{{Label: "$$", Value: 2}},
		// Amenities and Dietary intentionally empty.
	}
	catalog := BuildCatalog(v)
	if len(catalog) != 2 {
		t.Fatalf("catalog has %d facets, want 2", len(catalog))
	}
	if catalog[0].Type != FacetSubcategory || catalog[1].Type != FacetPrice {
		t.Fatalf("facet order = %s, %s; want subcategory, price", catalog[0].Type, catalog[1].Type)
	}
	if catalog[0].Name != "Tipos de comida" {
		t.Errorf("subcategory heading = %q", catalog[0].Name)
	}
	if catalog[1].Name != "Nivel de precios" {
		t.Errorf("price heading = %q", catalog[1].Name)
	}
}

func TestBuildCatalogEmptyVocabulary(t *testing.T) {
	if got := BuildCatalog(Vocabulary{}); len(got) != 0 {
		t.Fatalf("empty vocabulary produced %d facets", len(got))
	}
}

func TestBuildCatalogDedupesOptions(t *testing.T) {
	v := Vocabulary{
		Amenities: []Option{
			{Label: "Terraza", Value: 1},
			{Label: "WiFi", Value: 2},
			{Label: "Terraza", Value: 1},
		},
	}
	catalog := BuildCatalog(v)
	if len(catalog) != 1 {
		t.Fatalf("catalog has %d facets, want 1", len(catalog))
	}
	want := []Option{{Label: "Terraza", Value: 1}, {Label: "WiFi", Value: 2}}
	if !reflect.DeepEqual(catalog[0].Options, want) {
		t.Fatalf("options = %v, want %v", catalog[0].Options, want)
	}
}
