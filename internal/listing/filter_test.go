package listing

import (
	"database/sql"
	"reflect"
	"testing"

	"github.com/iliyamo/restaurant-directory/internal/model"
)

func tacoPlace() *model.Restaurant {
	return &model.Restaurant{
		ID: 1,
		Subcategories: []model.SubcategoryLink{
			{SubcategoryID: 10, SubcategoryName: "Tacos", CategoryID: 100, CategoryName: "Comida Mexicana"},
		},
		AmenityIDs:   []uint64{1, 2},
		DietaryIDs:   []uint64{5},
		PriceLevelID: sql.NullInt64{Int64: 2, Valid: true},
	}
}

func sushiPlace() *model.Restaurant {
	return &model.Restaurant{
		ID: 2,
		Subcategories: []model.SubcategoryLink{
			{SubcategoryID: 20, SubcategoryName: "Sushi", CategoryID: 200, CategoryName: "Comida Japonesa"},
		},
		AmenityIDs: []uint64{2, 3},
	}
}

func TestMatchesScope(t *testing.T) {
	r := tacoPlace()
	cases := []struct {
		name  string
		scope model.ResolvedScope
		want  bool
	}{
		{"city only matches all", model.ResolvedScope{CityID: 1}, true},
		{"matching category", model.ResolvedScope{CityID: 1, CategoryID: 100}, true},
		{"other category", model.ResolvedScope{CityID: 1, CategoryID: 200}, false},
		{"matching subcategory", model.ResolvedScope{CityID: 1, CategoryID: 100, SubcategoryID: 10}, true},
		{"other subcategory", model.ResolvedScope{CityID: 1, CategoryID: 100, SubcategoryID: 11}, false},
	}
	for _, tc := range cases {
		if got := MatchesScope(r, tc.scope); got != tc.want {
			t.Errorf("%s: MatchesScope = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFilterSelectionSemantics(t *testing.T) {
	taco, sushi := tacoPlace(), sushiPlace()
	all := []*model.Restaurant{taco, sushi}
	city := model.ResolvedScope{CityID: 1}

	cases := []struct {
		name string
		sel  FilterSelection
		want []uint64
	}{
		{"empty selection passes everything", FilterSelection{}, []uint64{1, 2}},
		{"or within facet", FilterSelection{Subcategory: []uint64{10, 20}}, []uint64{1, 2}},
		{"and across facets", FilterSelection{Subcategory: []uint64{10, 20}, Dietary: []uint64{5}}, []uint64{1}},
		{"shared amenity", FilterSelection{Amenity: []uint64{2}}, []uint64{1, 2}},
		{"price excludes rows without a tier", FilterSelection{Price: []uint64{2}}, []uint64{1}},
		{"no matches", FilterSelection{Amenity: []uint64{99}}, []uint64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(all, city, tc.sel)
			ids := make([]uint64, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			if !reflect.DeepEqual(ids, tc.want) {
				t.Fatalf("filtered ids = %v, want %v", ids, tc.want)
			}
		})
	}
}

func TestFilterNarrowsMonotonically(t *testing.T) {
	all := []*model.Restaurant{tacoPlace(), sushiPlace()}
	city := model.ResolvedScope{CityID: 1}

	wide := Filter(all, city, FilterSelection{Amenity: []uint64{2}})
	narrow := Filter(all, city, FilterSelection{Amenity: []uint64{2}, Subcategory: []uint64{10}})
	if len(narrow) > len(wide) {
		t.Fatalf("adding a facet grew the result: %d > %d", len(narrow), len(wide))
	}
	for _, n := range narrow {
		found := false
		for _, w := range wide {
			if w.ID == n.ID {
				found = true
			}
		}
		if !found {
			t.Fatalf("restaurant %d in narrow set but not in wide set", n.ID)
		}
	}
}

func TestSanitizeSelection(t *testing.T) {
	catalog := []Facet{
		{Type: FacetSubcategory, Options: []Option{{Value: 10}, {Value: 20}}},
		{Type: FacetPrice, Options: []Option{{Value: 1}, {Value: 2}}},
	}
	sel := FilterSelection{
		Subcategory: []uint64{10, 999},
		Amenity:     []uint64{1}, // facet absent from catalog
		Price:       []uint64{2},
	}
	got := SanitizeSelection(sel, catalog)
	if !reflect.DeepEqual(got.Subcategory, []uint64{10}) {
		t.Errorf("subcategory = %v, want [10]", got.Subcategory)
	}
	if len(got.Amenity) != 0 {
		t.Errorf("amenity = %v, want empty", got.Amenity)
	}
	if !reflect.DeepEqual(got.Price, []uint64{2}) {
		t.Errorf("price = %v, want [2]", got.Price)
	}
}

func TestFilterSelectionIsEmpty(t *testing.T) {
	if !(FilterSelection{}).IsEmpty() {
		t.Error("zero value should be empty")
	}
	if (FilterSelection{Dietary: []uint64{1}}).IsEmpty() {
		t.Error("selection with a dietary value should not be empty")
	}
}
