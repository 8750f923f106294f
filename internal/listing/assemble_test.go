package listing

import (
	"reflect"
	"testing"
	"time"

	"github.com/iliyamo/restaurant-directory/internal/model"
)

func TestAnnotateCategoryLine(t *testing.T) {
	r := &model.Restaurant{
		Timezone: "America/Mexico_City",
		Subcategories: []model.SubcategoryLink{
			{SubcategoryID: 10, SubcategoryName: "Tacos", CategoryID: 100, CategoryName: "Comida Mexicana"},
			{SubcategoryID: 11, SubcategoryName: "Mariscos", CategoryID: 100, CategoryName: "Comida Mexicana"},
		},
	}
	items := Annotate([]*model.Restaurant{r}, time.Now())
	want := []string{"Comida Mexicana", "Tacos", "Mariscos"}
	if !reflect.DeepEqual(items[0].CategoryLine, want) {
		t.Fatalf("category line = %v, want %v", items[0].CategoryLine, want)
	}
	if items[0].PriceSymbol != DefaultPriceSymbol {
		t.Fatalf("price symbol without tier = %q, want %q", items[0].PriceSymbol, DefaultPriceSymbol)
	}
}

func TestGroupImages(t *testing.T) {
	g := GroupImages([]model.RestaurantImage{
		{URL: "a.jpg", Type: "food"},
		{URL: "b.jpg", Type: "interior"},
		{URL: "c.jpg", Type: "food"},
		{URL: "d.jpg", Type: "menu"},
	})
	if g.Food.URL != "a.jpg" || g.Food.Count != 2 {
		t.Errorf("food group = %+v", g.Food)
	}
	if g.Interior.URL != "b.jpg" || g.Interior.Count != 1 {
		t.Errorf("interior group = %+v", g.Interior)
	}
	if g.Menu.URL != "d.jpg" || g.Menu.Count != 1 {
		t.Errorf("menu group = %+v", g.Menu)
	}
	if want := []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg"}; !reflect.DeepEqual(g.All, want) {
		t.Errorf("all urls = %v, want %v", g.All, want)
	}
}

func TestPageTitle(t *testing.T) {
	cases := []struct {
		name  string
		scope model.ResolvedScope
		want  string
	}{
		{
			"city only",
			model.ResolvedScope{CitySlug: "cancun", CityName: "Cancún"},
			"Cancún",
		},
		{
			"category level",
			model.ResolvedScope{CitySlug: "cancun", CityName: "Cancún", CategoryID: 1, CategorySlug: "comida-mexicana", CategoryName: "Comida Mexicana"},
			"Comida Mexicana en Cancún",
		},
		{
			"subcategory level",
			model.ResolvedScope{CitySlug: "cancun", CityName: "Cancún", CategoryID: 1, CategorySlug: "comida-mexicana", SubcategoryID: 2, SubcategorySlug: "tacos", SubcategoryName: "Tacos"},
			"Tacos en Cancún",
		},
		{
			"missing names fall back to slugs",
			model.ResolvedScope{CitySlug: "playa-del-carmen", CategoryID: 1, CategorySlug: "mariscos"},
			"Mariscos en Playa Del Carmen",
		},
	}
	for _, tc := range cases {
		if got := pageTitle(tc.scope); got != tc.want {
			t.Errorf("%s: pageTitle = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestAssemble(t *testing.T) {
	scope := model.ResolvedScope{CityID: 1, CitySlug: "cancun", CityName: "Cancún"}
	items := []*Annotated{
		{
			Restaurant: &model.Restaurant{
				ID: 1, Name: "El Fogón", Slug: "el-fogon",
				Rating: 4.7, ReviewsCount: 320,
			},
			PriceSymbol:  "$$",
			CategoryLine: []string{"Comida Mexicana", "Tacos"},
			Rank:         1,
			Snippets:     []string{"Excelente comida y servicio"},
		},
	}
	page := Assemble(scope, items, nil, "nonsense")

	if page.City != "cancun" || page.Title != "Cancún" {
		t.Errorf("page scope fields = %q / %q", page.City, page.Title)
	}
	if page.TotalCount != 1 || page.TotalLabel != "1" {
		t.Errorf("totals = %d / %q", page.TotalCount, page.TotalLabel)
	}
	if page.Sort != SortFeatured {
		t.Errorf("sort = %q, want %q", page.Sort, SortFeatured)
	}
	res := page.Results[0]
	if res.Rank != 1 || res.Restaurant.Name != "El Fogón" || res.Restaurant.PriceSymbol != "$$" {
		t.Errorf("result = %+v", res)
	}
	if res.InfoLine.OpenNow {
		t.Error("open flag should be false for zero-value state")
	}
	if !reflect.DeepEqual(res.ReviewSnippets, []string{"Excelente comida y servicio"}) {
		t.Errorf("snippets = %v", res.ReviewSnippets)
	}
}

func TestAssembleZeroResults(t *testing.T) {
	scope := model.ResolvedScope{CityID: 1, CitySlug: "merida", CityName: "Mérida"}
	catalog := []Facet{{Type: FacetAmenity, Name: "Servicios", Options: []Option{{Label: "WiFi", Value: 2}}}}
	page := Assemble(scope, nil, catalog, SortRating)

	if page.TotalCount != 0 || len(page.Results) != 0 {
		t.Fatalf("zero-match page carries results: %+v", page)
	}
	if page.Results == nil {
		t.Fatal("results should be an empty list, not nil")
	}
	if len(page.Facets) != 1 {
		t.Fatal("facet catalog must survive a zero-match page")
	}
}

func TestFormatCount(t *testing.T) {
	if got := FormatCount(3); got != "3" {
		t.Errorf("FormatCount(3) = %q", got)
	}
	if got := FormatCount(12345); got != "12,345" {
		t.Errorf("FormatCount(12345) = %q, want \"12,345\"", got)
	}
}
