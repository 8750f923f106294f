package listing

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iliyamo/restaurant-directory/internal/model"
)

// Annotated is one restaurant flowing through the pipeline: the row
// plus every derived fact the view needs.  Annotate fills the derived
// fields, Rank assigns position, AttachSnippets fills Snippets.
type Annotated struct {
	Restaurant   *model.Restaurant
	Open         OpenState
	PriceSymbol  string
	CategoryLine []string
	Rank         int
	Snippets     []string
}

// Annotate computes the derived facts for each filtered restaurant:
// open/closed state at the given instant in the restaurant's own zone,
// the resolved price symbol, and the merged category/subcategory name
// line (parent category names first, then subcategory names, duplicates
// removed keeping first occurrence).
func Annotate(rs []*model.Restaurant, now time.Time) []*Annotated {
	out := make([]*Annotated, 0, len(rs))
	for _, r := range rs {
		symbol, tierName := "", ""
		if r.PriceLevel != nil {
			symbol, tierName = r.PriceLevel.Symbol, r.PriceLevel.Name
		}
		out = append(out, &Annotated{
			Restaurant:   r,
			Open:         EvaluateOpenState(now, r.Timezone, r.Hours),
			PriceSymbol:  PriceSymbol(symbol, tierName),
			CategoryLine: categoryLine(r.Subcategories),
		})
	}
	return out
}

// categoryLine merges parent category names and subcategory names into
// a single deduplicated display list, categories first.
func categoryLine(links []model.SubcategoryLink) []string {
	seen := make(map[string]bool, len(links)*2)
	line := make([]string, 0, len(links)*2)
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		line = append(line, name)
	}
	for _, l := range links {
		add(l.CategoryName)
	}
	for _, l := range links {
		add(l.SubcategoryName)
	}
	return line
}

// ImageGroup summarizes one image type on a card: the first URL of the
// type and how many images of the type exist.
type ImageGroup struct {
	URL   string `json:"url"`
	Count int    `json:"count"`
}

// ImageGroups is the card's categorized image summary.
type ImageGroups struct {
	Interior ImageGroup `json:"interior"`
	Food     ImageGroup `json:"food"`
	Menu     ImageGroup `json:"menu"`
	All      []string   `json:"all"`
}

// GroupImages builds the categorized summary from the raw image rows.
func GroupImages(images []model.RestaurantImage) ImageGroups {
	var g ImageGroups
	g.All = make([]string, 0, len(images))
	pick := func(grp *ImageGroup, url string) {
		if grp.URL == "" {
			grp.URL = url
		}
		grp.Count++
	}
	for _, img := range images {
		g.All = append(g.All, img.URL)
		switch img.Type {
		case "interior":
			pick(&g.Interior, img.URL)
		case "food":
			pick(&g.Food, img.URL)
		case "menu":
			pick(&g.Menu, img.URL)
		}
	}
	return g
}

// Summary is the public restaurant card payload.
type Summary struct {
	ID          uint64      `json:"id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Tagline     string      `json:"tagline"`
	Address     string      `json:"address"`
	Rating      float64     `json:"rating"`
	ReviewCount int         `json:"review_count"`
	PriceSymbol string      `json:"price_symbol"`
	Images      ImageGroups `json:"images"`
}

// InfoLine is the compact line under a card title: category names,
// price symbol and live open flag.
type InfoLine struct {
	Categories  []string `json:"categories"`
	PriceSymbol string   `json:"price_symbol"`
	OpenNow     bool     `json:"open_now"`
}

// RankedResult is one final listing entry.
type RankedResult struct {
	Rank           int      `json:"rank"`
	Restaurant     Summary  `json:"restaurant"`
	InfoLine       InfoLine `json:"info_line"`
	ReviewSnippets []string `json:"review_snippets"`
}

// Page is the assembled listing response for a resolved scope.  A page
// with zero results still represents a successfully resolved scope;
// scope-not-found never reaches assembly and surfaces as its own error
// so callers can render the two empty states differently.
type Page struct {
	City       string         `json:"city"`
	Title      string         `json:"title"`
	Results    []RankedResult `json:"results"`
	TotalCount int            `json:"total_count"`
	TotalLabel string         `json:"total_label"`
	Facets     []Facet        `json:"facets"`
	Sort       string         `json:"sort"`
}

// countPrinter formats display counts with es-MX grouping, matching the
// rest of the product's localization.
var countPrinter = message.NewPrinter(language.MustParse("es-MX"))

// FormatCount renders a result count for display.
func FormatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}

// pageTitle derives the heading for a scope: the deepest resolved level
// "en" the city, or just the city name for city-only scopes.
func pageTitle(scope model.ResolvedScope) string {
	city := DisplayName(scope.CityName, scope.CitySlug)
	switch {
	case scope.HasSubcategory():
		return DisplayName(scope.SubcategoryName, scope.SubcategorySlug) + " en " + city
	case scope.HasCategory():
		return DisplayName(scope.CategoryName, scope.CategorySlug) + " en " + city
	default:
		return city
	}
}

// Assemble composes ranked, annotated, snippet-carrying results into
// the final page together with the scope aggregates.
func Assemble(scope model.ResolvedScope, items []*Annotated, catalog []Facet, sortMode string) Page {
	results := make([]RankedResult, 0, len(items))
	for _, it := range items {
		r := it.Restaurant
		results = append(results, RankedResult{
			Rank: it.Rank,
			Restaurant: Summary{
				ID:          r.ID,
				Name:        r.Name,
				Slug:        r.Slug,
				Tagline:     r.Tagline,
				Address:     r.Address,
				Rating:      r.Rating,
				ReviewCount: r.ReviewsCount,
				PriceSymbol: it.PriceSymbol,
				Images:      GroupImages(r.Images),
			},
			InfoLine: InfoLine{
				Categories:  it.CategoryLine,
				PriceSymbol: it.PriceSymbol,
				OpenNow:     it.Open.Open,
			},
			ReviewSnippets: it.Snippets,
		})
	}
	return Page{
		City:       scope.CitySlug,
		Title:      pageTitle(scope),
		Results:    results,
		TotalCount: len(results),
		TotalLabel: FormatCount(len(results)),
		Facets:     catalog,
		Sort:       NormalizeSortMode(sortMode),
	}
}
