package listing

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort modes for the listing.  Featured is the default ordering.
const (
	SortFeatured = "featured"
	SortRating   = "rating"
)

// NormalizeSortMode maps arbitrary query input onto a supported sort
// mode, defaulting to featured.
func NormalizeSortMode(mode string) string {
	if mode == SortRating {
		return SortRating
	}
	return SortFeatured
}

// Rank orders the filtered set in place and assigns 1-based ranks by
// final position.
//
//   - featured: review count descending, ties broken by rating
//     descending.  Exact ties keep their fetch order (stable sort).
//   - rating: rating descending, ties broken by collated name ascending
//     so the output is fully deterministic.
//
// The resulting order also fixes pagination boundaries for snippet
// attachment downstream.
func Rank(items []*Annotated, mode string) {
	switch NormalizeSortMode(mode) {
	case SortRating:
		// The collator is per call: CompareString mutates internal
		// iterator buffers, so a shared instance is not safe for
		// concurrent requests.  Spanish rules keep accented names
		// where users expect them instead of byte order.
		coll := collate.New(language.Spanish)
		sort.SliceStable(items, func(i, j int) bool {
			a, b := items[i].Restaurant, items[j].Restaurant
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
			return coll.CompareString(a.Name, b.Name) < 0
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			a, b := items[i].Restaurant, items[j].Restaurant
			if a.ReviewsCount != b.ReviewsCount {
				return a.ReviewsCount > b.ReviewsCount
			}
			return a.Rating > b.Rating
		})
	}
	for i, it := range items {
		it.Rank = i + 1
	}
}
