package listing

import (
	"strings"

	"github.com/iliyamo/restaurant-directory/internal/model"
)

// Snippet limits: at most two teasers per restaurant, each capped at
// five whitespace-delimited words.  No ellipsis is appended; the cut
// itself is the teaser format.
const (
	maxSnippetsPerRestaurant = 2
	snippetWordLimit         = 5
)

// SnippetText truncates a review comment to the teaser form.
func SnippetText(comment string) string {
	words := strings.Fields(comment)
	if len(words) > snippetWordLimit {
		words = words[:snippetWordLimit]
	}
	return strings.Join(words, " ")
}

// AttachSnippets distributes batch-fetched positive reviews onto the
// ranked results.  Reviews must already be filtered to rating >= 4,
// non-empty comment, and ordered most-recent-first; the first two per
// restaurant win.  Restaurants with no qualifying reviews keep an empty
// list, which is a normal outcome rather than an error.
func AttachSnippets(items []*Annotated, reviews []*model.Review) {
	byRestaurant := make(map[uint64][]string, len(items))
	for _, rev := range reviews {
		if rev.Comment == "" {
			continue
		}
		got := byRestaurant[rev.RestaurantID]
		if len(got) >= maxSnippetsPerRestaurant {
			continue
		}
		byRestaurant[rev.RestaurantID] = append(got, SnippetText(rev.Comment))
	}
	for _, it := range items {
		if sn := byRestaurant[it.Restaurant.ID]; sn != nil {
			it.Snippets = sn
		} else {
			it.Snippets = []string{}
		}
	}
}
