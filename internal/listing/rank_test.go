package listing

import (
	"sync"
	"testing"

	"github.com/iliyamo/restaurant-directory/internal/model"
)

func annotated(name string, rating float64, reviews int) *Annotated {
	return &Annotated{Restaurant: &model.Restaurant{Name: name, Rating: rating, ReviewsCount: reviews}}
}

func names(items []*Annotated) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Restaurant.Name
	}
	return out
}

func assertOrder(t *testing.T, items []*Annotated, want []string) {
	t.Helper()
	got := names(items)
	if len(got) != len(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	for i, it := range items {
		if it.Rank != i+1 {
			t.Fatalf("rank at position %d = %d, want %d", i, it.Rank, i+1)
		}
	}
}

func TestRankFeatured(t *testing.T) {
	items := []*Annotated{
		annotated("Pocos", 5.0, 10),
		annotated("Muchos", 4.0, 200),
		annotated("Empate bajo", 4.2, 50),
		annotated("Empate alto", 4.8, 50),
	}
	Rank(items, SortFeatured)
	assertOrder(t, items, []string{"Muchos", "Empate alto", "Empate bajo", "Pocos"})
}

func TestRankFeaturedStableOnFullTie(t *testing.T) {
	items := []*Annotated{
		annotated("Primero", 4.5, 50),
		annotated("Segundo", 4.5, 50),
		annotated("Tercero", 4.5, 50),
	}
	Rank(items, "")
	assertOrder(t, items, []string{"Primero", "Segundo", "Tercero"})
}

func TestRankRating(t *testing.T) {
	items := []*Annotated{
		annotated("Zafiro", 4.5, 10),
		annotated("Medio", 4.0, 500),
		annotated("Ábaco", 4.5, 3),
	}
	Rank(items, SortRating)
	// Accented names collate by base letter, not byte value.
	assertOrder(t, items, []string{"Ábaco", "Zafiro", "Medio"})
}

func TestRankRatingIdempotent(t *testing.T) {
	items := []*Annotated{
		annotated("Beta", 4.5, 1),
		annotated("Alfa", 4.5, 2),
		annotated("Gamma", 3.9, 3),
	}
	Rank(items, SortRating)
	first := names(items)
	Rank(items, SortRating)
	second := names(items)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("re-ranking changed the order: %v then %v", first, second)
		}
	}
}

func TestRankRatingConcurrent(t *testing.T) {
	// Rating ranking runs on concurrent listing requests; ordering
	// must stay correct when many goroutines rank at once.
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 50; n++ {
				items := []*Annotated{
					annotated("Zafiro", 4.5, 10),
					annotated("Medio", 4.0, 500),
					annotated("Ábaco", 4.5, 3),
				}
				Rank(items, SortRating)
				got := names(items)
				want := []string{"Ábaco", "Zafiro", "Medio"}
				for i := range want {
					if got[i] != want[i] {
						t.Errorf("order = %v, want %v", got, want)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}

func TestNormalizeSortMode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"rating", SortRating},
		{"featured", SortFeatured},
		{"", SortFeatured},
		{"garbage", SortFeatured},
	}
	for _, tc := range cases {
		if got := NormalizeSortMode(tc.in); got != tc.want {
			t.Errorf("NormalizeSortMode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
