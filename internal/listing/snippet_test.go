package listing

import (
	"reflect"
	"testing"

	"github.com/iliyamo/restaurant-directory/internal/model"
)

func TestSnippetText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Excelente comida y servicio de primera calidad", "Excelente comida y servicio de"},
		{"Muy rico", "Muy rico"},
		{"Cinco palabras justas para esto", "Cinco palabras justas para esto"},
		{"  espacios   raros\tentre   varias   palabras  extra ", "espacios raros entre varias palabras"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := SnippetText(tc.in); got != tc.want {
			t.Errorf("SnippetText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAttachSnippets(t *testing.T) {
	items := []*Annotated{
		{Restaurant: &model.Restaurant{ID: 1}},
		{Restaurant: &model.Restaurant{ID: 2}},
	}
	reviews := []*model.Review{
		{RestaurantID: 1, Rating: 5, Comment: "Excelente comida y servicio de primera calidad"},
		{RestaurantID: 1, Rating: 4, Comment: "Muy buen ambiente"},
		{RestaurantID: 1, Rating: 5, Comment: "Tercera reseña que no debe aparecer"},
	}
	AttachSnippets(items, reviews)

	want := []string{"Excelente comida y servicio de", "Muy buen ambiente"}
	if !reflect.DeepEqual(items[0].Snippets, want) {
		t.Fatalf("snippets for restaurant 1 = %v, want %v", items[0].Snippets, want)
	}
	if items[1].Snippets == nil || len(items[1].Snippets) != 0 {
		t.Fatalf("restaurant without reviews should get empty non-nil list, got %#v", items[1].Snippets)
	}
}

func TestAttachSnippetsSkipsEmptyComments(t *testing.T) {
	items := []*Annotated{{Restaurant: &model.Restaurant{ID: 7}}}
	reviews := []*model.Review{
		{RestaurantID: 7, Rating: 5, Comment: ""},
		{RestaurantID: 7, Rating: 4, Comment: "Vale mucho la pena"},
	}
	AttachSnippets(items, reviews)
	want := []string{"Vale mucho la pena"}
	if !reflect.DeepEqual(items[0].Snippets, want) {
		t.Fatalf("snippets = %v, want %v", items[0].Snippets, want)
	}
}
