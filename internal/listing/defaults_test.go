package listing

import "testing"

func TestTitleFromSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"comida-mexicana", "Comida Mexicana"},
		{"tacos", "Tacos"},
		{"pet-friendly", "Pet Friendly"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := TitleFromSlug(tc.in); got != tc.want {
			t.Errorf("TitleFromSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("Cancún", "cancun"); got != "Cancún" {
		t.Errorf("stored name should win, got %q", got)
	}
	if got := DisplayName("  ", "playa-del-carmen"); got != "Playa Del Carmen" {
		t.Errorf("blank name should fall back to slug title, got %q", got)
	}
}

func TestPriceSymbol(t *testing.T) {
	cases := []struct {
		name   string
		symbol string
		tier   string
		want   string
	}{
		{"stored symbol wins", "$$$", "budget", "$$$"},
		{"budget tier", "", "Budget", "$"},
		{"economico tier", "", "Económico", "$"},
		{"mid tier", "", "Mid-range", "$$"},
		{"medio tier", "", "Medio", "$$"},
		{"premium tier", "", "Premium", "$$$"},
		{"luxury tier", "", "Luxury", "$$$$"},
		{"lujo tier", "", "De lujo", "$$$$"},
		{"unknown tier falls back", "", "misterioso", DefaultPriceSymbol},
		{"nothing at all", "", "", DefaultPriceSymbol},
	}
	for _, tc := range cases {
		if got := PriceSymbol(tc.symbol, tc.tier); got != tc.want {
			t.Errorf("%s: PriceSymbol(%q, %q) = %q, want %q", tc.name, tc.symbol, tc.tier, got, tc.want)
		}
	}
}
