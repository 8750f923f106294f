package listing

import (
	"testing"
	"time"

	"github.com/iliyamo/restaurant-directory/internal/model"
)

func zone(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load zone %s: %v", name, err)
	}
	return loc
}

// at builds a local instant on Wednesday 2026-09-02 in the given zone.
func at(t *testing.T, zoneName string, hour, min int) time.Time {
	t.Helper()
	return time.Date(2026, time.September, 2, hour, min, 0, 0, zone(t, zoneName))
}

func weekly(day int, open, close string) model.RestaurantHour {
	return model.RestaurantHour{Day: day, OpenTime: open, CloseTime: close, IsOpen: true}
}

func TestEvaluateOpenState(t *testing.T) {
	const wed, tue = 3, 2
	mx := "America/Mexico_City"

	cases := []struct {
		name  string
		now   time.Time
		tz    string
		hours []model.RestaurantHour
		want  OpenState
	}{
		{
			name:  "open mid window",
			now:   at(t, mx, 10, 0),
			tz:    mx,
			hours: []model.RestaurantHour{weekly(wed, "09:00:00", "18:00:00")},
			want:  OpenState{Open: true, MinutesToClose: 480},
		},
		{
			name:  "closing soon",
			now:   at(t, mx, 17, 45),
			tz:    mx,
			hours: []model.RestaurantHour{weekly(wed, "09:00:00", "18:00:00")},
			want:  OpenState{Open: true, ClosingSoon: true, MinutesToClose: 15},
		},
		{
			name:  "closed at close time half open",
			now:   at(t, mx, 18, 0),
			tz:    mx,
			hours: []model.RestaurantHour{weekly(wed, "09:00:00", "18:00:00")},
			want:  OpenState{},
		},
		{
			name:  "open exactly at open time",
			now:   at(t, mx, 9, 0),
			tz:    mx,
			hours: []model.RestaurantHour{weekly(wed, "09:00:00", "18:00:00")},
			want:  OpenState{Open: true, MinutesToClose: 540},
		},
		{
			name:  "opening soon",
			now:   at(t, mx, 8, 40),
			tz:    mx,
			hours: []model.RestaurantHour{weekly(wed, "09:00:00", "18:00:00")},
			want:  OpenState{OpeningSoon: true, MinutesToOpen: 20},
		},
		{
			name:  "closed long before opening",
			now:   at(t, mx, 6, 0),
			tz:    mx,
			hours: []model.RestaurantHour{weekly(wed, "09:00:00", "18:00:00")},
			want:  OpenState{MinutesToOpen: 180},
		},
		{
			name:  "midnight crossover before midnight",
			now:   at(t, mx, 23, 0),
			tz:    mx,
			hours: []model.RestaurantHour{weekly(wed, "22:00:00", "02:00:00")},
			want:  OpenState{Open: true, MinutesToClose: 180},
		},
		{
			name: "midnight crossover after midnight",
			// Tuesday's 22:00-02:00 window still covers Wednesday 01:00.
			now:   at(t, mx, 1, 0),
			tz:    mx,
			hours: []model.RestaurantHour{weekly(tue, "22:00:00", "02:00:00")},
			want:  OpenState{Open: true, ClosingSoon: false, MinutesToClose: 60},
		},
		{
			name:  "crossover spill closing soon",
			now:   at(t, mx, 1, 45),
			tz:    mx,
			hours: []model.RestaurantHour{weekly(tue, "22:00:00", "02:00:00")},
			want:  OpenState{Open: true, ClosingSoon: true, MinutesToClose: 15},
		},
		{
			name: "day marked closed ignores stale times",
			now:  at(t, mx, 10, 0),
			tz:   mx,
			hours: []model.RestaurantHour{
				{Day: wed, OpenTime: "09:00:00", CloseTime: "18:00:00", IsOpen: false},
			},
			want: OpenState{},
		},
		{
			name: "malformed entry skipped",
			now:  at(t, mx, 10, 0),
			tz:   mx,
			hours: []model.RestaurantHour{
				weekly(wed, "banana", "18:00:00"),
				weekly(wed, "09:30:00", "12:00:00"),
			},
			want: OpenState{Open: true, MinutesToClose: 120},
		},
		{
			name: "bad timezone falls back to default zone",
			// 16:00 UTC is 10:00 in America/Mexico_City.
			now:   time.Date(2026, time.September, 2, 16, 0, 0, 0, time.UTC),
			tz:    "Not/AZone",
			hours: []model.RestaurantHour{weekly(wed, "09:00:00", "18:00:00")},
			want:  OpenState{Open: true, MinutesToClose: 480},
		},
		{
			name: "no hours means closed",
			now:  at(t, mx, 10, 0),
			tz:   mx,
			want: OpenState{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EvaluateOpenState(tc.now, tc.tz, tc.hours)
			if got != tc.want {
				t.Fatalf("EvaluateOpenState = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestStatusMessage(t *testing.T) {
	cases := []struct {
		name  string
		state OpenState
		want  string
	}{
		{"open", OpenState{Open: true, MinutesToClose: 200}, "Abierto ahora"},
		{"closing soon", OpenState{Open: true, ClosingSoon: true, MinutesToClose: 15}, "Abierto ahora • Cierra en 15 min"},
		{"closed", OpenState{}, "Cerrado ahora"},
		{"opening soon", OpenState{OpeningSoon: true, MinutesToOpen: 20}, "Cerrado ahora • Abre en 20 min"},
	}
	for _, tc := range cases {
		if got := tc.state.StatusMessage(); got != tc.want {
			t.Errorf("%s: StatusMessage = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestClockMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:30:00", 570},
		{"23:59:59", 1439},
		{"24:00", -1},
		{"09:61", -1},
		{"nope", -1},
		{"", -1},
	}
	for _, tc := range cases {
		if got := clockMinutes(tc.in); got != tc.want {
			t.Errorf("clockMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
