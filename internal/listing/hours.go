package listing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/iliyamo/restaurant-directory/internal/model"
)

// DefaultTimezone is used when a restaurant carries a missing or
// unparseable zone name.  One bad row must never fail a whole listing.
const DefaultTimezone = "America/Mexico_City"

// soonThresholdMin is the window, in minutes, within which a state
// change is surfaced as "closing soon" / "opening soon".
const soonThresholdMin = 30

const minutesPerDay = 24 * 60

// OpenState is the evaluated open/closed status of a restaurant at a
// given instant, in the restaurant's own time zone.
type OpenState struct {
	Open           bool `json:"open"`
	ClosingSoon    bool `json:"closing_soon"`
	OpeningSoon    bool `json:"opening_soon"`
	MinutesToClose int  `json:"minutes_to_close,omitempty"`
	MinutesToOpen  int  `json:"minutes_to_open,omitempty"`
}

// StatusMessage renders the state as the status line the directory
// shows on cards and detail pages.
func (s OpenState) StatusMessage() string {
	if s.Open {
		if s.ClosingSoon {
			return fmt.Sprintf("Abierto ahora • Cierra en %d min", s.MinutesToClose)
		}
		return "Abierto ahora"
	}
	if s.OpeningSoon {
		return fmt.Sprintf("Cerrado ahora • Abre en %d min", s.MinutesToOpen)
	}
	return "Cerrado ahora"
}

// clockMinutes parses an HH:MM or HH:MM:SS wall-clock string into
// minutes since midnight.  Returns -1 for values it cannot parse so
// callers can skip the entry instead of failing the evaluation.
func clockMinutes(clock string) int {
	parts := strings.Split(clock, ":")
	if len(parts) < 2 {
		return -1
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return -1
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return -1
	}
	return h*60 + m
}

// loadZone resolves a zone name with fallback: the restaurant's zone,
// then DefaultTimezone, then UTC.
func loadZone(name string) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// EvaluateOpenState determines whether a restaurant is open at the
// given instant.  The instant is converted into the restaurant's zone
// and compared against that weekday's schedule entries using half-open
// [open, close) windows.  A close time at or before the open time means
// the window runs past midnight, so the previous day's entries are also
// consulted for spill-over.  Days explicitly marked closed are ignored
// regardless of their time fields.
func EvaluateOpenState(now time.Time, timezone string, hours []model.RestaurantHour) OpenState {
	var st OpenState
	if len(hours) == 0 {
		return st
	}

	local := now.In(loadZone(timezone))
	day := int(local.Weekday())
	mins := local.Hour()*60 + local.Minute()
	prevDay := (day + 6) % 7

	nextOpenIn := -1
	for _, h := range hours {
		if !h.IsOpen {
			continue
		}
		open := clockMinutes(h.OpenTime)
		close := clockMinutes(h.CloseTime)
		if open < 0 || close < 0 {
			continue
		}
		crossesMidnight := close <= open

		switch h.Day {
		case day:
			end := close
			if crossesMidnight {
				end = close + minutesPerDay
			}
			if mins >= open && mins < end {
				st.Open = true
				if toClose := end - mins; st.MinutesToClose == 0 || toClose < st.MinutesToClose {
					st.MinutesToClose = toClose
				}
			} else if mins < open {
				// Today's window has not started yet.
				if in := open - mins; nextOpenIn < 0 || in < nextOpenIn {
					nextOpenIn = in
				}
			}
		case prevDay:
			// Yesterday's window spilling past midnight covers the
			// early hours of today.
			if crossesMidnight && mins < close {
				st.Open = true
				if toClose := close - mins; st.MinutesToClose == 0 || toClose < st.MinutesToClose {
					st.MinutesToClose = toClose
				}
			}
		}
	}

	if st.Open {
		st.ClosingSoon = st.MinutesToClose <= soonThresholdMin
		return st
	}
	st.MinutesToClose = 0
	if nextOpenIn >= 0 {
		st.MinutesToOpen = nextOpenIn
		st.OpeningSoon = nextOpenIn <= soonThresholdMin
	}
	return st
}
