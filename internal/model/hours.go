package model

// RestaurantHour is one weekly schedule entry for a restaurant.  Day
// uses the standard weekday indexing 0=Sunday .. 6=Saturday.  Times are
// local wall-clock strings in HH:MM:SS.  A day can be explicitly marked
// closed via IsOpen even when stale time values remain in the row.  A
// close time numerically at or before the open time means the window
// crosses midnight into the next day.
type RestaurantHour struct {
	RestaurantID uint64 // restaurant_hours.restaurant_id
	Day          int    // restaurant_hours.day (0=Sunday .. 6=Saturday)
	OpenTime     string // restaurant_hours.open_time (HH:MM:SS)
	CloseTime    string // restaurant_hours.close_time (HH:MM:SS)
	IsOpen       bool   // restaurant_hours.is_open
}
