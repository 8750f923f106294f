package model

import (
	"database/sql"
	"time"
)

// Review is a customer review of a restaurant.  Ratings are integers
// 1–5.  Only reviews with a rating of at least 4 and a non-empty
// comment participate in the positive snippet feature on listing
// cards.  Owners can attach a single response to a review from the
// dashboard.
type Review struct {
	ID              uint64         // reviews.id
	RestaurantID    uint64         // reviews.restaurant_id
	Rating          int            // reviews.rating (1..5)
	Comment         string         // reviews.comment (may be empty)
	CreatedAt       time.Time      // reviews.created_at
	ResponseMessage sql.NullString // reviews.response_message
	ResponseAt      sql.NullTime   // reviews.response_at
}
