// Package queue defines message payloads exchanged over the message broker.
package queue

// ReviewCreatedEvent is published when a visitor submits a review.  It
// carries enough information for downstream consumers to log, notify
// the restaurant owner, or feed moderation without querying the
// primary database.  EventID is a UUID assigned by the publisher so
// consumers can deduplicate redeliveries.
type ReviewCreatedEvent struct {
	EventID      string `json:"event_id"`
	ReviewID     uint64 `json:"review_id"`
	RestaurantID uint64 `json:"restaurant_id"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment,omitempty"`
	CreatedAt    string `json:"created_at"`
}
