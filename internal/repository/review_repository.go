// This file contains the review store adapter: the batched positive
// snippet fetch for listing pages, the public review list for detail
// pages, review creation with aggregate maintenance, and owner
// responses.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/restaurant-directory/internal/model"
)

// ErrReviewNotFound is returned when a review id does not exist.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepo encapsulates all database queries related to reviews.
type ReviewRepo struct {
	db *sql.DB
}

// NewReviewRepo constructs a ReviewRepo with the provided DB handle.
func NewReviewRepo(db *sql.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

// ListPositiveByRestaurants fetches snippet candidates for a whole page
// of results in one query: rating >= 4, non-empty comment, newest
// first.  Callers cap per-restaurant counts; the repository stays page
// agnostic.
func (r *ReviewRepo) ListPositiveByRestaurants(ctx context.Context, restaurantIDs []uint64) ([]*model.Review, error) {
	if len(restaurantIDs) == 0 {
		return nil, nil
	}
	q := `SELECT id, restaurant_id, rating, comment, created_at
		FROM reviews
		WHERE restaurant_id IN (` + inPlaceholders(len(restaurantIDs)) + `)
		  AND rating >= 4
		  AND comment IS NOT NULL AND comment <> ''
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, idArgs(restaurantIDs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Review
	for rows.Next() {
		rev := new(model.Review)
		if err := rows.Scan(&rev.ID, &rev.RestaurantID, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}

// ListByRestaurant returns all reviews for one restaurant, newest
// first, including owner responses.  Used by the detail page.
func (r *ReviewRepo) ListByRestaurant(ctx context.Context, restaurantID uint64) ([]*model.Review, error) {
	const q = `SELECT id, restaurant_id, rating, COALESCE(comment, ''), created_at, response_message, response_at
		FROM reviews WHERE restaurant_id = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Review
	for rows.Next() {
		rev := new(model.Review)
		if err := rows.Scan(&rev.ID, &rev.RestaurantID, &rev.Rating, &rev.Comment, &rev.CreatedAt,
			&rev.ResponseMessage, &rev.ResponseAt); err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}

// Create inserts a review for an approved restaurant and updates the
// restaurant's aggregate rating and count in the same transaction, so
// listing sorts never observe a half-applied review.
func (r *ReviewRepo) Create(ctx context.Context, restaurantID uint64, rating int, comment string) (uint64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	var id uint64
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	var approved bool
	if err = tx.QueryRowContext(ctx, "SELECT is_approved FROM restaurants WHERE id = ?", restaurantID).Scan(&approved); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrRestaurantNotFound
		}
		return 0, err
	}
	if !approved {
		err = ErrRestaurantNotFound
		return 0, err
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO reviews (restaurant_id, rating, comment) VALUES (?,?,?)",
		restaurantID, rating, comment)
	if err != nil {
		return 0, err
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	id = uint64(lastID)

	// Recompute the aggregates from the source rows instead of
	// incrementally adjusting, so a drifted aggregate self-heals.
	_, err = tx.ExecContext(ctx, `
		UPDATE restaurants SET
			reviews_count  = (SELECT COUNT(*) FROM reviews WHERE restaurant_id = ?),
			rating_average = (SELECT ROUND(AVG(rating), 1) FROM reviews WHERE restaurant_id = ?)
		WHERE id = ?`, restaurantID, restaurantID, restaurantID)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Respond attaches an owner response to a review.  The review must
// belong to a restaurant owned by ownerID, otherwise ErrForbidden.
func (r *ReviewRepo) Respond(ctx context.Context, reviewID, ownerID uint64, message string) error {
	var dbOwnerID uint64
	err := r.db.QueryRowContext(ctx, `
		SELECT rest.owner_id FROM reviews rev
		JOIN restaurants rest ON rest.id = rev.restaurant_id
		WHERE rev.id = ?`, reviewID).Scan(&dbOwnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrReviewNotFound
		}
		return err
	}
	if dbOwnerID != ownerID {
		return ErrForbidden
	}
	_, err = r.db.ExecContext(ctx,
		"UPDATE reviews SET response_message = ?, response_at = NOW() WHERE id = ?",
		message, reviewID)
	return err
}
