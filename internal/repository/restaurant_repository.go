// This file contains the restaurant store adapter.  It fetches the
// candidate set for a city in a fixed number of batched queries (one
// per relation, never one per restaurant) and resolves the loosely
// shaped join rows into the typed slices on model.Restaurant exactly
// once, at this boundary.  Core listing code never sees raw rows.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/restaurant-directory/internal/model"
)

// ErrRestaurantNotFound is returned when a restaurant cannot be found
// or is not visible to the caller (unapproved rows are invisible to
// public flows).
var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantRepo encapsulates all database queries related to
// restaurants and their relations.
type RestaurantRepo struct {
	db *sql.DB
}

// NewRestaurantRepo constructs a RestaurantRepo with the provided DB handle.
func NewRestaurantRepo(db *sql.DB) *RestaurantRepo {
	return &RestaurantRepo{db: db}
}

const restaurantColumns = `id, city_id, owner_id, name, slug, tagline, description, address,
	lat, lng, price_level_id, rating_average, reviews_count, is_approved, timezone,
	created_at, updated_at`

// scanRestaurant scans one row selected with restaurantColumns.
func scanRestaurant(row interface{ Scan(...any) error }) (*model.Restaurant, error) {
	r := new(model.Restaurant)
	err := row.Scan(
		&r.ID, &r.CityID, &r.OwnerID, &r.Name, &r.Slug, &r.Tagline, &r.Description, &r.Address,
		&r.Lat, &r.Lng, &r.PriceLevelID, &r.Rating, &r.ReviewsCount, &r.IsApproved, &r.Timezone,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// inPlaceholders builds a "?,?,?" list for IN clauses.
func inPlaceholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

// idArgs converts ids to driver args.
func idArgs(ids []uint64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

// ListApprovedByCity returns every approved restaurant in a city with
// all relations loaded.  This is the candidate set the listing pipeline
// filters and ranks in memory.
func (r *RestaurantRepo) ListApprovedByCity(ctx context.Context, cityID uint64) ([]*model.Restaurant, error) {
	q := "SELECT " + restaurantColumns + " FROM restaurants WHERE city_id = ? AND is_approved = 1 ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q, cityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Restaurant
	for rows.Next() {
		rec, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadRelations(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetApprovedBySlug fetches one approved restaurant by slug with all
// relations loaded, for the public detail page.
func (r *RestaurantRepo) GetApprovedBySlug(ctx context.Context, slug string) (*model.Restaurant, error) {
	q := "SELECT " + restaurantColumns + " FROM restaurants WHERE slug = ? AND is_approved = 1 LIMIT 1"
	rec, err := scanRestaurant(r.db.QueryRowContext(ctx, q, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	if err := r.loadRelations(ctx, []*model.Restaurant{rec}); err != nil {
		return nil, err
	}
	return rec, nil
}

// ListByOwner returns all restaurants owned by a user, approved or not,
// with relations loaded.  Used by the dashboard.
func (r *RestaurantRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]*model.Restaurant, error) {
	q := "SELECT " + restaurantColumns + " FROM restaurants WHERE owner_id = ? ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Restaurant
	for rows.Next() {
		rec, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadRelations(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByIDAndOwner fetches a restaurant only if it belongs to the given
// owner.  A row owned by someone else returns ErrForbidden so the
// handler can answer 403 instead of leaking existence as 404.
func (r *RestaurantRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*model.Restaurant, error) {
	q := "SELECT " + restaurantColumns + " FROM restaurants WHERE id = ? LIMIT 1"
	rec, err := scanRestaurant(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	if rec.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return rec, nil
}

// ReplaceHours swaps a restaurant's full weekly schedule inside a
// transaction, after verifying ownership.  The dashboard always submits
// the whole week, so delete-and-insert keeps the table free of stale
// partial rows.
func (r *RestaurantRepo) ReplaceHours(ctx context.Context, restaurantID, ownerID uint64, hours []model.RestaurantHour) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	var dbOwnerID uint64
	if err = tx.QueryRowContext(ctx, "SELECT owner_id FROM restaurants WHERE id = ?", restaurantID).Scan(&dbOwnerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrRestaurantNotFound
		}
		return err
	}
	if dbOwnerID != ownerID {
		err = ErrForbidden
		return err
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM restaurant_hours WHERE restaurant_id = ?", restaurantID); err != nil {
		return err
	}
	const qInsert = "INSERT INTO restaurant_hours (restaurant_id, day, open_time, close_time, is_open) VALUES (?,?,?,?,?)"
	for _, h := range hours {
		if _, err = tx.ExecContext(ctx, qInsert, restaurantID, h.Day, h.OpenTime, h.CloseTime, h.IsOpen); err != nil {
			return err
		}
	}
	return nil
}

// loadRelations batch-fills images, subcategory links, amenity and
// dietary ids, hours and price levels for the given restaurants.  Each
// relation costs one query keyed by the full id set.
func (r *RestaurantRepo) loadRelations(ctx context.Context, rs []*model.Restaurant) error {
	if len(rs) == 0 {
		return nil
	}
	byID := make(map[uint64]*model.Restaurant, len(rs))
	ids := make([]uint64, 0, len(rs))
	for _, rec := range rs {
		byID[rec.ID] = rec
		ids = append(ids, rec.ID)
	}
	ph := inPlaceholders(len(ids))
	args := idArgs(ids)

	// Images, ordered so the first row per type is the card thumbnail.
	q := "SELECT restaurant_id, url, type FROM restaurant_images WHERE restaurant_id IN (" + ph + ") ORDER BY restaurant_id, id"
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return err
	}
	for rows.Next() {
		var rid uint64
		var img model.RestaurantImage
		if err := rows.Scan(&rid, &img.URL, &img.Type); err != nil {
			rows.Close()
			return err
		}
		if rec := byID[rid]; rec != nil {
			rec.Images = append(rec.Images, img)
		}
	}
	if err := closeRows(rows); err != nil {
		return err
	}

	// Subcategory memberships flattened with the parent category.
	q = `SELECT rs.restaurant_id, s.id, s.name, c.id, c.name
		FROM restaurant_subcategories rs
		JOIN subcategories s ON s.id = rs.subcategory_id
		JOIN categories c    ON c.id = s.category_id
		WHERE rs.restaurant_id IN (` + ph + `)`
	rows, err = r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return err
	}
	for rows.Next() {
		var rid uint64
		var l model.SubcategoryLink
		if err := rows.Scan(&rid, &l.SubcategoryID, &l.SubcategoryName, &l.CategoryID, &l.CategoryName); err != nil {
			rows.Close()
			return err
		}
		if rec := byID[rid]; rec != nil {
			rec.Subcategories = append(rec.Subcategories, l)
		}
	}
	if err := closeRows(rows); err != nil {
		return err
	}

	// Amenity memberships.
	q = "SELECT restaurant_id, amenity_id FROM restaurant_amenities WHERE restaurant_id IN (" + ph + ")"
	rows, err = r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return err
	}
	for rows.Next() {
		var rid, aid uint64
		if err := rows.Scan(&rid, &aid); err != nil {
			rows.Close()
			return err
		}
		if rec := byID[rid]; rec != nil {
			rec.AmenityIDs = append(rec.AmenityIDs, aid)
		}
	}
	if err := closeRows(rows); err != nil {
		return err
	}

	// Dietary option memberships.
	q = "SELECT restaurant_id, dietary_option_id FROM restaurant_dietary_options WHERE restaurant_id IN (" + ph + ")"
	rows, err = r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return err
	}
	for rows.Next() {
		var rid, did uint64
		if err := rows.Scan(&rid, &did); err != nil {
			rows.Close()
			return err
		}
		if rec := byID[rid]; rec != nil {
			rec.DietaryIDs = append(rec.DietaryIDs, did)
		}
	}
	if err := closeRows(rows); err != nil {
		return err
	}

	// Weekly hours. TIME columns come back as strings with the default
	// DSN, which is exactly what the evaluator consumes.
	q = "SELECT restaurant_id, day, open_time, close_time, is_open FROM restaurant_hours WHERE restaurant_id IN (" + ph + ") ORDER BY restaurant_id, day"
	rows, err = r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return err
	}
	for rows.Next() {
		var h model.RestaurantHour
		if err := rows.Scan(&h.RestaurantID, &h.Day, &h.OpenTime, &h.CloseTime, &h.IsOpen); err != nil {
			rows.Close()
			return err
		}
		if rec := byID[h.RestaurantID]; rec != nil {
			rec.Hours = append(rec.Hours, h)
		}
	}
	if err := closeRows(rows); err != nil {
		return err
	}

	// Price levels, joined through the restaurant reference.
	q = `SELECT r.id, p.id, p.name, p.symbol, p.description
		FROM restaurants r
		JOIN price_levels p ON p.id = r.price_level_id
		WHERE r.id IN (` + ph + `)`
	rows, err = r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return err
	}
	for rows.Next() {
		var rid uint64
		p := new(model.PriceLevel)
		if err := rows.Scan(&rid, &p.ID, &p.Name, &p.Symbol, &p.Description); err != nil {
			rows.Close()
			return err
		}
		if rec := byID[rid]; rec != nil {
			rec.PriceLevel = p
		}
	}
	return closeRows(rows)
}

// closeRows folds rows.Err and Close into one error.
func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	return rows.Close()
}
