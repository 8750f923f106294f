// This file loads facet vocabularies.  A city-scoped vocabulary only
// contains options some restaurant in the city actually carries; the
// global vocabulary is the full reference table contents.  Both feed
// listing.BuildCatalog, which dedupes and orders the facets.
package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/restaurant-directory/internal/listing"
)

// FacetRepo queries the facet reference tables and their restaurant
// join tables.
type FacetRepo struct {
	db *sql.DB
}

// NewFacetRepo constructs a FacetRepo with the provided DB handle.
func NewFacetRepo(db *sql.DB) *FacetRepo {
	return &FacetRepo{db: db}
}

// queryOptions runs a two-column (id, name) query into an option slice.
func (r *FacetRepo) queryOptions(ctx context.Context, q string, args ...any) ([]listing.Option, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []listing.Option
	for rows.Next() {
		var o listing.Option
		if err := rows.Scan(&o.Value, &o.Label); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// CityVocabulary returns the facet options available in one city:
// subcategories, amenities and dietary options carried by at least one
// approved restaurant there, plus the price tiers those restaurants
// reference.
func (r *FacetRepo) CityVocabulary(ctx context.Context, cityID uint64) (listing.Vocabulary, error) {
	var v listing.Vocabulary
	var err error

	v.Subcategories, err = r.queryOptions(ctx, `
		SELECT DISTINCT s.id, s.name
		FROM restaurant_subcategories rs
		JOIN subcategories s ON s.id = rs.subcategory_id
		JOIN restaurants r   ON r.id = rs.restaurant_id
		WHERE r.city_id = ? AND r.is_approved = 1
		ORDER BY s.name`, cityID)
	if err != nil {
		return v, err
	}

	v.Amenities, err = r.queryOptions(ctx, `
		SELECT DISTINCT a.id, a.name
		FROM restaurant_amenities ra
		JOIN amenities a   ON a.id = ra.amenity_id
		JOIN restaurants r ON r.id = ra.restaurant_id
		WHERE r.city_id = ? AND r.is_approved = 1
		ORDER BY a.name`, cityID)
	if err != nil {
		return v, err
	}

	v.Dietary, err = r.queryOptions(ctx, `
		SELECT DISTINCT d.id, d.name
		FROM restaurant_dietary_options rd
		JOIN dietary_options d ON d.id = rd.dietary_option_id
		JOIN restaurants r     ON r.id = rd.restaurant_id
		WHERE r.city_id = ? AND r.is_approved = 1
		ORDER BY d.name`, cityID)
	if err != nil {
		return v, err
	}

	v.Prices, err = r.queryOptions(ctx, `
		SELECT DISTINCT p.id, p.name
		FROM restaurants r
		JOIN price_levels p ON p.id = r.price_level_id
		WHERE r.city_id = ? AND r.is_approved = 1
		ORDER BY p.id`, cityID)
	return v, err
}

// GlobalVocabulary returns the full reference vocabulary, used for the
// unscoped filter sidebar.
func (r *FacetRepo) GlobalVocabulary(ctx context.Context) (listing.Vocabulary, error) {
	var v listing.Vocabulary
	var err error

	v.Subcategories, err = r.queryOptions(ctx, "SELECT id, name FROM subcategories ORDER BY name")
	if err != nil {
		return v, err
	}
	v.Amenities, err = r.queryOptions(ctx, "SELECT id, name FROM amenities ORDER BY name")
	if err != nil {
		return v, err
	}
	v.Dietary, err = r.queryOptions(ctx, "SELECT id, name FROM dietary_options ORDER BY name")
	if err != nil {
		return v, err
	}
	v.Prices, err = r.queryOptions(ctx, "SELECT id, name FROM price_levels ORDER BY id")
	return v, err
}
