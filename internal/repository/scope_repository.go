// This file resolves listing paths (city / category / subcategory
// slugs) into internal identifiers.  Every lookup is an exact slug
// match; there is no fuzzy or partial matching.  A miss on any supplied
// slug fails the whole resolution with ErrScopeNotFound, as does a
// subcategory whose parent category differs from the one in the path.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/restaurant-directory/internal/model"
)

// ScopeRepo resolves slugs against the cities, categories and
// subcategories tables.
type ScopeRepo struct {
	db *sql.DB
}

// NewScopeRepo constructs a ScopeRepo with the provided DB handle.
func NewScopeRepo(db *sql.DB) *ScopeRepo {
	return &ScopeRepo{db: db}
}

// CityBySlug fetches a city row by its exact slug.  Returns
// ErrScopeNotFound when no row matches.
func (r *ScopeRepo) CityBySlug(ctx context.Context, slug string) (*model.City, error) {
	const q = "SELECT id, name, slug, description, state FROM cities WHERE slug = ? LIMIT 1"
	var c model.City
	if err := r.db.QueryRowContext(ctx, q, slug).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.State); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScopeNotFound
		}
		return nil, err
	}
	return &c, nil
}

// categoryBySlug fetches a category row by its exact slug.
func (r *ScopeRepo) categoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	const q = "SELECT id, slug, name, description, icon FROM categories WHERE slug = ? LIMIT 1"
	var c model.Category
	if err := r.db.QueryRowContext(ctx, q, slug).Scan(&c.ID, &c.Slug, &c.Name, &c.Description, &c.Icon); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScopeNotFound
		}
		return nil, err
	}
	return &c, nil
}

// subcategoryBySlug fetches a subcategory row by its exact slug.
func (r *ScopeRepo) subcategoryBySlug(ctx context.Context, slug string) (*model.Subcategory, error) {
	const q = "SELECT id, category_id, slug, name, description FROM subcategories WHERE slug = ? LIMIT 1"
	var s model.Subcategory
	if err := r.db.QueryRowContext(ctx, q, slug).Scan(&s.ID, &s.CategoryID, &s.Slug, &s.Name, &s.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScopeNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Resolve turns a listing path into a ResolvedScope.  citySlug is
// required; categorySlug and subcategorySlug are optional but
// hierarchical.  When both category and subcategory are supplied, the
// subcategory must belong to that category or the whole scope is
// ErrScopeNotFound; a mismatched path is a broken URL, not something
// to silently correct.  Resolve has no side effects.
func (r *ScopeRepo) Resolve(ctx context.Context, citySlug, categorySlug, subcategorySlug string) (model.ResolvedScope, error) {
	var scope model.ResolvedScope

	city, err := r.CityBySlug(ctx, citySlug)
	if err != nil {
		return scope, err
	}
	scope.CityID = city.ID
	scope.CityName = city.Name
	scope.CitySlug = city.Slug
	scope.CityState = city.State
	scope.CityDescription = city.Description.String

	if categorySlug != "" {
		cat, err := r.categoryBySlug(ctx, categorySlug)
		if err != nil {
			return model.ResolvedScope{}, err
		}
		scope.CategoryID = cat.ID
		scope.CategoryName = cat.Name
		scope.CategorySlug = cat.Slug
	}

	if subcategorySlug != "" {
		sub, err := r.subcategoryBySlug(ctx, subcategorySlug)
		if err != nil {
			return model.ResolvedScope{}, err
		}
		if scope.HasCategory() && sub.CategoryID != scope.CategoryID {
			return model.ResolvedScope{}, ErrScopeNotFound
		}
		scope.SubcategoryID = sub.ID
		scope.SubcategoryName = sub.Name
		scope.SubcategorySlug = sub.Slug
	}

	return scope, nil
}
