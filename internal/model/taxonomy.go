package model

import "database/sql"

// Category is a top level grouping of restaurant subcategories, e.g.
// "Mariscos" or "Comida Mexicana".  Categories are referenced by slug
// in listing paths.  This struct corresponds to a row in the
// `categories` table.
type Category struct {
	ID          uint64         // categories.id
	Slug        string         // categories.slug
	Name        string         // categories.name
	Description sql.NullString // categories.description
	Icon        sql.NullString // categories.icon
}

// Subcategory is a refinement of a Category, e.g. "Ceviches" under
// "Mariscos".  Every subcategory belongs to exactly one category; a
// listing path that pairs a subcategory with a different category is
// treated as not found, never silently corrected.
type Subcategory struct {
	ID          uint64         // subcategories.id
	CategoryID  uint64         // subcategories.category_id
	Slug        string         // subcategories.slug
	Name        string         // subcategories.name
	Description sql.NullString // subcategories.description
}
