package model

import "database/sql"

// City represents a location that restaurants belong to.  Cities are
// created by administration tooling and are read-only for the public
// API.  This struct corresponds to a row in the `cities` table.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – display name of the city (may be empty for legacy rows;
//                callers fall back to a title-cased slug).
//  Slug        – unique URL-safe identifier used in listing paths.
//  Description – optional markdown description shown on the city page.
//  State       – state or region the city belongs to.
type City struct {
	ID          uint64         // cities.id
	Name        string         // cities.name
	Slug        string         // cities.slug
	Description sql.NullString // cities.description
	State       string         // cities.state
}
