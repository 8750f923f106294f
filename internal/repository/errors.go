// Package repository defines error values that are reused across
// multiple repositories.  These sentinels let handlers distinguish
// failure scenarios without inspecting driver errors.  ErrScopeNotFound
// in particular keeps "the path does not resolve" separate from "the
// path resolved but nothing matched the filters", which the UI renders
// as two different empty states.
package repository

import "errors"

// ErrScopeNotFound is returned when a listing path slug does not
// resolve, or when a subcategory does not belong to the category it was
// requested under.  Handlers translate this into an HTTP 404 with a
// location-not-found message.
var ErrScopeNotFound = errors.New("scope not found")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own.  Handlers translate this into an HTTP 403.
var ErrForbidden = errors.New("forbidden")
