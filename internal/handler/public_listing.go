// Package handler exposes HTTP handlers for both authenticated and
// public endpoints.  This file implements the public discovery flow:
// resolving a listing path, building the facet catalog, filtering and
// ranking the city's restaurants, and attaching review snippets.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-directory/internal/listing"
	"github.com/iliyamo/restaurant-directory/internal/repository"
)

// PublicHandler aggregates the repositories needed for unauthenticated
// browsing.  Now is injectable so open/closed evaluation is a pure
// function of the request in tests; nil means time.Now.
type PublicHandler struct {
	Scopes      *repository.ScopeRepo
	Restaurants *repository.RestaurantRepo
	Facets      *repository.FacetRepo
	Reviews     *repository.ReviewRepo
	Now         func() time.Time
}

func (h *PublicHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// parseIDParams collects the repeated uint64 query values for one
// facet.  Unparseable values are dropped, matching the unknown-value
// policy for filters.
func parseIDParams(c echo.Context, name string) []uint64 {
	var out []uint64
	for _, raw := range c.QueryParams()[name] {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil && id != 0 {
			out = append(out, id)
		}
	}
	return out
}

// filterSelectionFrom builds the raw (unsanitized) selection from the
// query string.
func filterSelectionFrom(c echo.Context) listing.FilterSelection {
	return listing.FilterSelection{
		Subcategory: parseIDParams(c, "subcategory"),
		Amenity:     parseIDParams(c, "amenity"),
		Dietary:     parseIDParams(c, "dietary"),
		Price:       parseIDParams(c, "price"),
	}
}

// vocabularyResult carries the async facet fetch outcome.
type vocabularyResult struct {
	vocab listing.Vocabulary
	err   error
}

// ListRestaurants serves the listing pages:
//
//	GET /v1/listings/:city
//	GET /v1/listings/:city/:category
//	GET /v1/listings/:city/:category/:subcategory
//
// An unresolvable path is a 404 ("location not found"), which is a
// different outcome than a resolved scope with zero matches: the latter
// is a 200 with an empty result list and its own message, so the UI can
// render the right empty state.
func (h *PublicHandler) ListRestaurants(c echo.Context) error {
	ctx := c.Request().Context()

	scope, err := h.Scopes.Resolve(ctx, c.Param("city"), c.Param("category"), c.Param("subcategory"))
	if err != nil {
		if errors.Is(err, repository.ErrScopeNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error":   "location_not_found",
				"message": "No se encontró la ciudad, categoría o subcategoría indicada.",
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	// The facet catalog does not depend on the candidate fetch, so the
	// two queries run concurrently.
	vocabCh := make(chan vocabularyResult, 1)
	go func() {
		v, err := h.Facets.CityVocabulary(ctx, scope.CityID)
		vocabCh <- vocabularyResult{vocab: v, err: err}
	}()

	candidates, err := h.Restaurants.ListApprovedByCity(ctx, scope.CityID)
	if err != nil {
		<-vocabCh
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	vr := <-vocabCh
	if vr.err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	catalog := listing.BuildCatalog(vr.vocab)
	sel := listing.SanitizeSelection(filterSelectionFrom(c), catalog)
	sortMode := listing.NormalizeSortMode(c.QueryParam("sort"))

	items := listing.Annotate(listing.Filter(candidates, scope, sel), h.now())
	listing.Rank(items, sortMode)

	ids := make([]uint64, len(items))
	for i, it := range items {
		ids[i] = it.Restaurant.ID
	}
	reviews, err := h.Reviews.ListPositiveByRestaurants(ctx, ids)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	listing.AttachSnippets(items, reviews)

	page := listing.Assemble(scope, items, catalog, sortMode)
	if page.TotalCount == 0 {
		return c.JSON(http.StatusOK, echo.Map{
			"page":    page,
			"message": "No se encontraron restaurantes con esos filtros.",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"page": page})
}

// GetFilters serves the facet catalog, city-scoped when the optional
// ?city=slug parameter is present and global otherwise.  An unknown
// city slug is a 404, consistent with the listing routes.
func (h *PublicHandler) GetFilters(c echo.Context) error {
	ctx := c.Request().Context()

	citySlug := c.QueryParam("city")
	var (
		vocab listing.Vocabulary
		err   error
	)
	if citySlug != "" {
		city, err := h.Scopes.CityBySlug(ctx, citySlug)
		if err != nil {
			if errors.Is(err, repository.ErrScopeNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "city not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		vocab, err = h.Facets.CityVocabulary(ctx, city.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		return c.JSON(http.StatusOK, echo.Map{"facets": listing.BuildCatalog(vocab)})
	}

	vocab, err = h.Facets.GlobalVocabulary(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"facets": listing.BuildCatalog(vocab)})
}
