// This file defines the owner dashboard endpoints.  Owners manage only
// their own restaurants; ownership is enforced in the repository layer
// so a row owned by someone else yields 403, never a silent miss.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-directory/internal/listing"
	"github.com/iliyamo/restaurant-directory/internal/model"
	"github.com/iliyamo/restaurant-directory/internal/repository"
)

// OwnerHandler aggregates repositories for the dashboard endpoints.
type OwnerHandler struct {
	Restaurants *repository.RestaurantRepo
	Reviews     *repository.ReviewRepo
}

// ownerID extracts the authenticated user id stored by the JWT
// middleware.  JWT numeric claims decode as float64; string subjects
// are parsed for robustness.
func ownerID(c echo.Context) (uint64, bool) {
	switch v := c.Get("user_id").(type) {
	case float64:
		return uint64(v), true
	case uint64:
		return v, true
	case string:
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			return id, true
		}
	}
	return 0, false
}

// ownedRestaurant is the dashboard list payload: the row plus its
// approval state, which public responses never expose.
type ownedRestaurant struct {
	ID           uint64   `json:"id"`
	Name         string   `json:"name"`
	Slug         string   `json:"slug"`
	IsApproved   bool     `json:"is_approved"`
	Rating       float64  `json:"rating"`
	ReviewsCount int      `json:"reviews_count"`
	Categories   []string `json:"categories"`
}

// ListMyRestaurants returns every restaurant the caller owns,
// approved or not.
func (h *OwnerHandler) ListMyRestaurants(c echo.Context) error {
	uid, ok := ownerID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	rs, err := h.Restaurants.ListByOwner(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	items := listing.Annotate(rs, time.Now())
	out := make([]ownedRestaurant, 0, len(items))
	for _, it := range items {
		r := it.Restaurant
		out = append(out, ownedRestaurant{
			ID:           r.ID,
			Name:         r.Name,
			Slug:         r.Slug,
			IsApproved:   r.IsApproved,
			Rating:       r.Rating,
			ReviewsCount: r.ReviewsCount,
			Categories:   it.CategoryLine,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

type hourEntryReq struct {
	Day       int    `json:"day"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	IsOpen    bool   `json:"is_open"`
}

type updateHoursReq struct {
	Hours []hourEntryReq `json:"hours"`
}

// UpdateHours replaces the weekly schedule of an owned restaurant.  The
// dashboard submits the whole week at once.
func (h *OwnerHandler) UpdateHours(c echo.Context) error {
	uid, ok := ownerID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req updateHoursReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	hours := make([]model.RestaurantHour, 0, len(req.Hours))
	for _, e := range req.Hours {
		if e.Day < 0 || e.Day > 6 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "day must be 0..6"})
		}
		if e.IsOpen && (!validClock(e.OpenTime) || !validClock(e.CloseTime)) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "open_time/close_time must be HH:MM or HH:MM:SS"})
		}
		hours = append(hours, model.RestaurantHour{
			RestaurantID: id,
			Day:          e.Day,
			OpenTime:     e.OpenTime,
			CloseTime:    e.CloseTime,
			IsOpen:       e.IsOpen,
		})
	}

	if err := h.Restaurants.ReplaceHours(c.Request().Context(), id, uid, hours); err != nil {
		switch {
		case errors.Is(err, repository.ErrRestaurantNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
	}
	return c.NoContent(http.StatusNoContent)
}

// validClock accepts HH:MM and HH:MM:SS wall-clock strings.
func validClock(s string) bool {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return false
	}
	return true
}

type respondReviewReq struct {
	Message string `json:"message"`
}

// RespondReview attaches an owner response to a review on an owned
// restaurant.
func (h *OwnerHandler) RespondReview(c echo.Context) error {
	uid, ok := ownerID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req respondReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "message required"})
	}

	if err := h.Reviews.Respond(c.Request().Context(), id, uid, req.Message); err != nil {
		switch {
		case errors.Is(err, repository.ErrReviewNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "review not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
	}
	return c.NoContent(http.StatusNoContent)
}
