// This file defines the public restaurant detail endpoint and review
// submission.  Detail responses expose only approved restaurants and
// include the live open-state with the status message shown on the
// hours card.
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
	"github.com/iliyamo/restaurant-directory/internal/queue"
	"github.com/iliyamo/restaurant-directory/internal/repository"
	queuepublisher "github.com/iliyamo/restaurant-directory/internal/service"
)

// publicReview is one review in detail responses, with the owner
// response when present.
type publicReview struct {
	ID          uint64     `json:"id"`
	Rating      int        `json:"rating"`
	Comment     string     `json:"comment,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Response    string     `json:"response,omitempty"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

type restaurantHourEntry struct {
	Day       int    `json:"day"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	IsOpen    bool   `json:"is_open"`
}

// restaurantDetail is the full public payload for one restaurant.
type restaurantDetail struct {
	listing.Summary
	Description string                `json:"description"`
	Coordinates map[string]float64    `json:"coordinates"`
	Categories  []string              `json:"categories"`
	Hours       []restaurantHourEntry `json:"hours"`
	OpenState   listing.OpenState     `json:"open_state"`
	Status      string                `json:"status"`
	Reviews     []publicReview        `json:"reviews"`
}

// GetRestaurant returns one approved restaurant by slug with hours,
// open-state and reviews.  Unapproved or unknown slugs are 404.
func (h *PublicHandler) GetRestaurant(c echo.Context) error {
	ctx := c.Request().Context()

	r, err := h.Restaurants.GetApprovedBySlug(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	reviews, err := h.Reviews.ListByRestaurant(ctx, r.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	it := listing.Annotate([]*model.Restaurant{r}, h.now())[0]

	out := restaurantDetail{
		Summary: listing.Summary{
			ID:          r.ID,
			Name:        r.Name,
			Slug:        r.Slug,
			Tagline:     r.Tagline,
			Address:     r.Address,
			Rating:      r.Rating,
			ReviewCount: r.ReviewsCount,
			PriceSymbol: it.PriceSymbol,
			Images:      listing.GroupImages(r.Images),
		},
		Description: r.Description,
		Coordinates: map[string]float64{"lat": r.Lat, "lng": r.Lng},
		Categories:  it.CategoryLine,
		Hours:       make([]restaurantHourEntry, 0, len(r.Hours)),
		OpenState:   it.Open,
		Status:      it.Open.StatusMessage(),
		Reviews:     make([]publicReview, 0, len(reviews)),
	}
	for _, hr := range r.Hours {
		out.Hours = append(out.Hours, restaurantHourEntry{
			Day: hr.Day, OpenTime: hr.OpenTime, CloseTime: hr.CloseTime, IsOpen: hr.IsOpen,
		})
	}
	for _, rev := range reviews {
		pr := publicReview{
			ID:        rev.ID,
			Rating:    rev.Rating,
			Comment:   rev.Comment,
			CreatedAt: rev.CreatedAt,
		}
		if rev.ResponseMessage.Valid {
			pr.Response = rev.ResponseMessage.String
		}
		if rev.ResponseAt.Valid {
			t := rev.ResponseAt.Time
			pr.RespondedAt = &t
		}
		out.Reviews = append(out.Reviews, pr)
	}
	return c.JSON(http.StatusOK, out)
}

type createReviewReq struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// CreateReview accepts a public review for an approved restaurant and
// publishes a review.created event for downstream consumers.  Publish
// failures are logged by the publisher and never fail the request.
func (h *PublicHandler) CreateReview(c echo.Context) error {
	ctx := c.Request().Context()

	restaurantID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var req createReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Rating < 1 || req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be between 1 and 5"})
	}
	req.Comment = strings.TrimSpace(req.Comment)

	id, err := h.Reviews.Create(ctx, restaurantID, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	_ = queuepublisher.PublishReviewCreated(ctx, queue.ReviewCreatedEvent{
		ReviewID:     id,
		RestaurantID: restaurantID,
		Rating:       req.Rating,
		Comment:      req.Comment,
		CreatedAt:    h.now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}
