package model

import (
	"database/sql"
	"time"
)

// Restaurant represents a venue listed in the directory.  Each
// restaurant belongs to one city and one owner and carries aggregate
// rating data maintained by the review write path.  Only rows with
// IsApproved set are ever returned by public listing flows.
//
// Fields:
//  ID           – primary key identifier.
//  CityID       – city the restaurant belongs to.
//  OwnerID      – user ID of the restaurant owner (dashboard access).
//  Name         – display name.
//  Slug         – unique URL-safe identifier.
//  Tagline      – short one-line pitch shown on cards.
//  Description  – long form description.
//  Address      – street address.
//  Lat, Lng     – geographic coordinates.
//  PriceLevelID – optional reference to a price tier.
//  Rating       – aggregate rating, 0.0–5.0 with one meaningful decimal.
//  ReviewsCount – aggregate number of reviews, never negative.
//  IsApproved   – moderation flag; unapproved rows are invisible publicly.
//  Timezone     – IANA zone name used to evaluate opening hours.
type Restaurant struct {
	ID           uint64        // restaurants.id
	CityID       uint64        // restaurants.city_id
	OwnerID      uint64        // restaurants.owner_id
	Name         string        // restaurants.name
	Slug         string        // restaurants.slug
	Tagline      string        // restaurants.tagline
	Description  string        // restaurants.description
	Address      string        // restaurants.address
	Lat          float64       // restaurants.lat
	Lng          float64       // restaurants.lng
	PriceLevelID sql.NullInt64 // restaurants.price_level_id
	Rating       float64       // restaurants.rating_average
	ReviewsCount int           // restaurants.reviews_count
	IsApproved   bool          // restaurants.is_approved
	Timezone     string        // restaurants.timezone
	CreatedAt    time.Time     // restaurants.created_at
	UpdatedAt    time.Time     // restaurants.updated_at

	// Relations resolved once at the adapter boundary.  Core listing
	// code only ever sees these typed slices, never raw join rows.
	Images        []RestaurantImage
	Subcategories []SubcategoryLink
	AmenityIDs    []uint64
	DietaryIDs    []uint64
	Hours         []RestaurantHour
	PriceLevel    *PriceLevel
}

// RestaurantImage is a single image attached to a restaurant.  The
// Type tag groups images into galleries (interior, food, menu).
type RestaurantImage struct {
	URL  string // restaurant_images.url
	Type string // restaurant_images.type: interior | food | menu
}

// SubcategoryLink is one row of the restaurant_subcategories join,
// flattened with the subcategory and its parent category so that
// scope matching never has to chase references.
type SubcategoryLink struct {
	SubcategoryID   uint64 // restaurant_subcategories.subcategory_id
	SubcategoryName string // subcategories.name
	CategoryID      uint64 // subcategories.category_id
	CategoryName    string // categories.name
}
