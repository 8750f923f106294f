package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework used for routing

	"github.com/iliyamo/restaurant-directory/internal/handler"    // handlers implementing the endpoints
	"github.com/iliyamo/restaurant-directory/internal/middleware" // JWT and role middleware
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring systems use this endpoint to verify
	// that the service is up.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies
// the necessary middleware.  Unauthenticated operations live under
// /v1/auth, while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Operations that do not require an existing session: register,
	// login and the two refresh variants.
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Rotating refresh: exchanges the refresh token for a new pair.
	g.POST("/refresh", a.Refresh)
	// Non-rotating refresh: a new access token only.
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout accepts either a refresh token in the body or a bearer
	// token and does not require the JWT middleware.
	g.POST("/logout", a.Logout)

	// Protected endpoints.  JWTAuth validates the bearer token and
	// RequireRole rejects unknown roles.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("OWNER", "ADMIN"))
	auth.GET("/me", a.Me)

	// Alias kept so clients can log out at either path.
	e.POST("/v1/logout", a.Logout)
}

// RegisterPublic registers the unauthenticated discovery endpoints: the
// listing pages, the facet catalog, restaurant details and review
// submission.  No JWT or role middleware applies to these routes.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler) {
	// Listing pages, mirroring the directory's path hierarchy.  All
	// three depths share one handler; missing params resolve as an
	// unscoped level.
	e.GET("/v1/listings/:city", p.ListRestaurants)
	e.GET("/v1/listings/:city/:category", p.ListRestaurants)
	e.GET("/v1/listings/:city/:category/:subcategory", p.ListRestaurants)

	// Facet catalog, global or city-scoped via ?city=slug.
	e.GET("/v1/filters", p.GetFilters)

	// Restaurant detail by slug.
	e.GET("/v1/restaurants/:slug", p.GetRestaurant)

	// Public review submission.
	e.POST("/v1/restaurants/:id/reviews", p.CreateReview)
}

// RegisterOwner registers OWNER-scoped dashboard endpoints under
// /v1/owner.  All routes require a valid access token with the OWNER
// role.
func RegisterOwner(e *echo.Echo, o *handler.OwnerHandler, jwtSecret string) {
	g := e.Group("/v1/owner")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("OWNER"))

	g.GET("/restaurants", o.ListMyRestaurants)
	g.PUT("/restaurants/:id/hours", o.UpdateHours)
	g.POST("/reviews/:id/response", o.RespondReview)
}
