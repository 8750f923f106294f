package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/restaurant-directory/internal/config"
	"github.com/iliyamo/restaurant-directory/internal/database"
	"github.com/iliyamo/restaurant-directory/internal/handler"
	"github.com/iliyamo/restaurant-directory/internal/middleware"
	"github.com/iliyamo/restaurant-directory/internal/queue"
	"github.com/iliyamo/restaurant-directory/internal/repository"
	"github.com/iliyamo/restaurant-directory/internal/router"
)

func main() {
	// Load .env when present; real deployments set the environment
	// directly, so a missing file is not an error.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Repositories share the single connection pool.
	scopes := repository.NewScopeRepo(db)
	restaurants := repository.NewRestaurantRepo(db)
	facets := repository.NewFacetRepo(db)
	reviews := repository.NewReviewRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)

	authHandler := handler.NewAuthHandler(cfg, users, tokens)
	publicHandler := &handler.PublicHandler{
		Scopes:      scopes,
		Restaurants: restaurants,
		Facets:      facets,
		Reviews:     reviews,
	}
	ownerHandler := &handler.OwnerHandler{
		Restaurants: restaurants,
		Reviews:     reviews,
	}

	e := echo.New()

	// Redis-backed rate limiting and response caching.  Both degrade to
	// pass-through middleware when Redis is unreachable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and response cache disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterPublic(e, publicHandler)
	router.RegisterOwner(e, ownerHandler, cfg.JWTSecret)

	// Background consumer that logs review.created events.  It keeps
	// its own reconnect loop and never takes the server down.
	go func() {
		if err := queue.StartReviewConsumer(); err != nil {
			log.Printf("review consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
