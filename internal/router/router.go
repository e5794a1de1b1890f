// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/bmi-tracker/internal/config"
	"github.com/iliyamo/bmi-tracker/internal/handler"
	"github.com/iliyamo/bmi-tracker/internal/middleware"
)

// RegisterRoutes registers the health check, the API info endpoint and
// the static front end on the provided Echo instance.
func RegisterRoutes(e *echo.Echo) {
	// Used by load balancers or monitoring systems to verify that the
	// service is up.
	e.GET("/healthz", handler.Health)
	e.GET("/api", handler.Info)
	// Single-page front end: the form that posts measurements and the
	// history view live under web/.
	e.Static("/", "web")
}

// RegisterMeasurements registers the three measurement endpoints. The
// two read endpoints go through the redis response cache and all
// endpoints share the token bucket rate limiter; both middlewares are
// pass-through when rdb is nil.
func RegisterMeasurements(e *echo.Echo, h *handler.MeasurementHandler, rdb *redis.Client) {
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	g := e.Group("/api/bmi", limiter)
	g.POST("", h.Create)
	g.GET("/:user_id", h.ListByUser, cache)
	g.GET("/:user_id/latest", h.LatestByUser, cache)
}
