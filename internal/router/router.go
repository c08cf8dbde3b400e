package router // package router defines how HTTP routes are registered for the API

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/zphs-kuchanpally/ai-buddy/internal/config"
	"github.com/zphs-kuchanpally/ai-buddy/internal/handler"
	"github.com/zphs-kuchanpally/ai-buddy/internal/middleware"
)

// Deps bundles what the routes need.  Redis may be nil, in which case rate
// limiting and caching are skipped.
type Deps struct {
	Tutor      *handler.TutorHandler
	Diagnostic *handler.DiagnosticHandler
	Redis      *redis.Client
	RateLimit  config.RateLimitConfig
	Cache      config.CacheConfig
}

// Setup installs the validator and the global middleware: panic recovery,
// request logging and a fully open CORS policy.
func Setup(e *echo.Echo) {
	e.Validator = handler.NewValidator()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			c.Logger().Infof("%s %s -> %d (%s)", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))
	// Any origin, method and header; with credentials the request origin is
	// reflected since browsers reject "*" there.
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch,
			http.MethodPost, http.MethodDelete, http.MethodOptions,
		},
		AllowCredentials:                         true,
		UnsafeWildcardOriginWithAllowCredentials: true,
	}))
}

// RegisterRoutes maps every endpoint of the service.
func RegisterRoutes(e *echo.Echo, d Deps) {
	e.GET("/healthz", handler.Health)

	cache := middleware.NewRedisCache(d.Cache, d.Redis)
	e.GET("/", handler.Root, cache)
	e.GET("/api/hello", handler.Hello, cache)

	e.GET("/test", d.Diagnostic.Test)

	api := e.Group("/api")
	api.POST("/tutor", d.Tutor.Tutor, middleware.NewTokenBucket(d.RateLimit, d.Redis))
}
