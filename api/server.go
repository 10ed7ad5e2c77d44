// ABOUTME: Huma API server configuration and setup
// ABOUTME: Wires CORS, middleware, OpenAPI documentation and the optional static front end

package api

import (
	"net/http"
	"os"
	"time"

	"gmn-api/api/middleware"
	"gmn-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const (
	apiTitle   = "GMN API"
	apiVersion = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger         interfaces.Logger
	AllowedOrigins []string
	RateLimit      int           // requests per window, 0 disables limiting
	RateWindow     time.Duration // rate limit window
	StaticDir      string        // served at / when set
	TrustProxy     bool          // key rate limits on X-Forwarded-For / X-Real-IP
}

// NewConfig returns the huma configuration used by the service. Response
// bodies carry no $schema link so they match the documented payloads exactly.
func NewConfig() huma.Config {
	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = "Lists recent GameSpot articles and extracts clean, sanitized article content"
	config.CreateHooks = nil
	return config
}

// NewAPI creates a Huma API on a chi router with middleware configured.
// Handlers register their routes on the returned API.
func NewAPI(cfg APIConfig) (huma.API, chi.Router) {
	logger := cfg.Logger
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	router := chi.NewRouter()

	router.Use(middleware.RecoverMiddleware(logger))

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300, // Maximum value not ignored by any of major browsers
	}))

	router.Use(middleware.RequestLoggingMiddleware(logger))

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter, cfg.TrustProxy))
	}

	// The OpenAPI spec is available at /openapi.json and the docs UI at /docs
	api := humachi.New(router, NewConfig())

	if cfg.StaticDir != "" {
		if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
			router.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
		} else {
			logger.Warn("Static directory not found, front end disabled", map[string]interface{}{
				"dir": cfg.StaticDir,
			})
		}
	}

	return api, router
}
