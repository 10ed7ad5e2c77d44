// ABOUTME: Main entry point for the GMN API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gmn-api/api"
	"gmn-api/api/handlers"
	"gmn-api/api/middleware"
	"gmn-api/core/articles"
	"gmn-api/core/extraction"
	"gmn-api/core/interfaces"
	"gmn-api/core/reader"
	"gmn-api/core/sanitize"
	"gmn-api/infrastructure/extractor/density"
	"gmn-api/infrastructure/extractor/readability"
	"gmn-api/infrastructure/extractor/trafilatura"
	"gmn-api/infrastructure/gamespot"
	stdhttp "gmn-api/infrastructure/http/standard"
	"gmn-api/infrastructure/logger/structured"
	"gmn-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := structured.NewLogger(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	logger.Info("Starting GMN API", map[string]interface{}{
		"port":            cfg.Server.Port,
		"allowed_domains": cfg.Reader.AllowedDomains,
		"trafilatura":     cfg.Reader.EnableTrafilatura,
	})

	transport := &middleware.LoggingRoundTripper{
		Transport: http.DefaultTransport,
		Logger:    logger,
	}

	// The reader may only fetch allowlisted publisher pages
	readerFetcher := stdhttp.NewStandardHTTPClient(stdhttp.Options{
		API:            "reader",
		AllowedDomains: cfg.Reader.AllowedDomains,
		UserAgent:      cfg.Reader.UserAgent,
		Timeout:        cfg.Reader.FetchTimeout,
		MaxBodyBytes:   cfg.Reader.MaxBodyBytes,
		Transport:      transport,
	})

	// The listing client may only reach the upstream API host
	apiURL, err := url.Parse(cfg.GameSpot.BaseURL)
	if err != nil {
		log.Fatalf("Invalid GameSpot base URL: %v", err)
	}
	apiFetcher := stdhttp.NewStandardHTTPClient(stdhttp.Options{
		API:            "gamespot",
		AllowedDomains: []string{apiURL.Hostname()},
		UserAgent:      cfg.Reader.UserAgent,
		Timeout:        cfg.Reader.FetchTimeout,
		MaxBodyBytes:   cfg.Reader.MaxBodyBytes,
		Transport:      transport,
	})

	engines := []interfaces.Extractor{readability.NewExtractor()}
	if cfg.Reader.EnableTrafilatura {
		engines = append(engines, trafilatura.NewExtractor())
	}
	engines = append(engines, density.NewExtractor())

	readerLogger := logger.With(map[string]interface{}{"component": "reader"})
	readerService := reader.NewService(
		interfaces.Dependencies{Fetcher: readerFetcher, Logger: readerLogger},
		reader.Options{
			Extractor: extraction.NewChain(cfg.Reader.MinContentLength, readerLogger, engines...),
			Sanitizer: sanitize.NewSanitizer(),
			SiteName:  cfg.Reader.SiteNameFallback,
		},
	)

	listingLogger := logger.With(map[string]interface{}{"component": "articles"})
	source := gamespot.NewClient(apiFetcher, listingLogger, cfg.GameSpot.BaseURL, cfg.GameSpot.APIKey)
	articleService := articles.NewService(source, listingLogger, articles.Bounds{
		DefaultLimit: cfg.Listing.DefaultLimit,
		MaxLimit:     cfg.Listing.MaxLimit,
	})

	humaAPI, router := api.NewAPI(api.APIConfig{
		Logger:         logger,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		StaticDir:      cfg.Server.StaticDir,
		TrustProxy:     cfg.Server.TrustProxyHeaders,
	})

	handlers.NewArticlesHandler(articleService).RegisterRoutes(humaAPI)
	handlers.NewReaderHandler(readerService).RegisterRoutes(humaAPI)

	// WriteTimeout leaves room for one full fetch plus extraction
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.Reader.FetchTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
