// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Builds one immutable Config at startup from the environment and an optional .env file

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// GameSpot contains upstream listing API configuration
	GameSpot GameSpotConfig

	// Reader contains article fetch and extraction configuration
	Reader ReaderConfig

	// Listing contains article listing bounds
	Listing ListingConfig

	// Log contains logger configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// AllowedOrigins lists CORS origins
	AllowedOrigins []string

	// RateLimit is the number of requests a client may make per RateWindow
	RateLimit int

	// RateWindow is the rate limit window
	RateWindow time.Duration

	// StaticDir is an optional front-end directory served at /
	StaticDir string

	// TrustProxyHeaders keys rate limits on X-Forwarded-For and X-Real-IP.
	// Enable only behind a reverse proxy that sets them.
	TrustProxyHeaders bool
}

// GameSpotConfig holds upstream listing API configuration
type GameSpotConfig struct {
	// APIKey authenticates against the articles API
	APIKey string

	// BaseURL is the articles endpoint
	BaseURL string
}

// ReaderConfig holds article fetch and extraction configuration
type ReaderConfig struct {
	// AllowedDomains lists publisher domains the reader may fetch
	AllowedDomains []string

	// UserAgent identifies outbound requests
	UserAgent string

	// FetchTimeout bounds each outbound request
	FetchTimeout time.Duration

	// MaxBodyBytes caps fetched bodies
	MaxBodyBytes int64

	// SiteNameFallback is used when a page declares no site name
	SiteNameFallback string

	// MinContentLength is the smallest plausible article text in characters
	MinContentLength int

	// EnableTrafilatura adds trafilatura to the extractor chain
	EnableTrafilatura bool
}

// ListingConfig holds article listing bounds
type ListingConfig struct {
	DefaultLimit int
	MaxLimit     int
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Format string
}

// LoadFromEnv loads configuration from environment variables. Variables in
// the given dotenv files (".env" when none are named) fill in anything the
// process environment does not already set; missing files are ignored.
func LoadFromEnv(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	p := &parser{}
	cfg := &Config{
		Server: ServerConfig{
			Port:              getEnvOrDefault("PORT", "3000"),
			AllowedOrigins:    getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
			RateLimit:         p.int("RATE_LIMIT", 100),
			RateWindow:        p.duration("RATE_WINDOW", time.Minute),
			StaticDir:         getEnvOrDefault("STATIC_DIR", ""),
			TrustProxyHeaders: p.bool("TRUST_PROXY_HEADERS", false),
		},
		GameSpot: GameSpotConfig{
			APIKey:  getEnvOrDefault("GAMESPOT_API_KEY", ""),
			BaseURL: getEnvOrDefault("GAMESPOT_API_BASE", "https://www.gamespot.com/api/articles/"),
		},
		Reader: ReaderConfig{
			AllowedDomains:    getEnvAsList("ALLOWED_DOMAINS", []string{"gamespot.com"}),
			UserAgent:         getEnvOrDefault("READER_USER_AGENT", "GMN-Reader/1.0 (+https://gmn.news)"),
			FetchTimeout:      p.duration("FETCH_TIMEOUT", 15*time.Second),
			MaxBodyBytes:      int64(p.int("MAX_BODY_BYTES", 5<<20)),
			SiteNameFallback:  getEnvOrDefault("SITE_NAME_FALLBACK", "GameSpot"),
			MinContentLength:  p.int("MIN_CONTENT_LENGTH", 140),
			EnableTrafilatura: p.bool("ENABLE_TRAFILATURA", true),
		},
		Listing: ListingConfig{
			DefaultLimit: p.int("LISTING_DEFAULT_LIMIT", 20),
			MaxLimit:     p.int("LISTING_MAX_LIMIT", 100),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnvOrDefault("LOG_FORMAT", "text")),
		},
	}

	if err := errors.Join(p.errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.GameSpot.APIKey == "" {
		return errors.New("GAMESPOT_API_KEY is required")
	}

	if u, err := url.Parse(c.GameSpot.BaseURL); err != nil || !u.IsAbs() || u.Host == "" {
		return errors.New("GAMESPOT_API_BASE must be an absolute URL")
	}

	if len(c.Reader.AllowedDomains) == 0 {
		return errors.New("at least one allowed domain is required")
	}

	if c.Reader.FetchTimeout <= 0 {
		return errors.New("fetch timeout must be positive")
	}

	if c.Reader.MaxBodyBytes <= 0 {
		return errors.New("max body bytes must be positive")
	}

	if c.Reader.MinContentLength < 1 {
		return errors.New("min content length must be at least 1")
	}

	if c.Listing.MaxLimit < 1 {
		return errors.New("listing max limit must be at least 1")
	}

	if c.Listing.DefaultLimit < 1 || c.Listing.DefaultLimit > c.Listing.MaxLimit {
		return fmt.Errorf("listing default limit must be between 1 and %d", c.Listing.MaxLimit)
	}

	if c.Server.RateLimit < 0 {
		return errors.New("rate limit cannot be negative")
	}

	if c.Server.RateLimit > 0 && c.Server.RateWindow <= 0 {
		return errors.New("rate window must be positive when rate limiting is enabled")
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("log format must be 'text' or 'json'")
	}

	return nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parser collects malformed values instead of silently using defaults
type parser struct {
	errs []error
}

func (p *parser) int(key string, defaultValue int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %q is not an integer", key, value))
		return defaultValue
	}
	return n
}

func (p *parser) duration(key string, defaultValue time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %q is not a duration", key, value))
		return defaultValue
	}
	return d
}

func (p *parser) bool(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %q is not a boolean", key, value))
		return defaultValue
	}
	return b
}
