// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP communication, content extraction engines and logging.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: Allowlisted single-request fetcher on net/http
// - gamespot: GameSpot articles API client and wire schema
// - extractor/readability: go-readability engine
// - extractor/trafilatura: go-trafilatura engine
// - extractor/density: Text density scorer on goquery
// - logger/structured: logrus backed structured logger
//
// # HTTP Client
//
// The fetcher rejects hosts outside its allowlist before any network call,
// never retries, and bounds each request with a timeout:
//
//	client := standard.NewStandardHTTPClient(standard.Options{
//	    AllowedDomains: []string{"gamespot.com"},
//	    Timeout:        15 * time.Second,
//	})
//	result, err := client.Fetch(ctx, "https://www.gamespot.com/articles/example/")
//
// # Logger
//
//	logger := structured.NewLogger(structured.Options{Level: "info", Format: "json"})
//	logger.Info("Article extracted", map[string]interface{}{
//	    "url":    "https://www.gamespot.com/articles/example/",
//	    "engine": "readability",
//	})
package infrastructure
