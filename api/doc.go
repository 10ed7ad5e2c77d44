// Package api provides the HTTP API layer for the GMN service.
// It uses the Huma framework on a chi router for OpenAPI documentation,
// request validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration, CORS, middleware and static files
// - handlers/: HTTP request handlers and the error model
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: Logging, rate limiting and panic recovery
//
// # Endpoints
//
//	GET /api/articles?limit=&offset=   recent articles with paging
//	GET /api/article?url=              sanitized content of one article
//
// The OpenAPI spec is served at /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPI(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	})
//	handlers.NewReaderHandler(readerService).RegisterRoutes(humaAPI)
//	http.ListenAndServe(":3000", router)
//
// # Error Handling
//
// Every error response has the same shape:
//
//	{"error": "Missing url param"}
//
// Client input problems are 400; upstream, extraction and internal failures
// are 500.
package api
