// Package core contains the business logic for the GMN API.
// It is framework-agnostic: nothing here imports huma, chi or net/http
// servers, and every external collaborator is injected through interfaces.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure request-scoped models (ArticleSummary, ExtractionResult, ReaderResponse)
// - fallback: Ordered fallback selection over optional values
// - document: Parsed HTML page with selector and attribute queries
// - extraction: Extractor chain enforcing the content contract over pluggable engines
// - sanitize: Allowlist HTML sanitizer with forced safe anchors
// - reader: Fetch, parse, extract, sanitize and assemble pipeline
// - articles: Listing proxy with bounds checking and paging
// - errors: Error taxonomy mapped to HTTP statuses at the API boundary
// - interfaces: Contracts for fetchers, extractors, sources and the logger
//
// # Usage Example
//
//	chain := extraction.NewChain(extraction.DefaultMinTextLength, logger,
//	    readability.NewExtractor(),
//	    density.NewExtractor(),
//	)
//
//	svc := reader.NewService(
//	    interfaces.Dependencies{Fetcher: fetcher, Logger: logger},
//	    reader.Options{Extractor: chain, Sanitizer: sanitize.NewSanitizer()},
//	)
//
//	article, err := svc.Read(ctx, "https://www.gamespot.com/articles/example/")
package core
