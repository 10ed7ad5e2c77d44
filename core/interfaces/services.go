// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for extraction, sanitization, reading and listing

package interfaces

import (
	"context"

	"gmn-api/core/document"
	"gmn-api/core/domain"
)

// Extractor identifies the main readable content of a parsed page.
// Extract must not mutate doc and must be deterministic for a given doc.
type Extractor interface {
	Name() string
	Extract(doc *document.Document) (*domain.ExtractionResult, error)
}

// Sanitizer rewrites untrusted HTML into the safe-to-render subset
type Sanitizer interface {
	Sanitize(rawHTML string) string
}

// ReaderService runs the fetch, parse, extract, sanitize and assemble pipeline
type ReaderService interface {
	Read(ctx context.Context, articleURL string) (*domain.ReaderResponse, error)
}

// ArticleSource is the upstream article-listing collaborator
type ArticleSource interface {
	FetchArticles(ctx context.Context, limit, offset int) (*domain.ArticlePage, error)
}

// ArticleService lists recent articles with paging metadata
type ArticleService interface {
	List(ctx context.Context, limit, offset int) (*domain.ArticleList, error)
}
