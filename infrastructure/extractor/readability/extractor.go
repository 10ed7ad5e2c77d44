// ABOUTME: Content extraction engine backed by go-readability
// ABOUTME: Runs Mozilla's Readability heuristic on a private clone of the document

package readability

import (
	"errors"
	"strings"

	"gmn-api/core/document"
	"gmn-api/core/domain"
	"gmn-api/core/fallback"
	"gmn-api/core/interfaces"

	"github.com/go-shiori/dom"
	readability "github.com/go-shiori/go-readability"
)

var _ interfaces.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability
type Extractor struct{}

// NewExtractor creates a new Extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name returns the engine identifier
func (e *Extractor) Name() string {
	return "readability"
}

// Extract runs readability on a deep clone so doc is left untouched
func (e *Extractor) Extract(doc *document.Document) (*domain.ExtractionResult, error) {
	article, err := readability.FromDocument(dom.Clone(doc.Root(), true), doc.BaseURL())
	if err != nil {
		return nil, err
	}
	if article.Node == nil || strings.TrimSpace(article.Content) == "" {
		return nil, errors.New("readability found no article content")
	}

	return &domain.ExtractionResult{
		Title:       fallback.String(article.Title),
		Byline:      fallback.String(article.Byline),
		Excerpt:     fallback.String(article.Excerpt),
		SiteName:    fallback.String(article.SiteName),
		ContentHTML: article.Content,
		TextContent: article.TextContent,
		Length:      article.Length,
	}, nil
}
