// ABOUTME: Content extraction engine backed by go-trafilatura
// ABOUTME: Used when readability yields nothing plausible

package trafilatura

import (
	"bytes"
	"errors"

	"gmn-api/core/document"
	"gmn-api/core/domain"
	"gmn-api/core/fallback"
	"gmn-api/core/interfaces"

	"github.com/go-shiori/dom"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ interfaces.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura
type Extractor struct{}

// NewExtractor creates a new Extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name returns the engine identifier
func (e *Extractor) Name() string {
	return "trafilatura"
}

// Extract runs trafilatura on a deep clone so doc is left untouched
func (e *Extractor) Extract(doc *document.Document) (*domain.ExtractionResult, error) {
	opts := trafilatura.Options{
		OriginalURL:     doc.BaseURL(),
		ExcludeComments: true,
		IncludeImages:   true,
	}

	result, err := trafilatura.ExtractDocument(dom.Clone(doc.Root(), true), opts)
	if err != nil {
		return nil, err
	}
	if result == nil || result.ContentNode == nil {
		return nil, errors.New("trafilatura found no article content")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}

	return &domain.ExtractionResult{
		Title:       fallback.String(result.Metadata.Title),
		Byline:      fallback.String(result.Metadata.Author),
		Excerpt:     fallback.String(result.Metadata.Description),
		SiteName:    fallback.String(result.Metadata.Sitename),
		ContentHTML: contentHTML,
		TextContent: result.ContentText,
	}, nil
}

// renderNode converts an html.Node to a string
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
