// ABOUTME: Content extraction contract enforced over an ordered list of engines
// ABOUTME: Strips non-content markup, fills metadata and rejects implausible results

package extraction

import (
	"fmt"
	"strings"

	"gmn-api/core/document"
	"gmn-api/core/domain"
	"gmn-api/core/errors"
	"gmn-api/core/interfaces"
)

// DefaultMinTextLength is the smallest extracted text, in characters, that
// counts as an article
const DefaultMinTextLength = 140

// MaxLinkDensity is the largest share of the extracted text that may sit
// inside anchors. Listing pages and link rivers exceed it.
const MaxLinkDensity = 0.5

// Chain tries each engine in order and returns the first plausible result.
// A result is plausible when its text, after non-content stripping, has at
// least minTextLength characters outside anchors and at most MaxLinkDensity
// of it is anchor text.
type Chain struct {
	engines       []interfaces.Extractor
	minTextLength int
	logger        interfaces.Logger
}

var _ interfaces.Extractor = (*Chain)(nil)

// NewChain creates a chain over engines. minTextLength <= 0 selects DefaultMinTextLength.
func NewChain(minTextLength int, logger interfaces.Logger, engines ...interfaces.Extractor) *Chain {
	if minTextLength <= 0 {
		minTextLength = DefaultMinTextLength
	}
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Chain{
		engines:       engines,
		minTextLength: minTextLength,
		logger:        logger,
	}
}

// Name returns the chain identifier
func (c *Chain) Name() string {
	return "chain"
}

// Extract returns the first plausible engine result, or an *errors.ExtractionError
// when every engine fails or yields too little text.
func (c *Chain) Extract(doc *document.Document) (*domain.ExtractionResult, error) {
	pageURL := doc.BaseURL().String()
	if len(c.engines) == 0 {
		return nil, &errors.ExtractionError{URL: pageURL, Reason: "no extraction engines configured"}
	}

	var reasons []string
	for _, engine := range c.engines {
		result, err := engine.Extract(doc)
		if err != nil {
			c.logger.Debug("Extraction engine failed", map[string]interface{}{
				"url":    pageURL,
				"engine": engine.Name(),
				"error":  err.Error(),
			})
			reasons = append(reasons, fmt.Sprintf("%s: %v", engine.Name(), err))
			continue
		}

		stripped, err := StripNonContent(result.ContentHTML)
		if err != nil {
			reasons = append(reasons, fmt.Sprintf("%s: %v", engine.Name(), err))
			continue
		}

		length := textLength(stripped.Text)
		if reason := c.implausible(length, stripped.LinkTextLength); reason != "" {
			c.logger.Debug("Extraction engine result rejected", map[string]interface{}{
				"url":         pageURL,
				"engine":      engine.Name(),
				"length":      length,
				"link_length": stripped.LinkTextLength,
				"reason":      reason,
			})
			reasons = append(reasons, fmt.Sprintf("%s: %s", engine.Name(), reason))
			continue
		}

		out := *result
		out.ContentHTML = stripped.HTML
		out.TextContent = stripped.Text
		out.Length = length
		out.Engine = engine.Name()
		fillMetadata(&out, doc)

		return &out, nil
	}

	return nil, &errors.ExtractionError{URL: pageURL, Reason: strings.Join(reasons, "; ")}
}

// implausible returns why a result with length characters of text, linked of
// them inside anchors, is not an article, or "" when it is.
func (c *Chain) implausible(length, linked int) string {
	if length < c.minTextLength {
		return fmt.Sprintf("%d characters of text", length)
	}
	if density := float64(linked) / float64(length); density > MaxLinkDensity {
		return fmt.Sprintf("link density %.2f", density)
	}
	if prose := length - linked; prose < c.minTextLength {
		return fmt.Sprintf("%d characters of text outside links", prose)
	}
	return ""
}
