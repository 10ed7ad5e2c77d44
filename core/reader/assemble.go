// ABOUTME: Response assembly for the reader pipeline
// ABOUTME: Combines extracted metadata, sanitized HTML and the lead image

package reader

import (
	"gmn-api/core/document"
	"gmn-api/core/domain"
	"gmn-api/core/fallback"
)

// DefaultSiteName labels articles whose page declares no site name
const DefaultSiteName = "GameSpot"

// Assemble builds the reader response. siteName falls back to defaultSiteName.
func Assemble(result *domain.ExtractionResult, sanitizedHTML string, leadImage *string, defaultSiteName string) *domain.ReaderResponse {
	return &domain.ReaderResponse{
		Title:     result.Title,
		Byline:    result.Byline,
		Excerpt:   result.Excerpt,
		SiteName:  fallback.OrDefault(defaultSiteName, deref(result.SiteName)),
		LeadImage: leadImage,
		HTML:      sanitizedHTML,
	}
}

// LeadImage picks og:image, then twitter:image, resolved against the page URL
func LeadImage(doc *document.Document) *string {
	img := fallback.String(
		doc.Attr(`meta[property="og:image"]`, "content"),
		doc.Attr(`meta[property="og:image:url"]`, "content"),
		doc.Attr(`meta[name="twitter:image"]`, "content"),
		doc.Attr(`meta[property="twitter:image"]`, "content"),
	)
	if img == nil {
		return nil
	}
	resolved := doc.ResolveURL(*img)
	return &resolved
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
