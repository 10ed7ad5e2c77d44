// ABOUTME: Metadata fallbacks for extraction results
// ABOUTME: Fills title, byline, excerpt and site name from standard page metadata

package extraction

import (
	"strings"

	"gmn-api/core/document"
	"gmn-api/core/domain"
	"gmn-api/core/fallback"
)

// excerptLength is the number of characters taken from the text when no
// description metadata exists
const excerptLength = 200

func fillMetadata(r *domain.ExtractionResult, doc *document.Document) {
	r.Title = fallback.Pointer(
		r.Title,
		fallback.String(doc.Attr(`meta[property="og:title"]`, "content")),
		fallback.String(doc.Text("title")),
	)
	r.Byline = fallback.Pointer(
		r.Byline,
		fallback.String(doc.Attr(`meta[name="author"]`, "content")),
		fallback.String(doc.Attr(`meta[property="article:author"]`, "content")),
	)
	r.Excerpt = fallback.Pointer(
		r.Excerpt,
		fallback.String(doc.Attr(`meta[name="description"]`, "content")),
		fallback.String(doc.Attr(`meta[property="og:description"]`, "content")),
		fallback.String(truncate(r.TextContent, excerptLength)),
	)
	r.SiteName = fallback.Pointer(
		r.SiteName,
		fallback.String(doc.Attr(`meta[property="og:site_name"]`, "content")),
		fallback.String(doc.Attr(`meta[name="application-name"]`, "content")),
	)
}

// truncate cuts s to at most n characters, backing off to the last word
// boundary when one exists in the second half.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	cut := string(r[:n])
	if i := strings.LastIndex(cut, " "); i > len(cut)/2 {
		cut = cut[:i]
	}
	return strings.TrimSpace(cut)
}
