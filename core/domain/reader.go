// ABOUTME: Domain models for the single-article reader pipeline
// ABOUTME: Defines the extraction result and the assembled reader response

package domain

// ExtractionResult is the output of main-content extraction.
// ContentHTML is untrusted and must be sanitized before leaving the service.
type ExtractionResult struct {
	Title       *string
	Byline      *string
	Excerpt     *string
	SiteName    *string
	ContentHTML string
	TextContent string
	// Length is the character count of the extracted text
	Length int
	// Engine names the extractor that produced the result
	Engine string
}

// ReaderResponse is the reader endpoint payload. HTML is sanitized.
type ReaderResponse struct {
	Title     *string
	Byline    *string
	Excerpt   *string
	SiteName  string
	LeadImage *string
	HTML      string
}
