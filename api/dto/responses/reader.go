// ABOUTME: Response DTOs for the reader endpoint
// ABOUTME: Serializes the assembled article with sanitized HTML

package responses

// ReaderResponse is the extracted article
type ReaderResponse struct {
	Title     *string `json:"title" doc:"Article title"`
	Byline    *string `json:"byline" doc:"Author line"`
	Excerpt   *string `json:"excerpt" doc:"Short summary of the article"`
	SiteName  string  `json:"siteName" doc:"Publisher name"`
	LeadImage *string `json:"leadImage" doc:"Representative image URL"`
	HTML      string  `json:"html" doc:"Sanitized article HTML"`
}
