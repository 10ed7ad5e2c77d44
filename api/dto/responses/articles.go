// ABOUTME: Response DTOs for the article listing endpoint
// ABOUTME: Serializes article summaries and paging metadata

package responses

// ArticleSummary is a single listed article
type ArticleSummary struct {
	Title *string `json:"title" doc:"Article headline"`
	Link  *string `json:"link" doc:"Article URL on the publisher site"`
	Date  *string `json:"date" doc:"Publish date as YYYY-MM-DD"`
	Deck  *string `json:"deck" doc:"Short article summary"`
	Image *string `json:"image" doc:"Best available image URL"`
}

// Paging describes the returned window
type Paging struct {
	Limit   int  `json:"limit" doc:"Requested page size"`
	Offset  int  `json:"offset" doc:"Number of skipped articles"`
	Count   int  `json:"count" doc:"Number of articles returned"`
	HasMore bool `json:"hasMore" doc:"Whether another page is likely available"`
}

// ArticleListResponse is the listing payload
type ArticleListResponse struct {
	Articles []ArticleSummary `json:"articles" doc:"Newest articles first"`
	Paging   Paging           `json:"paging"`
}
