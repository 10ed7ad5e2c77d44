// ABOUTME: Request DTOs for the article listing endpoint
// ABOUTME: Binds limit and offset query parameters

package requests

// ListArticlesRequest is the input of GET /api/articles
type ListArticlesRequest struct {
	Limit  int `query:"limit" minimum:"0" example:"20" doc:"Page size, 0 selects the default"`
	Offset int `query:"offset" minimum:"0" example:"0" doc:"Number of articles to skip"`
}
