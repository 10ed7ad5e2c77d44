// ABOUTME: Request DTOs for the reader endpoint
// ABOUTME: Binds the article URL query parameter

package requests

// ArticleRequest is the input of GET /api/article. URL is not marked required
// so that its absence produces the service error shape rather than a schema error.
type ArticleRequest struct {
	URL string `query:"url" example:"https://www.gamespot.com/articles/example/1100-6500000/" doc:"Absolute URL of an article on an allowed domain"`
}
