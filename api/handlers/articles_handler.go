// ABOUTME: Article listing handler for the Huma API
// ABOUTME: Proxies the upstream listing with bounded limit and offset

package handlers

import (
	"context"
	"net/http"

	"gmn-api/api/dto/mappers"
	"gmn-api/api/dto/requests"
	"gmn-api/api/dto/responses"
	"gmn-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// ArticlesHandler handles article listing requests
type ArticlesHandler struct {
	articleService interfaces.ArticleService
}

// NewArticlesHandler creates a new listing handler
func NewArticlesHandler(articleService interfaces.ArticleService) *ArticlesHandler {
	return &ArticlesHandler{articleService: articleService}
}

// RegisterRoutes registers listing routes
func (h *ArticlesHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listArticles",
		Method:      http.MethodGet,
		Path:        "/api/articles",
		Summary:     "List recent articles",
		Description: "Returns the newest articles from the upstream content API. hasMore is exact when the upstream reports a total and otherwise means the page was full.",
		Tags:        []string{"Articles"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.ListArticles)
}

// ListArticlesOutput defines the output for the ListArticles operation
type ListArticlesOutput struct {
	Body *responses.ArticleListResponse
}

// ListArticles handles the listing
func (h *ArticlesHandler) ListArticles(ctx context.Context, input *requests.ListArticlesRequest) (*ListArticlesOutput, error) {
	list, err := h.articleService.List(ctx, input.Limit, input.Offset)
	if err != nil {
		return nil, toListingError(err)
	}

	return &ListArticlesOutput{
		Body: mappers.ToArticleListResponse(list),
	}, nil
}
