// ABOUTME: Reader handler for the Huma API
// ABOUTME: Provides the endpoint that returns clean, sanitized content for one article URL

package handlers

import (
	"context"
	"net/http"
	"strings"

	"gmn-api/api/dto/mappers"
	"gmn-api/api/dto/requests"
	"gmn-api/api/dto/responses"
	"gmn-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// ReaderHandler handles single-article extraction requests
type ReaderHandler struct {
	readerService interfaces.ReaderService
}

// NewReaderHandler creates a new reader handler
func NewReaderHandler(readerService interfaces.ReaderService) *ReaderHandler {
	return &ReaderHandler{
		readerService: readerService,
	}
}

// RegisterRoutes registers all reader-related routes
func (h *ReaderHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getArticle",
		Method:      http.MethodGet,
		Path:        "/api/article",
		Summary:     "Extract a readable article",
		Description: "Fetches an article from an allowed domain and returns its main content as sanitized HTML",
		Tags:        []string{"Reader"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.GetArticle)
}

// GetArticleOutput defines the output for the GetArticle operation
type GetArticleOutput struct {
	Body *responses.ReaderResponse
}

// GetArticle handles reader extraction
func (h *ReaderHandler) GetArticle(ctx context.Context, input *requests.ArticleRequest) (*GetArticleOutput, error) {
	articleURL := strings.TrimSpace(input.URL)
	if articleURL == "" {
		return nil, huma.Error400BadRequest("Missing url param")
	}

	article, err := h.readerService.Read(ctx, articleURL)
	if err != nil {
		return nil, toReaderError(err)
	}

	return &GetArticleOutput{
		Body: mappers.ToReaderResponse(article),
	}, nil
}
