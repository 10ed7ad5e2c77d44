// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"gmn-api/api/dto/responses"
	"gmn-api/core/domain"

	"github.com/jinzhu/copier"
)

// ToReaderResponse converts a domain ReaderResponse to its DTO
func ToReaderResponse(r *domain.ReaderResponse) *responses.ReaderResponse {
	if r == nil {
		return nil
	}
	out := &responses.ReaderResponse{}
	_ = copier.Copy(out, r)
	return out
}

// ToArticleListResponse converts a domain ArticleList to its DTO. Articles is
// never nil so it always serializes as an array.
func ToArticleListResponse(list *domain.ArticleList) *responses.ArticleListResponse {
	if list == nil {
		return nil
	}
	articles := make([]responses.ArticleSummary, 0, len(list.Articles))
	for _, a := range list.Articles {
		articles = append(articles, ToArticleSummary(a))
	}
	return &responses.ArticleListResponse{
		Articles: articles,
		Paging: responses.Paging{
			Limit:   list.Paging.Limit,
			Offset:  list.Paging.Offset,
			Count:   list.Paging.Count,
			HasMore: list.Paging.HasMore,
		},
	}
}

// ToArticleSummary converts a single listed article
func ToArticleSummary(a domain.ArticleSummary) responses.ArticleSummary {
	var out responses.ArticleSummary
	_ = copier.Copy(&out, &a)
	return out
}
