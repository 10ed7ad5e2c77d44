// ABOUTME: Service layer for the article listing proxy
// ABOUTME: Forwards bounded requests upstream and attaches paging metadata

package articles

import (
	"context"

	"gmn-api/core/domain"
	"gmn-api/core/interfaces"
)

// Service implements interfaces.ArticleService
type Service struct {
	source interfaces.ArticleSource
	logger interfaces.Logger
	bounds Bounds
}

var _ interfaces.ArticleService = (*Service)(nil)

// NewService creates a listing service over source
func NewService(source interfaces.ArticleSource, logger interfaces.Logger, bounds Bounds) *Service {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	if bounds.DefaultLimit <= 0 {
		bounds.DefaultLimit = DefaultLimit
	}
	if bounds.MaxLimit <= 0 {
		bounds.MaxLimit = MaxLimit
	}
	if bounds.DefaultLimit > bounds.MaxLimit {
		bounds.DefaultLimit = bounds.MaxLimit
	}
	return &Service{source: source, logger: logger, bounds: bounds}
}

// List returns one page of recent articles
func (s *Service) List(ctx context.Context, limit, offset int) (*domain.ArticleList, error) {
	limit, offset, err := s.bounds.Normalize(limit, offset)
	if err != nil {
		return nil, err
	}

	page, err := s.source.FetchArticles(ctx, limit, offset)
	if err != nil {
		s.logger.Error("Failed to fetch article listing", map[string]interface{}{
			"limit":  limit,
			"offset": offset,
			"error":  err.Error(),
		})
		return nil, err
	}

	articles := page.Articles
	if articles == nil {
		articles = []domain.ArticleSummary{}
	}
	// Some upstreams ignore limit; never return more than was asked for
	if len(articles) > limit {
		articles = articles[:limit]
	}

	count := len(articles)
	return &domain.ArticleList{
		Articles: articles,
		Paging: domain.Paging{
			Limit:   limit,
			Offset:  offset,
			Count:   count,
			HasMore: HasMore(limit, offset, count, page.Total),
		},
	}, nil
}
