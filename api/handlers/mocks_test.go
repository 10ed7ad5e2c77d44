package handlers

import (
	"context"
	"testing"

	gmnapi "gmn-api/api"
	"gmn-api/core/domain"

	"github.com/danielgtaylor/huma/v2/humatest"
)

type mockReaderService struct {
	readFunc func(ctx context.Context, url string) (*domain.ReaderResponse, error)
	calls    int
}

func (m *mockReaderService) Read(ctx context.Context, url string) (*domain.ReaderResponse, error) {
	m.calls++
	if m.readFunc != nil {
		return m.readFunc(ctx, url)
	}
	return nil, nil
}

type mockArticleService struct {
	listFunc func(ctx context.Context, limit, offset int) (*domain.ArticleList, error)
}

func (m *mockArticleService) List(ctx context.Context, limit, offset int) (*domain.ArticleList, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit, offset)
	}
	return &domain.ArticleList{}, nil
}

func newTestAPI(t *testing.T) humatest.TestAPI {
	_, api := humatest.New(t, gmnapi.NewConfig())
	return api
}

func strPtr(s string) *string { return &s }
