package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"gmn-api/core/domain"
	coreerrors "gmn-api/core/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListArticles_Success(t *testing.T) {
	var gotLimit, gotOffset int
	svc := &mockArticleService{listFunc: func(ctx context.Context, limit, offset int) (*domain.ArticleList, error) {
		gotLimit, gotOffset = limit, offset
		return &domain.ArticleList{
			Articles: []domain.ArticleSummary{{
				Title: strPtr("News"),
				Link:  strPtr("https://www.gamespot.com/articles/news/"),
				Date:  strPtr("2024-03-05"),
			}},
			Paging: domain.Paging{Limit: 1, Offset: 10, Count: 1, HasMore: true},
		}, nil
	}}
	api := newTestAPI(t)
	NewArticlesHandler(svc).RegisterRoutes(api)

	resp := api.Get("/api/articles?limit=1&offset=10")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 1, gotLimit)
	assert.Equal(t, 10, gotOffset)
	assert.JSONEq(t, `{
		"articles": [{"title": "News", "link": "https://www.gamespot.com/articles/news/", "date": "2024-03-05", "deck": null, "image": null}],
		"paging": {"limit": 1, "offset": 10, "count": 1, "hasMore": true}
	}`, resp.Body.String())
}

func TestListArticles_DefaultsToZero(t *testing.T) {
	gotLimit, gotOffset := -1, -1
	svc := &mockArticleService{listFunc: func(ctx context.Context, limit, offset int) (*domain.ArticleList, error) {
		gotLimit, gotOffset = limit, offset
		return &domain.ArticleList{Paging: domain.Paging{Limit: 20}}, nil
	}}
	api := newTestAPI(t)
	NewArticlesHandler(svc).RegisterRoutes(api)

	resp := api.Get("/api/articles")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 0, gotLimit, "service applies the default")
	assert.Equal(t, 0, gotOffset)
	assert.Contains(t, resp.Body.String(), `"articles":[]`)
}

func TestListArticles_RejectsBadQuery(t *testing.T) {
	for _, path := range []string{"/api/articles?limit=-1", "/api/articles?offset=-3", "/api/articles?limit=abc"} {
		t.Run(path, func(t *testing.T) {
			called := false
			svc := &mockArticleService{listFunc: func(ctx context.Context, limit, offset int) (*domain.ArticleList, error) {
				called = true
				return &domain.ArticleList{}, nil
			}}
			api := newTestAPI(t)
			NewArticlesHandler(svc).RegisterRoutes(api)

			resp := api.Get(path)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.False(t, called)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Contains(t, body, "error")
			assert.Len(t, body, 1)
		})
	}
}

func TestListArticles_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"limit out of range", &coreerrors.ValidationError{Field: "limit", Message: "must be between 1 and 100"}, http.StatusBadRequest, "Invalid limit param: must be between 1 and 100"},
		{"upstream failure", &coreerrors.ExternalAPIError{API: "gamespot", StatusCode: 502}, http.StatusInternalServerError, "Failed to fetch"},
		{"unexpected", assert.AnError, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockArticleService{listFunc: func(ctx context.Context, limit, offset int) (*domain.ArticleList, error) {
				return nil, tt.err
			}}
			api := newTestAPI(t)
			NewArticlesHandler(svc).RegisterRoutes(api)

			resp := api.Get("/api/articles?limit=500")

			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.JSONEq(t, `{"error":"`+tt.wantMsg+`"}`, resp.Body.String())
		})
	}
}
