package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gmn-api/api/handlers"
	"gmn-api/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReader struct{}

func (stubReader) Read(ctx context.Context, url string) (*domain.ReaderResponse, error) {
	panic("reader exploded")
}

func TestNewAPI_HasCorrectInfo(t *testing.T) {
	api, router := NewAPI(APIConfig{})

	require.NotNil(t, router)
	info := api.OpenAPI().Info
	assert.Equal(t, "GMN API", info.Title)
	assert.Equal(t, "1.0.0", info.Version)
}

func TestAPI_OpenAPIEndpoint(t *testing.T) {
	_, router := NewAPI(APIConfig{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/openapi.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.oai.openapi+json", rec.Header().Get("Content-Type"))
}

func TestAPI_CORS(t *testing.T) {
	_, router := NewAPI(APIConfig{AllowedOrigins: []string{"https://gmn.news"}})

	req := httptest.NewRequest("GET", "/openapi.json", nil)
	req.Header.Set("Origin", "https://gmn.news")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "https://gmn.news", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAPI_RequestIDHeader(t *testing.T) {
	_, router := NewAPI(APIConfig{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/openapi.json", nil))

	assert.Len(t, rec.Header().Get("X-Request-ID"), 36)
}

func TestAPI_RateLimited(t *testing.T) {
	_, router := NewAPI(APIConfig{RateLimit: 1, RateWindow: time.Minute})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest("GET", "/openapi.json", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest("GET", "/openapi.json", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.JSONEq(t, `{"error":"Too many requests"}`, second.Body.String())
}

func TestAPI_PanicBecomesJSON500(t *testing.T) {
	api, router := NewAPI(APIConfig{})
	handlers.NewReaderHandler(stubReader{}).RegisterRoutes(api)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/article?url=https://www.gamespot.com/x/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestAPI_StaticFrontEnd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "partials"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "partials", "header.html"), []byte("<header>GMN</header>"), 0o644))

	_, router := NewAPI(APIConfig{StaticDir: dir})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/partials/header.html", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<header>GMN</header>", rec.Body.String())

	// API routes still win over the catch-all
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/openapi.json", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
