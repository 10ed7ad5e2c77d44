package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoverMiddleware_ConvertsPanicTo500(t *testing.T) {
	logger := &MockLogger{}
	handler := RecoverMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/article", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
	assert.Len(t, logger.logs, 1)
	assert.Equal(t, "ERROR", logger.logs[0].Level)
	assert.Equal(t, "boom", logger.logs[0].Fields["panic"])
}

func TestRecoverMiddleware_PassesThrough(t *testing.T) {
	logger := &MockLogger{}
	handler := RecoverMiddleware(logger)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, logger.logs)
}
