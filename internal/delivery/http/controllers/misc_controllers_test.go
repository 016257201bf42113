package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"translationhub/internal/domain"
)

func TestExportController_Export(t *testing.T) {
	t.Run("serves cached bytes with cache headers", func(t *testing.T) {
		body := []byte(`{"auth.login":{"id":1,"content":"Log in"}}`)
		svc := &fakeExportService{body: body}
		c := NewExportController(testLogger, svc)

		req := httptest.NewRequest(http.MethodGet, "/api/export/en?tag=web", nil)
		rr := serve("GET /api/export/{locale}", c.Export, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "public, max-age=60", rr.Header().Get("Cache-Control"))
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.Equal(t, body, rr.Body.Bytes())
		assert.Equal(t, "en", svc.lastLocale)
		assert.Equal(t, "web", svc.lastTag)
	})

	t.Run("failure", func(t *testing.T) {
		svc := &fakeExportService{err: errors.New("db down")}
		c := NewExportController(testLogger, svc)

		rr := serve("GET /api/export/{locale}", c.Export, httptest.NewRequest(http.MethodGet, "/api/export/en", nil))

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Empty(t, rr.Header().Get("Cache-Control"))
	})
}

func TestLocaleController_Index(t *testing.T) {
	t.Run("lists", func(t *testing.T) {
		svc := &fakeLocaleService{locales: []*domain.Locale{{ID: 1, Code: "en", Name: "English"}}}
		c := NewLocaleController(testLogger, svc)

		rr := serve("GET /api/locales", c.Index, httptest.NewRequest(http.MethodGet, "/api/locales", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[{"id":1,"code":"en","name":"English"}]`, rr.Body.String())
	})

	t.Run("empty is an array", func(t *testing.T) {
		c := NewLocaleController(testLogger, &fakeLocaleService{})

		rr := serve("GET /api/locales", c.Index, httptest.NewRequest(http.MethodGet, "/api/locales", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})
}

func TestHealthController_Health(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantState  string
	}{
		{"database up", nil, http.StatusOK, "ok"},
		{"database down", errors.New("connection refused"), http.StatusServiceUnavailable, "unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewHealthController(testLogger, fakePinger{err: tt.pingErr})

			rr := serve("GET /api/health", c.Health, httptest.NewRequest(http.MethodGet, "/api/health", nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			var body HealthResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, tt.wantState, body.Status)
		})
	}
}
