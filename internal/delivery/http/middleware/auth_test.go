package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"translationhub/internal/delivery/http/helpers"
	"translationhub/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeTokenVerifier implements domain.TokenVerifier for tests.
type fakeTokenVerifier struct {
	principal *domain.Principal
	err       error
	gotToken  string
}

func (f *fakeTokenVerifier) Verify(_ context.Context, token string) (*domain.Principal, error) {
	f.gotToken = token
	if f.err != nil {
		return nil, f.err
	}
	return f.principal, nil
}

func TestRequireAuth(t *testing.T) {
	principal := &domain.Principal{UserID: 7, TokenID: "tok-1"}

	tests := []struct {
		name          string
		authHeader    string
		verifier      *fakeTokenVerifier
		wantStatus    int
		nextCalled    bool
		wantTokenSeen string
	}{
		{
			name:          "valid token sets principal and calls next",
			authHeader:    "Bearer valid-token",
			verifier:      &fakeTokenVerifier{principal: principal},
			wantStatus:    http.StatusOK,
			nextCalled:    true,
			wantTokenSeen: "valid-token",
		},
		{
			name:          "scheme is case-insensitive",
			authHeader:    "bearer valid-token",
			verifier:      &fakeTokenVerifier{principal: principal},
			wantStatus:    http.StatusOK,
			nextCalled:    true,
			wantTokenSeen: "valid-token",
		},
		{
			name:       "missing authorization header",
			verifier:   &fakeTokenVerifier{principal: principal},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "basic scheme",
			authHeader: "Basic abc",
			verifier:   &fakeTokenVerifier{principal: principal},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty token after Bearer",
			authHeader: "Bearer   ",
			verifier:   &fakeTokenVerifier{principal: principal},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:          "revoked token",
			authHeader:    "Bearer revoked",
			verifier:      &fakeTokenVerifier{err: fmt.Errorf("token revoked: %w", domain.ErrUnauthorized)},
			wantStatus:    http.StatusUnauthorized,
			wantTokenSeen: "revoked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var captured *domain.Principal
			next := func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				captured, _ = PrincipalFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}
			handler := RequireAuth(tt.verifier, testLogger)(next)

			req := httptest.NewRequest(http.MethodGet, "http://test/api/translations", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			handler(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			assert.Equal(t, tt.wantTokenSeen, tt.verifier.gotToken)
			if tt.nextCalled {
				assert.Equal(t, principal, captured)
				return
			}
			var envelope helpers.ErrorResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			require.NotNil(t, envelope.Error)
			assert.Equal(t, helpers.ErrCodeUnauthorized, envelope.Error.Code)
		})
	}
}

func TestPrincipalFromContext_Missing(t *testing.T) {
	_, ok := PrincipalFromContext(context.Background())
	assert.False(t, ok)
}
