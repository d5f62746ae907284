package auth_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/jobtracker/pkg/auth"
)

func TestMiddleware(t *testing.T) {
	issuer := newIssuer(t, testConfig())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var called bool
	var got auth.Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		got, _ = auth.PrincipalFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	h := auth.Middleware(auth.NewExtractor(issuer), logger)(next)

	t.Run("rejects before handler", func(t *testing.T) {
		called = false
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/applications", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body["error"], "unauthorized")
	})

	t.Run("stores principal", func(t *testing.T) {
		userID := uuid.New()
		token, err := issuer.Issue(userID, "a@x.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/applications", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)
		assert.Equal(t, userID, got.UserID)
	})
}

func TestPrincipalFromEmptyContext(t *testing.T) {
	_, ok := auth.PrincipalFrom(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}
