package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zabeliqbal/langkawi-data-hub/db"
	"github.com/zabeliqbal/langkawi-data-hub/models"
)

func stubRoleLookup(t *testing.T, fn func(string) (string, error)) {
	t.Helper()
	orig := roleForAPIKey
	roleForAPIKey = fn
	t.Cleanup(func() { roleForAPIKey = orig })
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		role       string
		lookupErr  error
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "missing key",
			key:        "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown key",
			key:        "bogus",
			lookupErr:  db.ErrNotFound,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "plain user role",
			key:        "user-key",
			role:       models.RoleUser,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "lookup failure",
			key:        "any-key",
			lookupErr:  errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "admin passes",
			key:        "admin-key",
			role:       models.RoleAdmin,
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubRoleLookup(t, func(key string) (string, error) {
				assert.Equal(t, tt.key, key)
				return tt.role, tt.lookupErr
			})

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			req := httptest.NewRequest("DELETE", "/api/admin/attractions/a-1", nil)
			if tt.key != "" {
				req.Header.Set("Authorization", tt.key)
			}
			rec := httptest.NewRecorder()
			RequireAdmin(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}

func TestRateLimitBypassForValidKey(t *testing.T) {
	stubRoleLookup(t, func(string) (string, error) {
		return models.RoleUser, nil
	})
	router := NewRouter(&fakeCollector{})

	var last *httptest.ResponseRecorder
	for i := 0; i < maxRequests+5; i++ {
		req := httptest.NewRequest("GET", "/api/collector/stats", nil)
		req.RemoteAddr = "203.0.113.50:6000"
		req.Header.Set("Authorization", "some-key")
		last = httptest.NewRecorder()
		router.ServeHTTP(last, req)
	}

	assert.Equal(t, http.StatusOK, last.Code)
}

// The budget is keyed by host, so reconnecting on a new source port cannot
// reset it.
func TestRateLimitKeyedByHostNotPort(t *testing.T) {
	router := NewRouter(&fakeCollector{})

	req := httptest.NewRequest("GET", "/api/collector/stats", nil)
	req.RemoteAddr = "198.51.100.200:1111"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, "99", rec.Header().Get("X-RateLimit-Remaining"))

	req = httptest.NewRequest("GET", "/api/collector/stats", nil)
	req.RemoteAddr = "198.51.100.200:2222"
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "98", rec.Header().Get("X-RateLimit-Remaining"))
}
