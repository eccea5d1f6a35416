package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tradetracker/stats-backend/internal/config"
	"github.com/tradetracker/stats-backend/internal/service"
	"github.com/tradetracker/stats-backend/internal/testutil"
)

func setupRouter(t *testing.T) http.Handler {
	t.Helper()

	db := testutil.SetupTestDB(t)
	testutil.NewTransaction().WithUser("A").Sell(100).Build(t, db)
	testutil.NewTransaction().Riven("Kuva Karak Crita").Sell(200).Build(t, db)

	cfg := &config.Config{
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost"}},
	}

	return NewRouter(service.NewSystemService(db), testutil.NewTestStatsService(t, db), cfg)
}

func TestRouter_Routes(t *testing.T) {
	router := setupRouter(t)

	cases := []struct {
		path     string
		expected int
	}{
		{"/stats/users", http.StatusOK},
		{"/stats/rivens", http.StatusOK},
		{"/health", http.StatusOK},
		// Paths are case-sensitive and exact
		{"/stats/Users", http.StatusNotFound},
		{"/stats", http.StatusNotFound},
		{"/", http.StatusNotFound},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != tc.expected {
			t.Errorf("GET %s: expected %d, got %d", tc.path, tc.expected, w.Code)
		}
	}
}

func TestRouter_ContentType(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/stats/users", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if got := w.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Expected application/json, got %q", got)
	}
}
