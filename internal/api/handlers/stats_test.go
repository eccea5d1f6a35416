package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/tradetracker/stats-backend/internal/model"
	"github.com/tradetracker/stats-backend/internal/testutil"
)

func setupStatsHandler(t *testing.T) (*StatsHandler, *sql.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	statsService := testutil.NewTestStatsService(t, db)
	return NewStatsHandler(statsService), db
}

func TestStatsHandler_UserStats(t *testing.T) {
	t.Run("returns empty array when no transactions exist", func(t *testing.T) {
		handler, _ := setupStatsHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/stats/users", nil)
		w := httptest.NewRecorder()

		handler.UserStats(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.UserStats
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response == nil {
			t.Error("Expected non-nil array, got nil")
		}
		if len(response) != 0 {
			t.Errorf("Expected empty array, got %d groups", len(response))
		}
	})

	t.Run("returns aggregated stats sorted by profit", func(t *testing.T) {
		handler, db := setupStatsHandler(t)

		testutil.NewTransaction().WithUser("A").Sell(100).WithQuantity(1).Build(t, db)
		testutil.NewTransaction().WithUser("A").Buy(40).WithQuantity(1).Build(t, db)
		testutil.NewTransaction().WithUser("B").Sell(50).WithQuantity(2).Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/stats/users", nil)
		w := httptest.NewRecorder()

		handler.UserStats(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.UserStats
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if len(response) != 2 {
			t.Fatalf("Expected 2 groups, got %d", len(response))
		}
		if response[0].User != "A" || response[0].Profit != 60 {
			t.Errorf("Expected A with profit 60 first, got %+v", response[0])
		}
		if response[1].User != "B" || response[1].Profit != 50 {
			t.Errorf("Expected B with profit 50 second, got %+v", response[1])
		}
	})

	t.Run("returns 500 with error envelope on database error", func(t *testing.T) {
		handler, db := setupStatsHandler(t)
		db.Close()

		req := httptest.NewRequest(http.MethodGet, "/stats/users", nil)
		w := httptest.NewRecorder()

		handler.UserStats(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d: %s", w.Code, w.Body.String())
		}

		var response map[string]interface{}
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if msg, ok := response["error"].(string); !ok || msg == "" {
			t.Error("Expected error message in response envelope")
		}
	})

	t.Run("serves concurrent requests independently", func(t *testing.T) {
		handler, db := setupStatsHandler(t)

		testutil.NewTransaction().WithUser("A").Sell(100).Build(t, db)
		testutil.NewTransaction().WithUser("B").Buy(25).Build(t, db)

		var g errgroup.Group
		for i := 0; i < 8; i++ {
			g.Go(func() error {
				req := httptest.NewRequest(http.MethodGet, "/stats/users", nil)
				w := httptest.NewRecorder()

				handler.UserStats(w, req)

				if w.Code != http.StatusOK {
					t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
				}

				var response []model.UserStats
				if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
					return err
				}
				if len(response) != 2 {
					t.Errorf("Expected 2 groups, got %d", len(response))
				}
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			t.Errorf("Concurrent request failed: %v", err)
		}
	})
}

func TestStatsHandler_RivenStats(t *testing.T) {
	t.Run("returns empty array when no riven transactions exist", func(t *testing.T) {
		handler, db := setupStatsHandler(t)

		testutil.NewTransaction().WithItem("item", "Forma").Sell(10).Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/stats/rivens", nil)
		w := httptest.NewRecorder()

		handler.RivenStats(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.RivenStats
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response == nil {
			t.Error("Expected non-nil array, got nil")
		}
		if len(response) != 0 {
			t.Errorf("Expected empty array, got %d groups", len(response))
		}
	})

	t.Run("returns riven stats grouped by item name", func(t *testing.T) {
		handler, db := setupStatsHandler(t)

		testutil.NewTransaction().WithUser("A").Riven("Vermisplicer Critacan").Sell(450).Build(t, db)
		testutil.NewTransaction().WithUser("B").Riven("Vermisplicer Critacan").Buy(300).Build(t, db)
		testutil.NewTransaction().WithUser("C").Riven("Kuva Karak Crita").Sell(200).Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/stats/rivens", nil)
		w := httptest.NewRecorder()

		handler.RivenStats(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.RivenStats
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if len(response) != 2 {
			t.Fatalf("Expected 2 groups, got %d", len(response))
		}
		if response[0].Item != "Kuva Karak Crita" || response[0].Profit != 200 {
			t.Errorf("Expected Kuva Karak Crita with profit 200 first, got %+v", response[0])
		}
		if response[1].Item != "Vermisplicer Critacan" || response[1].Profit != 150 {
			t.Errorf("Expected Vermisplicer Critacan with profit 150 second, got %+v", response[1])
		}
	})

	t.Run("returns 500 with error envelope on database error", func(t *testing.T) {
		handler, db := setupStatsHandler(t)
		db.Close()

		req := httptest.NewRequest(http.MethodGet, "/stats/rivens", nil)
		w := httptest.NewRecorder()

		handler.RivenStats(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d: %s", w.Code, w.Body.String())
		}
	})
}
