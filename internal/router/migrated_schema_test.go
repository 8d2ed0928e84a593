package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"fintrack/internal/database"
	"fintrack/internal/middleware"
)

// setupMigratedApp runs the full stack on a SQLite file whose schema comes
// from the embedded SQL migrations, the same path cmd/api takes.
func setupMigratedApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &database.Config{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "finance.db"),
	}
	manager, err := database.NewManager(cfg)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = manager.Close() })

	if err := manager.RunMigrations(); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return newTestApp(manager.DB())
}

func TestMigratedSchemaFlow(t *testing.T) {
	app := setupMigratedApp(t)

	token := app.register(t, "alice", "secret1")

	t.Run("duplicate registration", func(t *testing.T) {
		body := `{"username":"alice","email":"other@example.com","password":"secret1"}`
		rec := app.request(http.MethodPost, "/register", body, "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d %s", rec.Code, rec.Body.String())
		}
		if code := errorCode(parseJSON(t, rec)); code != "DUPLICATE_USER" {
			t.Errorf("expected DUPLICATE_USER, got %s", code)
		}
		var count int64
		app.DB.Table("users").Count(&count)
		if count != 1 {
			t.Errorf("expected 1 user, got %d", count)
		}
	})

	food := app.categoryID(t, token, "Food & Dining")
	income := app.categoryID(t, token, "Income")

	add := func(categoryID float64, amount, txType, date string) {
		t.Helper()
		body := fmt.Sprintf(`{"category_id":%d,"amount":%q,"description":"entry","transaction_type":%q,"date":%q}`,
			int(categoryID), amount, txType, date)
		rec := app.request(http.MethodPost, "/add_transaction", body, token)
		if rec.Code != http.StatusOK {
			t.Fatalf("add transaction failed: %d %s", rec.Code, rec.Body.String())
		}
	}
	add(food, "42.50", "expense", "2024-03-15")
	add(food, "7.50", "expense", "2024-03-31")
	add(income, "3000", "income", "2024-03-01")
	add(food, "10", "expense", "2024-04-01")

	t.Run("monthly summary", func(t *testing.T) {
		result := parseJSON(t, app.request(http.MethodGet, "/api/monthly_summary/2024/3", "", token))
		if result["income"] != 3000.0 || result["expenses"] != 50.0 || result["balance"] != 2950.0 {
			t.Errorf("unexpected summary: %v", result)
		}
	})

	t.Run("spending by category", func(t *testing.T) {
		rec := app.request(http.MethodGet, "/api/spending_by_category?start_date=2024-03-01&end_date=2024-03-31", "", token)
		var rows []map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
			t.Fatalf("failed to parse: %v", err)
		}
		if len(rows) != 1 || rows[0]["total_amount"] != 50.0 {
			t.Errorf("unexpected spending: %s", rec.Body.String())
		}
	})

	t.Run("trend", func(t *testing.T) {
		rec := app.request(http.MethodGet, "/api/monthly_trend?months=2&year=2024&month=4", "", token)
		var points []map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &points); err != nil {
			t.Fatalf("failed to parse: %v", err)
		}
		if len(points) != 2 {
			t.Fatalf("expected 2 points, got %s", rec.Body.String())
		}
		april := points[1]["summary"].(map[string]interface{})
		if april["expenses"] != 10.0 {
			t.Errorf("unexpected April summary: %v", april)
		}
	})

	t.Run("budget upsert", func(t *testing.T) {
		set := func(amount string) map[string]interface{} {
			t.Helper()
			body := fmt.Sprintf(`{"category_id":%d,"amount":%q,"month_year":"2024-03"}`, int(food), amount)
			rec := app.request(http.MethodPost, "/api/budgets", body, token)
			if rec.Code != http.StatusOK {
				t.Fatalf("set budget failed: %d %s", rec.Code, rec.Body.String())
			}
			return parseJSON(t, rec)
		}
		first := set("100")
		second := set("200")
		if first["id"] != second["id"] {
			t.Errorf("expected the budget to be updated in place, got ids %v and %v", first["id"], second["id"])
		}
		if second["amount_cents"] != 20000.0 {
			t.Errorf("expected amount_cents 20000, got %v", second["amount_cents"])
		}

		var count int64
		app.DB.Table("budgets").Count(&count)
		if count != 1 {
			t.Errorf("expected 1 budget row, got %d", count)
		}

		rec := app.request(http.MethodGet, "/api/budgets/2024/3", "", token)
		var statuses []map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &statuses); err != nil {
			t.Fatalf("failed to parse: %v", err)
		}
		if len(statuses) != 1 || statuses[0]["spent"] != 50.0 || statuses[0]["remaining"] != 150.0 {
			t.Errorf("unexpected budgets: %s", rec.Body.String())
		}
	})
}

func TestRevokedCookieWithValidBearer(t *testing.T) {
	app := setupMigratedApp(t)

	stale := app.register(t, "alice", "secret1")
	fresh := app.login(t, "alice", "secret1")

	rec := app.request(http.MethodGet, "/logout", "", stale)
	if rec.Code != http.StatusFound {
		t.Fatalf("expected logout redirect, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: stale})
	req.Header.Set("Authorization", "Bearer "+fresh)
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with a valid bearer token, got %d %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: stale})
	w = httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with only the revoked cookie, got %d", w.Code)
	}
}
