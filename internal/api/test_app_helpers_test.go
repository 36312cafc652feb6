package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/shecare/internal/db"
	"github.com/terraincognita07/shecare/internal/services"
	"gorm.io/gorm"
)

const testSecretKey = "test-secret-key-with-at-least-32-chars"

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	return newTestAppAt(t, func() time.Time { return testNow })
}

func newTestAppAt(t *testing.T, now func() time.Time) (*fiber.App, *gorm.DB) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "shecare-api-test.db"), nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	riskModels, err := services.DefaultRiskModels()
	if err != nil {
		t.Fatalf("load risk models: %v", err)
	}
	nutrition, err := services.DefaultNutritionCatalog()
	if err != nil {
		t.Fatalf("load nutrition catalog: %v", err)
	}

	handler, err := NewHandler(database, HandlerConfig{
		SecretKey:  testSecretKey,
		Location:   time.UTC,
		Now:        now,
		RiskModels: riskModels,
		Nutrition:  nutrition,
	})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func expectStatus(t *testing.T, response *http.Response, expected int) {
	t.Helper()
	if response.StatusCode != expected {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d: %s", expected, response.StatusCode, string(body))
	}
}

func decodeJSON[T any](t *testing.T, response *http.Response) T {
	t.Helper()

	var payload T
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload
}

func readAPIError(t *testing.T, response *http.Response) string {
	t.Helper()
	return decodeJSON[map[string]string](t, response)["error"]
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func registerTestUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":     "Test User",
		"email":    email,
		"password": "StrongPass1",
	})
	expectStatus(t, response, http.StatusCreated)

	session := decodeJSON[sessionView](t, response)
	if session.Token == "" {
		t.Fatal("expected session token in register response")
	}
	return session.Token
}

func logTestPeriod(t *testing.T, app *fiber.App, token string, payload fiber.Map) map[string]any {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/periods", token, payload)
	expectStatus(t, response, http.StatusCreated)
	return decodeJSON[map[string]any](t, response)
}
