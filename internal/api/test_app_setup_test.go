package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/mirelleva/lunara/internal/db"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "lunara-api-test.db")
	database, err := db.OpenSQLite(databasePath)
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

	handler := NewHandler(database, "test-secret-key")

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func doJSONRequest(t *testing.T, app *fiber.App, method string, path string, body any, token string) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()

	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func signupTestUser(t *testing.T, app *fiber.App, name string, email string) string {
	t.Helper()

	response := doJSONRequest(t, app, http.MethodPost, "/api/auth/signup", map[string]string{
		"name":     name,
		"email":    email,
		"password": "StrongPass1",
	}, "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected signup status 200, got %d", response.StatusCode)
	}

	var payload struct {
		Token string `json:"token"`
	}
	decodeJSONBody(t, response, &payload)
	if payload.Token == "" {
		t.Fatal("expected signup to return a token")
	}
	return payload.Token
}

type cyclePayload struct {
	ID                    uint   `json:"id"`
	OwnerID               uint   `json:"ownerId"`
	StartDate             string `json:"startDate"`
	EndDate               string `json:"endDate"`
	PeriodDurationDays    int    `json:"periodDurationDays"`
	GapSincePrevStartDays *int   `json:"gapSincePrevStartDays"`
	CreatedAt             string `json:"createdAt"`
	UpdatedAt             string `json:"updatedAt"`
}

func createTestCycle(t *testing.T, app *fiber.App, token string, startDate string, endDate string) cyclePayload {
	t.Helper()

	response := doJSONRequest(t, app, http.MethodPost, "/api/cycles", map[string]string{
		"startDate": startDate,
		"endDate":   endDate,
	}, token)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected create status 200, got %d", response.StatusCode)
	}

	var payload struct {
		Cycle cyclePayload `json:"cycle"`
	}
	decodeJSONBody(t, response, &payload)
	if payload.Cycle.ID == 0 {
		t.Fatal("expected store-assigned id on created cycle")
	}
	return payload.Cycle
}

func listTestCycles(t *testing.T, app *fiber.App, token string) []cyclePayload {
	t.Helper()

	response := doJSONRequest(t, app, http.MethodGet, "/api/cycles", nil, token)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected list status 200, got %d", response.StatusCode)
	}

	var payload struct {
		Cycles []cyclePayload `json:"cycles"`
	}
	decodeJSONBody(t, response, &payload)
	return payload.Cycles
}

func readErrorMessage(t *testing.T, response *http.Response) string {
	t.Helper()

	var payload struct {
		Error string `json:"error"`
	}
	decodeJSONBody(t, response, &payload)
	return payload.Error
}
