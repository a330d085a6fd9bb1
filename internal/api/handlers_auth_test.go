package api

import (
	"net/http"
	"testing"
)

func TestSignupReturnsTokenAndSanitizedUser(t *testing.T) {
	app, _ := newTestApp(t)

	response := doJSONRequest(t, app, http.MethodPost, "/api/auth/signup", map[string]string{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "StrongPass1",
	}, "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected signup status 200, got %d", response.StatusCode)
	}

	var payload struct {
		Token string `json:"token"`
		User  struct {
			ID           uint   `json:"id"`
			Name         string `json:"name"`
			Email        string `json:"email"`
			PasswordHash string `json:"passwordHash"`
		} `json:"user"`
	}
	decodeJSONBody(t, response, &payload)

	if payload.Token == "" {
		t.Fatal("expected a token")
	}
	if payload.User.ID == 0 || payload.User.Email != "ada@example.com" {
		t.Fatalf("unexpected user payload: %+v", payload.User)
	}
	if payload.User.PasswordHash != "" {
		t.Fatal("expected password hash to be omitted from the response")
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	app, _ := newTestApp(t)
	signupTestUser(t, app, "Ada", "ada@example.com")

	response := doJSONRequest(t, app, http.MethodPost, "/api/auth/signup", map[string]string{
		"name":     "Imposter",
		"email":    "ADA@example.com",
		"password": "OtherPass1",
	}, "")
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected duplicate signup status 400, got %d", response.StatusCode)
	}
	if message := readErrorMessage(t, response); message != "Email already registered" {
		t.Fatalf("unexpected error message %q", message)
	}
}

func TestLoginAcceptsValidAndRejectsInvalidCredentials(t *testing.T) {
	app, _ := newTestApp(t)
	signupTestUser(t, app, "Ada", "ada@example.com")

	response := doJSONRequest(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "Ada@Example.com",
		"password": "StrongPass1",
	}, "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected login status 200, got %d", response.StatusCode)
	}
	var payload struct {
		Token string `json:"token"`
	}
	decodeJSONBody(t, response, &payload)
	if payload.Token == "" {
		t.Fatal("expected login to return a token")
	}

	response = doJSONRequest(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "ada@example.com",
		"password": "wrong-password",
	}, "")
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected failed login status 400, got %d", response.StatusCode)
	}
	if message := readErrorMessage(t, response); message != "Invalid credentials" {
		t.Fatalf("unexpected error message %q", message)
	}
}

func TestCycleRoutesRequireBearerToken(t *testing.T) {
	app, _ := newTestApp(t)

	paths := []struct {
		method string
		path   string
	}{
		{method: http.MethodGet, path: "/api/cycles"},
		{method: http.MethodPost, path: "/api/cycles"},
		{method: http.MethodPut, path: "/api/cycles/1"},
		{method: http.MethodDelete, path: "/api/cycles/1"},
	}

	for _, route := range paths {
		response := doJSONRequest(t, app, route.method, route.path, nil, "")
		if response.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected %s %s without token to return 401, got %d", route.method, route.path, response.StatusCode)
		}
		if message := readErrorMessage(t, response); message != "unauthorized" {
			t.Fatalf("unexpected error message %q", message)
		}
	}
}

func TestCycleRoutesRejectTamperedToken(t *testing.T) {
	app, _ := newTestApp(t)
	token := signupTestUser(t, app, "Ada", "ada@example.com")

	response := doJSONRequest(t, app, http.MethodGet, "/api/cycles", nil, token+"tampered")
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected tampered token to return 401, got %d", response.StatusCode)
	}
}
