package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/terraincognita07/brygady/internal/api"
	"github.com/terraincognita07/brygady/internal/config"
	"github.com/terraincognita07/brygady/internal/db"
	"github.com/terraincognita07/brygady/internal/i18n"
)

func TestCSRFMiddlewareConfigUsesCookieSecureFlag(t *testing.T) {
	secureConfig := csrfMiddlewareConfig(true)
	if !secureConfig.CookieSecure {
		t.Fatal("expected csrf cookie secure flag to be enabled")
	}
	if secureConfig.CookieName != "brygady_csrf" {
		t.Fatalf("expected csrf cookie name brygady_csrf, got %q", secureConfig.CookieName)
	}
	if secureConfig.KeyLookup != "form:csrf_token" {
		t.Fatalf("expected csrf key lookup form:csrf_token, got %q", secureConfig.KeyLookup)
	}
	if secureConfig.ContextKey != "csrf" {
		t.Fatalf("expected csrf context key csrf, got %q", secureConfig.ContextKey)
	}

	insecureConfig := csrfMiddlewareConfig(false)
	if insecureConfig.CookieSecure {
		t.Fatal("expected csrf cookie secure flag to be disabled")
	}
}

func TestSplitCommandDefaultsToServe(t *testing.T) {
	cases := []struct {
		args        []string
		wantCommand string
		wantArgs    int
	}{
		{args: nil, wantCommand: "serve", wantArgs: 0},
		{args: []string{"-v"}, wantCommand: "serve", wantArgs: 1},
		{args: []string{"serve"}, wantCommand: "serve", wantArgs: 0},
		{args: []string{"create-user", "-username", "adam"}, wantCommand: "create-user", wantArgs: 2},
	}
	for _, tc := range cases {
		command, rest := splitCommand(tc.args)
		if command != tc.wantCommand || len(rest) != tc.wantArgs {
			t.Fatalf("splitCommand(%v) = %q %v, want %q with %d args", tc.args, command, rest, tc.wantCommand, tc.wantArgs)
		}
	}
}

func newTestServerApp(t *testing.T) *fiber.App {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}
	rootDir := filepath.Dir(filepath.Dir(filepath.Dir(testFile)))

	cfg := &config.Config{
		SecretKey: "0123456789abcdef0123456789abcdef",
		Paths: config.PathConfig{
			Templates: filepath.Join(rootDir, "internal", "templates"),
			Locales:   filepath.Join(rootDir, "internal", "i18n", "locales"),
			Static:    filepath.Join(rootDir, "web", "static"),
		},
	}

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "brygady-main-test.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	i18nManager, err := i18n.NewManager("pl", cfg.Paths.Locales)
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}
	handler, err := api.NewHandler(database, cfg.SecretKey, cfg.Paths.Templates, time.UTC, i18nManager, false, zerolog.Nop())
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	return newApp(handler, cfg, zerolog.Nop())
}

func TestAppExposesMetricsAndStaticFiles(t *testing.T) {
	app := newTestServerApp(t)

	if _, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil), -1); err != nil {
		t.Fatalf("healthz request failed: %v", err)
	}

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	if err != nil {
		t.Fatalf("metrics request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected metrics status 200, got %d", response.StatusCode)
	}
	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read metrics body: %v", err)
	}
	if !strings.Contains(string(body), "brygady_http_requests_total") {
		t.Fatal("expected application metrics in /metrics output")
	}

	staticResponse, err := app.Test(httptest.NewRequest(http.MethodGet, "/static/css/app.css", nil), -1)
	if err != nil {
		t.Fatalf("static request failed: %v", err)
	}
	defer staticResponse.Body.Close()
	if staticResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected static status 200, got %d", staticResponse.StatusCode)
	}
}

func TestAppRejectsLoginWithoutCSRFToken(t *testing.T) {
	app := newTestServerApp(t)

	form := url.Values{"username": {"adam"}, "password": {"whatever"}}
	request := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected csrf rejection 403, got %d", response.StatusCode)
	}
}

func TestLoginPageCarriesCSRFToken(t *testing.T) {
	app := newTestServerApp(t)

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/login", nil), -1)
	if err != nil {
		t.Fatalf("login page request failed: %v", err)
	}
	defer response.Body.Close()
	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read login page: %v", err)
	}
	if strings.Contains(string(body), `name="csrf_token" value=""`) {
		t.Fatal("expected login form to carry a csrf token")
	}
	if !strings.Contains(string(body), `name="csrf_token"`) {
		t.Fatal("expected csrf field in login form")
	}
}
