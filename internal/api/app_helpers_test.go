package api

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
	"github.com/terraincognita07/brygady/internal/db"
	"github.com/terraincognita07/brygady/internal/i18n"
	"github.com/terraincognita07/brygady/internal/models"
	"github.com/terraincognita07/brygady/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testPassword = "Sekret-Haslo-1"

type testFixture struct {
	app        *fiber.App
	database   *gorm.DB
	repos      *db.Repositories
	brigade    models.Brigade
	jan        models.Worker
	piotr      models.Worker
	outsider   models.Worker
	foreman    models.User
	szef       models.User
	unassigned models.User
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}

	apiDir := filepath.Dir(testFile)
	internalDir := filepath.Dir(apiDir)
	templatesDir := filepath.Join(internalDir, "templates")
	localesDir := filepath.Join(internalDir, "i18n", "locales")
	databasePath := filepath.Join(t.TempDir(), "brygady-api-test.db")

	database, err := db.OpenSQLite(databasePath, zerolog.Nop())
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

	i18nManager, err := i18n.NewManager("en", localesDir)
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	handler, err := NewHandler(database, "test-secret-key-with-enough-length!", templatesDir, time.UTC, i18nManager, false, zerolog.Nop())
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New(fiber.Config{ErrorHandler: NewErrorHandler(zerolog.Nop())})
	app.Use(handler.LanguageMiddleware)
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, database
}

// newTestFixture seeds brigade A with two workers, a foreign brigade with one
// worker, a foreman of A, a szef and a foreman without a brigade.
func newTestFixture(t *testing.T) *testFixture {
	t.Helper()

	app, database := newTestApp(t)
	repos := db.NewRepositories(database)
	fixture := &testFixture{app: app, database: database, repos: repos}

	brigade, err := repos.Brigades.FindOrCreateByName("Brygada A")
	if err != nil {
		t.Fatalf("create brigade: %v", err)
	}
	other, err := repos.Brigades.FindOrCreateByName("Brygada B")
	if err != nil {
		t.Fatalf("create brigade: %v", err)
	}
	fixture.brigade = brigade

	fixture.jan = models.Worker{FirstName: "Jan", LastName: "Kowalski", HourlyRate: 30}
	fixture.piotr = models.Worker{FirstName: "Piotr", LastName: "Nowak", HourlyRate: 25}
	fixture.outsider = models.Worker{FirstName: "Obcy", LastName: "Zewnętrzny", HourlyRate: 20}
	if err := repos.Brigades.AddWorker(brigade.ID, &fixture.jan); err != nil {
		t.Fatalf("add worker: %v", err)
	}
	if err := repos.Brigades.AddWorker(brigade.ID, &fixture.piotr); err != nil {
		t.Fatalf("add worker: %v", err)
	}
	if err := repos.Brigades.AddWorker(other.ID, &fixture.outsider); err != nil {
		t.Fatalf("add worker: %v", err)
	}

	brigadeID := brigade.ID
	fixture.foreman = createTestUser(t, repos, "adam", models.RoleBrygadzista, &brigadeID)
	fixture.szef = createTestUser(t, repos, "zenon", models.RoleSzef, nil)
	fixture.unassigned = createTestUser(t, repos, "ewa", models.RoleBrygadzista, nil)
	return fixture
}

func createTestUser(t *testing.T, repos *db.Repositories, username string, role models.Role, brigadeID *uint) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		BrigadeID:    brigadeID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func loginAndExtractAuthCookie(t *testing.T, app *fiber.App, username string, password string) string {
	t.Helper()

	form := url.Values{
		"username": {username},
		"password": {password},
	}
	request := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected login status 303, got %d", response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}

	t.Fatal("auth cookie is missing in login response")
	return ""
}

type testRequest struct {
	method string
	path   string
	cookie string
	form   url.Values
	htmx   bool
}

func doRequest(t *testing.T, app *fiber.App, req testRequest) (*http.Response, string) {
	t.Helper()

	var body io.Reader
	if req.form != nil {
		body = strings.NewReader(req.form.Encode())
	}
	request := httptest.NewRequest(req.method, req.path, body)
	if req.form != nil {
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if req.cookie != "" {
		request.Header.Set("Cookie", req.cookie)
	}
	if req.htmx {
		request.Header.Set("HX-Request", "true")
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", req.method, req.path, err)
	}
	defer response.Body.Close()

	content, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body failed: %v", req.method, req.path, err)
	}
	return response, string(content)
}

func storedHours(t *testing.T, repos *db.Repositories, workerID uint, day time.Time) (int, bool) {
	t.Helper()

	dayStart, dayEnd := services.DayRange(day)
	entry, found, err := repos.TimeSheets.FindByWorkerAndDayRange(workerID, dayStart, dayEnd)
	if err != nil {
		t.Fatalf("load timesheet row: %v", err)
	}
	return entry.HoursWorked, found
}

func countTimeSheets(t *testing.T, database *gorm.DB) int64 {
	t.Helper()

	var total int64
	if err := database.Model(&models.TimeSheet{}).Count(&total).Error; err != nil {
		t.Fatalf("count timesheet rows: %v", err)
	}
	return total
}
