package integration_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/ledgerline/sitecms/internal/config"
	"github.com/ledgerline/sitecms/internal/database"
	"github.com/ledgerline/sitecms/internal/models"
	"github.com/ledgerline/sitecms/internal/server"
	"github.com/ledgerline/sitecms/internal/services"
	"github.com/ledgerline/sitecms/tests/helpers"
	"gorm.io/gorm"
)

// TestWithMariaDB runs the full app against a real MariaDB container,
// exercising the JSON column mapping and the unique blog slug index that the
// in-memory SQLite unit tests cannot prove.
func TestWithMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tc, err := helpers.CreateDBContainer(t)
	if err != nil {
		t.Fatalf("Failed to create database container: %v", err)
	}
	defer tc.Terminate(t)

	password := helpers.GeneratePassword()
	cfg := &config.Config{
		Port:              "3000",
		DBType:            "mysql",
		DBHost:            tc.DBHost,
		DBPort:            tc.DBPort,
		DBDatabase:        envOr("DB_DATABASE", "sitecms_test"),
		DBUser:            envOr("DB_USER", "sitecms"),
		DBPassword:        envOr("DB_PASSWORD", "sitecms"),
		DBConnectionLimit: 5,
		JWTSecret:         "integration-test-secret",
		AdminUsername:     "admin",
		AdminEmail:        "admin@example.com",
		AdminPassword:     password,
		UploadDir:         t.TempDir(),
	}

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	if err := services.BootstrapAdmin(db, cfg); err != nil {
		t.Fatalf("Failed to bootstrap admin: %v", err)
	}
	if err := services.SeedDefaults(db); err != nil {
		t.Fatalf("Failed to seed defaults: %v", err)
	}

	app := server.New(cfg, db)
	cookie := helpers.LoginAdmin(t, app, "admin", password)

	t.Run("SeededContentServes", func(t *testing.T) {
		testSeededContentServes(t, app)
	})
	t.Run("AuthGuardsMutations", func(t *testing.T) {
		testAuthGuardsMutations(t, app)
	})
	t.Run("BlogLifecycle", func(t *testing.T) {
		testBlogLifecycle(t, app, cookie, db)
	})
	t.Run("ContactPipeline", func(t *testing.T) {
		testContactPipeline(t, app, cookie)
	})
	t.Run("HealthEndpoint", func(t *testing.T) {
		testHealthEndpoint(t, app)
	})
}

func testSeededContentServes(t *testing.T, app *fiber.App) {
	resp, err := app.Test(httptest.NewRequest("GET", "/api/hero", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var hero models.Hero
	helpers.ParseJSON(t, resp, &hero)
	if hero.Title == "" {
		t.Error("Expected the seeded home hero to have a title")
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/api/testimonial", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)
	var testimonials []models.Testimonial
	helpers.ParseJSON(t, resp, &testimonials)
	if len(testimonials) == 0 {
		t.Error("Expected seeded testimonials")
	}
}

func testAuthGuardsMutations(t *testing.T, app *fiber.App) {
	raw, _ := json.Marshal(map[string]string{"title": "No session"})
	req := httptest.NewRequest("POST", "/api/caseStudy", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 401)
}

func testBlogLifecycle(t *testing.T, app *fiber.App, cookie *http.Cookie, db *gorm.DB) {
	create := func(title string) int {
		body, contentType := multipartForm(t, map[string]string{
			"title":     title,
			"excerpt":   "Integration excerpt",
			"content":   "Integration content",
			"tags":      `["integration"]`,
			"published": "true",
		})
		req := httptest.NewRequest("POST", "/api/blogs", body)
		req.Header.Set("Content-Type", contentType)
		req.AddCookie(cookie)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("Failed to execute request: %v", err)
		}
		return resp.StatusCode
	}

	if code := create("MariaDB Roundtrip"); code != 201 {
		t.Fatalf("Expected 201 on first create, got %d", code)
	}
	// The unique index enforces the conflict at the database level too
	if code := create("MariaDB Roundtrip"); code != 409 {
		t.Errorf("Expected 409 on duplicate slug, got %d", code)
	}

	var count int64
	db.Model(&models.Blog{}).Where("slug = ?", "mariadb-roundtrip").Count(&count)
	if count != 1 {
		t.Errorf("Expected one row for the slug, got %d", count)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/blogs?slug=mariadb-roundtrip", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var blog models.Blog
	helpers.ParseJSON(t, resp, &blog)
	var tags []string
	if err := json.Unmarshal(blog.Tags.JSON, &tags); err != nil || len(tags) != 1 {
		t.Errorf("Expected the JSON tags column to round-trip through MariaDB, got %s", string(blog.Tags.JSON))
	}
}

func testContactPipeline(t *testing.T, app *fiber.App, cookie *http.Cookie) {
	raw, _ := json.Marshal(map[string]string{
		"name":    "Morgan Reyes",
		"email":   "morgan@example.com",
		"phone":   "555-0123",
		"message": "Looking for a new accountant",
	})
	req := httptest.NewRequest("POST", "/api/contact", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 201)

	// The inbox requires the admin session
	req = httptest.NewRequest("GET", "/api/contact", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var submissions []models.ContactSubmission
	helpers.ParseJSON(t, resp, &submissions)
	if len(submissions) == 0 {
		t.Fatal("Expected the submission in the inbox")
	}
	if submissions[0].FirstName != "Morgan" || submissions[0].LastName != "Reyes" {
		t.Errorf("Expected the split name, got %q %q", submissions[0].FirstName, submissions[0].LastName)
	}
}

func testHealthEndpoint(t *testing.T, app *fiber.App) {
	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var result services.HealthCheckResult
	helpers.ParseJSON(t, resp, &result)
	if result.Database != "ok" {
		t.Errorf("Expected database ok, got %q", result.Database)
	}
	if result.Uploads != "ok" {
		t.Errorf("Expected uploads ok, got %q", result.Uploads)
	}
}

// multipartForm builds a multipart body of string fields.
func multipartForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("Failed to write form field %s: %v", k, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}
	return buf, writer.FormDataContentType()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
