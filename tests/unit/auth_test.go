package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/ledgerline/sitecms/internal/config"
	"github.com/ledgerline/sitecms/internal/handlers"
	"github.com/ledgerline/sitecms/internal/middleware"
	"github.com/ledgerline/sitecms/internal/services"
	"github.com/ledgerline/sitecms/internal/types"
	"github.com/ledgerline/sitecms/tests/helpers"
	"gorm.io/gorm"
)

func newAuthApp(t *testing.T, password string) (*fiber.App, *gorm.DB, *config.Config) {
	db := setupTestDB(t)
	cfg := testConfig(t)
	cfg.JWTSecret = "unit-test-secret"
	cfg.AdminUsername = "admin"
	cfg.AdminEmail = "admin@example.com"
	cfg.AdminPassword = password

	if err := services.BootstrapAdmin(db, cfg); err != nil {
		t.Fatalf("Failed to bootstrap admin: %v", err)
	}

	authHandler := &handlers.AuthHandler{DB: db, Cfg: cfg}
	settingsHandler := &handlers.SettingsHandler{DB: db, Cfg: cfg}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*types.CustomError); ok {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Post("/api/auth", authHandler.Login)
	app.Get("/api/auth", authHandler.Session)
	app.Delete("/api/auth", authHandler.Logout)
	app.Get("/api/admin/settings", middleware.AuthAdmin(cfg), settingsHandler.Get)
	app.Put("/api/admin/settings", middleware.AuthAdmin(cfg), settingsHandler.Update)
	app.Post("/api/admin/forgot-password", settingsHandler.ForgotPassword)
	app.Post("/api/admin/reset-password", settingsHandler.ResetPassword)
	return app, db, cfg
}

// TestLoginSetsSessionCookie verifies a valid login answers with the
// httpOnly session cookie
func TestLoginSetsSessionCookie(t *testing.T) {
	password := helpers.GeneratePassword()
	app, _, _ := newAuthApp(t, password)

	cookie := helpers.LoginAdmin(t, app, "admin", password)
	if !cookie.HttpOnly {
		t.Error("Expected the session cookie to be httpOnly")
	}
	if cookie.Value == "" {
		t.Error("Expected a token in the session cookie")
	}
}

// TestLoginWrongPassword verifies invalid credentials answer 401
func TestLoginWrongPassword(t *testing.T) {
	app, _, _ := newAuthApp(t, helpers.GeneratePassword())

	raw, _ := json.Marshal(map[string]string{
		"username": "admin",
		"password": "definitely-wrong",
	})
	req := httptest.NewRequest("POST", "/api/auth", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 401)
}

// TestLoginByEmail verifies the email identifies the account too
func TestLoginByEmail(t *testing.T) {
	password := helpers.GeneratePassword()
	app, _, _ := newAuthApp(t, password)

	raw, _ := json.Marshal(map[string]string{
		"email":    "admin@example.com",
		"password": password,
	})
	req := httptest.NewRequest("POST", "/api/auth", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)
}

// TestProtectedRouteRequiresCookie verifies the middleware blocks requests
// without a session
func TestProtectedRouteRequiresCookie(t *testing.T) {
	app, _, _ := newAuthApp(t, helpers.GeneratePassword())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/admin/settings", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 401)
}

// TestProtectedRouteWithCookie verifies a logged-in session passes the
// middleware
func TestProtectedRouteWithCookie(t *testing.T) {
	password := helpers.GeneratePassword()
	app, _, _ := newAuthApp(t, password)
	cookie := helpers.LoginAdmin(t, app, "admin", password)

	req := httptest.NewRequest("GET", "/api/admin/settings", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)
}

// TestUpdateSettingsRotatesPassword verifies the settings update changes the
// password the next login uses
func TestUpdateSettingsRotatesPassword(t *testing.T) {
	oldPassword := helpers.GeneratePassword()
	newPassword := helpers.GeneratePassword()
	app, _, _ := newAuthApp(t, oldPassword)
	cookie := helpers.LoginAdmin(t, app, "admin", oldPassword)

	raw, _ := json.Marshal(map[string]string{"password": newPassword})
	req := httptest.NewRequest("PUT", "/api/admin/settings", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	// Old password no longer works
	raw, _ = json.Marshal(map[string]string{"username": "admin", "password": oldPassword})
	req = httptest.NewRequest("POST", "/api/auth", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 401)

	// New password does
	helpers.LoginAdmin(t, app, "admin", newPassword)
}

// TestPasswordResetFlow verifies the token round-trip through the service
// and the reset endpoint
func TestPasswordResetFlow(t *testing.T) {
	app, db, _ := newAuthApp(t, helpers.GeneratePassword())

	// Forgot-password answers 200 whether or not the account exists
	raw, _ := json.Marshal(map[string]string{"identity": "nobody@example.com"})
	req := httptest.NewRequest("POST", "/api/admin/forgot-password", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	// Create a real token directly and consume it
	_, token, err := services.CreateResetToken(db, "admin")
	if err != nil {
		t.Fatalf("Failed to create reset token: %v", err)
	}

	newPassword := helpers.GeneratePassword()
	raw, _ = json.Marshal(map[string]string{"token": token, "password": newPassword})
	req = httptest.NewRequest("POST", "/api/admin/reset-password", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	// The consumed token is rejected on reuse
	req = httptest.NewRequest("POST", "/api/admin/reset-password", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 400)

	helpers.LoginAdmin(t, app, "admin", newPassword)
}

// TestLogoutClearsCookie verifies logout expires the cookie
func TestLogoutClearsCookie(t *testing.T) {
	password := helpers.GeneratePassword()
	app, _, _ := newAuthApp(t, password)
	helpers.LoginAdmin(t, app, "admin", password)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/auth", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	cleared := false
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "admin-token" && cookie.Value == "" {
			cleared = true
		}
	}
	if !cleared {
		t.Error("Expected logout to clear the admin-token cookie")
	}
}
