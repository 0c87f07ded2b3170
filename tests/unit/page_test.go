package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/ledgerline/sitecms/internal/handlers"
	"github.com/ledgerline/sitecms/internal/models"
	"github.com/ledgerline/sitecms/tests/helpers"
	"gorm.io/gorm"
)

func newPageApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db := setupTestDB(t)
	cfg := testConfig(t)

	teamHandler := &handlers.TeamHandler{DB: db}
	testimonialHandler := &handlers.TestimonialHandler{DB: db, Cfg: cfg}
	companyHandler := &handlers.CompanyHandler{DB: db, Cfg: cfg}
	industryHandler := &handlers.IndustryHandler{DB: db, Cfg: cfg}
	footerHandler := &handlers.FooterHandler{DB: db}

	app := fiber.New()
	app.Get("/api/team", teamHandler.List)
	app.Post("/api/team", teamHandler.Create)
	app.Put("/api/team", teamHandler.Update)
	app.Delete("/api/team", teamHandler.Delete)
	app.Get("/api/testimonial", testimonialHandler.List)
	app.Post("/api/testimonial", testimonialHandler.Create)
	app.Put("/api/testimonial", testimonialHandler.Update)
	app.Delete("/api/testimonial", testimonialHandler.Delete)
	app.Get("/api/tructedCompany", companyHandler.List)
	app.Post("/api/tructedCompany", companyHandler.Create)
	app.Delete("/api/tructedCompany", companyHandler.Delete)
	app.Get("/api/industries", industryHandler.List)
	app.Post("/api/industries", industryHandler.Create)
	app.Put("/api/industries", industryHandler.Update)
	app.Delete("/api/industries", industryHandler.Delete)
	app.Get("/api/footer", footerHandler.Get)
	app.Post("/api/footer", footerHandler.Create)
	app.Put("/api/footer", footerHandler.Update)
	return app, db
}

// TestTeamTabCardsRoundTrip verifies the cards payload survives create and
// partial update
func TestTeamTabCardsRoundTrip(t *testing.T) {
	app, _ := newPageApp(t)

	raw, _ := json.Marshal(map[string]interface{}{
		"tabName": "Partners",
		"cards": []models.TeamCard{{
			Title:       "Dana Whitfield",
			Description: "Managing Partner",
			Image:       "/uploads/team/dana.webp",
			Tags:        []string{"tax", "audit"},
		}},
	})
	req := httptest.NewRequest("POST", "/api/team", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 201)

	var created models.TeamTab
	helpers.ParseJSON(t, resp, &created)
	var cards []models.TeamCard
	if err := json.Unmarshal(created.Cards.JSON, &cards); err != nil {
		t.Fatalf("Failed to decode stored cards: %v", err)
	}
	if len(cards) != 1 || cards[0].Title != "Dana Whitfield" {
		t.Errorf("Expected the card to round-trip, got %+v", cards)
	}

	// A rename-only update keeps the cards
	raw, _ = json.Marshal(map[string]interface{}{
		"id":      created.ID,
		"tabName": "Leadership",
	})
	req = httptest.NewRequest("PUT", "/api/team", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var renamed models.TeamTab
	helpers.ParseJSON(t, resp, &renamed)
	if renamed.TabName != "Leadership" {
		t.Errorf("Expected renamed tab, got %q", renamed.TabName)
	}
	if len(renamed.Cards.JSON) == 0 {
		t.Error("Expected cards to survive the rename")
	}
}

// TestCreateTestimonialMultipart verifies the multipart create and the quote
// requirement
func TestCreateTestimonialMultipart(t *testing.T) {
	app, db := newPageApp(t)

	body, contentType := multipartBody(t, map[string]string{
		"name":  "Sarah Mitchell",
		"title": "Owner, Mitchell & Co.",
		"quote": "Tax season was painless for the first time ever.",
	}, "sarah.webp", []byte("photo-bytes"))
	req := httptest.NewRequest("POST", "/api/testimonial", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 201)

	// Missing quote is rejected
	body, contentType = multipartBody(t, map[string]string{"name": "No Quote"}, "", nil)
	req = httptest.NewRequest("POST", "/api/testimonial", body)
	req.Header.Set("Content-Type", contentType)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 400)

	var count int64
	db.Model(&models.Testimonial{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected one testimonial row, got %d", count)
	}
}

// TestTrustedCompanyLifecycle verifies the create and delete flow on the
// historical route spelling
func TestTrustedCompanyLifecycle(t *testing.T) {
	app, _ := newPageApp(t)

	body, contentType := multipartBody(t, map[string]string{
		"name": "Brightpath Logistics",
	}, "logo.svg", []byte("<svg/>"))
	req := httptest.NewRequest("POST", "/api/tructedCompany", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 201)

	var created models.TrustedCompany
	helpers.ParseJSON(t, resp, &created)

	resp, err = app.Test(httptest.NewRequest("DELETE", fmt.Sprintf("/api/tructedCompany?id=%d", created.ID), nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/tructedCompany", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)
	var list []models.TrustedCompany
	helpers.ParseJSON(t, resp, &list)
	if len(list) != 0 {
		t.Errorf("Expected empty list after delete, got %d entries", len(list))
	}
}

// TestIndustryUpdatePartial verifies omitted industry fields survive updates
func TestIndustryUpdatePartial(t *testing.T) {
	app, db := newPageApp(t)

	industry := models.Industry{
		Name:        "Construction",
		Description: "Job costing and progress billing",
		Image:       "/uploads/industries/construction.webp",
	}
	if err := db.Create(&industry).Error; err != nil {
		t.Fatalf("Failed to create industry fixture: %v", err)
	}

	raw, _ := json.Marshal(map[string]interface{}{
		"id":   industry.ID,
		"name": "Construction & Trades",
	})
	req := httptest.NewRequest("PUT", "/api/industries", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var updated models.Industry
	helpers.ParseJSON(t, resp, &updated)
	if updated.Name != "Construction & Trades" {
		t.Errorf("Expected updated name, got %q", updated.Name)
	}
	if updated.Description != industry.Description {
		t.Errorf("Expected description to survive, got %q", updated.Description)
	}
}

// TestFooterSingleton verifies the 404 on an empty table and the
// latest-wins read after multiple creates
func TestFooterSingleton(t *testing.T) {
	app, _ := newPageApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/footer", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 404)
	helpers.AssertErrorShape(t, resp, "footer not found")

	create := func(email string) {
		raw, _ := json.Marshal(map[string]interface{}{
			"description": "Accounting for growing companies",
			"email":       email,
			"socialLinks": []models.FooterLink{{Label: "LinkedIn", URL: "https://linkedin.com/company/ledgerline"}},
		})
		req := httptest.NewRequest("POST", "/api/footer", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("Failed to execute request: %v", err)
		}
		helpers.AssertStatus(t, resp, 201)
	}
	create("first@ledgerline.co")
	create("second@ledgerline.co")

	resp, err = app.Test(httptest.NewRequest("GET", "/api/footer", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)
	var footer models.Footer
	helpers.ParseJSON(t, resp, &footer)
	if footer.Email != "second@ledgerline.co" {
		t.Errorf("Expected the latest footer to win, got %q", footer.Email)
	}
}
