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
	"github.com/ledgerline/sitecms/internal/services"
	"github.com/ledgerline/sitecms/tests/helpers"
	"gorm.io/gorm"
)

func newPublicationApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db := setupTestDB(t)
	cfg := testConfig(t)

	blogHandler := &handlers.BlogHandler{DB: db, Cfg: cfg}
	caseStudyHandler := &handlers.CaseStudyHandler{DB: db}

	app := fiber.New()
	app.Get("/api/blogs", blogHandler.Get)
	app.Post("/api/blogs", blogHandler.Create)
	app.Patch("/api/blogs", blogHandler.Update)
	app.Delete("/api/blogs", blogHandler.Delete)
	app.Get("/api/caseStudy", caseStudyHandler.Get)
	app.Post("/api/caseStudy", caseStudyHandler.Create)
	app.Put("/api/caseStudy", caseStudyHandler.Update)
	app.Delete("/api/caseStudy", caseStudyHandler.Delete)
	return app, db
}

// TestCreateBlogDuplicateSlugConflicts verifies the second post with the
// same title is rejected with a conflict, not suffixed
func TestCreateBlogDuplicateSlugConflicts(t *testing.T) {
	app, db := newPublicationApp(t)

	send := func() int {
		body, contentType := multipartBody(t, map[string]string{
			"title":   "Year End Checklist",
			"excerpt": "Get ready for closing",
			"tags":    `["tax","closing"]`,
		}, "", nil)
		req := httptest.NewRequest("POST", "/api/blogs", body)
		req.Header.Set("Content-Type", contentType)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("Failed to execute request: %v", err)
		}
		return resp.StatusCode
	}

	if code := send(); code != 201 {
		t.Fatalf("Expected first create to answer 201, got %d", code)
	}
	if code := send(); code != 409 {
		t.Errorf("Expected duplicate slug to answer 409, got %d", code)
	}

	var count int64
	db.Model(&models.Blog{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected a single blog row, got %d", count)
	}
}

// TestCreateBlogDuplicateSlugLateConflict verifies a conflicting row that
// lands after the slug lookup but before the insert still answers
// "slug exists" through the unique index instead of a generic failure
func TestCreateBlogDuplicateSlugLateConflict(t *testing.T) {
	db := setupTestDB(t)

	// The in-memory database lives on a single connection
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying SQL DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	// Plant a rival insert right before the write, past the slug lookup
	raced := false
	err = db.Callback().Create().Before("gorm:create").Register("rival_blog_insert", func(tx *gorm.DB) {
		if raced || tx.Statement.Table != "blogs" {
			return
		}
		raced = true
		rival := models.Blog{Title: "Rival", Slug: "cash-flow-basics"}
		if err := tx.Session(&gorm.Session{NewDB: true}).Create(&rival).Error; err != nil {
			t.Errorf("Failed to insert rival row: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("Failed to register callback: %v", err)
	}

	blog := models.Blog{Title: "Cash Flow Basics"}
	err = services.CreateBlog(db, &blog)
	if err == nil || err.Error() != "slug exists" {
		t.Fatalf("Expected slug exists from the conflicting insert, got %v", err)
	}

	var count int64
	db.Model(&models.Blog{}).Where("slug = ?", "cash-flow-basics").Count(&count)
	if count != 1 {
		t.Errorf("Expected one row for the slug, got %d", count)
	}
}

// TestCaseStudySlugSuffixes verifies case study slug collisions append a
// numeric suffix instead of rejecting
func TestCaseStudySlugSuffixes(t *testing.T) {
	app, _ := newPublicationApp(t)

	create := func() models.CaseStudy {
		raw, _ := json.Marshal(map[string]string{"title": "Retail Turnaround"})
		req := httptest.NewRequest("POST", "/api/caseStudy", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("Failed to execute request: %v", err)
		}
		helpers.AssertStatus(t, resp, 201)
		var study models.CaseStudy
		helpers.ParseJSON(t, resp, &study)
		return study
	}

	first := create()
	second := create()
	third := create()

	if first.Slug != "retail-turnaround" {
		t.Errorf("Expected base slug, got %q", first.Slug)
	}
	if second.Slug != "retail-turnaround-2" {
		t.Errorf("Expected -2 suffix, got %q", second.Slug)
	}
	if third.Slug != "retail-turnaround-3" {
		t.Errorf("Expected -3 suffix, got %q", third.Slug)
	}
}

// TestGetCaseStudyByIDNotFound verifies the single lookup answers 404 while
// the unfiltered list answers an empty array
func TestGetCaseStudyByIDNotFound(t *testing.T) {
	app, _ := newPublicationApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/caseStudy?id=99", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 404)
	helpers.AssertErrorShape(t, resp, "case study not found")

	resp, err = app.Test(httptest.NewRequest("GET", "/api/caseStudy", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)
	var list []models.CaseStudy
	helpers.ParseJSON(t, resp, &list)
	if len(list) != 0 {
		t.Errorf("Expected empty list, got %d entries", len(list))
	}
}

// TestUpdateBlogPublishedFalse verifies published can be set back to false
// while omitted fields survive
func TestUpdateBlogPublishedFalse(t *testing.T) {
	app, db := newPublicationApp(t)
	blog := helpers.CreateTestBlog(t, db, "Published post", "published-post", true)

	raw, _ := json.Marshal(map[string]interface{}{
		"id":        blog.ID,
		"published": false,
	})
	req := httptest.NewRequest("PATCH", "/api/blogs", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var updated models.Blog
	helpers.ParseJSON(t, resp, &updated)
	if updated.Published {
		t.Error("Expected published to flip to false")
	}
	if updated.Title != blog.Title {
		t.Errorf("Expected title to survive the partial update, got %q", updated.Title)
	}
	if updated.Excerpt != blog.Excerpt {
		t.Errorf("Expected excerpt to survive the partial update, got %q", updated.Excerpt)
	}
}

// TestGetBlogBySlug verifies slug lookups and the string-id tolerance on delete
func TestGetBlogBySlug(t *testing.T) {
	app, db := newPublicationApp(t)
	blog := helpers.CreateTestBlog(t, db, "Cash Flow Basics", "cash-flow-basics", true)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/blogs?slug=cash-flow-basics", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)
	var found models.Blog
	helpers.ParseJSON(t, resp, &found)
	if found.ID != blog.ID {
		t.Errorf("Expected slug lookup to find blog %d, got %d", blog.ID, found.ID)
	}

	// Admin forms sometimes serialize the id as a string
	raw := []byte(fmt.Sprintf(`{"id":"%d"}`, blog.ID))
	req := httptest.NewRequest("DELETE", "/api/blogs", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)
}
