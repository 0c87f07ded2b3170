// data.go
//
// Content service and admin API for the Ledgerline Advisors marketing site.
// Copyright (c) 2026 Ledgerline Advisors <dev@ledgerline.co>
//
// This file is part of sitecms.
// sitecms is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// sitecms is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with sitecms.
// If not, see <https://www.gnu.org/licenses/>.

package helpers

import (
	"encoding/json"
	"testing"

	"github.com/ledgerline/sitecms/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// JSONColumn marshals a value into a models.JSON column for fixtures.
func JSONColumn(t *testing.T, v interface{}) models.JSON {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal fixture JSON: %v", err)
	}
	return models.JSON{JSON: datatypes.JSON(b)}
}

// CreateTestHero inserts a hero row for a page variant.
func CreateTestHero(t *testing.T, db *gorm.DB, variant, title string) *models.Hero {
	t.Helper()
	hero := models.Hero{
		Variant:    variant,
		Title:      title,
		Disc:       "Fixture description",
		Image:      "/uploads/hero/fixture.webp",
		ButtonText: "Learn more",
	}
	if err := db.Create(&hero).Error; err != nil {
		t.Fatalf("Failed to create hero fixture: %v", err)
	}
	return &hero
}

// CreateTestCategory inserts a service category.
func CreateTestCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := models.Category{
		Name:        name,
		Description: "Fixture category",
	}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("Failed to create category fixture: %v", err)
	}
	return &category
}

// CreateTestService inserts a service under a category id string.
func CreateTestService(t *testing.T, db *gorm.DB, categoryID, slug string) *models.Service {
	t.Helper()
	service := models.Service{
		CategoryID: categoryID,
		Slug:       slug,
		HeroSection: JSONColumn(t, models.ServiceHeroSection{
			Title:       "Fixture service",
			Description: "Fixture hero description",
		}),
		CardSections: JSONColumn(t, []models.ServiceCardSection{{
			SectionTitle: "What we do",
			Cards:        []models.ServiceCard{{Title: "Card", Description: "Card body"}},
		}}),
		ServiceCardView: JSONColumn(t, models.ServiceCardView{
			Title:       "Fixture service",
			Description: "Card view",
		}),
		Content: "Fixture body",
	}
	if err := db.Create(&service).Error; err != nil {
		t.Fatalf("Failed to create service fixture: %v", err)
	}
	return &service
}

// CreateTestBlog inserts a blog post.
func CreateTestBlog(t *testing.T, db *gorm.DB, title, slug string, published bool) *models.Blog {
	t.Helper()
	blog := models.Blog{
		Title:     title,
		Slug:      slug,
		Excerpt:   "Fixture excerpt",
		Content:   "Fixture content",
		Author:    "Fixture Author",
		Tags:      JSONColumn(t, []string{"tax", "advisory"}),
		Published: published,
	}
	if err := db.Create(&blog).Error; err != nil {
		t.Fatalf("Failed to create blog fixture: %v", err)
	}
	return &blog
}

// CreateTestCaseStudy inserts a case study.
func CreateTestCaseStudy(t *testing.T, db *gorm.DB, title, slug string) *models.CaseStudy {
	t.Helper()
	study := models.CaseStudy{
		Title:             title,
		Slug:              slug,
		HeaderTitle:       "Fixture header",
		HeaderDescription: "Fixture header description",
		Content:           "Fixture content",
		Cards: JSONColumn(t, []models.CaseStudyCard{{
			CardTitle:       "Outcome",
			CardDescription: "Fixture card",
		}}),
	}
	if err := db.Create(&study).Error; err != nil {
		t.Fatalf("Failed to create case study fixture: %v", err)
	}
	return &study
}

// CreateTestContactSubmission inserts a contact submission.
func CreateTestContactSubmission(t *testing.T, db *gorm.DB, first, last string) *models.ContactSubmission {
	t.Helper()
	submission := models.ContactSubmission{
		FirstName: first,
		LastName:  last,
		Email:     "fixture@example.com",
		Phone:     "555-0100",
		Message:   "Fixture message",
		Status:    models.ContactStatusNew,
	}
	if err := db.Create(&submission).Error; err != nil {
		t.Fatalf("Failed to create contact fixture: %v", err)
	}
	return &submission
}
