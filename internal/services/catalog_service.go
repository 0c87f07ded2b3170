package services

import (
	"fmt"

	"github.com/gosimple/slug"
	"github.com/ledgerline/sitecms/internal/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// ListCategories returns all service categories, oldest first.
func ListCategories(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	if err := db.Order("created_at ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory stores a new category.
func CreateCategory(db *gorm.DB, category *models.Category) error {
	return db.Create(category).Error
}

// UpdateCategory overwrites only the non-empty fields.
func UpdateCategory(db *gorm.DB, id uint64, patch *models.Category) (*models.Category, error) {
	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}

	if patch.Name != "" {
		category.Name = patch.Name
	}
	if patch.Description != "" {
		category.Description = patch.Description
	}

	if err := db.Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category. Services referencing it by id-string are
// left untouched; there is no referential integrity to cascade.
func DeleteCategory(db *gorm.DB, id uint64) error {
	result := db.Delete(&models.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("not found")
	}
	return nil
}

// ListServices returns all services, newest first.
func ListServices(db *gorm.DB) ([]models.Service, error) {
	var services []models.Service
	if err := db.Clauses(hints.CommentBefore("select", "public service list")).
		Order("created_at DESC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// ListServicesByCategory returns services whose categoryId string matches.
func ListServicesByCategory(db *gorm.DB, categoryID string) ([]models.Service, error) {
	var services []models.Service
	if err := db.Where("category_id = ?", categoryID).
		Order("created_at DESC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// GetServiceByID returns a single service by id.
func GetServiceByID(db *gorm.DB, id uint64) (*models.Service, error) {
	var service models.Service
	if err := db.First(&service, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}
	return &service, nil
}

// GetServiceBySlug returns a single service by slug. Slug uniqueness is not
// enforced for services; the oldest match wins.
func GetServiceBySlug(db *gorm.DB, s string) (*models.Service, error) {
	var service models.Service
	if err := db.Where("slug = ?", s).Order("created_at ASC").First(&service).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}
	return &service, nil
}

// CreateService stores a new service, deriving the slug from the hero title
// when none was supplied.
func CreateService(db *gorm.DB, service *models.Service, title string) error {
	if service.Slug == "" && title != "" {
		service.Slug = slug.Make(title)
	}
	return db.Create(service).Error
}

// UpdateService overwrites only the provided fields of an existing service.
func UpdateService(db *gorm.DB, id uint64, patch *models.Service) (*models.Service, error) {
	var service models.Service
	if err := db.First(&service, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}

	if patch.CategoryID != "" {
		service.CategoryID = patch.CategoryID
	}
	if patch.Slug != "" {
		service.Slug = slug.Make(patch.Slug)
	}
	if len(patch.HeroSection.JSON) > 0 {
		service.HeroSection = patch.HeroSection
	}
	if len(patch.CardSections.JSON) > 0 {
		service.CardSections = patch.CardSections
	}
	if len(patch.ServiceCardView.JSON) > 0 {
		service.ServiceCardView = patch.ServiceCardView
	}
	if patch.Content != "" {
		service.Content = patch.Content
	}

	if err := db.Save(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// DeleteService removes a service. Uploaded images stay on disk.
func DeleteService(db *gorm.DB, id uint64) error {
	result := db.Delete(&models.Service{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("not found")
	}
	return nil
}
