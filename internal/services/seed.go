package services

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/ledgerline/sitecms/data"
	"github.com/ledgerline/sitecms/internal/models"
	"gorm.io/gorm"
)

// SeedDefaults inserts the embedded fallback content into tables that are
// still empty, so a fresh install renders a complete public site. Tables
// with any rows are left alone.
func SeedDefaults(db *gorm.DB) error {
	var defaults struct {
		Hero             models.Hero             `json:"hero"`
		Testimonials     []models.Testimonial    `json:"testimonials"`
		TrustedCompanies []models.TrustedCompany `json:"trustedCompanies"`
	}
	if err := json.Unmarshal(data.DefaultContent, &defaults); err != nil {
		return fmt.Errorf("failed to decode embedded defaults: %w", err)
	}

	var count int64
	if err := db.Model(&models.Hero{}).Where("variant = ?", models.HeroVariantHome).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		defaults.Hero.Variant = models.HeroVariantHome
		if err := db.Create(&defaults.Hero).Error; err != nil {
			return err
		}
		log.Println("Seeded default home hero")
	}

	if err := db.Model(&models.Testimonial{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 && len(defaults.Testimonials) > 0 {
		if err := db.Create(&defaults.Testimonials).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d default testimonials", len(defaults.Testimonials))
	}

	if err := db.Model(&models.TrustedCompany{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 && len(defaults.TrustedCompanies) > 0 {
		if err := db.Create(&defaults.TrustedCompanies).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d default trusted companies", len(defaults.TrustedCompanies))
	}

	return nil
}
