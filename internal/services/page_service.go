package services

import (
	"fmt"

	"github.com/ledgerline/sitecms/internal/models"
	"gorm.io/gorm"
)

// ListTeamTabs returns all team tabs, oldest first so tab order is stable.
func ListTeamTabs(db *gorm.DB) ([]models.TeamTab, error) {
	var tabs []models.TeamTab
	if err := db.Order("created_at ASC").Find(&tabs).Error; err != nil {
		return nil, err
	}
	return tabs, nil
}

// CreateTeamTab stores a new team tab.
func CreateTeamTab(db *gorm.DB, tab *models.TeamTab) error {
	return db.Create(tab).Error
}

// UpdateTeamTab overwrites only the provided fields.
func UpdateTeamTab(db *gorm.DB, id uint64, patch *models.TeamTab) (*models.TeamTab, error) {
	var tab models.TeamTab
	if err := db.First(&tab, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}

	if patch.TabName != "" {
		tab.TabName = patch.TabName
	}
	if len(patch.Cards.JSON) > 0 {
		tab.Cards = patch.Cards
	}

	if err := db.Save(&tab).Error; err != nil {
		return nil, err
	}
	return &tab, nil
}

// DeleteTeamTab removes a team tab.
func DeleteTeamTab(db *gorm.DB, id uint64) error {
	result := db.Delete(&models.TeamTab{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("not found")
	}
	return nil
}

// ListTestimonials returns all testimonials, newest first.
func ListTestimonials(db *gorm.DB) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	if err := db.Order("created_at DESC").Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

// CreateTestimonial stores a new testimonial.
func CreateTestimonial(db *gorm.DB, testimonial *models.Testimonial) error {
	return db.Create(testimonial).Error
}

// UpdateTestimonial overwrites only the non-empty fields.
func UpdateTestimonial(db *gorm.DB, id uint64, patch *models.Testimonial) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	if err := db.First(&testimonial, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}

	if patch.Name != "" {
		testimonial.Name = patch.Name
	}
	if patch.Title != "" {
		testimonial.Title = patch.Title
	}
	if patch.Quote != "" {
		testimonial.Quote = patch.Quote
	}
	if patch.Image != "" {
		testimonial.Image = patch.Image
	}

	if err := db.Save(&testimonial).Error; err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// DeleteTestimonial removes a testimonial.
func DeleteTestimonial(db *gorm.DB, id uint64) error {
	result := db.Delete(&models.Testimonial{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("not found")
	}
	return nil
}

// ListTrustedCompanies returns all trusted-company logos, oldest first.
func ListTrustedCompanies(db *gorm.DB) ([]models.TrustedCompany, error) {
	var companies []models.TrustedCompany
	if err := db.Order("created_at ASC").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// CreateTrustedCompany stores a new logo entry.
func CreateTrustedCompany(db *gorm.DB, company *models.TrustedCompany) error {
	return db.Create(company).Error
}

// DeleteTrustedCompany removes a logo entry. The logo file stays on disk.
func DeleteTrustedCompany(db *gorm.DB, id uint64) error {
	result := db.Delete(&models.TrustedCompany{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("not found")
	}
	return nil
}

// ListIndustries returns all industries, oldest first.
func ListIndustries(db *gorm.DB) ([]models.Industry, error) {
	var industries []models.Industry
	if err := db.Order("created_at ASC").Find(&industries).Error; err != nil {
		return nil, err
	}
	return industries, nil
}

// CreateIndustry stores a new industry entry.
func CreateIndustry(db *gorm.DB, industry *models.Industry) error {
	return db.Create(industry).Error
}

// UpdateIndustry overwrites only the non-empty fields.
func UpdateIndustry(db *gorm.DB, id uint64, patch *models.Industry) (*models.Industry, error) {
	var industry models.Industry
	if err := db.First(&industry, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}

	if patch.Name != "" {
		industry.Name = patch.Name
	}
	if patch.Description != "" {
		industry.Description = patch.Description
	}
	if patch.Image != "" {
		industry.Image = patch.Image
	}

	if err := db.Save(&industry).Error; err != nil {
		return nil, err
	}
	return &industry, nil
}

// DeleteIndustry removes an industry entry.
func DeleteIndustry(db *gorm.DB, id uint64) error {
	result := db.Delete(&models.Industry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("not found")
	}
	return nil
}

// GetLatestFooter returns the newest footer block, read as a singleton like
// the hero variants.
func GetLatestFooter(db *gorm.DB) (*models.Footer, error) {
	var footer models.Footer
	if err := db.Order("created_at DESC").First(&footer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}
	return &footer, nil
}

// CreateFooter stores a new footer block.
func CreateFooter(db *gorm.DB, footer *models.Footer) error {
	return db.Create(footer).Error
}

// UpdateFooter overwrites only the non-empty fields.
func UpdateFooter(db *gorm.DB, id uint64, patch *models.Footer) (*models.Footer, error) {
	var footer models.Footer
	if err := db.First(&footer, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}

	if patch.Description != "" {
		footer.Description = patch.Description
	}
	if patch.Email != "" {
		footer.Email = patch.Email
	}
	if patch.Phone != "" {
		footer.Phone = patch.Phone
	}
	if patch.Address != "" {
		footer.Address = patch.Address
	}
	if len(patch.SocialLinks.JSON) > 0 {
		footer.SocialLinks = patch.SocialLinks
	}

	if err := db.Save(&footer).Error; err != nil {
		return nil, err
	}
	return &footer, nil
}
