package services

import (
	"fmt"

	"github.com/ledgerline/sitecms/internal/models"
	"gorm.io/gorm"
)

// GetLatestHero returns the newest hero row for a page variant. The hero
// endpoints behave as singletons read by latest CreatedAt; older rows are
// kept but never served.
func GetLatestHero(db *gorm.DB, variant string) (*models.Hero, error) {
	var hero models.Hero
	err := db.Where("variant = ?", variant).
		Order("created_at DESC").
		First(&hero).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}
	return &hero, nil
}

// CreateHero stores a new hero row for a variant.
func CreateHero(db *gorm.DB, hero *models.Hero) error {
	return db.Create(hero).Error
}

// UpdateHero overwrites only the non-empty fields of the existing row.
// Empty strings in the patch are skipped, so a field cannot be cleared
// through this path.
func UpdateHero(db *gorm.DB, variant string, id uint64, patch *models.Hero) (*models.Hero, error) {
	var hero models.Hero
	err := db.Where("variant = ? AND id = ?", variant, id).First(&hero).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}

	if patch.Title != "" {
		hero.Title = patch.Title
	}
	if patch.Disc != "" {
		hero.Disc = patch.Disc
	}
	if patch.Image != "" {
		// TODO: delete the replaced image file from the uploads directory
		hero.Image = patch.Image
	}
	if patch.ButtonText != "" {
		hero.ButtonText = patch.ButtonText
	}

	if err := db.Save(&hero).Error; err != nil {
		return nil, err
	}
	return &hero, nil
}

// DeleteHero removes a hero row. The image file on disk is left behind.
func DeleteHero(db *gorm.DB, variant string, id uint64) error {
	result := db.Where("variant = ? AND id = ?", variant, id).Delete(&models.Hero{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("not found")
	}
	return nil
}
