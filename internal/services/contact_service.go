package services

import (
	"fmt"
	"strings"

	"github.com/ledgerline/sitecms/internal/models"
	"gorm.io/gorm"
)

// SplitName breaks a combined "First Last" name into its parts on the first
// space. Everything after the first space becomes the last name.
func SplitName(name string) (string, string) {
	name = strings.TrimSpace(name)
	first, last, found := strings.Cut(name, " ")
	if !found {
		return name, ""
	}
	return first, strings.TrimSpace(last)
}

// CreateContactSubmission stores a public contact-form entry with status "new".
func CreateContactSubmission(db *gorm.DB, submission *models.ContactSubmission) error {
	if submission.Status == "" {
		submission.Status = models.ContactStatusNew
	}
	return db.Create(submission).Error
}

// ListContactSubmissions returns all submissions, newest first. Read only
// from the admin panel; no public page consumes these.
func ListContactSubmissions(db *gorm.DB) ([]models.ContactSubmission, error) {
	var submissions []models.ContactSubmission
	if err := db.Order("created_at DESC").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

// UpdateContactStatus moves a submission between new/contacted/resolved.
func UpdateContactStatus(db *gorm.DB, id uint64, status string) (*models.ContactSubmission, error) {
	switch status {
	case models.ContactStatusNew, models.ContactStatusContacted, models.ContactStatusResolved:
	default:
		return nil, fmt.Errorf("invalid status")
	}

	var submission models.ContactSubmission
	if err := db.First(&submission, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}

	submission.Status = status
	if err := db.Save(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

// DeleteContactSubmission removes a submission.
func DeleteContactSubmission(db *gorm.DB, id uint64) error {
	result := db.Delete(&models.ContactSubmission{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("not found")
	}
	return nil
}
