package models

import "time"

// ServiceHeroSection is the banner block of a service detail page.
type ServiceHeroSection struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ServiceCard is one card inside a card section.
type ServiceCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ServiceCardSection groups cards under a section heading.
type ServiceCardSection struct {
	SectionTitle       string        `json:"sectionTitle"`
	SectionDescription string        `json:"sectionDescription"`
	Cards              []ServiceCard `json:"cards"`
}

// ServiceCardView is the summary card shown on the services listing page.
type ServiceCardView struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Service is one offered service. CategoryID is stored as a plain string and
// validated by format only, never against the categories table.
type Service struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID      string    `gorm:"size:64;index" json:"categoryId"`
	Slug            string    `gorm:"size:255;index" json:"slug"`
	HeroSection     JSON      `gorm:"type:json" json:"heroSection"`
	CardSections    JSON      `gorm:"type:json" json:"cardSections"`
	ServiceCardView JSON      `gorm:"type:json" json:"serviceCardView"`
	Content         string    `gorm:"type:text" json:"content"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// TableName overrides the table name for Service
func (Service) TableName() string {
	return "services"
}
