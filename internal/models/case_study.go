package models

import "time"

// CaseStudyCard is one highlight card within a case study.
type CaseStudyCard struct {
	CardTitle       string `json:"cardTitle"`
	CardDescription string `json:"cardDescription"`
	CardImage       string `json:"cardImage"`
}

// CaseStudy is a client case study page. Slug collisions are resolved by
// appending a numeric suffix, so the column carries no uniqueness constraint.
type CaseStudy struct {
	ID                uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title             string    `gorm:"size:255;not null" json:"title"`
	Slug              string    `gorm:"size:255;index" json:"slug"`
	HeaderTitle       string    `gorm:"size:255" json:"headerTitle"`
	HeaderDescription string    `gorm:"type:text" json:"headerDescription"`
	Content           string    `gorm:"type:text" json:"content"`
	Cards             JSON      `gorm:"type:json" json:"cards"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// TableName overrides the table name for CaseStudy
func (CaseStudy) TableName() string {
	return "case_studies"
}
