package models

import "time"

// Testimonial is a client quote shown on the home page.
type Testimonial struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Title     string    `gorm:"size:255" json:"title"`
	Quote     string    `gorm:"type:text;not null" json:"quote"`
	Image     string    `gorm:"size:512" json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides the table name for Testimonial
func (Testimonial) TableName() string {
	return "testimonials"
}
