package models

import "time"

// Blog is a blog post. Slug is the only uniqueness constraint in the data
// model; duplicates are rejected at write time with a conflict.
type Blog struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Slug      string    `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	Excerpt   string    `gorm:"type:text" json:"excerpt"`
	Content   string    `gorm:"type:text" json:"content"`
	Author    string    `gorm:"size:255" json:"author"`
	Image     string    `gorm:"size:512" json:"image"`
	Tags      JSON      `gorm:"type:json" json:"tags"`
	Published bool      `gorm:"not null;default:false" json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides the table name for Blog
func (Blog) TableName() string {
	return "blogs"
}
