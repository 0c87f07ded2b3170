package models

import "time"

// FooterLink is one social or navigation link in the footer block.
type FooterLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Footer is the site-wide footer content block, read as a singleton by
// latest CreatedAt like the hero variants.
type Footer struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Description string    `gorm:"type:text" json:"description"`
	Email       string    `gorm:"size:255" json:"email"`
	Phone       string    `gorm:"size:64" json:"phone"`
	Address     string    `gorm:"size:512" json:"address"`
	SocialLinks JSON      `gorm:"type:json" json:"socialLinks"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName overrides the table name for Footer
func (Footer) TableName() string {
	return "footers"
}
