package models

import "time"

// Hero variant names. Each page variant behaves as an independent singleton
// read by latest CreatedAt.
const (
	HeroVariantHome  = "home"
	HeroVariantAbout = "about"
	HeroVariantBlog  = "blog"
)

// Hero is a banner content block shown atop a page.
// The description field is serialized as "disc" for compatibility with the
// admin UI payloads.
type Hero struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Variant    string    `gorm:"size:16;not null;index" json:"-"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Disc       string    `gorm:"type:text" json:"disc"`
	Image      string    `gorm:"size:512" json:"image"`
	ButtonText string    `gorm:"size:255" json:"buttonText"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableName overrides the table name for Hero
func (Hero) TableName() string {
	return "heroes"
}
