package models

import "time"

// TrustedCompany is a logo entry in the trusted-companies strip.
type TrustedCompany struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Image     string    `gorm:"size:512" json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides the table name for TrustedCompany
func (TrustedCompany) TableName() string {
	return "trusted_companies"
}
