package models

import "time"

// Admin is the single administrator credential row. Password holds a bcrypt
// hash and is never serialized. A single row exists in practice; startup
// bootstraps it when absent.
type Admin struct {
	ID               uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username         string     `gorm:"uniqueIndex;size:255;not null" json:"username"`
	Email            string     `gorm:"size:255" json:"email"`
	Password         string     `gorm:"size:255;not null" json:"-"`
	ResetToken       string     `gorm:"size:64" json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// TableName overrides the table name for Admin
func (Admin) TableName() string {
	return "admins"
}
