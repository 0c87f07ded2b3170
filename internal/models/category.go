package models

import "time"

// Category is a free-standing service category. Services reference it by
// id-string only; existence is not enforced.
type Category struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName overrides the table name for Category
func (Category) TableName() string {
	return "service_categories"
}
