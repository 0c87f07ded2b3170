package models

import "time"

// TeamCard is one member card inside a team tab.
type TeamCard struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
}

// TeamTab is a named tab of team member cards.
type TeamTab struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	TabName   string    `gorm:"size:255;not null" json:"tabName"`
	Cards     JSON      `gorm:"type:json" json:"cards"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides the table name for TeamTab
func (TeamTab) TableName() string {
	return "team_tabs"
}
