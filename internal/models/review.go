package models

import "time"

// Review is a user's rating of a game. The UI keeps one review per
// (game, user) pair; the store does not enforce it.
type Review struct {
	ID            string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	GameID        string          `gorm:"type:varchar(36);not null;index" json:"game_id"`
	UserID        string          `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Rating        int             `gorm:"not null" json:"rating"`
	IsRecommended bool            `gorm:"not null" json:"is_recommended"`
	ReviewText    *string         `gorm:"type:text" json:"review_text"`
	CreatedAt     time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	Author        *ProfileSummary `gorm:"-" json:"profiles,omitempty"`
}

// TableName overrides the table name used by Review to `game_reviews`.
func (Review) TableName() string {
	return "game_reviews"
}
