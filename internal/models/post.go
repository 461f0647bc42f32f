package models

import "time"

// Post is a blog / information article.
type Post struct {
	ID        string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title     string          `gorm:"size:255;not null" json:"title"`
	Content   string          `gorm:"type:text;not null" json:"content"`
	Excerpt   string          `gorm:"type:text;not null" json:"excerpt"`
	Slug      string          `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Published bool            `gorm:"not null;default:false;index" json:"published"`
	AuthorID  string          `gorm:"type:varchar(36);not null" json:"author_id"`
	CreatedAt time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	Author    *ProfileSummary `gorm:"-" json:"profiles,omitempty"`
}

// TableName overrides the table name used by Post to `blog_posts`.
func (Post) TableName() string {
	return "blog_posts"
}
