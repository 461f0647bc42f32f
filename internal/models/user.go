package models

import "time"

// Profile holds the public data of an account. ID is shared with the auth identity.
type Profile struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	FullName  *string   `gorm:"size:255" json:"full_name"`
	IsAdmin   bool      `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName overrides the table name used by Profile to `profiles`.
func (Profile) TableName() string {
	return "profiles"
}

// Summary returns the fields joined onto reviews and posts.
func (p Profile) Summary() *ProfileSummary {
	return &ProfileSummary{FullName: p.FullName, Email: p.Email}
}

// ProfileSummary is the author block embedded in reviews and posts.
type ProfileSummary struct {
	FullName *string `json:"full_name"`
	Email    string  `json:"email"`
}

// DisplayName prefers the full name and falls back to the email address.
func (p *ProfileSummary) DisplayName() string {
	if p == nil {
		return ""
	}
	if p.FullName != nil && *p.FullName != "" {
		return *p.FullName
	}
	return p.Email
}

// User is an authenticated identity.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is returned by sign-in and sign-up.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty"`
	User         *User  `json:"user"`
}

// Credential stores a password hash for self-hosted authentication.
type Credential struct {
	UserID       string    `gorm:"type:varchar(36);primaryKey"`
	Email        string    `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}
