package model

import (
	"time"
)

// User registered account
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:150;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	TokenHash    *string   `json:"-" gorm:"uniqueIndex;size:64"` // sha256 of the current bearer token, nil when logged out
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser is the shape of a user exposed to other users
type PublicUser struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// Public projects u for the API with the given avatar
func (u *User) Public(avatarURL string) PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		AvatarURL: avatarURL,
	}
}
