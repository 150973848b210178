package model

import (
	"fmt"
	"time"
)

// ListKind identifies one of the per-user film sets
type ListKind string

const (
	ListWatched  ListKind = "watched"
	ListWishlist ListKind = "wishlist"
	ListFavorite ListKind = "favorite"
)

// ListKinds every supported set, in route order
var ListKinds = []ListKind{ListWatched, ListWishlist, ListFavorite}

// Table backing table of the set
func (k ListKind) Table() string {
	switch k {
	case ListWatched:
		return "watched_films"
	case ListWishlist:
		return "wishlist_films"
	case ListFavorite:
		return "favorite_films"
	}
	panic(fmt.Sprintf("model: unknown list kind %q", string(k)))
}

// Valid reports whether k names a known set
func (k ListKind) Valid() bool {
	for _, known := range ListKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Membership one (user, film) row of any set; queries pick the table via ListKind.Table
type Membership struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	FilmID    uint      `json:"film_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"created_at"`
}

// WatchedFilm films the user has seen
type WatchedFilm struct {
	UserID    uint `gorm:"primaryKey;autoIncrement:false"`
	FilmID    uint `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time
	User      *User `gorm:"constraint:OnDelete:CASCADE"`
	Film      *Film `gorm:"constraint:OnDelete:CASCADE"`
}

// WishlistFilm films the user wants to see
type WishlistFilm struct {
	UserID    uint `gorm:"primaryKey;autoIncrement:false"`
	FilmID    uint `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time
	User      *User `gorm:"constraint:OnDelete:CASCADE"`
	Film      *Film `gorm:"constraint:OnDelete:CASCADE"`
}

// FavoriteFilm films the user marked as favorite
type FavoriteFilm struct {
	UserID    uint `gorm:"primaryKey;autoIncrement:false"`
	FilmID    uint `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time
	User      *User `gorm:"constraint:OnDelete:CASCADE"`
	Film      *Film `gorm:"constraint:OnDelete:CASCADE"`
}

// Comment a user's review of a film, at most one per (user, film)
type Comment struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"-" gorm:"uniqueIndex:idx_comments_user_film;not null"`
	FilmID    uint       `json:"film_id" gorm:"uniqueIndex:idx_comments_user_film;index;not null"`
	Score     float64    `json:"score" gorm:"type:numeric(2,1);not null"`
	Content   string     `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time  `json:"created_at" gorm:"index"`
	UpdatedAt *time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
	User      *User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Film      *Film      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// Review API shape of a Comment
type Review struct {
	ID        uint       `json:"id"`
	User      PublicUser `json:"user"`
	FilmID    uint       `json:"film_id"`
	Score     float64    `json:"score"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// ReviewPreview truncated review listing with the overall count
type ReviewPreview struct {
	Reviews      []Review `json:"reviews"`
	TotalReviews int64    `json:"total_reviews"`
}
