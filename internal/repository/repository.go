package repository

import (
	"context"
	"errors"

	"github.com/dcurrasv25/filmbox-backend/internal/model"
)

// ErrDuplicate is returned when a uniqueness constraint rejects a write
var ErrDuplicate = errors.New("duplicate record")

// Credentials persists users and their single session token.
type Credentials interface {
	// Create hashes password and inserts the user; ErrDuplicate when the username is taken.
	Create(ctx context.Context, username, password string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByTokenHash(ctx context.Context, tokenHash string) (*model.User, error)
	// CheckPassword also burns a bcrypt comparison when user is nil.
	CheckPassword(user *model.User, password string) bool
	// RotateToken replaces the user's token hash; nil clears it.
	RotateToken(ctx context.Context, userID uint, tokenHash *string) error
	Search(ctx context.Context, query string) ([]*model.User, error)
}

// Catalogue is the read-only film and category store.
type Catalogue interface {
	FindByID(ctx context.Context, id uint) (*model.Film, error)
	Exists(ctx context.Context, id uint) (bool, error)
	SearchByTitle(ctx context.Context, query string) ([]*model.Film, error)
	ListCategories(ctx context.Context) ([]*model.Category, error)
}

// Ledger is one per-user membership set.
type Ledger interface {
	// Add reports false when the pair was already present.
	Add(ctx context.Context, userID, filmID uint) (bool, error)
	// Remove reports false when there was nothing to delete.
	Remove(ctx context.Context, userID, filmID uint) (bool, error)
	ListFilms(ctx context.Context, userID uint) ([]*model.Film, error)
}

// Reviews stores at most one comment per (user, film).
type Reviews interface {
	// Upsert reports true when a new row was inserted.
	Upsert(ctx context.Context, c *model.Comment) (bool, error)
	ListByFilm(ctx context.Context, filmID uint, limit int) ([]*model.Comment, error)
	CountByFilm(ctx context.Context, filmID uint) (int64, error)
}

var (
	_ Credentials = (*UserRepository)(nil)
	_ Catalogue   = (*FilmRepository)(nil)
	_ Ledger      = (*MembershipRepository)(nil)
	_ Reviews     = (*CommentRepository)(nil)
)
