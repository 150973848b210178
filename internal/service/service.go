package service

import (
	"context"

	"github.com/dcurrasv25/filmbox-backend/internal/model"
	"github.com/dcurrasv25/filmbox-backend/internal/repository"
)

// Authorization registration, login and bearer-token resolution.
type Authorization interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, userID uint) error
	Resolve(ctx context.Context, authHeader string) (Identity, error)
}

// Catalogue read-only film, category and user lookups.
type Catalogue interface {
	GetFilm(ctx context.Context, id uint) (*model.Film, error)
	SearchFilms(ctx context.Context, query string) ([]*model.Film, error)
	SearchUsers(ctx context.Context, query string) ([]model.PublicUser, error)
	Categories(ctx context.Context) ([]*model.Category, error)
}

// Ledger watched / wishlist / favorite membership.
type Ledger interface {
	Add(ctx context.Context, kind model.ListKind, userID, filmID uint) (AddOutcome, error)
	Remove(ctx context.Context, kind model.ListKind, userID, filmID uint) error
	List(ctx context.Context, kind model.ListKind, userID uint) ([]*model.Film, error)
}

// Reviews one rating+comment per user and film.
type Reviews interface {
	// Upsert reports true when the review was created rather than updated.
	Upsert(ctx context.Context, user *model.User, filmID uint, in ReviewInput) (*model.Review, bool, error)
	List(ctx context.Context, filmID uint, showAll bool) (*ReviewListing, error)
}

// Service aggregates every domain service the handlers use.
type Service struct {
	Authorization
	Catalogue
	Ledger
	Reviews
}

// NewService wires the repositories into the concrete services.
func NewService(repos *repository.Repositories, avatarURL string) *Service {
	return &Service{
		Authorization: NewAuthService(repos.User),
		Catalogue:     NewCatalogueService(repos.Film, repos.User, avatarURL),
		Ledger:        NewLedgerService(repos.Film, repos.Memberships),
		Reviews:       NewReviewService(repos.Film, repos.Comment, avatarURL),
	}
}
