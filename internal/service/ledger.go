package service

import (
	"context"
	"fmt"

	"github.com/dcurrasv25/filmbox-backend/internal/metrics"
	"github.com/dcurrasv25/filmbox-backend/internal/model"
	"github.com/dcurrasv25/filmbox-backend/internal/repository"
)

// AddOutcome result of adding a film to a list
type AddOutcome int

const (
	Created AddOutcome = iota + 1
	AlreadyExists
)

func (o AddOutcome) String() string {
	switch o {
	case Created:
		return "created"
	case AlreadyExists:
		return "already_exists"
	}
	return "unknown"
}

// LedgerService per-user watched / wishlist / favorite sets
type LedgerService struct {
	films repository.Catalogue
	sets  map[model.ListKind]repository.Ledger
}

func NewLedgerService(films repository.Catalogue, sets map[model.ListKind]repository.Ledger) *LedgerService {
	return &LedgerService{films: films, sets: sets}
}

// Add is idempotent: a second call for the same pair reports AlreadyExists.
func (s *LedgerService) Add(ctx context.Context, kind model.ListKind, userID, filmID uint) (AddOutcome, error) {
	set, err := s.set(kind)
	if err != nil {
		return 0, err
	}
	if err := s.requireFilm(ctx, filmID); err != nil {
		return 0, err
	}

	inserted, err := set.Add(ctx, userID, filmID)
	if err != nil {
		return 0, err
	}
	outcome := AlreadyExists
	if inserted {
		outcome = Created
	}
	metrics.RecordLedgerMutation(string(kind), outcome.String())
	return outcome, nil
}

// Remove fails with ErrFilmNotFound or ErrNotInList and never touches other rows.
func (s *LedgerService) Remove(ctx context.Context, kind model.ListKind, userID, filmID uint) error {
	set, err := s.set(kind)
	if err != nil {
		return err
	}
	if err := s.requireFilm(ctx, filmID); err != nil {
		return err
	}

	removed, err := set.Remove(ctx, userID, filmID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotInList
	}
	metrics.RecordLedgerMutation(string(kind), "removed")
	return nil
}

func (s *LedgerService) List(ctx context.Context, kind model.ListKind, userID uint) ([]*model.Film, error) {
	set, err := s.set(kind)
	if err != nil {
		return nil, err
	}
	films, err := set.ListFilms(ctx, userID)
	if err != nil {
		return nil, err
	}
	if films == nil {
		films = []*model.Film{}
	}
	return films, nil
}

func (s *LedgerService) set(kind model.ListKind) (repository.Ledger, error) {
	set, ok := s.sets[kind]
	if !ok {
		return nil, fmt.Errorf("no store for list %q", kind)
	}
	return set, nil
}

func (s *LedgerService) requireFilm(ctx context.Context, filmID uint) error {
	ok, err := s.films.Exists(ctx, filmID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrFilmNotFound
	}
	return nil
}
