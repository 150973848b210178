package service

import (
	"context"
	"strings"

	"github.com/dcurrasv25/filmbox-backend/internal/model"
	"github.com/dcurrasv25/filmbox-backend/internal/repository"
)

// CatalogueService film and user lookups
type CatalogueService struct {
	films     repository.Catalogue
	users     repository.Credentials
	avatarURL string
}

func NewCatalogueService(films repository.Catalogue, users repository.Credentials, avatarURL string) *CatalogueService {
	return &CatalogueService{films: films, users: users, avatarURL: avatarURL}
}

func (s *CatalogueService) GetFilm(ctx context.Context, id uint) (*model.Film, error) {
	film, err := s.films.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if film == nil {
		return nil, ErrFilmNotFound
	}
	return film, nil
}

// SearchFilms requires a non-blank query; an empty match is a valid empty result.
func (s *CatalogueService) SearchFilms(ctx context.Context, query string) ([]*model.Film, error) {
	q, err := searchTerm(query)
	if err != nil {
		return nil, err
	}
	films, err := s.films.SearchByTitle(ctx, q)
	if err != nil {
		return nil, err
	}
	if films == nil {
		films = []*model.Film{}
	}
	return films, nil
}

func (s *CatalogueService) SearchUsers(ctx context.Context, query string) ([]model.PublicUser, error) {
	q, err := searchTerm(query)
	if err != nil {
		return nil, err
	}
	users, err := s.users.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	out := make([]model.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public(s.avatarURL))
	}
	return out, nil
}

func (s *CatalogueService) Categories(ctx context.Context) ([]*model.Category, error) {
	categories, err := s.films.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []*model.Category{}
	}
	return categories, nil
}

func searchTerm(query string) (string, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return "", invalid("query", "search query is required")
	}
	return q, nil
}
