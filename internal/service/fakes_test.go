package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dcurrasv25/filmbox-backend/internal/model"
	"github.com/dcurrasv25/filmbox-backend/internal/repository"
)

// ---- in-memory repositories ----

type fakeUsers struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]*model.User
	pw     map[uint]string
	err    error // returned by every method when set
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[uint]*model.User{}, pw: map[uint]string{}}
}

func (f *fakeUsers) Create(ctx context.Context, username, password string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Username == username {
			return nil, repository.ErrDuplicate
		}
	}
	f.nextID++
	u := &model.User{ID: f.nextID, Username: username, PasswordHash: "hashed:" + password, CreatedAt: time.Now()}
	f.byID[u.ID] = u
	f.pw[u.ID] = password
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) FindByTokenHash(ctx context.Context, tokenHash string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.TokenHash != nil && *u.TokenHash == tokenHash {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) CheckPassword(user *model.User, password string) bool {
	if user == nil {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pw[user.ID] == password
}

func (f *fakeUsers) RotateToken(ctx context.Context, userID uint, tokenHash *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	u, ok := f.byID[userID]
	if !ok {
		return errors.New("no such user")
	}
	if tokenHash == nil {
		u.TokenHash = nil
		return nil
	}
	h := *tokenHash
	u.TokenHash = &h
	return nil
}

func (f *fakeUsers) Search(ctx context.Context, query string) ([]*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []*model.User
	for _, u := range f.byID {
		if strings.Contains(strings.ToLower(u.Username), strings.ToLower(query)) {
			cp := *u
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeFilms struct {
	films      map[uint]*model.Film
	categories []*model.Category
	err        error
}

func newFakeFilms(films ...*model.Film) *fakeFilms {
	f := &fakeFilms{films: map[uint]*model.Film{}}
	for _, film := range films {
		f.films[film.ID] = film
	}
	return f
}

func (f *fakeFilms) FindByID(ctx context.Context, id uint) (*model.Film, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.films[id], nil
}

func (f *fakeFilms) Exists(ctx context.Context, id uint) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.films[id]
	return ok, nil
}

func (f *fakeFilms) SearchByTitle(ctx context.Context, query string) ([]*model.Film, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*model.Film
	for _, film := range f.films {
		if strings.Contains(strings.ToLower(film.Title), strings.ToLower(query)) {
			out = append(out, film)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeFilms) ListCategories(ctx context.Context) ([]*model.Category, error) {
	return f.categories, f.err
}

type pair struct{ user, film uint }

type fakeSet struct {
	mu    sync.Mutex
	rows  map[pair]time.Time
	films *fakeFilms
}

func newFakeSet(films *fakeFilms) *fakeSet {
	return &fakeSet{rows: map[pair]time.Time{}, films: films}
}

func (s *fakeSet) Add(ctx context.Context, userID, filmID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := pair{userID, filmID}
	if _, ok := s.rows[k]; ok {
		return false, nil
	}
	s.rows[k] = time.Now()
	return true, nil
}

func (s *fakeSet) Remove(ctx context.Context, userID, filmID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := pair{userID, filmID}
	if _, ok := s.rows[k]; !ok {
		return false, nil
	}
	delete(s.rows, k)
	return true, nil
}

func (s *fakeSet) ListFilms(ctx context.Context, userID uint) ([]*model.Film, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.Film
	for k := range s.rows {
		if k.user == userID {
			out = append(out, s.films.films[k.film])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeSet) count(userID, filmID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[pair{userID, filmID}]; ok {
		return 1
	}
	return 0
}

type fakeComments struct {
	mu     sync.Mutex
	nextID uint
	rows   []*model.Comment
	clock  time.Time
}

func newFakeComments() *fakeComments {
	return &fakeComments{clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeComments) tick() time.Time {
	f.clock = f.clock.Add(time.Minute)
	return f.clock
}

func (f *fakeComments) Upsert(ctx context.Context, c *model.Comment) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := f.tick()
	for _, row := range f.rows {
		if row.UserID == c.UserID && row.FilmID == c.FilmID {
			row.Score = c.Score
			row.Content = c.Content
			row.UpdatedAt = &now
			*c = *row
			return false, nil
		}
	}
	f.nextID++
	row := *c
	row.ID = f.nextID
	row.CreatedAt = now
	f.rows = append(f.rows, &row)
	*c = row
	return true, nil
}

func (f *fakeComments) ListByFilm(ctx context.Context, filmID uint, limit int) ([]*model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.Comment
	for _, row := range f.rows {
		if row.FilmID == filmID {
			cp := *row
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeComments) CountByFilm(ctx context.Context, filmID uint) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, row := range f.rows {
		if row.FilmID == filmID {
			n++
		}
	}
	return n, nil
}

func (f *fakeComments) rowsFor(userID, filmID uint) []*model.Comment {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.Comment
	for _, row := range f.rows {
		if row.UserID == userID && row.FilmID == filmID {
			out = append(out, row)
		}
	}
	return out
}

func sampleFilms() *fakeFilms {
	return newFakeFilms(
		&model.Film{ID: 1, Title: "Star Wars"},
		&model.Film{ID: 2, Title: "War Games"},
		&model.Film{ID: 3, Title: "Amélie"},
		&model.Film{ID: 4, Title: "The Warriors"},
	)
}
