package router

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dcurrasv25/filmbox-backend/internal/handler"
	"github.com/dcurrasv25/filmbox-backend/internal/model"
	"github.com/dcurrasv25/filmbox-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	users       map[string]*model.User // token -> user
	resolveErr  error
	loginResult *service.LoginResult
	loginErr    error
	registerErr error
	logoutErr   error

	lastLoginUsername string
	lastLogoutID      uint
	lastHeader        string
}

func (m *mockAuth) Register(ctx context.Context, username, password string) (*model.User, error) {
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	return &model.User{ID: 10, Username: username}, nil
}

func (m *mockAuth) Login(ctx context.Context, username, password string) (*service.LoginResult, error) {
	m.lastLoginUsername = username
	return m.loginResult, m.loginErr
}

func (m *mockAuth) Logout(ctx context.Context, userID uint) error {
	m.lastLogoutID = userID
	return m.logoutErr
}

func (m *mockAuth) Resolve(ctx context.Context, header string) (service.Identity, error) {
	m.lastHeader = header
	if m.resolveErr != nil {
		return service.Identity{}, m.resolveErr
	}
	token, ok := service.ExtractBearer(header)
	if !ok {
		return service.Identity{}, nil
	}
	return service.Identity{User: m.users[token]}, nil
}

type mockCatalogue struct {
	film      *model.Film
	films     []*model.Film
	users     []model.PublicUser
	err       error
	lastQuery string
	lastID    uint
}

func (m *mockCatalogue) GetFilm(ctx context.Context, id uint) (*model.Film, error) {
	m.lastID = id
	return m.film, m.err
}

func (m *mockCatalogue) SearchFilms(ctx context.Context, query string) ([]*model.Film, error) {
	m.lastQuery = query
	return m.films, m.err
}

func (m *mockCatalogue) SearchUsers(ctx context.Context, query string) ([]model.PublicUser, error) {
	m.lastQuery = query
	return m.users, m.err
}

func (m *mockCatalogue) Categories(ctx context.Context) ([]*model.Category, error) {
	return []*model.Category{{ID: 1, Title: "Drama"}}, m.err
}

type mockLedger struct {
	addOutcome service.AddOutcome
	addErr     error
	removeErr  error
	films      []*model.Film

	lastKind   model.ListKind
	lastUserID uint
	lastFilmID uint
	calls      int
}

func (m *mockLedger) Add(ctx context.Context, kind model.ListKind, userID, filmID uint) (service.AddOutcome, error) {
	m.calls++
	m.lastKind, m.lastUserID, m.lastFilmID = kind, userID, filmID
	return m.addOutcome, m.addErr
}

func (m *mockLedger) Remove(ctx context.Context, kind model.ListKind, userID, filmID uint) error {
	m.calls++
	m.lastKind, m.lastUserID, m.lastFilmID = kind, userID, filmID
	return m.removeErr
}

func (m *mockLedger) List(ctx context.Context, kind model.ListKind, userID uint) ([]*model.Film, error) {
	m.calls++
	m.lastKind, m.lastUserID = kind, userID
	return m.films, nil
}

type mockReviews struct {
	review   *model.Review
	created  bool
	err      error
	listing  *service.ReviewListing
	lastIn   service.ReviewInput
	lastUser *model.User
	showAll  bool
}

func (m *mockReviews) Upsert(ctx context.Context, user *model.User, filmID uint, in service.ReviewInput) (*model.Review, bool, error) {
	m.lastUser = user
	m.lastIn = in
	return m.review, m.created, m.err
}

func (m *mockReviews) List(ctx context.Context, filmID uint, showAll bool) (*service.ReviewListing, error) {
	m.showAll = showAll
	return m.listing, m.err
}

// ---- Shared Test Helpers ----

type mocks struct {
	auth      *mockAuth
	catalogue *mockCatalogue
	ledger    *mockLedger
	reviews   *mockReviews
}

const aliceToken = "alice-token"

func newTestRouter() (*gin.Engine, *mocks) {
	gin.SetMode(gin.TestMode)
	m := &mocks{
		auth: &mockAuth{users: map[string]*model.User{
			aliceToken: {ID: 1, Username: "alice"},
		}},
		catalogue: &mockCatalogue{},
		ledger:    &mockLedger{},
		reviews:   &mockReviews{},
	}
	s := &service.Service{
		Authorization: m.auth,
		Catalogue:     m.catalogue,
		Ledger:        m.ledger,
		Reviews:       m.reviews,
	}
	h := handler.NewHandler(s, "https://cdn/default.png", nil)
	return New(h, nil), m
}

func do(t *testing.T, r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doWithHeader(t *testing.T, r http.Handler, method, path, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", authorization)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
