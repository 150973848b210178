package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dcurrasv25/filmbox-backend/internal/metrics"
	"github.com/dcurrasv25/filmbox-backend/internal/model"
	"github.com/dcurrasv25/filmbox-backend/internal/repository"
)

const (
	bearerPrefix = "Bearer "
	tokenBytes   = 32

	minUsernameLen = 3
	maxUsernameLen = 150
	minPasswordLen = 8
)

// Identity the caller behind a request; User is nil for anonymous callers.
type Identity struct {
	User *model.User
}

// Anonymous reports whether no user was resolved.
func (i Identity) Anonymous() bool {
	return i.User == nil
}

// LoginResult is returned on successful login.
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// AuthService handles credentials and session tokens.
type AuthService struct {
	users repository.Credentials
}

func NewAuthService(users repository.Credentials) *AuthService {
	return &AuthService{users: users}
}

// Register creates an account.
func (s *AuthService) Register(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if n := utf8.RuneCountInString(username); n < minUsernameLen || n > maxUsernameLen {
		return nil, invalid("username", fmt.Sprintf("must be between %d and %d characters", minUsernameLen, maxUsernameLen))
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return nil, invalid("password", fmt.Sprintf("must be at least %d characters", minPasswordLen))
	}

	u, err := s.users.Create(ctx, username, password)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, ErrUsernameTaken
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Login checks credentials and issues a fresh token, replacing any previous one.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		metrics.RecordLogin("error")
		return nil, err
	}
	if !s.users.CheckPassword(u, password) {
		metrics.RecordLogin("invalid_credentials")
		return nil, ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		metrics.RecordLogin("error")
		return nil, err
	}
	hash := HashToken(token)
	if err := s.users.RotateToken(ctx, u.ID, &hash); err != nil {
		metrics.RecordLogin("error")
		return nil, err
	}

	metrics.RecordLogin("success")
	return &LoginResult{Token: token, Username: u.Username}, nil
}

// Logout drops the user's active token.
func (s *AuthService) Logout(ctx context.Context, userID uint) error {
	return s.users.RotateToken(ctx, userID, nil)
}

// Resolve maps an Authorization header to an identity. A missing, malformed or
// unknown token is anonymous, not an error; only storage faults are returned.
func (s *AuthService) Resolve(ctx context.Context, authHeader string) (Identity, error) {
	token, ok := ExtractBearer(authHeader)
	if !ok {
		return Identity{}, nil
	}
	u, err := s.users.FindByTokenHash(ctx, HashToken(token))
	if err != nil {
		return Identity{}, err
	}
	return Identity{User: u}, nil
}

// ExtractBearer returns the token of a "Bearer <token>" header. The scheme is
// case-sensitive and separated by exactly one space.
func ExtractBearer(header string) (string, bool) {
	token, found := strings.CutPrefix(header, bearerPrefix)
	if !found || token == "" || strings.ContainsAny(token, " \t\r\n") {
		return "", false
	}
	return token, true
}

// HashToken is the form a token is stored and looked up in.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
