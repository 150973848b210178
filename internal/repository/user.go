package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dcurrasv25/filmbox-backend/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// dummyHash is compared against when the username is unknown so both login failures cost the same
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("filmbox-dummy-password"), bcrypt.DefaultCost)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create hashes the password and inserts a user
func (r *UserRepository) Create(ctx context.Context, username, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("insert user %q: %w", username, err)
	}

	return user, nil
}

// FindByUsername returns (nil, nil) when no user matches
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}

	return &user, nil
}

// FindByTokenHash returns (nil, nil) when the token belongs to nobody
func (r *UserRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select user by token: %w", err)
	}

	return &user, nil
}

// CheckPassword compares password against the stored bcrypt hash
func (r *UserRepository) CheckPassword(user *model.User, password string) bool {
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	return err == nil
}

// RotateToken locks the user row so concurrent logins apply one after another
func (r *UserRepository) RotateToken(ctx context.Context, userID uint, tokenHash *string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked model.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&locked, userID).Error; err != nil {
			return fmt.Errorf("lock user %d: %w", userID, err)
		}
		if err := tx.Model(&model.User{}).
			Where("id = ?", userID).
			Update("token_hash", tokenHash).Error; err != nil {
			return fmt.Errorf("update token for user %d: %w", userID, err)
		}
		return nil
	})
}

// Search case-insensitive username substring match, ascending id
func (r *UserRepository) Search(ctx context.Context, query string) ([]*model.User, error) {
	var users []*model.User
	err := r.db.WithContext(ctx).
		Where("username ILIKE ?", likePattern(query)).
		Order("id ASC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps q for a substring ILIKE, escaping wildcards (postgres escapes with \ by default)
func likePattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}
