package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dcurrasv25/filmbox-backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MembershipRepository one of the watched / wishlist / favorite tables
type MembershipRepository struct {
	db   *gorm.DB
	kind model.ListKind
}

func NewMembershipRepository(db *gorm.DB, kind model.ListKind) *MembershipRepository {
	return &MembershipRepository{db: db, kind: kind}
}

// Add inserts the pair; the primary key makes a concurrent duplicate a no-op
func (r *MembershipRepository) Add(ctx context.Context, userID, filmID uint) (bool, error) {
	m := &model.Membership{
		UserID:    userID,
		FilmID:    filmID,
		CreatedAt: time.Now(),
	}
	res := r.db.WithContext(ctx).
		Table(r.kind.Table()).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(m)
	if res.Error != nil {
		return false, fmt.Errorf("insert into %s: %w", r.kind.Table(), res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Remove deletes only the (user, film) row
func (r *MembershipRepository) Remove(ctx context.Context, userID, filmID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Table(r.kind.Table()).
		Where("user_id = ? AND film_id = ?", userID, filmID).
		Delete(&model.Membership{})
	if res.Error != nil {
		return false, fmt.Errorf("delete from %s: %w", r.kind.Table(), res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ListFilms the user's films in this set, newest membership first
func (r *MembershipRepository) ListFilms(ctx context.Context, userID uint) ([]*model.Film, error) {
	table := r.kind.Table()
	var films []*model.Film
	err := r.db.WithContext(ctx).
		Model(&model.Film{}).
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("categories.id ASC") }).
		Joins(fmt.Sprintf("JOIN %s m ON m.film_id = films.id", table)).
		Where("m.user_id = ?", userID).
		Order("m.created_at DESC").
		Find(&films).Error
	if err != nil {
		return nil, fmt.Errorf("list %s for user %d: %w", table, userID, err)
	}
	for _, f := range films {
		f.DedupeCategories()
	}
	return films, nil
}
