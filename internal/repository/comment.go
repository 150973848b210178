package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dcurrasv25/filmbox-backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Upsert inserts c or overwrites score and content of the user's existing comment on the film.
// On return c holds the stored row.
func (r *CommentRepository) Upsert(ctx context.Context, c *model.Comment) (bool, error) {
	created, err := r.upsertOnce(ctx, c)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// lost the insert race to a concurrent request; the row exists now
		created, err = r.upsertOnce(ctx, c)
	}
	if err != nil {
		return false, fmt.Errorf("upsert comment user=%d film=%d: %w", c.UserID, c.FilmID, err)
	}
	return created, nil
}

func (r *CommentRepository) upsertOnce(ctx context.Context, c *model.Comment) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Comment
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND film_id = ?", c.UserID, c.FilmID).
			First(&existing).Error
		now := time.Now()

		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.ID = 0
			c.CreatedAt = now
			c.UpdatedAt = nil
			if err := tx.Create(c).Error; err != nil {
				return err
			}
			created = true
			return nil
		}
		if err != nil {
			return err
		}

		if err := tx.Model(&existing).Updates(map[string]interface{}{
			"score":      c.Score,
			"content":    c.Content,
			"updated_at": now,
		}).Error; err != nil {
			return err
		}
		c.ID = existing.ID
		c.CreatedAt = existing.CreatedAt
		c.UpdatedAt = &now
		return nil
	})
	return created, err
}

// ListByFilm newest first with authors preloaded; limit <= 0 returns every comment
func (r *CommentRepository) ListByFilm(ctx context.Context, filmID uint, limit int) ([]*model.Comment, error) {
	var comments []*model.Comment
	q := r.db.WithContext(ctx).
		Preload("User").
		Where("film_id = ?", filmID).
		Order("created_at DESC").
		Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("list comments for film %d: %w", filmID, err)
	}
	return comments, nil
}

// CountByFilm number of comments on the film
func (r *CommentRepository) CountByFilm(ctx context.Context, filmID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Comment{}).Where("film_id = ?", filmID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count comments for film %d: %w", filmID, err)
	}
	return count, nil
}
