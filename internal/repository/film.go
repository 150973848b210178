package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dcurrasv25/filmbox-backend/internal/model"
	"gorm.io/gorm"
)

type FilmRepository struct {
	db *gorm.DB
}

func NewFilmRepository(db *gorm.DB) *FilmRepository {
	return &FilmRepository{db: db}
}

// FindByID loads a film with its categories; (nil, nil) when missing
func (r *FilmRepository) FindByID(ctx context.Context, id uint) (*model.Film, error) {
	var film model.Film
	err := r.db.WithContext(ctx).
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("categories.id ASC") }).
		First(&film, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select film %d: %w", id, err)
	}

	film.DedupeCategories()
	return &film, nil
}

// Exists reports whether a film with id is in the catalogue
func (r *FilmRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Film{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count film %d: %w", id, err)
	}
	return count > 0, nil
}

// SearchByTitle case-insensitive title substring match, ascending id
func (r *FilmRepository) SearchByTitle(ctx context.Context, query string) ([]*model.Film, error) {
	var films []*model.Film
	err := r.db.WithContext(ctx).
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("categories.id ASC") }).
		Where("title ILIKE ?", likePattern(query)).
		Order("id ASC").
		Find(&films).Error
	if err != nil {
		return nil, fmt.Errorf("search films: %w", err)
	}
	for _, f := range films {
		f.DedupeCategories()
	}
	return films, nil
}

// ListCategories every category, ascending id
func (r *FilmRepository) ListCategories(ctx context.Context) ([]*model.Category, error) {
	var categories []*model.Category
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
