package service

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/dcurrasv25/filmbox-backend/internal/metrics"
	"github.com/dcurrasv25/filmbox-backend/internal/model"
	"github.com/dcurrasv25/filmbox-backend/internal/repository"
)

const (
	minHalfPoints = 2  // 1.0
	maxHalfPoints = 10 // 5.0
	halfStepEps   = 1e-9

	previewSize = 3
)

// ReviewInput raw review submission. Rating is whatever the JSON body carried:
// a number, a numeric string, or nil.
type ReviewInput struct {
	Rating  interface{}
	Comment string
}

// ReviewListing holds exactly one of Preview or All.
type ReviewListing struct {
	Preview *model.ReviewPreview
	All     []model.Review
}

// ReviewService rating+comment ledger
type ReviewService struct {
	films     repository.Catalogue
	comments  repository.Reviews
	avatarURL string
}

func NewReviewService(films repository.Catalogue, comments repository.Reviews, avatarURL string) *ReviewService {
	return &ReviewService{films: films, comments: comments, avatarURL: avatarURL}
}

// Upsert validates the input, then creates the user's review or overwrites it.
func (s *ReviewService) Upsert(ctx context.Context, user *model.User, filmID uint, in ReviewInput) (*model.Review, bool, error) {
	halfPoints, err := ParseRating(in.Rating)
	if err != nil {
		return nil, false, err
	}
	content := strings.TrimSpace(in.Comment)
	if content == "" {
		return nil, false, invalid("comment", "comment is required")
	}

	ok, err := s.films.Exists(ctx, filmID)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, ErrFilmNotFound
	}

	c := &model.Comment{
		UserID:  user.ID,
		FilmID:  filmID,
		Score:   float64(halfPoints) / 2,
		Content: content,
	}
	created, err := s.comments.Upsert(ctx, c)
	if err != nil {
		return nil, false, err
	}

	outcome := "updated"
	if created {
		outcome = "created"
	}
	metrics.RecordLedgerMutation("review", outcome)

	c.User = user
	r := s.toReview(c)
	return &r, created, nil
}

// List returns the three latest reviews plus the total, or every review when showAll is set.
func (s *ReviewService) List(ctx context.Context, filmID uint, showAll bool) (*ReviewListing, error) {
	ok, err := s.films.Exists(ctx, filmID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrFilmNotFound
	}

	if showAll {
		comments, err := s.comments.ListByFilm(ctx, filmID, 0)
		if err != nil {
			return nil, err
		}
		return &ReviewListing{All: s.toReviews(comments)}, nil
	}

	comments, err := s.comments.ListByFilm(ctx, filmID, previewSize)
	if err != nil {
		return nil, err
	}
	total, err := s.comments.CountByFilm(ctx, filmID)
	if err != nil {
		return nil, err
	}
	return &ReviewListing{Preview: &model.ReviewPreview{
		Reviews:      s.toReviews(comments),
		TotalReviews: total,
	}}, nil
}

// ParseRating converts a submitted rating into half-points (2..10). Any value
// within halfStepEps of a half step is accepted, so 3.5000000001 counts as 3.5.
func ParseRating(raw interface{}) (int, error) {
	var rating float64
	switch v := raw.(type) {
	case nil:
		return 0, invalid("rating", "rating is required")
	case float64:
		rating = v
	case float32:
		rating = float64(v)
	case int:
		rating = float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, invalid("rating", "rating must be a number")
		}
		rating = f
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, invalid("rating", "rating is required")
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, invalid("rating", "rating must be a number")
		}
		rating = f
	default:
		return 0, invalid("rating", "rating must be a number")
	}

	if math.IsNaN(rating) || math.IsInf(rating, 0) {
		return 0, invalid("rating", "rating must be a number")
	}
	doubled := rating * 2
	rounded := math.Round(doubled)
	if math.Abs(doubled-rounded) > halfStepEps {
		return 0, invalid("rating", "rating must be a multiple of 0.5")
	}
	if rounded < minHalfPoints || rounded > maxHalfPoints {
		return 0, invalid("rating", "rating must be between 1 and 5")
	}
	return int(rounded), nil
}

// ParseShowAll only the literal "true", in any case, enables the full listing.
func ParseShowAll(v string) bool {
	return strings.EqualFold(v, "true")
}

func (s *ReviewService) toReviews(comments []*model.Comment) []model.Review {
	out := make([]model.Review, 0, len(comments))
	for _, c := range comments {
		out = append(out, s.toReview(c))
	}
	return out
}

func (s *ReviewService) toReview(c *model.Comment) model.Review {
	r := model.Review{
		ID:        c.ID,
		FilmID:    c.FilmID,
		Score:     c.Score,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.User != nil {
		r.User = c.User.Public(s.avatarURL)
	} else {
		r.User = model.PublicUser{ID: c.UserID, AvatarURL: s.avatarURL}
	}
	return r
}
