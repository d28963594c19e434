package database

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/showcasehq/showcase-backend/models"
)

type IdeaRepo interface {
	List(ctx context.Context) ([]models.Idea, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Idea, error)
	FindByIDAndIncrementView(ctx context.Context, id uuid.UUID) (*models.Idea, error)
	IncrementLikes(ctx context.Context, id uuid.UUID) (int, error)
	Create(ctx context.Context, idea *models.Idea) error
}

type ideaRepo struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewIdeaRepo(db *gorm.DB, timeout time.Duration) IdeaRepo {
	return &ideaRepo{db: db, timeout: timeout}
}

// List returns all ideas, newest first
func (r *ideaRepo) List(ctx context.Context) ([]models.Idea, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var ideas []models.Idea
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ideas).Error
	return ideas, err
}

func (r *ideaRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Idea, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var idea models.Idea
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&idea).Error; err != nil {
		return nil, err
	}
	return &idea, nil
}

func (r *ideaRepo) FindByIDAndIncrementView(ctx context.Context, id uuid.UUID) (*models.Idea, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var idea models.Idea
	res := r.db.WithContext(ctx).
		Model(&idea).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &idea, nil
}

func (r *ideaRepo) IncrementLikes(ctx context.Context, id uuid.UUID) (int, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var idea models.Idea
	res := r.db.WithContext(ctx).
		Model(&idea).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return idea.Likes, nil
}

// Create normalizes the submission before inserting: title trimmed, tags
// deduplicated by slug keeping first-seen display names, empty media
// entries dropped, the summary derived from the description when absent,
// and the thumbnail mirroring the first image.
func (r *ideaRepo) Create(ctx context.Context, idea *models.Idea) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	idea.Title = strings.TrimSpace(idea.Title)

	seeds := NormalizeTagNames(idea.Tags)
	names := make([]string, 0, len(seeds))
	for _, seed := range seeds {
		names = append(names, seed.Name)
	}
	idea.Tags = names

	idea.Images = filterNonEmpty(idea.Images)
	if idea.Thumbnail == nil && len(idea.Images) > 0 {
		thumbnail := idea.Images[0]
		idea.Thumbnail = &thumbnail
	}

	description := ""
	if idea.Description != nil {
		description = *idea.Description
	}
	idea.Summary = DeriveSummary(idea.Summary, description)

	idea.Views = 0
	idea.Likes = 0

	return r.db.WithContext(ctx).Create(idea).Error
}
