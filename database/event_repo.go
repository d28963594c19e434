package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/showcasehq/showcase-backend/models"
)

type EventRepo interface {
	List(ctx context.Context) ([]models.Event, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	FindByIDAndIncrementView(ctx context.Context, id uuid.UUID) (*models.Event, error)
	IncrementLikes(ctx context.Context, id uuid.UUID) (int, error)
	Create(ctx context.Context, event *models.Event) error
}

type eventRepo struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewEventRepo(db *gorm.DB, timeout time.Duration) EventRepo {
	return &eventRepo{db: db, timeout: timeout}
}

// List returns all events ordered by start time ascending, the default the
// events page expects
func (r *eventRepo) List(ctx context.Context) ([]models.Event, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var events []models.Event
	err := r.db.WithContext(ctx).Order("start_at ASC").Find(&events).Error
	return events, err
}

func (r *eventRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var event models.Event
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepo) FindByIDAndIncrementView(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var event models.Event
	res := r.db.WithContext(ctx).
		Model(&event).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &event, nil
}

func (r *eventRepo) IncrementLikes(ctx context.Context, id uuid.UUID) (int, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var event models.Event
	res := r.db.WithContext(ctx).
		Model(&event).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return event.Likes, nil
}

// Create inserts a new event. The banner mirrors the first gallery entry
// when none was supplied.
func (r *eventRepo) Create(ctx context.Context, event *models.Event) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	event.GalleryURLs = filterNonEmpty(event.GalleryURLs)
	if event.BannerURL == nil && len(event.GalleryURLs) > 0 {
		banner := event.GalleryURLs[0]
		event.BannerURL = &banner
	}
	event.Views = 0
	event.Likes = 0

	return r.db.WithContext(ctx).Create(event).Error
}
