package database

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/showcasehq/showcase-backend/models"
)

// ProjectFilter narrows the project listing. Category matches the category
// slug exactly; Search is a case-insensitive substring match OR'd over
// title and description. Zero values mean "no filter".
type ProjectFilter struct {
	Category string
	Search   string
}

// ProjectUpdate is a partial-field update. Nil members are left untouched.
type ProjectUpdate struct {
	Title         *string
	Description   *string
	Content       *string
	RepositoryURL *string
	DemoURL       *string
	Thumbnail     *string
	GalleryURLs   []string
	Attachments   json.RawMessage
	Published     *bool
	CategoryID    *uuid.UUID
	TagNames      []string
}

type ProjectRepo interface {
	List(ctx context.Context, filter ProjectFilter) ([]models.Project, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	FindByIDAndIncrementView(ctx context.Context, id uuid.UUID) (*models.Project, error)
	IncrementLikes(ctx context.Context, id uuid.UUID) (int, error)
	Create(ctx context.Context, project *models.Project, tagNames []string) error
	Update(ctx context.Context, id uuid.UUID, update ProjectUpdate) (*models.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectRepo struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewProjectRepo(db *gorm.DB, timeout time.Duration) ProjectRepo {
	return &projectRepo{db: db, timeout: timeout}
}

// List returns published projects, newest first
func (r *projectRepo) List(ctx context.Context, filter ProjectFilter) ([]models.Project, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	q := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Where("projects.published = ?", true)

	if filter.Category != "" {
		q = q.Joins("JOIN categories ON categories.id = projects.category_id").
			Where("categories.slug = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("projects.title ILIKE ? OR projects.description ILIKE ?", pattern, pattern)
	}

	var projects []models.Project
	err := q.Order("projects.created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *projectRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var project models.Project
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Where("id = ?", id).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByIDAndIncrementView bumps the view counter and returns the
// post-increment row. The increment is a single UPDATE ... RETURNING so
// concurrent views of the same project never lose updates.
func (r *projectRepo) FindByIDAndIncrementView(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var project models.Project
	res := r.db.WithContext(ctx).
		Model(&project).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	if err := r.loadAssociations(ctx, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// IncrementLikes bumps the like counter by one and returns the new value.
// Atomic for the same reason as FindByIDAndIncrementView; repeated calls
// keep incrementing, idempotency is deliberately not guaranteed.
func (r *projectRepo) IncrementLikes(ctx context.Context, id uuid.UUID) (int, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var project models.Project
	res := r.db.WithContext(ctx).
		Model(&project).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return project.Likes, nil
}

// Create inserts a new project with its tag references in one transaction.
// Tags follow connect-or-create semantics keyed by slug; the thumbnail
// mirrors the first gallery entry when none was set explicitly.
func (r *projectRepo) Create(ctx context.Context, project *models.Project, tagNames []string) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	project.GalleryURLs = filterNonEmpty(project.GalleryURLs)
	if project.Thumbnail == nil && len(project.GalleryURLs) > 0 {
		thumbnail := project.GalleryURLs[0]
		project.Thumbnail = &thumbnail
	}
	project.Published = true
	project.Views = 0
	project.Likes = 0

	seeds := NormalizeTagNames(tagNames)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags, err := connectOrCreateTags(tx, seeds)
		if err != nil {
			return err
		}
		project.Tags = tags
		return tx.Create(project).Error
	})
}

// Update applies a partial-field update. A supplied non-empty gallery
// replaces the previous one entirely and re-derives the thumbnail from its
// first entry; a supplied tag list replaces the prior tag set via
// connect-or-create.
func (r *projectRepo) Update(ctx context.Context, id uuid.UUID, update ProjectUpdate) (*models.Project, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var updated *models.Project
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Project
		if err := tx.Where("id = ?", id).First(&existing).Error; err != nil {
			return err
		}

		fields := map[string]interface{}{}
		if update.Title != nil {
			fields["title"] = *update.Title
		}
		if update.Description != nil {
			fields["description"] = *update.Description
		}
		if update.Content != nil {
			fields["content"] = *update.Content
		}
		if update.RepositoryURL != nil {
			fields["repository_url"] = *update.RepositoryURL
		}
		if update.DemoURL != nil {
			fields["demo_url"] = *update.DemoURL
		}
		if update.Thumbnail != nil {
			fields["thumbnail"] = *update.Thumbnail
		}
		if update.GalleryURLs != nil {
			gallery := filterNonEmpty(update.GalleryURLs)
			fields["gallery_urls"] = datatypes.NewJSONSlice(gallery)
			if len(gallery) > 0 {
				fields["thumbnail"] = gallery[0]
			}
		}
		if update.Attachments != nil {
			fields["attachments"] = datatypes.JSON(update.Attachments)
		}
		if update.Published != nil {
			fields["published"] = *update.Published
		}
		if update.CategoryID != nil {
			fields["category_id"] = *update.CategoryID
		}

		if len(fields) > 0 {
			if err := tx.Model(&existing).Updates(fields).Error; err != nil {
				return err
			}
		}

		if update.TagNames != nil {
			tags, err := connectOrCreateTags(tx, NormalizeTagNames(update.TagNames))
			if err != nil {
				return err
			}
			if err := tx.Model(&existing).Association("Tags").Replace(&tags); err != nil {
				return err
			}
		}

		var reloaded models.Project
		if err := tx.Preload("Author").Preload("Category").Preload("Tags").
			Where("id = ?", id).First(&reloaded).Error; err != nil {
			return err
		}
		updated = &reloaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a project by id. Hard delete, no tombstone.
func (r *projectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *projectRepo) loadAssociations(ctx context.Context, project *models.Project) error {
	db := r.db.WithContext(ctx)
	if err := db.Model(project).Association("Tags").Find(&project.Tags); err != nil {
		return err
	}
	if err := db.Model(project).Association("Author").Find(&project.Author); err != nil {
		return err
	}
	if project.CategoryID != nil {
		if err := db.Model(project).Association("Category").Find(&project.Category); err != nil {
			return err
		}
	}
	return nil
}

// connectOrCreateTags resolves each seed to an existing tag row by slug or
// inserts a new one with the first-seen display name. Runs inside the
// caller's transaction so a failed item write never leaves orphaned tags
// half-attached.
func connectOrCreateTags(tx *gorm.DB, seeds []TagSeed) ([]models.Tag, error) {
	if len(seeds) == 0 {
		return nil, nil
	}
	tags := make([]models.Tag, 0, len(seeds))
	for _, seed := range seeds {
		var tag models.Tag
		err := tx.Where("slug = ?", seed.Slug).First(&tag).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = models.Tag{Name: seed.Name, Slug: seed.Slug}
			err = tx.Create(&tag).Error
		}
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
