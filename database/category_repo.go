package database

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/showcasehq/showcase-backend/models"
)

const (
	categoriesCacheKey = "categories:all"
	categoriesCacheTTL = 30 * time.Minute
)

type CategoryRepo interface {
	List(ctx context.Context) ([]models.Category, error)
	InvalidateCache(ctx context.Context) error
}

type categoryRepo struct {
	db      *gorm.DB
	redis   *redis.Client
	timeout time.Duration
}

// NewCategoryRepo builds a category repository with an optional Redis
// read-through cache. A nil client disables caching entirely.
func NewCategoryRepo(db *gorm.DB, redisClient *redis.Client, timeout time.Duration) CategoryRepo {
	return &categoryRepo{db: db, redis: redisClient, timeout: timeout}
}

// List returns every category ordered by name. The category set changes
// only on seeding, so cache hits serve almost every request.
func (r *categoryRepo) List(ctx context.Context) ([]models.Category, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if r.redis != nil {
		if cached, err := r.redis.Get(ctx, categoriesCacheKey).Result(); err == nil {
			var categories []models.Category
			if err := json.Unmarshal([]byte(cached), &categories); err == nil {
				return categories, nil
			}
		}
	}

	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}

	if r.redis != nil {
		if payload, err := json.Marshal(categories); err == nil {
			// best effort: a failed cache write never fails the request
			r.redis.Set(ctx, categoriesCacheKey, payload, categoriesCacheTTL)
		}
	}
	return categories, nil
}

func (r *categoryRepo) InvalidateCache(ctx context.Context) error {
	if r.redis == nil {
		return nil
	}
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()
	return r.redis.Del(ctx, categoriesCacheKey).Err()
}
