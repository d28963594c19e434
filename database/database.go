package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/showcasehq/showcase-backend/models"
)

// DefaultQueryTimeout bounds every storage operation so a wedged connection
// surfaces as a storage failure instead of hanging the request.
const DefaultQueryTimeout = 10 * time.Second

type Database struct {
	projectRepo  ProjectRepo
	ideaRepo     IdeaRepo
	eventRepo    EventRepo
	categoryRepo CategoryRepo
	userRepo     UserRepo
}

// New initializes a new Database struct with each repository using a shared
// GORM database instance. The redis client is optional; a nil client turns
// the category cache into a passthrough.
func New(db *gorm.DB, redisClient *redis.Client, queryTimeout time.Duration) Database {
	if queryTimeout <= 0 {
		queryTimeout = DefaultQueryTimeout
	}
	return Database{
		projectRepo:  NewProjectRepo(db, queryTimeout),
		ideaRepo:     NewIdeaRepo(db, queryTimeout),
		eventRepo:    NewEventRepo(db, queryTimeout),
		categoryRepo: NewCategoryRepo(db, redisClient, queryTimeout),
		userRepo:     NewUserRepo(db, queryTimeout),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() ProjectRepo {
	return d.projectRepo
}

func (d Database) IdeaRepo() IdeaRepo {
	return d.ideaRepo
}

func (d Database) EventRepo() EventRepo {
	return d.eventRepo
}

func (d Database) CategoryRepo() CategoryRepo {
	return d.categoryRepo
}

func (d Database) UserRepo() UserRepo {
	return d.userRepo
}

// AutoMigrate creates or updates the schema for every model
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Project{},
		&models.Idea{},
		&models.Event{},
	)
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}
