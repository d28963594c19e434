package database

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/showcasehq/showcase-backend/models"
)

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type userRepo struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewUserRepo(db *gorm.DB, timeout time.Duration) UserRepo {
	return &userRepo{db: db, timeout: timeout}
}

// FindByEmail looks up a user by email. Used to resolve the demo author
// when a project submission carries no author id.
func (r *userRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
