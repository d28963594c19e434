package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project represents a published showcase project with its metadata
type Project struct {
	ID            uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title         string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Description   string                      `json:"description" db:"description" gorm:"type:text;not null"`
	Content       *string                     `json:"content,omitempty" db:"content" gorm:"type:text"`
	RepositoryURL *string                     `json:"repositoryUrl,omitempty" db:"repository_url" gorm:"type:text"`
	DemoURL       *string                     `json:"demoUrl,omitempty" db:"demo_url" gorm:"type:text"`
	Thumbnail     *string                     `json:"thumbnail,omitempty" db:"thumbnail" gorm:"type:text"`
	GalleryURLs   datatypes.JSONSlice[string] `json:"galleryUrls,omitempty" db:"gallery_urls"`
	Attachments   datatypes.JSON              `json:"attachments,omitempty" db:"attachments"`
	Published     bool                        `json:"published" db:"published" gorm:"not null;default:false"`
	Views         int                         `json:"views" db:"views" gorm:"not null;default:0"`
	Likes         int                         `json:"likes" db:"likes" gorm:"not null;default:0"`
	AuthorID      uuid.UUID                   `json:"authorId" db:"author_id" gorm:"type:uuid;not null;index:idx_project_author_id"`
	CategoryID    *uuid.UUID                  `json:"categoryId,omitempty" db:"category_id" gorm:"type:uuid;index:idx_project_category_id"`
	CreatedAt     time.Time                   `json:"createdAt" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time                   `json:"updatedAt" db:"updated_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`

	Author   User      `json:"author" gorm:"foreignKey:AuthorID;references:ID"`
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Tags     []Tag     `json:"tags,omitempty" gorm:"many2many:project_tags;constraint:OnDelete:CASCADE"`
}
