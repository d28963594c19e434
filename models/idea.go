package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Idea represents a community idea submission. Unlike Project, the author is
// a denormalized free-text name so that anonymous submissions stay possible,
// and tags are stored inline rather than as relations.
type Idea struct {
	ID          uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Summary     string                      `json:"summary" db:"summary" gorm:"type:text;not null;default:''"`
	Description *string                     `json:"description,omitempty" db:"description" gorm:"type:text"`
	Tags        datatypes.JSONSlice[string] `json:"tags,omitempty" db:"tags"`
	Images      datatypes.JSONSlice[string] `json:"images,omitempty" db:"images"`
	Thumbnail   *string                     `json:"thumbnail,omitempty" db:"thumbnail" gorm:"type:text"`
	Location    *string                     `json:"location,omitempty" db:"location" gorm:"type:text"`
	AuthorName  *string                     `json:"authorName,omitempty" db:"author_name" gorm:"type:text"`
	Views       int                         `json:"views" db:"views" gorm:"not null;default:0"`
	Likes       int                         `json:"likes" db:"likes" gorm:"not null;default:0"`
	CreatedAt   time.Time                   `json:"createdAt" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}
