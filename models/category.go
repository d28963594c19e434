package models

import "github.com/google/uuid"

// Category is a single-choice classification for projects and events
type Category struct {
	ID   uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name string    `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex:idx_category_name"`
	Slug string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_category_slug"`
}
