package models

import "github.com/google/uuid"

// Tag is a shared label attached to projects. The slug is the uniqueness
// key; the display name keeps whatever casing the first submitter used.
type Tag struct {
	ID   uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name string    `json:"name" db:"name" gorm:"type:text;not null"`
	Slug string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_tag_slug"`
}
