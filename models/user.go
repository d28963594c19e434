package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the content author. There is no login flow; a single seeded demo
// user stands in for identity.
type User struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex:idx_user_email"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Image     *string   `json:"image,omitempty" db:"image" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}
