package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Event status values. An explicitly stored status is authoritative; when no
// explicit value is stored the status is computed from the event window.
const (
	EventStatusUpcoming = "upcoming"
	EventStatusRunning  = "running"
	EventStatusEnded    = "ended"
)

// Event represents a scheduled showcase event
type Event struct {
	ID               uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title            string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Subtitle         *string                     `json:"subtitle,omitempty" db:"subtitle" gorm:"type:text"`
	Summary          *string                     `json:"summary,omitempty" db:"summary" gorm:"type:text"`
	Description      *string                     `json:"description,omitempty" db:"description" gorm:"type:text"`
	Location         *string                     `json:"location,omitempty" db:"location" gorm:"type:text"`
	StartAt          time.Time                   `json:"startAt" db:"start_at" gorm:"type:timestamptz;not null;index:idx_event_start_at"`
	EndAt            time.Time                   `json:"endAt" db:"end_at" gorm:"type:timestamptz;not null"`
	RegisterLink     *string                     `json:"registerLink,omitempty" db:"register_link" gorm:"type:text"`
	RegisterDeadline *time.Time                  `json:"registerDeadline,omitempty" db:"register_deadline" gorm:"type:timestamptz"`
	Capacity         *int                        `json:"capacity,omitempty" db:"capacity"`
	BannerURL        *string                     `json:"bannerUrl,omitempty" db:"banner_url" gorm:"type:text"`
	GalleryURLs      datatypes.JSONSlice[string] `json:"galleryUrls,omitempty" db:"gallery_urls"`
	Attachments      datatypes.JSON              `json:"attachments,omitempty" db:"attachments"`
	Status           *string                     `json:"-" db:"status" gorm:"type:text"`
	Views            int                         `json:"views" db:"views" gorm:"not null;default:0"`
	Likes            int                         `json:"likes" db:"likes" gorm:"not null;default:0"`
	CreatedAt        time.Time                   `json:"createdAt" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

// EffectiveStatus resolves the event status. The stored value wins when
// present; otherwise the status is derived from now against the inclusive
// [StartAt, EndAt] window. Callers must re-evaluate on every read since the
// derived value moves with the clock.
func (e *Event) EffectiveStatus(now time.Time) string {
	if e.Status != nil && *e.Status != "" {
		return *e.Status
	}
	if now.Before(e.StartAt) {
		return EventStatusUpcoming
	}
	if now.After(e.EndAt) {
		return EventStatusEnded
	}
	return EventStatusRunning
}

// MarshalJSON emits the effective status so JSON consumers never see a stale
// or missing status field.
func (e Event) MarshalJSON() ([]byte, error) {
	type alias Event
	return json.Marshal(struct {
		alias
		Status string `json:"status"`
	}{
		alias:  alias(e),
		Status: e.EffectiveStatus(time.Now()),
	})
}
