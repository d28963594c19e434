package api

import (
	"encoding/json"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/showcasehq/showcase-backend/errs"
	"github.com/showcasehq/showcase-backend/models"
)

// Payload caps enforced at the boundary, before any repository call
const (
	maxGalleryEntries    = 10
	maxAttachmentEntries = 10
	maxIdeaImages        = 9
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler  projectHandler
	ideaHandler     ideaHandler
	eventHandler    eventHandler
	categoryHandler categoryHandler
	localeHandler   localeHandler
}

// CreateProjectRequest is the project submission payload. AuthorID may be
// empty, in which case the demo author is resolved by email.
type CreateProjectRequest struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Content       *string         `json:"content,omitempty"`
	RepositoryURL *string         `json:"repositoryUrl,omitempty"`
	DemoURL       *string         `json:"demoUrl,omitempty"`
	CategoryID    string          `json:"categoryId,omitempty"`
	AuthorID      string          `json:"authorId,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
	Images        []string        `json:"images,omitempty"`
	Attachments   json.RawMessage `json:"attachments,omitempty"`
}

func (req *CreateProjectRequest) Validate() *errs.ApiErr {
	if req.Title == "" {
		return errs.NewValidationError("title", "title is required")
	}
	if req.Description == "" {
		return errs.NewValidationError("description", "description is required")
	}
	if err := validateOptionalURL("repositoryUrl", req.RepositoryURL); err != nil {
		return err
	}
	if err := validateOptionalURL("demoUrl", req.DemoURL); err != nil {
		return err
	}
	if len(req.Images) > maxGalleryEntries {
		return errs.NewValidationError("images", "at most 10 gallery entries are allowed")
	}
	if err := validateAttachments(req.Attachments); err != nil {
		return err
	}
	if req.CategoryID != "" {
		if _, err := uuid.Parse(req.CategoryID); err != nil {
			return errs.NewValidationError("categoryId", "categoryId must be a valid UUID")
		}
	}
	if req.AuthorID != "" {
		if _, err := uuid.Parse(req.AuthorID); err != nil {
			return errs.NewValidationError("authorId", "authorId must be a valid UUID")
		}
	}
	return nil
}

// UpdateProjectRequest is a partial update: absent members leave the stored
// field untouched. Validated once here, never re-validated downstream.
type UpdateProjectRequest struct {
	Title         *string         `json:"title,omitempty"`
	Description   *string         `json:"description,omitempty"`
	Content       *string         `json:"content,omitempty"`
	RepositoryURL *string         `json:"repositoryUrl,omitempty"`
	DemoURL       *string         `json:"demoUrl,omitempty"`
	Thumbnail     *string         `json:"thumbnail,omitempty"`
	GalleryURLs   []string        `json:"galleryUrls,omitempty"`
	Attachments   json.RawMessage `json:"attachments,omitempty"`
	Published     *bool           `json:"published,omitempty"`
	CategoryID    *string         `json:"categoryId,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
}

func (req *UpdateProjectRequest) Validate() *errs.ApiErr {
	if req.Title != nil && *req.Title == "" {
		return errs.NewValidationError("title", "title cannot be empty")
	}
	if req.Description != nil && *req.Description == "" {
		return errs.NewValidationError("description", "description cannot be empty")
	}
	if err := validateOptionalURL("repositoryUrl", req.RepositoryURL); err != nil {
		return err
	}
	if err := validateOptionalURL("demoUrl", req.DemoURL); err != nil {
		return err
	}
	if len(req.GalleryURLs) > maxGalleryEntries {
		return errs.NewValidationError("galleryUrls", "at most 10 gallery entries are allowed")
	}
	if err := validateAttachments(req.Attachments); err != nil {
		return err
	}
	if req.CategoryID != nil {
		if _, err := uuid.Parse(*req.CategoryID); err != nil {
			return errs.NewValidationError("categoryId", "categoryId must be a valid UUID")
		}
	}
	return nil
}

// CreateIdeaRequest is the idea submission payload. Everything but the
// title is optional; an absent summary is derived from the description.
type CreateIdeaRequest struct {
	Title       string   `json:"title"`
	Summary     string   `json:"summary,omitempty"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Images      []string `json:"images,omitempty"`
	Location    *string  `json:"location,omitempty"`
	AuthorName  *string  `json:"authorName,omitempty"`
}

func (req *CreateIdeaRequest) Validate() *errs.ApiErr {
	if req.Title == "" {
		return errs.NewValidationError("title", "title is required")
	}
	if len(req.Images) > maxIdeaImages {
		return errs.NewValidationError("images", "at most 9 images are allowed")
	}
	return nil
}

// CreateEventRequest is the event submission payload
type CreateEventRequest struct {
	Title            string          `json:"title"`
	Subtitle         *string         `json:"subtitle,omitempty"`
	Summary          *string         `json:"summary,omitempty"`
	Description      *string         `json:"description,omitempty"`
	Location         *string         `json:"location,omitempty"`
	StartAt          time.Time       `json:"startAt"`
	EndAt            time.Time       `json:"endAt"`
	RegisterLink     *string         `json:"registerLink,omitempty"`
	RegisterDeadline *time.Time      `json:"registerDeadline,omitempty"`
	Capacity         *int            `json:"capacity,omitempty"`
	BannerURL        *string         `json:"bannerUrl,omitempty"`
	GalleryURLs      []string        `json:"galleryUrls,omitempty"`
	Attachments      json.RawMessage `json:"attachments,omitempty"`
	Status           *string         `json:"status,omitempty"`
}

func (req *CreateEventRequest) Validate() *errs.ApiErr {
	if req.Title == "" {
		return errs.NewValidationError("title", "title is required")
	}
	if req.StartAt.IsZero() {
		return errs.NewValidationError("startAt", "startAt is required")
	}
	if req.EndAt.IsZero() {
		return errs.NewValidationError("endAt", "endAt is required")
	}
	if req.EndAt.Before(req.StartAt) {
		return errs.NewValidationError("endAt", "endAt must not be before startAt")
	}
	if err := validateOptionalURL("registerLink", req.RegisterLink); err != nil {
		return err
	}
	if len(req.GalleryURLs) > maxGalleryEntries {
		return errs.NewValidationError("galleryUrls", "at most 10 gallery entries are allowed")
	}
	if err := validateAttachments(req.Attachments); err != nil {
		return err
	}
	if req.Capacity != nil && *req.Capacity < 0 {
		return errs.NewValidationError("capacity", "capacity cannot be negative")
	}
	if req.Status != nil {
		switch *req.Status {
		case models.EventStatusUpcoming, models.EventStatusRunning, models.EventStatusEnded:
		default:
			return errs.NewValidationError("status", "status must be upcoming, running or ended")
		}
	}
	return nil
}

// validateOptionalURL accepts nil and empty values; anything else must
// parse as an absolute http(s) URL
func validateOptionalURL(field string, value *string) *errs.ApiErr {
	if value == nil || *value == "" {
		return nil
	}
	parsed, err := url.ParseRequestURI(*value)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return errs.NewValidationError(field, "must be a valid http(s) URL")
	}
	return nil
}

// validateAttachments treats attachments as an opaque JSON array capped at
// 10 entries; the payload contents themselves stay uninterpreted
func validateAttachments(raw json.RawMessage) *errs.ApiErr {
	if len(raw) == 0 {
		return nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return errs.NewValidationError("attachments", "attachments must be a JSON array")
	}
	if len(entries) > maxAttachmentEntries {
		return errs.NewValidationError("attachments", "at most 10 attachments are allowed")
	}
	return nil
}
