package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/showcasehq/showcase-backend/database"
	"github.com/showcasehq/showcase-backend/errs"
	"github.com/showcasehq/showcase-backend/models"
)

type projectHandler struct {
	responder       Responder
	logger          zerolog.Logger
	projectRepo     database.ProjectRepo
	userRepo        database.UserRepo
	demoAuthorEmail string
}

func newProjectHandler(projectRepo database.ProjectRepo, userRepo database.UserRepo, demoAuthorEmail string) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		projectRepo:     projectRepo,
		userRepo:        userRepo,
		demoAuthorEmail: demoAuthorEmail,
	}
}

// listProjects returns published projects, optionally narrowed by category
// slug and a title/description substring search
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := database.ProjectFilter{
			Category: r.URL.Query().Get("category"),
			Search:   r.URL.Query().Get("search"),
		}

		projects, err := h.projectRepo.List(r.Context(), filter)
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError(errs.CodeProjectListFailed, "list", "projects", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, projects)
	}
}

func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.parseID(w, r, "projectID")
		if !ok {
			return
		}

		project, err := h.projectRepo.FindByID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, repoError(err, errs.CodeProjectNotFound, errs.CodeProjectListFailed, "find", "project"))
			return
		}

		h.responder.WriteData(w, http.StatusOK, project)
	}
}

// viewProject atomically increments the view counter and returns the
// post-increment project
func (h projectHandler) viewProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.parseID(w, r, "projectID")
		if !ok {
			return
		}

		project, err := h.projectRepo.FindByIDAndIncrementView(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, repoError(err, errs.CodeProjectNotFound, errs.CodeProjectUpdateFailed, "increment views of", "project"))
			return
		}

		h.responder.WriteData(w, http.StatusOK, project)
	}
}

// likeProject increments likes by exactly one per call. Not idempotent:
// debouncing repeat clicks is the client's job.
func (h projectHandler) likeProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.parseID(w, r, "projectID")
		if !ok {
			return
		}

		likes, err := h.projectRepo.IncrementLikes(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, repoError(err, errs.CodeProjectNotFound, errs.CodeProjectUpdateFailed, "increment likes of", "project"))
			return
		}

		h.responder.WriteData(w, http.StatusOK, map[string]int{"likes": likes})
	}
}

func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := req.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		authorID, apiErr := h.resolveAuthor(r, req.AuthorID)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		project := models.Project{
			Title:         req.Title,
			Description:   req.Description,
			Content:       req.Content,
			RepositoryURL: req.RepositoryURL,
			DemoURL:       req.DemoURL,
			GalleryURLs:   req.Images,
			AuthorID:      authorID,
		}
		if req.CategoryID != "" {
			categoryID := uuid.MustParse(req.CategoryID) // validated above
			project.CategoryID = &categoryID
		}
		if len(req.Attachments) > 0 {
			project.Attachments = datatypes.JSON(req.Attachments)
		}

		if err := h.projectRepo.Create(r.Context(), &project, req.Tags); err != nil {
			h.responder.WriteError(w, errs.NewStorageError(errs.CodeProjectCreateFailed, "create", "project", err))
			return
		}

		created, err := h.projectRepo.FindByID(r.Context(), project.ID)
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError(errs.CodeProjectCreateFailed, "find created", "project", err))
			return
		}

		h.responder.WriteData(w, http.StatusCreated, created)
	}
}

func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.parseID(w, r, "projectID")
		if !ok {
			return
		}

		var req UpdateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := req.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		update := database.ProjectUpdate{
			Title:         req.Title,
			Description:   req.Description,
			Content:       req.Content,
			RepositoryURL: req.RepositoryURL,
			DemoURL:       req.DemoURL,
			Thumbnail:     req.Thumbnail,
			GalleryURLs:   req.GalleryURLs,
			Attachments:   req.Attachments,
			Published:     req.Published,
			TagNames:      req.Tags,
		}
		if req.CategoryID != nil {
			categoryID := uuid.MustParse(*req.CategoryID) // validated above
			update.CategoryID = &categoryID
		}

		project, err := h.projectRepo.Update(r.Context(), projectID, update)
		if err != nil {
			h.responder.WriteError(w, repoError(err, errs.CodeProjectNotFound, errs.CodeProjectUpdateFailed, "update", "project"))
			return
		}

		h.responder.WriteData(w, http.StatusOK, project)
	}
}

func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.parseID(w, r, "projectID")
		if !ok {
			return
		}

		if err := h.projectRepo.Delete(r.Context(), projectID); err != nil {
			h.responder.WriteError(w, repoError(err, errs.CodeProjectNotFound, errs.CodeProjectDeleteFailed, "delete", "project"))
			return
		}

		h.responder.WriteData(w, http.StatusOK, map[string]bool{"deleted": true})
	}
}

// resolveAuthor picks the payload author when present, otherwise the demo
// user. A missing demo user is a validation failure with its own code, not
// a storage error.
func (h projectHandler) resolveAuthor(r *http.Request, authorID string) (uuid.UUID, *errs.ApiErr) {
	if authorID != "" {
		return uuid.MustParse(authorID), nil // validated upstream
	}

	user, err := h.userRepo.FindByEmail(r.Context(), h.demoAuthorEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, errs.NewValidationErrorWithCode(errs.CodeProjectMissingAuthor, "authorId", "no author available")
		}
		return uuid.Nil, errs.NewStorageError(errs.CodeProjectCreateFailed, "resolve author for", "project", err)
	}
	return user.ID, nil
}

func (h projectHandler) parseID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	return parseUUIDParam(h.responder, w, r, param)
}
