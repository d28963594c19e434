package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/showcasehq/showcase-backend/database"
	"github.com/showcasehq/showcase-backend/errs"
	"github.com/showcasehq/showcase-backend/models"
)

type ideaHandler struct {
	responder Responder
	logger    zerolog.Logger
	ideaRepo  database.IdeaRepo
}

func newIdeaHandler(ideaRepo database.IdeaRepo) ideaHandler {
	logger := log.With().Str("handlerName", "ideaHandler").Logger()

	return ideaHandler{
		responder: NewResponder(logger),
		logger:    logger,
		ideaRepo:  ideaRepo,
	}
}

func (h ideaHandler) listIdeas() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ideas, err := h.ideaRepo.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError(errs.CodeIdeaListFailed, "list", "ideas", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, ideas)
	}
}

func (h ideaHandler) getIdea() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ideaID, ok := parseUUIDParam(h.responder, w, r, "ideaID")
		if !ok {
			return
		}

		idea, err := h.ideaRepo.FindByID(r.Context(), ideaID)
		if err != nil {
			h.responder.WriteError(w, repoError(err, errs.CodeIdeaNotFound, errs.CodeIdeaListFailed, "find", "idea"))
			return
		}

		h.responder.WriteData(w, http.StatusOK, idea)
	}
}

func (h ideaHandler) viewIdea() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ideaID, ok := parseUUIDParam(h.responder, w, r, "ideaID")
		if !ok {
			return
		}

		idea, err := h.ideaRepo.FindByIDAndIncrementView(r.Context(), ideaID)
		if err != nil {
			h.responder.WriteError(w, repoError(err, errs.CodeIdeaNotFound, errs.CodeIdeaListFailed, "increment views of", "idea"))
			return
		}

		h.responder.WriteData(w, http.StatusOK, idea)
	}
}

func (h ideaHandler) likeIdea() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ideaID, ok := parseUUIDParam(h.responder, w, r, "ideaID")
		if !ok {
			return
		}

		likes, err := h.ideaRepo.IncrementLikes(r.Context(), ideaID)
		if err != nil {
			h.responder.WriteError(w, repoError(err, errs.CodeIdeaNotFound, errs.CodeIdeaListFailed, "increment likes of", "idea"))
			return
		}

		h.responder.WriteData(w, http.StatusOK, map[string]int{"likes": likes})
	}
}

func (h ideaHandler) createIdea() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateIdeaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode idea request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := req.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		idea := models.Idea{
			Title:       req.Title,
			Summary:     req.Summary,
			Description: req.Description,
			Tags:        req.Tags,
			Images:      req.Images,
			Location:    req.Location,
			AuthorName:  req.AuthorName,
		}

		if err := h.ideaRepo.Create(r.Context(), &idea); err != nil {
			h.responder.WriteError(w, errs.NewStorageError(errs.CodeIdeaCreateFailed, "create", "idea", err))
			return
		}

		h.responder.WriteData(w, http.StatusCreated, idea)
	}
}
