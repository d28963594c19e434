package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/showcasehq/showcase-backend/database"
	"github.com/showcasehq/showcase-backend/errs"
	"github.com/showcasehq/showcase-backend/models"
)

type eventHandler struct {
	responder Responder
	logger    zerolog.Logger
	eventRepo database.EventRepo
}

func newEventHandler(eventRepo database.EventRepo) eventHandler {
	logger := log.With().Str("handlerName", "eventHandler").Logger()

	return eventHandler{
		responder: NewResponder(logger),
		logger:    logger,
		eventRepo: eventRepo,
	}
}

func (h eventHandler) listEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := h.eventRepo.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError(errs.CodeEventListFailed, "list", "events", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, events)
	}
}

func (h eventHandler) getEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, ok := parseUUIDParam(h.responder, w, r, "eventID")
		if !ok {
			return
		}

		event, err := h.eventRepo.FindByID(r.Context(), eventID)
		if err != nil {
			h.responder.WriteError(w, repoError(err, errs.CodeEventNotFound, errs.CodeEventListFailed, "find", "event"))
			return
		}

		h.responder.WriteData(w, http.StatusOK, event)
	}
}

func (h eventHandler) viewEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, ok := parseUUIDParam(h.responder, w, r, "eventID")
		if !ok {
			return
		}

		event, err := h.eventRepo.FindByIDAndIncrementView(r.Context(), eventID)
		if err != nil {
			h.responder.WriteError(w, repoError(err, errs.CodeEventNotFound, errs.CodeEventUpdateFailed, "increment views of", "event"))
			return
		}

		h.responder.WriteData(w, http.StatusOK, event)
	}
}

func (h eventHandler) likeEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, ok := parseUUIDParam(h.responder, w, r, "eventID")
		if !ok {
			return
		}

		likes, err := h.eventRepo.IncrementLikes(r.Context(), eventID)
		if err != nil {
			h.responder.WriteError(w, repoError(err, errs.CodeEventNotFound, errs.CodeEventUpdateFailed, "increment likes of", "event"))
			return
		}

		h.responder.WriteData(w, http.StatusOK, map[string]int{"likes": likes})
	}
}

func (h eventHandler) createEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode event request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := req.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		event := models.Event{
			Title:            req.Title,
			Subtitle:         req.Subtitle,
			Summary:          req.Summary,
			Description:      req.Description,
			Location:         req.Location,
			StartAt:          req.StartAt,
			EndAt:            req.EndAt,
			RegisterLink:     req.RegisterLink,
			RegisterDeadline: req.RegisterDeadline,
			Capacity:         req.Capacity,
			BannerURL:        req.BannerURL,
			GalleryURLs:      req.GalleryURLs,
			Status:           req.Status,
		}
		if len(req.Attachments) > 0 {
			event.Attachments = datatypes.JSON(req.Attachments)
		}

		if err := h.eventRepo.Create(r.Context(), &event); err != nil {
			h.responder.WriteError(w, errs.NewStorageError(errs.CodeEventCreateFailed, "create", "event", err))
			return
		}

		h.responder.WriteData(w, http.StatusCreated, event)
	}
}
