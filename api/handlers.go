package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/showcasehq/showcase-backend/database"
	"github.com/showcasehq/showcase-backend/errs"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, demoAuthorEmail string) *routeHandlers {
	return &routeHandlers{
		projectHandler:  newProjectHandler(db.ProjectRepo(), db.UserRepo(), demoAuthorEmail),
		ideaHandler:     newIdeaHandler(db.IdeaRepo()),
		eventHandler:    newEventHandler(db.EventRepo()),
		categoryHandler: newCategoryHandler(db.CategoryRepo()),
		localeHandler:   newLocaleHandler(),
	}
}

// parseUUIDParam reads and parses a UUID path parameter, writing a bad
// request response itself when the value is missing or malformed
func parseUUIDParam(responder Responder, w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, param)
	if raw == "" {
		responder.WriteError(w, errs.NewBadRequestError("missing "+param))
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		responder.WriteError(w, errs.NewBadRequestError("invalid "+param))
		return uuid.Nil, false
	}
	return id, true
}
