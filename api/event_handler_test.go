package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/showcasehq/showcase-backend/errs"
	"github.com/showcasehq/showcase-backend/models"
)

func newEventRouter(eventRepo *mockEventRepo) chi.Router {
	h := newEventHandler(eventRepo)

	r := chi.NewRouter()
	r.Get("/events", h.listEvents())
	r.Post("/event", h.createEvent())
	r.Get("/event/{eventID}", h.getEvent())
	r.Post("/event/{eventID}/view", h.viewEvent())
	r.Post("/event/{eventID}/like", h.likeEvent())
	return r
}

// Events serialize with a derived status, so the list response must carry
// one even when nothing was stored explicitly.
func TestListEventsEmitsDerivedStatus(t *testing.T) {
	now := time.Now()
	eventRepo := new(mockEventRepo)
	eventRepo.On("List", mock.Anything).Return([]models.Event{
		{Title: "Past", StartAt: now.Add(-48 * time.Hour), EndAt: now.Add(-24 * time.Hour)},
		{Title: "Future", StartAt: now.Add(24 * time.Hour), EndAt: now.Add(48 * time.Hour)},
	}, nil)

	rec := httptest.NewRecorder()
	newEventRouter(eventRepo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	var events []struct {
		Title  string `json:"title"`
		Status string `json:"status"`
	}
	assert.NoError(t, json.Unmarshal(env.Data, &events))
	assert.Len(t, events, 2)
	assert.Equal(t, models.EventStatusEnded, events[0].Status)
	assert.Equal(t, models.EventStatusUpcoming, events[1].Status)
}

func TestGetEventNotFound(t *testing.T) {
	eventRepo := new(mockEventRepo)
	eventRepo.On("FindByID", mock.Anything, mock.Anything).
		Return(nil, gorm.ErrRecordNotFound)

	rec := httptest.NewRecorder()
	newEventRouter(eventRepo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/event/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, errs.CodeEventNotFound, env.Error.Code)
}

func TestCreateEvent(t *testing.T) {
	eventRepo := new(mockEventRepo)
	eventRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Event")).
		Run(func(args mock.Arguments) {
			event := args.Get(1).(*models.Event)
			assert.Equal(t, "Demo day", event.Title)
			assert.Nil(t, event.Status)
		}).
		Return(nil)

	body, _ := json.Marshal(map[string]interface{}{
		"title":   "Demo day",
		"startAt": "2026-09-01T09:00:00Z",
		"endAt":   "2026-09-01T17:00:00Z",
	})

	rec := httptest.NewRecorder()
	newEventRouter(eventRepo).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/event", bytes.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	eventRepo.AssertExpectations(t)
}

func TestCreateEventRejectsReversedWindow(t *testing.T) {
	body, _ := json.Marshal(map[string]interface{}{
		"title":   "Demo day",
		"startAt": "2026-09-01T17:00:00Z",
		"endAt":   "2026-09-01T09:00:00Z",
	})

	rec := httptest.NewRecorder()
	newEventRouter(new(mockEventRepo)).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/event", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, errs.CodeValidation, env.Error.Code)
	assert.Equal(t, "endAt", env.Error.Field)
}
