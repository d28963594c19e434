package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/showcasehq/showcase-backend/errs"
	"github.com/showcasehq/showcase-backend/i18n"
)

// Envelope is the only shape crossing the system boundary. Callers must
// discriminate on Success before touching Data or Error.
type Envelope struct {
	Success bool           `json:"success"`
	Data    interface{}    `json:"data,omitempty"`
	Error   *EnvelopeError `json:"error,omitempty"`
}

type EnvelopeError struct {
	Code       string      `json:"code"`
	Message    string      `json:"message,omitempty"`
	MessageKey string      `json:"messageKey,omitempty"`
	Field      string      `json:"field,omitempty"`
	Details    interface{} `json:"details,omitempty"`
}

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(payload)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteData wraps a successful repository outcome into the envelope
func (r Responder) WriteData(w http.ResponseWriter, status int, data interface{}) {
	r.writeJSON(w, status, Envelope{Success: true, Data: data})
}

// WriteError translates a failure into the envelope. ApiErr values carry
// their own status and envelope code; anything else is an unclassified
// failure, logged and reported as COMMON.UNKNOWN.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Msg("unclassified error crossed the boundary")
		apiErr = errs.NewUnknownError(err)
	}

	// not-found is an expected outcome; storage failures are not
	if errs.IsStorage(apiErr) {
		r.logger.Error().Str("code", apiErr.Code).Msg(apiErr.GetFullError())
	}

	envErr := &EnvelopeError{
		Code:       apiErr.Code,
		Message:    apiErr.Error(),
		MessageKey: i18n.ErrorMessageKey(apiErr.Code),
		Field:      apiErr.Field,
	}
	if apiErr.Cause != nil {
		envErr.Details = apiErr.Cause.Error()
	}

	r.writeJSON(w, apiErr.StatusCode, Envelope{Success: false, Error: envErr})
}

// repoError classifies a raw repository failure for the envelope: a missing
// row is NotFound, everything else is a storage failure of the given
// operation.
func repoError(err error, notFoundCode, failureCode, operation, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewNotFound(notFoundCode, entity)
	}
	return errs.NewStorageError(failureCode, operation, entity, err)
}
