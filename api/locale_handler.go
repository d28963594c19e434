package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/showcasehq/showcase-backend/i18n"
)

type localeHandler struct {
	responder Responder
	logger    zerolog.Logger
}

func newLocaleHandler() localeHandler {
	logger := log.With().Str("handlerName", "localeHandler").Logger()

	return localeHandler{
		responder: NewResponder(logger),
		logger:    logger,
	}
}

// LocaleBundle is everything a client needs to render one locale
type LocaleBundle struct {
	Locale    string            `json:"locale"`
	Label     string            `json:"label"`
	Direction string            `json:"direction"`
	Messages  map[string]string `json:"messages"`
}

// getLocale resolves an arbitrary locale path segment to a supported
// locale and returns its catalog. Never fails: normalization is total.
func (h localeHandler) getLocale() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.writeBundle(w, i18n.Normalize(chi.URLParam(r, "locale")))
	}
}

// getRequestLocale returns the bundle for the locale the middleware
// negotiated from the cookie or Accept-Language header
func (h localeHandler) getRequestLocale() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.writeBundle(w, ctxGetLocale(r.Context()))
	}
}

func (h localeHandler) writeBundle(w http.ResponseWriter, locale string) {
	h.responder.WriteData(w, http.StatusOK, LocaleBundle{
		Locale:    locale,
		Label:     i18n.LocaleLabels[locale],
		Direction: i18n.Direction(locale),
		Messages:  i18n.Messages(locale),
	})
}
