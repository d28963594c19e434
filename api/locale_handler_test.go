package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/showcasehq/showcase-backend/i18n"
)

func newLocaleRouter() chi.Router {
	h := newLocaleHandler()

	r := chi.NewRouter()
	r.Get("/i18n/{locale}", h.getLocale())
	return r
}

func TestGetLocaleBundle(t *testing.T) {
	tests := []struct {
		name       string
		segment    string
		wantLocale string
	}{
		{"exact match", "ja-JP", "ja-JP"},
		{"bare language falls back", "zh", "zh-CN"},
		{"regional english collapses", "en-GB", "en"},
		{"unknown falls back to default", "fr", i18n.DefaultLocale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newLocaleRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/i18n/"+tt.segment, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.True(t, env.Success)

			var bundle LocaleBundle
			assert.NoError(t, json.Unmarshal(env.Data, &bundle))
			assert.Equal(t, tt.wantLocale, bundle.Locale)
			assert.Equal(t, "ltr", bundle.Direction)
			assert.NotEmpty(t, bundle.Label)
			assert.NotEmpty(t, bundle.Messages)
		})
	}
}

func TestGetRequestLocaleUsesNegotiatedLocale(t *testing.T) {
	h := newLocaleHandler()
	r := chi.NewRouter()
	r.Use(localeMiddleware)
	r.Get("/i18n", h.getRequestLocale())

	req := httptest.NewRequest(http.MethodGet, "/i18n", nil)
	req.Header.Set("Accept-Language", "ja,en;q=0.8")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)

	var bundle LocaleBundle
	assert.NoError(t, json.Unmarshal(env.Data, &bundle))
	assert.Equal(t, "ja-JP", bundle.Locale)
}

func TestLocaleMiddlewareCookieWinsOverHeader(t *testing.T) {
	var seen string
	handler := localeMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxGetLocale(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.AddCookie(&http.Cookie{Name: "locale", Value: "ja-JP"})
	req.Header.Set("Accept-Language", "zh-CN,zh;q=0.9")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "ja-JP", seen)
	assert.Equal(t, "ja-JP", rec.Header().Get("Content-Language"))
}

func TestLocaleMiddlewareFallsBackToAcceptLanguage(t *testing.T) {
	var seen string
	handler := localeMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxGetLocale(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set("Accept-Language", "zh-TW;q=0.8, en;q=0.5")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "zh-CN", seen)
}

func TestPrimaryLanguageTag(t *testing.T) {
	assert.Equal(t, "", primaryLanguageTag(""))
	assert.Equal(t, "ja", primaryLanguageTag("ja"))
	assert.Equal(t, "zh-CN", primaryLanguageTag("zh-CN,zh;q=0.9,en;q=0.8"))
	assert.Equal(t, "en-US", primaryLanguageTag(" en-US ; q=0.7"))
}
