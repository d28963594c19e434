package api

import (
	"context"

	"github.com/showcasehq/showcase-backend/i18n"
)

type keyType string

const localeKey keyType = "locale"

// ctxWithLocale stores the normalized request locale in the context
func ctxWithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey, locale)
}

// ctxGetLocale retrieves the request locale; absent values resolve to the
// default locale, so handlers never see an unsupported tag.
func ctxGetLocale(ctx context.Context) string {
	if value := ctx.Value(localeKey); value != nil {
		if locale, ok := value.(string); ok {
			return locale
		}
	}
	return i18n.DefaultLocale
}
