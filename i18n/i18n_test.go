package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/showcasehq/showcase-backend/errs"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en", "en"},
		{"en-US", "en"},
		{"en-GB", "en"},
		{"zh", "zh-CN"},
		{"zh-CN", "zh-CN"},
		{"zh-TW", "zh-CN"},
		{"ja", "ja-JP"},
		{"ja-JP", "ja-JP"},
		{"fr", "en"},
		{"de-DE", "en"},
		{"", "en"},
		{"nonsense-tag", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Normalize(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.True(t, IsSupported(got), "normalize must always land in the supported set")
		})
	}
}

func TestDirection(t *testing.T) {
	// the RTL set is empty today, so every supported locale renders ltr
	for _, locale := range SupportedLocales {
		assert.Equal(t, "ltr", Direction(locale))
	}
}

func TestMessagesTotalOverSupportedLocales(t *testing.T) {
	for _, locale := range SupportedLocales {
		messages := Messages(locale)
		assert.NotEmpty(t, messages, "catalog for %s must not be empty", locale)
		assert.Contains(t, messages, "error.common.unknown")
	}
}

func TestMessagesNormalizesInput(t *testing.T) {
	assert.Equal(t, Messages("zh-CN"), Messages("zh-TW"))
	assert.Equal(t, Messages("en"), Messages("totally-unknown"))
}

func TestBuildLocalizedPath(t *testing.T) {
	t.Run("replaces existing locale segment and keeps query", func(t *testing.T) {
		path := BuildLocalizedPath(PathParams{
			Pathname:     "/en/project/123",
			TargetLocale: "ja-JP",
			SearchParams: "q=test",
		})
		assert.Equal(t, "/ja-JP/project/123?q=test", path)
	})

	t.Run("prepends locale when missing", func(t *testing.T) {
		path := BuildLocalizedPath(PathParams{Pathname: "/submit", TargetLocale: "zh-CN"})
		assert.Equal(t, "/zh-CN/submit", path)
	})

	t.Run("root path becomes locale root", func(t *testing.T) {
		assert.Equal(t, "/en", BuildLocalizedPath(PathParams{Pathname: "/", TargetLocale: "en"}))
		assert.Equal(t, "/en", BuildLocalizedPath(PathParams{TargetLocale: "en"}))
	})
}

func TestErrorMessageKey(t *testing.T) {
	assert.Equal(t, "error.project.notFound", ErrorMessageKey(errs.CodeProjectNotFound))
	assert.Equal(t, "error.event.createFailed", ErrorMessageKey(errs.CodeEventCreateFailed))
	assert.Equal(t, "error.idea.loadFailed", ErrorMessageKey(errs.CodeIdeaListFailed))
	assert.Equal(t, "error.common.unknown", ErrorMessageKey(""))
	assert.Equal(t, "error.common.unknown", ErrorMessageKey("SOMETHING.ELSE"))
}

func TestErrorMessageKeysExistInEveryCatalog(t *testing.T) {
	for _, locale := range SupportedLocales {
		messages := Messages(locale)
		for _, key := range errorMessageKeys {
			assert.Contains(t, messages, key, "catalog %s is missing %s", locale, key)
		}
	}
}
