// Package i18n maps arbitrary client locale tags onto the small supported
// set and serves the per-locale message catalogs embedded in the binary.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/showcasehq/showcase-backend/errs"
)

//go:embed locales/*/common.json
var localeFS embed.FS

const DefaultLocale = "en"

// SupportedLocales is the closed set every input normalizes into
var SupportedLocales = []string{"en", "zh-CN", "ja-JP"}

// localeFallbacks maps client tag variants to a supported locale. Tags not
// present here fall back to DefaultLocale.
var localeFallbacks = map[string]string{
	"en":    "en",
	"en-US": "en",
	"en-GB": "en",
	"zh":    "zh-CN",
	"zh-CN": "zh-CN",
	"zh-TW": "zh-CN",
	"ja":    "ja-JP",
	"ja-JP": "ja-JP",
}

// LocaleLabels gives the display name for each supported locale
var LocaleLabels = map[string]string{
	"en":    "English",
	"zh-CN": "简体中文",
	"ja-JP": "日本語",
}

// rtlLocales is the exclusion set for right-to-left rendering. Empty today;
// enabling bidirectional support means adding entries here, nowhere else.
var rtlLocales = map[string]struct{}{}

// Normalize resolves any raw locale string (header, cookie, path segment)
// to a supported locale. Total: every input, including the empty string,
// yields a member of SupportedLocales.
func Normalize(input string) string {
	if input == "" {
		return DefaultLocale
	}
	if locale, ok := localeFallbacks[input]; ok {
		return locale
	}
	return DefaultLocale
}

// IsSupported reports whether the tag is exactly one of the supported set
func IsSupported(locale string) bool {
	for _, supported := range SupportedLocales {
		if supported == locale {
			return true
		}
	}
	return false
}

// Direction returns "rtl" only for locales in the RTL set, "ltr" otherwise
func Direction(locale string) string {
	if _, ok := rtlLocales[locale]; ok {
		return "rtl"
	}
	return "ltr"
}

var (
	catalogOnce sync.Once
	catalogs    map[string]map[string]string
)

func loadCatalogs() {
	catalogs = make(map[string]map[string]string, len(SupportedLocales))
	for _, locale := range SupportedLocales {
		raw, err := localeFS.ReadFile(fmt.Sprintf("locales/%s/common.json", locale))
		if err != nil {
			panic(fmt.Sprintf("i18n: missing catalog for %s: %v", locale, err))
		}
		var messages map[string]string
		if err := json.Unmarshal(raw, &messages); err != nil {
			panic(fmt.Sprintf("i18n: malformed catalog for %s: %v", locale, err))
		}
		catalogs[locale] = messages
	}
}

// Messages returns the full translation catalog for a locale. The input is
// normalized first, so the function is total over all strings.
func Messages(locale string) map[string]string {
	catalogOnce.Do(loadCatalogs)
	return catalogs[Normalize(locale)]
}

// errorMessageKeys maps envelope error codes to catalog keys
var errorMessageKeys = map[string]string{
	errs.CodeUnknown:    "error.common.unknown",
	errs.CodeBadRequest: "error.common.validation",
	errs.CodeValidation: "error.common.validation",
	errs.CodeNotFound:   "error.common.unknown",

	errs.CodeProjectNotFound:      "error.project.notFound",
	errs.CodeProjectListFailed:    "error.project.loadFailed",
	errs.CodeProjectCreateFailed:  "error.project.createFailed",
	errs.CodeProjectUpdateFailed:  "error.project.updateFailed",
	errs.CodeProjectDeleteFailed:  "error.project.deleteFailed",
	errs.CodeProjectMissingAuthor: "error.project.missingUser",

	errs.CodeIdeaNotFound:     "error.idea.notFound",
	errs.CodeIdeaListFailed:   "error.idea.loadFailed",
	errs.CodeIdeaCreateFailed: "error.idea.createFailed",

	errs.CodeCategoryListFailed: "error.category.loadFailed",

	errs.CodeEventNotFound:     "error.event.notFound",
	errs.CodeEventListFailed:   "error.event.loadFailed",
	errs.CodeEventCreateFailed: "error.event.createFailed",
	errs.CodeEventUpdateFailed: "error.event.updateFailed",
	errs.CodeEventDeleteFailed: "error.event.deleteFailed",
}

// ErrorMessageKey resolves an envelope error code to the catalog key the
// client should render. Unrecognized or empty codes map to the generic
// unknown-error key.
func ErrorMessageKey(code string) string {
	if key, ok := errorMessageKeys[code]; ok {
		return key
	}
	return "error.common.unknown"
}
