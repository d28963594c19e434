package i18n

import "strings"

// PathParams describes a locale switch for a browser path. Pathname may or
// may not already carry a locale segment; SearchParams is the raw query
// string without the leading "?".
type PathParams struct {
	Pathname     string
	TargetLocale string
	SearchParams string
}

// BuildLocalizedPath rewrites a path for the target locale: an existing
// leading locale segment is replaced, otherwise the locale is prepended.
// The query string is carried over untouched.
func BuildLocalizedPath(params PathParams) string {
	pathname := params.Pathname
	if pathname == "" {
		pathname = "/"
	}

	segments := []string{}
	for _, segment := range strings.Split(pathname, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}

	if len(segments) > 0 && IsSupported(segments[0]) {
		segments[0] = params.TargetLocale
	} else {
		segments = append([]string{params.TargetLocale}, segments...)
	}

	path := "/" + strings.Join(segments, "/")
	if params.SearchParams != "" {
		return path + "?" + params.SearchParams
	}
	return path
}
