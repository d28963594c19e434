package database

import (
	"math/rand"
	"strings"
	"unicode"
)

const summaryMaxLen = 160

const fallbackSlugAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// TagSeed pairs a tag display name with its canonical slug. The slug is
// computed exactly once per input so that the random fallback for
// symbol-only names stays stable within a single write.
type TagSeed struct {
	Name string
	Slug string
}

// Slugify converts a display name into a canonical URL-safe slug: lowercase,
// runs of anything that is not a Unicode letter or digit collapse to a
// single "-", leading and trailing separators dropped. Names that strip to
// nothing (pure symbols, emoji) get a random "tag-" fallback so the result
// is always a usable key. The fallback is not deterministic: calling twice
// with the same pathological input produces two different slugs and no
// collision detection against earlier fallbacks is attempted.
func Slugify(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	b.Grow(len(lowered))
	pendingSep := false
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}

	slug := b.String()
	if slug == "" {
		return randomFallbackSlug()
	}
	return slug
}

func randomFallbackSlug() string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = fallbackSlugAlphabet[rand.Intn(len(fallbackSlugAlphabet))]
	}
	return "tag-" + string(suffix)
}

// NormalizeTagNames trims, drops empty entries and deduplicates a tag list
// by slug, keeping the first-seen display name for each slug. This runs
// before storage is consulted so that two spellings of the same tag inside
// one write resolve to a single tag reference.
func NormalizeTagNames(names []string) []TagSeed {
	seen := make(map[string]struct{}, len(names))
	seeds := make([]TagSeed, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		slug := Slugify(name)
		if _, ok := seen[slug]; ok {
			continue
		}
		seen[slug] = struct{}{}
		seeds = append(seeds, TagSeed{Name: name, Slug: slug})
	}
	return seeds
}

// DeriveSummary resolves the stored summary for an item. A non-empty
// explicit summary wins, trimmed and otherwise untouched. Otherwise the
// description is flattened to plain text: markup syntax characters
// (heading, emphasis, blockquote and list markers plus newlines) are
// stripped, whitespace collapses to single spaces, and the result is cut at
// 160 characters. The cut is a hard one with no ellipsis or word-boundary
// awareness.
func DeriveSummary(explicit, description string) string {
	if trimmed := strings.TrimSpace(explicit); trimmed != "" {
		return trimmed
	}
	if strings.TrimSpace(description) == "" {
		return ""
	}

	plain := strings.Map(func(r rune) rune {
		switch r {
		case '#', '*', '_', '>', '-', '\n', '\r':
			return ' '
		}
		return r
	}, description)

	collapsed := strings.Join(strings.Fields(plain), " ")
	runes := []rune(collapsed)
	if len(runes) > summaryMaxLen {
		return string(runes[:summaryMaxLen])
	}
	return collapsed
}

// filterNonEmpty drops empty strings from a media list, preserving order
func filterNonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
