package database

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple word", "React", "react"},
		{"mixed case with spaces", "  Machine Learning  ", "machine-learning"},
		{"punctuation collapses", "Next.js", "next-js"},
		{"symbol runs collapse to one separator", "C++ / Rust!!", "c-rust"},
		{"leading and trailing separators trimmed", "--hello--", "hello"},
		{"digits kept", "Web3", "web3"},
		{"unicode letters kept", "日本語タグ", "日本語タグ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"React", "  Machine Learning  ", "Next.js", "Web3", "already-a-slug"}
	for _, input := range inputs {
		once := Slugify(input)
		assert.Equal(t, once, Slugify(once), "slugify should be idempotent on its own output for %q", input)
	}
}

func TestSlugifyOutputCharset(t *testing.T) {
	inputs := []string{"Hello World", "C++", "A_B_C", "Tag With  Spaces", "MiXeD-CaSe"}
	for _, input := range inputs {
		slug := Slugify(input)
		assert.NotEmpty(t, slug)
		for _, r := range slug {
			ok := unicode.IsLower(r) || unicode.IsDigit(r) || r == '-'
			assert.True(t, ok, "unexpected rune %q in slug %q", r, slug)
		}
	}
}

func TestSlugifyFallbackForSymbolOnlyInput(t *testing.T) {
	slug := Slugify("!!! ***")
	assert.True(t, strings.HasPrefix(slug, "tag-"), "fallback slug should carry the tag- prefix, got %q", slug)
	assert.Len(t, slug, len("tag-")+6)

	// the fallback is random by design; two calls must both be usable keys
	// even though they will not match
	other := Slugify("!!! ***")
	assert.True(t, strings.HasPrefix(other, "tag-"))
}

func TestNormalizeTagNames(t *testing.T) {
	t.Run("dedupes by slug keeping first-seen display name", func(t *testing.T) {
		seeds := NormalizeTagNames([]string{"React", "react", "REACT", "Vue"})
		assert.Len(t, seeds, 2)
		assert.Equal(t, "React", seeds[0].Name)
		assert.Equal(t, "react", seeds[0].Slug)
		assert.Equal(t, "Vue", seeds[1].Name)
	})

	t.Run("different spellings with equal slugs collapse", func(t *testing.T) {
		seeds := NormalizeTagNames([]string{"machine learning", "Machine-Learning"})
		assert.Len(t, seeds, 1)
		assert.Equal(t, "machine-learning", seeds[0].Slug)
		assert.Equal(t, "machine learning", seeds[0].Name)
	})

	t.Run("drops empty and whitespace-only entries", func(t *testing.T) {
		seeds := NormalizeTagNames([]string{"", "   ", "Go"})
		assert.Len(t, seeds, 1)
		assert.Equal(t, "Go", seeds[0].Name)
	})

	t.Run("empty input yields no seeds", func(t *testing.T) {
		assert.Empty(t, NormalizeTagNames(nil))
	})
}

func TestDeriveSummary(t *testing.T) {
	t.Run("explicit summary wins trimmed", func(t *testing.T) {
		assert.Equal(t, "my summary", DeriveSummary("  my summary  ", "# ignored"))
	})

	t.Run("markup stripped and whitespace collapsed", func(t *testing.T) {
		assert.Equal(t, "Heading Some text", DeriveSummary("", "# Heading\n\nSome *text*"))
	})

	t.Run("blockquote and list markers stripped", func(t *testing.T) {
		assert.Equal(t, "quoted item one item two", DeriveSummary("", "> quoted\n- item one\n- item two"))
	})

	t.Run("truncated at 160 characters with a hard cut", func(t *testing.T) {
		long := strings.Repeat("a", 200)
		summary := DeriveSummary("", long)
		assert.Len(t, summary, 160)
	})

	t.Run("empty inputs yield empty summary", func(t *testing.T) {
		assert.Equal(t, "", DeriveSummary("", ""))
		assert.Equal(t, "", DeriveSummary("   ", "  \n "))
	})
}

func TestFilterNonEmpty(t *testing.T) {
	assert.Equal(t, []string{"a.png", "b.png"}, filterNonEmpty([]string{"a.png", "", "b.png"}))
	assert.Empty(t, filterNonEmpty([]string{"", ""}))
}
