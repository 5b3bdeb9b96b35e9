// Package i18n holds the user-facing texts in English and French and renders
// the numeric templates that explain a computation.
//
// The language is always passed explicitly; there is no process-wide current
// language.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/rshade/greenstream/internal/greenops"
)

// Lang is a supported display language.
type Lang string

const (
	English Lang = "en"
	French  Lang = "fr"
)

// Default is the language used when none is configured.
const Default = French

//nolint:gochecknoglobals // Read-only language matcher.
var matcher = language.NewMatcher([]language.Tag{language.French, language.English})

// Supported returns every language with a text catalog.
func Supported() []Lang { return []Lang{English, French} }

// ParseLang maps a BCP 47 tag ("fr", "fr-CA", "en_GB") to a supported
// language. An empty string yields Default.
func ParseLang(s string) (Lang, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", "-"))
	if s == "" {
		return Default, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("unknown language %q: %w", s, err)
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return "", fmt.Errorf("unsupported language %q (supported: en, fr)", s)
	}
	if idx == 0 {
		return French, nil
	}
	return English, nil
}

// Tag returns the x/text language tag.
func (l Lang) Tag() language.Tag {
	if l == English {
		return language.English
	}
	return language.French
}

// Toggle returns the other supported language.
func (l Lang) Toggle() Lang {
	if l == English {
		return French
	}
	return English
}

// Formatter returns a number formatter for l.
func (l Lang) Formatter() *greenops.Formatter {
	return greenops.NewFormatter(l.Tag())
}
