package i18n

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrMissingPlaceholder is returned when a template names a value that was not supplied.
const ErrMissingPlaceholder = constError("missing template value")

// placeholder matches {name}, {name:.4f} and {name:,.2f}.
//
//nolint:gochecknoglobals // Compiled once.
var placeholder = regexp.MustCompile(`\{([A-Za-z0-9_]+)(?::(,?)\.(\d+)f)?\}`)

// Placeholders returns the value names referenced by tmpl, in order of first use.
func Placeholders(tmpl string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range placeholder.FindAllStringSubmatch(tmpl, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			out = append(out, m[1])
		}
	}
	return out
}

// Render substitutes numeric values into tmpl using l's number format.
// ",.Nf" groups thousands, ".Nf" does not, and a bare {name} prints the
// shortest exact representation. Every referenced name must be in values.
func Render(l Lang, tmpl string, values map[string]float64) (string, error) {
	f := l.Formatter()
	var missing []string

	out := placeholder.ReplaceAllStringFunc(tmpl, func(s string) string {
		m := placeholder.FindStringSubmatch(s)
		v, ok := values[m[1]]
		if !ok {
			missing = append(missing, m[1])
			return s
		}
		if m[3] == "" {
			return f.Fixed(v, -1)
		}
		precision, _ := strconv.Atoi(m[3])
		if m[2] == "," {
			return f.Float(v, precision)
		}
		return f.Fixed(v, precision)
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrMissingPlaceholder, strings.Join(missing, ", "))
	}
	return out, nil
}

// RenderStrings substitutes already formatted values into tmpl. Format specs
// on the placeholders are ignored.
func RenderStrings(tmpl string, values map[string]string) (string, error) {
	var missing []string
	out := placeholder.ReplaceAllStringFunc(tmpl, func(s string) string {
		m := placeholder.FindStringSubmatch(s)
		v, ok := values[m[1]]
		if !ok {
			missing = append(missing, m[1])
			return s
		}
		return v
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrMissingPlaceholder, strings.Join(missing, ", "))
	}
	return out, nil
}

// RenderKey renders the template stored under key.
func RenderKey(l Lang, key string, values map[string]float64) (string, error) {
	out, err := Render(l, T(l, key), values)
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", key, err)
	}
	return out, nil
}

// StripEmphasis removes markdown bold markers for plain terminal output.
func StripEmphasis(s string) string {
	return strings.ReplaceAll(s, "**", "")
}
