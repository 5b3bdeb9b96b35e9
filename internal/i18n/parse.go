package i18n

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNumber reads a number typed by a user of l. Both "." and the
// locale's decimal mark are accepted, and spaces used as group
// separators are ignored.
func ParseNumber(l Lang, s string) (float64, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\u202f', '\t':
			return -1
		}
		return r
	}, s)

	if dec := l.Formatter().Decimal(); dec != "." {
		clean = strings.ReplaceAll(clean, dec, ".")
	} else {
		clean = strings.ReplaceAll(clean, ",", "")
	}

	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}
