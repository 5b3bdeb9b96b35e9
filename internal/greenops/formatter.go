package greenops

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders numbers for one locale: grouped thousands from the
// x/text message printer, and the locale's decimal mark.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
	decimal string
	million string
	billion string
}

// NewFormatter returns a Formatter for tag.
func NewFormatter(tag language.Tag) *Formatter {
	f := &Formatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
		decimal: ".",
		million: "million",
		billion: "billion",
	}
	base, _ := tag.Base()
	switch base.String() {
	case "fr":
		f.decimal = ","
		f.million = "millions"
		f.billion = "milliards"
	case "de", "es", "it", "nl", "pt":
		f.decimal = ","
	}
	return f
}

// Tag returns the locale of the formatter.
func (f *Formatter) Tag() language.Tag { return f.tag }

// Number formats an integer with thousand separators.
func (f *Formatter) Number(n int64) string {
	return f.printer.Sprintf("%d", n)
}

// Float formats v rounded to precision digits, with thousand separators.
func (f *Formatter) Float(v float64, precision int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if precision < 0 {
		precision = 0
	}
	const base = 10
	multiplier := math.Pow(base, float64(precision))
	rounded := math.Round(v*multiplier) / multiplier

	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}

	formatted := strconv.FormatFloat(rounded, 'f', precision, 64)
	intPart, fracPart, hasFrac := strings.Cut(formatted, ".")

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		// Beyond int64: no grouping.
		if hasFrac {
			return sign + intPart + f.decimal + fracPart
		}
		return sign + intPart
	}

	out := sign + f.Number(n)
	if hasFrac {
		out += f.decimal + fracPart
	}
	return out
}

// Fixed formats v with exactly precision digits and the locale's decimal mark,
// without thousand separators. A negative precision prints the shortest
// representation that round-trips.
func (f *Formatter) Fixed(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if f.decimal == "." {
		return s
	}
	return strings.Replace(s, ".", f.decimal, 1)
}

// Decimal returns the locale's decimal mark.
func (f *Formatter) Decimal() string { return f.decimal }

// Large formats big counts as "~X.X million" or "~X.X billion" and smaller
// ones as grouped integers.
func (f *Formatter) Large(n float64) string {
	if n >= BillionThreshold {
		return fmt.Sprintf("~%s %s", f.Float(n/BillionThreshold, 1), f.billion)
	}
	if n >= LargeNumberThreshold {
		return fmt.Sprintf("~%s %s", f.Float(n/LargeNumberThreshold, 1), f.million)
	}
	return f.Number(int64(math.Round(n)))
}

// english backs the package-level helpers.
//
//nolint:gochecknoglobals // Stateless printer, safe for concurrent use.
var english = NewFormatter(language.English)

// FormatNumber formats an integer with English thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string { return english.Number(n) }

// FormatFloat formats v with precision digits in English.
// Example: FormatFloat(1234.567, 2) returns "1,234.57".
func FormatFloat(v float64, precision int) string { return english.Float(v, precision) }

// FormatLarge formats n in English, abbreviating millions and billions.
func FormatLarge(n float64) string { return english.Large(n) }
