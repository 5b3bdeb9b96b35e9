package assumptions

import (
	"bufio"
	"bytes"
	"fmt"
	"math"
	"regexp"
	"strings"
)

// DefaultDecimals is the precision used for fields whose literal was never seen.
const DefaultDecimals = 2

// FieldKey identifies a leaf for precision lookup. Subkey is empty for
// top-level scalars and for the table-wide fallback entry.
type FieldKey struct {
	Variable string
	Subkey   string
}

// Decimals maps a leaf to the number of digits written after its decimal point.
type Decimals map[FieldKey]int

//nolint:gochecknoglobals // Compiled once.
var numericLiteral = regexp.MustCompile(`^-?\d+(?:\.(\d+))?$`)

type scanFrame struct {
	indent int
	key    string
}

// ScanDecimals reads raw YAML line by line and records, for each plain numeric
// literal, how many digits follow its decimal point. Nesting is tracked with an
// indentation stack; nested leaves are attributed to their top-level ancestor.
// Anything that is not a simple "key: value" line is ignored. Quoted keys
// are recorded without their quotes.
func ScanDecimals(raw []byte) (Decimals, error) {
	out := make(Decimals)
	var stack []scanFrame

	sc := bufio.NewScanner(bytes.NewReader(raw))
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), max(len(raw)+1, bufio.MaxScanTokenSize))
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimRight(line, " \t\r")
		content := strings.TrimLeft(line, " ")
		if content == "" {
			continue
		}
		indent := len(line) - len(content)

		keyPart, valuePart, ok := strings.Cut(content, ":")
		if !ok {
			continue
		}
		key := unquoteKey(strings.TrimSpace(keyPart))
		value := strings.TrimSpace(valuePart)

		for len(stack) > 0 && stack[len(stack)-1].indent >= indent {
			stack = stack[:len(stack)-1]
		}

		if value == "" {
			stack = append(stack, scanFrame{indent: indent, key: key})
			continue
		}

		m := numericLiteral.FindStringSubmatch(value)
		if m == nil {
			continue
		}
		digits := len(m[1])
		if len(stack) > 0 {
			out[FieldKey{Variable: stack[0].key, Subkey: key}] = digits
		} else {
			out[FieldKey{Variable: key}] = digits
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanning decimals: %w", ErrConfigParse, err)
	}

	return out, nil
}

// unquoteKey strips one pair of matching single or double quotes.
func unquoteKey(k string) string {
	if len(k) >= 2 && (k[0] == '"' || k[0] == '\'') && k[len(k)-1] == k[0] {
		return k[1 : len(k)-1]
	}
	return k
}

// Get returns the recorded digits for variable.subkey, falling back to the
// variable-level entry, then to DefaultDecimals.
func (d Decimals) Get(variable, subkey string) int {
	if n, ok := d[FieldKey{Variable: variable, Subkey: subkey}]; ok {
		return n
	}
	if n, ok := d[FieldKey{Variable: variable}]; ok {
		return n
	}
	return DefaultDecimals
}

// GetDecimals returns the display precision of a field. It never affects
// engine arithmetic.
func (a *Assumptions) GetDecimals(variable, subkey string) int {
	return a.decimals.Get(variable, subkey)
}

// Decimals returns a copy of the precision map.
func (a *Assumptions) Decimals() Decimals {
	out := make(Decimals, len(a.decimals))
	for k, v := range a.decimals {
		out[k] = v
	}
	return out
}

// Step returns the input granularity of a field: 10^-decimals, or 1 for
// integer fields.
func (a *Assumptions) Step(variable, subkey string) float64 {
	n := a.GetDecimals(variable, subkey)
	if n <= 0 {
		return 1
	}
	return math.Pow(10, -float64(n))
}

// Round rounds v to the precision of the field.
func (a *Assumptions) Round(variable, subkey string, v float64) float64 {
	return RoundTo(v, a.GetDecimals(variable, subkey))
}

// RoundTo rounds v half away from zero to n decimal digits.
func RoundTo(v float64, n int) float64 {
	if n < 0 {
		n = 0
	}
	p := math.Pow(10, float64(n))
	return math.Round(v*p) / p
}
