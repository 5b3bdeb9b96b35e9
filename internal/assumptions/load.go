package assumptions

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// SupportedSchema is the range of schema_version values Load accepts.
// Sources without a schema_version are treated as current.
const SupportedSchema = ">= 1.0.0, < 2.0.0"

//go:embed assumptions.yaml
var defaultSource []byte

// DefaultSource returns the embedded default assumptions document.
func DefaultSource() []byte {
	out := make([]byte, len(defaultSource))
	copy(out, defaultSource)
	return out
}

// LoadDefault parses the embedded default assumptions.
func LoadDefault() (*Assumptions, error) {
	return Load(defaultSource)
}

// LoadFile reads and parses an assumptions file.
func LoadFile(path string) (*Assumptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading assumptions %s: %w", path, err)
	}

	a, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debug().
		Str("component", "assumptions").
		Str("path", path).
		Int("fields", len(a.Fields())).
		Msg("assumptions loaded")
	return a, nil
}

// Load parses an assumptions document. Values are read through a YAML node
// tree, which keeps the declared key order, and the raw text is scanned a
// second time for decimal precision. Both passes must agree on the keys.
func Load(data []byte) (*Assumptions, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: document is empty", ErrConfigParse)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping (line %d)", ErrConfigParse, root.Line)
	}

	a := &Assumptions{}
	seen := make(map[string]bool)

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]
		name := keyNode.Value
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate key %q (line %d)", ErrConfigParse, name, keyNode.Line)
		}
		seen[name] = true

		if name == SchemaVersion {
			if valueNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: %s must be a string (line %d)", ErrConfigParse, name, valueNode.Line)
			}
			a.SchemaVersion = valueNode.Value
			continue
		}

		f, ok := lookupField(name)
		if !ok {
			return nil, fmt.Errorf("%w: %w: %q (line %d)", ErrConfigParse, ErrUnknownField, name, keyNode.Line)
		}

		if f.scalar != nil {
			v, err := parseNumber(name, valueNode)
			if err != nil {
				return nil, err
			}
			*f.scalar(a) = v
			continue
		}

		t, err := parseTable(name, valueNode)
		if err != nil {
			return nil, err
		}
		*f.table(a) = t
	}

	var missing []string
	for _, f := range fields {
		if !seen[f.name] {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required keys: %s", ErrConfigParse, strings.Join(missing, ", "))
	}

	if err := checkSchemaVersion(a.SchemaVersion); err != nil {
		return nil, err
	}

	decimals, err := ScanDecimals(data)
	if err != nil {
		return nil, err
	}
	a.decimals = decimals
	for k := range a.decimals {
		if k.Variable == SchemaVersion {
			continue
		}
		if _, err := a.Get(k.Variable, k.Subkey); err != nil {
			return nil, fmt.Errorf("%w: precision scan found %s which the parser did not",
				ErrConfigParse, fieldName(k.Variable, k.Subkey))
		}
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func parseTable(variable string, n *yaml.Node) (Table, error) {
	if n.Kind != yaml.MappingNode {
		return Table{}, fmt.Errorf("%w: %s must be a mapping (line %d)", ErrConfigParse, variable, n.Line)
	}
	var t Table
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if t.Has(k.Value) {
			return Table{}, fmt.Errorf("%w: duplicate key %s.%s (line %d)", ErrConfigParse, variable, k.Value, k.Line)
		}
		if v.Kind != yaml.ScalarNode {
			return Table{}, fmt.Errorf("%w: %s.%s must be a number, nesting stops at two levels (line %d)",
				ErrConfigParse, variable, k.Value, v.Line)
		}
		f, err := parseNumber(fieldName(variable, k.Value), v)
		if err != nil {
			return Table{}, err
		}
		t.Set(k.Value, f)
	}
	return t, nil
}

// parseNumber coerces ints, floats and numeric strings to float64.
func parseNumber(name string, n *yaml.Node) (float64, error) {
	if n.Kind != yaml.ScalarNode {
		return 0, fmt.Errorf("%w: %s must be a number (line %d)", ErrConfigParse, name, n.Line)
	}
	switch n.Tag {
	case "!!int":
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return float64(i), nil
		}
	case "!!float", "!!str":
	default:
		return 0, fmt.Errorf("%w: %s must be a number, got %s (line %d)", ErrConfigParse, name, n.Tag, n.Line)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(n.Value), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not a number (line %d)", ErrConfigParse, name, n.Value, n.Line)
	}
	return v, nil
}

func checkSchemaVersion(raw string) error {
	if raw == "" {
		return nil
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedVersion, raw, err)
	}
	c, err := semver.NewConstraint(SupportedSchema)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: %s (supported %s)", ErrUnsupportedVersion, v, SupportedSchema)
	}
	return nil
}

// Marshal renders a as YAML in canonical order, writing each value with the
// precision recorded for it so that a reload yields the same precision map.
func Marshal(a *Assumptions) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	if a.SchemaVersion != "" {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: SchemaVersion},
			&yaml.Node{Kind: yaml.ScalarNode, Value: a.SchemaVersion, Style: yaml.DoubleQuotedStyle},
		)
	}

	for _, f := range fields {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: f.name}
		if f.scalar != nil {
			root.Content = append(root.Content, key, numberNode(*f.scalar(a), a.GetDecimals(f.name, "")))
			continue
		}
		t := f.table(a)
		m := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range t.Keys() {
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: k},
				numberNode(t.Value(k), a.GetDecimals(f.name, k)),
			)
		}
		root.Content = append(root.Content, key, m)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return nil, fmt.Errorf("encoding assumptions: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding assumptions: %w", err)
	}
	return buf.Bytes(), nil
}

func numberNode(v float64, decimals int) *yaml.Node {
	tag := "!!float"
	if decimals == 0 {
		tag = "!!int"
	}
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: strconv.FormatFloat(v, 'f', decimals, 64),
	}
}
