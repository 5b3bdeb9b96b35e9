package i18n

import (
	"github.com/rshade/greenstream/internal/engine"
)

func catalog(l Lang) map[string]string {
	if l == English {
		return textsEN
	}
	return textsFR
}

// T returns the text for key in l, falling back to French, then to the key
// itself.
func T(l Lang, key string) string {
	if s, ok := catalog(l)[key]; ok {
		return s
	}
	if s, ok := textsFR[key]; ok {
		return s
	}
	return key
}

// Has reports whether key has a text in l.
func Has(l Lang, key string) bool {
	_, ok := catalog(l)[key]
	return ok
}

// Keys returns every key of the catalog of l.
func Keys(l Lang) []string {
	c := catalog(l)
	out := make([]string, 0, len(c))
	for k := range c {
		out = append(out, k)
	}
	return out
}

// Label returns the label of an assumptions field: "variable_subkey" for a
// table entry, "variable" for a scalar.
func Label(l Lang, variable, subkey string) string {
	if subkey == "" {
		return T(l, variable)
	}
	key := variable + "_" + subkey
	if s := T(l, key); s != key {
		return s
	}
	return subkey
}

// Source returns the reference for a variable's default values, or "".
func Source(l Lang, variable string) string {
	key := variable + "_source"
	if s := T(l, key); s != key {
		return s
	}
	return ""
}

// RoleLabel returns the name of a role ("I make videos").
func RoleLabel(l Lang, r engine.Role) string {
	return T(l, string(r))
}

// RoleHelp returns the question that explains what the hours mean for r.
func RoleHelp(l Lang, r engine.Role) string {
	if r == engine.RoleConsumer {
		return T(l, "consumer_help")
	}
	return T(l, "producer_help")
}

// HoursLabel returns the label of the hours input for r.
func HoursLabel(l Lang, r engine.Role) string {
	if r == engine.RoleConsumer {
		return T(l, "consumer_weekly_hours")
	}
	return T(l, "producer_watch_hours")
}

// ActionSentence renders the "<action>_display" sentence with count in place
// of {x}. Actions without a sentence fall back to "action: count".
func ActionSentence(l Lang, action string, count float64) string {
	x := l.Formatter().Float(count, 2)
	key := action + "_display"
	if !Has(l, key) && !Has(French, key) {
		return action + ": " + x
	}
	out, err := RenderStrings(T(l, key), map[string]string{"x": x})
	if err != nil {
		return action + ": " + x
	}
	return out
}

// CategoryLabel returns the name of one of engine.CategoryKeys.
func CategoryLabel(l Lang, key string) string {
	switch key {
	case engine.KeyProductionCO2Total:
		return T(l, "cat_production")
	case engine.KeyDeviceEnergyCO2Total:
		return T(l, "cat_device")
	case engine.KeyNetworkCO2Total:
		return T(l, "cat_network")
	case engine.KeyDatacenterCO2Total:
		return T(l, "cat_datacenter")
	default:
		return key
	}
}
