package i18n

import (
	"github.com/rshade/greenstream/internal/assumptions"
	"github.com/rshade/greenstream/internal/engine"
)

// TemplateValues merges a computation breakdown with the flattened
// assumptions it was computed from. Assumption values win on shared names.
func TemplateValues(r engine.Result, a *assumptions.Assumptions) map[string]float64 {
	flat := a.Flatten()
	out := make(map[string]float64, len(r.Breakdown)+len(flat))
	for k, v := range r.Breakdown {
		out[k] = v
	}
	for k, v := range flat {
		out[k] = v
	}
	return out
}

// GroupMessage returns the advisory text for a percent group that does not
// add up to its target, or "" when it does.
func GroupMessage(l Lang, c assumptions.GroupCheck) string {
	switch c.Status {
	case assumptions.GroupBelow:
		return T(l, c.Group.Variable+"_check")
	case assumptions.GroupAbove:
		out, err := RenderKey(l, c.Group.Variable+"_error", map[string]float64{"percent": c.Sum})
		if err != nil {
			return T(l, c.Group.Variable+"_error")
		}
		return out
	default:
		return ""
	}
}
