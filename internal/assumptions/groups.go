package assumptions

import (
	"fmt"
	"math"
)

// groupTolerance absorbs float noise when comparing a group sum to its target.
const groupTolerance = 1e-9

// PercentGroup is a mapping whose values are expected to add up to Target.
// When the sum falls short, AdjustKey absorbs the difference.
type PercentGroup struct {
	Variable  string
	Target    float64
	AdjustKey string
}

// DefaultGroups returns the monitored percent groups.
func DefaultGroups() []PercentGroup {
	return []PercentGroup{
		{Variable: DevicePercent, Target: 100, AdjustKey: "computer"},
		{Variable: FixedNetworkResolutionPercent, Target: 100, AdjustKey: "1080p"},
		{Variable: MobileNetworkResolutionPercent, Target: 100, AdjustKey: "1080p"},
	}
}

// IsPercentField reports whether variable holds percentages, which are
// bounded to [0, 100] when edited.
func IsPercentField(variable string) bool {
	switch variable {
	case DevicePercent, FixedNetworkPercent,
		FixedNetworkResolutionPercent, MobileNetworkResolutionPercent:
		return true
	}
	return false
}

// GroupStatus tells how a group sum compares to its target.
type GroupStatus int

const (
	GroupOK GroupStatus = iota
	GroupBelow
	GroupAbove
)

func (s GroupStatus) String() string {
	switch s {
	case GroupOK:
		return "ok"
	case GroupBelow:
		return "below"
	case GroupAbove:
		return "above"
	default:
		return fmt.Sprintf("GroupStatus(%d)", int(s))
	}
}

// GroupCheck is the result of checking one group.
type GroupCheck struct {
	Group  PercentGroup
	Sum    float64
	Status GroupStatus
}

// Delta returns Sum - Target.
func (c GroupCheck) Delta() float64 { return c.Sum - c.Group.Target }

// CheckGroups reports every group whose values do not add up to its target.
// The engine renormalizes regardless; this is an advisory signal for the user.
func CheckGroups(a *Assumptions, groups []PercentGroup) []GroupCheck {
	out := make([]GroupCheck, 0, len(groups))
	for _, g := range groups {
		t, err := a.Table(g.Variable)
		if err != nil {
			continue
		}
		sum := t.Sum()
		status := GroupOK
		switch {
		case sum < g.Target-groupTolerance:
			status = GroupBelow
		case sum > g.Target+groupTolerance:
			status = GroupAbove
		}
		out = append(out, GroupCheck{Group: g, Sum: sum, Status: status})
	}
	return out
}

// FillGroup raises the adjust key by the exact shortfall when the group sums
// below its target, so the group lands on its target. The result is rounded
// to the finest precision of the group only when that rounding is lossless.
// Groups at or above target are left alone. The returned check describes the
// group before the fill.
func FillGroup(a *Assumptions, g PercentGroup) (GroupCheck, error) {
	checks := CheckGroups(a, []PercentGroup{g})
	if len(checks) == 0 {
		return GroupCheck{}, fmt.Errorf("%w: %s is not a mapping", ErrUnknownField, g.Variable)
	}
	c := checks[0]
	if c.Status != GroupBelow {
		return c, nil
	}
	t, _ := a.Table(g.Variable)
	if !t.Has(g.AdjustKey) {
		return c, fmt.Errorf("%w: %s.%s", ErrUnknownField, g.Variable, g.AdjustKey)
	}
	exact := t.Value(g.AdjustKey) + (g.Target - c.Sum)
	filled := RoundTo(exact, finestDecimals(a, g.Variable, t))
	if math.Abs(filled-exact) > groupTolerance {
		filled = exact
	}
	t.Set(g.AdjustKey, filled)
	return c, nil
}

// finestDecimals returns the largest precision among the keys of a group.
func finestDecimals(a *Assumptions, variable string, t *Table) int {
	n := 0
	for _, k := range t.Keys() {
		n = max(n, a.GetDecimals(variable, k))
	}
	return n
}

// FillGroups applies FillGroup to every group and returns the checks that
// were not OK.
func FillGroups(a *Assumptions, groups []PercentGroup) ([]GroupCheck, error) {
	var out []GroupCheck
	for _, g := range groups {
		c, err := FillGroup(a, g)
		if err != nil {
			return out, err
		}
		if c.Status != GroupOK {
			out = append(out, c)
		}
	}
	return out, nil
}
