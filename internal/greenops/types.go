// Package greenops turns an emissions figure into something a person can
// picture: counts of everyday actions that would save the same amount of CO2e.
package greenops

// Savings is an ordered table of kg CO2e saved per unit of action.
type Savings interface {
	Keys() []string
	Get(key string) (float64, bool)
}

// CarbonInput is an emissions amount in any recognized unit.
type CarbonInput struct {
	// Value is the numeric amount.
	Value float64 `json:"value"`

	// Unit is one of g, kg, t, lb, optionally suffixed with CO2e.
	Unit string `json:"unit"`
}

// OffsetRow is one action with the number of times it must be performed to
// match each total.
type OffsetRow struct {
	// Action is the key from the savings table.
	Action string `json:"action"`

	// SavingKg is kg CO2e saved per unit of action.
	SavingKg float64 `json:"saving_kg"`

	// UsageOnly is the count matching the usage-only total.
	UsageOnly float64 `json:"usage_only"`

	// WithProduction is the count matching the total including device production.
	WithProduction float64 `json:"with_production"`

	// Skipped is set when SavingKg is not positive; the counts are then 0.
	Skipped bool `json:"skipped,omitempty"`
}

// OffsetTable holds both columns of equivalent actions.
type OffsetTable struct {
	UsageOnlyKg      float64     `json:"usage_only_kg"`
	WithProductionKg float64     `json:"with_production_kg"`
	Rows             []OffsetRow `json:"rows"`
}
