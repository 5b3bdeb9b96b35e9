// Package assumptions holds the numeric configuration used to estimate the
// emissions of online video: device mix, network mix, resolution mix, energy
// intensities and amortized manufacturing footprints.
//
// Assumptions are parsed once from YAML, edited in place by the session layer,
// and read by the calculation engine on every compute request. Each value
// carries a precision hint derived from how its default was written.
package assumptions

import (
	"fmt"
	"math"
	"strconv"
)

// Top-level variable names as they appear in assumptions YAML.
const (
	DevicePercent                  = "device_percent"
	FixedNetworkPercent            = "fixed_network_percent"
	FixedNetworkResolutionPercent  = "fixed_network_resolution_percent"
	MobileNetworkResolutionPercent = "mobile_network_resolution_percent"
	DeviceProductionKgCO2e         = "device_production_kg_co2e"
	DeviceLifetimeHours            = "device_lifetime_hours"
	DeviceWatts                    = "device_watts"
	CO2ePerKWh                     = "co2e_per_kWh"
	NetworkKWhPerGB                = "network_kwh_per_gb"
	NetworkKWhPerUserPerHour       = "network_kwh_per_user_per_hour"
	DatacenterKgCO2e               = "datacenter_kg_co2e"
	VideoBitrateGBPerHour          = "video_bitrate_GB_per_hour"
	CO2eOffsetting                 = "co2e_offsetting"
	HoursInput                     = "hours_input"

	// SchemaVersion is optional and is the only non-numeric key.
	SchemaVersion = "schema_version"
)

// Network and datacenter subkeys the engine depends on.
const (
	NetworkFixed      = "fixed"
	NetworkMobile     = "mobile"
	DatacenterPerGB   = "per_GB"
	DatacenterPerHour = "per_hour"
)

// Assumptions is the configuration aggregate read by the engine.
type Assumptions struct {
	DevicePercent                  Table
	FixedNetworkPercent            Table
	FixedNetworkResolutionPercent  Table
	MobileNetworkResolutionPercent Table
	DeviceProductionKgCO2e         Table
	DeviceLifetimeHours            Table
	DeviceWatts                    Table
	CO2ePerKWh                     float64
	NetworkKWhPerGB                Table
	NetworkKWhPerUserPerHour       Table
	DatacenterKgCO2e               Table
	VideoBitrateGBPerHour          Table
	CO2eOffsetting                 Table
	HoursInput                     float64

	// SchemaVersion is the optional schema_version declared by the source.
	SchemaVersion string

	decimals Decimals
}

// fieldSpec describes one top-level variable: whether it is a scalar or a
// table, how to reach it on the struct, and what the engine requires of it.
type fieldSpec struct {
	name          string
	scalar        func(a *Assumptions) *float64
	table         func(a *Assumptions) *Table
	requiredKeys  []string
	allowNegative bool
}

// fields lists every variable in canonical order.
//
//nolint:gochecknoglobals // Static field registry.
var fields = []fieldSpec{
	{name: DevicePercent, table: func(a *Assumptions) *Table { return &a.DevicePercent }},
	{name: FixedNetworkPercent, table: func(a *Assumptions) *Table { return &a.FixedNetworkPercent }},
	{name: FixedNetworkResolutionPercent, table: func(a *Assumptions) *Table { return &a.FixedNetworkResolutionPercent }},
	{name: MobileNetworkResolutionPercent, table: func(a *Assumptions) *Table { return &a.MobileNetworkResolutionPercent }},
	{name: DeviceProductionKgCO2e, table: func(a *Assumptions) *Table { return &a.DeviceProductionKgCO2e }},
	{name: DeviceLifetimeHours, table: func(a *Assumptions) *Table { return &a.DeviceLifetimeHours }},
	{name: DeviceWatts, table: func(a *Assumptions) *Table { return &a.DeviceWatts }},
	{name: CO2ePerKWh, scalar: func(a *Assumptions) *float64 { return &a.CO2ePerKWh }},
	{
		name:         NetworkKWhPerGB,
		table:        func(a *Assumptions) *Table { return &a.NetworkKWhPerGB },
		requiredKeys: []string{NetworkFixed, NetworkMobile},
	},
	{
		name:         NetworkKWhPerUserPerHour,
		table:        func(a *Assumptions) *Table { return &a.NetworkKWhPerUserPerHour },
		requiredKeys: []string{NetworkFixed, NetworkMobile},
	},
	{
		name:         DatacenterKgCO2e,
		table:        func(a *Assumptions) *Table { return &a.DatacenterKgCO2e },
		requiredKeys: []string{DatacenterPerGB, DatacenterPerHour},
	},
	{name: VideoBitrateGBPerHour, table: func(a *Assumptions) *Table { return &a.VideoBitrateGBPerHour }},
	{
		name:          CO2eOffsetting,
		table:         func(a *Assumptions) *Table { return &a.CO2eOffsetting },
		allowNegative: true,
	},
	{name: HoursInput, scalar: func(a *Assumptions) *float64 { return &a.HoursInput }},
}

func lookupField(name string) (fieldSpec, bool) {
	for _, f := range fields {
		if f.name == name {
			return f, true
		}
	}
	return fieldSpec{}, false
}

// Variables returns every top-level variable name in canonical order.
func Variables() []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.name)
	}
	return out
}

// IsTable reports whether variable is a per-entity mapping.
func IsTable(variable string) bool {
	f, ok := lookupField(variable)
	return ok && f.table != nil
}

// AllowsNegative reports whether variable accepts values below zero.
func AllowsNegative(variable string) bool {
	f, ok := lookupField(variable)
	return ok && f.allowNegative
}

// Table returns the mapping stored under variable.
func (a *Assumptions) Table(variable string) (*Table, error) {
	f, ok := lookupField(variable)
	if !ok || f.table == nil {
		return nil, fmt.Errorf("%w: %s is not a mapping", ErrUnknownField, variable)
	}
	return f.table(a), nil
}

// Get returns the value of variable, or of variable.subkey when subkey is not empty.
func (a *Assumptions) Get(variable, subkey string) (float64, error) {
	f, ok := lookupField(variable)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownField, variable)
	}
	if f.scalar != nil {
		if subkey != "" {
			return 0, fmt.Errorf("%w: %s has no subkey %q", ErrUnknownField, variable, subkey)
		}
		return *f.scalar(a), nil
	}
	if subkey == "" {
		return 0, fmt.Errorf("%w: %s needs a subkey", ErrUnknownField, variable)
	}
	v, ok := f.table(a).Get(subkey)
	if !ok {
		return 0, fmt.Errorf("%w: %s.%s", ErrUnknownField, variable, subkey)
	}
	return v, nil
}

// Set overwrites an existing value in place. It never adds new subkeys, so
// the set of keys stays the one validated at load time.
func (a *Assumptions) Set(variable, subkey string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s: value must be a finite number", fieldName(variable, subkey))
	}
	if _, err := a.Get(variable, subkey); err != nil {
		return err
	}
	f, _ := lookupField(variable)
	if f.scalar != nil {
		*f.scalar(a) = value
		return nil
	}
	f.table(a).Set(subkey, value)
	return nil
}

// Field is one editable leaf value.
type Field struct {
	Variable string
	Subkey   string // empty for top-level scalars
	Value    float64
	Decimals int
}

// Name returns "variable" or "variable.subkey".
func (f Field) Name() string { return fieldName(f.Variable, f.Subkey) }

func fieldName(variable, subkey string) string {
	if subkey == "" {
		return variable
	}
	return variable + "." + subkey
}

// Fields lists every leaf in canonical variable order and declared subkey order.
func (a *Assumptions) Fields() []Field {
	var out []Field
	for _, f := range fields {
		if f.scalar != nil {
			out = append(out, Field{
				Variable: f.name,
				Value:    *f.scalar(a),
				Decimals: a.GetDecimals(f.name, ""),
			})
			continue
		}
		t := f.table(a)
		for _, k := range t.Keys() {
			out = append(out, Field{
				Variable: f.name,
				Subkey:   k,
				Value:    t.Value(k),
				Decimals: a.GetDecimals(f.name, k),
			})
		}
	}
	return out
}

// Flatten returns every leaf keyed as "variable" or "variable_subkey", the
// naming used by display templates.
func (a *Assumptions) Flatten() map[string]float64 {
	out := make(map[string]float64)
	for _, f := range a.Fields() {
		if f.Subkey == "" {
			out[f.Variable] = f.Value
			continue
		}
		out[f.Variable+"_"+f.Subkey] = f.Value
	}
	return out
}

// Clone returns an independent snapshot, for callers that need to hand the
// engine a copy while the original keeps being edited.
func (a *Assumptions) Clone() *Assumptions {
	c := &Assumptions{
		CO2ePerKWh:    a.CO2ePerKWh,
		HoursInput:    a.HoursInput,
		SchemaVersion: a.SchemaVersion,
		decimals:      make(Decimals, len(a.decimals)),
	}
	for _, f := range fields {
		if f.table != nil {
			*f.table(c) = f.table(a).Clone()
		}
	}
	for k, v := range a.decimals {
		c.decimals[k] = v
	}
	return c
}

// Validate checks the invariants the engine relies on: required subkeys are
// present, values are finite and non-negative (offsetting savings excepted),
// and every resolution used in a mix has a bitrate.
func (a *Assumptions) Validate() error {
	for _, f := range fields {
		if f.scalar != nil {
			if err := checkValue(f, "", *f.scalar(a)); err != nil {
				return err
			}
			continue
		}
		t := f.table(a)
		for _, k := range f.requiredKeys {
			if !t.Has(k) {
				return fmt.Errorf("%w: %s is missing subkey %q", ErrConfigParse, f.name, k)
			}
		}
		for _, k := range t.Keys() {
			if err := checkValue(f, k, t.Value(k)); err != nil {
				return err
			}
		}
	}

	for _, mix := range []string{FixedNetworkResolutionPercent, MobileNetworkResolutionPercent} {
		t, _ := a.Table(mix)
		for _, res := range t.Keys() {
			if !a.VideoBitrateGBPerHour.Has(res) {
				return fmt.Errorf("%w: %s.%s has no entry in %s",
					ErrConfigParse, mix, res, VideoBitrateGBPerHour)
			}
		}
	}

	return nil
}

func checkValue(f fieldSpec, subkey string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s is not a finite number", ErrConfigParse, fieldName(f.name, subkey))
	}
	if v < 0 && !f.allowNegative {
		return fmt.Errorf("%w: %s must not be negative, got %s",
			ErrConfigParse, fieldName(f.name, subkey), strconv.FormatFloat(v, 'g', -1, 64))
	}
	return nil
}
