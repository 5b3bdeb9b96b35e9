package engine

import (
	"github.com/rshade/greenstream/internal/assumptions"
)

// WeeksPerYear converts weekly viewing hours to annual hours.
const WeeksPerYear = 52.0

// Result is the outcome of one computation.
type Result struct {
	// UsageOnlyKg is the annual footprint of device electricity, networks and datacenters.
	UsageOnlyKg float64
	// WithProductionKg adds amortized device manufacturing to UsageOnlyKg.
	WithProductionKg float64
	// Role is carried for display only.
	Role Role
	// Breakdown holds every intermediate quantity, keyed by GuaranteedKeys.
	Breakdown Breakdown
	// Keys lists the breakdown keys in display order.
	Keys []string
}

// shares is a renormalized distribution that keeps the declared key order.
type shares struct {
	keys   []string
	values map[string]float64
}

func (s shares) get(k string) float64 { return s.values[k] }

// normalizePercents converts percents to fractions and rescales them to sum to
// exactly 1. A zero (or negative) sum yields all zeros.
func normalizePercents(t *assumptions.Table) shares {
	s := shares{keys: t.Keys(), values: make(map[string]float64, t.Len())}
	var total float64
	for _, k := range s.keys {
		f := t.Value(k) / 100.0
		s.values[k] = f
		total += f
	}
	for _, k := range s.keys {
		if total > 0 {
			s.values[k] /= total
		} else {
			s.values[k] = 0
		}
	}
	return s
}

func clamp01(v float64) float64 {
	return min(1.0, max(0.0, v))
}

// Compute turns an assumptions snapshot into annual CO2e totals and a full
// breakdown. It is pure: a is only read, nothing is logged, and no input that
// passed assumptions validation makes it fail.
//
// Parameters:
//   - a: the assumptions to read
//   - role: display label, normalized with NormalizeRole
//
// Returns:
//   - Result: usage-only total, total with production, and the breakdown
//
// Per viewing hour the model adds:
//   - device production, amortized over device lifetime and weighted by device share
//   - device electricity, watts weighted by device share times grid intensity
//   - network energy a*GB + b per network, weighted by the fixed/mobile split
//   - datacenter emissions c*GB + d on the share-weighted data volume
//
// Per-hour totals are annualized with hours_input * 52.
//
//nolint:funlen // One linear pipeline; the steps read best in sequence.
func Compute(a *assumptions.Assumptions, role string) Result {
	b := make(Breakdown)

	// Resolution mix and data volume per network.
	gbPerHour := make(map[string]float64, len(Networks))
	for _, n := range Networks {
		mix := normalizePercents(resolutionTable(a, n))
		var gb float64
		for _, r := range mix.keys {
			b[resolutionShareKey(n, r)] = mix.get(r) * 100.0
			gb += mix.get(r) * a.VideoBitrateGBPerHour.Value(r)
		}
		gbPerHour[n] = gb
	}
	b[KeyGBPerHourFixed] = gbPerHour[assumptions.NetworkFixed]
	b[KeyGBPerHourMobile] = gbPerHour[assumptions.NetworkMobile]

	// Device usage shares.
	devices := normalizePercents(&a.DevicePercent)
	for _, d := range devices.keys {
		b[PrefixDeviceShare+d] = devices.get(d) * 100.0
	}

	// Fixed/mobile split, aggregated from per-device habits.
	var shareFixed float64
	for _, d := range devices.keys {
		shareFixed += devices.get(d) * clamp01(a.FixedNetworkPercent.Value(d)/100.0)
	}
	shareFixed = clamp01(shareFixed)
	shareMobile := max(0.0, 1.0-shareFixed)
	if sum := shareFixed + shareMobile; sum > 0 {
		shareFixed /= sum
		shareMobile /= sum
	}
	networkShare := map[string]float64{
		assumptions.NetworkFixed:  shareFixed,
		assumptions.NetworkMobile: shareMobile,
	}
	b[KeyNetworkShareFixed] = shareFixed * 100.0
	b[KeyNetworkShareMobile] = shareMobile * 100.0

	// Device production amortization.
	var productionPerHour float64
	for _, d := range devices.keys {
		lifetime := max(1.0, a.DeviceLifetimeHours.ValueOr(d, 1.0))
		v := devices.get(d) * (a.DeviceProductionKgCO2e.Value(d) / lifetime)
		b[PrefixDeviceProductionPerHour+d] = v
		productionPerHour += v
	}
	b[KeyDeviceProductionPerHourTotal] = productionPerHour

	// Device electricity.
	var deviceKWh, deviceCO2 float64
	for _, d := range devices.keys {
		kwh := devices.get(d) * (a.DeviceWatts.Value(d) / 1000.0)
		co2 := kwh * a.CO2ePerKWh
		b[PrefixDeviceEnergyKWhPerHour+d] = kwh
		b[PrefixDeviceEnergyCO2PerHour+d] = co2
		deviceKWh += kwh
		deviceCO2 += co2
	}
	b[KeyDeviceEnergyKWhPerHourTotal] = deviceKWh
	b[KeyDeviceEnergyCO2PerHourTotal] = deviceCO2
	b[KeyDeviceProductionPlusEnergyPerHour] = productionPerHour + deviceCO2

	// Networks.
	var networkKWh, networkCO2 float64
	for _, n := range Networks {
		coefA := a.NetworkKWhPerGB.Value(n)
		coefB := a.NetworkKWhPerUserPerHour.Value(n)
		kwh := (coefA*gbPerHour[n] + coefB) * networkShare[n]
		co2 := kwh * a.CO2ePerKWh
		b[PrefixNetworkA+n] = coefA
		b[PrefixNetworkB+n] = coefB
		b[PrefixNetworkGBPerHour+n] = gbPerHour[n]
		b[PrefixNetworkKWhPerHour+n] = kwh
		b[PrefixNetworkCO2PerHour+n] = co2
		networkKWh += kwh
		networkCO2 += co2
	}

	// Datacenters.
	gbWeighted := shareFixed*gbPerHour[assumptions.NetworkFixed] + shareMobile*gbPerHour[assumptions.NetworkMobile]
	transfer := a.DatacenterKgCO2e.Value(assumptions.DatacenterPerGB) * gbWeighted
	runtime := a.DatacenterKgCO2e.Value(assumptions.DatacenterPerHour)
	datacenterCO2 := transfer + runtime
	b[KeyGBPerHourTotalWeighted] = gbWeighted
	b[KeyDatacenterTransferPerHour] = transfer
	b[KeyDatacenterRuntimePerHour] = runtime
	b[KeyDatacenterPerHourTotal] = datacenterCO2

	hoursPerYear := a.HoursInput * WeeksPerYear
	b[KeyHoursInput] = a.HoursInput
	b[KeyHoursInputYear] = hoursPerYear
	b[KeyNetworkKWhPerHourTotal] = networkKWh
	b[KeyNetworkCO2PerHourTotal] = networkCO2

	usagePerHour := deviceCO2 + networkCO2 + datacenterCO2
	withProductionPerHour := productionPerHour + usagePerHour
	b[KeyKgPerHourTotal] = withProductionPerHour
	b[KeyKgPerHourUsageOnly] = usagePerHour

	usageOnly := usagePerHour * hoursPerYear
	withProduction := withProductionPerHour * hoursPerYear
	b[KeyTotalKgCO2e] = withProduction
	b[KeyTotalKgCO2eUsageOnly] = usageOnly

	b[KeyProductionCO2Total] = productionPerHour * hoursPerYear
	b[KeyDeviceEnergyCO2Total] = deviceCO2 * hoursPerYear
	b[KeyNetworkCO2Total] = networkCO2 * hoursPerYear
	b[KeyDatacenterCO2Total] = datacenterCO2 * hoursPerYear

	return Result{
		UsageOnlyKg:      usageOnly,
		WithProductionKg: withProduction,
		Role:             NormalizeRole(role),
		Breakdown:        b,
		Keys:             GuaranteedKeys(a),
	}
}

// CategorySum adds the four annual category totals.
func (r Result) CategorySum() float64 {
	var total float64
	for _, k := range CategoryKeys() {
		total += r.Breakdown[k]
	}
	return total
}
