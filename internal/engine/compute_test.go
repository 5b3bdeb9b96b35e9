package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/greenstream/internal/assumptions"
)

var devices = []string{"computer", "smartphone", "tablet", "tv"}

func perDevice(computer, smartphone, tablet, tv float64) assumptions.Table {
	return assumptions.NewTable(devices, map[string]float64{
		"computer":   computer,
		"smartphone": smartphone,
		"tablet":     tablet,
		"tv":         tv,
	})
}

func single(key string, v float64) assumptions.Table {
	return assumptions.NewTable([]string{key}, map[string]float64{key: v})
}

func pair(k1 string, v1 float64, k2 string, v2 float64) assumptions.Table {
	return assumptions.NewTable([]string{k1, k2}, map[string]float64{k1: v1, k2: v2})
}

// scenario is the all-fixed, all-1080p reference setup.
func scenario() *assumptions.Assumptions {
	return &assumptions.Assumptions{
		DevicePercent:                  perDevice(25, 25, 25, 25),
		FixedNetworkPercent:            perDevice(100, 100, 100, 100),
		FixedNetworkResolutionPercent:  single("1080p", 100),
		MobileNetworkResolutionPercent: single("1080p", 100),
		DeviceProductionKgCO2e:         perDevice(200, 50, 100, 300),
		DeviceLifetimeHours:            perDevice(10000, 5000, 6000, 20000),
		DeviceWatts:                    perDevice(30, 3, 6, 100),
		CO2ePerKWh:                     0.06,
		NetworkKWhPerGB:                pair("fixed", 0.002, "mobile", 0.05),
		NetworkKWhPerUserPerHour:       pair("fixed", 0.01, "mobile", 0.002),
		DatacenterKgCO2e:               pair("per_GB", 0.001, "per_hour", 0.0005),
		VideoBitrateGBPerHour:          single("1080p", 2.25),
		CO2eOffsetting:                 single("electric_vs_thermic_vehicle", 1.5),
		HoursInput:                     10,
	}
}

func TestCompute_EndToEndScenario(t *testing.T) {
	a := scenario()
	r := Compute(a, "producer")

	assert.Greater(t, r.WithProductionKg, r.UsageOnlyKg)
	assert.InDelta(t, r.WithProductionKg, r.CategorySum(), 1e-6)

	// All traffic is fixed at 1080p.
	assert.InDelta(t, 100.0, r.Breakdown[KeyNetworkShareFixed], 1e-9)
	assert.InDelta(t, 0.0, r.Breakdown[KeyNetworkShareMobile], 1e-9)
	assert.InDelta(t, 2.25, r.Breakdown[KeyGBPerHourFixed], 1e-12)
	assert.InDelta(t, 2.25, r.Breakdown[KeyGBPerHourTotalWeighted], 1e-12)

	// Network: (0.002 * 2.25 + 0.01) * 0.06
	assert.InDelta(t, 0.0145*0.06, r.Breakdown[KeyNetworkCO2PerHourTotal], 1e-12)
	// Datacenter: 0.001 * 2.25 + 0.0005
	assert.InDelta(t, 0.00275, r.Breakdown[KeyDatacenterPerHourTotal], 1e-12)
	// Devices: 0.25 * (30 + 3 + 6 + 100) / 1000 kWh
	assert.InDelta(t, 0.03475, r.Breakdown[KeyDeviceEnergyKWhPerHourTotal], 1e-12)
	// Production: 0.25 * (0.02 + 0.01 + 1/60 + 0.015)
	wantProd := 0.25 * (200.0/10000 + 50.0/5000 + 100.0/6000 + 300.0/20000)
	assert.InDelta(t, wantProd, r.Breakdown[KeyDeviceProductionPerHourTotal], 1e-12)

	assert.InDelta(t, 520.0, r.Breakdown[KeyHoursInputYear], 1e-12)
	assert.Equal(t, RoleProducer, r.Role)
}

func TestCompute_DecompositionIdentity(t *testing.T) {
	a, err := assumptions.LoadDefault()
	require.NoError(t, err)
	r := Compute(a, "consumer")
	b := r.Breakdown

	assert.InDelta(t, r.UsageOnlyKg+b[KeyProductionCO2Total], r.WithProductionKg, 1e-9)
	assert.InDelta(t,
		b[KeyDeviceEnergyCO2Total]+b[KeyNetworkCO2Total]+b[KeyDatacenterCO2Total],
		r.UsageOnlyKg, 1e-9)
	assert.InDelta(t, r.UsageOnlyKg, b[KeyTotalKgCO2eUsageOnly], 0)
	assert.InDelta(t, r.WithProductionKg, b[KeyTotalKgCO2e], 0)
	assert.InDelta(t,
		b[KeyDeviceProductionPerHourTotal]+b[KeyDeviceEnergyCO2PerHourTotal],
		b[KeyDeviceProductionPlusEnergyPerHour], 1e-15)
}

func TestCompute_AnnualizationIdentity(t *testing.T) {
	for _, hours := range []float64{0, 1, 7.5, 30, 168} {
		a := scenario()
		a.HoursInput = hours
		r := Compute(a, "")

		year := r.Breakdown[KeyHoursInputYear]
		assert.Equal(t, hours*WeeksPerYear, year)
		assert.Equal(t, r.Breakdown[KeyKgPerHourUsageOnly]*year, r.UsageOnlyKg)
		assert.Equal(t, r.Breakdown[KeyKgPerHourTotal]*year, r.WithProductionKg)
	}
}

func TestCompute_Monotonic(t *testing.T) {
	a := scenario()
	prev := Compute(a, "")
	for _, hours := range []float64{11, 20, 40, 80} {
		a.HoursInput = hours
		cur := Compute(a, "")
		assert.Greater(t, cur.UsageOnlyKg, prev.UsageOnlyKg)
		assert.Greater(t, cur.WithProductionKg, prev.WithProductionKg)
		prev = cur
	}
}

func TestCompute_DeviceShareRenormalization(t *testing.T) {
	tests := []struct {
		name  string
		table assumptions.Table
	}{
		{"sums to 60", perDevice(15, 15, 15, 15)},
		{"sums to 140", perDevice(35, 35, 35, 35)},
		{"uneven", perDevice(70, 10, 5, 3)},
		{"single device", perDevice(0, 0, 0, 42)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := normalizePercents(&tt.table)
			var sum float64
			for _, k := range s.keys {
				sum += s.get(k)
			}
			assert.InDelta(t, 1.0, sum, 1e-9)

			a := scenario()
			a.DevicePercent = tt.table
			b := Compute(a, "").Breakdown
			var pct float64
			for _, d := range devices {
				pct += b[PrefixDeviceShare+d]
			}
			assert.InDelta(t, 100.0, pct, 1e-9)
		})
	}

	t.Run("equal mixes at different scales agree", func(t *testing.T) {
		a := scenario()
		a.DevicePercent = perDevice(15, 15, 15, 15)
		low := Compute(a, "")
		a.DevicePercent = perDevice(35, 35, 35, 35)
		high := Compute(a, "")
		assert.InDelta(t, low.WithProductionKg, high.WithProductionKg, 1e-9)
	})
}

func TestCompute_ZeroSumShares(t *testing.T) {
	a := scenario()
	a.DevicePercent = perDevice(0, 0, 0, 0)
	a.FixedNetworkResolutionPercent = single("1080p", 0)

	r := Compute(a, "")
	for _, k := range r.Keys {
		v, ok := r.Breakdown[k]
		require.True(t, ok, k)
		assert.False(t, math.IsNaN(v), k)
		assert.False(t, math.IsInf(v, 0), k)
	}

	for _, d := range devices {
		assert.Zero(t, r.Breakdown[PrefixDeviceShare+d])
		assert.Zero(t, r.Breakdown[PrefixDeviceProductionPerHour+d])
	}
	assert.Zero(t, r.Breakdown[KeyGBPerHourFixed])

	// No device contributes to the fixed share, so all traffic is mobile.
	assert.InDelta(t, 100.0, r.Breakdown[KeyNetworkShareMobile], 1e-9)
}

func TestCompute_LifetimeFloor(t *testing.T) {
	a := scenario()
	a.DeviceLifetimeHours = perDevice(0, 5000, 6000, 20000)
	r := Compute(a, "")
	// 0.25 * 200 / max(1, 0)
	assert.InDelta(t, 50.0, r.Breakdown[PrefixDeviceProductionPerHour+"computer"], 1e-12)

	a.DeviceLifetimeHours = perDevice(0.5, 5000, 6000, 20000)
	r = Compute(a, "")
	assert.InDelta(t, 50.0, r.Breakdown[PrefixDeviceProductionPerHour+"computer"], 1e-12)
}

func TestCompute_MissingLookupsDefault(t *testing.T) {
	a := scenario()
	a.DeviceWatts = assumptions.NewTable([]string{"computer"}, map[string]float64{"computer": 30})
	a.DeviceProductionKgCO2e = assumptions.NewTable(nil, nil)
	a.DeviceLifetimeHours = assumptions.NewTable(nil, nil)
	a.FixedNetworkPercent = assumptions.NewTable(nil, nil)

	r := Compute(a, "")
	assert.Zero(t, r.Breakdown[PrefixDeviceEnergyKWhPerHour+"tv"])
	assert.Zero(t, r.Breakdown[KeyDeviceProductionPerHourTotal])
	assert.InDelta(t, 100.0, r.Breakdown[KeyNetworkShareMobile], 1e-9)
}

func TestCompute_NetworkSplit(t *testing.T) {
	a := scenario()
	a.DevicePercent = perDevice(50, 50, 0, 0)
	a.FixedNetworkPercent = perDevice(100, 150, 0, 0) // clamped to 1

	r := Compute(a, "")
	assert.InDelta(t, 100.0, r.Breakdown[KeyNetworkShareFixed], 1e-9)

	a.FixedNetworkPercent = perDevice(100, 0, 0, 0)
	r = Compute(a, "")
	assert.InDelta(t, 50.0, r.Breakdown[KeyNetworkShareFixed], 1e-9)
	assert.InDelta(t, 50.0, r.Breakdown[KeyNetworkShareMobile], 1e-9)
	assert.InDelta(t, 0.5*(0.05*2.25+0.002), r.Breakdown[PrefixNetworkKWhPerHour+"mobile"], 1e-12)
}

func TestCompute_ResolutionMix(t *testing.T) {
	a := scenario()
	a.VideoBitrateGBPerHour = pair("480p", 0.5, "1080p", 2.5)
	a.FixedNetworkResolutionPercent = pair("480p", 30, "1080p", 30) // renormalized to 50/50

	r := Compute(a, "")
	assert.InDelta(t, 1.5, r.Breakdown[KeyGBPerHourFixed], 1e-12)
	assert.InDelta(t, 50.0, r.Breakdown["fixed_resolution_share_percent_480p"], 1e-9)
	assert.InDelta(t, 2.5, r.Breakdown[KeyGBPerHourMobile], 1e-12)
}

func TestCompute_RoleDoesNotChangeArithmetic(t *testing.T) {
	a := scenario()
	p := Compute(a, "producer")
	c := Compute(a, "CONSUMER")
	u := Compute(a, "somebody")

	assert.Equal(t, RoleConsumer, c.Role)
	assert.Equal(t, RoleProducer, u.Role)
	assert.Equal(t, p.Breakdown, c.Breakdown)
	assert.Equal(t, p.Breakdown, u.Breakdown)
}

func TestCompute_DoesNotMutate(t *testing.T) {
	a := scenario()
	before := a.Clone()
	Compute(a, "")
	assert.Equal(t, before.Fields(), a.Fields())
}

func TestCompute_GuaranteedKeys(t *testing.T) {
	a, err := assumptions.LoadDefault()
	require.NoError(t, err)
	r := Compute(a, "")

	assert.Len(t, r.Breakdown, len(r.Keys), "every populated key is listed and vice versa")
	for _, k := range r.Keys {
		assert.Contains(t, r.Breakdown, k)
	}
	for _, k := range []string{
		"device_share_percent_tv",
		"device_energy_co2_per_video_hour_by_device_smartphone",
		"network_a_kwh_per_gb_mobile",
		"mobile_resolution_share_percent_2160p",
		KeyDatacenterCO2Total,
	} {
		assert.Contains(t, r.Keys, k)
	}
}
