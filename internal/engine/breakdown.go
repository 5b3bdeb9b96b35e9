package engine

import (
	"github.com/rshade/greenstream/internal/assumptions"
)

// Breakdown holds every named quantity produced by Compute. Display templates
// substitute these names, so the key set is a stable contract; see GuaranteedKeys.
type Breakdown map[string]float64

// Scalar breakdown keys.
const (
	KeyGBPerHourFixed                    = "gb_per_hour_fixed"
	KeyGBPerHourMobile                   = "gb_per_hour_mobile"
	KeyNetworkShareFixed                 = "network_share_fixed"
	KeyNetworkShareMobile                = "network_share_mobile"
	KeyDeviceProductionPerHourTotal      = "device_production_co2_per_video_hour_total"
	KeyDeviceEnergyKWhPerHourTotal       = "device_energy_kwh_per_video_hour_total"
	KeyDeviceEnergyCO2PerHourTotal       = "device_energy_co2_per_video_hour_total"
	KeyDeviceProductionPlusEnergyPerHour = "device_production_co2_per_video_hour_total_plus_energy"
	KeyGBPerHourTotalWeighted            = "gb_per_hour_total_weighted"
	KeyDatacenterTransferPerHour         = "datacenter_co2_per_video_hour_transfer"
	KeyDatacenterRuntimePerHour          = "datacenter_co2_per_video_hour_runtime"
	KeyDatacenterPerHourTotal            = "datacenter_co2_per_video_hour_total"
	KeyHoursInput                        = "hours_input"
	KeyHoursInputYear                    = "hours_input_year"
	KeyNetworkKWhPerHourTotal            = "network_kwh_per_video_hour_total"
	KeyNetworkCO2PerHourTotal            = "network_co2_per_video_hour_total"
	KeyKgPerHourTotal                    = "kg_per_video_hour_total"
	KeyKgPerHourUsageOnly                = "kg_per_video_hour_usage_only"
	KeyTotalKgCO2e                       = "total_kg_co2e"
	KeyTotalKgCO2eUsageOnly              = "total_kg_co2e_usage_only"
	KeyProductionCO2Total                = "production_co2_total"
	KeyDeviceEnergyCO2Total              = "device_energy_co2_total"
	KeyNetworkCO2Total                   = "network_co2_total"
	KeyDatacenterCO2Total                = "datacenter_co2_total"
)

// Per-entity key prefixes; the entity name is appended.
const (
	PrefixDeviceShare             = "device_share_percent_"
	PrefixDeviceProductionPerHour = "device_production_co2_per_video_hour_by_device_"
	PrefixDeviceEnergyKWhPerHour  = "device_energy_kwh_per_video_hour_by_device_"
	PrefixDeviceEnergyCO2PerHour  = "device_energy_co2_per_video_hour_by_device_"
	PrefixNetworkA                = "network_a_kwh_per_gb_"
	PrefixNetworkB                = "network_b_kwh_per_user_hour_"
	PrefixNetworkGBPerHour        = "network_gb_per_hour_"
	PrefixNetworkKWhPerHour       = "network_kwh_per_video_hour_"
	PrefixNetworkCO2PerHour       = "network_co2_per_video_hour_"
	SuffixResolutionSharePercent  = "_resolution_share_percent_"
)

// Networks lists the network kinds in the order they are computed.
//
//nolint:gochecknoglobals // Read-only ordering.
var Networks = []string{assumptions.NetworkFixed, assumptions.NetworkMobile}

// CategoryKeys are the four annual category totals that add up to total_kg_co2e.
func CategoryKeys() []string {
	return []string{KeyProductionCO2Total, KeyDeviceEnergyCO2Total, KeyNetworkCO2Total, KeyDatacenterCO2Total}
}

// GuaranteedKeys lists, in display order, every key Compute populates for a
// given set of assumptions. The per-device keys follow device_percent.
func GuaranteedKeys(a *assumptions.Assumptions) []string {
	var keys []string
	for _, n := range Networks {
		t := resolutionTable(a, n)
		for _, r := range t.Keys() {
			keys = append(keys, resolutionShareKey(n, r))
		}
	}
	keys = append(keys, KeyGBPerHourFixed, KeyGBPerHourMobile)

	devices := a.DevicePercent.Keys()
	for _, d := range devices {
		keys = append(keys, PrefixDeviceShare+d)
	}
	keys = append(keys, KeyNetworkShareFixed, KeyNetworkShareMobile)

	for _, d := range devices {
		keys = append(keys, PrefixDeviceProductionPerHour+d)
	}
	keys = append(keys, KeyDeviceProductionPerHourTotal)
	for _, d := range devices {
		keys = append(keys, PrefixDeviceEnergyKWhPerHour+d, PrefixDeviceEnergyCO2PerHour+d)
	}
	keys = append(keys,
		KeyDeviceEnergyKWhPerHourTotal,
		KeyDeviceEnergyCO2PerHourTotal,
		KeyDeviceProductionPlusEnergyPerHour,
	)

	for _, n := range Networks {
		keys = append(keys,
			PrefixNetworkA+n,
			PrefixNetworkB+n,
			PrefixNetworkGBPerHour+n,
			PrefixNetworkKWhPerHour+n,
			PrefixNetworkCO2PerHour+n,
		)
	}

	keys = append(keys,
		KeyGBPerHourTotalWeighted,
		KeyDatacenterTransferPerHour,
		KeyDatacenterRuntimePerHour,
		KeyDatacenterPerHourTotal,
		KeyHoursInput,
		KeyHoursInputYear,
		KeyNetworkKWhPerHourTotal,
		KeyNetworkCO2PerHourTotal,
		KeyKgPerHourTotal,
		KeyKgPerHourUsageOnly,
		KeyTotalKgCO2e,
		KeyTotalKgCO2eUsageOnly,
	)
	return append(keys, CategoryKeys()...)
}

func resolutionShareKey(network, resolution string) string {
	return network + SuffixResolutionSharePercent + resolution
}

func resolutionTable(a *assumptions.Assumptions, network string) *assumptions.Table {
	if network == assumptions.NetworkMobile {
		return &a.MobileNetworkResolutionPercent
	}
	return &a.FixedNetworkResolutionPercent
}
