package assumptions

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalSource is a complete document with a few precision variants.
const minimalSource = `device_percent:
  computer: 25
  smartphone: 25
  tablet: 25
  tv: 25
fixed_network_percent:
  computer: 100
  smartphone: 100
  tablet: 100
  tv: 100
fixed_network_resolution_percent:
  1080p: 100
mobile_network_resolution_percent:
  1080p: 100
device_production_kg_co2e:
  computer: 200
  smartphone: 50
  tablet: 100
  tv: 300
device_lifetime_hours:
  computer: 10000
  smartphone: 5000
  tablet: 6000
  tv: 20000
device_watts:
  computer: 30
  smartphone: 3
  tablet: 6
  tv: 100
co2e_per_kWh: 0.06
network_kwh_per_gb:
  fixed: 0.002
  mobile: 0.05
network_kwh_per_user_per_hour:
  fixed: 0.01
  mobile: 0.002
datacenter_kg_co2e:
  per_GB: 0.001
  per_hour: 0.0005
video_bitrate_GB_per_hour:
  1080p: 2.25
co2e_offsetting:
  electric_vs_thermic_vehicle: 1.50
hours_input: 10
`

func TestLoadDefault(t *testing.T) {
	a, err := LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", a.SchemaVersion)
	assert.Equal(t, []string{"computer", "smartphone", "tablet", "tv"}, a.DevicePercent.Keys())
	assert.InDelta(t, 100.0, a.DevicePercent.Sum(), 1e-9)
	assert.InDelta(t, 0.052, a.CO2ePerKWh, 1e-12)
	assert.InDelta(t, 30.0, a.HoursInput, 1e-12)
	assert.Equal(t, []string{"electric_vs_thermic_vehicle", "no_meat_meal_vs_chicken_meal"},
		a.CO2eOffsetting.Keys())

	for _, c := range CheckGroups(a, DefaultGroups()) {
		assert.Equal(t, GroupOK, c.Status, c.Group.Variable)
	}
}

func TestLoad_Precision(t *testing.T) {
	a, err := Load([]byte(minimalSource))
	require.NoError(t, err)

	tests := []struct {
		name     string
		variable string
		subkey   string
		want     int
	}{
		{"trailing zero kept", CO2eOffsetting, "electric_vs_thermic_vehicle", 2},
		{"integer literal", HoursInput, "", 0},
		{"nested integer", DevicePercent, "tv", 0},
		{"nested float", DatacenterKgCO2e, "per_hour", 4},
		{"top-level float", CO2ePerKWh, "", 2},
		{"unknown subkey falls back to default", DevicePercent, "console", DefaultDecimals},
		{"unspecified field", "not_a_field", "", DefaultDecimals},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.GetDecimals(tt.variable, tt.subkey))
		})
	}
}

func TestLoad_QuotedKeys(t *testing.T) {
	src := strings.Replace(minimalSource, "fixed_network_resolution_percent:\n  1080p: 100",
		"fixed_network_resolution_percent:\n  \"1080p\": 100.0", 1)
	src = strings.Replace(src, "  mobile: 0.05\n", "  'mobile': 0.050\n", 1)

	a, err := Load([]byte(src))
	require.NoError(t, err)
	assert.InDelta(t, 100.0, a.FixedNetworkResolutionPercent.Value("1080p"), 1e-9)
	assert.Equal(t, 1, a.GetDecimals(FixedNetworkResolutionPercent, "1080p"))
	assert.Equal(t, 3, a.GetDecimals(NetworkKWhPerGB, NetworkMobile))
}

func TestLoad_LongLine(t *testing.T) {
	src := "# " + strings.Repeat("x", 70*1024) + "\n" + minimalSource

	a, err := Load([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, 0, a.GetDecimals(HoursInput, ""))
	assert.Equal(t, 0, a.GetDecimals(DevicePercent, "computer"))
	assert.Equal(t, 2, a.GetDecimals(CO2ePerKWh, ""))
	assert.Equal(t, 4, a.GetDecimals(DatacenterKgCO2e, "per_hour"))
}

func TestLoad_CoercesNumbers(t *testing.T) {
	src := strings.Replace(minimalSource, "hours_input: 10", `hours_input: "12.5"`, 1)
	a, err := Load([]byte(src))
	require.NoError(t, err)
	assert.InDelta(t, 12.5, a.HoursInput, 1e-12)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr []error
		contain string
	}{
		{
			name:    "malformed yaml",
			src:     "device_percent: [unterminated",
			wantErr: []error{ErrConfigParse},
		},
		{
			name:    "empty document",
			src:     "",
			wantErr: []error{ErrConfigParse},
		},
		{
			name:    "missing key",
			src:     strings.Replace(minimalSource, "hours_input: 10\n", "", 1),
			wantErr: []error{ErrConfigParse},
			contain: "hours_input",
		},
		{
			name:    "unknown key",
			src:     minimalSource + "bogus: 1\n",
			wantErr: []error{ErrConfigParse, ErrUnknownField},
			contain: "bogus",
		},
		{
			name:    "non numeric value",
			src:     strings.Replace(minimalSource, "co2e_per_kWh: 0.06", "co2e_per_kWh: lots", 1),
			wantErr: []error{ErrConfigParse},
			contain: "co2e_per_kWh",
		},
		{
			name:    "boolean value",
			src:     strings.Replace(minimalSource, "co2e_per_kWh: 0.06", "co2e_per_kWh: true", 1),
			wantErr: []error{ErrConfigParse},
		},
		{
			name:    "too deep",
			src:     strings.Replace(minimalSource, "  tv: 25\n", "  tv:\n    old: 1\n", 1),
			wantErr: []error{ErrConfigParse},
		},
		{
			name:    "negative watts",
			src:     strings.Replace(minimalSource, "  tv: 100\nco2e", "  tv: -100\nco2e", 1),
			wantErr: []error{ErrConfigParse},
			contain: "device_watts.tv",
		},
		{
			name:    "missing network",
			src:     strings.Replace(minimalSource, "  mobile: 0.05\n", "", 1),
			wantErr: []error{ErrConfigParse},
			contain: "mobile",
		},
		{
			name:    "resolution without bitrate",
			src:     strings.Replace(minimalSource, "mobile_network_resolution_percent:\n  1080p: 100", "mobile_network_resolution_percent:\n  720p: 100", 1),
			wantErr: []error{ErrConfigParse},
			contain: "720p",
		},
		{
			name:    "duplicate key",
			src:     minimalSource + "hours_input: 11\n",
			wantErr: []error{ErrConfigParse},
		},
		{
			name:    "unsupported schema",
			src:     "schema_version: \"2.1.0\"\n" + minimalSource,
			wantErr: []error{ErrUnsupportedVersion},
		},
		{
			name:    "invalid schema",
			src:     "schema_version: \"latest\"\n" + minimalSource,
			wantErr: []error{ErrUnsupportedVersion},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.src))
			require.Error(t, err)
			for _, want := range tt.wantErr {
				require.ErrorIs(t, err, want)
			}
			if tt.contain != "" {
				assert.Contains(t, err.Error(), tt.contain)
			}
		})
	}
}

func TestLoad_NegativeOffsettingAllowed(t *testing.T) {
	src := strings.Replace(minimalSource, "electric_vs_thermic_vehicle: 1.50", "electric_vs_thermic_vehicle: -1.50", 1)
	a, err := Load([]byte(src))
	require.NoError(t, err)
	assert.InDelta(t, -1.5, a.CO2eOffsetting.Value("electric_vs_thermic_vehicle"), 1e-12)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "absent.yaml"))
		require.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "assumptions.yaml")
		require.NoError(t, os.WriteFile(path, []byte(minimalSource), 0o600))
		a, err := LoadFile(path)
		require.NoError(t, err)
		assert.InDelta(t, 10.0, a.HoursInput, 1e-12)
	})

	t.Run("invalid file names the path", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("hours_input: 1\n"), 0o600))
		_, err := LoadFile(path)
		require.ErrorIs(t, err, ErrConfigParse)
		assert.Contains(t, err.Error(), "broken.yaml")
	})
}

func TestMarshal_RoundTrip(t *testing.T) {
	a, err := LoadDefault()
	require.NoError(t, err)

	out, err := Marshal(a)
	require.NoError(t, err)

	b, err := Load(out)
	require.NoError(t, err)

	assert.Equal(t, a.Fields(), b.Fields())
	assert.Equal(t, a.SchemaVersion, b.SchemaVersion)
	assert.Equal(t, 2, b.GetDecimals(VideoBitrateGBPerHour, "2160p"))
	assert.Contains(t, string(out), "2160p: 7.20")
	assert.Contains(t, string(out), "hours_input: 30\n")
}
