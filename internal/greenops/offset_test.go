package greenops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/greenstream/internal/assumptions"
)

var _ Savings = (*assumptions.Table)(nil)

func savingsTable(keys []string, values map[string]float64) *assumptions.Table {
	t := assumptions.NewTable(keys, values)
	return &t
}

func TestOffset(t *testing.T) {
	savings := savingsTable(
		[]string{"car_km", "meal", "nothing", "backwards"},
		map[string]float64{"car_km": 0.17, "meal": 1.07, "nothing": 0, "backwards": -2},
	)

	tests := []struct {
		name    string
		totalKg float64
		want    map[string]float64
	}{
		{
			name:    "positive savings divide the total",
			totalKg: 107,
			want:    map[string]float64{"car_km": 107 / 0.17, "meal": 100},
		},
		{
			name:    "zero total",
			totalKg: 0,
			want:    map[string]float64{"car_km": 0, "meal": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Offset(tt.totalKg, savings)
			require.Len(t, got, len(tt.want))
			for k, v := range tt.want {
				assert.InDelta(t, v, got[k], 1e-9, k)
			}
			assert.NotContains(t, got, "nothing")
			assert.NotContains(t, got, "backwards")
		})
	}
}

func TestBuildOffsetTable(t *testing.T) {
	savings := savingsTable(
		[]string{"meal", "nothing", "car_km"},
		map[string]float64{"meal": 2, "nothing": 0, "car_km": 0.5},
	)

	table := BuildOffsetTable(10, 30, savings)

	require.Len(t, table.Rows, 3)
	assert.Equal(t, []string{"meal", "nothing", "car_km"},
		[]string{table.Rows[0].Action, table.Rows[1].Action, table.Rows[2].Action})

	assert.InDelta(t, 5.0, table.Rows[0].UsageOnly, 1e-12)
	assert.InDelta(t, 15.0, table.Rows[0].WithProduction, 1e-12)

	assert.True(t, table.Rows[1].Skipped)
	assert.Zero(t, table.Rows[1].UsageOnly)
	assert.Zero(t, table.Rows[1].WithProduction)

	assert.InDelta(t, 60.0, table.Rows[2].WithProduction, 1e-12)
	assert.InDelta(t, 10.0, table.UsageOnlyKg, 0)
	assert.InDelta(t, 30.0, table.WithProductionKg, 0)
}

func TestOffsetInput(t *testing.T) {
	savings := savingsTable([]string{"meal"}, map[string]float64{"meal": 1.07})

	t.Run("normalizes units", func(t *testing.T) {
		table, err := OffsetInput(CarbonInput{Value: 1.07, Unit: "t"}, savings)
		require.NoError(t, err)
		require.Len(t, table.Rows, 1)
		assert.InDelta(t, 1000.0, table.Rows[0].UsageOnly, 1e-9)
		assert.InDelta(t, 1000.0, table.Rows[0].WithProduction, 1e-9)
	})

	t.Run("invalid unit", func(t *testing.T) {
		_, err := OffsetInput(CarbonInput{Value: 1, Unit: "oz"}, savings)
		require.ErrorIs(t, err, ErrInvalidUnit)
	})

	t.Run("negative value", func(t *testing.T) {
		_, err := OffsetInput(CarbonInput{Value: -1, Unit: "kg"}, savings)
		require.ErrorIs(t, err, ErrNegativeValue)
	})

	t.Run("overflow", func(t *testing.T) {
		tiny := savingsTable([]string{"atom"}, map[string]float64{"atom": math.SmallestNonzeroFloat64})
		_, err := OffsetInput(CarbonInput{Value: 1e300, Unit: "kg"}, tiny)
		require.ErrorIs(t, err, ErrCalculationOverflow)
	})
}
