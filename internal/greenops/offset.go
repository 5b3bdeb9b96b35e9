package greenops

import (
	"math"

	"github.com/rs/zerolog/log"
)

// Offset returns, for each action with a positive saving, how many times it
// must be performed to save totalKg. Actions saving nothing or a negative
// amount are left out.
func Offset(totalKg float64, savings Savings) map[string]float64 {
	out := make(map[string]float64)
	for _, action := range savings.Keys() {
		saving, _ := savings.Get(action)
		if saving <= 0 {
			continue
		}
		out[action] = totalKg / saving
	}
	return out
}

// BuildOffsetTable computes both offsetting columns in the declared order of
// savings. Skipped actions stay in the table with zero counts so the two
// columns line up with the action list.
func BuildOffsetTable(usageOnlyKg, withProductionKg float64, savings Savings) OffsetTable {
	usage := Offset(usageOnlyKg, savings)
	withProd := Offset(withProductionKg, savings)

	table := OffsetTable{UsageOnlyKg: usageOnlyKg, WithProductionKg: withProductionKg}
	for _, action := range savings.Keys() {
		saving, _ := savings.Get(action)
		row := OffsetRow{Action: action, SavingKg: saving}
		if _, ok := usage[action]; !ok {
			row.Skipped = true
			log.Debug().
				Str("component", "greenops").
				Str("action", action).
				Float64("saving_kg", saving).
				Msg("offsetting action skipped: saving is not positive")
		} else {
			row.UsageOnly = usage[action]
			row.WithProduction = withProd[action]
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// OffsetInput normalizes input to kilograms and offsets it. The same amount is
// used for both columns.
func OffsetInput(input CarbonInput, savings Savings) (OffsetTable, error) {
	kg, err := input.Normalize()
	if err != nil {
		return OffsetTable{}, err
	}
	table := BuildOffsetTable(kg, kg, savings)
	for _, r := range table.Rows {
		if math.IsInf(r.UsageOnly, 0) || math.IsNaN(r.UsageOnly) {
			return OffsetTable{}, ErrCalculationOverflow
		}
	}
	return table, nil
}
