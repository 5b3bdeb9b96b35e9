package greenops

// Unit conversion factors to kilograms.
const (
	GramsToKg  = 0.001
	KgToKg     = 1.0
	TonsToKg   = 1000.0
	PoundsToKg = 0.453592
)

// Thresholds for abbreviated display of large counts.
const (
	LargeNumberThreshold = 1_000_000
	BillionThreshold     = 1_000_000_000
)
