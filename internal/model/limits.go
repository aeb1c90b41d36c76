package model

// Feed and control input envelopes. The model is total over the real
// line; these are the ranges the circuit is actually operated (and
// validated) in, and they double as slider bounds in the operator
// console.
const (
	RougherAirMin = 0.0    // m³/hr
	RougherAirMax = 1000.0 // m³/hr
	JamesonAirMin = 0.0    // m³/hr
	JamesonAirMax = 600.0  // m³/hr
	LuprosetMin   = 0.0    // g/t
	LuprosetMax   = 100.0  // g/t
	FeedCarbonMin = 3.0    // %
	FeedCarbonMax = 6.0    // %
)

// FeedTonnage is the fixed feed rate the mass balance is computed
// against, in tonnes.
const FeedTonnage = 260.0

// Output clamp bounds.
const (
	ConcCarbonMin = 20.0 // % — concentrate carbon grade floor
	ConcCarbonMax = 60.0 // % — concentrate carbon grade ceiling
	TailCarbonMin = 0.2  // % — tailings carbon floor (ceiling is feed carbon)

	// Concentrate never takes more than half the feed.
	ConcMassMaxFrac = 0.5

	RecoveryMin = 10.0 // % — overall recovery floor
	RecoveryMax = 55.0 // % — overall recovery ceiling

	ZnLossMin = 0.1 // %
	ZnLossMax = 4.0 // %
)

// clamp bounds x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
