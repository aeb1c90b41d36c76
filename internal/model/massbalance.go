package model

import "math"

// degenerateEps is the denominator magnitude below which the two-product
// balance is considered unsolvable (concentrate and tailings grades
// coincide and the split is indeterminate).
const degenerateEps = 1e-9

// Fallback triple returned when the balance degenerates. The dashboard
// must never crash on a division by zero mid-shift, so the solver
// substitutes a plausible split instead of surfacing a fault.
const (
	fallbackConcMass = 10.0
	fallbackTailMass = 90.0
	fallbackRecovery = 50.0
)

// MassBalance solves the two-product mass balance for a 260 t feed:
// concentrate mass, tailings mass (t) and carbon recovery to concentrate
// (%), from the three stream grades (%).
//
// After solving, concentrate mass is clamped to [0, 130] and tailings
// mass recomputed as the complement, so conc + tail == FeedTonnage holds
// exactly for every input. Recovery is clamped to [0, 100] independently
// of the mass clamp, which can leave the two figures mutually
// inconsistent at the envelope edges; that is an accepted approximation
// of this model, not something to reconcile here.
//
// When the grade difference is below epsilon the split is indeterminate
// and the fixed fallback triple (10, 90, 50) is returned as-is.
func MassBalance(feedCarbon, concCarbon, tailCarbon float64) (concMass, tailMass, recoveryPct float64) {
	// Either denominator degenerating means the balance is unsolvable:
	// coincident grades make the split indeterminate, and a zero feed
	// grade makes recovery indeterminate.
	den := concCarbon - tailCarbon
	if math.Abs(den) < degenerateEps || math.Abs(feedCarbon) < degenerateEps {
		return fallbackConcMass, fallbackTailMass, fallbackRecovery
	}

	concMass = FeedTonnage * (feedCarbon - tailCarbon) / den
	tailMass = FeedTonnage - concMass
	recoveryPct = concMass * concCarbon / (FeedTonnage * feedCarbon) * 100

	concMass = clamp(concMass, 0, FeedTonnage*ConcMassMaxFrac)
	tailMass = FeedTonnage - concMass
	recoveryPct = clamp(recoveryPct, 0, 100)

	return concMass, tailMass, recoveryPct
}
