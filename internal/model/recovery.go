package model

// Recovery model coefficients. More air floats more carbon; more
// Luproset depresses carbon into the tailings. Same half-weighting
// convention for Jameson air as the grade model.
const (
	rougherAirRecoveryCoeff = 0.045
	jamesonAirRecoveryCoeff = 0.0225
	luprosetRecoveryCoeff   = -0.015
)

// Recovery returns the overall carbon recovery (%) predicted from the
// three control inputs, clamped to [10, 55].
//
// This is the figure reported to the operator as carbon recovery and the
// one the Zn-loss model consumes. It is computed independently of the
// mass-balance solver's recovery and the two are never reconciled; both
// are surfaced, as distinct fields, by Evaluate.
func Recovery(rougherAir, jamesonAir, luproset float64) float64 {
	r := rougherAirRecoveryCoeff*rougherAir +
		jamesonAirRecoveryCoeff*jamesonAir +
		luprosetRecoveryCoeff*luproset
	return clamp(r, RecoveryMin, RecoveryMax)
}

// ZnLoss returns the zinc loss (%) for an overall carbon recovery (%):
// the higher the carbon recovery, the more valuable metal co-floats into
// the carbon-rich stream. Linear interpolation from recovery [10, 55] to
// loss [0.1, 4.0]; recoveries outside the domain saturate at the
// endpoints, so the mapping is monotonic non-decreasing over the whole
// real line.
func ZnLoss(recoveryPct float64) float64 {
	t := (recoveryPct - RecoveryMin) / (RecoveryMax - RecoveryMin)
	t = clamp(t, 0, 1)
	return ZnLossMin + t*(ZnLossMax-ZnLossMin)
}
