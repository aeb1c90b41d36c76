package model

// Grade model coefficients. Aeration strips carbon into the concentrate
// and dilutes its grade; Luproset depresses carbon flotation, raising
// concentrate grade and leaving more carbon in the tailings. Jameson air
// carries exactly half the per-unit effect of rougher air on every
// output — a deliberate simplification, not a derived scaling law.
const (
	baseConcGrade = 40.0

	rougherAirGradeCoeff = -0.012
	jamesonAirGradeCoeff = -0.006
	luprosetGradeCoeff   = 0.08

	baseTailFrac        = 0.5 // tailings baseline: half the feed grade
	luprosetTailCoeff   = 0.07
	rougherAirTailCoeff = -0.005
	jamesonAirTailCoeff = -0.0025
)

// Grades returns the concentrate and tailings carbon grades (%) for the
// given air rates (m³/hr), Luproset dosage (g/t) and feed carbon grade
// (%). Linear superposition of the three control effects on a fixed
// baseline; concentrate grade is clamped to [20, 60] and tailings grade
// to [0.2, feedCarbon].
func Grades(rougherAir, jamesonAir, luproset, feedCarbon float64) (conc, tail float64) {
	conc = baseConcGrade +
		rougherAirGradeCoeff*rougherAir +
		jamesonAirGradeCoeff*jamesonAir +
		luprosetGradeCoeff*luproset
	conc = clamp(conc, ConcCarbonMin, ConcCarbonMax)

	tail = baseTailFrac*feedCarbon +
		luprosetTailCoeff*luproset +
		rougherAirTailCoeff*rougherAir +
		jamesonAirTailCoeff*jamesonAir
	tail = clamp(tail, TailCarbonMin, feedCarbon)

	return conc, tail
}
