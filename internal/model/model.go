package model

// Inputs are the three control setpoints and the feed disturbance for
// one evaluation of the circuit.
type Inputs struct {
	RougherAir float64 `json:"rougher_air" yaml:"rougher_air"` // m³/hr
	JamesonAir float64 `json:"jameson_air" yaml:"jameson_air"` // m³/hr
	Luproset   float64 `json:"luproset" yaml:"luproset"`       // g/t
	FeedCarbon float64 `json:"feed_carbon" yaml:"feed_carbon"` // %
}

// Evaluation is the full predicted steady state for one set of inputs.
// All fields are always populated; internal degeneracies are absorbed by
// the mass-balance fallback, never surfaced as partial results.
type Evaluation struct {
	Inputs Inputs `json:"inputs"`

	// Recovery is the overall carbon recovery (%) from the control-input
	// formula. MassBalanceRecovery is the independently computed recovery
	// implied by the reconciled mass split; the two generally differ.
	Recovery            float64 `json:"recovery"`
	MassBalanceRecovery float64 `json:"mass_balance_recovery"`

	ConcCarbon float64 `json:"conc_carbon"` // concentrate carbon grade, %
	TailCarbon float64 `json:"tail_carbon"` // tailings carbon grade, %
	ConcMass   float64 `json:"conc_mass"`   // t
	TailMass   float64 `json:"tail_mass"`   // t
	ZnLoss     float64 `json:"zn_loss"`     // %
}

// Evaluate runs the full model chain for one set of inputs: grade model,
// then the mass balance over its grades, then the independent recovery
// model feeding the Zn-loss model.
func Evaluate(in Inputs) Evaluation {
	conc, tail := Grades(in.RougherAir, in.JamesonAir, in.Luproset, in.FeedCarbon)
	concMass, tailMass, balRecovery := MassBalance(in.FeedCarbon, conc, tail)
	recovery := Recovery(in.RougherAir, in.JamesonAir, in.Luproset)

	return Evaluation{
		Inputs:              in,
		Recovery:            recovery,
		MassBalanceRecovery: balRecovery,
		ConcCarbon:          conc,
		TailCarbon:          tail,
		ConcMass:            concMass,
		TailMass:            tailMass,
		ZnLoss:              ZnLoss(recovery),
	}
}

// CarbonTonnes returns the carbon mass (t) carried by a stream of the
// given mass (t) and grade (%).
func CarbonTonnes(mass, gradePct float64) float64 {
	return mass * gradePct / 100
}
