package model

import "fmt"

// Variable selects which input a sweep varies.
type Variable string

const (
	VarRougherAir Variable = "rougher_air"
	VarJamesonAir Variable = "jameson_air"
	VarLuproset   Variable = "luproset"
	VarFeedCarbon Variable = "feed_carbon"
)

// ParseVariable maps a variable name to a Variable.
func ParseVariable(name string) (Variable, error) {
	switch Variable(name) {
	case VarRougherAir, VarJamesonAir, VarLuproset, VarFeedCarbon:
		return Variable(name), nil
	}
	return "", fmt.Errorf("unknown sweep variable %q", name)
}

// Range returns the operating envelope for the variable.
func (v Variable) Range() (lo, hi float64) {
	switch v {
	case VarRougherAir:
		return RougherAirMin, RougherAirMax
	case VarJamesonAir:
		return JamesonAirMin, JamesonAirMax
	case VarLuproset:
		return LuprosetMin, LuprosetMax
	case VarFeedCarbon:
		return FeedCarbonMin, FeedCarbonMax
	}
	return 0, 0
}

// apply returns base with the variable set to x.
func (v Variable) apply(base Inputs, x float64) Inputs {
	switch v {
	case VarRougherAir:
		base.RougherAir = x
	case VarJamesonAir:
		base.JamesonAir = x
	case VarLuproset:
		base.Luproset = x
	case VarFeedCarbon:
		base.FeedCarbon = x
	}
	return base
}

// Sweep evaluates the model at points evenly spaced values of one input
// across [from, to], holding the other inputs at base. Used for the
// parameter-effect curves (recovery, grade and Zn loss versus air rate)
// in the operator console and API. points below 2 is treated as 2.
func Sweep(base Inputs, v Variable, from, to float64, points int) []Evaluation {
	if points < 2 {
		points = 2
	}

	out := make([]Evaluation, 0, points)
	step := (to - from) / float64(points-1)
	for i := 0; i < points; i++ {
		x := from + float64(i)*step
		out = append(out, Evaluate(v.apply(base, x)))
	}
	return out
}
