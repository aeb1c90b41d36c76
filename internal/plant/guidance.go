package plant

import "github.com/AUDRM-4824/Pre-float/internal/model"

// Advice is one corrective suggestion for the operator.
type Advice struct {
	Condition string   `json:"condition"`
	Actions   []string `json:"actions"`
}

// Guidance returns operator advice for the current evaluation against
// the target bands: which way to move the air rates and the Luproset
// dose to bring each off-target metric back in. Empty when nothing needs
// correcting.
func Guidance(ev model.Evaluation, t Targets) []Advice {
	var out []Advice

	if ev.Recovery < t.RecoveryMin {
		out = append(out, Advice{
			Condition: "recovery low",
			Actions: []string{
				"increase rougher air rate",
				"increase jameson air rate",
				"reduce luproset dosage",
			},
		})
	}
	if ev.ConcCarbon < t.ConcGradeMin {
		out = append(out, Advice{
			Condition: "concentrate grade low",
			Actions: []string{
				"reduce rougher air rate",
				"reduce jameson air rate",
				"increase luproset dosage",
			},
		})
	}
	if ev.TailCarbon > t.TailGradeMax {
		out = append(out, Advice{
			Condition: "tailings carbon high",
			Actions: []string{
				"reduce luproset dosage (less carbon depressed)",
				"increase air rates (more carbon floated)",
			},
		})
	}
	if ev.ZnLoss > t.ZnLossMax {
		out = append(out, Advice{
			Condition: "zn loss high",
			Actions: []string{
				"reduce air rates (lower carbon recovery)",
				"increase luproset dosage",
				"balance recovery against zn retention",
			},
		})
	}
	return out
}
