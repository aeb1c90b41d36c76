package plant

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AUDRM-4824/Pre-float/internal/model"
)

// Targets are the operating bands the circuit is run to. Values outside
// a band are flagged as warnings in the console and API, never rejected:
// the model stays total and the bands are advisory.
type Targets struct {
	RecoveryMin  float64 `yaml:"recovery_min" json:"recovery_min"`   // %
	RecoveryMax  float64 `yaml:"recovery_max" json:"recovery_max"`   // %
	ConcGradeMin float64 `yaml:"conc_grade_min" json:"conc_grade_min"` // %
	ConcGradeMax float64 `yaml:"conc_grade_max" json:"conc_grade_max"` // %
	TailGradeMin float64 `yaml:"tail_grade_min" json:"tail_grade_min"` // %
	TailGradeMax float64 `yaml:"tail_grade_max" json:"tail_grade_max"` // %
	ZnLossMax    float64 `yaml:"zn_loss_max" json:"zn_loss_max"`     // %
}

// DefaultTargets returns the standard operating bands for the circuit.
func DefaultTargets() Targets {
	return Targets{
		RecoveryMin:  20.0,
		RecoveryMax:  45.0,
		ConcGradeMin: 30.0,
		ConcGradeMax: 45.0,
		TailGradeMin: 2.8,
		TailGradeMax: 3.0,
		ZnLossMax:    2.5,
	}
}

// LoadTargets reads target bands from a YAML file. Fields left unset in
// the file keep their defaults.
func LoadTargets(path string) (Targets, error) {
	t := DefaultTargets()

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read targets: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse targets: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// Validate rejects inverted or nonsensical bands.
func (t Targets) Validate() error {
	if t.RecoveryMin >= t.RecoveryMax {
		return fmt.Errorf("targets: recovery band [%v, %v] is inverted", t.RecoveryMin, t.RecoveryMax)
	}
	if t.ConcGradeMin >= t.ConcGradeMax {
		return fmt.Errorf("targets: conc grade band [%v, %v] is inverted", t.ConcGradeMin, t.ConcGradeMax)
	}
	if t.TailGradeMin >= t.TailGradeMax {
		return fmt.Errorf("targets: tail grade band [%v, %v] is inverted", t.TailGradeMin, t.TailGradeMax)
	}
	if t.ZnLossMax <= 0 {
		return fmt.Errorf("targets: zn loss max %v must be positive", t.ZnLossMax)
	}
	return nil
}

// Warning flags one metric sitting outside its target band.
type Warning struct {
	Metric  string  `json:"metric"`
	Value   float64 `json:"value"`
	Low     float64 `json:"low,omitempty"`
	High    float64 `json:"high"`
	Message string  `json:"message"`
}

// Check returns a warning for each metric of the evaluation outside its
// target band. An empty result means the circuit is on target.
func (t Targets) Check(ev model.Evaluation) []Warning {
	var w []Warning

	if ev.Recovery < t.RecoveryMin || ev.Recovery > t.RecoveryMax {
		w = append(w, Warning{
			Metric: "recovery", Value: ev.Recovery, Low: t.RecoveryMin, High: t.RecoveryMax,
			Message: fmt.Sprintf("carbon recovery %.1f%% outside target %.0f–%.0f%%", ev.Recovery, t.RecoveryMin, t.RecoveryMax),
		})
	}
	if ev.ConcCarbon < t.ConcGradeMin || ev.ConcCarbon > t.ConcGradeMax {
		w = append(w, Warning{
			Metric: "conc_grade", Value: ev.ConcCarbon, Low: t.ConcGradeMin, High: t.ConcGradeMax,
			Message: fmt.Sprintf("concentrate grade %.1f%% outside target %.0f–%.0f%%", ev.ConcCarbon, t.ConcGradeMin, t.ConcGradeMax),
		})
	}
	if ev.TailCarbon < t.TailGradeMin || ev.TailCarbon > t.TailGradeMax {
		w = append(w, Warning{
			Metric: "tail_grade", Value: ev.TailCarbon, Low: t.TailGradeMin, High: t.TailGradeMax,
			Message: fmt.Sprintf("tailings carbon %.2f%% outside target %.1f–%.1f%%", ev.TailCarbon, t.TailGradeMin, t.TailGradeMax),
		})
	}
	if ev.ZnLoss > t.ZnLossMax {
		w = append(w, Warning{
			Metric: "zn_loss", Value: ev.ZnLoss, High: t.ZnLossMax,
			Message: fmt.Sprintf("Zn loss %.2f%% above target %.1f%%", ev.ZnLoss, t.ZnLossMax),
		})
	}
	return w
}
