// Package plant owns all mutable session state around the stateless
// process model: current setpoints, control mode, the rolling trend
// history, target-band tracking and the event log. The model package
// never holds state; everything an interaction mutates lives here.
package plant

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AUDRM-4824/Pre-float/internal/disturbance"
	"github.com/AUDRM-4824/Pre-float/internal/model"
)

// Mode selects who drives the feed carbon grade.
type Mode string

const (
	// ModeManual: the operator sets feed carbon like any other input.
	ModeManual Mode = "manual"
	// ModeAuto: the disturbance walk perturbs feed carbon every tick.
	ModeAuto Mode = "auto"
)

// maxEvents bounds the in-memory event log.
const maxEvents = 200

// Event is a notable occurrence in the session: a setpoint move, a mode
// change, a metric leaving or re-entering its target band.
type Event struct {
	Tick        uint64 `json:"tick"`
	Description string `json:"description"`
	Category    string `json:"category"` // "setpoint", "mode", "quality", "session"
}

// ShiftStats aggregates evaluations over one shift.
type ShiftStats struct {
	Samples     int     `json:"samples"`
	AvgRecovery float64 `json:"avg_recovery"`
	AvgConcGrade float64 `json:"avg_conc_grade"`
	AvgZnLoss   float64 `json:"avg_zn_loss"`
	Excursions  int     `json:"excursions"` // samples with at least one warning
}

// Session is one operator session against the circuit model. Safe for
// concurrent use: the engine ticks it while the API reads it.
type Session struct {
	// RunID identifies this session in logs and the API. Set at
	// construction, never changed.
	RunID string

	mu      sync.RWMutex
	inputs  model.Inputs
	mode    Mode
	current model.Evaluation
	history *History
	events  []Event
	walk    *disturbance.Walk
	targets Targets

	lastRecorded model.Inputs
	hasRecorded  bool

	// Out-of-band metrics as of the last step, for transition events.
	outOfBand map[string]bool

	shiftSamples    int
	shiftRecovery   float64
	shiftConcGrade  float64
	shiftZnLoss     float64
	shiftExcursions int
}

// DefaultInputs is where a fresh session starts: the original dashboard
// defaults (no air, 80 g/t Luproset, 4.5% feed carbon).
var DefaultInputs = model.Inputs{
	RougherAir: 0,
	JamesonAir: 0,
	Luproset:   80,
	FeedCarbon: 4.5,
}

// NewSession creates a session in manual mode with default setpoints and
// targets. Seed drives the dynamic-mode disturbance walk (0 = random).
func NewSession(seed int64, targets Targets) *Session {
	s := &Session{
		RunID:     uuid.NewString(),
		inputs:    DefaultInputs,
		mode:      ModeManual,
		history:   NewHistory(DefaultHistoryLen),
		walk:      disturbance.NewWalk(seed),
		targets:   targets,
		outOfBand: make(map[string]bool),
	}
	s.current = model.Evaluate(s.inputs)
	return s
}

// Step advances the session one tick: applies the disturbance in auto
// mode, re-evaluates the model, records a trend sample when the inputs
// moved, and emits quality events on target-band transitions. Returns
// the fresh evaluation.
func (s *Session) Step(tick uint64) model.Evaluation {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == ModeAuto {
		s.inputs.FeedCarbon = s.walk.Next()
	}

	ev := model.Evaluate(s.inputs)
	s.current = ev

	// Trend history records changes, not idle repetition.
	if !s.hasRecorded || s.inputs != s.lastRecorded {
		s.history.Push(Sample{Tick: tick, Time: time.Now(), Eval: ev})
		s.lastRecorded = s.inputs
		s.hasRecorded = true
	}

	warnings := s.targets.Check(ev)
	s.recordTransitions(tick, warnings)

	s.shiftSamples++
	s.shiftRecovery += ev.Recovery
	s.shiftConcGrade += ev.ConcCarbon
	s.shiftZnLoss += ev.ZnLoss
	if len(warnings) > 0 {
		s.shiftExcursions++
	}

	return ev
}

// recordTransitions emits one event per metric entering or leaving its
// target band. Caller holds the lock.
func (s *Session) recordTransitions(tick uint64, warnings []Warning) {
	now := make(map[string]bool, len(warnings))
	for _, w := range warnings {
		now[w.Metric] = true
		if !s.outOfBand[w.Metric] {
			s.emit(Event{Tick: tick, Description: w.Message, Category: "quality"})
		}
	}
	for metric := range s.outOfBand {
		if !now[metric] {
			s.emit(Event{
				Tick:        tick,
				Description: fmt.Sprintf("%s back within target band", metric),
				Category:    "quality",
			})
		}
	}
	s.outOfBand = now
}

// emit appends an event, evicting the oldest past maxEvents. Caller
// holds the lock.
func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
	if len(s.events) > maxEvents {
		s.events = s.events[len(s.events)-maxEvents:]
	}
}

// SetSetpoints moves the three control setpoints. Values outside the
// operating envelope are rejected; range enforcement is the caller
// side's job, the model itself stays total.
func (s *Session) SetSetpoints(tick uint64, rougherAir, jamesonAir, luproset float64) error {
	if rougherAir < model.RougherAirMin || rougherAir > model.RougherAirMax {
		return fmt.Errorf("rougher air %v outside [%v, %v] m³/hr", rougherAir, model.RougherAirMin, model.RougherAirMax)
	}
	if jamesonAir < model.JamesonAirMin || jamesonAir > model.JamesonAirMax {
		return fmt.Errorf("jameson air %v outside [%v, %v] m³/hr", jamesonAir, model.JamesonAirMin, model.JamesonAirMax)
	}
	if luproset < model.LuprosetMin || luproset > model.LuprosetMax {
		return fmt.Errorf("luproset %v outside [%v, %v] g/t", luproset, model.LuprosetMin, model.LuprosetMax)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.inputs.RougherAir = rougherAir
	s.inputs.JamesonAir = jamesonAir
	s.inputs.Luproset = luproset
	s.current = model.Evaluate(s.inputs)

	s.emit(Event{
		Tick: tick,
		Description: fmt.Sprintf("setpoints moved: rougher %.0f m³/hr, jameson %.0f m³/hr, luproset %.0f g/t",
			rougherAir, jamesonAir, luproset),
		Category: "setpoint",
	})
	slog.Info("setpoints changed",
		"rougher_air", rougherAir, "jameson_air", jamesonAir, "luproset", luproset)
	return nil
}

// SetFeedCarbon sets the feed grade directly. Only valid in manual mode;
// in auto mode the disturbance walk owns the feed.
func (s *Session) SetFeedCarbon(tick uint64, feedCarbon float64) error {
	if feedCarbon < model.FeedCarbonMin || feedCarbon > model.FeedCarbonMax {
		return fmt.Errorf("feed carbon %v outside [%v, %v] %%", feedCarbon, model.FeedCarbonMin, model.FeedCarbonMax)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == ModeAuto {
		return fmt.Errorf("feed carbon is disturbance-driven in auto mode")
	}

	s.inputs.FeedCarbon = feedCarbon
	s.current = model.Evaluate(s.inputs)
	s.emit(Event{
		Tick:        tick,
		Description: fmt.Sprintf("feed carbon set to %.1f%%", feedCarbon),
		Category:    "setpoint",
	})
	return nil
}

// SetMode switches between manual and auto feed disturbance.
func (s *Session) SetMode(tick uint64, m Mode) error {
	if m != ModeManual && m != ModeAuto {
		return fmt.Errorf("unknown mode %q", m)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == m {
		return nil
	}
	s.mode = m
	s.emit(Event{
		Tick:        tick,
		Description: fmt.Sprintf("control mode switched to %s", m),
		Category:    "mode",
	})
	slog.Info("mode changed", "mode", m)
	return nil
}

// Mode returns the current control mode.
func (s *Session) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Inputs returns the current setpoints and feed grade.
func (s *Session) Inputs() model.Inputs {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inputs
}

// Current returns the latest evaluation.
func (s *Session) Current() model.Evaluation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// HistorySamples returns the retained trend samples, oldest first.
func (s *Session) HistorySamples() []Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.Samples()
}

// Events returns events with Tick >= since, oldest first.
func (s *Session) Events(since uint64) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Event, 0, len(s.events))
	for _, e := range s.events {
		if e.Tick >= since {
			out = append(out, e)
		}
	}
	return out
}

// Warnings returns the target-band warnings for the latest evaluation.
func (s *Session) Warnings() []Warning {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.targets.Check(s.current)
}

// Guidance returns operator advice for the latest evaluation.
func (s *Session) Guidance() []Advice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Guidance(s.current, s.targets)
}

// Targets returns the session's operating bands.
func (s *Session) Targets() Targets {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.targets
}

// ResetTrends clears the trend history and event log, keeping setpoints
// and mode.
func (s *Session) ResetTrends(tick uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history.Reset()
	s.events = nil
	s.hasRecorded = false
	s.emit(Event{Tick: tick, Description: "trend history reset", Category: "session"})
	slog.Info("trend history reset", "tick", tick)
}

// EndShift returns the aggregated stats for the shift just finished and
// starts a new accumulation window.
func (s *Session) EndShift() ShiftStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := ShiftStats{Samples: s.shiftSamples, Excursions: s.shiftExcursions}
	if s.shiftSamples > 0 {
		n := float64(s.shiftSamples)
		st.AvgRecovery = s.shiftRecovery / n
		st.AvgConcGrade = s.shiftConcGrade / n
		st.AvgZnLoss = s.shiftZnLoss / n
	}

	s.shiftSamples = 0
	s.shiftRecovery = 0
	s.shiftConcGrade = 0
	s.shiftZnLoss = 0
	s.shiftExcursions = 0
	return st
}
