// Package engine provides the tick-based sampling loop that drives a
// running circuit session.
package engine

import (
	"fmt"
	"log/slog"
	"time"
)

// Plant time. One tick is one sim-minute; the circuit runs two
// twelve-hour shifts a day.
const (
	TicksPerHour  = 60
	TicksPerShift = 720 // 12 h × 60
)

// Engine drives the sampling loop forward.
type Engine struct {
	Tick     uint64        // Current tick counter (monotonic, never resets)
	Speed    float64       // Multiplier: 1.0 = real-time, 0 = paused
	Interval time.Duration // Base tick interval (default 1 second)
	Running  bool

	// Callbacks for each cadence layer — populated during setup.
	OnTick  func(tick uint64) // Every tick (sim-minute): sample the session
	OnHour  func(tick uint64) // Every 60 ticks
	OnShift func(tick uint64) // Every 720 ticks: shift summary
}

// New creates an engine with default settings.
func New() *Engine {
	return &Engine{
		Speed:    1.0,
		Interval: time.Second,
	}
}

// Run starts the sampling loop. Blocks until Stop is called.
func (e *Engine) Run() {
	e.Running = true
	slog.Info("sampling engine started", "tick", e.Tick, "speed", e.Speed)

	for e.Running {
		if e.Speed <= 0 {
			// Paused — sleep briefly and check again.
			time.Sleep(100 * time.Millisecond)
			continue
		}

		start := time.Now()

		e.Step()

		// Sleep for the remainder of the tick interval, adjusted for speed.
		elapsed := time.Since(start)
		target := time.Duration(float64(e.Interval) / e.Speed)
		if elapsed < target {
			time.Sleep(target - elapsed)
		}
	}

	slog.Info("sampling engine stopped", "tick", e.Tick)
}

// Stop halts the sampling loop.
func (e *Engine) Stop() {
	e.Running = false
}

// Step advances exactly one tick, firing whichever cadence callbacks the
// new tick lands on. Run calls this; callers embedding their own loop
// may drive it directly.
func (e *Engine) Step() {
	e.Tick++

	if e.OnTick != nil {
		e.OnTick(e.Tick)
	}
	if e.Tick%TicksPerHour == 0 && e.OnHour != nil {
		e.OnHour(e.Tick)
	}
	if e.Tick%TicksPerShift == 0 && e.OnShift != nil {
		e.OnShift(e.Tick)
	}
}

// SimTime returns a human-readable plant time string for a tick number.
func SimTime(tick uint64) string {
	minutes := tick % 60
	totalHours := tick / 60
	hourOfDay := totalHours % 24
	day := totalHours/24 + 1

	shift := "day"
	if hourOfDay >= 18 || hourOfDay < 6 {
		shift = "night"
	}
	return fmt.Sprintf("Day %d %02d:%02d (%s shift)", day, hourOfDay, minutes, shift)
}
