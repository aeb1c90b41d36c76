// Package disturbance generates the feed-carbon disturbance for dynamic
// mode: a smooth, band-limited random walk over the feed grade envelope.
package disturbance

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/AUDRM-4824/Pre-float/internal/model"
)

// Walk produces a slowly drifting feed carbon grade. Sampling 1-D
// simplex noise along a time axis gives a continuous signal with no
// jumps between consecutive samples, unlike an independent per-tick
// perturbation. Deterministic for a given seed.
type Walk struct {
	noise opensimplex.Noise
	t     float64
	step  float64
	lo    float64
	hi    float64
}

// DefaultStep is the noise-axis advance per sample. Smaller is smoother.
const DefaultStep = 0.02

// NewWalk creates a feed-carbon walk over [model.FeedCarbonMin,
// model.FeedCarbonMax]. Seed 0 draws a random seed.
func NewWalk(seed int64) *Walk {
	return NewWalkRange(seed, model.FeedCarbonMin, model.FeedCarbonMax)
}

// NewWalkRange creates a walk over a custom grade band.
func NewWalkRange(seed int64, lo, hi float64) *Walk {
	if seed == 0 {
		seed = rand.Int63()
	}
	return &Walk{
		noise: opensimplex.NewNormalized(seed),
		step:  DefaultStep,
		lo:    lo,
		hi:    hi,
	}
}

// SetStep overrides the per-sample noise advance.
func (w *Walk) SetStep(step float64) {
	if step > 0 {
		w.step = step
	}
}

// Next advances the walk and returns the next feed carbon grade (%).
func (w *Walk) Next() float64 {
	w.t += w.step
	return w.At(w.t)
}

// Current returns the grade at the walk's present position without
// advancing it.
func (w *Walk) Current() float64 {
	return w.At(w.t)
}

// At samples the walk at an arbitrary noise-axis position.
func (w *Walk) At(t float64) float64 {
	// Normalized noise is already in [0, 1]; the clamp only guards
	// float edge cases at the band boundaries.
	n := w.noise.Eval2(t, 0)
	v := w.lo + n*(w.hi-w.lo)
	if v < w.lo {
		return w.lo
	}
	if v > w.hi {
		return w.hi
	}
	return v
}
