package disturbance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AUDRM-4824/Pre-float/internal/model"
)

func TestWalkStaysInBand(t *testing.T) {
	w := NewWalk(42)
	for i := 0; i < 5000; i++ {
		v := w.Next()
		require.GreaterOrEqual(t, v, model.FeedCarbonMin)
		require.LessOrEqual(t, v, model.FeedCarbonMax)
	}
}

func TestWalkDeterministicPerSeed(t *testing.T) {
	a, b := NewWalk(7), NewWalk(7)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestWalkSeedsDiffer(t *testing.T) {
	a, b := NewWalk(1), NewWalk(2)
	same := true
	for i := 0; i < 50; i++ {
		if a.Next() != b.Next() {
			same = false
			break
		}
	}
	assert.False(t, same, "two seeds produced identical walks")
}

func TestWalkIsSmooth(t *testing.T) {
	// Consecutive samples move by a small fraction of the band, never a
	// jump across it.
	w := NewWalk(99)
	prev := w.Next()
	band := model.FeedCarbonMax - model.FeedCarbonMin
	for i := 0; i < 1000; i++ {
		v := w.Next()
		assert.LessOrEqual(t, abs(v-prev), band*0.15, "sample %d jumped", i)
		prev = v
	}
}

func TestWalkCustomRange(t *testing.T) {
	w := NewWalkRange(5, 4.0, 4.4)
	for i := 0; i < 500; i++ {
		v := w.Next()
		require.GreaterOrEqual(t, v, 4.0)
		require.LessOrEqual(t, v, 4.4)
	}
}

func TestWalkCurrentDoesNotAdvance(t *testing.T) {
	w := NewWalk(11)
	w.Next()
	assert.Equal(t, w.Current(), w.Current())
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
