package plant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AUDRM-4824/Pre-float/internal/model"
)

func sampleAt(tick uint64) Sample {
	return Sample{Tick: tick, Eval: model.Evaluate(model.Inputs{FeedCarbon: 4.5})}
}

func TestHistoryPushAndOrder(t *testing.T) {
	h := NewHistory(5)
	for tick := uint64(1); tick <= 3; tick++ {
		h.Push(sampleAt(tick))
	}

	require.Equal(t, 3, h.Len())
	samples := h.Samples()
	require.Len(t, samples, 3)
	for i, s := range samples {
		assert.Equal(t, uint64(i+1), s.Tick, "samples must be oldest first")
	}

	last, ok := h.Last()
	require.True(t, ok)
	assert.Equal(t, uint64(3), last.Tick)
}

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory(5)
	for tick := uint64(1); tick <= 12; tick++ {
		h.Push(sampleAt(tick))
	}

	require.Equal(t, 5, h.Len())
	samples := h.Samples()
	assert.Equal(t, uint64(8), samples[0].Tick)
	assert.Equal(t, uint64(12), samples[4].Tick)
}

func TestHistoryDefaultCapacity(t *testing.T) {
	h := NewHistory(0)
	assert.Equal(t, DefaultHistoryLen, h.Cap())

	for tick := uint64(1); tick <= 100; tick++ {
		h.Push(sampleAt(tick))
	}
	assert.Equal(t, DefaultHistoryLen, h.Len())
}

func TestHistoryReset(t *testing.T) {
	h := NewHistory(5)
	h.Push(sampleAt(1))
	h.Reset()

	assert.Equal(t, 0, h.Len())
	_, ok := h.Last()
	assert.False(t, ok)
	assert.Empty(t, h.Samples())

	// Usable again after reset.
	h.Push(sampleAt(2))
	assert.Equal(t, 1, h.Len())
}
