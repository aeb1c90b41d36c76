package plant

import (
	"time"

	"github.com/AUDRM-4824/Pre-float/internal/model"
)

// DefaultHistoryLen is how many trend samples the session retains.
const DefaultHistoryLen = 30

// Sample is one recorded evaluation with the tick and wall time it was
// taken at.
type Sample struct {
	Tick uint64           `json:"tick"`
	Time time.Time        `json:"time"`
	Eval model.Evaluation `json:"eval"`
}

// History is a fixed-capacity ring buffer of samples, oldest evicted
// first. Not safe for concurrent use; the owning session serializes
// access.
type History struct {
	buf   []Sample
	head  int // index of the oldest sample
	count int
}

// NewHistory creates a history retaining up to capacity samples.
// Non-positive capacities fall back to DefaultHistoryLen.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryLen
	}
	return &History{buf: make([]Sample, capacity)}
}

// Push appends a sample, evicting the oldest when full.
func (h *History) Push(s Sample) {
	if h.count < len(h.buf) {
		h.buf[(h.head+h.count)%len(h.buf)] = s
		h.count++
		return
	}
	h.buf[h.head] = s
	h.head = (h.head + 1) % len(h.buf)
}

// Len returns the number of retained samples.
func (h *History) Len() int {
	return h.count
}

// Cap returns the retention capacity.
func (h *History) Cap() int {
	return len(h.buf)
}

// Samples returns the retained samples, oldest first, as a fresh slice.
func (h *History) Samples() []Sample {
	out := make([]Sample, 0, h.count)
	for i := 0; i < h.count; i++ {
		out = append(out, h.buf[(h.head+i)%len(h.buf)])
	}
	return out
}

// Last returns the most recent sample, if any.
func (h *History) Last() (Sample, bool) {
	if h.count == 0 {
		return Sample{}, false
	}
	return h.buf[(h.head+h.count-1)%len(h.buf)], true
}

// Reset drops all samples.
func (h *History) Reset() {
	h.head = 0
	h.count = 0
}
