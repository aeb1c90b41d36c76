package plant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AUDRM-4824/Pre-float/internal/model"
)

func newTestSession() *Session {
	return NewSession(42, DefaultTargets())
}

func TestNewSessionDefaults(t *testing.T) {
	s := newTestSession()

	assert.NotEmpty(t, s.RunID)
	assert.Equal(t, ModeManual, s.Mode())
	assert.Equal(t, DefaultInputs, s.Inputs())

	// Current evaluation is populated before the first tick.
	ev := s.Current()
	assert.Equal(t, DefaultInputs, ev.Inputs)
	assert.InDelta(t, 46.4, ev.ConcCarbon, 1e-6)
}

func TestSetSetpointsRange(t *testing.T) {
	s := newTestSession()

	require.NoError(t, s.SetSetpoints(1, 500, 200, 40))
	in := s.Inputs()
	assert.Equal(t, 500.0, in.RougherAir)
	assert.Equal(t, 200.0, in.JamesonAir)
	assert.Equal(t, 40.0, in.Luproset)

	assert.Error(t, s.SetSetpoints(2, -1, 0, 0))
	assert.Error(t, s.SetSetpoints(2, 0, 700, 0))
	assert.Error(t, s.SetSetpoints(2, 0, 0, 101))

	// Rejected setpoints leave the session untouched.
	assert.Equal(t, in, s.Inputs())
}

func TestSetSetpointsReevaluates(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.SetSetpoints(1, 500, 0, 0))

	ev := s.Current()
	assert.InDelta(t, 34.0, ev.ConcCarbon, 1e-6)
	assert.InDelta(t, 22.5, ev.Recovery, 1e-6)
}

func TestSetFeedCarbonManualOnly(t *testing.T) {
	s := newTestSession()

	require.NoError(t, s.SetFeedCarbon(1, 5.2))
	assert.Equal(t, 5.2, s.Inputs().FeedCarbon)

	assert.Error(t, s.SetFeedCarbon(1, 2.0))
	assert.Error(t, s.SetFeedCarbon(1, 6.5))

	require.NoError(t, s.SetMode(2, ModeAuto))
	assert.Error(t, s.SetFeedCarbon(3, 4.5), "feed is walk-driven in auto mode")
}

func TestStepAutoDisturbsFeed(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.SetMode(1, ModeAuto))

	seen := map[float64]bool{}
	for tick := uint64(1); tick <= 200; tick++ {
		ev := s.Step(tick)
		require.GreaterOrEqual(t, ev.Inputs.FeedCarbon, model.FeedCarbonMin)
		require.LessOrEqual(t, ev.Inputs.FeedCarbon, model.FeedCarbonMax)
		seen[ev.Inputs.FeedCarbon] = true
	}
	assert.Greater(t, len(seen), 10, "auto mode should move the feed grade")
}

func TestStepManualRecordsOnlyChanges(t *testing.T) {
	s := newTestSession()

	// Idle ticks: one sample for the initial state, nothing more.
	for tick := uint64(1); tick <= 10; tick++ {
		s.Step(tick)
	}
	assert.Len(t, s.HistorySamples(), 1)

	// A setpoint move produces exactly one more sample.
	require.NoError(t, s.SetSetpoints(11, 300, 100, 50))
	for tick := uint64(11); tick <= 20; tick++ {
		s.Step(tick)
	}
	samples := s.HistorySamples()
	require.Len(t, samples, 2)
	assert.Equal(t, 300.0, samples[1].Eval.Inputs.RougherAir)
}

func TestHistoryBounded(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.SetMode(1, ModeAuto))

	for tick := uint64(1); tick <= 500; tick++ {
		s.Step(tick)
	}
	samples := s.HistorySamples()
	assert.Len(t, samples, DefaultHistoryLen)
	// Oldest first, monotone ticks.
	for i := 1; i < len(samples); i++ {
		assert.Less(t, samples[i-1].Tick, samples[i].Tick)
	}
}

func TestQualityTransitionEvents(t *testing.T) {
	s := newTestSession()

	// Default setpoints are far off target: first step emits quality
	// excursion events.
	s.Step(1)
	events := s.Events(0)
	require.NotEmpty(t, events)
	var quality int
	for _, e := range events {
		if e.Category == "quality" {
			quality++
		}
	}
	assert.Greater(t, quality, 0)

	// Staying off target emits nothing new.
	before := len(s.Events(0))
	s.Step(2)
	s.Step(3)
	assert.Equal(t, before, len(s.Events(0)))
}

func TestEventsSinceFilter(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.SetSetpoints(5, 100, 0, 0))
	require.NoError(t, s.SetSetpoints(10, 200, 0, 0))

	assert.Len(t, s.Events(6), 1)
	assert.Len(t, s.Events(0), 2)
}

func TestResetTrends(t *testing.T) {
	s := newTestSession()
	s.Step(1)
	require.NotEmpty(t, s.HistorySamples())

	s.ResetTrends(2)
	assert.Empty(t, s.HistorySamples())

	// The reset itself is the only surviving event.
	events := s.Events(0)
	require.Len(t, events, 1)
	assert.Equal(t, "session", events[0].Category)
}

func TestEndShift(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.SetSetpoints(0, 500, 0, 0))
	for tick := uint64(1); tick <= 10; tick++ {
		s.Step(tick)
	}

	st := s.EndShift()
	assert.Equal(t, 10, st.Samples)
	assert.InDelta(t, 22.5, st.AvgRecovery, 1e-6)
	assert.InDelta(t, 34.0, st.AvgConcGrade, 1e-6)

	// Window restarts.
	st = s.EndShift()
	assert.Equal(t, 0, st.Samples)
}

func TestWarningsAndGuidanceExposed(t *testing.T) {
	s := newTestSession()
	// Default: no air, 80 g/t Luproset — recovery floored, tailings at feed.
	assert.NotEmpty(t, s.Warnings())
	assert.NotEmpty(t, s.Guidance())
}
