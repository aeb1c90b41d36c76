package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AUDRM-4824/Pre-float/internal/plant"
)

func newTestConsole(t *testing.T) Console {
	t.Helper()
	return NewConsole(plant.NewSession(1, plant.DefaultTargets()))
}

func TestTickAdvancesSession(t *testing.T) {
	c := newTestConsole(t)

	m, cmd := c.Update(tickMsg{})
	c = m.(Console)

	assert.Equal(t, uint64(1), c.tick)
	assert.NotNil(t, cmd, "tick should schedule the next tick")
	assert.NotEmpty(t, c.session.HistorySamples())
}

func TestAdjustRougherAir(t *testing.T) {
	c := newTestConsole(t)
	require.Equal(t, 0, c.cursor)

	m, _ := c.Update(tea.KeyMsg{Type: tea.KeyRight})
	c = m.(Console)

	assert.InDelta(t, 50.0, c.session.Inputs().RougherAir, 1e-9)
}

func TestAdjustClampsAtRangeEdge(t *testing.T) {
	c := newTestConsole(t)

	// Left at the lower bound stays put.
	m, _ := c.Update(tea.KeyMsg{Type: tea.KeyLeft})
	c = m.(Console)
	assert.InDelta(t, 0.0, c.session.Inputs().RougherAir, 1e-9)
}

func TestCursorMovesWithinControls(t *testing.T) {
	c := newTestConsole(t)

	m, _ := c.Update(tea.KeyMsg{Type: tea.KeyUp})
	c = m.(Console)
	assert.Equal(t, 0, c.cursor, "cursor stays at first control")

	for i := 0; i < 10; i++ {
		m, _ = c.Update(tea.KeyMsg{Type: tea.KeyDown})
		c = m.(Console)
	}
	assert.Equal(t, len(controls)-1, c.cursor, "cursor stops at last control")
}

func TestFeedCarbonStep(t *testing.T) {
	c := newTestConsole(t)
	for c.cursor < 3 {
		m, _ := c.Update(tea.KeyMsg{Type: tea.KeyDown})
		c = m.(Console)
	}

	m, _ := c.Update(tea.KeyMsg{Type: tea.KeyRight})
	c = m.(Console)

	assert.InDelta(t, 4.6, c.session.Inputs().FeedCarbon, 1e-9)
}

func TestDynamicToggleBlocksFeedAdjust(t *testing.T) {
	c := newTestConsole(t)

	m, _ := c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	c = m.(Console)
	require.Equal(t, plant.ModeAuto, c.session.Mode())

	for c.cursor < 3 {
		m, _ = c.Update(tea.KeyMsg{Type: tea.KeyDown})
		c = m.(Console)
	}
	m, _ = c.Update(tea.KeyMsg{Type: tea.KeyRight})
	c = m.(Console)

	assert.NotEmpty(t, c.status, "auto mode rejects manual feed changes")
}

func TestQuitKey(t *testing.T) {
	c := newTestConsole(t)

	_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRenderSlider(t *testing.T) {
	assert.Equal(t, "[░░░░]", renderSlider(0, 0, 100, 4))
	assert.Equal(t, "[████]", renderSlider(100, 0, 100, 4))
	assert.Equal(t, "[██░░]", renderSlider(50, 0, 100, 4))
}

func TestSparkline(t *testing.T) {
	line := sparkline([]float64{0, 1, 2, 3}, 10)
	assert.Equal(t, []rune(line)[0], '▁')
	assert.Equal(t, []rune(line)[3], '█')

	flat := sparkline([]float64{5, 5, 5}, 10)
	assert.Equal(t, "▅▅▅", flat)

	// Longer series than the width keeps the most recent points.
	long := sparkline(make([]float64, 50), 10)
	assert.Len(t, []rune(long), 10)
}

func TestViewRenders(t *testing.T) {
	c := newTestConsole(t)
	m, _ := c.Update(tickMsg{})
	c = m.(Console)

	out := c.View()
	assert.Contains(t, out, "Rougher air")
	assert.Contains(t, out, "Recovery")
	assert.Contains(t, out, "concentrate")
}
