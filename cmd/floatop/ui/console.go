package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AUDRM-4824/Pre-float/internal/model"
	"github.com/AUDRM-4824/Pre-float/internal/plant"
)

// tickInterval is the console's sim cadence: one plant tick per second.
const tickInterval = time.Second

// control describes one adjustable circuit input and its slider step.
type control struct {
	name string
	unit string
	min  float64
	max  float64
	step float64
	get  func(model.Inputs) float64
}

var controls = []control{
	{"Rougher air", "m³/hr", model.RougherAirMin, model.RougherAirMax, 50, func(in model.Inputs) float64 { return in.RougherAir }},
	{"Jameson air", "m³/hr", model.JamesonAirMin, model.JamesonAirMax, 25, func(in model.Inputs) float64 { return in.JamesonAir }},
	{"Luproset", "g/t", model.LuprosetMin, model.LuprosetMax, 5, func(in model.Inputs) float64 { return in.Luproset }},
	{"Feed carbon", "%", model.FeedCarbonMin, model.FeedCarbonMax, 0.1, func(in model.Inputs) float64 { return in.FeedCarbon }},
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Dynamic key.Binding
	Reset   key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Dynamic, k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Dynamic, k.Reset, k.Quit},
	}
}

var defaultKeys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "select")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "select")),
	Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrease")),
	Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increase")),
	Dynamic: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "toggle disturbance")),
	Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset trends")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Console is the bubbletea model for the operator dashboard. It owns the
// tick clock and drives the session itself; the HTTP daemon is not
// involved.
type Console struct {
	session *plant.Session
	keys    keyMap
	help    help.Model

	tick   uint64
	cursor int
	status string
	width  int
}

// NewConsole builds the dashboard around a plant session.
func NewConsole(session *plant.Session) Console {
	return Console{
		session: session,
		keys:    defaultKeys,
		help:    help.New(),
	}
}

func (c Console) Init() tea.Cmd {
	return tickCmd()
}

func (c Console) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		c.tick++
		c.session.Step(c.tick)
		return c, tickCmd()

	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.help.Width = msg.Width
		return c, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, c.keys.Quit):
			return c, tea.Quit
		case key.Matches(msg, c.keys.Up):
			if c.cursor > 0 {
				c.cursor--
			}
		case key.Matches(msg, c.keys.Down):
			if c.cursor < len(controls)-1 {
				c.cursor++
			}
		case key.Matches(msg, c.keys.Left):
			c.adjust(-1)
		case key.Matches(msg, c.keys.Right):
			c.adjust(+1)
		case key.Matches(msg, c.keys.Dynamic):
			c.toggleMode()
		case key.Matches(msg, c.keys.Reset):
			c.session.ResetTrends(c.tick)
			c.status = "trends reset"
		}
	}
	return c, nil
}

// adjust nudges the selected control one step in dir, clamped to its
// operating range.
func (c *Console) adjust(dir float64) {
	ctl := controls[c.cursor]
	in := c.session.Inputs()

	next := clampStep(ctl.get(in)+dir*ctl.step, ctl.min, ctl.max)

	var err error
	if c.cursor == 3 {
		err = c.session.SetFeedCarbon(c.tick, next)
	} else {
		ra, ja, lz := in.RougherAir, in.JamesonAir, in.Luproset
		switch c.cursor {
		case 0:
			ra = next
		case 1:
			ja = next
		case 2:
			lz = next
		}
		err = c.session.SetSetpoints(c.tick, ra, ja, lz)
	}
	if err != nil {
		c.status = err.Error()
		return
	}
	c.status = ""
}

func (c *Console) toggleMode() {
	next := plant.ModeAuto
	if c.session.Mode() == plant.ModeAuto {
		next = plant.ModeManual
	}
	if err := c.session.SetMode(c.tick, next); err != nil {
		c.status = err.Error()
		return
	}
	c.status = "feed disturbance " + map[plant.Mode]string{plant.ModeAuto: "on", plant.ModeManual: "off"}[next]
}

func clampStep(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
