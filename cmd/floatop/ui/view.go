package ui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/AUDRM-4824/Pre-float/internal/model"
	"github.com/AUDRM-4824/Pre-float/internal/plant"
)

const (
	sliderWidth    = 24
	sparklineWidth = 30
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

func (c Console) View() string {
	ev := c.session.Current()
	targets := c.session.Targets()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Pre-float circuit — reverse flotation"))
	b.WriteString(statusStyle.Render(fmt.Sprintf("  mode: %s", c.session.Mode())))
	b.WriteString("\n\n")

	b.WriteString(panelStyle.Render(c.renderControls(ev.Inputs)))
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(renderMetrics(ev, targets)))
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(renderStreams(ev)))
	b.WriteString("\n")

	if trends := c.renderTrends(); trends != "" {
		b.WriteString(panelStyle.Render(trends))
		b.WriteString("\n")
	}
	if advice := renderGuidance(c.session.Guidance()); advice != "" {
		b.WriteString(panelStyle.Render(advice))
		b.WriteString("\n")
	}
	if c.status != "" {
		b.WriteString(statusStyle.Render(c.status))
		b.WriteString("\n")
	}
	b.WriteString(c.help.View(c.keys))
	return b.String()
}

func (c Console) renderControls(in model.Inputs) string {
	rows := make([]string, 0, len(controls))
	for i, ctl := range controls {
		label := fmt.Sprintf("%-12s", ctl.name)
		if i == c.cursor {
			label = selectedStyle.Render("▸ " + label)
		} else {
			label = labelStyle.Render("  " + label)
		}
		val := ctl.get(in)
		rows = append(rows, fmt.Sprintf("%s %s %8.1f %s",
			label, renderSlider(val, ctl.min, ctl.max, sliderWidth), val, ctl.unit))
	}
	return strings.Join(rows, "\n")
}

// renderSlider draws a fixed-width bar with the value's position filled.
func renderSlider(val, lo, hi float64, width int) string {
	frac := 0.0
	if hi > lo {
		frac = (val - lo) / (hi - lo)
	}
	filled := int(frac*float64(width) + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func renderMetrics(ev model.Evaluation, t plant.Targets) string {
	rows := []string{
		metricRow("Recovery", fmt.Sprintf("%.1f%%", ev.Recovery),
			ev.Recovery >= t.RecoveryMin && ev.Recovery <= t.RecoveryMax,
			fmt.Sprintf("target %.0f-%.0f%%", t.RecoveryMin, t.RecoveryMax)),
		metricRow("Conc carbon", fmt.Sprintf("%.1f%%", ev.ConcCarbon),
			ev.ConcCarbon >= t.ConcGradeMin && ev.ConcCarbon <= t.ConcGradeMax,
			fmt.Sprintf("target %.0f-%.0f%%", t.ConcGradeMin, t.ConcGradeMax)),
		metricRow("Tail carbon", fmt.Sprintf("%.2f%%", ev.TailCarbon),
			ev.TailCarbon >= t.TailGradeMin && ev.TailCarbon <= t.TailGradeMax,
			fmt.Sprintf("target %.1f-%.1f%%", t.TailGradeMin, t.TailGradeMax)),
		metricRow("Zn loss", fmt.Sprintf("%.2f%%", ev.ZnLoss),
			ev.ZnLoss <= t.ZnLossMax,
			fmt.Sprintf("max %.1f%%", t.ZnLossMax)),
	}
	rows = append(rows, labelStyle.Render(fmt.Sprintf("  %-12s %s",
		"MB recovery", fmt.Sprintf("%.1f%%", ev.MassBalanceRecovery))))
	return strings.Join(rows, "\n")
}

func metricRow(name, value string, inBand bool, band string) string {
	style := inBandStyle
	mark := "●"
	if !inBand {
		style = outBandStyle
		mark = "▲"
	}
	return fmt.Sprintf("%s %s %-12s %s  %s",
		style.Render(mark), "", name, style.Render(fmt.Sprintf("%8s", value)), labelStyle.Render(band))
}

func renderStreams(ev model.Evaluation) string {
	rows := []string{
		labelStyle.Render(fmt.Sprintf("%-12s %10s %10s %10s", "stream", "mass t/hr", "carbon %", "carbon t")),
		streamRow("feed", model.FeedTonnage, ev.Inputs.FeedCarbon),
		streamRow("concentrate", ev.ConcMass, ev.ConcCarbon),
		streamRow("tailings", ev.TailMass, ev.TailCarbon),
	}
	return strings.Join(rows, "\n")
}

func streamRow(name string, mass, gradePct float64) string {
	return fmt.Sprintf("%-12s %10s %9.2f%% %10s",
		name,
		humanize.CommafWithDigits(mass, 1),
		gradePct,
		humanize.CommafWithDigits(model.CarbonTonnes(mass, gradePct), 2))
}

func (c Console) renderTrends() string {
	samples := c.session.HistorySamples()
	if len(samples) < 2 {
		return ""
	}

	pick := func(f func(model.Evaluation) float64) []float64 {
		vals := make([]float64, len(samples))
		for i, s := range samples {
			vals[i] = f(s.Eval)
		}
		return vals
	}

	rows := []string{
		trendRow("Recovery", pick(func(e model.Evaluation) float64 { return e.Recovery })),
		trendRow("Conc grade", pick(func(e model.Evaluation) float64 { return e.ConcCarbon })),
		trendRow("Tail grade", pick(func(e model.Evaluation) float64 { return e.TailCarbon })),
		trendRow("Zn loss", pick(func(e model.Evaluation) float64 { return e.ZnLoss })),
	}
	return strings.Join(rows, "\n")
}

func trendRow(name string, vals []float64) string {
	return fmt.Sprintf("%-12s %s %8.2f", name, sparkline(vals, sparklineWidth), vals[len(vals)-1])
}

// sparkline renders values as block characters scaled to their own
// min/max. A flat series renders at mid height.
func sparkline(vals []float64, width int) string {
	if len(vals) == 0 {
		return strings.Repeat(" ", width)
	}
	if len(vals) > width {
		vals = vals[len(vals)-width:]
	}

	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	var b strings.Builder
	for _, v := range vals {
		idx := len(sparkRunes) / 2
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(len(sparkRunes)-1))
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

func renderGuidance(advice []plant.Advice) string {
	if len(advice) == 0 {
		return ""
	}
	var rows []string
	for _, a := range advice {
		rows = append(rows, adviceStyle.Render(a.Condition))
		for _, act := range a.Actions {
			rows = append(rows, labelStyle.Render("  · "+act))
		}
	}
	return strings.Join(rows, "\n")
}
