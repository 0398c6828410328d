package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/staticsim/internal/equilibrium"
)

// styles is the set of lipgloss styles derived from one theme.
type styles struct {
	title    lipgloss.Style
	subtle   lipgloss.Style
	cursor   lipgloss.Style
	selected lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	edit     lipgloss.Style
	key      lipgloss.Style
	hint     lipgloss.Style
	force    lipgloss.Style
	success  lipgloss.Style
	warning  lipgloss.Style
	err      lipgloss.Style
	panel    lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:    lipgloss.NewStyle().Foreground(t.Heading).Bold(true),
		subtle:   lipgloss.NewStyle().Foreground(t.Muted),
		cursor:   lipgloss.NewStyle().Foreground(t.Heading).Bold(true),
		selected: lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		label:    lipgloss.NewStyle().Foreground(t.Muted).Width(16),
		value:    lipgloss.NewStyle().Foreground(t.Text),
		edit:     lipgloss.NewStyle().Foreground(t.Input).Bold(true),
		key:      lipgloss.NewStyle().Foreground(t.Heading).Bold(true),
		hint:     lipgloss.NewStyle().Foreground(t.Muted),
		force:    lipgloss.NewStyle().Foreground(t.Force),
		success:  lipgloss.NewStyle().Foreground(t.Success).Bold(true),
		warning:  lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		err:      lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
	}
}

// outcome picks the message style for an evaluation outcome.
func (s styles) outcome(o equilibrium.Outcome) lipgloss.Style {
	switch o {
	case equilibrium.Success, equilibrium.Settled:
		return s.success
	case equilibrium.RetryAvailable, equilibrium.Mismatch:
		return s.warning
	default:
		return s.err
	}
}

// keyHints renders "key action" pairs on one line.
func (s styles) keyHints(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString(s.key.Render(pairs[i]))
		b.WriteString(s.hint.Render(" " + pairs[i+1] + "  "))
	}
	return b.String()
}

// separator renders a decorative rule.
func (s styles) separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.subtle.Render(left + " ◆ " + right)
}

// AttemptsBar renders remaining attempts out of total as filled blocks.
func AttemptsBar(remaining, total int) string {
	if remaining < 0 {
		remaining = 0
	}
	if remaining > total {
		remaining = total
	}
	return strings.Repeat("█", remaining) + strings.Repeat("░", total-remaining)
}

// SliderBar renders v within [lo, hi] as a fixed-width bar.
func SliderBar(v, lo, hi float64, width int) string {
	ratio := 0.0
	if hi > lo && equilibrium.Finite(v) {
		ratio = (v - lo) / (hi - lo)
	}
	ratio = equilibrium.Clamp(ratio, 0, 1)
	filled := int(ratio * float64(width))
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}
