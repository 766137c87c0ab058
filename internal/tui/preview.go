package tui

import (
	"strings"

	"github.com/blackwell-systems/gradientctl/internal/gradient"
	"github.com/charmbracelet/lipgloss"
)

// renderGradient paints a cols by rows box of the gradient using half
// blocks, so every cell carries two square-ish pixels. An invalid
// gradient (bad color) paints nothing, as a browser would.
func renderGradient(angle int, stops []gradient.ColorStop, cols, rows int) []string {
	lines := make([]string, rows)
	s, err := gradient.NewSampler(angle, stops)
	if err != nil {
		blank := StyleHelp.Render(strings.Repeat("░", cols))
		for i := range lines {
			lines[i] = blank
		}
		return lines
	}

	w, h := float64(cols), float64(rows*2)
	var b strings.Builder
	for r := 0; r < rows; r++ {
		b.Reset()
		for c := 0; c < cols; c++ {
			x := float64(c) + 0.5
			top := s.Point(x, float64(2*r)+0.5, w, h)
			bottom := s.Point(x, float64(2*r)+1.5, w, h)
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top.Hex())).
				Background(lipgloss.Color(bottom.Hex())).
				Render("▀"))
		}
		lines[r] = b.String()
	}
	return lines
}

// renderMarkers draws a ▲ under the preview at each stop's position.
func renderMarkers(stops []gradient.ColorStop, selected int64, width int) string {
	cells := make([]string, width)
	for i := range cells {
		cells[i] = " "
	}
	for _, st := range stops {
		col := scaleTo(gradient.ClampPosition(st.Position), 100, width-1)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(st.Color))
		if st.ID == selected {
			style = StyleHighlight
		}
		cells[col] = style.Render("▲")
	}
	return strings.Join(cells, "")
}

// renderSlider draws a track of width cells with the knob at cell knob.
// The part left of the knob is tinted with fill.
func renderSlider(width, knob int, fill lipgloss.TerminalColor, active bool) string {
	knobStyle := StyleNormal
	if active {
		knobStyle = StyleHighlight
	}
	filled := lipgloss.NewStyle().Foreground(fill)
	var b strings.Builder
	b.WriteString(filled.Render(strings.Repeat("━", knob)))
	b.WriteString(knobStyle.Render("●"))
	b.WriteString(StyleHelp.Render(strings.Repeat("─", max(width-knob-1, 0))))
	return b.String()
}

// renderSwatch draws a solid block of the stop color.
func renderSwatch(color string, width int) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(color)).Render(strings.Repeat(" ", width))
}
