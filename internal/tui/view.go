package tui

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/gradientctl/internal/gradient"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const copyLabel = "[ Copy ]"

func (m editorModel) View() string {
	if m.quitting {
		return ""
	}

	l := m.layout()
	lines := make([]string, l.footerRow+1)

	// ── Header ──
	lines[0] = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")).
		Render("gradientctl") + StyleHelp.Render("  linear-gradient composer")

	// ── Preview ──
	for i, row := range renderGradient(m.state.Angle, m.state.Stops, l.width, l.previewRows) {
		lines[l.previewTop+i] = row
	}
	lines[l.markerRow] = renderMarkers(m.state.Stops, m.selected, l.width)
	if l.previewRows > 0 {
		hint := StyleHelp.Render(" click to add color stop ")
		lines[l.previewTop+l.previewRows-1] = overlay(lines[l.previewTop+l.previewRows-1], hint, 1)
	}

	// ── CSS output ──
	for i, s := range l.cssLines {
		lines[l.cssTop+i] = StyleCSS.Render(s)
	}
	copyBtn := StyleButton.Render(copyLabel)
	if m.activeCmd == "y" {
		copyBtn = StyleHighlight.Render(copyLabel) + " " + StyleSuccess.Render("✓ copied")
	}
	lines[l.copyRow] = copyBtn

	// ── Angle ──
	angleKnob := l.knob(m.state.Angle, 360)
	lines[l.angleRow] = StyleHeader.Render("Angle") +
		renderSlider(l.sliderWidth, angleKnob, ColorCyan, m.drag.kind == dragAngle) +
		fmt.Sprintf(" %4d°", m.state.Angle)

	// ── Stops ──
	header := "Color stops"
	if m.focus == paneStops {
		header = "› " + header
	}
	lines[l.stopsHeader] = StyleHeader.Render(header)
	for i, st := range m.state.Stops {
		lines[l.stopsTop+i] = m.renderStopRow(l, st)
	}

	// ── Color picker ──
	if m.picker != nil {
		for i, row := range m.picker.view(l, m.state.Index(m.picker.stopID)) {
			lines[l.pickerTop+i] = row
		}
	}

	// ── Presets ──
	gh := "Presets"
	if m.focus == paneGallery {
		gh = "› " + gh
	}
	lines[l.galleryHeader] = StyleHeader.Render(gh)
	gallery := m.gallery
	gallery.SetDelegate(galleryDelegate(m.focus == paneGallery))
	gallery.SetSize(l.width, l.galleryRows)
	for i, row := range strings.Split(gallery.View(), "\n") {
		if i >= l.galleryRows {
			break
		}
		lines[l.galleryTop+i] = row
	}

	// ── Footer ──
	lines[l.footerRow] = m.footer()

	pad := strings.Repeat(" ", l.left)
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if line != "" {
			b.WriteString(pad)
		}
		b.WriteString(line)
	}
	if m.showHelp {
		b.WriteString("\n\n")
		b.WriteString(pad + strings.ReplaceAll(m.help.View(m.keys), "\n", "\n"+pad))
	}
	return b.String()
}

func (m editorModel) renderStopRow(l layout, st gradient.ColorStop) string {
	selected := st.ID == m.selected
	cursor := " "
	if selected && m.focus == paneStops {
		cursor = StyleHighlight.Render("›")
	}

	var fill lipgloss.TerminalColor = lipgloss.Color(st.Color)
	knob := l.knob(st.Position, 100)
	active := selected && (m.nudged || (m.drag.kind == dragStop && m.drag.stopID == st.ID))
	slider := renderSlider(l.sliderWidth, knob, fill, active)

	value := xansi.Truncate(fmt.Sprintf("%d%%", st.Position), 5, "…")
	valueCell := lipgloss.NewStyle().Width(5).Align(lipgloss.Right).Render(value)
	editing := m.posInput != nil && m.posStop == st.ID
	if editing {
		valueCell = StyleHighlight.Render(lipgloss.NewStyle().Width(5).Align(lipgloss.Right).Render(value))
	}

	del := " "
	if m.state.CanDelete() {
		del = StyleDanger.Render("✕")
	}

	row := cursor + " " + renderSwatch(st.Color, swatchWidth) + " " + slider + " " + valueCell + "  " + del
	if m.picker != nil && m.picker.stopID == st.ID {
		row += StyleHelp.Render("  ◂ editing")
	}
	if editing {
		row += "  " + m.posInput.View()
	}
	return row
}

func (m editorModel) footer() string {
	switch {
	case m.posInput != nil:
		return RenderFooterBar([]ShortcutEntry{
			{Label: "type a number (not clamped)"},
			{Label: "enter/esc done"},
		}, m.activeCmd)
	case m.picker != nil:
		return RenderFooterBar([]ShortcutEntry{
			{Label: "↑↓ field"},
			{Label: "←→ channel (shift ±16)"},
			{Label: "enter/esc close"},
		}, m.activeCmd)
	case m.focus == paneGallery:
		return RenderFooterBar([]ShortcutEntry{
			{Label: "↑↓ choose"},
			{Label: "enter apply"},
			{Key: "y", Label: "y copy"},
			{Label: "tab stops"},
			{Label: "q quit"},
		}, m.activeCmd)
	}
	return RenderFooterBar([]ShortcutEntry{
		{Label: "←→ move"},
		{Label: "a add"},
		{Label: "x delete", Disabled: !m.keys.Delete.Enabled()},
		{Label: "c color"},
		{Label: "p position"},
		{Label: "[ ] angle"},
		{Key: "y", Label: "y copy"},
		{Label: "tab presets"},
		{Label: "? help"},
		{Label: "q quit"},
	}, m.activeCmd)
}

// overlay places s over base starting at cell col.
func overlay(base, s string, col int) string {
	w := xansi.StringWidth(base)
	sw := xansi.StringWidth(s)
	if col+sw > w {
		return base
	}
	return xansi.Cut(base, 0, col) + s + xansi.Cut(base, col+sw, w)
}
