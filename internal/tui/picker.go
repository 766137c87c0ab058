package tui

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/gradientctl/internal/gradient"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	pickerFieldHex = iota
	pickerFieldR
	pickerFieldG
	pickerFieldB
	pickerFieldCount
)

// colorPicker is the popover editing one stop's color. Every change is
// reported back as a normalized hex string so the editor can recolor live.
type colorPicker struct {
	stopID  int64
	hex     textinput.Model
	rgb     [3]int
	focused int
}

func newColorPicker(stop gradient.ColorStop) *colorPicker {
	p := &colorPicker{stopID: stop.ID}

	p.hex = textinput.New()
	p.hex.Prompt = "│ "
	p.hex.Placeholder = "#rrggbb"
	p.hex.CharLimit = 7
	p.hex.Width = 9
	p.hex.SetValue(stop.Color)
	p.hex.Focus()
	p.setColor(stop.Color)
	return p
}

func (p *colorPicker) setColor(hex string) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return
	}
	r, g, b := c.RGB255()
	p.rgb = [3]int{int(r), int(g), int(b)}
}

func (p *colorPicker) color() string {
	return fmt.Sprintf("#%02x%02x%02x", p.rgb[0], p.rgb[1], p.rgb[2])
}

func (p *colorPicker) focus(field int) {
	p.focused = (field + pickerFieldCount) % pickerFieldCount
	if p.focused == pickerFieldHex {
		p.hex.Focus()
	} else {
		p.hex.Blur()
	}
}

// setChannel sets one of r, g, b (0..2) and returns the new color.
func (p *colorPicker) setChannel(ch, v int) string {
	p.rgb[ch] = min(max(v, 0), 255)
	p.hex.SetValue(p.color())
	return p.color()
}

// update handles a key while the picker is open. It returns the new color
// when the key changed it.
func (p *colorPicker) update(msg tea.KeyMsg) (string, bool, tea.Cmd) {
	switch msg.String() {
	case "up", "shift+tab":
		p.focus(p.focused - 1)
		return "", false, nil
	case "down", "tab":
		p.focus(p.focused + 1)
		return "", false, nil
	}

	if p.focused == pickerFieldHex {
		before := p.hex.Value()
		var cmd tea.Cmd
		p.hex, cmd = p.hex.Update(msg)
		v := p.hex.Value()
		if v == before {
			return "", false, cmd
		}
		norm, err := gradient.ParseColor(v)
		if err != nil || !strings.HasPrefix(strings.TrimSpace(v), "#") {
			return "", false, cmd
		}
		p.setColor(norm)
		return norm, true, cmd
	}

	ch := p.focused - pickerFieldR
	step := 0
	switch msg.String() {
	case "left", "h":
		step = -1
	case "right", "l":
		step = 1
	case "shift+left", "H":
		step = -16
	case "shift+right", "L":
		step = 16
	}
	if step == 0 {
		return "", false, nil
	}
	return p.setChannel(ch, p.rgb[ch]+step), true, nil
}

// view renders the picker rows using the editor geometry.
func (p *colorPicker) view(l layout, index int) []string {
	rows := make([]string, pickerRows)
	swatch := lipgloss.NewStyle().Background(lipgloss.Color(p.color())).Render(strings.Repeat(" ", swatchWidth*2))
	rows[0] = StyleHeader.Render(fmt.Sprintf("Stop %d color ", index+1)) + swatch + " " + StyleHelp.Render("esc to close")

	label := func(field int, s string) string {
		if field == p.focused {
			return StyleHighlight.Render(fmt.Sprintf("› %-3s", s))
		}
		return StyleHelp.Render(fmt.Sprintf("  %-3s", s))
	}
	rows[1] = label(pickerFieldHex, "Hex") + p.hex.View()

	names := [3]string{"R", "G", "B"}
	for ch := 0; ch < 3; ch++ {
		rows[2+ch] = label(pickerFieldR+ch, names[ch]) + p.channelBar(l, ch) + fmt.Sprintf(" %4d", p.rgb[ch])
	}
	return rows
}

// channelBar draws the track for one channel, tinted from 0 to 255 with
// the other channels held.
func (p *colorPicker) channelBar(l layout, ch int) string {
	var b strings.Builder
	knob := l.knob(p.rgb[ch], 255)
	for i := 0; i < l.sliderWidth; i++ {
		rgb := p.rgb
		rgb[ch] = scaleTo(i, l.sliderWidth-1, 255)
		c := colorful.Color{R: float64(rgb[0]) / 255, G: float64(rgb[1]) / 255, B: float64(rgb[2]) / 255}
		glyph := "▄"
		if i == knob {
			glyph = "█"
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(glyph))
	}
	return b.String()
}
