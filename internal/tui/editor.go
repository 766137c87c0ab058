package tui

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/blackwell-systems/gradientctl/internal/clipboard"
	"github.com/blackwell-systems/gradientctl/internal/gradient"
	"github.com/blackwell-systems/gradientctl/internal/preset"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// EditorOptions configures RunEditor.
type EditorOptions struct {
	State         gradient.State
	Presets       *preset.Library
	Clipboard     clipboard.Writer
	PreviewHeight int
	Mouse         bool
	Rand          *rand.Rand
}

type pane int

const (
	paneStops pane = iota
	paneGallery
)

type dragKind int

const (
	dragNone dragKind = iota
	dragStop
	dragAngle
	dragChannel
)

// drag tracks a live slider interaction. Stop positions change while it
// lasts and the list is resorted once it ends.
type drag struct {
	kind    dragKind
	stopID  int64
	channel int
}

type editorModel struct {
	state   gradient.State
	presets *preset.Library
	clip    clipboard.Writer
	rng     *rand.Rand

	keys    editorKeys
	help    help.Model
	gallery list.Model
	focus   pane

	selected int64
	picker   *colorPicker // open color popover, nil when closed
	posInput *textinput.Model
	posStop  int64 // stop the position field edits
	drag     drag
	nudged   bool // keyboard moves waiting for a resort

	width         int
	height        int
	previewHeight int
	showHelp      bool
	activeCmd     string
	quitting      bool
}

func newEditor(opts EditorOptions) editorModel {
	state := opts.State.Clone()
	if len(state.Stops) == 0 {
		state = gradient.Default()
	}
	state.WithIDs(gradient.NewIDSource(nil))

	lib := opts.Presets
	if lib == nil {
		lib = preset.Builtin()
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.Discard{}
	}
	ph := opts.PreviewHeight
	if ph <= 0 {
		ph = 8
	}

	m := editorModel{
		state:         state,
		presets:       lib,
		clip:          clip,
		rng:           opts.Rand,
		keys:          newEditorKeys(),
		help:          help.New(),
		gallery:       newGallery(lib),
		previewHeight: ph,
	}
	m.selected = m.state.Stops[0].ID
	m.syncKeys()
	return m
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

// syncKeys disables controls that cannot act right now.
func (m *editorModel) syncKeys() {
	m.keys.Delete.SetEnabled(m.state.CanDelete())
}

func (m editorModel) selectedIndex() int {
	return m.state.Index(m.selected)
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case ClearActiveCmdMsg:
		m.activeCmd = ""
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.gallery.SetWidth(m.layout().width)
		return m, nil

	case tea.MouseMsg:
		m, cmd = m.handleMouse(msg)

	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)
	}
	m.syncKeys()
	return m, cmd
}

func (m editorModel) handleKey(msg tea.KeyMsg) (editorModel, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.posInput != nil {
		return m.updatePositionInput(msg)
	}
	if m.picker != nil {
		return m.updatePicker(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.commitNudge()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.commitNudge()
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		m.commitNudge()
		m.copyCSS()
		m.activeCmd = "y"
		return m, HighlightCmd()

	case key.Matches(msg, m.keys.Focus):
		m.commitNudge()
		if m.focus == paneStops {
			m.focus = paneGallery
		} else {
			m.focus = paneStops
		}
		return m, nil

	case key.Matches(msg, m.keys.AngleDown):
		m.commitNudge()
		m.setAngle(m.state.Angle - 1)
		return m, nil
	case key.Matches(msg, m.keys.AngleUp):
		m.commitNudge()
		m.setAngle(m.state.Angle + 1)
		return m, nil
	case key.Matches(msg, m.keys.AngleDec):
		m.commitNudge()
		m.setAngle(m.state.Angle - 15)
		return m, nil
	case key.Matches(msg, m.keys.AngleInc):
		m.commitNudge()
		m.setAngle(m.state.Angle + 15)
		return m, nil
	}

	if m.focus == paneGallery {
		return m.updateGallery(msg)
	}
	return m.updateStops(msg)
}

func (m editorModel) updateStops(msg tea.KeyMsg) (editorModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)

	case key.Matches(msg, m.keys.Left):
		m.nudge(-1)
	case key.Matches(msg, m.keys.Right):
		m.nudge(1)
	case key.Matches(msg, m.keys.LeftFast):
		m.nudge(-10)
	case key.Matches(msg, m.keys.RightFast):
		m.nudge(10)

	case key.Matches(msg, m.keys.Commit):
		m.commitNudge()

	case key.Matches(msg, m.keys.Add):
		m.commitNudge()
		m.addStop(m.midpointAfterSelected())

	case key.Matches(msg, m.keys.Delete):
		m.commitNudge()
		m.deleteSelected()

	case key.Matches(msg, m.keys.Color):
		m.commitNudge()
		m.togglePicker(m.selected)
		if m.picker != nil {
			return m, textinput.Blink
		}

	case key.Matches(msg, m.keys.Position):
		m.commitNudge()
		return m, m.openPositionInput()
	}
	return m, nil
}

func (m editorModel) updateGallery(msg tea.KeyMsg) (editorModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.gallery.CursorUp()
	case key.Matches(msg, m.keys.Down):
		m.gallery.CursorDown()
	case key.Matches(msg, m.keys.Commit):
		m.applyGalleryPreset(m.gallery.Index())
	case key.Matches(msg, m.keys.Close):
		m.focus = paneStops
	}
	return m, nil
}

func (m editorModel) updatePicker(msg tea.KeyMsg) (editorModel, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.picker = nil
		return m, nil
	}
	color, changed, cmd := m.picker.update(msg)
	if changed {
		m.state.Recolor(m.picker.stopID, color)
	}
	return m, cmd
}

// updatePositionInput applies every keystroke that yields an integer:
// reposition, then resort right away.
func (m editorModel) updatePositionInput(msg tea.KeyMsg) (editorModel, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.posInput = nil
		return m, nil
	}

	in := *m.posInput
	var cmd tea.Cmd
	in, cmd = in.Update(msg)
	m.posInput = &in

	if v, err := strconv.Atoi(strings.TrimSpace(in.Value())); err == nil {
		m.state.Reposition(m.posStop, v)
		m.state.Resort()
	}
	return m, cmd
}

func (m *editorModel) openPositionInput() tea.Cmd {
	st, ok := m.state.Stop(m.selected)
	if !ok {
		return nil
	}
	in := textinput.New()
	in.Prompt = "Position: "
	in.Placeholder = "0-100"
	in.CharLimit = 6
	in.Width = 8
	in.SetValue(strconv.Itoa(st.Position))
	in.CursorEnd()
	m.posInput = &in
	m.posStop = st.ID
	return m.posInput.Focus()
}

func (m editorModel) handleMouse(msg tea.MouseMsg) (editorModel, tea.Cmd) {
	l := m.layout()

	switch msg.Action {
	case tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft || m.drag.kind == dragNone {
			return m, nil
		}
		m.dragTo(l, msg.X)
		return m, nil

	case tea.MouseActionRelease:
		m.endDrag()
		return m, nil

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
	default:
		return m, nil
	}

	m.commitNudge()
	m.posInput = nil
	x, y := msg.X, msg.Y

	switch {
	case l.inPreview(x, y):
		m.addStop(gradient.PositionAt(l.previewOffset(x), l.width))

	case y == l.copyRow && x >= l.left && x < l.left+len(copyLabel):
		m.copyCSS()
		m.activeCmd = "y"
		return m, HighlightCmd()

	case y == l.angleRow && l.onSlider(x):
		m.drag = drag{kind: dragAngle}
		m.dragTo(l, x)

	case l.stopAt(y) >= 0:
		st := m.state.Stops[l.stopAt(y)]
		m.selected = st.ID
		m.focus = paneStops
		switch {
		case l.onSwatch(x):
			m.togglePicker(st.ID)
		case l.onSlider(x):
			m.drag = drag{kind: dragStop, stopID: st.ID}
			m.dragTo(l, x)
		case x == l.deleteCol:
			m.deleteSelected()
		}

	case m.picker != nil && y >= l.pickerTop+2 && y < l.pickerTop+pickerRows && l.onSlider(x):
		ch := y - l.pickerTop - 2
		m.picker.focus(pickerFieldR + ch)
		m.drag = drag{kind: dragChannel, channel: ch}
		m.dragTo(l, x)

	case y >= l.galleryTop && y < l.galleryTop+l.galleryRows:
		if i := galleryIndexAt(m.gallery, y-l.galleryTop); i >= 0 {
			m.gallery.Select(i)
			m.applyGalleryPreset(i)
		}
	}
	return m, nil
}

// dragTo moves whatever is being dragged to column x without resorting.
func (m *editorModel) dragTo(l layout, x int) {
	switch m.drag.kind {
	case dragStop:
		m.state.Reposition(m.drag.stopID, l.sliderPosition(x))
	case dragAngle:
		m.state.Angle = l.sliderAngle(x)
	case dragChannel:
		if m.picker != nil {
			c := m.picker.setChannel(m.drag.channel, l.sliderChannel(x))
			m.state.Recolor(m.picker.stopID, c)
		}
	}
}

func (m *editorModel) endDrag() {
	if m.drag.kind == dragStop {
		m.state.Resort()
		slog.Debug("stop dropped", "id", m.drag.stopID)
	}
	m.drag = drag{}
}

// nudge moves the selected stop like a slider drag: live, no resort.
func (m *editorModel) nudge(delta int) {
	st, ok := m.state.Stop(m.selected)
	if !ok {
		return
	}
	m.state.Reposition(st.ID, gradient.ClampPosition(st.Position+delta))
	m.nudged = true
}

// commitNudge ends a keyboard drag with a single resort.
func (m *editorModel) commitNudge() {
	if !m.nudged {
		return
	}
	m.state.Resort()
	m.nudged = false
}

func (m *editorModel) moveSelection(delta int) {
	m.commitNudge()
	i := m.selectedIndex() + delta
	if i < 0 || i >= len(m.state.Stops) {
		return
	}
	m.selected = m.state.Stops[i].ID
}

// midpointAfterSelected is halfway between the selected stop and the one
// after it (or the end of the axis).
func (m editorModel) midpointAfterSelected() int {
	i := m.selectedIndex()
	if i < 0 {
		return 50
	}
	from := gradient.ClampPosition(m.state.Stops[i].Position)
	to := 100
	if i+1 < len(m.state.Stops) {
		to = gradient.ClampPosition(m.state.Stops[i+1].Position)
	}
	return (from + to) / 2
}

func (m *editorModel) addStop(position int) {
	st := m.state.Add(position, gradient.RandomColor(m.rng))
	m.state.Resort()
	m.selected = st.ID
	slog.Debug("stop added", "id", st.ID, "position", position, "color", st.Color)
}

func (m *editorModel) deleteSelected() {
	i := m.selectedIndex()
	if !m.state.Delete(m.selected) {
		return
	}
	if m.picker != nil && m.picker.stopID == m.selected {
		m.picker = nil
	}
	i = min(i, len(m.state.Stops)-1)
	m.selected = m.state.Stops[i].ID
}

// togglePicker opens the picker for id, or closes it if it is already
// open for id. Only one picker is ever open.
func (m *editorModel) togglePicker(id int64) {
	if m.picker != nil && m.picker.stopID == id {
		m.picker = nil
		return
	}
	st, ok := m.state.Stop(id)
	if !ok {
		return
	}
	m.picker = newColorPicker(st)
}

func (m *editorModel) setAngle(a int) {
	m.state.Angle = min(max(a, 0), 360)
}

func (m *editorModel) applyGalleryPreset(i int) {
	items := m.gallery.Items()
	if i < 0 || i >= len(items) {
		return
	}
	p := items[i].(presetItem).preset
	m.state.ApplyPreset(p)
	m.picker = nil
	m.posInput = nil
	m.nudged = false
	m.drag = drag{}
	m.selected = m.state.Stops[0].ID
	slog.Debug("preset applied", "name", p.Name)
}

func (m editorModel) copyCSS() {
	clipboard.Export(m.clip, m.state.Declaration())
}

// RunEditor opens the gradient editor and returns the final gradient.
func RunEditor(opts EditorOptions) (*gradient.State, error) {
	m := newEditor(opts)

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, progOpts...)

	slog.Info("editor started", "angle", m.state.Angle, "stops", len(m.state.Stops))
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running editor: %w", err)
	}

	fm, ok := finalModel.(editorModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	state := fm.state.Clone()
	slog.Info("editor closed", "css", state.CSS())
	return &state, nil
}
