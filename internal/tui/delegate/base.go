package delegate

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders one list row.
type RenderFunc func(w io.Writer, m list.Model, index int, item list.Item)

// Base is a single-line list.ItemDelegate that only supplies rendering.
// Selection and application are handled by the owning model.
type Base struct {
	renderFn RenderFunc
}

// New creates a delegate with one row per item and no spacing.
func New(renderFn RenderFunc) Base {
	return Base{renderFn: renderFn}
}

// Height implements list.ItemDelegate
func (d Base) Height() int {
	return 1
}

// Spacing implements list.ItemDelegate
func (d Base) Spacing() int {
	return 0
}

// Update implements list.ItemDelegate
func (d Base) Update(tea.Msg, *list.Model) tea.Cmd {
	return nil
}

// Render implements list.ItemDelegate
func (d Base) Render(w io.Writer, m list.Model, index int, item list.Item) {
	if d.renderFn != nil {
		d.renderFn(w, m, index, item)
	}
}
