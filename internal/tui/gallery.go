package tui

import (
	"fmt"
	"io"

	"github.com/blackwell-systems/gradientctl/internal/gradient"
	"github.com/blackwell-systems/gradientctl/internal/preset"
	"github.com/blackwell-systems/gradientctl/internal/tui/delegate"
	"github.com/charmbracelet/bubbles/list"
)

// presetItem is one row of the preset gallery.
type presetItem struct {
	preset gradient.Preset
}

// FilterValue implements list.Item
func (p presetItem) FilterValue() string {
	return p.preset.Name
}

// galleryRenderer draws gallery rows; the cursor only shows while the
// gallery has focus.
type galleryRenderer struct {
	focused bool
}

func (g galleryRenderer) render(w io.Writer, m list.Model, index int, item list.Item) {
	pi, ok := item.(presetItem)
	if !ok {
		return
	}
	strip := renderGradient(pi.preset.Angle, pi.preset.Stops, presetStrip, 1)[0]
	label := fmt.Sprintf("%-12s %s", pi.preset.Name, StyleHelp.Render(fmt.Sprintf("%d°", pi.preset.Angle)))

	if index == m.Index() && g.focused {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› ")+strip+"  "+StyleHighlight.Render(label))
		return
	}
	_, _ = fmt.Fprint(w, "  "+strip+"  "+StyleNormal.Render(label))
}

func newGallery(lib *preset.Library) list.Model {
	all := lib.All()
	items := make([]list.Item, len(all))
	for i, p := range all {
		items[i] = presetItem{preset: p}
	}

	d := galleryDelegate(false)
	l := list.New(items, d, defaultWidth, min(len(items), maxGallery))
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	return l
}

func galleryDelegate(focused bool) delegate.Base {
	return delegate.New(galleryRenderer{focused: focused}.render)
}

// galleryIndexAt maps a row inside the gallery to an item index, or -1.
func galleryIndexAt(l list.Model, row int) int {
	if row < 0 || row >= l.Paginator.PerPage {
		return -1
	}
	i := l.Paginator.Page*l.Paginator.PerPage + row
	if i >= len(l.Items()) {
		return -1
	}
	return i
}
