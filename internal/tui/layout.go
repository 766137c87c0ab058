package tui

import (
	"math"
	"strings"

	"github.com/blackwell-systems/gradientctl/internal/gradient"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	marginLeft    = 2
	defaultWidth  = 80
	minContent    = 30
	sliderOffset  = 5 // columns before a slider: cursor, swatch, gaps
	sliderTrailer = 9 // columns after a slider: value and delete glyph
	swatchWidth   = 2
	presetStrip   = 16
	pickerRows    = 5
	maxGallery    = 8
)

// layout is the screen geometry for one frame. It is derived from the
// window size and state on every call so that resizes are picked up.
type layout struct {
	left  int
	width int

	previewTop  int
	previewRows int
	markerRow   int

	cssTop   int
	cssLines []string
	copyRow  int

	angleRow int

	stopsHeader int
	stopsTop    int
	stopRows    int

	pickerTop int // -1 when no picker is open

	galleryHeader int
	galleryTop    int
	galleryRows   int

	footerRow int

	sliderCol   int
	sliderWidth int
	deleteCol   int
}

func (m editorModel) layout() layout {
	w := m.width
	if w <= 0 {
		w = defaultWidth
	}
	l := layout{left: marginLeft, width: max(w-2*marginLeft, minContent)}

	l.previewTop = 2
	l.previewRows = m.previewHeight
	l.markerRow = l.previewTop + l.previewRows

	l.cssTop = l.markerRow + 2
	l.cssLines = strings.Split(xansi.Hardwrap(m.state.Declaration(), l.width, true), "\n")
	l.copyRow = l.cssTop + len(l.cssLines)

	l.angleRow = l.copyRow + 2

	l.stopsHeader = l.angleRow + 2
	l.stopsTop = l.stopsHeader + 1
	l.stopRows = len(m.state.Stops)
	next := l.stopsTop + l.stopRows

	l.pickerTop = -1
	if m.picker != nil {
		l.pickerTop = next + 1
		next = l.pickerTop + pickerRows
	}

	l.galleryHeader = next + 1
	l.galleryTop = l.galleryHeader + 1
	l.galleryRows = min(m.presets.Len(), maxGallery)

	l.footerRow = l.galleryTop + l.galleryRows + 1

	l.sliderCol = l.left + sliderOffset
	l.sliderWidth = max(l.width-sliderOffset-sliderTrailer, 10)
	l.deleteCol = l.sliderCol + l.sliderWidth + sliderTrailer - 1
	return l
}

// inPreview reports whether a screen cell lies on the preview box.
func (l layout) inPreview(x, y int) bool {
	return y >= l.previewTop && y < l.previewTop+l.previewRows &&
		x >= l.left && x < l.left+l.width
}

// previewOffset converts a screen column to an offset inside the preview.
func (l layout) previewOffset(x int) int {
	return x - l.left
}

// stopAt returns the index of the stop row at screen row y, or -1.
func (l layout) stopAt(y int) int {
	if y < l.stopsTop || y >= l.stopsTop+l.stopRows {
		return -1
	}
	return y - l.stopsTop
}

// onSlider reports whether column x is on a slider track.
func (l layout) onSlider(x int) bool {
	return x >= l.sliderCol && x < l.sliderCol+l.sliderWidth
}

// onSwatch reports whether column x is on a stop's color swatch.
func (l layout) onSwatch(x int) bool {
	return x >= l.left+2 && x < l.left+2+swatchWidth
}

// sliderOffsetOf clamps column x onto the slider track.
func (l layout) sliderOffsetOf(x int) int {
	return min(max(x-l.sliderCol, 0), l.sliderWidth-1)
}

// sliderPosition maps column x on a stop slider to a stop position.
func (l layout) sliderPosition(x int) int {
	return gradient.PositionAt(l.sliderOffsetOf(x), l.sliderWidth-1)
}

// sliderAngle maps column x on the angle slider to degrees.
func (l layout) sliderAngle(x int) int {
	return scaleTo(l.sliderOffsetOf(x), l.sliderWidth-1, 360)
}

// sliderChannel maps column x on a picker channel bar to 0..255.
func (l layout) sliderChannel(x int) int {
	return scaleTo(l.sliderOffsetOf(x), l.sliderWidth-1, 255)
}

// knob returns the track cell for value v of max.
func (l layout) knob(v, maxValue int) int {
	v = min(max(v, 0), maxValue)
	return scaleTo(v, maxValue, l.sliderWidth-1)
}

func scaleTo(v, from, to int) int {
	if from <= 0 {
		return 0
	}
	return int(math.Round(float64(v) * float64(to) / float64(from)))
}
