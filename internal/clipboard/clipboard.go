// Package clipboard writes exported CSS to the user's clipboard.
package clipboard

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"
)

// Modes accepted by New.
const (
	ModeAuto   = "auto"
	ModeSystem = "system"
	ModeOSC52  = "osc52"
	ModeNone   = "none"
)

// Writer puts text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// System uses the platform clipboard (pbcopy, xclip, wl-copy, win32).
type System struct{}

// WriteText implements Writer.
func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no system clipboard available")
	}
	return clipboard.WriteAll(text)
}

// OSC52 asks the terminal to set the clipboard with an escape sequence.
// It works across SSH as long as the terminal honours OSC 52.
type OSC52 struct {
	Out io.Writer
}

// WriteText implements Writer.
func (o OSC52) WriteText(text string) error {
	w := o.Out
	if w == nil {
		w = os.Stderr
	}
	termenv.NewOutput(w).Copy(text)
	return nil
}

// Auto tries the system clipboard first and falls back to OSC 52.
type Auto struct {
	Primary  Writer
	Fallback Writer
}

// WriteText implements Writer.
func (a Auto) WriteText(text string) error {
	err := a.Primary.WriteText(text)
	if err == nil {
		return nil
	}
	if a.Fallback == nil {
		return err
	}
	return a.Fallback.WriteText(text)
}

// Discard drops everything.
type Discard struct{}

// WriteText implements Writer.
func (Discard) WriteText(string) error { return nil }

// New returns the writer for a clipboard mode.
func New(mode string) (Writer, error) {
	switch mode {
	case "", ModeAuto:
		return Auto{Primary: System{}, Fallback: OSC52{}}, nil
	case ModeSystem:
		return System{}, nil
	case ModeOSC52:
		return OSC52{}, nil
	case ModeNone:
		return Discard{}, nil
	default:
		return nil, fmt.Errorf("unknown clipboard mode %q (want auto, system, osc52 or none)", mode)
	}
}

// Export writes text and ignores failures; they are only logged.
func Export(w Writer, text string) {
	if w == nil {
		return
	}
	if err := w.WriteText(text); err != nil {
		slog.Debug("clipboard write failed", "error", err)
	}
}
