package util

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
)

// IsTTY reports whether stdout is a character device. The css --show
// path and the editor launch check both rely on it.
func IsTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// InitColor turns styling off for both the fatih/color status lines and
// the lipgloss swatches when --no-color is given or stdout is not a
// terminal. It never turns color back on, so NO_COLOR handling in
// fatih/color still applies.
func InitColor(noColor bool) {
	if !noColor && IsTTY() {
		return
	}
	color.NoColor = true
	lipgloss.SetColorProfile(termenv.Ascii)
}
