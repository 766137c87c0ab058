package gradient

import (
	"strconv"
	"strings"
)

// Render builds a CSS linear-gradient value from an angle and stops.
// Stops are emitted in the order given and colors are not validated.
func Render(angle int, stops []ColorStop) string {
	var b strings.Builder
	b.WriteString("linear-gradient(")
	b.WriteString(strconv.Itoa(angle))
	b.WriteString("deg")
	for _, s := range stops {
		b.WriteString(", ")
		b.WriteString(s.Color)
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(s.Position))
		b.WriteByte('%')
	}
	b.WriteByte(')')
	return b.String()
}

// Declaration wraps Render as a CSS background declaration.
func Declaration(angle int, stops []ColorStop) string {
	return "background: " + Render(angle, stops) + ";"
}
