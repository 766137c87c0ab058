package gradient

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"go.trai.ch/zerr"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned when a color string cannot be understood.
var ErrInvalidColor = zerr.New("invalid color")

// cssOnlyNames are CSS color names missing from the SVG 1.1 table in
// colornames.
var cssOnlyNames = map[string]string{
	"rebeccapurple": "#663399",
}

// ParseColor normalizes a hex color (#rgb or #rrggbb) or a CSS color name
// to lowercase #rrggbb.
func ParseColor(s string) (string, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return "", zerr.With(ErrInvalidColor, "color", s)
	}

	if !strings.HasPrefix(in, "#") {
		if hex, ok := cssOnlyNames[in]; ok {
			return hex, nil
		}
		c, ok := colornames.Map[in]
		if !ok {
			return "", zerr.With(ErrInvalidColor, "color", s)
		}
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
	}

	if len(in) == 4 {
		in = "#" + strings.Repeat(in[1:2], 2) + strings.Repeat(in[2:3], 2) + strings.Repeat(in[3:4], 2)
	}
	if len(in) != 7 || strings.Trim(in[1:], "0123456789abcdef") != "" {
		return "", zerr.With(ErrInvalidColor, "color", s)
	}
	c, err := colorful.Hex(in)
	if err != nil {
		return "", zerr.With(ErrInvalidColor, "color", s)
	}
	return c.Hex(), nil
}

// RandomColor returns a pseudo-random #rrggbb color. A nil r uses the
// package-level generator.
func RandomColor(r *rand.Rand) string {
	var n uint32
	if r == nil {
		n = rand.Uint32N(1 << 24)
	} else {
		n = r.Uint32N(1 << 24)
	}
	return fmt.Sprintf("#%06x", n)
}
