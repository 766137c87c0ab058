package gradient

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"go.trai.ch/zerr"
)

type sampleStop struct {
	color colorful.Color
	t     float64
}

// Sampler evaluates a linear gradient the way a browser paints it.
type Sampler struct {
	angle float64 // radians
	stops []sampleStop
}

// NewSampler prepares stops for sampling. Stops keep their given order; a
// stop placed before its predecessor is moved onto it, as CSS does.
// Positions outside [0,100] are kept and simply fall off the visible band.
func NewSampler(angle int, stops []ColorStop) (*Sampler, error) {
	if len(stops) == 0 {
		return nil, zerr.New("gradient has no stops")
	}
	s := &Sampler{
		angle: float64(angle) * math.Pi / 180,
		stops: make([]sampleStop, len(stops)),
	}
	for i, st := range stops {
		c, err := colorful.Hex(st.Color)
		if err != nil {
			return nil, zerr.With(ErrInvalidColor, "color", st.Color)
		}
		t := float64(st.Position) / 100
		if i > 0 && t < s.stops[i-1].t {
			t = s.stops[i-1].t
		}
		s.stops[i] = sampleStop{color: c, t: t}
	}
	return s, nil
}

// At returns the color at t along the gradient line, where 0 is the
// starting edge and 1 the ending edge.
func (s *Sampler) At(t float64) colorful.Color {
	first, last := s.stops[0], s.stops[len(s.stops)-1]
	if t <= first.t {
		return first.color
	}
	if t >= last.t {
		return last.color
	}
	for i := 1; i < len(s.stops); i++ {
		a, b := s.stops[i-1], s.stops[i]
		if t > b.t {
			continue
		}
		span := b.t - a.t
		if span <= 0 {
			return b.color
		}
		return a.color.BlendRgb(b.color, (t-a.t)/span).Clamped()
	}
	return last.color
}

// Point returns the color at (x, y) inside a w by h box. The gradient line
// passes through the box centre; 0deg points up and 90deg points right.
func (s *Sampler) Point(x, y, w, h float64) colorful.Color {
	sin, cos := math.Sincos(s.angle)
	length := math.Abs(w*sin) + math.Abs(h*cos)
	if length == 0 {
		return s.At(0.5)
	}
	dx, dy := x-w/2, y-h/2
	t := (dx*sin-dy*cos)/length + 0.5
	return s.At(t)
}
