// Package preset holds the named gradients offered as starting points.
// A Library is built once at startup and never changes afterwards.
package preset

import (
	"strings"

	"github.com/blackwell-systems/gradientctl/internal/gradient"
	"go.trai.ch/zerr"
)

var (
	// ErrEmptyName is returned when a preset has no name.
	ErrEmptyName = zerr.New("preset name is empty")

	// ErrDuplicateName is returned when two presets share a name.
	ErrDuplicateName = zerr.New("duplicate preset name")

	// ErrTooFewStops is returned when a preset has fewer than two stops.
	ErrTooFewStops = zerr.New("preset needs at least two stops")
)

// Library is an ordered, immutable set of presets with unique names.
type Library struct {
	presets []gradient.Preset
	byName  map[string]int
}

// Builtin returns the library of curated presets.
func Builtin() *Library {
	lib, err := NewLibrary(builtin)
	if err != nil {
		panic(err)
	}
	return lib
}

// NewLibrary validates presets and builds a library from copies of them.
func NewLibrary(presets []gradient.Preset) (*Library, error) {
	lib := &Library{byName: make(map[string]int, len(presets))}
	for _, p := range presets {
		if err := lib.add(p); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

func (l *Library) add(p gradient.Preset) error {
	if err := Validate(p); err != nil {
		return err
	}
	key := strings.ToLower(p.Name)
	if _, dup := l.byName[key]; dup {
		return zerr.With(ErrDuplicateName, "name", p.Name)
	}
	p.Stops = append([]gradient.ColorStop(nil), p.Stops...)
	l.byName[key] = len(l.presets)
	l.presets = append(l.presets, p)
	return nil
}

// Extend returns a new library holding l's presets followed by extra.
func (l *Library) Extend(extra []gradient.Preset) (*Library, error) {
	return NewLibrary(append(l.All(), extra...))
}

// Validate checks a single preset.
func Validate(p gradient.Preset) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if len(p.Stops) < gradient.MinStops {
		return zerr.With(ErrTooFewStops, "name", p.Name)
	}
	for _, s := range p.Stops {
		if _, err := gradient.ParseColor(s.Color); err != nil {
			return zerr.With(err, "preset", p.Name)
		}
	}
	return nil
}

// All returns a copy of every preset in order.
func (l *Library) All() []gradient.Preset {
	out := make([]gradient.Preset, len(l.presets))
	for i, p := range l.presets {
		p.Stops = append([]gradient.ColorStop(nil), p.Stops...)
		out[i] = p
	}
	return out
}

// Len returns the number of presets.
func (l *Library) Len() int {
	return len(l.presets)
}

// ByName looks a preset up case-insensitively.
func (l *Library) ByName(name string) (gradient.Preset, bool) {
	i, ok := l.byName[strings.ToLower(name)]
	if !ok {
		return gradient.Preset{}, false
	}
	p := l.presets[i]
	p.Stops = append([]gradient.ColorStop(nil), p.Stops...)
	return p, true
}

// Names returns preset names in order.
func (l *Library) Names() []string {
	names := make([]string, len(l.presets))
	for i, p := range l.presets {
		names[i] = p.Name
	}
	return names
}
