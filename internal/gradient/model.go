package gradient

import "sort"

// MinStops is the smallest number of stops a gradient may hold.
const MinStops = 2

// ColorStop is one anchor point along the gradient axis.
type ColorStop struct {
	ID       int64  `yaml:"-"`
	Color    string `yaml:"color"`
	Position int    `yaml:"position"` // percent along the axis
}

// State is the gradient being edited.
type State struct {
	Angle int
	Stops []ColorStop

	ids *IDSource
}

// Preset is a named, fixed angle and stop list offered as a starting point.
type Preset struct {
	Name  string      `yaml:"name"`
	Angle int         `yaml:"angle"`
	Stops []ColorStop `yaml:"stops"`
}

// Default returns the two-stop white to black gradient at 90deg.
func Default() State {
	return State{
		Angle: 90,
		Stops: []ColorStop{
			{ID: 1, Color: "#ffffff", Position: 0},
			{ID: 2, Color: "#000000", Position: 100},
		},
	}
}

// WithIDs makes s draw new stop ids from src.
func (s *State) WithIDs(src *IDSource) *State {
	s.ids = src
	return s
}

func (s *State) nextID() int64 {
	if s.ids == nil {
		s.ids = NewIDSource(nil)
	}
	id := s.ids.Next()
	// Preset and default stops use small literal ids.
	for s.Index(id) >= 0 {
		id = s.ids.Next()
	}
	return id
}

// Add appends a new stop and returns it. The list is not resorted.
func (s *State) Add(position int, color string) ColorStop {
	stop := ColorStop{ID: s.nextID(), Color: color, Position: position}
	s.Stops = append(s.Stops, stop)
	return stop
}

// Recolor sets the color of the stop with the given id.
// Unknown ids are ignored.
func (s *State) Recolor(id int64, color string) bool {
	i := s.Index(id)
	if i < 0 {
		return false
	}
	s.Stops[i].Color = color
	return true
}

// Reposition sets the position of the stop with the given id as-is.
// Neither clamping nor resorting happens here.
func (s *State) Reposition(id int64, position int) bool {
	i := s.Index(id)
	if i < 0 {
		return false
	}
	s.Stops[i].Position = position
	return true
}

// Resort stable-sorts the stops ascending by position.
func (s *State) Resort() {
	sort.SliceStable(s.Stops, func(i, j int) bool {
		return s.Stops[i].Position < s.Stops[j].Position
	})
}

// CanDelete reports whether a stop may be removed.
func (s *State) CanDelete() bool {
	return len(s.Stops) > MinStops
}

// Delete removes the stop with the given id. It refuses to go below
// MinStops and returns false in that case or when the id is unknown.
func (s *State) Delete(id int64) bool {
	if !s.CanDelete() {
		return false
	}
	i := s.Index(id)
	if i < 0 {
		return false
	}
	s.Stops = append(s.Stops[:i], s.Stops[i+1:]...)
	return true
}

// ApplyPreset replaces the angle and stops with the preset's.
func (s *State) ApplyPreset(p Preset) {
	s.Angle = p.Angle
	s.Stops = append([]ColorStop(nil), p.Stops...)
}

// Index returns the slice index of the stop with the given id, or -1.
func (s *State) Index(id int64) int {
	for i := range s.Stops {
		if s.Stops[i].ID == id {
			return i
		}
	}
	return -1
}

// Stop returns the stop with the given id.
func (s *State) Stop(id int64) (ColorStop, bool) {
	i := s.Index(id)
	if i < 0 {
		return ColorStop{}, false
	}
	return s.Stops[i], true
}

// Sorted reports whether the stops are in ascending position order.
func (s *State) Sorted() bool {
	return sort.SliceIsSorted(s.Stops, func(i, j int) bool {
		return s.Stops[i].Position < s.Stops[j].Position
	})
}

// Clone returns a deep copy sharing the id source.
func (s State) Clone() State {
	s.Stops = append([]ColorStop(nil), s.Stops...)
	return s
}

// CSS renders the state as a linear-gradient value.
func (s State) CSS() string {
	return Render(s.Angle, s.Stops)
}

// Declaration renders the state as a CSS background declaration.
func (s State) Declaration() string {
	return Declaration(s.Angle, s.Stops)
}
