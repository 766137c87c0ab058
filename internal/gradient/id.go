package gradient

import "time"

// IDSource hands out stop ids based on the wall clock in milliseconds.
// Ids are strictly increasing even when several are taken within the
// same millisecond.
type IDSource struct {
	now  func() time.Time
	last int64
}

// NewIDSource returns a source reading time from now. A nil now uses
// time.Now.
func NewIDSource(now func() time.Time) *IDSource {
	if now == nil {
		now = time.Now
	}
	return &IDSource{now: now}
}

// Next returns a fresh id.
func (s *IDSource) Next() int64 {
	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
