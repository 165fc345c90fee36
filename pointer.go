package panzoom

// Pointer is one active contact: a mouse button, a touch, or a pen.
type Pointer struct {
	ID               int
	ClientX, ClientY float64
}

// Position returns the pointer's client-space position.
func (p Pointer) Position() Vec2 {
	return Vec2{X: p.ClientX, Y: p.ClientY}
}

// PointerEvent is a normalized pointer down, move, or up event.
//
// When Touches is non-nil the event is a multi-touch frame: a snapshot of
// every contact currently on the surface. Frames replace the tracked set
// instead of updating it, and their contacts get synthetic ids 0..k-1.
type PointerEvent struct {
	ID               int
	ClientX, ClientY float64
	// Target is the element the event was dispatched to. Used for the
	// exclusion check on down events; may be nil.
	Target  Element
	Touches []Pointer
}

// isFrame reports whether the event is a multi-touch frame.
func (e PointerEvent) isFrame() bool {
	return e.Touches != nil
}

// WheelEvent is a normalized wheel event. Deltas follow the DOM convention:
// negative DeltaY scrolls up (zooms in).
type WheelEvent struct {
	DeltaX, DeltaY   float64
	ClientX, ClientY float64
}

// PointerSet tracks the contacts active during a gesture. Entries are unique
// by id and keep the order in which each id first appeared.
type PointerSet struct {
	pointers []Pointer
}

// Len returns the number of tracked pointers.
func (s *PointerSet) Len() int {
	return len(s.pointers)
}

// Pointers returns the tracked pointers in insertion order. The returned
// slice MUST NOT be mutated.
func (s *PointerSet) Pointers() []Pointer {
	return s.pointers
}

// Clear drops every tracked pointer.
func (s *PointerSet) Clear() {
	s.pointers = s.pointers[:0]
}

// Add records the event's contact. An existing entry with the same id is
// updated in place. A multi-touch frame first clears the set, then adds each
// contact with a synthetic sequential id.
func (s *PointerSet) Add(ev PointerEvent) {
	if ev.isFrame() {
		s.Clear()
		for i, t := range ev.Touches {
			s.put(Pointer{ID: i, ClientX: t.ClientX, ClientY: t.ClientY})
		}
		return
	}
	s.put(Pointer{ID: ev.ID, ClientX: ev.ClientX, ClientY: ev.ClientY})
}

func (s *PointerSet) put(p Pointer) {
	if i := s.index(p.ID); i >= 0 {
		s.pointers[i] = p
		return
	}
	s.pointers = append(s.pointers, p)
}

// Remove drops the event's contact. A multi-touch frame ends every contact
// at once and clears the set.
func (s *PointerSet) Remove(ev PointerEvent) {
	if ev.isFrame() {
		s.Clear()
		return
	}
	i := s.index(ev.ID)
	if i < 0 {
		return
	}
	copy(s.pointers[i:], s.pointers[i+1:])
	s.pointers[len(s.pointers)-1] = Pointer{}
	s.pointers = s.pointers[:len(s.pointers)-1]
}

func (s *PointerSet) index(id int) int {
	for i := range s.pointers {
		if s.pointers[i].ID == id {
			return i
		}
	}
	return -1
}

// Centroid returns the middle of the tracked positions. With more than two
// pointers it folds pairwise midpoints in insertion order, so the result
// weights later pointers more heavily than a true average would.
func (s *PointerSet) Centroid() Vec2 {
	if len(s.pointers) == 0 {
		return Vec2{}
	}
	m := s.pointers[0].Position()
	for _, p := range s.pointers[1:] {
		m = midpoint(m, p.Position())
	}
	return m
}

// Distance returns the distance between the first two tracked pointers,
// or 0 when fewer than two are tracked.
func (s *PointerSet) Distance() float64 {
	if len(s.pointers) < 2 {
		return 0
	}
	return distance(s.pointers[0].Position(), s.pointers[1].Position())
}
