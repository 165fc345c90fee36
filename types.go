package panzoom

import "math"

// Vec2 is a 2D vector used for client-space points, focal points, and
// offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Box holds the four edge widths of a CSS-style margin, border, or padding box.
type Box struct {
	Left, Right, Top, Bottom float64
}

// Uniform returns a Box with the same width on every edge.
func Uniform(v float64) Box {
	return Box{Left: v, Right: v, Top: v, Bottom: v}
}

// Horizontal returns Left + Right.
func (b Box) Horizontal() float64 { return b.Left + b.Right }

// Vertical returns Top + Bottom.
func (b Box) Vertical() float64 { return b.Top + b.Bottom }

// Transform is the authoritative pan/zoom state: a translation in unscaled
// element units and a uniform scale. The rendered form is
// translate(Scale*X, Scale*Y) scale(Scale) about the element's origin.
type Transform struct {
	X, Y  float64
	Scale float64
}

// Detail is the value handed to painters and observers whenever the
// transform changes or a gesture starts or ends.
type Detail struct {
	Transform
	// IsSVG is true when the target is an SVG graphics element, whose
	// transform origin is its top-left corner instead of its center.
	IsSVG bool
	// Original is the input event that triggered the change, if any
	// (PointerEvent or WheelEvent).
	Original any
}

// Contain selects the containment clamp mode.
type Contain uint8

const (
	ContainNone    Contain = iota // no containment
	ContainInside                 // the scaled element stays inside the parent's interior
	ContainOutside                // the scaled element always covers the parent's interior
)

// String returns the option name of the mode ("", "inside", "outside").
func (c Contain) String() string {
	switch c {
	case ContainInside:
		return "inside"
	case ContainOutside:
		return "outside"
	default:
		return ""
	}
}

// EventType identifies a kind of panzoom notification.
type EventType uint8

const (
	EventStart  EventType = iota // fires when the first contact of a gesture goes down
	EventChange                  // fires after every committed pan, zoom, or reset
	EventPan                     // fires when a pan changes the translation
	EventZoom                    // fires when a zoom is committed
	EventReset                   // fires when Reset is committed
	EventEnd                     // fires when the last contact of a gesture lifts
	eventTypeCount
)

var eventTypeNames = [eventTypeCount]string{
	EventStart:  "start",
	EventChange: "change",
	EventPan:    "pan",
	EventZoom:   "zoom",
	EventReset:  "reset",
	EventEnd:    "end",
}

// String returns the short lowercase name of the event type.
func (t EventType) String() string {
	if t < eventTypeCount {
		return eventTypeNames[t]
	}
	return "unknown"
}

// NodeType distinguishes documents, elements, and non-element nodes.
type NodeType uint8

const (
	NodeTypeElement  NodeType = iota + 1 // element that can be panned and zoomed
	NodeTypeText                         // text content; never attachable
	NodeTypeDocument                     // root of a connected tree
)

// midpoint returns the point halfway between a and b, computed as
// (b - a)/2 + a.
func midpoint(a, b Vec2) Vec2 {
	return Vec2{
		X: (b.X-a.X)/2 + a.X,
		Y: (b.Y-a.Y)/2 + a.Y,
	}
}

// distance returns the Euclidean distance between a and b.
func distance(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}
