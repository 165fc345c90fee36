package panzoom

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Surface is a Painter that keeps the transform actually on screen for one
// element. Committed transforms are applied immediately, or tweened when the
// commit asked for animation. Call Update once per frame to advance tweens.
type Surface struct {
	// Layout is the element's untransformed box in client space.
	Layout Rect
	// SVG selects the top-left transform origin instead of the center.
	SVG bool

	painted Transform
	target  Transform
	tween   *transformTween

	paints int
}

// NewSurface creates a Surface for an element laid out at layout.
func NewSurface(layout Rect, svg bool) *Surface {
	return &Surface{
		Layout:  layout,
		SVG:     svg,
		painted: Transform{Scale: 1},
		target:  Transform{Scale: 1},
	}
}

// SetTransform implements Painter.
func (s *Surface) SetTransform(_ Element, d Detail, o Options) {
	s.paints++
	s.target = d.Transform
	if o.Animate && o.Duration > 0 {
		s.tween = newTransformTween(s.painted, d.Transform, o.Duration, o.Easing)
		return
	}
	s.tween = nil
	s.painted = d.Transform
}

// Update advances an in-flight animation by dt seconds.
func (s *Surface) Update(dt float32) {
	if s.tween == nil {
		return
	}
	v, done := s.tween.Update(dt)
	s.painted = v
	if done {
		s.painted = s.target
		s.tween = nil
	}
}

// Animating reports whether a tween is in flight.
func (s *Surface) Animating() bool { return s.tween != nil }

// Painted returns the transform currently on screen.
func (s *Surface) Painted() Transform { return s.painted }

// Target returns the last transform handed to the surface.
func (s *Surface) Target() Transform { return s.target }

// Paints returns how many transforms the surface has received.
func (s *Surface) Paints() int { return s.paints }

// Matrix returns the local-to-client affine matrix of the painted transform.
func (s *Surface) Matrix() [6]float64 {
	layout := Vec2{X: s.Layout.X, Y: s.Layout.Y}
	return s.painted.Matrix(layout, transformOrigin(s.SVG, s.Layout.Width, s.Layout.Height))
}

// GeoM returns Matrix as an ebiten.GeoM for drawing the element's image.
func (s *Surface) GeoM() ebiten.GeoM {
	m := s.Matrix()
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// ClientToLocal converts a client-space point to element-local coordinates.
func (s *Surface) ClientToLocal(cx, cy float64) (lx, ly float64) {
	return transformPoint(invertAffine(s.Matrix()), cx, cy)
}

// LocalToClient converts an element-local point to client space.
func (s *Surface) LocalToClient(lx, ly float64) (cx, cy float64) {
	return transformPoint(s.Matrix(), lx, ly)
}

// VisibleBounds returns the client-space rectangle covered by the element
// under the painted transform.
func (s *Surface) VisibleBounds() Rect {
	x0, y0 := s.LocalToClient(0, 0)
	x1, y1 := s.LocalToClient(s.Layout.Width, s.Layout.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
