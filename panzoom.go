package panzoom

import (
	"fmt"
	"io"
	"math"
	"os"
)

// Panzoom owns the pan/zoom state of one element. All methods must be
// called from a single goroutine (the host's input/update loop).
type Panzoom struct {
	elem  Element
	geom  Geometry
	isSVG bool

	options Options
	dims    Dimensions
	// minScale and maxScale are the configured zoom bounds. options holds
	// the effective bounds after containment.
	minScale, maxScale float64

	x, y, scale float64

	pointers PointerSet
	session  *gestureSession

	handlers handlerRegistry
	store    EventStore
	pending  *paintRequest

	debug    bool
	debugOut io.Writer
}

// New attaches a Panzoom to elem. geom measures elem and its parent; nil
// uses NodeGeometry. The start scale and start translation are applied
// (forced) before New returns.
func New(elem Element, geom Geometry, opts ...Option) (*Panzoom, error) {
	if err := checkAttachable(elem); err != nil {
		return nil, fmt.Errorf("panzoom: new: %w", err)
	}
	if geom == nil {
		geom = NodeGeometry{}
	}
	o := DefaultOptions().with(opts).stored()
	p := &Panzoom{
		elem:     elem,
		geom:     geom,
		isSVG:    elem.IsSVG(),
		options:  o,
		minScale: o.MinScale,
		maxScale: o.MaxScale,
		scale:    1,
		debugOut: os.Stderr,
	}
	p.dims = captureDimensions(elem, geom)

	p.zoom(p.options.StartScale, p.resolve([]Option{Force()}), nil)
	p.applyBounds()
	// The start scale may lie outside the bounds containment just derived.
	forced := p.resolve([]Option{Force()})
	if s := constrainScale(p.scale, p.scale, &forced); s != p.scale {
		p.zoom(s, forced, nil)
	}
	p.pan(p.options.StartX, p.options.StartY, p.resolve([]Option{Force()}), nil)
	return p, nil
}

// resolve merges call-level options over a copy of the stored options.
func (p *Panzoom) resolve(opts []Option) Options {
	return p.options.with(opts)
}

// --- Accessors ---

// Element returns the panned element.
func (p *Panzoom) Element() Element { return p.elem }

// Transform returns the current committed transform.
func (p *Panzoom) Transform() Transform {
	return Transform{X: p.x, Y: p.y, Scale: p.scale}
}

// Position returns the current translation.
func (p *Panzoom) Position() (x, y float64) { return p.x, p.y }

// Scale returns the current scale.
func (p *Panzoom) Scale() float64 { return p.scale }

// IsSVG reports whether the element is an SVG graphics element.
func (p *Panzoom) IsSVG() bool { return p.isSVG }

// Options returns a copy of the stored options, including the effective
// bounds derived from containment.
func (p *Panzoom) Options() Options {
	o := p.options
	o.Exclude = append([]Element(nil), o.Exclude...)
	return o
}

// Dimensions returns the most recent box-model snapshot.
func (p *Panzoom) Dimensions() Dimensions { return p.dims }

// SetOptions merges opts into the stored options. Call-only fields (Force,
// Focal, Point) are never stored. Changing MinScale, MaxScale, or Contain
// recomputes the effective bounds from the configured ones, so switching
// containment off restores them.
func (p *Panzoom) SetOptions(opts ...Option) {
	prev := p.options
	base := p.options
	base.MinScale, base.MaxScale = p.minScale, p.maxScale
	next := base.with(opts).stored()

	changed := next.MinScale != p.minScale || next.MaxScale != p.maxScale || next.Contain != prev.Contain
	p.minScale, p.maxScale = next.MinScale, next.MaxScale
	p.options = next
	if !changed {
		p.options.MinScale, p.options.MaxScale = prev.MinScale, prev.MaxScale
		return
	}
	p.refreshBounds()
}

// Resize re-measures the element and its parent and recomputes the
// containment bound. Call it after the host layout changes.
func (p *Panzoom) Resize() {
	p.refreshBounds()
}

func (p *Panzoom) refreshBounds() {
	p.dims = captureDimensions(p.elem, p.geom)
	p.applyBounds()
	p.debugf("bounds contain=%s min=%.4f max=%.4f", p.options.Contain, p.options.MinScale, p.options.MaxScale)
}

// applyBounds resets the effective bounds to the configured ones and lets
// containment override them.
func (p *Panzoom) applyBounds() {
	p.options.MinScale, p.options.MaxScale = p.minScale, p.maxScale
	setMinMax(&p.options, &p.dims)
}

// --- Operations ---

// Pan moves the element to (x, y), or by (x, y) with Relative. The result is
// constrained at the current scale and committed only if it differs from
// the current translation. Returns the resulting transform either way.
func (p *Panzoom) Pan(x, y float64, opts ...Option) Transform {
	return p.pan(x, y, p.resolve(opts), nil)
}

func (p *Panzoom) pan(toX, toY float64, o Options, original any) Transform {
	x, y := constrainXY(p.Transform(), toX, toY, p.scale, &o, &p.dims)
	if x != p.x || y != p.y {
		p.x, p.y = x, y
		p.commit(EventPan, &o, original)
	}
	return p.Transform()
}

// Zoom sets the scale. With a Point option the translation jumps to that
// point; with a Focal option the focal point stays visually fixed; otherwise
// the translation is kept. Reports false, changing nothing, when zoom is
// disabled and not forced.
func (p *Panzoom) Zoom(scale float64, opts ...Option) (Transform, bool) {
	return p.zoom(scale, p.resolve(opts), nil)
}

func (p *Panzoom) zoom(toScale float64, o Options, original any) (Transform, bool) {
	if !o.Force && o.DisableZoom {
		return p.Transform(), false
	}
	toScale = constrainScale(p.scale, toScale, &o)

	toX, toY := p.x, p.y
	switch {
	case o.Point != nil:
		toX, toY = o.Point.X, o.Point.Y
	case o.Focal != nil:
		f := o.Focal
		toX = f.X/toScale - f.X/p.scale + p.x
		toY = f.Y/toScale - f.Y/p.scale + p.y
	}

	po := o
	po.Relative = false
	po.Force = true
	x, y := constrainXY(p.Transform(), toX, toY, toScale, &po, &p.dims)

	p.x, p.y, p.scale = x, y, toScale
	p.commit(EventZoom, &o, original)
	return p.Transform(), true
}

// ZoomIn multiplies the scale by e^Step. Animated unless overridden.
func (p *Panzoom) ZoomIn(opts ...Option) (Transform, bool) {
	return p.zoomInOut(true, opts)
}

// ZoomOut divides the scale by e^Step. Animated unless overridden.
func (p *Panzoom) ZoomOut(opts ...Option) (Transform, bool) {
	return p.zoomInOut(false, opts)
}

func (p *Panzoom) zoomInOut(in bool, opts []Option) (Transform, bool) {
	o := p.options
	o.Animate = true
	o = o.with(opts)
	dir := -1.0
	if in {
		dir = 1
	}
	return p.zoom(p.scale*math.Exp(dir*o.Step), o, nil)
}

// ZoomToPoint zooms to scale keeping the client-space point visually fixed.
func (p *Panzoom) ZoomToPoint(scale float64, client Vec2, opts ...Option) (Transform, bool) {
	return p.zoomToPoint(scale, client, p.resolve(opts), nil)
}

func (p *Panzoom) zoomToPoint(toScale float64, client Vec2, o Options, original any) (Transform, bool) {
	p.dims = captureDimensions(p.elem, p.geom)
	f := p.focalFromClient(client)
	o.Animate = false
	o.Focal = &f
	o.Point = nil
	return p.zoom(toScale, o, original)
}

// focalFromClient converts a client-space point into focal coordinates:
// relative to the element's transform origin, in parent pixels.
func (p *Panzoom) focalFromClient(client Vec2) Vec2 {
	d := &p.dims
	f := Vec2{
		X: client.X - d.Parent.Left - d.Parent.Padding.Left - d.Parent.Border.Left - d.Elem.Margin.Left,
		Y: client.Y - d.Parent.Top - d.Parent.Padding.Top - d.Parent.Border.Top - d.Elem.Margin.Top,
	}
	if !p.isSVG {
		f.X -= d.Elem.Width / 2
		f.Y -= d.Elem.Height / 2
	}
	return f
}

// ZoomWithWheel zooms one wheel notch toward or away from the wheel
// position. DeltaX stands in when DeltaY is zero (shift-wheel on some
// platforms).
func (p *Panzoom) ZoomWithWheel(ev WheelEvent, opts ...Option) (Transform, bool) {
	o := p.resolve(opts)
	o.Animate = false
	delta := ev.DeltaY
	if delta == 0 && ev.DeltaX != 0 {
		delta = ev.DeltaX
	}
	wheel := -1.0
	if delta < 0 {
		wheel = 1
	}
	toScale := constrainScale(p.scale, p.scale*math.Exp(wheel*o.Step/3), &o)
	return p.zoomToPoint(toScale, Vec2{X: ev.ClientX, Y: ev.ClientY}, o, ev)
}

// Reset returns to the start scale and translation, ignoring the disable
// flags. Animated unless overridden.
func (p *Panzoom) Reset(opts ...Option) Transform {
	o := p.options
	o.Animate = true
	o.Force = true
	o = o.with(opts)
	o.Relative = false

	p.scale = constrainScale(p.scale, o.StartScale, &o)
	p.x, p.y = constrainXY(p.Transform(), o.StartX, o.StartY, p.scale, &o, &p.dims)
	p.commit(EventReset, &o, nil)
	return p.Transform()
}

// commit schedules the paint and notifies observers: the operation event
// first, then EventChange.
func (p *Panzoom) commit(t EventType, o *Options, original any) {
	d := p.detail(original)
	p.debugf("%s x=%.3f y=%.3f scale=%.4f", t, d.X, d.Y, d.Scale)
	p.schedule(d, o)
	p.trigger(t, d, o)
	p.trigger(EventChange, d, o)
}

func (p *Panzoom) detail(original any) Detail {
	return Detail{Transform: p.Transform(), IsSVG: p.isSVG, Original: original}
}
