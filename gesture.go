package panzoom

// gestureSession is the state of one gesture, from the first contact down
// to the last contact up. A nil session means Idle.
type gestureSession struct {
	origX, origY  float64
	startCentroid Vec2
	startScale    float64
	startDistance float64
}

// Panning reports whether a gesture is in progress.
func (p *Panzoom) Panning() bool {
	return p.session != nil
}

// baseline records the gesture origin from the current transform and the
// tracked pointers.
func (p *Panzoom) baseline() {
	p.session = &gestureSession{
		origX:         p.x,
		origY:         p.y,
		startCentroid: p.pointers.Centroid(),
		startScale:    p.scale,
		startDistance: p.pointers.Distance(),
	}
}

// HandleDown starts a gesture, or adds a contact to the current one. Down
// events whose target is excluded are ignored.
func (p *Panzoom) HandleDown(ev PointerEvent) {
	if isExcluded(ev.Target, p.options.Exclude, p.options.ExcludeClass) {
		p.debugf("down ignored: excluded target")
		return
	}

	starting := p.session == nil
	if starting {
		p.pointers.Clear()
	}
	p.pointers.Add(ev)
	p.dims = captureDimensions(p.elem, p.geom)
	p.baseline()

	if starting {
		p.debugf("gesture start pointers=%d", p.pointers.Len())
		o := p.options
		p.trigger(EventStart, p.detail(ev), &o)
	}
}

// HandleMove updates the tracked contacts and applies the gesture: a pinch
// zoom about the centroid with two or more contacts, a pan with one.
func (p *Panzoom) HandleMove(ev PointerEvent) {
	s := p.session
	if s == nil {
		return
	}
	p.pointers.Add(ev)
	current := p.pointers.Centroid()

	o := p.options
	o.Animate = false
	o.Relative = false

	if p.pointers.Len() > 1 {
		if s.startDistance == 0 {
			s.startDistance = p.pointers.Distance()
		}
		diff := p.pointers.Distance() - s.startDistance
		toScale := constrainScale(p.scale, diff*o.Step/80+s.startScale, &o)
		p.zoomToPoint(toScale, current, o, ev)
		return
	}

	p.pan(
		s.origX+(current.X-s.startCentroid.X)/p.scale,
		s.origY+(current.Y-s.startCentroid.Y)/p.scale,
		o, ev)
}

// HandleUp removes the lifted contact. The last contact lifting ends the
// gesture; intermediate lifts re-baseline it on the remaining contacts.
func (p *Panzoom) HandleUp(ev PointerEvent) {
	if p.session == nil {
		return
	}
	// Only the lift of the last tracked contact ends the gesture.
	if p.pointers.Len() == 1 && (ev.isFrame() || p.pointers.index(ev.ID) >= 0) {
		o := p.options
		p.trigger(EventEnd, p.detail(ev), &o)
	}
	p.pointers.Remove(ev)

	if p.pointers.Len() == 0 {
		p.session = nil
		p.debugf("gesture end")
		return
	}
	p.baseline()
}
