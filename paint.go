package panzoom

// Painter applies a committed transform to a visual surface. Panzoom hands
// the latest value over on the next Flush, never from inside the operation
// that computed it.
type Painter interface {
	SetTransform(elem Element, d Detail, o Options)
}

// PainterFunc adapts a function to the Painter interface.
type PainterFunc func(elem Element, d Detail, o Options)

// SetTransform implements Painter.
func (f PainterFunc) SetTransform(elem Element, d Detail, o Options) {
	f(elem, d, o)
}

// paintRequest is the pending hand-off for the next Flush.
type paintRequest struct {
	detail  Detail
	options Options
}

// schedule queues d for the painter. A later commit in the same frame
// replaces an earlier one; only the latest state is painted.
func (p *Panzoom) schedule(d Detail, o *Options) {
	if o.Painter == nil {
		return
	}
	p.pending = &paintRequest{detail: d, options: *o}
}

// Flush hands the pending transform, if any, to its painter. Hosts call it
// once per frame at their paint opportunity. Reports whether anything was
// painted.
func (p *Panzoom) Flush() bool {
	req := p.pending
	if req == nil {
		return false
	}
	p.pending = nil
	req.options.Painter.SetTransform(p.elem, req.detail, req.options)
	return true
}

// Pending reports whether a transform is waiting for Flush.
func (p *Panzoom) Pending() bool {
	return p.pending != nil
}
