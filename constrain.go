package panzoom

import "math"

// constrainScale clamps a requested scale to [MinScale, MaxScale]. When zoom
// is disabled and not forced the current scale is returned unchanged.
func constrainScale(current, requested float64, o *Options) float64 {
	if !o.Force && o.DisableZoom {
		return current
	}
	return math.Min(math.Max(requested, o.MinScale), o.MaxScale)
}

// panDisabled reports whether a pan at the current scale must be ignored.
func panDisabled(current Transform, o *Options) bool {
	if o.Force {
		return false
	}
	return o.DisablePan || (o.PanOnlyWhenZoomed && current.Scale == o.StartScale)
}

// constrainXY resolves a requested translation at toScale into a legal one.
//
// Containment compensates for scaling about the element's center: growing
// by (toScale-1) moves each edge outward by diff = w*(toScale-1)/2, and the
// rendered translation is toScale*x, hence the division by toScale. SVG
// elements scale about their top-left corner, so diff is zero for them.
func constrainXY(current Transform, toX, toY, toScale float64, o *Options, d *Dimensions) (float64, float64) {
	if panDisabled(current, o) {
		return current.X, current.Y
	}

	x, y := current.X, current.Y
	if !o.DisableXAxis {
		if o.Relative {
			x += toX
		} else {
			x = toX
		}
	}
	if !o.DisableYAxis {
		if o.Relative {
			y += toY
		} else {
			y = toY
		}
	}

	if o.Contain != ContainNone && d != nil && toScale > 0 {
		minX, maxX := containBounds(o.Contain, toScale, !d.Elem.SVG,
			d.Elem.Width, d.Parent.Width,
			d.Elem.Margin.Left, d.Parent.Padding.Left,
			d.Parent.Border.Left, d.Parent.Border.Right)
		minY, maxY := containBounds(o.Contain, toScale, !d.Elem.SVG,
			d.Elem.Height, d.Parent.Height,
			d.Elem.Margin.Top, d.Parent.Padding.Top,
			d.Parent.Border.Top, d.Parent.Border.Bottom)
		x = math.Max(math.Min(x, maxX), minX)
		y = math.Max(math.Min(y, maxY), minY)
	}

	if o.RoundPixels {
		x = math.Round(x)
		y = math.Round(y)
	}
	return x, y
}

// containBounds returns the legal translation range on one axis.
//
// lead is the translation that puts the scaled element's leading edge on the
// parent's inner border edge; trail puts its trailing edge on the opposite
// inner border edge. Inside keeps the element between the two; outside keeps
// it covering the span between them.
func containBounds(mode Contain, toScale float64, centered bool, size, parentSize, margin, padding, borderLead, borderTrail float64) (float64, float64) {
	scaled := size * toScale
	var diff float64
	if centered {
		diff = (scaled - size) / 2
	}
	lead := (-margin - padding + diff) / toScale
	trail := (parentSize - scaled - padding - margin - borderLead - borderTrail + diff) / toScale
	if mode == ContainOutside {
		return trail, lead
	}
	return lead, trail
}

// setMinMax derives the effective zoom bound implied by containment: the
// largest scale that still fits inside, or the smallest that still covers.
// The derived value replaces any explicit MinScale/MaxScale.
func setMinMax(o *Options, d *Dimensions) {
	if o.Contain == ContainNone {
		return
	}
	elemW := d.Elem.Width
	if elemW == 0 {
		elemW = 1
	}
	elemH := d.Elem.Height
	if elemH == 0 {
		elemH = 1
	}
	scaledW := d.Parent.InteriorWidth() / elemW
	scaledH := d.Parent.InteriorHeight() / elemH
	switch o.Contain {
	case ContainInside:
		o.MaxScale = math.Min(scaledW, scaledH)
	case ContainOutside:
		o.MinScale = math.Max(scaledW, scaledH)
	}
}
