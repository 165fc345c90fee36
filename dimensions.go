package panzoom

// Geometry measures the box model of elements. Implementations must be
// synchronous and free of side effects.
type Geometry interface {
	// LayoutSize returns the laid-out size of a non-SVG element, unaffected
	// by any transform applied to it.
	LayoutSize(e Element) (width, height float64)
	// GraphicsBox returns the intrinsic geometry box of an SVG element.
	GraphicsBox(e Element) Rect
	// BoundingRect returns the rendered bounding box in client space.
	BoundingRect(e Element) Rect
	Margin(e Element) Box
	Border(e Element) Box
	Padding(e Element) Box
}

// ElementDimensions is the element half of a Dimensions snapshot.
type ElementDimensions struct {
	// SVG is true for SVG graphics elements, which scale about their
	// top-left corner instead of their center.
	SVG           bool
	Width, Height float64
	Margin        Box
	Border        Box
}

// ParentDimensions is the parent half of a Dimensions snapshot. Size and
// edges come from the parent's rendered bounding box.
type ParentDimensions struct {
	Width, Height            float64
	Left, Top, Right, Bottom float64
	Padding                  Box
	Border                   Box
}

// InteriorWidth returns the parent width inside its border.
func (p ParentDimensions) InteriorWidth() float64 {
	return p.Width - p.Border.Horizontal()
}

// InteriorHeight returns the parent height inside its border.
func (p ParentDimensions) InteriorHeight() float64 {
	return p.Height - p.Border.Vertical()
}

// Dimensions is a frozen box-model snapshot of the element and its parent,
// used by containment and focal-point math. A fresh snapshot replaces the
// previous one; snapshots are never updated in place.
type Dimensions struct {
	Elem   ElementDimensions
	Parent ParentDimensions
}

// captureDimensions measures elem and its parent. SVG graphics elements
// report their geometry box; everything else reports its layout size.
func captureDimensions(elem Element, geom Geometry) Dimensions {
	var d Dimensions
	d.Elem.SVG = elem.IsSVG()
	if d.Elem.SVG {
		box := geom.GraphicsBox(elem)
		d.Elem.Width, d.Elem.Height = box.Width, box.Height
	} else {
		d.Elem.Width, d.Elem.Height = geom.LayoutSize(elem)
	}
	d.Elem.Margin = geom.Margin(elem)
	d.Elem.Border = geom.Border(elem)

	parent := elem.ParentElement()
	if isNil(parent) {
		return d
	}
	r := geom.BoundingRect(parent)
	d.Parent = ParentDimensions{
		Width:   r.Width,
		Height:  r.Height,
		Left:    r.X,
		Top:     r.Y,
		Right:   r.Right(),
		Bottom:  r.Bottom(),
		Padding: geom.Padding(parent),
		Border:  geom.Border(parent),
	}
	return d
}

// NodeGeometry implements Geometry by reading Node fields. Elements that are
// not *Node measure as zero.
type NodeGeometry struct{}

func asNode(e Element) *Node {
	n, _ := e.(*Node)
	return n
}

// LayoutSize implements Geometry.
func (NodeGeometry) LayoutSize(e Element) (float64, float64) {
	if n := asNode(e); n != nil {
		return n.Width, n.Height
	}
	return 0, 0
}

// GraphicsBox implements Geometry.
func (NodeGeometry) GraphicsBox(e Element) Rect {
	if n := asNode(e); n != nil {
		return n.GraphicsBox
	}
	return Rect{}
}

// BoundingRect implements Geometry.
func (NodeGeometry) BoundingRect(e Element) Rect {
	if n := asNode(e); n != nil {
		return n.Bounds
	}
	return Rect{}
}

// Margin implements Geometry.
func (NodeGeometry) Margin(e Element) Box {
	if n := asNode(e); n != nil {
		return n.Margin
	}
	return Box{}
}

// Border implements Geometry.
func (NodeGeometry) Border(e Element) Box {
	if n := asNode(e); n != nil {
		return n.Border
	}
	return Box{}
}

// Padding implements Geometry.
func (NodeGeometry) Padding(e Element) Box {
	if n := asNode(e); n != nil {
		return n.Padding
	}
	return Box{}
}
