package panzoom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// tree is a document > parent > elem fixture.
type tree struct {
	doc, parent, elem *Node
}

// newTree builds a connected tree. elem is laid out at the parent's content
// origin (inside border and padding).
func newTree(parent Rect, elemW, elemH float64) *tree {
	doc := NewDocument("doc")
	p := NewElement("parent", parent)
	e := NewElement("elem", Rect{X: parent.X, Y: parent.Y, Width: elemW, Height: elemH})
	doc.AddChild(p)
	p.AddChild(e)
	return &tree{doc: doc, parent: p, elem: e}
}

// defaultTree is a 100x100 element in a 400x300 parent at the origin.
func defaultTree() *tree {
	return newTree(Rect{Width: 400, Height: 300}, 100, 100)
}

func mustNew(t *testing.T, elem Element, opts ...Option) *Panzoom {
	t.Helper()
	pz, err := New(elem, nil, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return pz
}

// recorder collects events of every type in firing order.
type recorder struct {
	events []Event
}

func (r *recorder) attach(pz *Panzoom) {
	for t := EventStart; t < eventTypeCount; t++ {
		pz.On(t, func(e Event) { r.events = append(r.events, e) })
	}
}

func (r *recorder) types() []EventType {
	out := make([]EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

func (r *recorder) reset() { r.events = r.events[:0] }

func equalTypes(a, b []EventType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// renderedBox returns the client-space box of a w*h element laid out at
// layout under tr.
func renderedBox(tr Transform, layout Vec2, w, h float64, svg bool) Rect {
	m := tr.Matrix(layout, transformOrigin(svg, w, h))
	x0, y0 := transformPoint(m, 0, 0)
	x1, y1 := transformPoint(m, w, h)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
