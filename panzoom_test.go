package panzoom

import (
	"errors"
	"math"
	"testing"
)

func TestNewErrors(t *testing.T) {
	var typedNil *Node
	text := NewText("label")
	doc := NewDocument("doc")
	holder := NewElement("holder", Rect{Width: 10, Height: 10})
	doc.AddChild(holder)
	holder.AddChild(text)
	detached := NewElement("loose", Rect{Width: 10, Height: 10})
	orphanParent := NewElement("orphan-parent", Rect{Width: 10, Height: 10})
	orphan := NewElement("orphan", Rect{Width: 10, Height: 10})
	orphanParent.AddChild(orphan)

	tests := []struct {
		name string
		elem Element
		want error
	}{
		{"nil interface", nil, ErrNoElement},
		{"typed nil", typedNil, ErrNoElement},
		{"text node", text, ErrNotElement},
		{"document", doc, ErrNotElement},
		{"detached", detached, ErrDetached},
		{"parent not in document", orphan, ErrDetached},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pz, err := New(tt.elem, nil)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if pz != nil {
				t.Error("expected nil Panzoom on error")
			}
		})
	}
}

func TestNewDefaults(t *testing.T) {
	tr := defaultTree()
	pz := mustNew(t, tr.elem)
	if got := pz.Transform(); got != (Transform{Scale: 1}) {
		t.Errorf("Transform = %+v, want identity", got)
	}
	if pz.Element() != Element(tr.elem) {
		t.Error("Element does not return the attached node")
	}
	if pz.IsSVG() || pz.Panning() {
		t.Error("fresh Panzoom should be non-SVG and idle")
	}
	d := pz.Dimensions()
	if d.Elem.Width != 100 || d.Parent.Width != 400 || d.Parent.Height != 300 {
		t.Errorf("Dimensions = %+v", d)
	}
}

func TestNewAppliesStart(t *testing.T) {
	tr := defaultTree()
	pz := mustNew(t, tr.elem, WithStart(10, 20, 2), WithDisablePan(true), WithDisableZoom(true))
	if got := pz.Transform(); got != (Transform{X: 10, Y: 20, Scale: 2}) {
		t.Errorf("Transform = %+v, want {10 20 2}", got)
	}
}

func TestNewSchedulesStartPaint(t *testing.T) {
	tr := defaultTree()
	var painted int
	pz := mustNew(t, tr.elem, WithStart(5, 5, 1.5),
		WithPainter(PainterFunc(func(Element, Detail, Options) { painted++ })))
	if !pz.Pending() {
		t.Fatal("start transform should be pending paint")
	}
	pz.Flush()
	if painted != 1 {
		t.Errorf("painted = %d, want 1", painted)
	}
}

func TestZoomClampsToMinMax(t *testing.T) {
	tr := defaultTree()
	pz := mustNew(t, tr.elem, WithMinScale(0.5), WithMaxScale(4))

	if got, ok := pz.Zoom(10); !ok || got.Scale != 4 {
		t.Errorf("Zoom(10) = %v, %v; want 4", got.Scale, ok)
	}
	if got, ok := pz.Zoom(0.01); !ok || got.Scale != 0.5 {
		t.Errorf("Zoom(0.01) = %v, %v; want 0.5", got.Scale, ok)
	}
}

func TestZoomDisabled(t *testing.T) {
	tr := defaultTree()
	pz := mustNew(t, tr.elem, WithDisableZoom(true))
	var rec recorder
	rec.attach(pz)

	if _, ok := pz.Zoom(2); ok || pz.Scale() != 1 {
		t.Errorf("disabled zoom changed scale to %v (ok=%v)", pz.Scale(), ok)
	}
	if len(rec.events) != 0 {
		t.Errorf("disabled zoom fired %v", rec.types())
	}
	if _, ok := pz.Zoom(2, Force()); !ok || pz.Scale() != 2 {
		t.Errorf("forced zoom: scale %v ok=%v", pz.Scale(), ok)
	}

	pz.SetOptions(Force())
	if _, ok := pz.Zoom(3); ok || pz.Scale() != 2 {
		t.Errorf("Force persisted through SetOptions: scale %v", pz.Scale())
	}
}

func TestZoomWithPoint(t *testing.T) {
	tr := defaultTree()
	pz := mustNew(t, tr.elem)
	got, _ := pz.Zoom(2, Point(30, 40))
	if got != (Transform{X: 30, Y: 40, Scale: 2}) {
		t.Errorf("Zoom with Point = %+v", got)
	}
}

func TestZoomWithFocal(t *testing.T) {
	tr := defaultTree()
	pz := mustNew(t, tr.elem)
	got, _ := pz.Zoom(2, Focal(20, 10))
	if !approxEqual(got.X, -10, epsilon) || !approxEqual(got.Y, -5, epsilon) || got.Scale != 2 {
		t.Errorf("Zoom with Focal = %+v, want {-10 -5 2}", got)
	}
}

func TestPanRelativeRoundTrip(t *testing.T) {
	tr := defaultTree()
	pz := mustNew(t, tr.elem)
	pz.Pan(10, 5, WithRelative(true))
	pz.Pan(10, 5, WithRelative(true))
	if x, y := pz.Position(); x != 20 || y != 10 {
		t.Fatalf("Position = (%v, %v), want (20, 10)", x, y)
	}
	pz.Pan(-20, -10, WithRelative(true))
	if x, y := pz.Position(); x != 0 || y != 0 {
		t.Errorf("Position = (%v, %v), want origin", x, y)
	}
}

func TestPanUnchangedDoesNotCommit(t *testing.T) {
	tr := defaultTree()
	pz := mustNew(t, tr.elem)
	var rec recorder
	rec.attach(pz)
	pz.Pan(0, 0)
	if len(rec.events) != 0 {
		t.Errorf("no-op pan fired %v", rec.types())
	}
}

func TestPanDisabledAxes(t *testing.T) {
	tr := defaultTree()
	pz := mustNew(t, tr.elem, WithDisableXAxis(true))
	pz.Pan(10, 20)
	if x, y := pz.Position(); x != 0 || y != 20 {
		t.Errorf("Position = (%v, %v), want (0, 20)", x, y)
	}

	pz.SetOptions(WithDisableXAxis(false), WithDisableYAxis(true))
	pz.Pan(30, 40)
	if x, y := pz.Position(); x != 30 || y != 20 {
		t.Errorf("Position = (%v, %v), want (30, 20)", x, y)
	}
}

func TestPanOnlyWhenZoomed(t *testing.T) {
	tr := defaultTree()
	pz := mustNew(t, tr.elem, WithPanOnlyWhenZoomed(true))
	pz.Pan(10, 10)
	if x, y := pz.Position(); x != 0 || y != 0 {
		t.Fatalf("pan at start scale moved to (%v, %v)", x, y)
	}
	pz.Zoom(2)
	pz.Pan(10, 10)
	if x, y := pz.Position(); x != 10 || y != 10 {
		t.Errorf("pan while zoomed = (%v, %v), want (10, 10)", x, y)
	}
}

func TestZoomToPointKeepsPointFixed(t *testing.T) {
	for _, svg := range []bool{false, true} {
		name := "box"
		if svg {
			name = "svg"
		}
		t.Run(name, func(t *testing.T) {
			doc := NewDocument("doc")
			parent := NewElement("parent", Rect{X: 50, Y: 40, Width: 400, Height: 300})
			layout := Rect{X: 50, Y: 40, Width: 100, Height: 100}
			var elem *Node
			if svg {
				elem = NewSVGElement("elem", layout, Rect{Width: 100, Height: 100})
			} else {
				elem = NewElement("elem", layout)
			}
			doc.AddChild(parent)
			parent.AddChild(elem)

			surface := NewSurface(layout, svg)
			pz := mustNew(t, elem, WithPainter(surface))
			pz.Pan(13, -7)
			pz.Zoom(1.5)
			pz.Flush()

			for _, target := range []float64{0.4, 1, 2.5, 4} {
				client := Vec2{X: 120, Y: 90}
				lx, ly := surface.ClientToLocal(client.X, client.Y)
				pz.ZoomToPoint(target, client)
				pz.Flush()
				cx, cy := surface.LocalToClient(lx, ly)
				if !approxEqual(cx, client.X, 1e-6) || !approxEqual(cy, client.Y, 1e-6) {
					t.Fatalf("scale %v: point moved from %v to (%v, %v)", target, client, cx, cy)
				}
			}
		})
	}
}

// capturePainter records the options of every painted transform.
type capturePainter struct {
	details []Detail
	options []Options
}

func (c *capturePainter) SetTransform(_ Element, d Detail, o Options) {
	c.details = append(c.details, d)
	c.options = append(c.options, o)
}

func (c *capturePainter) last() (Detail, Options) {
	return c.details[len(c.details)-1], c.options[len(c.options)-1]
}

func TestZoomInOut(t *testing.T) {
	tr := defaultTree()
	cp := &capturePainter{}
	pz := mustNew(t, tr.elem, WithPainter(cp))
	pz.Flush()

	pz.ZoomIn()
	pz.Flush()
	if want := math.Exp(0.3); !approxEqual(pz.Scale(), want, epsilon) {
		t.Errorf("ZoomIn scale = %v, want %v", pz.Scale(), want)
	}
	if _, o := cp.last(); !o.Animate {
		t.Error("ZoomIn should animate by default")
	}

	pz.ZoomOut(WithAnimate(false))
	pz.Flush()
	if !approxEqual(pz.Scale(), 1, epsilon) {
		t.Errorf("ZoomOut scale = %v, want 1", pz.Scale())
	}
	if _, o := cp.last(); o.Animate {
		t.Error("call-level WithAnimate(false) should override")
	}
	if pz.Options().Animate {
		t.Error("ZoomIn default leaked into stored options")
	}
}

func TestZoomWithWheel(t *testing.T) {
	step := math.Exp(0.3 / 3)
	tests := []struct {
		name string
		ev   WheelEvent
		want float64
	}{
		{"scroll up zooms in", WheelEvent{DeltaY: -100, ClientX: 50, ClientY: 50}, step},
		{"scroll down zooms out", WheelEvent{DeltaY: 53, ClientX: 50, ClientY: 50}, 1 / step},
		{"horizontal delta stands in", WheelEvent{DeltaX: -4, ClientX: 50, ClientY: 50}, step},
		{"zero delta zooms out", WheelEvent{ClientX: 50, ClientY: 50}, 1 / step},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := defaultTree()
			pz := mustNew(t, tr.elem)
			var rec recorder
			rec.attach(pz)
			got, ok := pz.ZoomWithWheel(tt.ev)
			if !ok || !approxEqual(got.Scale, tt.want, epsilon) {
				t.Fatalf("scale = %v (ok=%v), want %v", got.Scale, ok, tt.want)
			}
			if !equalTypes(rec.types(), []EventType{EventZoom, EventChange}) {
				t.Fatalf("events = %v", rec.types())
			}
			if ev, ok := rec.events[0].Original.(WheelEvent); !ok || ev != tt.ev {
				t.Errorf("Original = %#v, want the wheel event", rec.events[0].Original)
			}
		})
	}
}

func TestZoomWithWheelAtCenterKeepsPosition(t *testing.T) {
	tr := defaultTree()
	pz := mustNew(t, tr.elem)
	// The element center is the transform origin, so the focal point is zero.
	got, _ := pz.ZoomWithWheel(WheelEvent{DeltaY: -1, ClientX: 50, ClientY: 50})
	if !approxEqual(got.X, 0, epsilon) || !approxEqual(got.Y, 0, epsilon) {
		t.Errorf("position = (%v, %v), want origin", got.X, got.Y)
	}
}

func TestReset(t *testing.T) {
	tr := defaultTree()
	cp := &capturePainter{}
	pz := mustNew(t, tr.elem, WithStart(5, 5, 1), WithDisablePan(true), WithDisableZoom(true), WithPainter(cp))
	pz.Pan(40, 40, Force())
	pz.Zoom(2.5, Force())
	if got := pz.Transform(); got != (Transform{X: 40, Y: 40, Scale: 2.5}) {
		t.Fatalf("setup transform = %+v", got)
	}

	var rec recorder
	rec.attach(pz)
	got := pz.Reset()
	if got != (Transform{X: 5, Y: 5, Scale: 1}) {
		t.Errorf("Reset = %+v, want {5 5 1}", got)
	}
	if !equalTypes(rec.types(), []EventType{EventReset, EventChange}) {
		t.Errorf("events = %v", rec.types())
	}
	pz.Flush()
	if _, o := cp.last(); !o.Animate {
		t.Error("Reset should animate by default")
	}
}

func TestContainInsideClampsZoomAndPan(t *testing.T) {
	tr := defaultTree()
	pz := mustNew(t, tr.elem, WithContain(ContainInside))
	if got := pz.Options().MaxScale; got != 3 {
		t.Fatalf("MaxScale = %v, want 3", got)
	}
	pz.Zoom(10)
	if pz.Scale() != 3 {
		t.Errorf("Scale = %v, want 3", pz.Scale())
	}
	pz.Zoom(1)
	pz.Pan(-500, 1000)
	box := renderedBox(pz.Transform(), Vec2{}, 100, 100, false)
	if box.X < -epsilon || box.Bottom() > 300+epsilon {
		t.Errorf("element escaped parent: %+v", box)
	}
}

func TestSetOptionsRecomputesBounds(t *testing.T) {
	tr := defaultTree()
	pz := mustNew(t, tr.elem)
	pz.SetOptions(WithContain(ContainOutside))
	if got := pz.Options().MinScale; got != 4 {
		t.Errorf("MinScale = %v, want 4", got)
	}
	pz.SetOptions(WithContain(ContainInside))
	if got := pz.Options().MaxScale; got != 3 {
		t.Errorf("MaxScale = %v, want 3", got)
	}
}

func TestResizeRecomputesBounds(t *testing.T) {
	tr := defaultTree()
	pz := mustNew(t, tr.elem, WithContain(ContainInside))
	tr.parent.Bounds.Width = 200
	pz.Resize()
	if got := pz.Options().MaxScale; got != 2 {
		t.Errorf("MaxScale after resize = %v, want 2", got)
	}
	if got := pz.Dimensions().Parent.Width; got != 200 {
		t.Errorf("Dimensions().Parent.Width = %v, want 200", got)
	}
}

func TestResetIgnoresStoredRelative(t *testing.T) {
	tr := defaultTree()
	pz := mustNew(t, tr.elem, WithRelative(true))
	pz.Pan(40, 40)
	if got := pz.Reset(WithAnimate(false)); got != (Transform{Scale: 1}) {
		t.Errorf("Reset = %+v, want {0 0 1}", got)
	}
}

func TestNewClampsStartScaleToContainBounds(t *testing.T) {
	tr := defaultTree()
	pz := mustNew(t, tr.elem, WithContain(ContainOutside))
	if got := pz.Options().MinScale; got != 4 {
		t.Fatalf("MinScale = %v, want 4", got)
	}
	if got := pz.Scale(); got != 4 {
		t.Errorf("Scale = %v, want 4", got)
	}
	box := renderedBox(pz.Transform(), Vec2{}, 100, 100, false)
	if box.X > epsilon || box.Y > epsilon || box.Right() < 400-epsilon || box.Bottom() < 300-epsilon {
		t.Errorf("element does not cover parent: %+v", box)
	}
}

func TestContainNoneRestoresConfiguredBounds(t *testing.T) {
	tr := defaultTree()
	pz := mustNew(t, tr.elem, WithContain(ContainInside))
	if got := pz.Options().MaxScale; got != 3 {
		t.Fatalf("MaxScale = %v, want 3", got)
	}
	pz.SetOptions(WithContain(ContainNone))
	if got := pz.Options().MaxScale; got != 4 {
		t.Errorf("MaxScale after ContainNone = %v, want 4", got)
	}

	pz.SetOptions(WithContain(ContainInside))
	pz.SetOptions(WithMaxScale(8))
	if got := pz.Options().MaxScale; got != 3 {
		t.Errorf("contained MaxScale = %v, want 3", got)
	}
	pz.SetOptions(WithContain(ContainNone))
	if got := pz.Options().MaxScale; got != 8 {
		t.Errorf("MaxScale after ContainNone = %v, want 8", got)
	}
	pz.SetOptions(WithAnimate(true))
	if got := pz.Options().MaxScale; got != 8 {
		t.Errorf("unrelated SetOptions changed MaxScale to %v", got)
	}
}

func TestOptionsReturnsCopy(t *testing.T) {
	tr := defaultTree()
	pz := mustNew(t, tr.elem, WithExclude(tr.parent))
	o := pz.Options()
	o.Exclude[0] = tr.elem
	o.MaxScale = 99
	got := pz.Options()
	if got.Exclude[0] != Element(tr.parent) || got.MaxScale == 99 {
		t.Error("mutating the returned Options changed the stored ones")
	}
}

func TestRoundPixels(t *testing.T) {
	tr := defaultTree()
	pz := mustNew(t, tr.elem, WithRoundPixels(true))
	pz.Pan(10.4, -3.6)
	if x, y := pz.Position(); x != 10 || y != -4 {
		t.Errorf("Position = (%v, %v), want (10, -4)", x, y)
	}
}
