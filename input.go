package panzoom

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// mousePointerID is the pointer id used for the mouse.
const mousePointerID = 0

// --- Per-pointer state ---

type mouseState struct {
	down bool
	// ignored is set while a press that was refused stays held.
	ignored      bool
	lastX, lastY float64
}

type inputState struct {
	mouse   mouseState
	touchID []ebiten.TouchID
	// touches is the previous frame's touch snapshot; nil when no touch
	// gesture is in progress.
	touches []Pointer
	// touchIgnored is set while a refused touch gesture has contacts down.
	touchIgnored bool
}

// --- Input processing ---

// processInput is called from Viewer.Update to poll mouse, touch, wheel,
// and keyboard. Injected events take priority over real input. Nothing is
// dispatched while the viewer is unbound.
func (v *Viewer) processInput() {
	if v.processInjectedInput() || !v.bound {
		return
	}
	v.processMousePointer()
	v.processTouchPointers()
	v.processWheel()
	v.processKeys()
}

// processMousePointer handles the left mouse button (pointer 0).
func (v *Viewer) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	v.processPointer(float64(mx), float64(my), pressed)
}

// processPointer runs the down/move/up transitions for the mouse pointer.
// A refused press never turns into a gesture, even if the cursor is then
// dragged onto the element.
func (v *Viewer) processPointer(x, y float64, pressed bool) {
	ms := &v.input.mouse
	ev := PointerEvent{ID: mousePointerID, ClientX: x, ClientY: y}

	switch {
	case pressed && !ms.down:
		if ms.ignored {
			return
		}
		if !v.acceptsDown(x, y) {
			ms.ignored = true
			return
		}
		ms.down = true
		ev.Target = v.target(x, y)
		v.Panzoom.HandleDown(ev)
	case pressed && ms.down:
		if x == ms.lastX && y == ms.lastY {
			return
		}
		v.Panzoom.HandleMove(ev)
	case !pressed && ms.down:
		ms.down = false
		v.Panzoom.HandleUp(ev)
	default:
		ms.ignored = false
	}
	ms.lastX, ms.lastY = x, y
}

// processTouchPointers reads every active touch into one frame.
func (v *Viewer) processTouchPointers() {
	v.input.touchID = ebiten.AppendTouchIDs(v.input.touchID[:0])
	frame := make([]Pointer, 0, len(v.input.touchID))
	for i, tid := range v.input.touchID {
		tx, ty := ebiten.TouchPosition(tid)
		frame = append(frame, Pointer{ID: i, ClientX: float64(tx), ClientY: float64(ty)})
	}
	v.processTouchFrame(frame)
}

// processTouchFrame dispatches one multi-touch snapshot. A change in the
// number of contacts re-baselines the gesture with a down frame; an empty
// snapshot after contact is an up frame, preceded by a one-contact down frame
// when several contacts lift at once.
func (v *Viewer) processTouchFrame(frame []Pointer) {
	if v.input.touchIgnored {
		v.input.touchIgnored = len(frame) > 0
		return
	}
	prev := v.input.touches
	switch {
	case len(frame) == 0 && prev == nil:
		return
	case len(frame) == 0:
		v.input.touches = nil
		// Lift down to the first contact so the last lift ends the gesture.
		if len(prev) > 1 {
			v.Panzoom.HandleDown(PointerEvent{Touches: prev[:1:1]})
		}
		v.Panzoom.HandleUp(PointerEvent{Touches: []Pointer{}})
	case prev == nil:
		first := frame[0]
		if !v.acceptsDown(first.ClientX, first.ClientY) {
			v.input.touchIgnored = true
			return
		}
		v.input.touches = frame
		v.Panzoom.HandleDown(PointerEvent{
			ClientX: first.ClientX,
			ClientY: first.ClientY,
			Target:  v.target(first.ClientX, first.ClientY),
			Touches: frame,
		})
	case len(frame) != len(prev):
		v.input.touches = frame
		v.Panzoom.HandleDown(PointerEvent{Touches: frame})
	default:
		v.input.touches = frame
		v.Panzoom.HandleMove(PointerEvent{Touches: frame})
	}
}

// processWheel zooms toward the cursor on wheel input. Ebitengine reports
// positive yoff for scrolling up, the opposite of DOM deltas.
func (v *Viewer) processWheel() {
	xoff, yoff := ebiten.Wheel()
	if xoff == 0 && yoff == 0 {
		return
	}
	mx, my := ebiten.CursorPosition()
	v.processWheelEvent(WheelEvent{
		DeltaX:  -xoff,
		DeltaY:  -yoff,
		ClientX: float64(mx),
		ClientY: float64(my),
	})
}

func (v *Viewer) processWheelEvent(ev WheelEvent) {
	if !v.acceptsDown(ev.ClientX, ev.ClientY) {
		return
	}
	v.Panzoom.ZoomWithWheel(ev)
}

// processKeys maps +/- to ZoomIn/ZoomOut and 0 to Reset.
func (v *Viewer) processKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		v.Panzoom.ZoomIn()
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		v.Panzoom.ZoomOut()
	case inpututil.IsKeyJustPressed(ebiten.Key0), inpututil.IsKeyJustPressed(ebiten.KeyNumpad0):
		v.Panzoom.Reset()
	}
}

// --- Hit testing ---

func (v *Viewer) insideParent(x, y float64) bool {
	return v.Parent.Bounds.Contains(x, y)
}

// acceptsDown reports whether a press or wheel at (x, y) is handled: it
// must land inside the parent, and on the element unless Canvas is set.
func (v *Viewer) acceptsDown(x, y float64) bool {
	if !v.insideParent(x, y) {
		return false
	}
	return v.Panzoom.options.Canvas || v.elementHit(x, y) != nil
}

// elementHit returns the deepest node of the element's subtree under the
// client point (x, y) as currently painted, or nil on a miss.
func (v *Viewer) elementHit(x, y float64) *Node {
	lx, ly := v.Surface.ClientToLocal(x, y)
	return v.Elem.hitTest(v.Surface.Layout.X+lx, v.Surface.Layout.Y+ly)
}

// target returns the deepest node under (x, y): the painted element's
// subtree first, then the rest of the parent's subtree, then the parent.
func (v *Viewer) target(x, y float64) Element {
	if hit := v.elementHit(x, y); hit != nil {
		return hit
	}
	// The element's untransformed box no longer reflects where it is drawn.
	if hit := v.Parent.hitTest(x, y); hit != nil && !isAncestor(v.Elem, hit) {
		return hit
	}
	return v.Parent
}
