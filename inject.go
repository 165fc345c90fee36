package panzoom

import "math"

// syntheticKind selects how an injected event is dispatched.
type syntheticKind uint8

const (
	syntheticMouse syntheticKind = iota
	syntheticTouch
	syntheticWheel
)

// syntheticEvent represents a single injected input event. Client
// coordinates are used, matching what appears in screenshots, and the event
// flows through the same dispatch as real input.
type syntheticEvent struct {
	kind    syntheticKind
	x, y    float64
	pressed bool
	deltaY  float64
	touches []Pointer
}

// InjectPress queues a left-button press at the given client coordinates.
// The event is consumed on the next frame's processInput call.
func (v *Viewer) InjectPress(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticEvent{kind: syntheticMouse, x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (v *Viewer) InjectMove(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticEvent{kind: syntheticMouse, x: x, y: y, pressed: true})
}

// InjectRelease queues a button release at the given client coordinates.
func (v *Viewer) InjectRelease(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticEvent{kind: syntheticMouse, x: x, y: y})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// frames-2 linearly interpolated moves ending on (toX, toY), and release
// there. The total sequence consumes `frames` frames. Minimum frames is 3
// (press + move + release) since a release alone does not move the element.
func (v *Viewer) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	v.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		v.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	v.InjectRelease(toX, toY)
}

// InjectWheel queues one wheel event at (x, y). Negative deltaY zooms in.
func (v *Viewer) InjectWheel(x, y, deltaY float64) {
	v.injectQueue = append(v.injectQueue, syntheticEvent{kind: syntheticWheel, x: x, y: y, deltaY: deltaY})
}

// InjectPinch queues a two-finger pinch centered on (cx, cy). The contacts
// sit on a horizontal line, fromDist apart when they touch down and toDist
// apart on the last of frames-2 interpolated move frames; both then lift.
// Minimum frames is 3.
func (v *Viewer) InjectPinch(cx, cy, fromDist, toDist float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	pair := func(dist float64) []Pointer {
		h := math.Abs(dist) / 2
		return []Pointer{
			{ID: 0, ClientX: cx - h, ClientY: cy},
			{ID: 1, ClientX: cx + h, ClientY: cy},
		}
	}
	v.injectQueue = append(v.injectQueue, syntheticEvent{kind: syntheticTouch, touches: pair(fromDist)})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		v.injectQueue = append(v.injectQueue, syntheticEvent{
			kind:    syntheticTouch,
			touches: pair(fromDist + (toDist-fromDist)*t),
		})
	}
	v.injectQueue = append(v.injectQueue, syntheticEvent{kind: syntheticTouch, touches: []Pointer{}})
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the real-input dispatch. Returns true if an event was consumed
// (real input is skipped for that frame). An unbound viewer drops the event.
func (v *Viewer) processInjectedInput() bool {
	if len(v.injectQueue) == 0 {
		return false
	}
	evt := v.injectQueue[0]
	copy(v.injectQueue, v.injectQueue[1:])
	v.injectQueue[len(v.injectQueue)-1] = syntheticEvent{}
	v.injectQueue = v.injectQueue[:len(v.injectQueue)-1]
	if !v.bound {
		return true
	}

	switch evt.kind {
	case syntheticMouse:
		v.processPointer(evt.x, evt.y, evt.pressed)
	case syntheticTouch:
		v.processTouchFrame(evt.touches)
	case syntheticWheel:
		v.processWheelEvent(WheelEvent{DeltaY: evt.deltaY, ClientX: evt.x, ClientY: evt.y})
	}
	return true
}
