package panzoom

// Event is delivered to observers and to the EventStore bridge.
type Event struct {
	Type EventType
	Detail
}

// EventStore is the interface for optional ECS integration. When set on a
// Panzoom, every non-silent event is forwarded to it after the observers.
type EventStore interface {
	EmitEvent(event Event)
}

// --- Handler registry ---

type eventHandler struct {
	id uint32
	fn func(Event)
}

type handlerRegistry struct {
	handlers [eventTypeCount][]eventHandler
	nextID   uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil || h.event >= eventTypeCount {
		return
	}
	s := h.reg.handlers[h.event]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			h.reg.handlers[h.event] = s[:len(s)-1]
			return
		}
	}
}

func (r *handlerRegistry) add(t EventType, fn func(Event)) CallbackHandle {
	r.nextID++
	id := r.nextID
	r.handlers[t] = append(r.handlers[t], eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r, event: t}
}

func (r *handlerRegistry) fire(ev Event) {
	for _, h := range r.handlers[ev.Type] {
		h.fn(ev)
	}
}

// On registers fn for events of type t. Panics on an unknown type.
func (p *Panzoom) On(t EventType, fn func(Event)) CallbackHandle {
	if t >= eventTypeCount {
		panic("panzoom: unknown event type")
	}
	return p.handlers.add(t, fn)
}

// OnStart registers a callback for gesture start.
func (p *Panzoom) OnStart(fn func(Event)) CallbackHandle { return p.On(EventStart, fn) }

// OnChange registers a callback fired after every committed change.
func (p *Panzoom) OnChange(fn func(Event)) CallbackHandle { return p.On(EventChange, fn) }

// OnPan registers a callback for committed pans.
func (p *Panzoom) OnPan(fn func(Event)) CallbackHandle { return p.On(EventPan, fn) }

// OnZoom registers a callback for committed zooms.
func (p *Panzoom) OnZoom(fn func(Event)) CallbackHandle { return p.On(EventZoom, fn) }

// OnReset registers a callback for Reset.
func (p *Panzoom) OnReset(fn func(Event)) CallbackHandle { return p.On(EventReset, fn) }

// OnEnd registers a callback for gesture end.
func (p *Panzoom) OnEnd(fn func(Event)) CallbackHandle { return p.On(EventEnd, fn) }

// SetEventStore sets the optional ECS bridge.
func (p *Panzoom) SetEventStore(store EventStore) {
	p.store = store
}

// trigger notifies observers and the store unless o.Silent is set.
func (p *Panzoom) trigger(t EventType, d Detail, o *Options) {
	if o.Silent {
		return
	}
	ev := Event{Type: t, Detail: d}
	p.handlers.fire(ev)
	if p.store != nil {
		p.store.EmitEvent(ev)
	}
}
