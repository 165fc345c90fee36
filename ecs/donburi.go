package ecs

import (
	"github.com/phanxgames/panzoom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TransformEventType is the Donburi event type for panzoom events.
var TransformEventType = events.NewEventType[panzoom.Event]()

// TransformComponent holds the latest committed transform of a tracked
// element.
var TransformComponent = donburi.NewComponentType[panzoom.Transform]()

type donburiStore struct {
	world  donburi.World
	entity donburi.Entity
	track  bool
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Events
// are published to TransformEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) panzoom.EventStore {
	return &donburiStore{world: world}
}

// NewDonburiTracker is NewDonburiStore plus a TransformComponent on entity
// that is updated synchronously on every committed change. Create entity
// with TransformComponent; entities without it are left alone.
func NewDonburiTracker(world donburi.World, entity donburi.Entity) panzoom.EventStore {
	return &donburiStore{world: world, entity: entity, track: true}
}

func (s *donburiStore) EmitEvent(event panzoom.Event) {
	TransformEventType.Publish(s.world, event)
	if !s.track || event.Type != panzoom.EventChange || !s.world.Valid(s.entity) {
		return
	}
	entry := s.world.Entry(s.entity)
	if !entry.HasComponent(TransformComponent) {
		return
	}
	TransformComponent.SetValue(entry, event.Transform)
}
