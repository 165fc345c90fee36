// Package ecs provides ECS adapters for panzoom's event stream.
//
// [NewDonburiStore] bridges panzoom events (start, change, pan, zoom, reset,
// end) into a [Donburi] world as typed events. Subscribe to
// [TransformEventType] in your ECS systems to receive them.
//
// [NewDonburiTracker] additionally mirrors the latest committed transform
// into a [TransformComponent] on one entity, so systems can query it like
// any other component.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	pz.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
