// Package ecs provides ECS adapters for parabox's actor.
//
// The primary adapter is [NewDonburiSink], which bridges actor step events
// into a [Donburi] world as typed events. Subscribe to [ActorEventType] in
// your ECS systems to receive them. [Attach] also mirrors the actor's state
// into an entity carrying [ActorComponent] once per frame.
//
// Usage:
//
//	world := donburi.NewWorld()
//	mirror := ecs.Attach(game, world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
