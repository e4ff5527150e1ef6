// Package ecs provides ECS adapters for tactile's controller events.
//
// The primary adapter is [NewDonburiStore], which bridges gesture, joystick
// and button events into a [Donburi] world as typed events. Subscribe to
// [InputEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	engine.SetEventStore(store)
//	joystick.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
