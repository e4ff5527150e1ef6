package ecs

import (
	"github.com/phanxgames/tactile"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InputEventType is the Donburi event type for tactile controller events.
// Subscribe to this in your ECS systems to receive gestures, joystick moves
// and button presses and clicks.
var InputEventType = events.NewEventType[tactile.InputEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Events are published to InputEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) tactile.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event tactile.InputEvent) {
	InputEventType.Publish(s.world, event)
}
