package tactile

// EventStore is the interface for optional ECS integration.
// When set on a controller, its events are forwarded to the store in
// addition to the registered callbacks.
type EventStore interface {
	EmitEvent(event InputEvent)
}

// InputEvent carries controller output for an EventStore.
type InputEvent struct {
	Type    InputEventType
	TouchID int
	X, Y    float64
	// Gesture fields (valid for EventGesture)
	Gesture GestureKind
	Details GestureDetails
	// Joystick fields (valid for EventJoystickMove)
	Direction Vec2
	// Button fields (valid for EventButtonPress, EventButtonClick)
	ButtonID string
}
