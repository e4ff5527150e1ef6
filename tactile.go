package tactile

import "math"

// Vec2 is a 2D vector used for touch positions, displacements, and joystick
// directions throughout the API. Methods never modify the receiver.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the magnitude of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// LenSq returns the squared magnitude of v.
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Normalize returns the unit vector in the direction of v, or the zero
// vector when v has no length.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Angle returns the angle of v in radians, measured from the +X axis.
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Dist returns the distance between two points.
func Dist(a, b Vec2) float64 { return b.Sub(a).Len() }

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Vec2) Vec2 { return Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2} }

// InputEventType identifies a kind of event forwarded to an EventStore.
type InputEventType uint8

const (
	EventGesture       InputEventType = iota // a recognized gesture (see Gesture.Kind)
	EventJoystickMove                        // joystick direction changed
	EventButtonClick                         // button released by its owning touch
	EventButtonPress                         // button captured by a touch
)

// TargetKind identifies which controller captured a touch.
type TargetKind uint8

const (
	TargetNone        TargetKind = iota // touch landed outside every target
	TargetGestureArea                   // routed to a GestureEngine
	TargetJoystick                      // routed to a JoystickController
	TargetButton                        // routed to a ButtonController
)

// String returns a short lowercase name for the target kind.
func (k TargetKind) String() string {
	switch k {
	case TargetGestureArea:
		return "gesture_area"
	case TargetJoystick:
		return "joystick"
	case TargetButton:
		return "button"
	default:
		return "none"
	}
}
