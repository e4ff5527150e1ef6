package tactile

import "math"

// JoystickController maps the displacement of one touch from a fixed center
// into a direction inside the unit disk. At most one touch owns the joystick
// at a time.
type JoystickController struct {
	cfg       JoystickConfig
	center    Vec2
	direction Vec2
	owner     int
	active    bool

	onMove handlerList[Vec2]
	store  EventStore
}

// NewJoystick creates an idle joystick.
func NewJoystick(cfg JoystickConfig) *JoystickController {
	return &JoystickController{cfg: cfg}
}

// Config returns the joystick settings.
func (j *JoystickController) Config() JoystickConfig { return j.cfg }

// SetConfig replaces the joystick settings. The direction is recomputed on the
// next Drag.
func (j *JoystickController) SetConfig(cfg JoystickConfig) { j.cfg = cfg }

// OnMove registers a callback that receives the direction after every
// successful StartDrag, Drag and EndDrag. Callbacks run synchronously and
// must not block.
func (j *JoystickController) OnMove(fn func(Vec2)) CallbackHandle {
	return j.onMove.add(fn)
}

// SetEventStore forwards direction changes to store. Pass nil to detach.
func (j *JoystickController) SetEventStore(store EventStore) { j.store = store }

// Direction returns the current direction. Its magnitude is at most 1.
func (j *JoystickController) Direction() Vec2 { return j.direction }

// Center returns the center captured by the last StartDrag.
func (j *JoystickController) Center() Vec2 { return j.center }

// ActiveTouch returns the ID of the touch that owns the joystick.
func (j *JoystickController) ActiveTouch() (int, bool) { return j.owner, j.active }

// StartDrag gives t ownership of the joystick if no other touch holds it.
// It reports whether the touch was captured.
func (j *JoystickController) StartDrag(t TouchSample, center Vec2) bool {
	if j.active {
		logger.Debugf("joystick busy with touch %d, refusing touch %d", j.owner, t.ID)
		return false
	}
	j.active = true
	j.owner = t.ID
	j.center = center
	j.update(t.Pos())
	return true
}

// Drag recomputes the direction if t owns the joystick.
func (j *JoystickController) Drag(t TouchSample) bool {
	if !j.active || t.ID != j.owner {
		return false
	}
	j.update(t.Pos())
	return true
}

// EndDrag releases the joystick if touchID owns it and resets the direction
// to zero.
func (j *JoystickController) EndDrag(touchID int) bool {
	if !j.active || touchID != j.owner {
		return false
	}
	j.active = false
	j.setDirection(Vec2{}, touchID)
	j.owner = 0
	return true
}

func (j *JoystickController) update(p Vec2) {
	j.setDirection(JoystickDirection(p.Sub(j.center), j.cfg.MovementRadius, j.cfg.Deadzone), j.owner)
}

func (j *JoystickController) setDirection(d Vec2, touchID int) {
	j.direction = d
	j.onMove.fire(d)
	if j.store != nil {
		j.store.EmitEvent(InputEvent{
			Type:      EventJoystickMove,
			TouchID:   touchID,
			Direction: d,
		})
	}
}

// JoystickDirection converts a displacement from the joystick center into a
// direction. The displacement is divided by radius and clamped to the unit
// circle. Inside the deadzone the result is zero; beyond it the magnitude
// ramps linearly from 0 at the deadzone edge to 1 at the radius while the
// angle is preserved. A non-positive radius or a deadzone of 1 or more always
// yields zero.
func JoystickDirection(d Vec2, radius, deadzone float64) Vec2 {
	if radius <= 0 || deadzone >= 1 {
		return Vec2{}
	}
	if deadzone < 0 {
		deadzone = 0
	}
	n := d.Scale(1 / radius)
	mag := n.Len()
	if mag < deadzone || mag == 0 {
		return Vec2{}
	}
	u := n.Scale(1 / mag)
	if mag >= 1 {
		return clampUnit(u)
	}
	scale := (mag - deadzone) / (1 - deadzone)
	if scale >= 1 {
		return clampUnit(u)
	}
	return clampUnit(u.Scale(scale))
}

// clampUnit shrinks v by one ulp per component until its length is at most 1,
// absorbing rounding from the division by the magnitude.
func clampUnit(v Vec2) Vec2 {
	for v.Len() > 1 {
		v.X = math.Nextafter(v.X, 0)
		v.Y = math.Nextafter(v.Y, 0)
	}
	return v
}
