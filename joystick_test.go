package tactile

import (
	"math"
	"testing"
)

func TestJoystickDirection(t *testing.T) {
	tests := []struct {
		name     string
		d        Vec2
		radius   float64
		deadzone float64
		want     Vec2
	}{
		{"inside deadzone", Vec2{4, 0}, 50, 0.1, Vec2{}},
		{"deadzone edge", Vec2{5, 0}, 50, 0.1, Vec2{}},
		{"ramp", Vec2{20, 0}, 50, 0.1, Vec2{1.0 / 3, 0}},
		{"at radius", Vec2{0, -50}, 50, 0.1, Vec2{0, -1}},
		{"clamped", Vec2{100, 0}, 50, 0.1, Vec2{1, 0}},
		{"no deadzone", Vec2{25, 0}, 50, 0, Vec2{0.5, 0}},
		{"zero radius", Vec2{10, 0}, 0, 0.1, Vec2{}},
		{"negative radius", Vec2{10, 0}, -5, 0.1, Vec2{}},
		{"deadzone one", Vec2{100, 0}, 50, 1, Vec2{}},
		{"zero displacement", Vec2{}, 50, 0, Vec2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JoystickDirection(tt.d, tt.radius, tt.deadzone)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("JoystickDirection(%v, %v, %v) = %v, want %v", tt.d, tt.radius, tt.deadzone, got, tt.want)
			}
		})
	}
}

func TestJoystickDirectionNeverExceedsUnit(t *testing.T) {
	for _, dist := range []float64{50, 51, 75, 500} {
		for i := 0; i < 3600; i++ {
			angle := float64(i) * 2 * math.Pi / 3600
			d := Vec2{math.Cos(angle) * dist, math.Sin(angle) * dist}
			got := JoystickDirection(d, 50, 0.1)
			if l := got.Len(); l > 1 || l < 1-1e-12 {
				t.Fatalf("|JoystickDirection(%v, 50, 0.1)| = %v, want 1", d, l)
			}
		}
	}
}

func TestJoystickDirectionProperties(t *testing.T) {
	const radius, deadzone = 50.0, 0.2
	for angle := 0.0; angle < 2*math.Pi; angle += math.Pi / 7 {
		for dist := 0.0; dist <= 120; dist += 7 {
			d := Vec2{math.Cos(angle) * dist, math.Sin(angle) * dist}
			got := JoystickDirection(d, radius, deadzone)
			n := dist / radius
			if got.Len() > 1 {
				t.Fatalf("|direction| = %v > 1 for %v", got.Len(), d)
			}
			if n < deadzone && !got.IsZero() {
				t.Fatalf("direction %v inside deadzone for %v", got, d)
			}
			if n >= 1 && math.Abs(got.Len()-1) > 1e-9 {
				t.Fatalf("|direction| = %v beyond radius for %v, want 1", got.Len(), d)
			}
			if n < 1 && math.Abs(got.Len()-1) < 1e-9 {
				t.Fatalf("|direction| = 1 inside radius for %v", d)
			}
			if !got.IsZero() {
				diff := math.Remainder(got.Angle()-d.Angle(), 2*math.Pi)
				if math.Abs(diff) > 1e-9 {
					t.Fatalf("angle %v, want %v for %v", got.Angle(), d.Angle(), d)
				}
			}
		}
	}
}

func TestJoystickScenario(t *testing.T) {
	j := NewJoystick(JoystickConfig{MovementRadius: 50, Deadzone: 0.1})
	var moves []Vec2
	j.OnMove(func(d Vec2) { moves = append(moves, d) })

	center := Vec2{300, 300}
	s := NewTouchSample(1, 320, 300, 0)
	if !j.StartDrag(s, center) {
		t.Fatal("StartDrag refused idle joystick")
	}
	d := j.Direction()
	if math.Abs(d.Len()-(0.4-0.1)/0.9) > 1e-9 || math.Abs(d.Y) > 1e-12 || d.X <= 0 {
		t.Errorf("Direction = %v, want ~(0.333, 0)", d)
	}

	if !j.Drag(s.MovedTo(400, 300)) {
		t.Fatal("Drag refused owner")
	}
	if d := j.Direction(); math.Abs(d.X-1) > 1e-12 || d.Y != 0 {
		t.Errorf("Direction = %v, want (1, 0)", d)
	}

	if !j.EndDrag(1) {
		t.Fatal("EndDrag refused owner")
	}
	if !j.Direction().IsZero() {
		t.Errorf("Direction after EndDrag = %v, want zero", j.Direction())
	}
	if len(moves) != 3 || !moves[2].IsZero() {
		t.Errorf("moves = %v, want 3 with final zero", moves)
	}
	if _, ok := j.ActiveTouch(); ok {
		t.Error("joystick still owned after EndDrag")
	}
}

func TestJoystickSingleOwner(t *testing.T) {
	j := NewJoystick(DefaultJoystickConfig())
	var calls int
	j.OnMove(func(Vec2) { calls++ })

	a := NewTouchSample(1, 0.05, 0, 0)
	b := NewTouchSample(2, -0.05, 0, 0)
	if !j.StartDrag(a, Vec2{}) {
		t.Fatal("first StartDrag refused")
	}
	if j.StartDrag(b, Vec2{1, 1}) {
		t.Error("second StartDrag accepted")
	}
	if id, ok := j.ActiveTouch(); !ok || id != 1 {
		t.Errorf("ActiveTouch = %d, %v; want 1, true", id, ok)
	}
	if j.Center() != (Vec2{}) {
		t.Errorf("Center = %v, refused StartDrag moved it", j.Center())
	}
	if j.Drag(b) {
		t.Error("Drag from non-owner accepted")
	}
	if j.EndDrag(2) {
		t.Error("EndDrag from non-owner accepted")
	}
	if calls != 1 {
		t.Errorf("move callbacks = %d, want 1", calls)
	}
	if j.EndDrag(1) != true || j.EndDrag(1) != false {
		t.Error("EndDrag should succeed exactly once")
	}
}

func TestJoystickEventStore(t *testing.T) {
	j := NewJoystick(JoystickConfig{MovementRadius: 1})
	store := &recordStore{}
	j.SetEventStore(store)

	j.StartDrag(NewTouchSample(4, 2, 0, 0), Vec2{})
	j.EndDrag(4)
	if len(store.events) != 2 {
		t.Fatalf("store events = %d, want 2", len(store.events))
	}
	for i, e := range store.events {
		if e.Type != EventJoystickMove || e.TouchID != 4 {
			t.Errorf("event %d = %+v", i, e)
		}
	}
	if store.events[0].Direction != (Vec2{1, 0}) || !store.events[1].Direction.IsZero() {
		t.Errorf("directions = %v, %v", store.events[0].Direction, store.events[1].Direction)
	}
}
