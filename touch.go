package tactile

import "time"

// TouchSample is one touch update delivered to a controller. StartX, StartY
// and StartTime are fixed when the touch goes down; X and Y follow the finger.
// IDs must be unique among concurrently active touches and may be reused only
// after the previous touch with that ID has been released.
type TouchSample struct {
	ID        int
	X, Y      float64
	StartX    float64
	StartY    float64
	StartTime time.Duration
}

// NewTouchSample returns a sample for a touch that went down at (x, y) at the
// given time.
func NewTouchSample(id int, x, y float64, now time.Duration) TouchSample {
	return TouchSample{ID: id, X: x, Y: y, StartX: x, StartY: y, StartTime: now}
}

// Pos returns the current position.
func (t TouchSample) Pos() Vec2 { return Vec2{t.X, t.Y} }

// Start returns the position at touch-down.
func (t TouchSample) Start() Vec2 { return Vec2{t.StartX, t.StartY} }

// MovedTo returns a copy of t with its current position replaced.
func (t TouchSample) MovedTo(x, y float64) TouchSample {
	t.X, t.Y = x, y
	return t
}

// TouchPoint is a raw position for one touch in a single input frame, as
// reported by an input source before routing.
type TouchPoint struct {
	ID   int
	X, Y float64
}

// --- Hit shapes ---

// HitShape decides whether a point in touch space falls on a target.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	var positive, negative bool
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}
