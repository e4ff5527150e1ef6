package tactile

import (
	"math"
	"testing"
)

func TestScreenToNormalized(t *testing.T) {
	tests := []struct {
		name   string
		sx, sy float64
		want   Vec2
	}{
		{"center", 400, 300, Vec2{0, 0}},
		{"top left", 0, 0, Vec2{-4.0 / 3, -1}},
		{"bottom right", 800, 600, Vec2{4.0 / 3, 1}},
		{"right middle", 800, 300, Vec2{4.0 / 3, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScreenToNormalized(tt.sx, tt.sy, 800, 600)
			if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
				t.Errorf("ScreenToNormalized(%v, %v) = %v, want %v", tt.sx, tt.sy, got, tt.want)
			}
			sx, sy := NormalizedToScreen(got, 800, 600)
			if math.Abs(sx-tt.sx) > 1e-9 || math.Abs(sy-tt.sy) > 1e-9 {
				t.Errorf("NormalizedToScreen(%v) = (%v, %v), want (%v, %v)", got, sx, sy, tt.sx, tt.sy)
			}
		})
	}
}

func TestScreenToNormalizedIsotropic(t *testing.T) {
	// 100 pixels is the same normalized distance on either axis.
	o := ScreenToNormalized(400, 300, 800, 600)
	dx := Dist(o, ScreenToNormalized(500, 300, 800, 600))
	dy := Dist(o, ScreenToNormalized(400, 400, 800, 600))
	if math.Abs(dx-dy) > 1e-12 {
		t.Errorf("horizontal %v != vertical %v", dx, dy)
	}
}

func TestScreenToNormalizedEmptyScreen(t *testing.T) {
	if got := ScreenToNormalized(10, 10, 0, 600); got != (Vec2{}) {
		t.Errorf("ScreenToNormalized on zero width = %v, want zero", got)
	}
	if x, y := NormalizedToScreen(Vec2{1, 1}, 800, 0); x != 0 || y != 0 {
		t.Errorf("NormalizedToScreen on zero height = (%v, %v), want zero", x, y)
	}
}
