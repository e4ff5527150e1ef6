package tactile

import "github.com/hajimehoshi/ebiten/v2"

// MouseTouchID is the touch ID EbitenSource reports for the left mouse button.
const MouseTouchID = -1

// ScreenToNormalized maps a screen pixel to the normalized touch space of a
// w x h screen: y runs from -1 at the top edge to 1 at the bottom edge and x
// is scaled by the aspect ratio, so distances are isotropic.
func ScreenToNormalized(sx, sy float64, w, h int) Vec2 {
	if w <= 0 || h <= 0 {
		return Vec2{}
	}
	aspect := float64(w) / float64(h)
	return Vec2{
		X: (2*sx/float64(w) - 1) * aspect,
		Y: 2*sy/float64(h) - 1,
	}
}

// NormalizedToScreen is the inverse of ScreenToNormalized.
func NormalizedToScreen(p Vec2, w, h int) (sx, sy float64) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	aspect := float64(w) / float64(h)
	sx = (p.X/aspect + 1) * float64(w) / 2
	sy = (p.Y + 1) * float64(h) / 2
	return sx, sy
}

// EbitenSource polls ebiten touches, and optionally the left mouse button,
// into frames for Router.Update. Call Poll from Game.Update.
type EbitenSource struct {
	// Width and Height are the logical screen size returned by Game.Layout.
	Width, Height int
	// Mouse reports the left mouse button as touch MouseTouchID.
	Mouse bool

	touchIDs []ebiten.TouchID
}

// NewEbitenSource returns a source for a w x h logical screen with mouse
// emulation enabled.
func NewEbitenSource(w, h int) *EbitenSource {
	return &EbitenSource{Width: w, Height: h, Mouse: true}
}

// Poll appends the contacts currently down, in normalized space, to buf.
func (s *EbitenSource) Poll(buf []TouchPoint) []TouchPoint {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	for _, tid := range s.touchIDs {
		tx, ty := ebiten.TouchPosition(tid)
		p := ScreenToNormalized(float64(tx), float64(ty), s.Width, s.Height)
		buf = append(buf, TouchPoint{ID: int(tid), X: p.X, Y: p.Y})
	}
	if s.Mouse && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		p := ScreenToNormalized(float64(mx), float64(my), s.Width, s.Height)
		buf = append(buf, TouchPoint{ID: MouseTouchID, X: p.X, Y: p.Y})
	}
	return buf
}
