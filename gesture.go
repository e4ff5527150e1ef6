package tactile

import "fmt"

// GestureKind identifies a recognized gesture.
type GestureKind uint8

const (
	GestureTap        GestureKind = iota // one tap, reported after the tap interval
	GestureDoubleTap                     // two taps in quick succession
	GestureTripleTap                     // three or more taps in quick succession
	GestureLongPress                     // held still for the long-press duration
	GestureSwipeRight                    // dragged past the swipe distance, mostly +X
	GestureSwipeLeft                     // dragged past the swipe distance, mostly -X
	GestureSwipeDown                     // dragged past the swipe distance, mostly +Y
	GestureSwipeUp                       // dragged past the swipe distance, mostly -Y
	GestureDragEnd                       // dragged, released short of the swipe distance
	GesturePinchStart                    // a second finger joined the first
	GesturePinchMove                     // pinch distance changed past the threshold
	GesturePinchEnd                      // both pinch fingers lifted
)

var gestureNames = [...]string{
	GestureTap:        "Tap",
	GestureDoubleTap:  "Double Tap",
	GestureTripleTap:  "Triple Tap",
	GestureLongPress:  "Long Press",
	GestureSwipeRight: "Swipe Right",
	GestureSwipeLeft:  "Swipe Left",
	GestureSwipeDown:  "Swipe Down",
	GestureSwipeUp:    "Swipe Up",
	GestureDragEnd:    "Drag End",
	GesturePinchStart: "Pinch Start",
	GesturePinchMove:  "Pinch Move",
	GesturePinchEnd:   "Pinch End",
}

// String returns the display name, e.g. "Double Tap" or "Swipe Left".
func (k GestureKind) String() string {
	if int(k) < len(gestureNames) {
		return gestureNames[k]
	}
	return fmt.Sprintf("GestureKind(%d)", k)
}

// IsTap reports whether k is one of the tap-count gestures.
func (k GestureKind) IsTap() bool {
	return k == GestureTap || k == GestureDoubleTap || k == GestureTripleTap
}

// IsSwipe reports whether k is one of the four swipe gestures.
func (k GestureKind) IsSwipe() bool {
	return k >= GestureSwipeRight && k <= GestureSwipeUp
}

// tapKind maps a tap count to its gesture.
func tapKind(count int) GestureKind {
	switch {
	case count >= 3:
		return GestureTripleTap
	case count == 2:
		return GestureDoubleTap
	default:
		return GestureTap
	}
}

// swipeKind picks the swipe direction from the dominant axis of (dx, dy).
// Ties go to the vertical axis.
func swipeKind(dx, dy float64) GestureKind {
	if abs(dx) > abs(dy) {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Gesture is one recognized gesture. Details holds the payload for Kind; a
// type switch over it is exhaustive across the *Details types in this package.
type Gesture struct {
	Kind    GestureKind
	TouchID int
	Details GestureDetails
}

// Name returns the display name of the gesture kind.
func (g Gesture) Name() string { return g.Kind.String() }

func (g Gesture) String() string {
	if g.Details == nil {
		return g.Kind.String()
	}
	return fmt.Sprintf("%s %s", g.Kind, g.Details)
}

// GestureDetails is implemented only by the detail types in this package.
type GestureDetails interface {
	gestureDetails()
	String() string
}

// TapDetails accompanies Tap, Double Tap and Triple Tap.
type TapDetails struct {
	Count int
}

// LongPressDetails accompanies Long Press.
type LongPressDetails struct {
	X, Y float64
}

// SwipeDetails accompanies the four swipe gestures.
type SwipeDetails struct {
	Direction GestureKind
	Distance  float64
}

// DragDetails accompanies Drag End with the displacement from start to release.
type DragDetails struct {
	DX, DY float64
}

// PinchDetails accompanies Pinch Start, Pinch Move and Pinch End. Scale is the
// current finger distance divided by the baseline distance.
type PinchDetails struct {
	TouchIDs [2]int
	Scale    float64
	Center   Vec2
}

func (TapDetails) gestureDetails()       {}
func (LongPressDetails) gestureDetails() {}
func (SwipeDetails) gestureDetails()     {}
func (DragDetails) gestureDetails()      {}
func (PinchDetails) gestureDetails()     {}

func (d TapDetails) String() string { return fmt.Sprintf("count:%d", d.Count) }

func (d LongPressDetails) String() string { return fmt.Sprintf("x:%.2f, y:%.2f", d.X, d.Y) }

func (d SwipeDetails) String() string { return fmt.Sprintf("distance:%.2f", d.Distance) }

func (d DragDetails) String() string { return fmt.Sprintf("dx:%.2f, dy:%.2f", d.DX, d.DY) }

func (d PinchDetails) String() string {
	return fmt.Sprintf("scale:%.2f, touch_ids:%v", d.Scale, d.TouchIDs)
}
