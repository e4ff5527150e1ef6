//go:build linux

// Package evdev reads multi-touch contacts from a Linux input device and
// turns them into frames for tactile.Router.
//
// Only the type B multi-touch protocol is understood: contacts are tracked
// per ABS_MT_SLOT, begin and end with ABS_MT_TRACKING_ID, and a frame is
// complete at SYN_REPORT.
package evdev

import (
	goevdev "github.com/gvalkov/golang-evdev"

	"github.com/phanxgames/tactile"
)

// MaxSlots is the number of multi-touch slots a Decoder tracks.
const MaxSlots = 10

// Axis is the raw value range a device reports for one coordinate.
type Axis struct {
	Min, Max int32
}

// normalize maps v into [-1, 1].
func (a Axis) normalize(v int32) float64 {
	span := float64(a.Max - a.Min)
	if span <= 0 {
		return 0
	}
	return float64(v-a.Min)/span*2 - 1
}

type slotState struct {
	active bool
	id     int32
	x, y   int32
}

// Decoder folds raw input events into frames of normalized touch points.
// Y grows downward as on the device; X is scaled by Aspect.
type Decoder struct {
	X, Y Axis
	// Aspect scales X into [-Aspect, Aspect]. Zero means 1.
	Aspect float64

	slot  int
	slots [MaxSlots]slotState
	frame []tactile.TouchPoint
}

// NewDecoder returns a decoder for a device with the given axis ranges.
func NewDecoder(x, y Axis) *Decoder {
	d := &Decoder{X: x, Y: y}
	if h := float64(y.Max - y.Min); h > 0 {
		d.Aspect = float64(x.Max-x.Min) / h
	}
	return d
}

// Feed consumes one event. When ev completes a frame, Feed returns the
// contacts currently down and true. The returned slice is reused by the next
// completed frame.
func (d *Decoder) Feed(ev *goevdev.InputEvent) ([]tactile.TouchPoint, bool) {
	switch ev.Type {
	case goevdev.EV_ABS:
		d.abs(ev)
	case goevdev.EV_SYN:
		if ev.Code == goevdev.SYN_REPORT {
			return d.report(), true
		}
	}
	return nil, false
}

func (d *Decoder) abs(ev *goevdev.InputEvent) {
	switch ev.Code {
	case goevdev.ABS_MT_SLOT:
		d.slot = int(ev.Value)
		return
	}
	if d.slot < 0 || d.slot >= MaxSlots {
		return
	}
	s := &d.slots[d.slot]
	switch ev.Code {
	case goevdev.ABS_MT_TRACKING_ID:
		if ev.Value < 0 {
			s.active = false
			return
		}
		s.active = true
		s.id = ev.Value
	case goevdev.ABS_MT_POSITION_X:
		s.x = ev.Value
	case goevdev.ABS_MT_POSITION_Y:
		s.y = ev.Value
	}
}

func (d *Decoder) report() []tactile.TouchPoint {
	aspect := d.Aspect
	if aspect == 0 {
		aspect = 1
	}
	d.frame = d.frame[:0]
	for i := range d.slots {
		s := &d.slots[i]
		if !s.active {
			continue
		}
		d.frame = append(d.frame, tactile.TouchPoint{
			ID: int(s.id),
			X:  d.X.normalize(s.x) * aspect,
			Y:  d.Y.normalize(s.y),
		})
	}
	return d.frame
}

// Reset forgets every contact, as after a SYN_DROPPED.
func (d *Decoder) Reset() {
	d.slot = 0
	d.slots = [MaxSlots]slotState{}
}
