package tactile

import "time"

// maxTouches bounds how many touch IDs a GestureEngine tracks at once,
// including lifted touches whose tap sequence is still open.
const maxTouches = 10

// --- Per-touch state ---

type touchEntry struct {
	used        bool
	id          int
	down        bool
	seq         uint64 // touch-down order, used to order pinch pairs
	startTime   time.Duration
	start       Vec2
	current     Vec2
	dragging    bool
	tapCount    int
	lastTapTime time.Duration
}

// touchTable maps caller touch IDs to a fixed array of slots.
type touchTable struct {
	slots [maxTouches]touchEntry
}

// find returns the entry for id, or nil if id is not tracked.
func (tt *touchTable) find(id int) *touchEntry {
	for i := range tt.slots {
		if tt.slots[i].used && tt.slots[i].id == id {
			return &tt.slots[i]
		}
	}
	return nil
}

// alloc returns a slot for id: its existing slot, a free one, or the slot of
// the lifted entry with the oldest tap. evicted reports the ID whose entry
// was displaced. ok is false when every slot holds a touch that is down.
func (tt *touchTable) alloc(id int) (e *touchEntry, evicted int, didEvict, ok bool) {
	if e := tt.find(id); e != nil {
		return e, 0, false, true
	}
	for i := range tt.slots {
		if !tt.slots[i].used {
			return &tt.slots[i], 0, false, true
		}
	}
	victim := -1
	for i := range tt.slots {
		s := &tt.slots[i]
		if s.down {
			continue
		}
		if victim < 0 || s.lastTapTime < tt.slots[victim].lastTapTime {
			victim = i
		}
	}
	if victim < 0 {
		return nil, 0, false, false
	}
	return &tt.slots[victim], tt.slots[victim].id, true, true
}

// remove frees the slot held by id.
func (tt *touchTable) remove(id int) {
	if e := tt.find(id); e != nil {
		*e = touchEntry{}
	}
}

// down appends every entry whose touch is currently down, in touch-down order.
func (tt *touchTable) down(buf []*touchEntry) []*touchEntry {
	for i := range tt.slots {
		if tt.slots[i].used && tt.slots[i].down {
			buf = append(buf, &tt.slots[i])
		}
	}
	for i := 1; i < len(buf); i++ {
		for j := i; j > 0 && buf[j].seq < buf[j-1].seq; j-- {
			buf[j], buf[j-1] = buf[j-1], buf[j]
		}
	}
	return buf
}

func (tt *touchTable) reset() {
	for i := range tt.slots {
		tt.slots[i] = touchEntry{}
	}
}
