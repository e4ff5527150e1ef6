package tactile

import "time"

// pinchEpsilon is the smallest baseline distance a pinch scale is measured against.
const pinchEpsilon = 1e-5

// --- Pinch state ---

type pinchState struct {
	ids           [2]int
	down          [2]bool
	remaining     int // pair members still down; 0 means no pinch
	initialDist   float64
	initialCenter Vec2
}

// member returns the pair index of id among the fingers still down, or -1.
func (p *pinchState) member(id int) int {
	for i := range p.ids {
		if p.down[i] && p.ids[i] == id {
			return i
		}
	}
	return -1
}

func (p *pinchState) has(id int) bool { return p.member(id) >= 0 }

// GestureEngine recognizes taps, multi-taps, long presses, drags, swipes and
// two-finger pinches from the touches routed to it.
//
// The engine is not safe for concurrent use. Its TimerPort must run callbacks
// on the goroutine that calls the Handle methods.
type GestureEngine struct {
	cfg    GestureConfig
	timers TimerPort
	clock  Clock

	touches touchTable
	pinch   pinchState
	downSeq uint64
	downBuf []*touchEntry

	onGesture handlerList[Gesture]
	store     EventStore
}

// NewGestureEngine creates an engine that schedules its timeouts on timers and
// reads the time from clock. TickTimers and WallTimers provide both.
func NewGestureEngine(cfg GestureConfig, timers TimerPort, clock Clock) *GestureEngine {
	return &GestureEngine{
		cfg:     cfg,
		timers:  timers,
		clock:   clock,
		downBuf: make([]*touchEntry, 0, maxTouches),
	}
}

// Config returns the engine thresholds.
func (e *GestureEngine) Config() GestureConfig { return e.cfg }

// SetConfig replaces the engine thresholds. Timers already scheduled keep
// their original delay.
func (e *GestureEngine) SetConfig(cfg GestureConfig) { e.cfg = cfg }

// OnGesture registers a callback for recognized gestures.
func (e *GestureEngine) OnGesture(fn func(Gesture)) CallbackHandle {
	return e.onGesture.add(fn)
}

// SetEventStore forwards gestures to store. Pass nil to detach.
func (e *GestureEngine) SetEventStore(store EventStore) { e.store = store }

// Tracking reports whether the engine holds state for touchID, either because
// it is down or because its tap sequence is still open.
func (e *GestureEngine) Tracking(touchID int) bool {
	return e.touches.find(touchID) != nil
}

// TapCount returns the taps counted so far in touchID's open tap sequence.
func (e *GestureEngine) TapCount(touchID int) int {
	if ent := e.touches.find(touchID); ent != nil {
		return ent.tapCount
	}
	return 0
}

// Pinching reports whether two pinch fingers are down and being measured.
func (e *GestureEngine) Pinching() bool { return e.pinch.remaining == 2 }

// Reset cancels every timer and forgets all touches without emitting anything.
func (e *GestureEngine) Reset() {
	for i := range e.touches.slots {
		s := &e.touches.slots[i]
		if s.used {
			e.cancelTimers(s.id)
		}
	}
	e.touches.reset()
	e.pinch = pinchState{}
}

func longPressKey(id int) TimerKey   { return TimerKey{TouchID: id, Purpose: TimerLongPress} }
func tapFinalizeKey(id int) TimerKey { return TimerKey{TouchID: id, Purpose: TimerTapFinalize} }

func (e *GestureEngine) cancelTimers(id int) {
	e.timers.Cancel(longPressKey(id))
	e.timers.Cancel(tapFinalizeKey(id))
}

// HandleTouchDown starts tracking t. active lists every touch currently
// routed to this engine, t included; it is used to refresh positions and may
// be nil. A lifted touch with the same ID whose tap sequence is still open
// carries its tap count into the new touch.
func (e *GestureEngine) HandleTouchDown(t TouchSample, active []TouchSample) {
	now := e.clock.Now()
	e.cancelTimers(t.ID)

	var tapCount int
	var lastTap time.Duration
	if prev := e.touches.find(t.ID); prev != nil && !prev.down && prev.tapCount > 0 {
		tapCount = prev.tapCount
		lastTap = prev.lastTapTime
	}

	ent, evicted, didEvict, ok := e.touches.alloc(t.ID)
	if !ok {
		logger.Debugf("gesture engine full, dropping touch %d", t.ID)
		return
	}
	if didEvict {
		logger.Debugf("evicting lifted touch %d for touch %d", evicted, t.ID)
		e.cancelTimers(evicted)
	}

	e.downSeq++
	*ent = touchEntry{
		used:        true,
		id:          t.ID,
		down:        true,
		seq:         e.downSeq,
		startTime:   now,
		start:       t.Pos(),
		current:     t.Pos(),
		tapCount:    tapCount,
		lastTapTime: lastTap,
	}

	id := t.ID
	e.timers.Schedule(longPressKey(id), e.cfg.LongPress.Duration, func() { e.longPressFired(id) })

	e.refresh(active)
	if e.pinch.remaining != 0 {
		return
	}
	down := e.touches.down(e.downBuf[:0])
	e.downBuf = down[:0]
	if len(down) != 2 {
		return
	}
	a, b := down[0], down[1]
	e.pinch = pinchState{
		ids:           [2]int{a.id, b.id},
		remaining:     2,
		initialDist:   Dist(a.current, b.current),
		initialCenter: Midpoint(a.current, b.current),
	}
	e.emit(Gesture{
		Kind:    GesturePinchStart,
		TouchID: id,
		Details: PinchDetails{TouchIDs: e.pinch.ids, Scale: 1, Center: e.pinch.initialCenter},
	}, e.pinch.initialCenter)
}

// HandleTouchMove updates t's position. Moving past the drag threshold marks
// the touch as dragging and cancels its long press. Moving a pinch finger
// emits Pinch Move whenever the scale differs from 1 by more than the pinch
// threshold.
func (e *GestureEngine) HandleTouchMove(t TouchSample, active []TouchSample) {
	ent := e.touches.find(t.ID)
	if ent == nil || !ent.down {
		logger.Debugf("move for untracked touch %d ignored", t.ID)
		return
	}
	e.refresh(active)
	e.moveTo(ent, t.Pos())

	if e.pinch.remaining != 2 || !e.pinch.has(t.ID) || e.pinch.initialDist <= pinchEpsilon {
		return
	}
	a := e.touches.find(e.pinch.ids[0])
	b := e.touches.find(e.pinch.ids[1])
	if a == nil || b == nil {
		return
	}
	scale := Dist(a.current, b.current) / e.pinch.initialDist
	if abs(scale-1) <= e.cfg.PinchThreshold {
		return
	}
	center := Midpoint(a.current, b.current)
	e.emit(Gesture{
		Kind:    GesturePinchMove,
		TouchID: t.ID,
		Details: PinchDetails{TouchIDs: e.pinch.ids, Scale: scale, Center: center},
	}, center)
}

// HandleTouchUp ends t. A still, short touch counts a tap and (re)starts the
// tap-finalize timer; a dragged touch emits a swipe or Drag End. Lifting a
// pinch finger removes it from the pair, and Pinch End fires once both are up.
func (e *GestureEngine) HandleTouchUp(t TouchSample, active []TouchSample) {
	e.timers.Cancel(longPressKey(t.ID))

	ent := e.touches.find(t.ID)
	if ent != nil && ent.down {
		e.moveTo(ent, t.Pos())
		e.release(ent)
	} else {
		logger.Debugf("release for untracked touch %d ignored", t.ID)
	}

	e.leavePinch(t.ID, t.Pos())
	e.refresh(active)
}

func (e *GestureEngine) release(ent *touchEntry) {
	now := e.clock.Now()
	elapsed := now - ent.startTime
	ent.down = false
	id := ent.id

	switch {
	case !ent.dragging && elapsed < e.cfg.LongPress.Duration:
		if ent.tapCount > 0 && now-ent.lastTapTime < e.cfg.MaxTapInterval.Duration {
			ent.tapCount++
		} else {
			if ent.tapCount > 0 {
				// The previous sequence expired while this touch was down.
				e.emitTaps(id, ent.tapCount, ent.current)
			}
			ent.tapCount = 1
		}
		ent.lastTapTime = now
		e.timers.Schedule(tapFinalizeKey(id), e.cfg.MaxTapInterval.Duration, func() { e.tapFinalizeFired(id) })

	case !ent.dragging:
		// Held past the long-press duration but the timer never ran.
		pos := ent.current
		e.timers.Cancel(tapFinalizeKey(id))
		e.touches.remove(id)
		e.emit(Gesture{Kind: GestureLongPress, TouchID: id, Details: LongPressDetails{X: pos.X, Y: pos.Y}}, pos)

	default:
		d := ent.current.Sub(ent.start)
		pos := ent.current
		e.timers.Cancel(tapFinalizeKey(id))
		e.touches.remove(id)
		if dist := d.Len(); dist > e.cfg.MinSwipeDistance {
			kind := swipeKind(d.X, d.Y)
			e.emit(Gesture{Kind: kind, TouchID: id, Details: SwipeDetails{Direction: kind, Distance: dist}}, pos)
		} else {
			e.emit(Gesture{Kind: GestureDragEnd, TouchID: id, Details: DragDetails{DX: d.X, DY: d.Y}}, pos)
		}
	}
}

func (e *GestureEngine) leavePinch(id int, pos Vec2) {
	p := &e.pinch
	i := p.member(id)
	if i < 0 {
		return
	}
	ids := p.ids
	p.down[i] = false
	p.remaining--
	if p.remaining > 0 {
		return
	}
	center := p.initialCenter
	*p = pinchState{}
	e.emit(Gesture{
		Kind:    GesturePinchEnd,
		TouchID: id,
		Details: PinchDetails{TouchIDs: ids, Scale: 1, Center: center},
	}, pos)
}

func (e *GestureEngine) moveTo(ent *touchEntry, p Vec2) {
	ent.current = p
	if ent.dragging {
		return
	}
	th := e.cfg.DragThreshold
	if p.Sub(ent.start).LenSq() > th*th {
		ent.dragging = true
		e.timers.Cancel(longPressKey(ent.id))
	}
}

// refresh copies current positions from active into tracked touches that are
// down, without evaluating drag state.
func (e *GestureEngine) refresh(active []TouchSample) {
	for _, a := range active {
		if ent := e.touches.find(a.ID); ent != nil && ent.down {
			ent.current = a.Pos()
		}
	}
}

func (e *GestureEngine) longPressFired(id int) {
	ent := e.touches.find(id)
	if ent == nil || !ent.down || ent.dragging {
		return
	}
	pos := ent.current
	e.timers.Cancel(tapFinalizeKey(id))
	e.touches.remove(id)
	e.emit(Gesture{Kind: GestureLongPress, TouchID: id, Details: LongPressDetails{X: pos.X, Y: pos.Y}}, pos)
}

func (e *GestureEngine) tapFinalizeFired(id int) {
	ent := e.touches.find(id)
	if ent == nil {
		return
	}
	count, pos := ent.tapCount, ent.current
	ent.tapCount = 0
	if !ent.down {
		e.touches.remove(id)
	}
	if count > 0 {
		e.emitTaps(id, count, pos)
	}
}

func (e *GestureEngine) emitTaps(id, count int, pos Vec2) {
	e.emit(Gesture{Kind: tapKind(count), TouchID: id, Details: TapDetails{Count: count}}, pos)
}

func (e *GestureEngine) emit(g Gesture, pos Vec2) {
	e.onGesture.fire(g)
	if e.store != nil {
		e.store.EmitEvent(InputEvent{
			Type:    EventGesture,
			TouchID: g.TouchID,
			X:       pos.X,
			Y:       pos.Y,
			Gesture: g.Kind,
			Details: g.Details,
		})
	}
}
