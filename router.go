package tactile

import "sort"

// routeTarget is one registered controller and the shape that captures for it.
type routeTarget struct {
	kind     TargetKind
	shape    HitShape
	engine   *GestureEngine
	joystick *JoystickController
	center   Vec2
	button   *ButtonController
}

// routedTouch is a touch seen in the previous frame. target is -1 when the
// touch landed outside every target or its target refused capture.
type routedTouch struct {
	sample TouchSample
	target int
}

// Router diffs per-frame touch snapshots into down, move and up events and
// delivers each touch only to the target that captured it on touch-down.
// Targets are hit-tested in registration order; the first whose shape
// contains the down position gets the touch for its whole lifetime.
//
// Router is not safe for concurrent use; drive it from the same loop that
// services the TimerPort of its gesture engines.
type Router struct {
	clock   Clock
	targets []routeTarget
	touches map[int]*routedTouch

	// Synthetic input.
	injectQueue []syntheticTouch
	injected    map[int]Vec2
	script      *Script

	// Per-update scratch.
	frame   map[int]Vec2
	upPos   map[int]Vec2
	ids     []int
	actives map[*GestureEngine][]TouchSample
}

// NewRouter creates a router that stamps touch-down times from clock.
func NewRouter(clock Clock) *Router {
	return &Router{
		clock:    clock,
		touches:  make(map[int]*routedTouch),
		injected: make(map[int]Vec2),
		frame:    make(map[int]Vec2),
		upPos:    make(map[int]Vec2),
		actives:  make(map[*GestureEngine][]TouchSample),
	}
}

// AddGestureArea routes touches that land inside shape to engine.
func (r *Router) AddGestureArea(shape HitShape, engine *GestureEngine) {
	r.targets = append(r.targets, routeTarget{kind: TargetGestureArea, shape: shape, engine: engine})
}

// AddJoystick routes touches that land inside shape to j, centered on center.
// A touch refused because another touch already owns j is consumed without
// being captured.
func (r *Router) AddJoystick(shape HitShape, center Vec2, j *JoystickController) {
	r.targets = append(r.targets, routeTarget{kind: TargetJoystick, shape: shape, joystick: j, center: center})
}

// AddButton routes touches that land inside shape to b.
func (r *Router) AddButton(shape HitShape, b *ButtonController) {
	r.targets = append(r.targets, routeTarget{kind: TargetButton, shape: shape, button: b})
}

// Captured returns the kind of target that owns touchID.
func (r *Router) Captured(touchID int) (TargetKind, bool) {
	rt, ok := r.touches[touchID]
	if !ok || rt.target < 0 {
		return TargetNone, false
	}
	return r.targets[rt.target].kind, true
}

// Samples appends the captured touches of the last frame to buf, ordered by ID.
func (r *Router) Samples(buf []TouchSample) []TouchSample {
	start := len(buf)
	for _, rt := range r.touches {
		if rt.target >= 0 {
			buf = append(buf, rt.sample)
		}
	}
	out := buf[start:]
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return buf
}

// Update consumes one frame of contacts. Touches missing from frame that were
// present last frame are released first, then new touches are hit-tested and
// pressed, then remaining touches that changed position are moved. Within
// each phase touches are handled in ascending ID order. frame is not retained.
func (r *Router) Update(frame []TouchPoint) {
	if r.script != nil {
		r.script.step(r)
	}
	r.applyInjected()

	clear(r.frame)
	for _, p := range frame {
		r.frame[p.ID] = Vec2{X: p.X, Y: p.Y}
	}
	for id, p := range r.injected {
		r.frame[id] = p
	}

	// Ups.
	r.ids = r.ids[:0]
	for id := range r.touches {
		if _, ok := r.frame[id]; !ok {
			r.ids = append(r.ids, id)
		}
	}
	sort.Ints(r.ids)
	for _, id := range r.ids {
		rt := r.touches[id]
		delete(r.touches, id)
		if p, ok := r.upPos[id]; ok {
			rt.sample = rt.sample.MovedTo(p.X, p.Y)
		}
		if rt.target >= 0 {
			r.collectActive()
			r.release(rt)
		}
	}
	clear(r.upPos)

	// Downs.
	r.ids = r.ids[:0]
	for id := range r.frame {
		if _, ok := r.touches[id]; !ok {
			r.ids = append(r.ids, id)
		}
	}
	sort.Ints(r.ids)
	for _, id := range r.ids {
		p := r.frame[id]
		rt := &routedTouch{sample: NewTouchSample(id, p.X, p.Y, r.clock.Now()), target: -1}
		r.touches[id] = rt
		r.press(rt)
	}

	// Moves.
	r.ids = r.ids[:0]
	for id, rt := range r.touches {
		if p := r.frame[id]; rt.target >= 0 && p != rt.sample.Pos() {
			r.ids = append(r.ids, id)
		}
	}
	sort.Ints(r.ids)
	for _, id := range r.ids {
		rt := r.touches[id]
		p := r.frame[id]
		rt.sample = rt.sample.MovedTo(p.X, p.Y)
		r.collectActive()
		r.move(rt)
	}
}

// Reset forgets every touch and pending injection without delivering ups.
// Controllers keep their own state; reset them separately.
func (r *Router) Reset() {
	clear(r.touches)
	clear(r.injected)
	clear(r.upPos)
	r.injectQueue = r.injectQueue[:0]
}

func (r *Router) press(rt *routedTouch) {
	pos := rt.sample.Pos()
	for i := range r.targets {
		tg := &r.targets[i]
		if tg.shape == nil || !tg.shape.Contains(pos.X, pos.Y) {
			continue
		}
		switch tg.kind {
		case TargetGestureArea:
			rt.target = i
			r.collectActive()
			tg.engine.HandleTouchDown(rt.sample, r.actives[tg.engine])
		case TargetJoystick:
			if tg.joystick.StartDrag(rt.sample, tg.center) {
				rt.target = i
			}
		case TargetButton:
			if tg.button.HandlePress(rt.sample) {
				rt.target = i
			}
		}
		return
	}
	logger.Debugf("touch %d at (%.3f, %.3f) hit no target", rt.sample.ID, pos.X, pos.Y)
}

func (r *Router) move(rt *routedTouch) {
	tg := &r.targets[rt.target]
	switch tg.kind {
	case TargetGestureArea:
		tg.engine.HandleTouchMove(rt.sample, r.actives[tg.engine])
	case TargetJoystick:
		tg.joystick.Drag(rt.sample)
	}
}

func (r *Router) release(rt *routedTouch) {
	tg := &r.targets[rt.target]
	switch tg.kind {
	case TargetGestureArea:
		tg.engine.HandleTouchUp(rt.sample, r.actives[tg.engine])
	case TargetJoystick:
		tg.joystick.EndDrag(rt.sample.ID)
	case TargetButton:
		tg.button.HandleRelease(rt.sample)
	}
}

// collectActive rebuilds, per gesture engine, the samples of touches it has
// captured that are still tracked, with positions from the current frame.
func (r *Router) collectActive() {
	for eng, buf := range r.actives {
		r.actives[eng] = buf[:0]
	}
	for id, rt := range r.touches {
		if rt.target < 0 {
			continue
		}
		tg := &r.targets[rt.target]
		if tg.kind != TargetGestureArea {
			continue
		}
		s := rt.sample
		if p, ok := r.frame[id]; ok {
			s = s.MovedTo(p.X, p.Y)
		}
		r.actives[tg.engine] = append(r.actives[tg.engine], s)
	}
	for eng, buf := range r.actives {
		sort.Slice(buf, func(i, j int) bool { return buf[i].ID < buf[j].ID })
		r.actives[eng] = buf
	}
}
