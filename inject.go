package tactile

// syntheticTouch is a single injected touch event. Coordinates are in the
// same space as the frames passed to Router.Update.
type syntheticTouch struct {
	id      int
	x, y    float64
	pressed bool
}

// InjectPress queues a touch-down for id at (x, y). The touch stays down in
// every following frame until a matching InjectRelease is applied. Queued
// events are applied one per Update.
func (r *Router) InjectPress(id int, x, y float64) {
	r.injectQueue = append(r.injectQueue, syntheticTouch{id: id, x: x, y: y, pressed: true})
}

// InjectMove queues a move of the held synthetic touch id to (x, y).
func (r *Router) InjectMove(id int, x, y float64) {
	r.injectQueue = append(r.injectQueue, syntheticTouch{id: id, x: x, y: y, pressed: true})
}

// InjectRelease queues the release of synthetic touch id at (x, y).
func (r *Router) InjectRelease(id int, x, y float64) {
	r.injectQueue = append(r.injectQueue, syntheticTouch{id: id, x: x, y: y})
}

// InjectTap queues a press followed by a release at the same position.
// Consumes two frames.
func (r *Router) InjectTap(id int, x, y float64) {
	r.InjectPress(id, x, y)
	r.InjectRelease(id, x, y)
}

// InjectDrag queues a full drag sequence: press at from, linearly
// interpolated moves over frames-2 intermediate frames, and release at to.
// The total sequence consumes frames frames; the minimum is 2.
func (r *Router) InjectDrag(id int, from, to Vec2, frames int) {
	if frames < 2 {
		frames = 2
	}
	r.InjectPress(id, from.X, from.Y)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		r.InjectMove(id, from.X+(to.X-from.X)*t, from.Y+(to.Y-from.Y)*t)
	}
	r.InjectRelease(id, to.X, to.Y)
}

// Injecting reports whether synthetic events are still queued.
func (r *Router) Injecting() bool { return len(r.injectQueue) > 0 }

// applyInjected pops one event from the inject queue into the set of held
// synthetic touches. A release records its position for the up delivered by
// this Update.
func (r *Router) applyInjected() {
	if len(r.injectQueue) == 0 {
		return
	}
	evt := r.injectQueue[0]
	copy(r.injectQueue, r.injectQueue[1:])
	r.injectQueue = r.injectQueue[:len(r.injectQueue)-1]

	if evt.pressed {
		r.injected[evt.id] = Vec2{X: evt.x, Y: evt.y}
		return
	}
	if _, held := r.injected[evt.id]; !held {
		logger.Debugf("injected release for touch %d that is not held", evt.id)
		return
	}
	delete(r.injected, evt.id)
	r.upPos[evt.id] = Vec2{X: evt.x, Y: evt.y}
}
