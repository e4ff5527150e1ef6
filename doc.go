// Package tactile turns raw touch input into game-ready controls: a gesture
// recognizer, a virtual joystick and a button latch, plus the routing that
// decides which of them owns each touch.
//
// # Quick start
//
// Build the controllers, register them with a [Router] in hit-test priority
// order, then feed the router one frame of contacts per tick:
//
//	timers := tactile.NewTickTimers()
//	engine := tactile.NewGestureEngine(tactile.DefaultGestureConfig(), timers, timers)
//	engine.OnGesture(func(g tactile.Gesture) { log.Println(g) })
//
//	router := tactile.NewRouter(timers)
//	router.AddButton(tactile.HitCircle{CenterX: 0.9, CenterY: 0.6, Radius: 0.15}, button)
//	router.AddJoystick(tactile.HitCircle{CenterX: -0.9, CenterY: 0.6, Radius: 0.25}, center, joystick)
//	router.AddGestureArea(tactile.HitRect{X: -1.4, Y: -1, Width: 2.8, Height: 2}, engine)
//
//	func (g *Game) Update() error {
//		g.frame = g.source.Poll(g.frame[:0])
//		g.router.Update(g.frame)
//		g.timers.Advance(time.Second / time.Duration(ebiten.TPS()))
//		return nil
//	}
//
// # Coordinates
//
// Every controller works in one normalized space chosen by the host. The
// default thresholds assume the space produced by [ScreenToNormalized]: y in
// [-1, 1] growing downward and x scaled by the aspect ratio. Distance
// thresholds must be recalibrated for any other range.
//
// # Gestures
//
// [GestureEngine] tracks each touch from down to up. A touch that stays
// within the drag threshold and lifts before the long-press duration counts
// as a tap; taps on the same touch ID within the tap interval accumulate, and
// the sequence is reported as Tap, Double Tap or Triple Tap once the
// interval passes with no further tap. Holding still for the long-press
// duration reports Long Press. A touch that moved reports a swipe along its
// dominant axis when it traveled past the swipe distance, and Drag End
// otherwise. When exactly two touches are down the engine also reports
// Pinch Start, Pinch Move and Pinch End.
//
// Each [Gesture] carries a typed payload; switch on Details to read it:
//
//	switch d := g.Details.(type) {
//	case tactile.TapDetails:
//		fmt.Println("taps", d.Count)
//	case tactile.PinchDetails:
//		zoom *= d.Scale
//	}
//
// # Timers
//
// The engine never sleeps. Long-press and tap timeouts go through a
// [TimerPort]: [TickTimers] advances with the game loop and is deterministic
// in tests, [WallTimers] uses real timers and runs expirations from
// [WallTimers.Dispatch] on the caller's goroutine.
//
// # Controllers
//
// [JoystickController] maps its owning touch into a direction inside the unit
// disk with a deadzone. [ButtonController] is a press and release latch that
// only its owning touch can release. Both refuse a second touch while held.
//
// # Input sources
//
// [EbitenSource] polls ebiten touches and the mouse. The evdev sub-package
// reads a Linux multi-touch device directly. [Router.InjectTap],
// [Router.InjectDrag] and [LoadScript] replay synthetic touches.
//
// # ECS integration
//
// Controllers forward their events to an [EventStore] when one is set. The
// ecs sub-module publishes them into a Donburi world.
//
// # Configuration and logging
//
// [LoadConfig] reads thresholds from TOML. The package logs ignored input at
// debug level through [Logger]; enable it with [SetDebug].
package tactile
