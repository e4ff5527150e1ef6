package tactile

// ButtonController is a press/release latch owned by the touch that pressed
// it. Releases from any other touch are ignored, so a second finger can
// neither cancel nor trigger another finger's press.
type ButtonController struct {
	id      string
	owner   int
	pressed bool

	onClick handlerList[string]
	store   EventStore
}

// NewButton creates a released button identified by id.
func NewButton(id string) *ButtonController {
	return &ButtonController{id: id}
}

// ID returns the identifier passed to click callbacks.
func (b *ButtonController) ID() string { return b.id }

// OnClick registers a callback that receives the button ID when the owning
// touch releases the button.
func (b *ButtonController) OnClick(fn func(id string)) CallbackHandle {
	return b.onClick.add(fn)
}

// SetEventStore forwards presses and clicks to store. Pass nil to detach.
func (b *ButtonController) SetEventStore(store EventStore) { b.store = store }

// Pressed reports whether a touch currently holds the button.
func (b *ButtonController) Pressed() bool { return b.pressed }

// Owner returns the ID of the touch holding the button.
func (b *ButtonController) Owner() (int, bool) { return b.owner, b.pressed }

// HandlePress captures the button for t. It returns false, leaving the owner
// unchanged, if another touch already holds it.
func (b *ButtonController) HandlePress(t TouchSample) bool {
	if b.pressed {
		logger.Debugf("button %q held by touch %d, refusing touch %d", b.id, b.owner, t.ID)
		return false
	}
	b.pressed = true
	b.owner = t.ID
	if b.store != nil {
		b.store.EmitEvent(InputEvent{Type: EventButtonPress, TouchID: t.ID, ButtonID: b.id, X: t.X, Y: t.Y})
	}
	return true
}

// HandleRelease releases the button if t owns it and fires the click
// callbacks once.
func (b *ButtonController) HandleRelease(t TouchSample) bool {
	if !b.pressed || t.ID != b.owner {
		return false
	}
	b.pressed = false
	b.owner = 0
	b.onClick.fire(b.id)
	if b.store != nil {
		b.store.EmitEvent(InputEvent{Type: EventButtonClick, TouchID: t.ID, ButtonID: b.id, X: t.X, Y: t.Y})
	}
	return true
}
