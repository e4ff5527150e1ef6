package tactile

// handlerList is an ordered set of callbacks with stable removal IDs.
type handlerList[T any] struct {
	entries []handlerEntry[T]
	nextID  uint32
}

type handlerEntry[T any] struct {
	id uint32
	fn func(T)
}

func (l *handlerList[T]) add(fn func(T)) CallbackHandle {
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, handlerEntry[T]{id: id, fn: fn})
	return CallbackHandle{remove: func() { l.remove(id) }}
}

// remove drops the entry from the slice to avoid nil iteration waste.
func (l *handlerList[T]) remove(id uint32) {
	s := l.entries
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handlerEntry[T]{}
			l.entries = s[:len(s)-1]
			return
		}
	}
}

// fire calls every handler in registration order. A handler removed during
// dispatch is still called for the current event.
func (l *handlerList[T]) fire(v T) {
	switch l.len() {
	case 0:
		return
	case 1:
		l.entries[0].fn(v)
		return
	}
	snapshot := make([]handlerEntry[T], l.len())
	copy(snapshot, l.entries)
	for _, h := range snapshot {
		h.fn(v)
	}
}

// len returns the number of registered handlers.
func (l *handlerList[T]) len() int { return len(l.entries) }

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	remove func()
}

// Remove unregisters this callback so it no longer fires. Calling Remove
// more than once, or on the zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.remove == nil {
		return
	}
	h.remove()
}
