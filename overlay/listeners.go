package overlay

// Listener implementations receive notifications when the overlay layout
// changes.
type Listener interface {
	// OverlayChanged is called when every visible element may have moved.
	OverlayChanged(o *Overlay)

	// StickChanged is called when just the analog stick has changed. x and
	// y are the axis fractions, between -1 and 1 inclusive.
	StickChanged(o *Overlay, x float64, y float64)

	// FPSChanged is called when just the FPS indicator has changed. fps is
	// between 0 and 9999 inclusive.
	FPSChanged(o *Overlay, fps int)
}

// subscription manages the set of overlay listeners. listeners are notified
// in the order they subscribed. subscribing a listener that is already in
// the set has no effect. a nil listener is safe to (un)subscribe and is a
// no-op
type subscription struct {
	listeners []Listener
}

func (s *subscription) subscribe(l Listener) {
	if l == nil {
		return
	}
	for _, e := range s.listeners {
		if e == l {
			return
		}
	}
	s.listeners = append(s.listeners, l)
}

func (s *subscription) unsubscribe(l Listener) {
	if l == nil {
		return
	}
	for i, e := range s.listeners {
		if e == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}
