package scribble

// Accumulator turns pointer samples into connected stroke segments.
//
// Samples arrive in irregular bursts between display refreshes. While the
// primary button is held they are buffered, and each Tick converts the
// buffer into line segments that continue from the last point drawn on
// the previous tick (the anchor). Releasing the button ends the stroke
// at the next tick, so the following press starts a fresh, unconnected
// mark.
//
// The zero value is ready to use: button up, nothing pending, no anchor.
type Accumulator struct {
	down     bool
	pending  []Sample
	anchor   Point
	anchored bool
}

// Move records a pointer position. It is ignored while the button is up.
func (a *Accumulator) Move(s Sample) {
	if a.down {
		a.pending = append(a.pending, s)
	}
}

// SetButton records a primary button transition. It never draws.
func (a *Accumulator) SetButton(pressed bool) {
	a.down = pressed
}

// Down reports whether the primary button is held.
func (a *Accumulator) Down() bool {
	return a.down
}

// Pending returns the number of samples waiting for the next tick.
func (a *Accumulator) Pending() int {
	return len(a.pending)
}

// Anchor returns the last point drawn in the current stroke.
// ok is false when no stroke is in progress.
func (a *Accumulator) Anchor() (p Point, ok bool) {
	return a.anchor, a.anchored
}

// Tick draws the pending samples into p with color c and returns the
// number of draw calls issued (segments, or the single dot that starts a
// stroke without movement).
//
//   - no samples: nothing is drawn
//   - one sample: a segment from the anchor, or a single pixel when the
//     stroke is just starting
//   - several samples: a segment from the anchor to the first sample,
//     then one segment per consecutive pair
//
// The last sample becomes the anchor. Pending samples are always
// cleared, and the anchor is dropped when the button is up.
func (a *Accumulator) Tick(p *Pixmap, c Color) int {
	calls := 0

	switch len(a.pending) {
	case 0:
	case 1:
		pt := a.pending[0].Pixel()
		if a.anchored {
			p.DrawLine(a.anchor, pt, c)
		} else {
			p.SetPixel(pt.X, pt.Y, c.R, c.G, c.B, 255)
		}
		calls++
		a.anchor, a.anchored = pt, true
	default:
		current := a.pending[0].Pixel()
		if a.anchored {
			p.DrawLine(a.anchor, current, c)
			calls++
		}
		for _, s := range a.pending[1:] {
			next := s.Pixel()
			p.DrawLine(current, next, c)
			calls++
			current = next
		}
		a.anchor, a.anchored = current, true
	}

	a.pending = a.pending[:0]
	if !a.down {
		a.anchored = false
		a.anchor = Point{}
	}
	return calls
}
