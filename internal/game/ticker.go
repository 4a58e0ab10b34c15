package game

// TurnTimer gates movement steps on a fixed delay, decoupling the
// simulation cadence from the render frame rate.
type TurnTimer struct {
	delay     float64
	remaining float64
}

// NewTurnTimer creates a timer that fires every delay seconds.
func NewTurnTimer(delay float64) *TurnTimer {
	return &TurnTimer{delay: delay, remaining: delay}
}

// Advance subtracts a frame's elapsed time and reports whether a
// movement step is due. On firing, the accumulator resets to the full
// delay. A frame longer than the delay still fires only once; missed
// steps are not caught up.
func (t *TurnTimer) Advance(dt float64) bool {
	t.remaining -= dt
	if t.remaining > 0 {
		return false
	}
	t.remaining = t.delay
	return true
}

// Reset restores the full delay, discarding accumulated time.
func (t *TurnTimer) Reset() {
	t.remaining = t.delay
}
