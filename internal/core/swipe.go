package core

// DefaultSwipeThreshold is the displacement in world pixels a touch has to
// travel along one axis before it counts as a swipe.
const DefaultSwipeThreshold = 30

// SwipeTracker turns touch start/move/end sequences into swipe intents.
// Displacement is measured from the touch start point, and the horizontal
// and vertical axes are judged independently, so a diagonal drag can hold
// both Up and Right.
type SwipeTracker struct {
	threshold      float64
	startX, startY float64
	touching       bool
}

// NewSwipeTracker creates a tracker. A non-positive threshold falls back to
// DefaultSwipeThreshold.
func NewSwipeTracker(threshold float64) *SwipeTracker {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &SwipeTracker{threshold: threshold}
}

// Threshold returns the configured swipe threshold.
func (t *SwipeTracker) Threshold() float64 {
	return t.threshold
}

// Start records the touch origin.
func (t *SwipeTracker) Start(x, y float64) {
	t.startX, t.startY = x, y
	t.touching = true
}

// Move folds the current touch position into in and returns the swipe
// intents that became active on this move. Moves without a Start are ignored.
func (t *SwipeTracker) Move(x, y float64, in *InputState) []Intent {
	if !t.touching {
		return nil
	}

	var fired []Intent
	press := func(i Intent) {
		if in.PressSwipe(i) {
			fired = append(fired, i)
		}
	}

	dx := x - t.startX
	dy := y - t.startY

	switch {
	case dy < -t.threshold:
		press(IntentUp)
	case dy > t.threshold:
		press(IntentDown)
	}
	switch {
	case dx < -t.threshold:
		press(IntentLeft)
	case dx > t.threshold:
		press(IntentRight)
	}
	return fired
}

// End finishes the gesture and clears every swipe intent.
func (t *SwipeTracker) End(in *InputState) {
	t.touching = false
	in.ClearSwipes()
}
