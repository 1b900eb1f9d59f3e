package core

// FrameTime is the timing information for a single animation frame.
type FrameTime struct {
	Timestamp float64 // Raw timestamp passed by the scheduler, in ms
	DeltaMs   float64 // Time since the previous frame, never negative
}

// Clock derives frame deltas from the raw timestamps a scheduler hands out.
// The first frame after construction or Reset always has a zero delta.
type Clock struct {
	last    float64
	started bool
}

// Tick records a frame timestamp and returns its timing.
func (c *Clock) Tick(timestamp float64) FrameTime {
	var delta float64
	if c.started {
		delta = max(timestamp-c.last, 0)
	}
	c.last = timestamp
	c.started = true
	return FrameTime{Timestamp: timestamp, DeltaMs: delta}
}

// Reset forgets the previous timestamp.
func (c *Clock) Reset() {
	c.last = 0
	c.started = false
}
