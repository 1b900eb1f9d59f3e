package core

// FrameFunc is invoked once per animation frame with the frame timestamp in ms.
type FrameFunc func(timestamp float64)

// Scheduler invokes a callback on the next display frame. A callback that
// wants to keep animating has to request again; not requesting halts the loop.
type Scheduler interface {
	RequestFrame(fn FrameFunc)
}

// FrameQueue is a Scheduler with a single pending slot that a platform pumps
// from its own frame source (a Bubble Tea tick, an Ebiten Update, a loop).
// Requesting twice before a pump keeps only the latest callback.
type FrameQueue struct {
	pending FrameFunc
}

// RequestFrame implements Scheduler.
func (q *FrameQueue) RequestFrame(fn FrameFunc) {
	q.pending = fn
}

// Pending reports whether a frame has been requested.
func (q *FrameQueue) Pending() bool {
	return q.pending != nil
}

// Pump runs the pending callback, if any, with the given timestamp.
// The slot is emptied before the call so the callback can request again.
// Reports whether a callback ran.
func (q *FrameQueue) Pump(timestamp float64) bool {
	fn := q.pending
	if fn == nil {
		return false
	}
	q.pending = nil
	fn(timestamp)
	return true
}

// Cancel drops the pending callback.
func (q *FrameQueue) Cancel() {
	q.pending = nil
}
