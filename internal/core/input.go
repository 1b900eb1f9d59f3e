package core

// Intent is a logical directional input, independent of whether it came from
// a held key or a swipe gesture.
type Intent int

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentUp:
		return "Up"
	case IntentDown:
		return "Down"
	case IntentLeft:
		return "Left"
	case IntentRight:
		return "Right"
	default:
		return "Unknown"
	}
}

func (i Intent) valid() bool {
	return i >= IntentUp && i <= IntentRight
}

// InputState holds the directional intents that are active right now.
// Key intents and swipe intents are tracked separately so a touch end can
// drop every swipe without releasing keys that are still held.
//
// Not safe for concurrent use; platforms deliver input on the frame goroutine.
type InputState struct {
	keys   []Intent // insertion order, each at most once
	swipes []Intent
}

// NewInputState creates an empty input state.
func NewInputState() *InputState {
	return &InputState{
		keys:   make([]Intent, 0, 4),
		swipes: make([]Intent, 0, 4),
	}
}

// Press marks a key intent as held. Pressing an already held intent is a no-op.
func (s *InputState) Press(i Intent) {
	if !i.valid() || contains(s.keys, i) {
		return
	}
	s.keys = append(s.keys, i)
}

// Release drops a key intent. Releasing an intent that is not held is a no-op.
func (s *InputState) Release(i Intent) {
	s.keys = remove(s.keys, i)
}

// PressSwipe marks a swipe intent as active until ClearSwipes.
// Reports whether the intent was newly added.
func (s *InputState) PressSwipe(i Intent) bool {
	if !i.valid() || contains(s.swipes, i) {
		return false
	}
	s.swipes = append(s.swipes, i)
	return true
}

// ClearSwipes drops every swipe intent regardless of direction.
func (s *InputState) ClearSwipes() {
	s.swipes = s.swipes[:0]
}

// IsActive reports whether the intent is held by a key or a swipe.
func (s *InputState) IsActive(i Intent) bool {
	return contains(s.keys, i) || contains(s.swipes, i)
}

// Active returns every active intent, keys first, without duplicates.
func (s *InputState) Active() []Intent {
	out := make([]Intent, 0, len(s.keys)+len(s.swipes))
	out = append(out, s.keys...)
	for _, i := range s.swipes {
		if !contains(out, i) {
			out = append(out, i)
		}
	}
	return out
}

// Clear drops all key and swipe intents.
func (s *InputState) Clear() {
	s.keys = s.keys[:0]
	s.swipes = s.swipes[:0]
}

func contains(list []Intent, i Intent) bool {
	for _, v := range list {
		if v == i {
			return true
		}
	}
	return false
}

func remove(list []Intent, i Intent) []Intent {
	for idx, v := range list {
		if v == i {
			return append(list[:idx], list[idx+1:]...)
		}
	}
	return list
}

// EventKind identifies the kind of raw input event a platform delivers.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventTouchStart
	EventTouchMove
	EventTouchEnd
	EventConfirm    // Enter
	EventFullscreen // fullscreen toggle request
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	case EventTouchStart:
		return "TouchStart"
	case EventTouchMove:
		return "TouchMove"
	case EventTouchEnd:
		return "TouchEnd"
	case EventConfirm:
		return "Confirm"
	case EventFullscreen:
		return "Fullscreen"
	default:
		return "Unknown"
	}
}

// InputEvent is a platform-neutral input event. Intent is set for key
// events, X and Y (world pixels) for touch events.
type InputEvent struct {
	Kind   EventKind
	Intent Intent
	X, Y   float64
}

// KeyDown builds a key press event.
func KeyDown(i Intent) InputEvent { return InputEvent{Kind: EventKeyDown, Intent: i} }

// KeyUp builds a key release event.
func KeyUp(i Intent) InputEvent { return InputEvent{Kind: EventKeyUp, Intent: i} }

// TouchStart builds a touch start event at world position (x, y).
func TouchStart(x, y float64) InputEvent { return InputEvent{Kind: EventTouchStart, X: x, Y: y} }

// TouchMove builds a touch move event at world position (x, y).
func TouchMove(x, y float64) InputEvent { return InputEvent{Kind: EventTouchMove, X: x, Y: y} }

// TouchEnd builds a touch end event.
func TouchEnd() InputEvent { return InputEvent{Kind: EventTouchEnd} }

// Confirm builds an Enter event.
func Confirm() InputEvent { return InputEvent{Kind: EventConfirm} }

// Fullscreen builds a fullscreen toggle request.
func Fullscreen() InputEvent { return InputEvent{Kind: EventFullscreen} }
