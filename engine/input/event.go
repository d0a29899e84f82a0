package input

// EventKind identifies the source and phase of a raw input Event.
type EventKind int

const (
	// EventPointerMove is a mouse/pointer move carrying pixel coordinates.
	EventPointerMove EventKind = iota

	// EventPointerDown is a mouse/pointer press.
	EventPointerDown

	// EventPointerUp is a mouse/pointer release.
	EventPointerUp

	// EventTouchMove is a touch move carrying the set of changed touch points.
	EventTouchMove

	// EventTouchStart is the start of a touch.
	EventTouchStart

	// EventTouchEnd is the end of a touch.
	EventTouchEnd

	// EventOrientation is a device-orientation sample carrying tilt angles in degrees.
	EventOrientation
)

// String returns a readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPointerMove:
		return "pointer-move"
	case EventPointerDown:
		return "pointer-down"
	case EventPointerUp:
		return "pointer-up"
	case EventTouchMove:
		return "touch-move"
	case EventTouchStart:
		return "touch-start"
	case EventTouchEnd:
		return "touch-end"
	case EventOrientation:
		return "orientation"
	default:
		return "unknown"
	}
}

// TouchPoint is a single touch contact in pixel coordinates.
type TouchPoint struct {
	X, Y float32
}

// Event is a raw input sample as delivered by the host window.
// Only the fields relevant to Kind are read.
type Event struct {
	Kind EventKind

	// X, Y are pixel coordinates for pointer events.
	X, Y float32

	// Touches is the set of changed touch points for touch events.
	Touches []TouchPoint

	// Beta is the front-back tilt in degrees for orientation events.
	Beta float32

	// Gamma is the left-right tilt in degrees for orientation events.
	Gamma float32
}

// PointerMove builds an EventPointerMove at the given pixel position.
func PointerMove(x, y float32) Event {
	return Event{Kind: EventPointerMove, X: x, Y: y}
}

// PointerDown builds an EventPointerDown.
func PointerDown() Event {
	return Event{Kind: EventPointerDown}
}

// PointerUp builds an EventPointerUp.
func PointerUp() Event {
	return Event{Kind: EventPointerUp}
}

// TouchMove builds an EventTouchMove from the changed touch points.
func TouchMove(touches ...TouchPoint) Event {
	return Event{Kind: EventTouchMove, Touches: touches}
}

// TouchStart builds an EventTouchStart.
func TouchStart() Event {
	return Event{Kind: EventTouchStart}
}

// TouchEnd builds an EventTouchEnd.
func TouchEnd() Event {
	return Event{Kind: EventTouchEnd}
}

// Orientation builds an EventOrientation from front-back (beta) and left-right (gamma) tilt.
func Orientation(beta, gamma float32) Event {
	return Event{Kind: EventOrientation, Beta: beta, Gamma: gamma}
}

// PointerState is the normalized view of the latest input.
type PointerState struct {
	// X, Y are the latest pixel coordinates.
	X, Y float32

	// XF, YF are the normalized position in [-0.5, 0.5] on each axis.
	XF, YF float32

	// DeltaX, DeltaY are the signed pixel displacement since the previous sample
	// (previous minus current).
	DeltaX, DeltaY float32
}
