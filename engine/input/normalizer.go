package input

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-viewer/common"
)

// Normalizer converts raw pointer, touch and orientation events into a PointerState
// holding a normalized [-0.5, 0.5] position and a drag delta.
type Normalizer interface {
	// Apply folds one raw event into the current state.
	// Pointer and touch positions are normalized against the given viewport size.
	// A non-positive viewport dimension leaves the normalized position unchanged.
	//
	// Parameters:
	//   - ev: the raw input event
	//   - viewportWidth: viewport width in pixels
	//   - viewportHeight: viewport height in pixels
	//
	// Returns:
	//   - PointerState: the state after applying the event
	Apply(ev Event, viewportWidth, viewportHeight float32) PointerState

	// State returns the current pointer state.
	//
	// Returns:
	//   - PointerState: the latest normalized state
	State() PointerState

	// IsDown reports whether a press (mouse down or touch start) is active.
	//
	// Returns:
	//   - bool: true while a drag is in progress
	IsDown() bool

	// Reset starts a new input session: the state is zeroed, the press flag cleared,
	// and the next position sample is treated as the first one.
	Reset()

	// MaxBeta returns the magnitude the front-back tilt is clamped to, in degrees.
	//
	// Returns:
	//   - float32: tilt clamp in degrees
	MaxBeta() float32
}

type normalizer struct {
	mu *sync.Mutex

	state   PointerState
	isDown  bool
	initial bool

	maxBeta    float32
	clampGamma bool
}

var _ Normalizer = &normalizer{}

// NewNormalizer creates a Normalizer at the start of a fresh session.
//
// Parameters:
//   - options: functional options to configure the normalizer
//
// Returns:
//   - Normalizer: the newly created normalizer
func NewNormalizer(options ...NormalizerBuilderOption) Normalizer {
	n := &normalizer{
		mu:      &sync.Mutex{},
		initial: true,
		maxBeta: 90,
	}
	for _, opt := range options {
		opt(n)
	}
	return n
}

func (n *normalizer) Apply(ev Event, viewportWidth, viewportHeight float32) PointerState {
	n.mu.Lock()
	defer n.mu.Unlock()

	switch ev.Kind {
	case EventPointerMove:
		n.move(ev.X, ev.Y, viewportWidth, viewportHeight)
	case EventTouchMove:
		if len(ev.Touches) == 0 {
			break
		}
		last := ev.Touches[len(ev.Touches)-1]
		n.move(last.X, last.Y, viewportWidth, viewportHeight)
	case EventPointerDown, EventTouchStart:
		n.isDown = true
	case EventPointerUp, EventTouchEnd:
		n.isDown = false
	case EventOrientation:
		n.orient(ev.Beta, ev.Gamma)
	}

	return n.state
}

func (n *normalizer) State() PointerState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

func (n *normalizer) IsDown() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.isDown
}

func (n *normalizer) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.state = PointerState{}
	n.isDown = false
	n.initial = true
}

func (n *normalizer) MaxBeta() float32 {
	return n.maxBeta
}

// move records a pixel position. Deltas are only produced once a previous
// position exists. Caller must hold the mutex.
func (n *normalizer) move(x, y, w, h float32) {
	if !n.initial {
		n.state.DeltaX = n.state.X - x
		n.state.DeltaY = n.state.Y - y
	}
	n.initial = false

	n.state.X = x
	n.state.Y = y

	if w > 0 {
		n.state.XF = x/w - 0.5
	}
	if h > 0 {
		n.state.YF = y/h - 0.5
	}
}

// orient maps tilt angles onto the normalized position. The device's axes are
// swapped: left-right tilt drives XF and front-back tilt drives YF.
// Caller must hold the mutex.
func (n *normalizer) orient(beta, gamma float32) {
	beta = common.Clamp(beta, -n.maxBeta, n.maxBeta)
	if n.clampGamma {
		gamma = common.Clamp(gamma, -90, 90)
	}

	beta += 90
	gamma += 90

	n.state.XF = gamma/180 - 0.5
	n.state.YF = beta/180 - 0.5
}
