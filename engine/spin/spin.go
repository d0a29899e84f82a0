package spin

import "sync"

// Model holds the object's signed spin speed. While a press is active the speed is
// pushed by a fixed acceleration in the direction opposite the horizontal drag delta;
// otherwise it decays toward zero by a fixed deceleration without crossing it.
type Model interface {
	// Step advances the speed by one frame.
	//
	// Parameters:
	//   - isDown: whether a press is currently active
	//   - deltaX: horizontal drag delta from the latest input sample
	//
	// Returns:
	//   - float32: the speed after the step
	Step(isDown bool, deltaX float32) float32

	// Speed returns the current speed in radians per frame.
	Speed() float32

	// SetSpeed overrides the current speed. The max speed bound, if any, still applies.
	//
	// Parameters:
	//   - speed: the new signed speed
	SetSpeed(speed float32)

	// Reset sets the speed to zero.
	Reset()

	// Accel returns the per-frame acceleration applied while dragging.
	Accel() float32

	// Decel returns the per-frame decay applied while released.
	Decel() float32

	// MaxSpeed returns the speed magnitude bound (0 = unbounded).
	MaxSpeed() float32
}

type model struct {
	mu *sync.Mutex

	speed    float32
	accel    float32
	decel    float32
	maxSpeed float32
}

var _ Model = &model{}

// NewModel creates a spin model at rest.
//
// Parameters:
//   - options: functional options to configure the model
//
// Returns:
//   - Model: the newly created spin model
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{
		mu:    &sync.Mutex{},
		accel: DefaultAccel,
		decel: DefaultDecel,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *model) Step(isDown bool, deltaX float32) float32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if isDown {
		switch {
		case deltaX > 0:
			m.speed -= m.accel
		case deltaX < 0:
			m.speed += m.accel
		}
		m.speed = m.bound(m.speed)
		return m.speed
	}

	switch {
	case m.speed > 0:
		m.speed = max(0, m.speed-m.decel)
	case m.speed < 0:
		m.speed = min(0, m.speed+m.decel)
	}
	return m.speed
}

func (m *model) Speed() float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.speed
}

func (m *model) SetSpeed(speed float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.speed = m.bound(speed)
}

func (m *model) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.speed = 0
}

func (m *model) Accel() float32 {
	return m.accel
}

func (m *model) Decel() float32 {
	return m.decel
}

func (m *model) MaxSpeed() float32 {
	return m.maxSpeed
}

func (m *model) bound(speed float32) float32 {
	if m.maxSpeed <= 0 {
		return speed
	}
	return min(max(speed, -m.maxSpeed), m.maxSpeed)
}
