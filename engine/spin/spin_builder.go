package spin

const (
	// DefaultAccel is the per-frame speed change while dragging.
	DefaultAccel float32 = 0.008

	// DefaultDecel is the per-frame decay toward zero while released.
	DefaultDecel float32 = 0.0005
)

// ModelBuilderOption is a functional option for configuring a spin Model.
type ModelBuilderOption func(*model)

// WithAccel sets the per-frame acceleration applied while dragging.
// Non-positive values are ignored.
//
// Parameters:
//   - accel: acceleration in radians per frame per frame
//
// Returns:
//   - ModelBuilderOption: functional option to set the acceleration
func WithAccel(accel float32) ModelBuilderOption {
	return func(m *model) {
		if accel > 0 {
			m.accel = accel
		}
	}
}

// WithDecel sets the per-frame decay applied while released.
// Non-positive values are ignored.
//
// Parameters:
//   - decel: deceleration in radians per frame per frame
//
// Returns:
//   - ModelBuilderOption: functional option to set the deceleration
func WithDecel(decel float32) ModelBuilderOption {
	return func(m *model) {
		if decel > 0 {
			m.decel = decel
		}
	}
}

// WithMaxSpeed bounds the speed magnitude while dragging. Zero keeps it unbounded.
//
// Parameters:
//   - maxSpeed: magnitude bound in radians per frame
//
// Returns:
//   - ModelBuilderOption: functional option to set the speed bound
func WithMaxSpeed(maxSpeed float32) ModelBuilderOption {
	return func(m *model) {
		if maxSpeed >= 0 {
			m.maxSpeed = maxSpeed
		}
	}
}
