package camera

const (
	// DefaultDistance is the orbit radius in world units.
	DefaultDistance float32 = 1

	// DefaultRotationScale maps the full normalized input range to 0.4 of a turn.
	DefaultRotationScale float32 = 0.4
)

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithDistance sets the orbit radius (distance from target).
// Non-positive values keep the default.
//
// Parameters:
//   - distance: distance from the orbit target
//
// Returns:
//   - CameraControllerOption: functional option to set the distance
func WithDistance(distance float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if distance > 0 {
			cc.distance = distance
		}
	}
}

// WithRotationScale sets the fraction of a full turn mapped to the normalized input
// range. Observed configurations use values between 0.2 and 0.4.
//
// Parameters:
//   - scale: rotation scale
//
// Returns:
//   - CameraControllerOption: functional option to set the rotation scale
func WithRotationScale(scale float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.rotationScale = scale
	}
}

// WithTarget sets the initial look-at point.
//
// Parameters:
//   - x, y, z: world-space target coordinates
//
// Returns:
//   - CameraControllerOption: functional option to set the target
func WithTarget(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.target = [3]float32{x, y, z}
	}
}
