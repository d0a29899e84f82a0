package camera

// CameraController owns the camera's positional state (position, target). The Camera
// reads from the controller and computes view/projection matrices.
//
// The controller orbits a fixed target on a sphere of constant radius. Each call to
// Orbit derives the pose from scratch out of a normalized 2D position, so the pose
// never drifts and carries no memory between frames.
type CameraController interface {
	// Orbit positions the camera from a normalized input position.
	// The camera is reset to (0, 0, distance), rotated by the Euler triple
	// (yf*angle, xf*angle, 0) applied in X then Y order, offset by the target, and
	// aimed at the target. angle is -2π times the rotation scale.
	//
	// Parameters:
	//   - xf: normalized horizontal position in [-0.5, 0.5], drives yaw
	//   - yf: normalized vertical position in [-0.5, 0.5], drives pitch
	Orbit(xf, yf float32)

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Target returns the look-at point.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// SetTarget sets the look-at point and re-derives the position from the last orbit input.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTarget(x, y, z float32)

	// Distance returns the orbit radius.
	//
	// Returns:
	//   - float32: distance from target
	Distance() float32

	// SetDistance sets the orbit radius and re-derives the position. Non-positive values are ignored.
	//
	// Parameters:
	//   - distance: new distance from target
	SetDistance(distance float32)

	// RotationScale returns the fraction of a full turn mapped to the normalized input range.
	//
	// Returns:
	//   - float32: rotation scale
	RotationScale() float32

	// Pitch returns the rotation about the X axis from the last orbit, in radians.
	Pitch() float32

	// Yaw returns the rotation about the Y axis from the last orbit, in radians.
	Yaw() float32
}
