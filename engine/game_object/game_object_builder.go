package game_object

import (
	"github.com/Carmen-Shannon/oxy-viewer/engine/model"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithEnabled sets whether the GameObject is enabled for rendering.
//
// Parameters:
//   - enabled: true to render the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithMeshes sets the mesh children of the GameObject, in hierarchy order.
//
// Parameters:
//   - meshes: the child meshes
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the children
func WithMeshes(meshes ...model.Mesh) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.meshes = meshes
	}
}

// WithPosition sets the initial position of the GameObject.
//
// Parameters:
//   - x: the x position
//   - y: the y position
//   - z: the z position
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = [3]float32{x, y, z}
	}
}

// WithScale sets the initial scale of the GameObject.
//
// Parameters:
//   - x: the x scale
//   - y: the y scale
//   - z: the z scale
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial scale
func WithScale(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.scale = [3]float32{x, y, z}
	}
}

// WithRotation sets the initial Euler rotation of the GameObject in radians.
//
// Parameters:
//   - x: rotation around the X axis
//   - y: rotation around the Y axis
//   - z: rotation around the Z axis
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial rotation
func WithRotation(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotation = [3]float32{x, y, z}
	}
}

// WithRotationWrap keeps the accumulated Y rotation in [0, 2π) on every RotateY call.
// Long sessions otherwise lose float precision in the accumulated angle.
//
// Parameters:
//   - wrap: true to wrap the Y rotation
//
// Returns:
//   - GameObjectBuilderOption: functional option to toggle rotation wrapping
func WithRotationWrap(wrap bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.wrapRotation = wrap
	}
}
