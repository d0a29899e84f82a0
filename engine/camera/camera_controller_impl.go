package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// cameraControllerImpl is the single implementation of CameraController.
type cameraControllerImpl struct {
	mu *sync.Mutex

	position [3]float32
	target   [3]float32

	distance      float32
	rotationScale float32

	// Last orbit input, kept so distance/target/scale changes re-derive the same pose.
	xf, yf     float32
	pitch, yaw float32
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates an orbit controller one unit in front of the origin.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:            &sync.Mutex{},
		distance:      DefaultDistance,
		rotationScale: DefaultRotationScale,
	}

	for _, option := range options {
		option(cc)
	}

	cc.updatePosition()
	return cc
}

// updatePosition recomputes the camera position from the last orbit input.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) updatePosition() {
	angle := 2 * math.Pi * cc.rotationScale * -1
	cc.pitch = cc.yf * angle
	cc.yaw = cc.xf * angle

	base := mgl32.Vec3{0, 0, cc.distance}
	rot := mgl32.Rotate3DX(cc.pitch).Mul3(mgl32.Rotate3DY(cc.yaw))
	p := rot.Mul3x1(base)

	cc.position[0] = cc.target[0] + p[0]
	cc.position[1] = cc.target[1] + p[1]
	cc.position[2] = cc.target[2] + p[2]
}

func (cc *cameraControllerImpl) Orbit(xf, yf float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.xf = xf
	cc.yf = yf
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Position() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position[0], cc.position[1], cc.position[2]
}

func (cc *cameraControllerImpl) Target() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target[0], cc.target[1], cc.target[2]
}

func (cc *cameraControllerImpl) SetTarget(x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.target = [3]float32{x, y, z}
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Distance() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.distance
}

func (cc *cameraControllerImpl) SetDistance(distance float32) {
	if distance <= 0 {
		return
	}
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.distance = distance
	cc.updatePosition()
}

func (cc *cameraControllerImpl) RotationScale() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.rotationScale
}

func (cc *cameraControllerImpl) Pitch() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pitch
}

func (cc *cameraControllerImpl) Yaw() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.yaw
}
