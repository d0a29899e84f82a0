package game_object

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/Carmen-Shannon/oxy-viewer/engine/model"
)

type gameObject struct {
	mu *sync.Mutex

	id      uint64
	enabled atomic.Bool
	meshes  []model.Mesh

	position [3]float32
	rotation [3]float32
	scale    [3]float32

	wrapRotation bool
}

// GameObject defines the interface for the viewed object: a transform shared by an
// ordered list of mesh children. Spin accumulates into the Y rotation every frame and
// the viewport fit drives a uniform scale.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Enabled returns whether this object is enabled for rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled sets whether the object is enabled for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// Meshes returns the object's mesh children in hierarchy order.
	//
	// Returns:
	//   - []model.Mesh: the children (shared, do not modify)
	Meshes() []model.Mesh

	// Position returns the object's world-space position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// SetPosition sets the object's world-space position.
	//
	// Parameters:
	//   - x, y, z: new position components
	SetPosition(x, y, z float32)

	// Rotation returns the object's Euler rotation in radians.
	//
	// Returns:
	//   - rx, ry, rz: rotation angles
	Rotation() (rx, ry, rz float32)

	// SetRotation sets the object's Euler rotation in radians.
	//
	// Parameters:
	//   - rx, ry, rz: new rotation angles
	SetRotation(rx, ry, rz float32)

	// RotateY adds delta to the Y rotation. With rotation wrapping enabled the result
	// is kept in [0, 2π); otherwise the angle accumulates without bound.
	//
	// Parameters:
	//   - delta: rotation increment in radians
	//
	// Returns:
	//   - float32: the Y rotation after the increment
	RotateY(delta float32) float32

	// Scale returns the object's per-axis scale.
	//
	// Returns:
	//   - sx, sy, sz: scale components
	Scale() (sx, sy, sz float32)

	// SetScale sets the object's per-axis scale.
	//
	// Parameters:
	//   - sx, sy, sz: new scale factors
	SetScale(sx, sy, sz float32)

	// SetUniformScale sets the same scale on all three axes.
	//
	// Parameters:
	//   - s: the scale factor
	SetUniformScale(s float32)

	// BoundingRadius returns the radius of the origin-centered sphere enclosing every
	// child mesh, before scale is applied.
	BoundingRadius() float32

	// ModelMatrix builds the model-to-world matrix from the current transform.
	//
	// Returns:
	//   - [16]float32: column-major model matrix
	ModelMatrix() [16]float32
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
// Objects start enabled with unit scale.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		mu:    &sync.Mutex{},
		scale: [3]float32{1, 1, 1},
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) Meshes() []model.Mesh {
	return g.meshes
}

func (g *gameObject) Position() (x, y, z float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position[0], g.position[1], g.position[2]
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.position = [3]float32{x, y, z}
}

func (g *gameObject) Rotation() (rx, ry, rz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rotation[0], g.rotation[1], g.rotation[2]
}

func (g *gameObject) SetRotation(rx, ry, rz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rotation = [3]float32{rx, ry, rz}
}

func (g *gameObject) RotateY(delta float32) float32 {
	g.mu.Lock()
	defer g.mu.Unlock()

	ry := g.rotation[1] + delta
	if g.wrapRotation {
		r := math.Mod(float64(ry), 2*math.Pi)
		if r < 0 {
			r += 2 * math.Pi
		}
		// float32 rounding can land a tiny negative angle on 2π itself.
		if ry = float32(r); ry >= float32(2*math.Pi) {
			ry = 0
		}
	}
	g.rotation[1] = ry
	return ry
}

func (g *gameObject) Scale() (sx, sy, sz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.scale[0], g.scale[1], g.scale[2]
}

func (g *gameObject) SetScale(sx, sy, sz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scale = [3]float32{sx, sy, sz}
}

func (g *gameObject) SetUniformScale(s float32) {
	g.SetScale(s, s, s)
}

func (g *gameObject) BoundingRadius() float32 {
	var r float32
	for _, m := range g.meshes {
		r = max(r, m.BoundingRadius())
	}
	return r
}

func (g *gameObject) ModelMatrix() [16]float32 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return common.BuildModelMatrix(g.position, g.rotation, g.scale)
}
