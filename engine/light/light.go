package light

import "sync"

// Default light values: a white key light above and in front of the origin at half
// intensity, plus a low ambient term so faces turned away from it stay readable.
const (
	DefaultIntensity float32 = 0.5
	DefaultAmbient   float32 = 0.35
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	mu *sync.Mutex

	position  [3]float32
	target    [3]float32
	color     [3]float32
	intensity float32
	ambient   float32
	enabled   bool
}

// Light is a directional light aimed from a position at a target point.
// Only the direction between the two matters for shading; distance has no effect.
type Light interface {
	// Position returns the point the light shines from.
	//
	// Returns:
	//   - [3]float32: position as (x, y, z)
	Position() [3]float32

	// SetPosition sets the point the light shines from.
	//
	// Parameters:
	//   - x, y, z: world-space position
	SetPosition(x, y, z float32)

	// Target returns the point the light is aimed at.
	//
	// Returns:
	//   - [3]float32: target as (x, y, z)
	Target() [3]float32

	// SetTarget aims the light at a point, typically the viewed object's position.
	//
	// Parameters:
	//   - x, y, z: world-space target
	SetTarget(x, y, z float32)

	// Direction returns the normalized direction light travels, from position to target.
	// A coincident position and target yields a zero vector.
	//
	// Returns:
	//   - [3]float32: unit direction
	Direction() [3]float32

	// Color returns the RGB color of the light.
	Color() [3]float32

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - r, g, b: color components in [0, 1]
	SetColor(r, g, b float32)

	// Intensity returns the scalar multiplier applied to the diffuse term.
	Intensity() float32

	// SetIntensity sets the diffuse multiplier. Negative values are ignored.
	//
	// Parameters:
	//   - intensity: the intensity value
	SetIntensity(intensity float32)

	// Ambient returns the fraction of the base color lit regardless of orientation.
	Ambient() float32

	// SetAmbient sets the ambient fraction. Values outside [0, 1] are ignored.
	//
	// Parameters:
	//   - ambient: the ambient fraction
	SetAmbient(ambient float32)

	// Enabled reports whether the light contributes. A disabled light still leaves
	// the ambient term in place.
	Enabled() bool

	// SetEnabled toggles the diffuse contribution.
	//
	// Parameters:
	//   - enabled: true to light the scene
	SetEnabled(enabled bool)

	// Uniform packs the light for upload to the GPU.
	//
	// Returns:
	//   - GPULightUniform: the GPU-aligned light block
	Uniform() GPULightUniform
}

var _ Light = &lightImpl{}

// NewLight creates a white directional light at (0, 0.5, 1) aimed at the origin.
//
// Parameters:
//   - opts: functional options to configure the light
//
// Returns:
//   - Light: the newly created light
func NewLight(opts ...LightBuilderOption) Light {
	l := &lightImpl{
		mu:        &sync.Mutex{},
		position:  [3]float32{0, 0.5, 1},
		color:     [3]float32{1, 1, 1},
		intensity: DefaultIntensity,
		ambient:   DefaultAmbient,
		enabled:   true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Position() [3]float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.position
}

func (l *lightImpl) SetPosition(x, y, z float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.position = [3]float32{x, y, z}
}

func (l *lightImpl) Target() [3]float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.target
}

func (l *lightImpl) SetTarget(x, y, z float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.target = [3]float32{x, y, z}
}

func (l *lightImpl) Direction() [3]float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.direction()
}

func (l *lightImpl) Color() [3]float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.color
}

func (l *lightImpl) SetColor(r, g, b float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.color = [3]float32{r, g, b}
}

func (l *lightImpl) Intensity() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.intensity
}

func (l *lightImpl) SetIntensity(intensity float32) {
	if intensity < 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.intensity = intensity
}

func (l *lightImpl) Ambient() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ambient
}

func (l *lightImpl) SetAmbient(ambient float32) {
	if ambient < 0 || ambient > 1 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ambient = ambient
}

func (l *lightImpl) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

func (l *lightImpl) Uniform() GPULightUniform {
	l.mu.Lock()
	defer l.mu.Unlock()

	u := GPULightUniform{
		Direction: l.direction(),
		Color:     l.color,
		Ambient:   l.ambient,
	}
	if l.enabled {
		u.Intensity = l.intensity
	}
	return u
}

// direction computes the normalized target - position. Caller must hold the mutex.
func (l *lightImpl) direction() [3]float32 {
	return normalize3(
		l.target[0]-l.position[0],
		l.target[1]-l.position[1],
		l.target[2]-l.position[2],
	)
}
