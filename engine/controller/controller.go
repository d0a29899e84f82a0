package controller

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/game_object"
	"github.com/Carmen-Shannon/oxy-viewer/engine/input"
	"github.com/Carmen-Shannon/oxy-viewer/engine/profiler"
	"github.com/Carmen-Shannon/oxy-viewer/engine/spin"
	"github.com/Carmen-Shannon/oxy-viewer/engine/status"
	"github.com/Carmen-Shannon/oxy-viewer/engine/viewport"
)

// DefaultQueueLimit bounds the number of input events buffered between frames.
const DefaultQueueLimit = 256

// Status is the outcome of one frame step.
type Status struct {
	// Ready is false until an object has been attached.
	Ready bool

	// Speed is the spin speed applied this frame, in radians per frame.
	Speed float32

	// RotationY is the object's accumulated Y rotation after this frame.
	RotationY float32

	// Pointer is the normalized input state the frame was computed from.
	Pointer input.PointerState

	// Scale is the uniform scale last applied by viewport fitting.
	Scale float32
}

// String renders the diagnostic line written to the status sink.
func (s Status) String() string {
	if !s.Ready {
		return "loading"
	}
	return fmt.Sprintf("speed: %g y: %g", s.Speed, s.RotationY)
}

// Controller turns queued input into object spin, camera orbit and viewport fit.
// Event delivery is safe from any goroutine; everything else is expected to run
// on the frame loop.
type Controller interface {
	// HandleEvent enqueues a raw input event for the next Step. Never blocks.
	//
	// Parameters:
	//   - ev: the raw input event
	HandleEvent(ev input.Event)

	// Resize records the framebuffer size, updates the camera aspect and re-fits the
	// attached object. A zero dimension keeps the previous projection and scale.
	//
	// Parameters:
	//   - width: framebuffer width in pixels
	//   - height: framebuffer height in pixels
	Resize(width, height int)

	// SetViewportSize records the size input coordinates are normalized against.
	// Until it is called the framebuffer size from Resize is used.
	//
	// Parameters:
	//   - width: width in the units pointer positions are reported in
	//   - height: height in the units pointer positions are reported in
	SetViewportSize(width, height int)

	// Attach makes obj the viewed object: the camera targets its position and it is
	// fitted to the current viewport.
	//
	// Parameters:
	//   - obj: the loaded object
	Attach(obj game_object.GameObject)

	// Object returns the attached object, or nil before Attach.
	Object() game_object.GameObject

	// Camera returns the camera driven by the controller.
	Camera() camera.Camera

	// Step advances one frame: drain input, orbit the camera, update and apply the
	// spin, refresh the camera matrices and report status. Before Attach only the
	// input state advances.
	//
	// Returns:
	//   - Status: the frame outcome
	Step() Status

	// Last returns the Status produced by the most recent Step.
	Last() Status

	// Stop zeroes the spin speed. The object keeps its current rotation.
	Stop()

	// Reset discards pending input, starts a new input session and returns the
	// object to its unrotated pose with no spin.
	Reset()
}

type controller struct {
	mu *sync.Mutex

	queue      *input.Queue
	queueLimit int
	normalizer input.Normalizer
	spin       spin.Model
	orbit      camera.CameraController
	camera     camera.Camera
	fitter     viewport.Fitter
	sink       status.Sink
	profiler   *profiler.Profiler

	object game_object.GameObject

	fbWidth, fbHeight int
	vpWidth, vpHeight int
	vpExplicit        bool

	scale float32
	last  Status
}

var _ Controller = &controller{}

// NewController creates a Controller. Components not supplied through options get
// their package defaults: a 0.4 rotation scale orbit at distance 1, a 30 degree
// camera, a logo scale of 13 and no status output.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(options ...ControllerBuilderOption) Controller {
	c := &controller{
		mu:         &sync.Mutex{},
		queueLimit: DefaultQueueLimit,
		sink:       status.Discard,
	}
	for _, opt := range options {
		opt(c)
	}

	if c.normalizer == nil {
		c.normalizer = input.NewNormalizer()
	}
	if c.spin == nil {
		c.spin = spin.NewModel()
	}
	if c.camera == nil {
		c.camera = camera.NewCamera()
	}
	if c.orbit == nil {
		c.orbit = c.camera.Controller()
	}
	if c.orbit == nil {
		c.orbit = camera.NewCameraController()
	}
	if c.camera.Controller() != c.orbit {
		c.camera.SetController(c.orbit)
	}
	if c.fitter == nil {
		c.fitter = viewport.NewFitter()
	}
	c.queue = input.NewQueue(c.queueLimit)

	return c
}

func (c *controller) HandleEvent(ev input.Event) {
	c.queue.Push(ev)
}

func (c *controller) Resize(width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fbWidth, c.fbHeight = width, height
	if !c.vpExplicit {
		c.vpWidth, c.vpHeight = width, height
	}
	if width <= 0 || height <= 0 {
		return
	}

	c.camera.SetAspect(float32(width) / float32(height))
	c.fit()
}

func (c *controller) SetViewportSize(width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vpWidth, c.vpHeight = width, height
	c.vpExplicit = true
}

func (c *controller) Attach(obj game_object.GameObject) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.object = obj
	if obj == nil {
		return
	}
	c.orbit.SetTarget(obj.Position())
	c.fit()
	c.camera.Update()
}

func (c *controller) Object() game_object.GameObject {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.object
}

func (c *controller) Camera() camera.Camera {
	return c.camera
}

func (c *controller) Step() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	pointer, isDown := c.queue.DrainInto(c.normalizer, float32(c.vpWidth), float32(c.vpHeight))

	if c.object == nil {
		c.last = Status{Pointer: pointer}
		return c.last
	}

	c.orbit.Orbit(pointer.XF, pointer.YF)
	speed := c.spin.Step(isDown, pointer.DeltaX)
	rotY := c.object.RotateY(speed)
	c.camera.Update()

	if c.profiler != nil {
		c.profiler.ObserveSpeed(speed)
	}

	c.last = Status{
		Ready:     true,
		Speed:     speed,
		RotationY: rotY,
		Pointer:   pointer,
		Scale:     c.scale,
	}
	c.sink.Write(c.last.String())
	return c.last
}

func (c *controller) Last() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

func (c *controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.spin.SetSpeed(0)
}

func (c *controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.queue.Drain()
	c.normalizer.Reset()
	c.spin.Reset()
	if c.object != nil {
		c.object.SetRotation(0, 0, 0)
	}
}

// fit scales the attached object to the current framebuffer. Skipped while no
// object is attached or the framebuffer is degenerate. Caller must hold the mutex.
func (c *controller) fit() {
	if c.object == nil {
		return
	}
	// CameraZ is the orbit radius, not the camera's current z, so orbiting never changes the fit.
	scale, ok := c.fitter.Fit(viewport.Geometry{
		Width:   c.fbWidth,
		Height:  c.fbHeight,
		FovDeg:  c.camera.Fov(),
		CameraZ: c.orbit.Distance(),
	})
	if !ok {
		return
	}
	c.scale = scale
	c.object.SetUniformScale(scale)
}
