package controller

import (
	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/input"
	"github.com/Carmen-Shannon/oxy-viewer/engine/profiler"
	"github.com/Carmen-Shannon/oxy-viewer/engine/spin"
	"github.com/Carmen-Shannon/oxy-viewer/engine/status"
	"github.com/Carmen-Shannon/oxy-viewer/engine/viewport"
)

// ControllerBuilderOption is a functional option for configuring a Controller.
type ControllerBuilderOption func(*controller)

// WithNormalizer sets the input normalizer.
//
// Parameters:
//   - n: the normalizer queued events are folded through
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithNormalizer(n input.Normalizer) ControllerBuilderOption {
	return func(c *controller) {
		c.normalizer = n
	}
}

// WithSpinModel sets the spin velocity model.
//
// Parameters:
//   - m: the spin model stepped each frame
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithSpinModel(m spin.Model) ControllerBuilderOption {
	return func(c *controller) {
		c.spin = m
	}
}

// WithCamera sets the camera. Its attached CameraController, if any, becomes the orbit.
//
// Parameters:
//   - cam: the camera whose matrices are refreshed each frame
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithCamera(cam camera.Camera) ControllerBuilderOption {
	return func(c *controller) {
		c.camera = cam
	}
}

// WithOrbit sets the orbit controller positioned from the normalized pointer.
// It is attached to the camera during construction.
//
// Parameters:
//   - orbit: the orbit camera controller
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithOrbit(orbit camera.CameraController) ControllerBuilderOption {
	return func(c *controller) {
		c.orbit = orbit
	}
}

// WithFitter sets the viewport fitter.
//
// Parameters:
//   - f: the fitter used on attach and resize
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithFitter(f viewport.Fitter) ControllerBuilderOption {
	return func(c *controller) {
		c.fitter = f
	}
}

// WithStatusSink sets where the per-frame diagnostic line is written.
//
// Parameters:
//   - sink: the status sink (nil keeps the discard sink)
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithStatusSink(sink status.Sink) ControllerBuilderOption {
	return func(c *controller) {
		if sink != nil {
			c.sink = sink
		}
	}
}

// WithProfiler reports each frame's spin speed to the profiler.
//
// Parameters:
//   - p: the profiler receiving speed samples
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) ControllerBuilderOption {
	return func(c *controller) {
		c.profiler = p
	}
}

// WithQueueLimit bounds the number of input events buffered between frames.
// Non-positive values keep DefaultQueueLimit.
//
// Parameters:
//   - limit: maximum queued events
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithQueueLimit(limit int) ControllerBuilderOption {
	return func(c *controller) {
		if limit > 0 {
			c.queueLimit = limit
		}
	}
}
