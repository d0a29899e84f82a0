package engine

import (
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-viewer/engine/profiler"
	"github.com/Carmen-Shannon/oxy-viewer/engine/window"
)

// engine implements the Engine interface.
// Input callbacks, the frame callback and window teardown all run on the goroutine
// that calls Run, so they never race each other.
type engine struct {
	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	frameCallback func(deltaTime float32)

	resizeHandlers     []func(width, height int)
	windowSizeHandlers []func(width, height int)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	lastFrame time.Time
	now       func() time.Time
	sleep     func(time.Duration)
}

// Engine is the main entry point for the viewer.
// It hosts the frame loop on top of the window's message loop.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance, or nil when running headless
	Window() window.Window

	// Profiler returns the engine's profiler.
	//
	// Returns:
	//   - *profiler.Profiler: the profiler ticked once per frame while enabled
	Profiler() *profiler.Profiler

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetFrameCallback registers the function called once per frame.
	// Input drain, motion updates and drawing all happen here.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetFrameCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// AddResizeHandler registers a function called when the framebuffer is resized.
	//
	// Parameters:
	//   - handler: function receiving the new size in framebuffer pixels
	AddResizeHandler(handler func(width, height int))

	// AddWindowSizeHandler registers a function called when the logical window size changes.
	//
	// Parameters:
	//   - handler: function receiving the new size in screen coordinates
	AddWindowSizeHandler(handler func(width, height int))

	// Run drives the frame loop from the window's message loop.
	// Blocks until the window closes or Quit is called.
	Run()

	// Step runs a single frame with the given delta time.
	// A panic inside the frame callback is logged and stops the engine.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous frame
	//
	// Returns:
	//   - bool: false once the engine has been asked to quit
	Step(deltaTime float32) bool

	// Done returns a channel that is closed once the engine has quit.
	//
	// Returns:
	//   - <-chan struct{}: the quit channel
	Done() <-chan struct{}

	// Quit signals the frame loop to stop. The window is closed by the loop itself.
	// Safe to call multiple times and from any goroutine; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration (window, profiling, frame limit, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		quitChannel:      make(chan struct{}),
		profilingEnabled: false,
		now:              time.Now,
		sleep:            time.Sleep,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.profiler == nil {
		e.profiler = profiler.NewProfiler()
	}

	if e.window != nil {
		e.window.SetResizeCallback(func(width, height int) {
			for _, h := range e.resizeHandlers {
				h(width, height)
			}
		})
		e.window.SetWindowSizeCallback(func(width, height int) {
			for _, h := range e.windowSizeHandlers {
				h(width, height)
			}
		})
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Profiler() *profiler.Profiler {
	return e.profiler
}

func (e *engine) Run() {
	if e.window == nil {
		log.Printf("[Engine] run called without a window")
		return
	}

	e.lastFrame = e.now()
	e.window.SetUpdateCallback(e.frame)
	e.window.ProcessMessages()

	// The message loop also ends when the user closes the window.
	e.signalQuit()
	if e.window.IsRunning() {
		if err := e.window.Close(); err != nil {
			log.Printf("[Engine] failed to close window: %v", err)
		}
	}
}

// frame is the window update callback: one frame per message loop iteration.
func (e *engine) frame() {
	start := e.now()
	dt := float32(start.Sub(e.lastFrame).Seconds())
	e.lastFrame = start

	if !e.Step(dt) {
		if err := e.window.Close(); err != nil {
			log.Printf("[Engine] failed to close window: %v", err)
		}
		return
	}

	// Frame rate limiting
	if e.renderFrameLimit > 0 {
		elapsed := e.now().Sub(start)
		if remaining := e.renderFrameLimit - elapsed; remaining > 0 {
			e.sleep(remaining)
		}
	}
}

func (e *engine) Step(deltaTime float32) (alive bool) {
	select {
	case <-e.quitChannel:
		return false
	default:
	}

	// Recover from panics inside the frame to avoid crashing the whole process.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] frame recovered from panic: %v", r)
			e.signalQuit()
			alive = false
		}
	}()

	if e.frameCallback != nil {
		e.frameCallback(deltaTime)
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}

	select {
	case <-e.quitChannel:
		return false
	default:
		return true
	}
}

func (e *engine) Done() <-chan struct{} {
	return e.quitChannel
}

// Quit signals the frame loop to stop.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal the loop to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetFrameCallback(callback func(deltaTime float32)) {
	e.frameCallback = callback
}

// SetRenderFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	e.renderFrameLimit = frameDuration(fps)
}

func (e *engine) AddResizeHandler(handler func(width, height int)) {
	if handler != nil {
		e.resizeHandlers = append(e.resizeHandlers, handler)
	}
}

func (e *engine) AddWindowSizeHandler(handler func(width, height int)) {
	if handler != nil {
		e.windowSizeHandlers = append(e.windowSizeHandlers, handler)
	}
}

// frameDuration converts a frames-per-second cap into a minimum frame duration.
func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
