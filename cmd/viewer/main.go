// Command viewer shows a two-part logo that spins under pointer, touch or
// gamepad-tilt input and keeps it framed as the window resizes.
package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/Carmen-Shannon/oxy-viewer/engine"
	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/controller"
	"github.com/Carmen-Shannon/oxy-viewer/engine/game_object"
	"github.com/Carmen-Shannon/oxy-viewer/engine/input"
	"github.com/Carmen-Shannon/oxy-viewer/engine/loader"
	"github.com/Carmen-Shannon/oxy-viewer/engine/renderer"
	"github.com/Carmen-Shannon/oxy-viewer/engine/spin"
	"github.com/Carmen-Shannon/oxy-viewer/engine/window"
)

const title = "Oxy Viewer"

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("[Viewer] %v", err)
	}
	src, err := sourceFor(cfg.asset)
	if err != nil {
		log.Fatalf("[Viewer] %v", err)
	}

	// ── Window + Engine ─────────────────────────────────────────────────
	winOpts := []window.WindowBuilderOption{
		window.WithTitle(title),
		window.WithWidth(cfg.width),
		window.WithHeight(cfg.height),
	}
	if cfg.gamepad >= 0 {
		winOpts = append(winOpts, window.WithGamepadOrientation(cfg.gamepad, 0.05))
	}
	win := window.NewWindow(winOpts...)

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithProfiling(cfg.profile),
		engine.WithRenderFrameLimit(cfg.fps),
	)

	// ── Renderer ────────────────────────────────────────────────────────
	presentMode := renderer.PresentModeUncapped
	if cfg.vsync {
		presentMode = renderer.PresentModeVSync
	}
	msaa := renderer.MSAAOff
	if cfg.msaa {
		msaa = renderer.MSAA4x
	}
	r := renderer.NewRenderer(renderer.BackendTypeWGPU, win,
		renderer.WithPresentMode(presentMode),
		renderer.WithMSAA(msaa),
	)
	defer r.Release()

	// ── Controller ──────────────────────────────────────────────────────
	sink, err := newStatusSink(cfg.status, cfg.statusEvery, win.SetTitle, title)
	if err != nil {
		log.Fatalf("[Viewer] %v", err)
	}
	orbit := camera.NewCameraController(camera.WithRotationScale(float32(cfg.rotScale)))
	ctrl := controller.NewController(
		controller.WithOrbit(orbit),
		controller.WithCamera(camera.NewCamera(
			camera.WithController(orbit),
			camera.WithFov(float32(cfg.fov)),
		)),
		controller.WithNormalizer(input.NewNormalizer(input.WithGammaClamp(cfg.clampGamma))),
		controller.WithSpinModel(spin.NewModel(
			spin.WithAccel(float32(cfg.accel)),
			spin.WithDecel(float32(cfg.decel)),
			spin.WithMaxSpeed(float32(cfg.maxSpin)),
		)),
		controller.WithStatusSink(sink),
		controller.WithProfiler(eng.Profiler()),
	)
	ctrl.Resize(win.Width(), win.Height())
	ctrl.SetViewportSize(win.LogicalSize())

	// ── Input ───────────────────────────────────────────────────────────
	win.SetMouseMoveCallback(func(x, y int32) {
		ctrl.HandleEvent(input.PointerMove(float32(x), float32(y)))
	})
	win.SetLeftMouseDownCallback(func(x, y int32) {
		ctrl.HandleEvent(input.PointerDown())
	})
	win.SetLeftMouseUpCallback(func(x, y int32) {
		ctrl.HandleEvent(input.PointerUp())
	})
	win.SetOrientationCallback(func(beta, gamma float32) {
		ctrl.HandleEvent(input.Orientation(beta, gamma))
	})
	win.SetKeyDownCallback(keyHandler(ctrl))
	eng.AddResizeHandler(func(width, height int) {
		r.Resize(width, height)
		ctrl.Resize(width, height)
	})
	eng.AddWindowSizeHandler(ctrl.SetViewportSize)

	// ── Asset ───────────────────────────────────────────────────────────
	ld := loader.NewLoader(loader.WithObjectOptions(game_object.WithRotationWrap(cfg.wrap)))
	defer ld.Close()
	if err := ld.Load(src); err != nil {
		log.Fatalf("[Viewer] %v", err)
	}

	eng.SetFrameCallback(newFrame(ld, ctrl, r))

	log.Printf("[Viewer] starting: asset=%s size=%dx%d", src.Name(), cfg.width, cfg.height)
	eng.Run()
}

// keyHandler maps viewer keys onto the controller: space stops the spin and R
// resets the view.
func keyHandler(ctrl controller.Controller) func(uint32) {
	return func(keyCode uint32) {
		switch keyCode {
		case common.KeySpace:
			ctrl.Stop()
		case common.KeyR:
			ctrl.Reset()
		}
	}
}

// newFrame returns the per-frame callback: attach the asset once it is loaded,
// advance the controller, then draw.
func newFrame(ld loader.Loader, ctrl controller.Controller, r renderer.Renderer) func(float32) {
	attached := false
	failed := false
	var lastErr string

	return func(float32) {
		if !attached && !failed {
			select {
			case <-ld.Done():
				obj, err := ld.Result()
				if err == nil {
					err = r.Upload(obj)
				}
				if err != nil {
					// The window stays open on the clear color, as before the load finished.
					log.Printf("[Viewer] asset unavailable: %v", err)
					failed = true
					break
				}
				ctrl.Attach(obj)
				attached = true
			default:
			}
		}

		ctrl.Step()

		if err := r.Draw(ctrl.Camera(), ctrl.Object()); err != nil {
			if msg := err.Error(); msg != lastErr {
				log.Printf("[Viewer] draw: %v", err)
				lastErr = msg
			}
			return
		}
		lastErr = ""
	}
}
