package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/loader"
	"github.com/Carmen-Shannon/oxy-viewer/engine/spin"
	"github.com/Carmen-Shannon/oxy-viewer/engine/status"
)

// config is the command-line configuration of the viewer.
type config struct {
	asset         string
	width, height int
	rotScale      float64
	fov           float64
	accel, decel  float64
	maxSpin       float64
	wrap          bool
	fps           float64
	vsync         bool
	msaa          bool
	profile       bool
	status        string
	statusEvery   time.Duration
	gamepad       int
	clampGamma    bool
}

// parseConfig reads the viewer flags from args (without the program name).
func parseConfig(args []string, output io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cfg.asset, "asset", "logo", "asset to view (logo)")
	fs.IntVar(&cfg.width, "width", 1280, "initial window width")
	fs.IntVar(&cfg.height, "height", 720, "initial window height")
	fs.Float64Var(&cfg.rotScale, "rot-scale", float64(camera.DefaultRotationScale), "fraction of a full turn the camera orbits across the window")
	fs.Float64Var(&cfg.fov, "fov", float64(camera.DefaultFov), "vertical field of view in degrees")
	fs.Float64Var(&cfg.accel, "accel", float64(spin.DefaultAccel), "spin acceleration per dragged frame")
	fs.Float64Var(&cfg.decel, "decel", float64(spin.DefaultDecel), "spin deceleration per released frame")
	fs.Float64Var(&cfg.maxSpin, "max-spin", 0, "spin speed cap in radians per frame (0 = unbounded)")
	fs.BoolVar(&cfg.wrap, "wrap", false, "wrap the accumulated rotation into [0, 2π)")
	fs.Float64Var(&cfg.fps, "fps", 60, "frame rate cap (0 = uncapped)")
	fs.BoolVar(&cfg.vsync, "vsync", true, "present on vertical blank")
	fs.BoolVar(&cfg.msaa, "msaa", true, "enable 4x multisample anti-aliasing")
	fs.BoolVar(&cfg.profile, "profile", false, "log frame rate and memory statistics")
	fs.StringVar(&cfg.status, "status", "title", "comma-separated status line targets: title, log, stdout, or none")
	fs.DurationVar(&cfg.statusEvery, "status-every", 100*time.Millisecond, "minimum interval between status lines")
	fs.IntVar(&cfg.gamepad, "gamepad", -1, "joystick index used as a tilt source (-1 = off)")
	fs.BoolVar(&cfg.clampGamma, "clamp-gamma", false, "clamp left-right tilt to ±90 degrees")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.width <= 0 || cfg.height <= 0 {
		return config{}, fmt.Errorf("window size must be positive, got %dx%d", cfg.width, cfg.height)
	}
	if cfg.rotScale <= 0 {
		return config{}, fmt.Errorf("rot-scale must be positive, got %v", cfg.rotScale)
	}
	if cfg.fov <= 0 || cfg.fov >= 180 {
		return config{}, fmt.Errorf("fov must be in (0, 180), got %v", cfg.fov)
	}
	if cfg.accel < 0 || cfg.decel < 0 || cfg.maxSpin < 0 {
		return config{}, fmt.Errorf("accel, decel and max-spin must not be negative")
	}
	return cfg, nil
}

// newStatusSink builds the sink the per-frame status line is written to. targets is
// a comma-separated list; "none" must appear alone.
func newStatusSink(targets string, every time.Duration, setTitle func(string), title string) (status.Sink, error) {
	if targets == "none" {
		return status.Discard, nil
	}

	var sinks []status.Sink
	for _, target := range strings.Split(targets, ",") {
		switch strings.TrimSpace(target) {
		case "title":
			sinks = append(sinks, status.NewTitleSink(title, setTitle))
		case "log":
			sinks = append(sinks, status.NewLogSink(log.Default()))
		case "stdout":
			sinks = append(sinks, status.NewWriterSink(os.Stdout))
		default:
			return nil, fmt.Errorf("unknown status target %q", target)
		}
	}

	sink := sinks[0]
	if len(sinks) > 1 {
		sink = status.NewMultiSink(sinks...)
	}
	if every > 0 {
		sink = status.NewThrottledSink(sink, every)
	}
	return sink, nil
}

// sourceFor resolves the -asset flag to a loader source.
func sourceFor(name string) (loader.Source, error) {
	switch name {
	case "logo":
		return loader.LogoSource(), nil
	default:
		return nil, fmt.Errorf("unknown asset %q", name)
	}
}
