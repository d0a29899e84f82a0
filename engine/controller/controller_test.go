package controller

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/game_object"
	"github.com/Carmen-Shannon/oxy-viewer/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

type recordingSink struct {
	lines []string
}

func (r *recordingSink) Write(line string) {
	r.lines = append(r.lines, line)
}

func TestStepBeforeAttachIsNoop(t *testing.T) {
	sink := &recordingSink{}
	c := NewController(WithStatusSink(sink))
	c.Resize(1000, 800)
	c.HandleEvent(input.PointerMove(1000, 800))

	st := c.Step()
	if st.Ready {
		t.Fatal("status ready without an object")
	}
	if st.Speed != 0 || st.RotationY != 0 {
		t.Fatalf("motion before attach: %+v", st)
	}
	if st.Pointer.XF != 0.5 || st.Pointer.YF != 0.5 {
		t.Fatalf("pointer not normalized before attach: %+v", st.Pointer)
	}
	if len(sink.lines) != 0 {
		t.Fatalf("status written before attach: %v", sink.lines)
	}
	if st.String() != "loading" {
		t.Fatalf("String() = %q", st.String())
	}
}

func TestAttachFitsObject(t *testing.T) {
	c := NewController()
	c.Resize(800, 600)
	obj := game_object.NewGameObject()
	c.Attach(obj)

	want := float32(13 * 2 * math.Tan(15*math.Pi/180))
	sx, sy, sz := obj.Scale()
	if !mgl32.FloatEqualThreshold(sx, want, 1e-5) || sx != sy || sy != sz {
		t.Fatalf("scale = (%v,%v,%v), want uniform %v", sx, sy, sz, want)
	}
	if c.Object() != obj {
		t.Fatal("Object does not return the attached object")
	}
	if got := c.Camera().Aspect(); !mgl32.FloatEqualThreshold(got, 800.0/600.0, 1e-6) {
		t.Fatalf("aspect = %v", got)
	}
}

func TestResizeRefitsAndSkipsZero(t *testing.T) {
	c := NewController()
	obj := game_object.NewGameObject()
	c.Attach(obj)
	if sx, _, _ := obj.Scale(); sx != 1 {
		t.Fatalf("object scaled before any viewport size: %v", sx)
	}

	c.Resize(600, 800)
	portrait, _, _ := obj.Scale()
	if !(portrait > 0) || math.IsInf(float64(portrait), 0) {
		t.Fatalf("scale not finite positive: %v", portrait)
	}

	c.Resize(0, 800)
	if sx, _, _ := obj.Scale(); sx != portrait {
		t.Fatalf("zero-width resize changed scale to %v", sx)
	}
	if got := c.Camera().Aspect(); !mgl32.FloatEqualThreshold(got, 0.75, 1e-6) {
		t.Fatalf("zero-width resize changed aspect to %v", got)
	}

	st := c.Step()
	if st.Scale != portrait {
		t.Fatalf("status scale = %v, want %v", st.Scale, portrait)
	}
}

func TestDragSpinsAndReleaseDecays(t *testing.T) {
	sink := &recordingSink{}
	c := NewController(WithStatusSink(sink))
	c.Resize(1000, 800)
	obj := game_object.NewGameObject()
	c.Attach(obj)

	c.HandleEvent(input.PointerDown())
	c.HandleEvent(input.PointerMove(500, 400))
	c.HandleEvent(input.PointerMove(490, 400))

	st := c.Step()
	if !st.Ready || st.Speed != -0.008 || st.RotationY != -0.008 {
		t.Fatalf("drag step = %+v", st)
	}
	if len(sink.lines) != 1 || sink.lines[0] != "speed: -0.008 y: -0.008" {
		t.Fatalf("status lines = %q", sink.lines)
	}

	c.HandleEvent(input.PointerUp())
	st = c.Step()
	if !mgl32.FloatEqualThreshold(st.Speed, -0.0075, 1e-6) {
		t.Fatalf("released speed = %v, want -0.0075", st.Speed)
	}
	if !mgl32.FloatEqualThreshold(st.RotationY, -0.0155, 1e-6) {
		t.Fatalf("rotation = %v, want -0.0155", st.RotationY)
	}
	if c.Last() != st {
		t.Fatal("Last does not match the latest Step")
	}
}

func TestPointerDrivesOrbit(t *testing.T) {
	orbit := camera.NewCameraController(camera.WithRotationScale(0.2))
	c := NewController(WithOrbit(orbit))
	c.Resize(1000, 800)
	c.Attach(game_object.NewGameObject())

	c.HandleEvent(input.PointerMove(1000, 0))
	c.Step()

	angle := float32(2 * math.Pi * 0.2 * -1)
	if !mgl32.FloatEqualThreshold(orbit.Yaw(), 0.5*angle, 1e-5) {
		t.Fatalf("yaw = %v, want %v", orbit.Yaw(), 0.5*angle)
	}
	if !mgl32.FloatEqualThreshold(orbit.Pitch(), -0.5*angle, 1e-5) {
		t.Fatalf("pitch = %v, want %v", orbit.Pitch(), -0.5*angle)
	}
	if c.Camera().Controller() != orbit {
		t.Fatal("orbit not attached to the camera")
	}

	x, y, z := orbit.Position()
	if d := (mgl32.Vec3{x, y, z}).Len(); !mgl32.FloatEqualThreshold(d, 1, 1e-5) {
		t.Fatalf("orbit radius = %v, want 1", d)
	}
}

func TestViewportSizeOverridesFramebuffer(t *testing.T) {
	c := NewController()
	c.Resize(2000, 1600)
	c.SetViewportSize(1000, 800)
	c.Resize(2000, 1600)

	c.HandleEvent(input.PointerMove(1000, 800))
	st := c.Step()
	if st.Pointer.XF != 0.5 || st.Pointer.YF != 0.5 {
		t.Fatalf("pointer normalized against framebuffer: %+v", st.Pointer)
	}
}

func TestStopAndReset(t *testing.T) {
	c := NewController()
	c.Resize(1000, 800)
	c.Attach(game_object.NewGameObject())

	c.HandleEvent(input.PointerDown())
	c.HandleEvent(input.PointerMove(500, 400))
	c.HandleEvent(input.PointerMove(490, 400))
	c.Step()

	c.Stop()
	c.HandleEvent(input.PointerUp())
	st := c.Step()
	if st.Speed != 0 || st.RotationY != -0.008 {
		t.Fatalf("after stop = %+v", st)
	}

	c.HandleEvent(input.PointerDown())
	c.HandleEvent(input.PointerMove(100, 100))
	c.Reset()
	st = c.Step()
	if st.Speed != 0 || st.RotationY != 0 {
		t.Fatalf("after reset = %+v", st)
	}
	if st.Pointer != (input.PointerState{}) {
		t.Fatalf("pending input survived reset: %+v", st.Pointer)
	}
}

func TestFitUsesOrbitRadius(t *testing.T) {
	c := NewController()
	c.Resize(1000, 800)
	c.Attach(game_object.NewGameObject())
	centered := c.Step().Scale

	c.HandleEvent(input.PointerMove(1000, 800))
	c.Step()
	c.Resize(1000, 800)
	if st := c.Step(); st.Scale != centered {
		t.Fatalf("scale after orbiting = %v, want %v", st.Scale, centered)
	}
}
