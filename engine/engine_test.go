package engine

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-viewer/engine/profiler"
	"github.com/Carmen-Shannon/oxy-viewer/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
)

// fakeWindow runs its message loop without a platform window.
type fakeWindow struct {
	running  bool
	closed   int
	maxLoops int

	onUpdate     func()
	onResize     func(width, height int)
	onWindowSize func(width, height int)
}

var _ window.Window = &fakeWindow{}

func newFakeWindow(maxLoops int) *fakeWindow {
	return &fakeWindow{running: true, maxLoops: maxLoops}
}

func (f *fakeWindow) SetUpdateCallback(cb func())                      { f.onUpdate = cb }
func (f *fakeWindow) SetResizeCallback(cb func(width, height int))     { f.onResize = cb }
func (f *fakeWindow) SetWindowSizeCallback(cb func(width, height int)) { f.onWindowSize = cb }
func (f *fakeWindow) SetKeyDownCallback(func(keyCode uint32))          {}
func (f *fakeWindow) SetKeyUpCallback(func(keyCode uint32))            {}
func (f *fakeWindow) SetLeftMouseDownCallback(func(x, y int32))        {}
func (f *fakeWindow) SetLeftMouseUpCallback(func(x, y int32))          {}
func (f *fakeWindow) SetMouseMoveCallback(func(x, y int32))            {}
func (f *fakeWindow) SetOrientationCallback(func(beta, gamma float32)) {}
func (f *fakeWindow) SetTitle(string)                                  {}
func (f *fakeWindow) Title() string                                    { return "fake" }
func (f *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor       { return nil }
func (f *fakeWindow) IsRunning() bool                                  { return f.running }
func (f *fakeWindow) Width() int                                       { return 640 }
func (f *fakeWindow) Height() int                                      { return 480 }
func (f *fakeWindow) LogicalSize() (int, int)                          { return 640, 480 }

func (f *fakeWindow) Close() error {
	if !f.running {
		return window.ErrNotInitialized
	}
	f.running = false
	f.closed++
	return nil
}

func (f *fakeWindow) ProcessMessages() {
	for i := 0; f.running && i < f.maxLoops; i++ {
		if f.onUpdate != nil {
			f.onUpdate()
		}
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	w := newFakeWindow(100)
	frames := 0
	var e Engine
	e = NewEngine(
		WithWindow(w),
		WithFrameCallback(func(dt float32) {
			frames++
			if frames == 3 {
				e.Quit()
			}
		}),
	)

	e.Run()

	if frames != 3 {
		t.Fatalf("frames = %d, want 3", frames)
	}
	if w.closed != 1 {
		t.Fatalf("window closed %d times, want 1", w.closed)
	}
	select {
	case <-e.Done():
	default:
		t.Fatal("Done not closed after Run returned")
	}
}

func TestRunEndsWhenWindowCloses(t *testing.T) {
	w := newFakeWindow(5)
	frames := 0
	e := NewEngine(WithWindow(w), WithFrameCallback(func(float32) { frames++ }))

	e.Run()

	if frames != 5 {
		t.Fatalf("frames = %d, want 5", frames)
	}
	if w.closed != 1 {
		t.Fatalf("window closed %d times, want 1", w.closed)
	}
	if e.Step(0.016) {
		t.Fatal("Step after the window closed reports alive")
	}
}

func TestStepRecoversPanic(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	e := NewEngine(WithFrameCallback(func(float32) { panic("boom") }))
	if e.Step(0.016) {
		t.Fatal("Step survived a panicking frame")
	}
	if !strings.Contains(buf.String(), "boom") {
		t.Fatalf("panic not logged: %q", buf.String())
	}
	select {
	case <-e.Done():
	default:
		t.Fatal("engine still running after panic")
	}
}

func TestQuitIsIdempotent(t *testing.T) {
	e := NewEngine()
	e.Quit()
	e.Quit()
	if e.Step(0) {
		t.Fatal("Step after Quit reports alive")
	}
}

func TestStepPassesDeltaTime(t *testing.T) {
	var got float32
	e := NewEngine(WithFrameCallback(func(dt float32) { got = dt }))
	if !e.Step(0.25) {
		t.Fatal("Step reported quit")
	}
	if got != 0.25 {
		t.Fatalf("dt = %v, want 0.25", got)
	}
}

func TestResizeFanOut(t *testing.T) {
	w := newFakeWindow(0)
	var a, b, logical [2]int
	e := NewEngine(
		WithWindow(w),
		WithResizeHandler(func(width, height int) { a = [2]int{width, height} }),
	)
	e.AddResizeHandler(func(width, height int) { b = [2]int{width, height} })
	e.AddResizeHandler(nil)
	e.AddWindowSizeHandler(func(width, height int) { logical = [2]int{width, height} })

	w.onResize(1600, 900)
	w.onWindowSize(800, 450)

	if a != [2]int{1600, 900} || b != [2]int{1600, 900} {
		t.Fatalf("resize handlers got %v and %v", a, b)
	}
	if logical != [2]int{800, 450} {
		t.Fatalf("window size handler got %v", logical)
	}
}

func TestFrameLimitSleepsRemainder(t *testing.T) {
	w := newFakeWindow(2)
	clock := time.Unix(0, 0)
	var slept []time.Duration

	e := NewEngine(
		WithWindow(w),
		WithRenderFrameLimit(50),
		WithFrameCallback(func(float32) { clock = clock.Add(5 * time.Millisecond) }),
	).(*engine)
	e.now = func() time.Time { return clock }
	e.sleep = func(d time.Duration) {
		slept = append(slept, d)
		clock = clock.Add(d)
	}

	e.Run()

	if len(slept) != 2 {
		t.Fatalf("slept %d times, want 2", len(slept))
	}
	for _, d := range slept {
		if d != 15*time.Millisecond {
			t.Fatalf("slept %v, want 15ms", d)
		}
	}
}

func TestProfilerTicksWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	p := profiler.NewProfiler(
		profiler.WithUpdateInterval(time.Nanosecond),
		profiler.WithLogger(log.New(&buf, "", 0)),
	)
	e := NewEngine(WithProfiler(p))
	e.Step(0)
	time.Sleep(time.Millisecond)
	e.Step(0)
	if buf.Len() != 0 {
		t.Fatalf("disabled profiler logged: %q", buf.String())
	}

	e.EnableProfiler()
	e.Step(0)
	time.Sleep(time.Millisecond)
	e.Step(0)
	if !strings.Contains(buf.String(), "[Profiler]") {
		t.Fatalf("enabled profiler did not log: %q", buf.String())
	}
	if e.Profiler() != p {
		t.Fatal("Profiler does not return the configured profiler")
	}
}
