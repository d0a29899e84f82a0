package loader

import (
	"errors"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-viewer/engine/game_object"
	"github.com/Carmen-Shannon/oxy-viewer/engine/model"
)

func waitDone(t *testing.T, l Loader) {
	t.Helper()
	select {
	case <-l.Done():
	case <-time.After(5 * time.Second):
		t.Fatalf("load did not finish, state %v", l.State())
	}
}

func meshes(n int) func() ([]model.Mesh, error) {
	return func() ([]model.Mesh, error) {
		out := make([]model.Mesh, n)
		for i := range out {
			out[i] = model.NewMesh()
		}
		return out, nil
	}
}

func TestLoadLogo(t *testing.T) {
	l := NewLoader()
	defer l.Close()

	if l.State() != StatePending || l.Object() != nil {
		t.Fatalf("fresh loader: state %v, object %v", l.State(), l.Object())
	}
	if _, err := l.Result(); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("Result before load: %v, want ErrNotLoaded", err)
	}

	if err := l.Load(LogoSource()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	waitDone(t, l)

	obj, err := l.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if l.State() != StateLoaded || l.Err() != nil {
		t.Fatalf("state %v, err %v", l.State(), l.Err())
	}
	children := obj.Meshes()
	if len(children) != 2 {
		t.Fatalf("children = %d, want 2", len(children))
	}
	if children[0].Color() != model.ColorFromHex(PrimaryAccent) {
		t.Fatalf("first child color = %v", children[0].Color())
	}
	if children[1].Color() != model.ColorFromHex(NeutralAccent) {
		t.Fatalf("second child color = %v", children[1].Color())
	}
	if r := obj.BoundingRadius(); r <= 0 || r > LogoRadius*1.0001 {
		t.Fatalf("bounding radius = %v, want (0, %v]", r, LogoRadius)
	}
	for _, m := range children {
		if m.IndexCount() == 0 || m.IndexCount()%3 != 0 {
			t.Fatalf("%s: index count %d is not a triangle list", m.Name(), m.IndexCount())
		}
		for _, idx := range m.Indices() {
			if int(idx) >= len(m.Vertices()) {
				t.Fatalf("%s: index %d out of range", m.Name(), idx)
			}
		}
	}
}

func TestLoadWrongShape(t *testing.T) {
	for _, n := range []int{0, 1, 3} {
		l := NewLoader()
		if err := l.Load(NewSource("bad", meshes(n))); err != nil {
			t.Fatalf("Load: %v", err)
		}
		waitDone(t, l)

		if l.State() != StateFailed {
			t.Fatalf("%d children: state %v, want failed", n, l.State())
		}
		if !errors.Is(l.Err(), ErrAssetShape) {
			t.Fatalf("%d children: err %v, want ErrAssetShape", n, l.Err())
		}
		if _, err := l.Result(); !errors.Is(err, ErrAssetShape) {
			t.Fatalf("Result err %v", err)
		}
		l.Close()
	}
}

func TestLoadSourceError(t *testing.T) {
	boom := errors.New("boom")
	l := NewLoader()
	defer l.Close()

	l.Load(NewSource("broken", func() ([]model.Mesh, error) { return nil, boom }))
	waitDone(t, l)
	if !errors.Is(l.Err(), boom) || l.Object() != nil {
		t.Fatalf("err %v, object %v", l.Err(), l.Object())
	}
}

func TestLoadSourcePanic(t *testing.T) {
	l := NewLoader()
	defer l.Close()

	l.Load(NewSource("panics", func() ([]model.Mesh, error) { panic("bad asset") }))
	waitDone(t, l)
	if l.State() != StateFailed || l.Err() == nil {
		t.Fatalf("state %v, err %v", l.State(), l.Err())
	}
}

func TestLoadTwice(t *testing.T) {
	l := NewLoader()
	defer l.Close()

	if err := l.Load(NewSource("ok", meshes(2))); err != nil {
		t.Fatal(err)
	}
	if err := l.Load(NewSource("again", meshes(2))); !errors.Is(err, ErrLoadStarted) {
		t.Fatalf("second Load: %v, want ErrLoadStarted", err)
	}
	waitDone(t, l)
}

func TestLoadAfterClose(t *testing.T) {
	l := NewLoader()
	l.Close()
	l.Close()
	if err := l.Load(LogoSource()); !errors.Is(err, ErrClosed) {
		t.Fatalf("Load after Close: %v, want ErrClosed", err)
	}
}

func TestOptions(t *testing.T) {
	l := NewLoader(
		WithWorkers(2),
		WithAccentColors(0xFF0000, 0x0000FF),
		WithObjectOptions(game_object.WithRotationWrap(true), game_object.WithID(9)),
	)
	defer l.Close()

	l.Load(NewSource("ok", meshes(2)))
	waitDone(t, l)

	obj := l.Object()
	if obj.ID() != 9 {
		t.Fatalf("object options not applied: id %d", obj.ID())
	}
	if obj.Meshes()[0].Color() != [4]float32{1, 0, 0, 1} || obj.Meshes()[1].Color() != [4]float32{0, 0, 1, 1} {
		t.Fatalf("colors = %v / %v", obj.Meshes()[0].Color(), obj.Meshes()[1].Color())
	}
}

func TestStateString(t *testing.T) {
	if StateLoading.String() != "loading" || State(42).String() != "unknown" {
		t.Fatal("unexpected state names")
	}
}

func TestNewSourceDefaultsName(t *testing.T) {
	if got := NewSource("", nil).Name(); got != "unnamed" {
		t.Fatalf("Name() = %q, want unnamed", got)
	}
}
