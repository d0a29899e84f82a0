package game_object

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-viewer/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

func TestRotateYAccumulates(t *testing.T) {
	obj := NewGameObject()
	var want float32
	for i := 0; i < 2000; i++ {
		want += 0.01
		obj.RotateY(0.01)
	}
	_, ry, _ := obj.Rotation()
	if ry != want {
		t.Fatalf("ry = %v, want %v", ry, want)
	}
	if ry < 2*math.Pi {
		t.Fatalf("rotation wrapped without the option: %v", ry)
	}
}

func TestRotateYWrap(t *testing.T) {
	obj := NewGameObject(WithRotationWrap(true))
	for i := 0; i < 2000; i++ {
		ry := obj.RotateY(0.01)
		if ry >= 2*math.Pi || ry < 0 {
			t.Fatalf("step %d: ry = %v escaped [0, 2π)", i, ry)
		}
	}

	neg := NewGameObject(WithRotationWrap(true))
	for i := 0; i < 2000; i++ {
		ry := neg.RotateY(-0.01)
		if ry >= 2*math.Pi || ry < 0 {
			t.Fatalf("step %d: ry = %v escaped [0, 2π)", i, ry)
		}
	}

	back := NewGameObject(WithRotationWrap(true))
	if ry := back.RotateY(-0.5); math.Abs(float64(ry)-(2*math.Pi-0.5)) > 1e-6 {
		t.Fatalf("RotateY(-0.5) = %v, want 2π-0.5", ry)
	}
	if ry := back.RotateY(-1e-9); ry >= 2*math.Pi || ry < 0 {
		t.Fatalf("tiny negative step escaped [0, 2π): %v", ry)
	}
}

func TestUniformScaleModelMatrix(t *testing.T) {
	obj := NewGameObject()
	obj.SetUniformScale(6.5)
	obj.SetRotation(0, math.Pi/2, 0)

	m := mgl32.Mat4(obj.ModelMatrix())
	got := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	want := mgl32.Vec3{0, 0, -6.5}
	if got.Sub(want).Len() > 1e-5 {
		t.Fatalf("model*(1,0,0) = %v, want %v", got, want)
	}
}

func TestDefaults(t *testing.T) {
	obj := NewGameObject(WithID(7))
	if obj.ID() != 7 || !obj.Enabled() {
		t.Fatalf("id=%d enabled=%v", obj.ID(), obj.Enabled())
	}
	if sx, sy, sz := obj.Scale(); sx != 1 || sy != 1 || sz != 1 {
		t.Fatalf("scale = (%v,%v,%v), want unit", sx, sy, sz)
	}
	obj.SetEnabled(false)
	if obj.Enabled() {
		t.Fatal("SetEnabled(false) ignored")
	}
}

func TestBoundingRadiusCoversChildren(t *testing.T) {
	a := model.NewMesh(model.WithGeometry([]model.GPUVertex{{Position: [3]float32{0.5, 0, 0}}}, nil))
	b := model.NewMesh(model.WithGeometry([]model.GPUVertex{{Position: [3]float32{0, 0, 2}}}, nil))
	obj := NewGameObject(WithMeshes(a, b))

	if len(obj.Meshes()) != 2 || obj.Meshes()[0] != a {
		t.Fatal("children out of order")
	}
	if obj.BoundingRadius() != 2 {
		t.Fatalf("bounding radius = %v, want 2", obj.BoundingRadius())
	}
}
