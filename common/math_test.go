package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name         string
		v, lo, hi, w float32
	}{
		{"inside", 10, -90, 90, 10},
		{"below", -120, -90, 90, -90},
		{"above", 180, -90, 90, 90},
		{"on bound", 90, -90, 90, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.w {
				t.Fatalf("Clamp(%v) = %v, want %v", tt.v, got, tt.w)
			}
		})
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	near, far := float32(0.1), float32(1000)
	proj := Perspective(mgl32.DegToRad(30), 1.5, near, far)

	project := func(z float32) float32 {
		clipZ := proj[10]*z + proj[14]
		clipW := proj[11]*z + proj[15]
		return clipZ / clipW
	}
	if got := project(-near); math.Abs(float64(got)) > 1e-5 {
		t.Fatalf("near plane depth = %v, want 0", got)
	}
	if got := project(-far); math.Abs(float64(got-1)) > 1e-4 {
		t.Fatalf("far plane depth = %v, want 1", got)
	}
}

func TestBuildModelMatrixUniformScale(t *testing.T) {
	m := BuildModelMatrix([3]float32{1, 2, 3}, [3]float32{}, [3]float32{4, 4, 4})
	want := mgl32.Mat4{4, 0, 0, 0, 0, 4, 0, 0, 0, 0, 4, 0, 1, 2, 3, 1}
	if m != want {
		t.Fatalf("model = %v, want %v", m, want)
	}
}

func TestBuildModelMatrixYRotation(t *testing.T) {
	m := BuildModelMatrix([3]float32{}, [3]float32{0, math.Pi / 2, 0}, [3]float32{1, 1, 1})
	// +X rotated a quarter turn about Y lands on -Z.
	x := mgl32.Vec3{m[0], m[1], m[2]}
	if x.Sub(mgl32.Vec3{0, 0, -1}).Len() > 1e-6 {
		t.Fatalf("rotated X axis = %v, want (0,0,-1)", x)
	}
}

func TestBuildModelMatrixRotationOrder(t *testing.T) {
	// Pitch is applied after roll and before yaw: a point on +Y rolled a quarter
	// turn about Z lands on -X, which pitch leaves alone and yaw carries to +Z.
	m := BuildModelMatrix([3]float32{}, [3]float32{math.Pi / 2, math.Pi / 2, math.Pi / 2}, [3]float32{1, 1, 1})
	got := m.Mul4x1(mgl32.Vec4{0, 1, 0, 1}).Vec3()
	if got.Sub(mgl32.Vec3{0, 0, 1}).Len() > 1e-6 {
		t.Fatalf("rotated +Y = %v, want (0,0,1)", got)
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce[float32](0, 0, 0.4, 0.2); got != 0.4 {
		t.Fatalf("Coalesce = %v, want 0.4", got)
	}
	if got := Coalesce[int](); got != 0 {
		t.Fatalf("Coalesce() = %v, want 0", got)
	}
}
