package viewport

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/go-gl/mathgl/mgl32"
)

func TestVisibleHeightAtDepth(t *testing.T) {
	tests := []struct {
		name                string
		depth, cameraZ, fov float32
		want                float32
	}{
		{"fov 30 at one unit", 0, 1, 30, 0.5358984},
		{"fov 90 at one unit", 0, 1, 90, 2},
		{"depth behind camera", 2, 1, 90, 6},
		{"camera at target", 0, 0, 60, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleHeightAtDepth(tt.depth, tt.cameraZ, tt.fov)
			if !mgl32.FloatEqualThreshold(got, tt.want, 1e-5) {
				t.Fatalf("height = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVisibleWidthAtDepth(t *testing.T) {
	h := VisibleHeightAtDepth(0, 1, 30)
	if w := VisibleWidthAtDepth(0, 1, 30, 2); !mgl32.FloatEqualThreshold(w, 2*h, 1e-6) {
		t.Fatalf("width = %v, want %v", w, 2*h)
	}
}

func TestFitSquare(t *testing.T) {
	f := NewFitter()
	scale, ok := f.Fit(Geometry{Width: 800, Height: 800, FovDeg: 30, CameraZ: 1})
	if !ok {
		t.Fatal("fit skipped for valid geometry")
	}
	want := float32(13 * 2 * math.Tan(15*math.Pi/180))
	if !mgl32.FloatEqualThreshold(scale, want, 1e-5) {
		t.Fatalf("scale = %v, want %v", scale, want)
	}
	if f.LastScale() != scale {
		t.Fatalf("LastScale = %v, want %v", f.LastScale(), scale)
	}
}

func TestFitUsesSmallerDimension(t *testing.T) {
	f := NewFitter()
	h := VisibleHeightAtDepth(0, 1, 30)

	wide, _ := f.Fit(Geometry{Width: 1600, Height: 800, FovDeg: 30, CameraZ: 1})
	if !mgl32.FloatEqualThreshold(wide, 13*h, 1e-5) {
		t.Fatalf("wide scale = %v, want height-bound %v", wide, 13*h)
	}

	tall, _ := f.Fit(Geometry{Width: 400, Height: 800, FovDeg: 30, CameraZ: 1})
	if !mgl32.FloatEqualThreshold(tall, 13*h*0.5, 1e-5) {
		t.Fatalf("tall scale = %v, want width-bound %v", tall, 13*h*0.5)
	}
}

func TestFitSkipsDegenerate(t *testing.T) {
	f := NewFitter()
	f.Fit(Geometry{Width: 640, Height: 480, FovDeg: 30, CameraZ: 1})
	last := f.LastScale()

	for _, g := range []Geometry{
		{Width: 0, Height: 480, FovDeg: 30, CameraZ: 1},
		{Width: 640, Height: 0, FovDeg: 30, CameraZ: 1},
		{Width: 640, Height: 480, FovDeg: 0, CameraZ: 1},
		{Width: 640, Height: 480, FovDeg: 180, CameraZ: 1},
		{Width: 640, Height: 480, FovDeg: 30, CameraZ: 0},
	} {
		if s, ok := f.Fit(g); ok {
			t.Fatalf("%+v: fit not skipped, scale %v", g, s)
		}
	}
	if f.LastScale() != last {
		t.Fatalf("skipped fit changed LastScale: %v -> %v", last, f.LastScale())
	}
}

func TestFitKeepsUnitExtentInFrustum(t *testing.T) {
	// An object whose bounding radius is 1/(2*logoScale) scaled by the fit fills
	// the smaller visible dimension; a slightly smaller sphere must stay inside.
	const radius = 0.9 / (2 * DefaultLogoScale)

	for _, size := range [][2]int{{800, 800}, {1600, 600}, {500, 1200}} {
		g := Geometry{Width: size[0], Height: size[1], FovDeg: 30, CameraZ: 1}
		scale, ok := NewFitter().Fit(g)
		if !ok {
			t.Fatalf("%v: fit skipped", size)
		}

		view := mgl32.LookAtV(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
		vp := common.Perspective(mgl32.DegToRad(30), g.Aspect(), 0.1, 1000).Mul4(view)

		fr := common.ExtractFrustumFromMatrix(vp[:])
		if !fr.ContainsSphere([3]float32{}, radius*scale) {
			t.Fatalf("%v: sphere of radius %v escapes the frustum", size, radius*scale)
		}
	}
}

func TestOptions(t *testing.T) {
	f := NewFitter(WithLogoScale(2), WithDepth(-1), WithLogoScale(0))
	if f.LogoScale() != 2 || f.Depth() != -1 {
		t.Fatalf("logo=%v depth=%v", f.LogoScale(), f.Depth())
	}
}
