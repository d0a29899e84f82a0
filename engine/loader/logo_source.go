package loader

import (
	"math"

	"github.com/Carmen-Shannon/oxy-viewer/engine/model"
)

// Logo dimensions in model units. The whole logo fits inside a sphere of radius
// LogoRadius so that the default viewport fit keeps it on screen.
const (
	LogoRadius float32 = logoRingMajor + logoRingMinor

	logoRingMajor  float32 = 0.025
	logoRingMinor  float32 = 0.007
	logoBarHalfW   float32 = 0.004
	logoBarHalfH   float32 = 0.025
	logoRingRadial         = 48
	logoRingTube           = 16
)

// LogoSource returns the built-in viewer logo: a ring (first child) crossed by a
// vertical bar (second child), both centered at the origin in the XY plane.
//
// Returns:
//   - Source: the logo source
func LogoSource() Source {
	return NewSource("logo", func() ([]model.Mesh, error) {
		ringV, ringI := torus(logoRingMajor, logoRingMinor, logoRingRadial, logoRingTube)
		barV, barI := box(logoBarHalfW, logoBarHalfH, logoBarHalfW)
		return []model.Mesh{
			model.NewMesh(model.WithName("ring"), model.WithGeometry(ringV, ringI)),
			model.NewMesh(model.WithName("bar"), model.WithGeometry(barV, barI)),
		}, nil
	})
}

// torus builds a ring around the Z axis with its tube centered on radius major.
func torus(major, minor float32, radial, tube int) ([]model.GPUVertex, []uint32) {
	verts := make([]model.GPUVertex, 0, (radial+1)*(tube+1))
	for i := 0; i <= radial; i++ {
		u := 2 * math.Pi * float64(i) / float64(radial)
		cu, su := math.Cos(u), math.Sin(u)
		for j := 0; j <= tube; j++ {
			v := 2 * math.Pi * float64(j) / float64(tube)
			cv, sv := math.Cos(v), math.Sin(v)

			r := float64(major) + float64(minor)*cv
			verts = append(verts, model.GPUVertex{
				Position: [3]float32{float32(r * cu), float32(r * su), float32(float64(minor) * sv)},
				Normal:   [3]float32{float32(cv * cu), float32(cv * su), float32(sv)},
			})
		}
	}

	indices := make([]uint32, 0, radial*tube*6)
	stride := uint32(tube + 1)
	for i := 0; i < radial; i++ {
		for j := 0; j < tube; j++ {
			a := uint32(i)*stride + uint32(j)
			b := a + stride
			indices = append(indices, a, b, a+1, b, b+1, a+1)
		}
	}
	return verts, indices
}

// box builds an axis-aligned box with per-face normals.
func box(hx, hy, hz float32) ([]model.GPUVertex, []uint32) {
	faces := []struct {
		n, u, v [3]float32
	}{
		{[3]float32{0, 0, 1}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}},
		{[3]float32{0, 0, -1}, [3]float32{-1, 0, 0}, [3]float32{0, 1, 0}},
		{[3]float32{1, 0, 0}, [3]float32{0, 0, -1}, [3]float32{0, 1, 0}},
		{[3]float32{-1, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, 1, 0}},
		{[3]float32{0, 1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, -1}},
		{[3]float32{0, -1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, 1}},
	}
	half := [3]float32{hx, hy, hz}

	verts := make([]model.GPUVertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range faces {
		base := uint32(len(verts))
		for _, c := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			var p [3]float32
			for k := range 3 {
				p[k] = (f.n[k] + c[0]*f.u[k] + c[1]*f.v[k]) * half[k]
			}
			verts = append(verts, model.GPUVertex{Position: p, Normal: f.n})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return verts, indices
}
