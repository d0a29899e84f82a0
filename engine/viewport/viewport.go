package viewport

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Geometry is the viewport state the fitter reads: window size in pixels, the camera's
// vertical field of view in degrees, and the camera's distance along Z from the origin.
type Geometry struct {
	Width, Height int
	FovDeg        float32
	CameraZ       float32
}

// Aspect returns width / height, or 0 when the height is not positive.
func (g Geometry) Aspect() float32 {
	if g.Height <= 0 {
		return 0
	}
	return float32(g.Width) / float32(g.Height)
}

// Valid reports whether the geometry can be fitted: both dimensions positive and the
// field of view strictly between 0 and 180 degrees.
func (g Geometry) Valid() bool {
	return g.Width > 0 && g.Height > 0 && g.FovDeg > 0 && g.FovDeg < 180
}

// VisibleHeightAtDepth returns the height of the frustum slice at the given depth.
// The camera offset is folded into the depth before the absolute value is taken:
// depths in front of the camera subtract it, others add it.
//
// Parameters:
//   - depth: Z of the slice in world units
//   - cameraZ: Z of the camera in world units
//   - fovDeg: vertical field of view in degrees
//
// Returns:
//   - float32: visible height at the slice
func VisibleHeightAtDepth(depth, cameraZ, fovDeg float32) float32 {
	if depth < cameraZ {
		depth -= cameraZ
	} else {
		depth += cameraZ
	}
	vfov := float64(mgl32.DegToRad(fovDeg))
	return float32(2 * math.Tan(vfov/2) * math.Abs(float64(depth)))
}

// VisibleWidthAtDepth returns the width of the frustum slice at the given depth.
//
// Parameters:
//   - depth: Z of the slice in world units
//   - cameraZ: Z of the camera in world units
//   - fovDeg: vertical field of view in degrees
//   - aspect: viewport width / height
//
// Returns:
//   - float32: visible width at the slice
func VisibleWidthAtDepth(depth, cameraZ, fovDeg, aspect float32) float32 {
	return VisibleHeightAtDepth(depth, cameraZ, fovDeg) * aspect
}

// Fitter computes the uniform scale that keeps the object inside the frustum.
type Fitter interface {
	// Fit computes the object scale for the given geometry: the logo scale times the
	// smaller of the visible width and height at the target depth.
	//
	// Parameters:
	//   - g: the current viewport geometry
	//
	// Returns:
	//   - float32: uniform scale for all three axes
	//   - bool: false when the geometry is degenerate and the fit was skipped
	Fit(g Geometry) (float32, bool)

	// LastScale returns the most recent successful fit, or 0 before the first one.
	LastScale() float32

	// LogoScale returns the scale applied to the visible extent.
	LogoScale() float32

	// Depth returns the Z of the plane the object is fitted to.
	Depth() float32
}

type fitter struct {
	mu *sync.Mutex

	logoScale float32
	depth     float32
	last      float32
}

var _ Fitter = &fitter{}

// NewFitter creates a Fitter targeting the Z=0 plane with a logo scale of 13.
//
// Parameters:
//   - options: functional options to configure the fitter
//
// Returns:
//   - Fitter: the newly created fitter
func NewFitter(options ...FitterBuilderOption) Fitter {
	f := &fitter{
		mu:        &sync.Mutex{},
		logoScale: DefaultLogoScale,
	}
	for _, opt := range options {
		opt(f)
	}
	return f
}

func (f *fitter) Fit(g Geometry) (float32, bool) {
	if !g.Valid() {
		return 0, false
	}

	height := VisibleHeightAtDepth(f.depth, g.CameraZ, g.FovDeg)
	width := height * g.Aspect()
	scale := f.logoScale * min(width, height)
	if !(scale > 0) || math.IsInf(float64(scale), 0) {
		return 0, false
	}

	f.mu.Lock()
	f.last = scale
	f.mu.Unlock()
	return scale, true
}

func (f *fitter) LastScale() float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

func (f *fitter) LogoScale() float32 {
	return f.logoScale
}

func (f *fitter) Depth() float32 {
	return f.depth
}
