package viewport

// DefaultLogoScale is the fraction of the visible extent the logo asset is scaled to.
const DefaultLogoScale float32 = 13

// FitterBuilderOption is a functional option for configuring a Fitter.
type FitterBuilderOption func(*fitter)

// WithLogoScale sets the multiplier applied to the smaller visible dimension.
// Non-positive values keep the default.
//
// Parameters:
//   - scale: logo scale multiplier
//
// Returns:
//   - FitterBuilderOption: functional option to set the logo scale
func WithLogoScale(scale float32) FitterBuilderOption {
	return func(f *fitter) {
		if scale > 0 {
			f.logoScale = scale
		}
	}
}

// WithDepth sets the Z of the plane the object is fitted to.
//
// Parameters:
//   - depth: target plane Z in world units
//
// Returns:
//   - FitterBuilderOption: functional option to set the target depth
func WithDepth(depth float32) FitterBuilderOption {
	return func(f *fitter) {
		f.depth = depth
	}
}
