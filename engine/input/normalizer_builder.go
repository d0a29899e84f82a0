package input

// NormalizerBuilderOption is a functional option for configuring a Normalizer.
type NormalizerBuilderOption func(*normalizer)

// WithMaxBeta sets the magnitude the front-back tilt angle is clamped to.
// Non-positive values keep the default of 90 degrees.
//
// Parameters:
//   - degrees: clamp magnitude in degrees
//
// Returns:
//   - NormalizerBuilderOption: functional option to set the tilt clamp
func WithMaxBeta(degrees float32) NormalizerBuilderOption {
	return func(n *normalizer) {
		if degrees > 0 {
			n.maxBeta = degrees
		}
	}
}

// WithGammaClamp also clamps the left-right tilt angle to [-90, 90] degrees so the
// horizontal normalized position cannot leave [-0.5, 0.5].
//
// Parameters:
//   - enabled: true to clamp the left-right tilt
//
// Returns:
//   - NormalizerBuilderOption: functional option to toggle gamma clamping
func WithGammaClamp(enabled bool) NormalizerBuilderOption {
	return func(n *normalizer) {
		n.clampGamma = enabled
	}
}
